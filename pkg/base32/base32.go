package base32

import (
	"errors"
	"fmt"
)

// Alphabet lists the symbols in index order.
const Alphabet = "0123456789acdefghjkmnpqrstuvwxyz"

const (
	symbolBits  = 5
	symbolMask  = 1<<symbolBits - 1
	groupBytes  = 5 // bytes per full group
	groupSymbol = 8 // symbols per full group
	invalid     = 0xFF
)

// Symbols maps a 5-bit value to its symbol.
var Symbols = func() [32]byte {
	var t [32]byte
	copy(t[:], Alphabet)
	return t
}()

// decodeMap maps a byte to its 5-bit value, or invalid.
var decodeMap = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// ErrInvalidSymbol is matched by every error reporting a byte outside the alphabet.
var ErrInvalidSymbol = errors.New("invalid base-32 symbol")

// InvalidSymbolError reports a byte of a decode input that is not in the
// alphabet. Offset is -1 when the symbol was checked on its own.
type InvalidSymbolError struct {
	Symbol byte
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("invalid base-32 symbol %q", e.Symbol)
	}
	return fmt.Sprintf("invalid base-32 symbol %q at offset %d", e.Symbol, e.Offset)
}

// Is reports whether target is ErrInvalidSymbol.
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// SymbolToIndex returns the 5-bit value of symbol.
func SymbolToIndex(symbol byte) (int, error) {
	v := decodeMap[symbol]
	if v == invalid {
		return 0, &InvalidSymbolError{Symbol: symbol, Offset: -1}
	}
	return int(v), nil
}

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int, ignorePartialSymbol bool) int {
	if n <= 0 {
		return 0
	}
	count := (n*8 + symbolBits - 1) / symbolBits
	if ignorePartialSymbol && n%groupBytes != 0 {
		count--
	}
	return count
}

// DecodedLen returns the number of bytes decoded from n symbols.
func DecodedLen(n int, ignorePartialByte bool) int {
	if n <= 0 {
		return 0
	}
	count := 1 + (n*symbolBits-1)/8
	if ignorePartialByte && n%groupSymbol != 0 {
		count--
	}
	return count
}

// Encode returns the base-32 encoding of src. With ignorePartialSymbol set and
// len(src) not a multiple of 5, the leading symbol, which is partly zero fill,
// is left out.
func Encode(src []byte, ignorePartialSymbol bool) string {
	n := EncodedLen(len(src), ignorePartialSymbol)
	if n == 0 {
		return ""
	}
	dst := make([]byte, n)
	out := n - 1

	// Walk 5-byte groups from the end; the first group may be short.
	for end := len(src); end > 0 && out >= 0; end -= groupBytes {
		start := end - groupBytes
		if start < 0 {
			start = 0
		}
		var v uint64
		for _, b := range src[start:end] {
			v = v<<8 | uint64(b)
		}
		for shift := 0; shift < groupSymbol*symbolBits && out >= 0; shift += symbolBits {
			dst[out] = Symbols[(v>>shift)&symbolMask]
			out--
		}
	}
	return string(dst)
}

// Decode returns the bytes represented by s. With ignorePartialByte set and
// len(s) not a multiple of 8, the leading byte, which is partly zero fill, is
// left out. Every symbol of s is validated even if its bits are dropped.
func Decode(s string, ignorePartialByte bool) ([]byte, error) {
	n := DecodedLen(len(s), ignorePartialByte)
	dst := make([]byte, n)
	out := n - 1

	// Walk 8-symbol groups from the end; the first group may be short.
	for end := len(s); end > 0; end -= groupSymbol {
		start := end - groupSymbol
		if start < 0 {
			start = 0
		}
		var v uint64
		for i := start; i < end; i++ {
			d := decodeMap[s[i]]
			if d == invalid {
				return nil, &InvalidSymbolError{Symbol: s[i], Offset: i}
			}
			v = v<<symbolBits | uint64(d)
		}
		for shift := 0; shift < groupBytes*8 && out >= 0; shift += 8 {
			dst[out] = byte(v >> shift)
			out--
		}
	}
	return dst, nil
}

// Valid reports whether every byte of s is in the alphabet.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if decodeMap[s[i]] == invalid {
			return false
		}
	}
	return true
}

// EncodeToString encodes src keeping the partial symbol.
func EncodeToString(src []byte) string {
	return Encode(src, false)
}

// DecodeString decodes s keeping the partial byte.
func DecodeString(s string) ([]byte, error) {
	return Decode(s, false)
}
