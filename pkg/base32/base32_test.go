package base32

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binaryToBytes turns a bit string like "000_00001" into bytes, ignoring
// everything but '0' and '1'.
func binaryToBytes(t *testing.T, s string) []byte {
	t.Helper()
	var bits strings.Builder
	for _, c := range s {
		if c == '0' || c == '1' {
			bits.WriteRune(c)
		}
	}
	digits := bits.String()
	require.Zero(t, len(digits)%8, "bit string %q is not whole bytes", s)

	out := make([]byte, 0, len(digits)/8)
	for i := 0; i < len(digits); i += 8 {
		v, err := strconv.ParseUint(digits[i:i+8], 2, 8)
		require.NoError(t, err)
		out = append(out, byte(v))
	}
	return out
}

func TestSymbols(t *testing.T) {
	var expected []byte
	for c := byte('0'); c <= '9'; c++ {
		expected = append(expected, c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		if c == 'b' || c == 'i' || c == 'l' || c == 'o' {
			continue
		}
		expected = append(expected, c)
	}
	require.Len(t, expected, 32)
	assert.Equal(t, string(expected), Alphabet)

	for i, symbol := range expected {
		assert.Equal(t, symbol, Symbols[i])

		idx, err := SymbolToIndex(symbol)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestSymbolToIndex(t *testing.T) {
	ranges := []struct {
		from, to byte
		first    int
	}{
		{'0', '9', 0},
		{'a', 'a', 10},
		{'c', 'h', 11},
		{'j', 'k', 17},
		{'m', 'n', 19},
		{'p', 'z', 21},
	}
	valid := map[byte]bool{}
	for _, r := range ranges {
		for c := r.from; c <= r.to; c++ {
			idx, err := SymbolToIndex(c)
			require.NoError(t, err)
			assert.Equal(t, r.first+int(c-r.from), idx, "symbol %q", c)
			valid[c] = true
		}
	}
	assert.Len(t, valid, 32)

	for c := 0; c < 256; c++ {
		if valid[byte(c)] {
			continue
		}
		_, err := SymbolToIndex(byte(c))
		require.Error(t, err, "symbol %q", byte(c))
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	}
}

func TestEncode_Vectors(t *testing.T) {
	testCases := []struct {
		binary        string
		expected      string
		ignorePartial string
	}{
		{"000_00000", "00", "0"},
		{"000_00001", "01", "1"},
		{"000_11111", "0z", "z"},
		{"001_00000", "10", "0"},
		{"001_11111", "1z", "z"},
		{"111_00000", "70", "0"},
		{"0_00011_00010_00001", "0321", "321"},
		{"1_00110_00101_00100", "1654", "654"},
		{"0000_01010_01001_01000_00111", "0a987", "a987"},
		{"0001_01010_01001_01000_00111", "1a987", "a987"},
		{"0010_01010_01001_01000_00111", "2a987", "a987"},
		{"0100_01010_01001_01000_00111", "4a987", "a987"},
		{"1000_01010_01001_01000_00111", "8a987", "a987"},
		{"00_10000_01111_01110_01101_01100_01011", "0hgfedc", "hgfedc"},
		{"11000_10111_10110_10101_10100_10011_10010_10001", "srqpnmkj", "srqpnmkj"},
		{"111_11011_11010_11001_11110_11101_11100_11011_11010_11001", "7vutyxwvut", "vutyxwvut"},
		{"11111111 00000000 11111111 00000000 11111111", "zw0gy07z", "zw0gy07z"},
	}

	for _, tc := range testCases {
		t.Run(tc.binary, func(t *testing.T) {
			src := binaryToBytes(t, tc.binary)
			assert.Equal(t, tc.expected, Encode(src, false))
			assert.Equal(t, tc.ignorePartial, Encode(src, true))
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(nil, false))
	assert.Equal(t, "", Encode([]byte{}, true))
}

func TestEncode_DoesNotModifyInput(t *testing.T) {
	src := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}
	orig := append([]byte(nil), src...)
	_ = Encode(src, false)
	_ = Encode(src, true)
	assert.Equal(t, orig, src)
}

func TestEncode_Length(t *testing.T) {
	for n := 0; n <= 64; n++ {
		src := bytes.Repeat([]byte{0xa5}, n)

		full := 0
		if n > 0 {
			full = (n*8 + 4) / 5
		}
		short := full
		if n%5 != 0 {
			short--
		}

		assert.Len(t, Encode(src, false), full, "n=%d", n)
		assert.Len(t, Encode(src, true), short, "n=%d ignore partial", n)
		assert.Equal(t, full, EncodedLen(n, false))
		assert.Equal(t, short, EncodedLen(n, true))
	}
}

func TestEncode_IgnorePartialIsSuffix(t *testing.T) {
	src := []byte("the quick brown fox")
	for n := 0; n <= len(src); n++ {
		full := Encode(src[:n], false)
		short := Encode(src[:n], true)
		assert.True(t, strings.HasSuffix(full, short), "n=%d", n)
	}
}

func TestDecode_Length(t *testing.T) {
	for m := 0; m <= 64; m++ {
		s := strings.Repeat("7", m)

		full := 0
		if m > 0 {
			full = 1 + (m*5-1)/8
		}
		short := full
		if m%8 != 0 {
			short--
		}

		got, err := Decode(s, false)
		require.NoError(t, err)
		assert.Len(t, got, full, "m=%d", m)

		got, err = Decode(s, true)
		require.NoError(t, err)
		assert.Len(t, got, short, "m=%d ignore partial", m)

		assert.Equal(t, full, DecodedLen(m, false))
		assert.Equal(t, short, DecodedLen(m, true))
	}
}

func TestDecode_Vectors(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expected      []byte
		ignorePartial []byte
	}{
		{"empty", "", []byte{}, []byte{}},
		{"single symbol", "z", []byte{0x1f}, []byte{}},
		{"two symbols", "01", []byte{0x00, 0x01}, []byte{0x01}},
		{"0321", "0321", []byte{0x00, 0x0c, 0x41}, []byte{0x0c, 0x41}},
		{"full group", "zw0gy07z", []byte{0xff, 0x00, 0xff, 0x00, 0xff}, []byte{0xff, 0x00, 0xff, 0x00, 0xff}},
		{"hi", "0u39", []byte{0x00, 'h', 'i'}, []byte("hi")},
		{"hello", "e1kqsv3g", []byte("hello"), []byte("hello")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.input, false)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)

			got, err = Decode(tc.input, true)
			require.NoError(t, err)
			assert.Equal(t, tc.ignorePartial, got)
		})
	}
}

func TestDecode_InvalidSymbol(t *testing.T) {
	testCases := []struct {
		input  string
		symbol byte
		offset int
	}{
		{"b", 'b', 0},
		{"i", 'i', 0},
		{"l", 'l', 0},
		{"o", 'o', 0},
		{"B", 'B', 0},
		{"Z", 'Z', 0},
		{"00-0", '-', 2},
		{"0000000 ", ' ', 7},
		{"srqpnmkjO", 'O', 8},
		{"srqpnmkj\xff", 0xff, 8},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			for _, ignore := range []bool{false, true} {
				got, err := Decode(tc.input, ignore)
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, errors.Is(err, ErrInvalidSymbol))

				var symErr *InvalidSymbolError
				require.ErrorAs(t, err, &symErr)
				assert.Equal(t, tc.symbol, symErr.Symbol)
				assert.Equal(t, tc.offset, symErr.Offset)
			}
			assert.False(t, Valid(tc.input))
		})
	}
}

func TestDecode_ValidatesDroppedSymbols(t *testing.T) {
	// The leading 'o' only feeds the dropped partial byte.
	_, err := Decode("o1", true)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestRoundTrip_MultiplesOfFive(t *testing.T) {
	src := make([]byte, 0, 40)
	for i := 0; i < 40; i++ {
		src = append(src, byte(i*37+11))
	}
	for n := 0; n <= len(src); n += 5 {
		encoded := Encode(src[:n], false)
		assert.Len(t, encoded, n/5*8)

		decoded, err := Decode(encoded, false)
		require.NoError(t, err)
		assert.Equal(t, src[:n], decoded, "n=%d", n)
	}
}

func TestRoundTrip_SymbolGroups(t *testing.T) {
	for _, s := range []string{"srqpnmkj", "zw0gy07z", "0123456789acdefghjkmnpqrstuvwxyz"} {
		decoded, err := Decode(s, false)
		require.NoError(t, err)
		assert.Len(t, decoded, len(s)/8*5)
		assert.Equal(t, s, Encode(decoded, false))
	}
}

func TestRoundTrip_PartialGroups(t *testing.T) {
	t.Run("ignore partial byte restores source", func(t *testing.T) {
		decoded, err := Decode("0a987", true)
		require.NoError(t, err)
		assert.Equal(t, "0a987", Encode(decoded, false))

		decoded, err = Decode("0u39", true)
		require.NoError(t, err)
		assert.Equal(t, []byte("hi"), decoded)
	})

	t.Run("default flags only add leading zero symbols", func(t *testing.T) {
		for _, s := range []string{"0a987", "1654", "7vutyxwvut", "0hgfedc", "z"} {
			decoded, err := Decode(s, false)
			require.NoError(t, err)

			again := Encode(decoded, false)
			require.True(t, strings.HasSuffix(again, s), "%q -> %q", s, again)
			assert.Equal(t, strings.Repeat("0", len(again)-len(s)), again[:len(again)-len(s)])
		}
	})

	t.Run("bytes survive any length", func(t *testing.T) {
		src := []byte("partial groups keep their bits")
		for n := 0; n <= len(src); n++ {
			encoded := Encode(src[:n], false)
			decoded, err := Decode(encoded, false)
			require.NoError(t, err)

			// Decoding may prepend a single zero byte of fill.
			trimmed := decoded
			if len(decoded) > n {
				require.Len(t, decoded, n+1)
				assert.Zero(t, decoded[0])
				trimmed = decoded[1:]
			}
			assert.Equal(t, src[:n], trimmed, "n=%d", n)
		}
	})
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(""))
	assert.True(t, Valid(Alphabet))
	assert.False(t, Valid("abc"))
	assert.False(t, Valid("ABC"))
}

func TestEncodeToString(t *testing.T) {
	assert.Equal(t, "0u39", EncodeToString([]byte("hi")))

	decoded, err := DecodeString("0u39")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 'h', 'i'}, decoded)
}
