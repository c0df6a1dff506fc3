package base32

// Codec carries the partial-unit options so callers can configure them once.
// The zero value keeps partial symbols and bytes.
type Codec struct {
	IgnorePartialSymbol bool
	IgnorePartialByte   bool
}

// NewCodec creates a codec with the given options.
func NewCodec(ignorePartialSymbol, ignorePartialByte bool) *Codec {
	return &Codec{
		IgnorePartialSymbol: ignorePartialSymbol,
		IgnorePartialByte:   ignorePartialByte,
	}
}

// Encode encodes src using the codec's partial-symbol option.
func (c *Codec) Encode(src []byte) string {
	return Encode(src, c.IgnorePartialSymbol)
}

// Decode decodes s using the codec's partial-byte option.
func (c *Codec) Decode(s string) ([]byte, error) {
	return Decode(s, c.IgnorePartialByte)
}

// EncodedLen returns the length Encode produces for n bytes.
func (c *Codec) EncodedLen(n int) int {
	return EncodedLen(n, c.IgnorePartialSymbol)
}

// DecodedLen returns the length Decode produces for n symbols.
func (c *Codec) DecodedLen(n int) int {
	return DecodedLen(n, c.IgnorePartialByte)
}
