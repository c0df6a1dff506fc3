// Package base32 converts between byte slices and strings written in a
// 32-symbol alphabet built for humans to read back without confusion.
//
// # Alphabet
//
// The alphabet is the ASCII digits followed by the lowercase letters with
// 'b', 'i', 'l' and 'o' removed:
//
//	0123456789acdefghjkmnpqrstuvwxyz
//
// Uppercase letters are not accepted. Each symbol carries 5 bits; index 0 is
// '0' and index 31 is 'z'.
//
// # Bit Layout
//
// The input bytes are read as one big-endian bitstream (most significant bit
// of the first byte first) and cut into 5-bit symbols. Grouping is anchored at
// the end of the input: every 5 bytes at the tail map onto exactly 8 symbols,
// and any remainder of 1 to 4 bytes sits at the front, zero-extended on the
// left.
//
//	bytes:    11111111 00000000 11111111 00000000 11111111
//	symbols:  11111 11100 00000 01111 11110 00000 00111 11111
//	          z     w     0     g     y     0     7     z
//
// Decoding runs the same layout backwards: each group of 8 symbols at the
// tail yields 5 bytes, and a leading group of 1 to 7 symbols yields the rest.
//
// # Partial Units
//
// Byte and symbol widths only line up every 40 bits, so the first symbol of an
// encoding (or the first byte of a decoding) may cover bits that exist only as
// zero fill. Passing ignorePartialSymbol to Encode or ignorePartialByte to
// Decode drops that leading unit:
//
//	Encode([]byte("hi"), false)  // "0u39"
//	Encode([]byte("hi"), true)   // "u39"
//	Decode("0u39", false)        // []byte{0x00, 'h', 'i'}
//	Decode("0u39", true)         // []byte("hi")
//
// There is no padding character and the encoding does not record its own bit
// length. Callers that need exact round trips either work in multiples of
// 5 bytes / 8 symbols or track the meaningful length themselves.
//
// # Errors
//
// Encoding cannot fail. Decoding fails with an *InvalidSymbolError (matching
// ErrInvalidSymbol under errors.Is) on any byte outside the alphabet, and
// returns no output in that case.
//
// # Thread Safety
//
// All functions are pure and the lookup tables are read-only after package
// initialisation, so they are safe for concurrent use.
package base32
