package huffpuff

import (
	"fmt"
	"strings"
)

// Code represents a sequence of bits.  The first bit of the sequence is the
// most significant bit of Bits[0].
//
// Codes derived from a 256-leaf tree can exceed 64 bits for extremely skewed
// histograms, so the payload is a byte slice rather than a fixed-width
// integer.
type Code struct {
	// Size holds the number of valid bits.
	Size int

	// Bits holds the packed bit values.  Only the first Size bits are
	// meaningful; trailing bits of the final byte are zero.
	Bits []byte
}

// MakeCode constructs a Code from an unpacked sequence of bit values, each of
// which must be 0 or 1.
func MakeCode(bits []byte) Code {
	c := Code{Size: len(bits), Bits: make([]byte, (len(bits)+7)/8)}
	for i, b := range bits {
		if b != 0 {
			c.Bits[i>>3] |= 1 << (7 - uint(i&7))
		}
	}
	return c
}

// Bit returns the i'th bit of the code, 0 or 1.
func (c Code) Bit(i int) byte {
	return (c.Bits[i>>3] >> (7 - uint(i&7))) & 1
}

// String returns the string representation of this Code.
func (c Code) String() string {
	if c.Size == 0 {
		return `""`
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < c.Size; i++ {
		sb.WriteByte('0' + c.Bit(i))
	}
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = Code{}

// CodeTable maps each Symbol of the alphabet to its Huffman code.  Every
// symbol has an entry, even those that never occur in the input; that way an
// encoder and a decoder built from the same histogram agree on a complete
// tree without special-casing absent symbols.
type CodeTable []Code
