package huffpuff

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encoder emits Huffman-coded symbols through an external bit-sink.  The
// Encoder does not own the writer: the caller must close it when the stream
// is complete, which pads the final partial byte.
type Encoder struct {
	codes CodeTable
	w     *bitio.Writer
}

// NewEncoder creates an Encoder that writes the given codes to w.
func NewEncoder(codes CodeTable, w *bitio.Writer) *Encoder {
	assert.Assertf(len(codes) > 0, "empty code table")
	return &Encoder{codes: codes, w: w}
}

// EncodeSymbol writes the code for one symbol to the bit-sink, first bit
// first.
func (e *Encoder) EncodeSymbol(symbol Symbol) error {
	c := e.codes[symbol]
	for i := 0; i < c.Size; i += 8 {
		n := c.Size - i
		if n > 8 {
			n = 8
		}
		chunk := c.Bits[i>>3] >> (8 - uint(n))
		if err := e.w.WriteBits(uint64(chunk), uint8(n)); err != nil {
			return err
		}
	}
	return nil
}

// Encode encodes every byte readable from r, in input order, and returns the
// number of bytes consumed.  progress, if non-nil, is invoked periodically
// with that count.
func (e *Encoder) Encode(r io.Reader, progress func(int64)) (int64, error) {
	var buf [4096]byte
	var total int64
	for {
		n, err := r.Read(buf[:])
		for _, b := range buf[:n] {
			if werr := e.EncodeSymbol(Symbol(b)); werr != nil {
				return total, werr
			}
			total++
		}
		if progress != nil && n > 0 {
			progress(total)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
