package huffpuff

import (
	"encoding/binary"
	"io"
)

// HeaderSize is the size in bytes of a serialized frequency header: one
// fixed-width count per symbol.
const HeaderSize = NumSymbols * 8

// FrequencyTable counts occurrences of each of the 256 byte values.
type FrequencyTable struct {
	counts [NumSymbols]uint64
	total  uint64
}

// Increment counts one occurrence of symbol.
func (ft *FrequencyTable) Increment(symbol Symbol) {
	ft.counts[symbol]++
	ft.total++
}

// SetCount overwrites the occurrence count for symbol.  It is used when
// reconstructing a table from a serialized header.
func (ft *FrequencyTable) SetCount(symbol Symbol, n uint64) {
	ft.total += n - ft.counts[symbol]
	ft.counts[symbol] = n
}

// Count returns the occurrence count for symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Total returns the sum of all occurrence counts, i.e. the number of input
// bytes the table was built from.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Weights returns a copy of the counts as a slice suitable for BuildTree.
func (ft *FrequencyTable) Weights() []uint64 {
	weights := make([]uint64, NumSymbols)
	copy(weights, ft.counts[:])
	return weights
}

// WriteTo serializes the table as 256 little-endian 64-bit counts in symbol
// order.  This is the header of the compressed file format.
func (ft *FrequencyTable) WriteTo(w io.Writer) (int64, error) {
	var buf [HeaderSize]byte
	for i, n := range ft.counts {
		binary.LittleEndian.PutUint64(buf[i*8:], n)
	}
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadFrom deserializes a table previously written by WriteTo, replacing the
// receiver's contents.  A short read is reported as ErrTruncatedHeader.
func (ft *FrequencyTable) ReadFrom(r io.Reader) (int64, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncatedHeader
		}
		return int64(n), err
	}
	ft.total = 0
	for i := range ft.counts {
		ft.counts[i] = binary.LittleEndian.Uint64(buf[i*8:])
		ft.total += ft.counts[i]
	}
	return int64(n), nil
}

var (
	_ io.WriterTo   = (*FrequencyTable)(nil)
	_ io.ReaderFrom = (*FrequencyTable)(nil)
)
