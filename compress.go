package huffpuff

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Result summarizes one compress or decompress run.
type Result struct {
	// OriginalBytes is the size of the uncompressed data.
	OriginalBytes uint64

	// CompressedBytes is the number of bytes written for the header plus
	// packed body.  It is reported by Compress only; Decompress leaves it
	// zero, since the decoder stops mid-stream at the final symbol and
	// never learns how much padding follows.
	CompressedBytes uint64

	// Stats is the entropy report for the frequency table the run was
	// driven by.
	Stats Stats
}

// Compress reads the entire input twice, once to build the frequency
// histogram and once to emit the coded bitstream, and writes the serialized
// histogram followed by the packed body to w.
func Compress(r io.ReadSeeker, w io.Writer, obs *Observer) (Result, error) {
	var res Result

	var ft FrequencyTable
	if err := countBytes(&ft, r); err != nil {
		return res, fmt.Errorf("huffpuff: counting input: %w", err)
	}
	obs.afterCount(&ft)

	tree := BuildTree(ft.Weights())
	obs.afterBuild(tree)

	codes := DeriveCodes(tree)
	obs.afterCodes(codes)

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return res, fmt.Errorf("huffpuff: rewinding input: %w", err)
	}

	cw := &countingWriter{w: w}
	if _, err := ft.WriteTo(cw); err != nil {
		return res, fmt.Errorf("huffpuff: writing header: %w", err)
	}

	buffered := bufio.NewWriter(cw)
	sink := bitio.NewWriter(buffered)
	enc := NewEncoder(codes, sink)
	n, err := enc.Encode(bufio.NewReader(r), obs.progress())
	if err != nil {
		return res, fmt.Errorf("huffpuff: encoding: %w", err)
	}
	// Close pads the final partial byte; the padding bit values are the
	// sink's business, not ours.
	if err := sink.Close(); err != nil {
		return res, fmt.Errorf("huffpuff: flushing bitstream: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return res, fmt.Errorf("huffpuff: flushing output: %w", err)
	}

	res.OriginalBytes = uint64(n)
	res.CompressedBytes = cw.n
	res.Stats = ft.Stats()
	return res, nil
}

// Decompress reads a serialized frequency header followed by a packed body
// from r and writes the reconstructed bytes to w.  The header's total count
// determines how many symbols to decode; trailing padding bits are ignored.
func Decompress(r io.Reader, w io.Writer, obs *Observer) (Result, error) {
	var res Result

	var ft FrequencyTable
	if _, err := ft.ReadFrom(r); err != nil {
		return res, fmt.Errorf("huffpuff: reading header: %w", err)
	}
	obs.afterCount(&ft)

	tree := BuildTree(ft.Weights())
	obs.afterBuild(tree)

	dec := NewDecoder(tree, bitio.NewReader(bufio.NewReader(r)))
	emitted, err := dec.Decode(w, ft.Total(), obs.progress())
	if err != nil {
		return res, fmt.Errorf("huffpuff: decoding: %w", err)
	}

	res.OriginalBytes = emitted
	res.Stats = ft.Stats()
	return res, nil
}

func countBytes(ft *FrequencyTable, r io.Reader) error {
	var buf [4096]byte
	for {
		n, err := r.Read(buf[:])
		for _, b := range buf[:n] {
			ft.Increment(Symbol(b))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

type countingWriter struct {
	w io.Writer
	n uint64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += uint64(n)
	return n, err
}
