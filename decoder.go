package huffpuff

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Walker is the tree-walking decode state machine.  Its state is the current
// arena node, initialized to the root; each bit moves it to the moreChild on
// 1 or the lessChild on 0, and reaching a leaf emits that leaf's symbol and
// resets the walk to the root.
type Walker struct {
	tree    *Tree
	current int32
}

// NewWalker returns a Walker positioned at the root of t.  The root must be
// an internal node; a one-leaf tree has no bits to walk.
func NewWalker(t *Tree) *Walker {
	assert.Assertf(!t.IsLeaf(t.root), "cannot walk a single-leaf tree")
	return &Walker{tree: t, current: t.root}
}

// Step consumes one bit.  It returns the decoded symbol and true when the
// walk reaches a leaf, or InvalidSymbol and false when more bits are needed.
func (w *Walker) Step(bit bool) (Symbol, bool) {
	node := &w.tree.nodes[w.current]
	if bit {
		w.current = node.more
	} else {
		w.current = node.less
	}
	if w.tree.IsLeaf(w.current) {
		symbol := Symbol(w.current)
		w.current = w.tree.root
		return symbol, true
	}
	return InvalidSymbol, false
}

// Decoder decodes a Huffman bitstream back into bytes by walking the tree one
// bit at a time.  It needs no code table: the tree itself drives the walk.
type Decoder struct {
	tree *Tree
	r    *bitio.Reader
}

// NewDecoder creates a Decoder that reads bits from r and resolves them
// against t.
func NewDecoder(t *Tree, r *bitio.Reader) *Decoder {
	return &Decoder{tree: t, r: r}
}

// Decode emits exactly total decoded bytes to w and returns the number
// emitted.  The bitstream carries no end marker: total comes from the
// deserialized frequency header, and any bits beyond the final symbol are
// padding and are ignored.  A bitstream that ends before total symbols have
// been emitted is reported as ErrTruncatedStream.
//
// A tree whose root is a leaf (one-symbol alphabet) assigns the empty code:
// total copies of that symbol are emitted without consuming any bits.
func (d *Decoder) Decode(w io.Writer, total uint64, progress func(int64)) (uint64, error) {
	bw := bufio.NewWriter(w)

	if d.tree.IsLeaf(d.tree.root) {
		for emitted := uint64(0); emitted < total; emitted++ {
			if err := bw.WriteByte(byte(d.tree.root)); err != nil {
				return emitted, err
			}
		}
		return total, bw.Flush()
	}

	walker := NewWalker(d.tree)
	var emitted uint64
	for emitted < total {
		bit, err := d.r.ReadBool()
		if err != nil {
			if err == io.EOF {
				err = ErrTruncatedStream
			}
			return emitted, err
		}
		symbol, done := walker.Step(bit)
		if !done {
			continue
		}
		if err := bw.WriteByte(byte(symbol)); err != nil {
			return emitted, err
		}
		emitted++
		if progress != nil && emitted&0xffff == 0 {
			progress(int64(emitted))
		}
	}
	return emitted, bw.Flush()
}
