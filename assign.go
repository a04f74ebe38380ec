package huffpuff

// DeriveCodes returns one prefix-free code per symbol of the tree's alphabet.
// Each leaf's code is found by walking its parent links to the root,
// appending a 1 bit when the previous node was the parent's moreChild and a
// 0 bit when it was the lessChild, then reversing the accumulated sequence
// (the walk runs leaf to root but a code reads root to leaf).
//
// Every leaf receives a code, including zero-weight leaves.  A leaf that is
// itself the root (one-symbol alphabet) receives the empty code; see
// Decoder.Decode for how such streams are handled.
func DeriveCodes(t *Tree) CodeTable {
	codes := make(CodeTable, t.leaves)
	buf := make([]byte, 0, 64)
	for symbol := 0; symbol < t.leaves; symbol++ {
		buf = buf[:0]
		cur := int32(symbol)
		for t.nodes[cur].parent != nilNode {
			parent := t.nodes[cur].parent
			if t.nodes[parent].more == cur {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
			cur = parent
		}
		reverseBits(buf)
		codes[symbol] = MakeCode(buf)
	}
	return codes
}
