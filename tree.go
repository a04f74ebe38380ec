package huffpuff

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// nilNode is the arena index sentinel meaning "no node".
const nilNode = int32(-1)

type treeNode struct {
	weight uint64
	parent int32
	less   int32
	more   int32
}

// Tree is a Huffman code tree stored as an arena of indexed nodes.  Leaves
// occupy arena slots 0..n-1 so that a leaf's index is its symbol; internal
// nodes follow in creation order.  Child links own their subtrees; parent
// links are plain back-references used only for the leaf-to-root code walk.
//
// A Tree is built once from a frozen histogram and only read afterwards.
type Tree struct {
	nodes  []treeNode
	root   int32
	leaves int
}

// BuildTree constructs a Huffman tree over an alphabet of len(weights)
// symbols, where weights[s] is the occurrence count for symbol s.  The
// compressed file format always uses NumSymbols weights; smaller alphabets
// are permitted for callers that code over a reduced symbol set.
//
// Construction repeatedly merges the two lowest-weight active subtree roots
// until one remains.  Both the selection scan and the child assignment on
// weight ties follow fixed index-ordered rules (see findSmallest); given
// identical weights, every conforming implementation produces an identical
// tree.
//
// A one-symbol alphabet yields a degenerate tree whose root is the lone leaf.
func BuildTree(weights []uint64) *Tree {
	n := len(weights)
	assert.Assertf(n >= 1, "alphabet size %d < 1", n)
	assert.Assertf(n <= NumSymbols, "alphabet size %d > NumSymbols %d", n, NumSymbols)

	t := &Tree{
		nodes:  make([]treeNode, n, 2*n-1),
		root:   0,
		leaves: n,
	}

	// active maps each slot to the currently-unmerged subtree root that
	// contains the slot's original leaf, or nilNode once merged away.
	active := make([]int32, n)
	for i := 0; i < n; i++ {
		t.nodes[i] = treeNode{weight: weights[i], parent: nilNode, less: nilNode, more: nilNode}
		active[i] = int32(i)
	}

	for remaining := n; remaining > 1; remaining-- {
		smallest, second := findSmallest(t, active)
		a, b := active[smallest], active[second]

		// On a weight tie the children are ordered by active-slot
		// index, not by which slot the scan labeled smallest.
		less, more := a, b
		if t.nodes[a].weight == t.nodes[b].weight && smallest > second {
			less, more = b, a
		}

		merged := int32(len(t.nodes))
		t.nodes = append(t.nodes, treeNode{
			weight: t.nodes[a].weight + t.nodes[b].weight,
			parent: nilNode,
			less:   less,
			more:   more,
		})
		t.nodes[a].parent = merged
		t.nodes[b].parent = merged

		// The merged node takes the lower of the two slots; the other
		// slot goes inactive.
		if smallest < second {
			active[smallest], active[second] = merged, nilNode
		} else {
			active[second], active[smallest] = merged, nilNode
		}
	}

	for _, id := range active {
		if id != nilNode {
			t.root = id
			break
		}
	}
	return t
}

// findSmallest scans the active slots in ascending index order for the
// smallest and second-smallest weights.  A weight equal to the current
// minimum never displaces it, so among tied slots the lowest index wins and
// the next candidate slot becomes second-smallest.
func findSmallest(t *Tree, active []int32) (smallest, second int) {
	smallestWeight := uint64(math.MaxUint64)
	secondWeight := uint64(math.MaxUint64)
	smallest, second = -1, -1
	for slot, id := range active {
		if id == nilNode {
			continue
		}
		w := t.nodes[id].weight
		switch {
		case w < smallestWeight:
			secondWeight, second = smallestWeight, smallest
			smallestWeight, smallest = w, slot
		case w < secondWeight:
			secondWeight, second = w, slot
		}
	}
	return smallest, second
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int32 {
	return t.root
}

// NumLeaves returns the alphabet size the tree was built over.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// NumInternal returns the number of internal (merge) nodes.  A full tree over
// n leaves always has exactly n-1 of them.
func (t *Tree) NumInternal() int {
	return len(t.nodes) - t.leaves
}

// Weight returns the weight of the node at arena index id: its occurrence
// count for a leaf, or the summed count of everything beneath it for an
// internal node.
func (t *Tree) Weight(id int32) uint64 {
	return t.nodes[id].weight
}

// IsLeaf reports whether the node at arena index id is a leaf.  Internal
// nodes always have exactly two children, so checking one link suffices.
func (t *Tree) IsLeaf(id int32) bool {
	return t.nodes[id].less == nilNode
}
