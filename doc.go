// Package huffpuff implements a static Huffman compressor and decompressor
// for byte streams.  A frequency histogram over all 256 byte values drives
// construction of a full binary prefix-code tree; compression emits each
// input byte's variable-length code through a bit-sink, and decompression
// walks the tree one bit at a time.  The compressed representation is the
// serialized histogram followed by the packed bitstream.
//
// The tree construction scan order and its tie-break rules are part of the
// wire contract: two independent implementations fed the same histogram must
// produce bit-identical trees and codes.  See BuildTree.
package huffpuff
