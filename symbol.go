package huffpuff

// Symbol identifies one of the 256 possible byte values.  Negative symbols
// are not valid.
type Symbol int32

// NumSymbols is the size of the byte alphabet.  The on-disk format always
// covers all NumSymbols symbols, whether or not a given value occurs in the
// input.
const NumSymbols = 256

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)
