package huffpuff

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
)

// SymbolCount pairs a symbol with its occurrence count and probability.
type SymbolCount struct {
	Symbol      Symbol
	Count       uint64
	Probability float64
}

// Stats is the entropy and redundancy report for one frequency table.  All
// of it is diagnostic: none of these figures affect compression or
// decompression.
type Stats struct {
	// Total is the number of bytes counted.
	Total uint64

	// Used is the number of distinct byte values with a non-zero count.
	Used int

	// Entropy is the Shannon entropy of the histogram, in bits per byte
	// of information.
	Entropy float64

	// Redundancy is 8 minus Entropy, the average excess bits per byte.
	Redundancy float64

	// Ratio is the compression ratio achievable if all redundancy were
	// removed, 8 / Entropy.
	Ratio float64

	// ProjectedSize is the body size in bytes assuming 100% compression
	// efficiency and no header overhead.
	ProjectedSize uint64

	// MostFrequent holds the five most frequent symbols, descending by
	// count.
	MostFrequent []SymbolCount
}

// Stats computes the entropy report for the table.
func (ft *FrequencyTable) Stats() Stats {
	s := Stats{Total: ft.total}
	if ft.total == 0 {
		return s
	}

	counts := make(byCount, 0, NumSymbols)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		n := ft.counts[symbol]
		p := float64(n) / float64(ft.total)
		if n != 0 {
			s.Entropy += -p * math.Log2(p)
			s.Used++
		}
		counts = append(counts, SymbolCount{Symbol: symbol, Count: n, Probability: p})
	}
	counts.Sort()

	s.Redundancy = 8.0 - s.Entropy
	if s.Entropy > 0 {
		s.Ratio = 8.0 / s.Entropy
	}
	s.ProjectedSize = uint64(float64(ft.total) * s.Entropy / 8.0)
	s.MostFrequent = counts[:5]
	return s
}

// Dump writes a programmer-readable rendering of the report to the given
// writer.
func (s Stats) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Stats{\n")
	fmt.Fprintf(&buf, "\tTotal = %d\n", s.Total)
	fmt.Fprintf(&buf, "\tUsed = %d\n", s.Used)
	fmt.Fprintf(&buf, "\tEntropy = %.2f bits/byte\n", s.Entropy)
	fmt.Fprintf(&buf, "\tRedundancy = %.2f bits/byte (%.1f%%)\n", s.Redundancy, (1.0-s.Entropy/8.0)*100.0)
	fmt.Fprintf(&buf, "\tRatio = %.2f\n", s.Ratio)
	fmt.Fprintf(&buf, "\tProjectedSize = %d\n", s.ProjectedSize)
	for i, sc := range s.MostFrequent {
		fmt.Fprintf(&buf, "\t#%d: %02X (%d, %.2f%%)\n", i+1, byte(sc.Symbol), sc.Count, sc.Probability*100.0)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCount {{{

type byCount []SymbolCount

func (list byCount) Sort() {
	sort.Sort(list)
}

func (list byCount) Len() int {
	return len(list)
}

func (list byCount) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCount) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = byCount(nil)

// }}}
