package subnet

import "slices"

// DefaultMaxSummarizeInputs caps how many CIDRs a summarize call accepts.
const DefaultMaxSummarizeInputs = 10_000

// SummaryResult is the minimal non-overlapping cover of the input CIDRs.
type SummaryResult struct {
	InputCount  int
	OutputCount int
	CIDRs       []Subnet
}

// entry is the transient (network, prefix) pair the pipeline works on.
type entry struct {
	network uint128
	prefix  int
}

// Summarize reduces a list of CIDRs of one family to the minimal equivalent
// non-overlapping set. Inputs may overlap, repeat, or carry stray host bits.
func Summarize(f Family, cidrs []string) (SummaryResult, error) {
	return SummarizeWithLimit(f, cidrs, DefaultMaxSummarizeInputs)
}

// SummarizeWithLimit is Summarize with an explicit input ceiling.
func SummarizeWithLimit(f Family, cidrs []string, limit int) (SummaryResult, error) {
	if len(cidrs) == 0 {
		return SummaryResult{}, ErrEmptyCIDRList
	}
	if len(cidrs) > limit {
		return SummaryResult{}, &SummarizeLimitError{Count: len(cidrs), Limit: limit}
	}

	entries := make([]entry, 0, len(cidrs))
	for _, c := range cidrs {
		sub, err := Parse(f, c)
		if err != nil {
			return SummaryResult{}, err
		}
		entries = append(entries, entry{network: sub.network, prefix: sub.prefix})
	}

	entries = summarizeEntries(entries, f)

	out := make([]Subnet, 0, len(entries))
	for _, e := range entries {
		out = append(out, newFromValue(f, e.network, e.prefix))
	}
	return SummaryResult{
		InputCount:  len(cidrs),
		OutputCount: len(out),
		CIDRs:       out,
	}, nil
}

func summarizeEntries(entries []entry, f Family) []entry {
	entries = sortDedupe(normalize(entries, f))
	entries = removeContained(entries, f)
	return mergeSiblings(entries, f)
}

// normalize zeroes each entry's host bits in place.
func normalize(entries []entry, f Family) []entry {
	for i := range entries {
		entries[i].network = entries[i].network.and(maskFor(f, entries[i].prefix))
	}
	return entries
}

func sortDedupe(entries []entry) []entry {
	slices.SortFunc(entries, func(a, b entry) int {
		if c := a.network.cmp(b.network); c != 0 {
			return c
		}
		return a.prefix - b.prefix
	})
	return slices.Compact(entries)
}

// removeContained drops every entry fully contained in the last kept one.
// A single left-to-right sweep suffices: in sorted order containment is
// transitive through the running "last kept" entry.
func removeContained(entries []entry, f Family) []entry {
	if len(entries) == 0 {
		return entries
	}
	kept := entries[:1]
	for _, e := range entries[1:] {
		last := kept[len(kept)-1]
		if e.prefix >= last.prefix && e.network.and(maskFor(f, last.prefix)) == last.network {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// mergeSiblings collapses adjacent same-prefix pairs that share a parent
// block. A merge can expose new containment or new siblings, so the list is
// re-sorted and re-swept after every pass that merged anything; the entry
// count is non-increasing, so the fixed point is reached in finitely many
// passes.
func mergeSiblings(entries []entry, f Family) []entry {
	width := f.Bits()
	for {
		merged := false
		result := make([]entry, 0, len(entries))
		for i := 0; i < len(entries); i++ {
			if i+1 < len(entries) && entries[i].prefix == entries[i+1].prefix && entries[i].prefix > 0 {
				parent := entries[i].prefix - 1
				shift := uint(width - parent)
				if entries[i].network.rsh(shift) == entries[i+1].network.rsh(shift) {
					result = append(result, entry{
						network: entries[i].network.and(maskFor(f, parent)),
						prefix:  parent,
					})
					merged = true
					i++
					continue
				}
			}
			result = append(result, entries[i])
		}
		entries = result
		if !merged {
			return entries
		}
		entries = removeContained(sortDedupe(entries), f)
	}
}
