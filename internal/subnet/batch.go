package subnet

import "strings"

// DefaultMaxBatchSize caps how many entries a batch call accepts.
const DefaultMaxBatchSize = 10_000

// BatchEntry pairs an input CIDR with its outcome: exactly one of Subnet and
// Err is set.
type BatchEntry struct {
	CIDR   string
	Subnet *Subnet
	Err    error
}

// BatchResult holds per-entry outcomes in input order.
type BatchResult struct {
	Count   int
	Results []BatchEntry
}

// ProcessBatch parses a mixed list of IPv4/IPv6 CIDRs. A failing entry
// records its error and does not abort the batch; this is the only partial-
// success operation in the engine.
func ProcessBatch(cidrs []string) (BatchResult, error) {
	return ProcessBatchWithLimit(cidrs, DefaultMaxBatchSize)
}

// ProcessBatchWithLimit is ProcessBatch with an explicit size ceiling,
// enforced before any per-entry work begins.
func ProcessBatchWithLimit(cidrs []string, limit int) (BatchResult, error) {
	if len(cidrs) == 0 {
		return BatchResult{}, ErrEmptyCIDRList
	}
	if len(cidrs) > limit {
		return BatchResult{}, &BatchSizeError{Count: len(cidrs), Limit: limit}
	}

	results := make([]BatchEntry, 0, len(cidrs))
	for _, raw := range cidrs {
		trimmed := strings.TrimSpace(raw)
		sub, err := Parse(DetectFamily(trimmed), trimmed)
		if err != nil {
			results = append(results, BatchEntry{CIDR: trimmed, Err: err})
			continue
		}
		results = append(results, BatchEntry{CIDR: trimmed, Subnet: &sub})
	}
	return BatchResult{Count: len(results), Results: results}, nil
}
