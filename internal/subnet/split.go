package subnet

import (
	"math"
	"strconv"
)

// DefaultMaxGeneratedSubnets caps how many subnets a single split call may
// materialize.
const DefaultMaxGeneratedSubnets = 1_000_000

// SplitResult holds the subnets generated from a supernet.
type SplitResult struct {
	Supernet       Subnet
	NewPrefix      int
	RequestedCount uint64
	Subnets        []Subnet
}

// CountResult reports how many subnets a split would produce, without
// generating them. Available is symbolic ("2^k") above 2^64.
type CountResult struct {
	Supernet  Subnet
	NewPrefix int
	Available string
}

// Split generates exactly count subnets of newPrefix from the supernet CIDR.
func Split(cidrText string, newPrefix int, count uint64) (SplitResult, error) {
	return split(cidrText, newPrefix, &count, DefaultMaxGeneratedSubnets)
}

// SplitMax generates every subnet of newPrefix the supernet holds, subject
// to the generation ceiling.
func SplitMax(cidrText string, newPrefix int) (SplitResult, error) {
	return split(cidrText, newPrefix, nil, DefaultMaxGeneratedSubnets)
}

// SplitMaxWithLimit is SplitMax with an explicit generation ceiling.
func SplitMaxWithLimit(cidrText string, newPrefix int, limit uint64) (SplitResult, error) {
	return split(cidrText, newPrefix, nil, limit)
}

// CountOnly runs the split preconditions and reports the available count.
func CountOnly(cidrText string, newPrefix int) (CountResult, error) {
	sup, err := Parse(DetectFamily(cidrText), cidrText)
	if err != nil {
		return CountResult{}, err
	}
	if _, err := splitChecks(sup, newPrefix); err != nil {
		return CountResult{}, err
	}
	return CountResult{
		Supernet:  sup,
		NewPrefix: newPrefix,
		Available: pow2String(newPrefix - sup.prefix),
	}, nil
}

// splitChecks validates the new prefix and returns the available subnet
// count, saturated to MaxUint64 when the bit difference reaches 64.
func splitChecks(sup Subnet, newPrefix int) (uint64, error) {
	if newPrefix > sup.family.Bits() {
		return 0, &PrefixLengthError{Prefix: newPrefix}
	}
	if newPrefix <= sup.prefix {
		return 0, &InvalidSplitError{NewPrefix: newPrefix, OriginalPrefix: sup.prefix}
	}
	diff := newPrefix - sup.prefix
	if diff >= 64 {
		return math.MaxUint64, nil
	}
	return 1 << uint(diff), nil
}

func split(cidrText string, newPrefix int, count *uint64, limit uint64) (SplitResult, error) {
	sup, err := Parse(DetectFamily(cidrText), cidrText)
	if err != nil {
		return SplitResult{}, err
	}
	available, err := splitChecks(sup, newPrefix)
	if err != nil {
		return SplitResult{}, err
	}

	actual := available
	if count != nil {
		if *count > available {
			return SplitResult{}, &InsufficientSubnetsError{
				Requested:      *count,
				Available:      available,
				NewPrefix:      newPrefix,
				OriginalPrefix: sup.prefix,
			}
		}
		actual = *count
	}

	step := uint128{lo: 1}.lsh(uint(sup.family.Bits() - newPrefix))
	subnets := make([]Subnet, 0, min(actual, limit))
	cur := sup.network
	for i := uint64(0); i < actual; i++ {
		// Checked while generating so an astronomical request fails
		// before it allocates, not after.
		if uint64(len(subnets)) >= limit {
			return SplitResult{}, &SubnetLimitError{Count: totalCount(sup, newPrefix, count), Limit: limit}
		}
		subnets = append(subnets, newFromValue(sup.family, cur, newPrefix))
		cur, _ = cur.add(step)
	}

	return SplitResult{
		Supernet:       sup,
		NewPrefix:      newPrefix,
		RequestedCount: actual,
		Subnets:        subnets,
	}, nil
}

// totalCount renders the size of the rejected request for the limit error.
func totalCount(sup Subnet, newPrefix int, count *uint64) string {
	if count != nil {
		return strconv.FormatUint(*count, 10)
	}
	return pow2String(newPrefix - sup.prefix)
}
