package subnet

// DefaultMaxGeneratedCIDRs caps how many blocks FromRange may emit.
const DefaultMaxGeneratedCIDRs = 1_000_000

// FromRangeResult is the minimal CIDR cover of an address range.
type FromRangeResult struct {
	StartAddress string
	EndAddress   string
	CIDRCount    int
	CIDRs        []Subnet
}

// FromRange decomposes [start, end] into the minimal ordered set of CIDR
// blocks covering it exactly. The family is taken from the start address.
func FromRange(start, end string) (FromRangeResult, error) {
	return FromRangeWithLimit(start, end, DefaultMaxGeneratedCIDRs)
}

// FromRangeWithLimit is FromRange with an explicit output ceiling.
func FromRangeWithLimit(start, end string, limit int) (FromRangeResult, error) {
	f := DetectFamily(start)
	startAddr, err := parseAddr(f, start)
	if err != nil {
		return FromRangeResult{}, err
	}
	endAddr, err := parseAddr(f, end)
	if err != nil {
		return FromRangeResult{}, err
	}

	s, e := addrValue(startAddr), addrValue(endAddr)
	if s.cmp(e) > 0 {
		return FromRangeResult{}, &InvalidRangeError{Start: start, End: end}
	}

	width := f.Bits()
	var blocks []Subnet
	cur := s
	for cur.cmp(e) <= 0 {
		if len(blocks) >= limit {
			return FromRangeResult{}, &FromRangeLimitError{Count: len(blocks) + 1, Limit: limit}
		}

		// Largest block that is both aligned at cur and fits in what
		// remains of the range. The greedy choice is minimal: anything
		// smaller subdivides this block, anything larger breaks
		// alignment or overruns end.
		aligned := cur.trailingZeros()
		if aligned > width {
			aligned = width
		}
		size, carry := e.sub(cur).add(uint128{lo: 1})
		rangeBits := width
		if carry == 0 && !(width == 32 && size.bitLen() > 32) {
			rangeBits = size.bitLen() - 1
		}
		bitCount := min(aligned, rangeBits)

		blocks = append(blocks, newFromValue(f, cur, width-bitCount))

		step := uint128{lo: 1}.lsh(uint(bitCount))
		if step.isZero() {
			break // the /0 block just emitted covered the whole space
		}
		next, carry := cur.add(step)
		if carry != 0 {
			break // advanced past the top of the address space
		}
		cur = next
	}

	return FromRangeResult{
		StartAddress: startAddr.String(),
		EndAddress:   endAddr.String(),
		CIDRCount:    len(blocks),
		CIDRs:        blocks,
	}, nil
}
