package subnet

import "net/netip"

// ContainsResult reports whether an address falls inside a CIDR.
type ContainsResult struct {
	CIDR        string
	Address     string
	Contained   bool
	Network     netip.Addr
	LastAddress netip.Addr
}

// Contains checks an address against a CIDR. The CIDR and the address are
// parsed independently so an invalid CIDR and an invalid address surface as
// distinguishable errors; the address family follows the CIDR text.
func Contains(cidrText, addrText string) (ContainsResult, error) {
	f := DetectFamily(cidrText)
	sub, err := Parse(f, cidrText)
	if err != nil {
		return ContainsResult{}, err
	}
	addr, err := parseAddr(f, addrText)
	if err != nil {
		return ContainsResult{}, err
	}

	mask := maskFor(f, sub.prefix)
	contained := addrValue(addr).and(mask) == sub.network

	return ContainsResult{
		CIDR:        sub.String(),
		Address:     addrText,
		Contained:   contained,
		Network:     sub.Network(),
		LastAddress: sub.Last(),
	}, nil
}
