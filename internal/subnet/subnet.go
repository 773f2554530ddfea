// Package subnet is the address-arithmetic and set-algebra engine. It
// computes derived properties of IPv4 and IPv6 prefixes and performs
// set operations over collections of them. Every function is pure: no
// I/O, no shared state, safe for concurrent use.
package subnet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// MaxInputLength bounds the length of any single textual input. Longer
// strings are rejected before parsing is attempted.
const MaxInputLength = 256

// Subnet is a validated (network, prefix) pair. The network value always has
// its host bits zeroed; everything else is derived on demand.
type Subnet struct {
	family  Family
	input   string
	addr    netip.Addr // address as supplied, before normalization
	network uint128
	prefix  int
}

// Parse parses CIDR text of the given family.
func Parse(f Family, text string) (Subnet, error) {
	if len(text) > MaxInputLength {
		return Subnet{}, &InputTooLongError{Length: len(text), Limit: MaxInputLength}
	}
	addrStr, prefixStr, ok := strings.Cut(text, "/")
	if !ok || strings.Contains(prefixStr, "/") {
		return Subnet{}, &InvalidCIDRError{Text: text}
	}
	addr, err := parseAddr(f, addrStr)
	if err != nil {
		return Subnet{}, err
	}
	prefix, err := strconv.Atoi(prefixStr)
	if err != nil {
		return Subnet{}, &InvalidCIDRError{Text: text}
	}
	return New(f, addr, prefix)
}

// New constructs a Subnet from an address and prefix length, masking the
// address down to its network value.
func New(f Family, addr netip.Addr, prefix int) (Subnet, error) {
	if prefix < 0 || prefix > f.Bits() {
		return Subnet{}, &PrefixLengthError{Prefix: prefix}
	}
	return Subnet{
		family:  f,
		input:   fmt.Sprintf("%s/%d", addr, prefix),
		addr:    addr,
		network: addrValue(addr).and(maskFor(f, prefix)),
		prefix:  prefix,
	}, nil
}

// newFromValue rebuilds a Subnet from an already validated numeric pair.
func newFromValue(f Family, v uint128, prefix int) Subnet {
	s, _ := New(f, valueAddr(f, v), prefix)
	return s
}

func (s Subnet) Family() Family { return s.family }

// Input is the address/prefix text the subnet was created from.
func (s Subnet) Input() string { return s.input }

func (s Subnet) Prefix() int { return s.prefix }

// Network is the first address of the subnet.
func (s Subnet) Network() netip.Addr { return valueAddr(s.family, s.network) }

// Last is the highest address of the subnet; for IPv4 this is the broadcast
// address.
func (s Subnet) Last() netip.Addr {
	return valueAddr(s.family, s.network.or(wildcardFor(s.family, s.prefix)))
}

// Mask is the subnet mask as an address.
func (s Subnet) Mask() netip.Addr {
	return valueAddr(s.family, maskFor(s.family, s.prefix))
}

// Wildcard is the bitwise complement of the mask.
func (s Subnet) Wildcard() netip.Addr {
	return valueAddr(s.family, wildcardFor(s.family, s.prefix))
}

// FirstHost is the lowest usable address. For prefixes at or above width-1
// every address is usable, covering point-to-point links and host routes.
func (s Subnet) FirstHost() netip.Addr {
	if s.prefix >= s.family.Bits()-1 {
		return s.Network()
	}
	v, _ := s.network.add(uint128{lo: 1})
	return valueAddr(s.family, v)
}

// LastHost is the highest usable address.
func (s Subnet) LastHost() netip.Addr {
	if s.prefix >= s.family.Bits()-1 {
		return s.Last()
	}
	last := s.network.or(wildcardFor(s.family, s.prefix))
	return valueAddr(s.family, last.sub(uint128{lo: 1}))
}

// TotalHosts is the total address count. Only meaningful for IPv4, where it
// always fits in 64 bits; IPv6 callers use TotalAddresses.
func (s Subnet) TotalHosts() uint64 {
	if s.prefix == s.family.Bits() {
		return 1
	}
	return 1 << uint(s.family.Bits()-s.prefix)
}

// UsableHosts excludes the network and broadcast addresses, except at
// prefixes of width-1 and width where all addresses are usable.
func (s Subnet) UsableHosts() uint64 {
	total := s.TotalHosts()
	if s.prefix >= s.family.Bits()-1 {
		return total
	}
	return total - 2
}

// TotalAddresses renders the address count as a decimal string, switching to
// the symbolic "2^k" form once the count no longer fits in 64 bits.
func (s Subnet) TotalAddresses() string {
	return pow2String(s.family.Bits() - s.prefix)
}

// pow2String renders 2^bits: literal up to and including 2^64, symbolic above.
func pow2String(bitCount int) string {
	switch {
	case bitCount < 64:
		return strconv.FormatUint(1<<uint(bitCount), 10)
	case bitCount == 64:
		return "18446744073709551616"
	default:
		return fmt.Sprintf("2^%d", bitCount)
	}
}

// NetworkClass is the classful A-E letter of the supplied IPv4 address.
func (s Subnet) NetworkClass() string {
	first := s.addr.As4()[0]
	switch {
	case first <= 127:
		return "A"
	case first <= 191:
		return "B"
	case first <= 223:
		return "C"
	case first <= 239:
		return "D (Multicast)"
	default:
		return "E (Reserved)"
	}
}

// IsPrivate reports whether the supplied IPv4 address is in a private,
// carrier-grade NAT, loopback or link-local range.
func (s Subnet) IsPrivate() bool {
	if s.addr.IsPrivate() || s.addr.IsLoopback() || s.addr.IsLinkLocalUnicast() {
		return true
	}
	b := s.addr.As4()
	return b[0] == 100 && b[1]&0xc0 == 64 // 100.64.0.0/10
}

// AddressType is the classification label of the network value, looked up in
// the family's ordered rule table.
func (s Subnet) AddressType() string {
	if s.family == V4 {
		return classify(v4TypeRules, s.network, "Public")
	}
	return classify(v6TypeRules, s.network, "Other")
}

// Hextets are the eight 16-bit groups of the IPv6 network address, zero
// padded.
func (s Subnet) Hextets() []string {
	b := s.Network().As16()
	out := make([]string, 8)
	for i := range out {
		out[i] = fmt.Sprintf("%04x", uint16(b[2*i])<<8|uint16(b[2*i+1]))
	}
	return out
}

// NetworkFull is the uncompressed form of the IPv6 network address.
func (s Subnet) NetworkFull() string {
	return strings.Join(s.Hextets(), ":")
}

// LastFull is the uncompressed form of the last address.
func (s Subnet) LastFull() string {
	b := s.Last().As16()
	parts := make([]string, 8)
	for i := range parts {
		parts[i] = fmt.Sprintf("%04x", uint16(b[2*i])<<8|uint16(b[2*i+1]))
	}
	return strings.Join(parts, ":")
}

// String renders the normalized network/prefix form.
func (s Subnet) String() string {
	return fmt.Sprintf("%s/%d", s.Network(), s.prefix)
}
