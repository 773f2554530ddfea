package subnet

import "strings"

// Family selects the address width the engine operates on.
type Family int

const (
	V4 Family = iota
	V6
)

// Bits returns the address width of the family.
func (f Family) Bits() int {
	if f == V4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	if f == V4 {
		return "IPv4"
	}
	return "IPv6"
}

// DetectFamily guesses the family of a textual address or CIDR. A colon can
// only appear in IPv6 notation.
func DetectFamily(s string) Family {
	if strings.Contains(s, ":") {
		return V6
	}
	return V4
}
