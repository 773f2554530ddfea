package subnet

import (
	"encoding/binary"
	"net/netip"
)

func addrValue(a netip.Addr) uint128 {
	if a.Is4() {
		b := a.As4()
		return uint128{lo: uint64(binary.BigEndian.Uint32(b[:]))}
	}
	b := a.As16()
	return uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

func valueAddr(f Family, v uint128) netip.Addr {
	if f == V4 {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v.lo))
		return netip.AddrFrom4(b)
	}
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.hi)
	binary.BigEndian.PutUint64(b[8:], v.lo)
	return netip.AddrFrom16(b)
}

// allOnes returns the all-ones value of the family's width.
func allOnes(f Family) uint128 {
	if f == V4 {
		return uint128{lo: 0xffffffff}
	}
	return uint128{hi: ^uint64(0), lo: ^uint64(0)}
}

// maskFor returns the network mask with exactly prefix leading one-bits
// within the family's width.
func maskFor(f Family, prefix int) uint128 {
	ones := allOnes(f)
	return ones.lsh(uint(f.Bits() - prefix)).and(ones)
}

// wildcardFor is the bitwise complement of the mask within the width.
func wildcardFor(f Family, prefix int) uint128 {
	return maskFor(f, prefix).xor(allOnes(f))
}

// parseAddr parses a bare address of the given family. Zoned addresses are
// rejected; the engine has no interface scope concept.
func parseAddr(f Family, s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil || a.Zone() != "" {
		return netip.Addr{}, &InvalidAddressError{Family: f, Text: s}
	}
	if f == V4 && !a.Is4() {
		return netip.Addr{}, &InvalidAddressError{Family: f, Text: s}
	}
	if f == V6 && a.Is4() {
		return netip.Addr{}, &InvalidAddressError{Family: f, Text: s}
	}
	return a, nil
}
