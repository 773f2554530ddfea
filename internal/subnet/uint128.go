package subnet

import "math/bits"

// uint128 is an unsigned 128-bit integer held as two 64-bit limbs.
// IPv4 values live entirely in the low limb.
type uint128 struct {
	hi, lo uint64
}

var zero128 = uint128{}

func u128(hi, lo uint64) uint128 { return uint128{hi: hi, lo: lo} }

func (u uint128) isZero() bool { return u.hi|u.lo == 0 }

func (u uint128) and(v uint128) uint128 { return uint128{u.hi & v.hi, u.lo & v.lo} }

func (u uint128) or(v uint128) uint128 { return uint128{u.hi | v.hi, u.lo | v.lo} }

func (u uint128) xor(v uint128) uint128 { return uint128{u.hi ^ v.hi, u.lo ^ v.lo} }

func (u uint128) not() uint128 { return uint128{^u.hi, ^u.lo} }

// add returns u+v and the carry out of the high limb.
func (u uint128) add(v uint128) (uint128, uint64) {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, carry := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi, lo}, carry
}

// sub returns u-v, wrapping on underflow.
func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi, lo}
}

// lsh returns u<<k. Shift counts of 128 or more yield zero.
func (u uint128) lsh(k uint) uint128 {
	switch {
	case k >= 128:
		return zero128
	case k >= 64:
		return uint128{hi: u.lo << (k - 64)}
	case k == 0:
		return u
	default:
		return uint128{hi: u.hi<<k | u.lo>>(64-k), lo: u.lo << k}
	}
}

// rsh returns u>>k. Shift counts of 128 or more yield zero.
func (u uint128) rsh(k uint) uint128 {
	switch {
	case k >= 128:
		return zero128
	case k >= 64:
		return uint128{lo: u.hi >> (k - 64)}
	case k == 0:
		return u
	default:
		return uint128{hi: u.hi >> k, lo: u.lo>>k | u.hi<<(64-k)}
	}
}

// cmp returns -1, 0 or 1 comparing u against v.
func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}
		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// trailingZeros returns the number of trailing zero bits; 128 for zero.
func (u uint128) trailingZeros() int {
	if u.lo != 0 {
		return bits.TrailingZeros64(u.lo)
	}
	return 64 + bits.TrailingZeros64(u.hi)
}

// bitLen returns the minimum number of bits required to represent u.
func (u uint128) bitLen() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}
