package subnet

// classRule labels every network whose value, masked, equals the rule value.
type classRule struct {
	mask  uint128
	value uint128
	label string
}

func classify(rules []classRule, network uint128, fallback string) string {
	for _, r := range rules {
		if network.and(r.mask) == r.value {
			return r.label
		}
	}
	return fallback
}

func v4Rule(mask, value uint32, label string) classRule {
	return classRule{mask: uint128{lo: uint64(mask)}, value: uint128{lo: uint64(value)}, label: label}
}

func v6Rule(prefix int, hi, lo uint64, label string) classRule {
	return classRule{mask: maskFor(V6, prefix), value: uint128{hi: hi, lo: lo}, label: label}
}

// v4TypeRules is evaluated top-down, first match wins. Carve-outs are listed
// before the ranges that contain them (TEST-NET-1 before 192.0.0.0/24,
// carrier-grade NAT before any wider class A match); the order is part of
// the observable contract.
var v4TypeRules = []classRule{
	v4Rule(0xff000000, 0x00000000, "Current Network (RFC 1122)"),           // 0.0.0.0/8
	v4Rule(0xff000000, 0x0a000000, "Private (RFC 1918)"),                   // 10.0.0.0/8
	v4Rule(0xffc00000, 0x64400000, "Carrier-Grade NAT (RFC 6598)"),         // 100.64.0.0/10
	v4Rule(0xff000000, 0x7f000000, "Loopback (RFC 1122)"),                  // 127.0.0.0/8
	v4Rule(0xffff0000, 0xa9fe0000, "Link-Local (RFC 3927)"),                // 169.254.0.0/16
	v4Rule(0xfff00000, 0xac100000, "Private (RFC 1918)"),                   // 172.16.0.0/12
	v4Rule(0xffffff00, 0xc0000200, "Documentation TEST-NET-1 (RFC 5737)"),  // 192.0.2.0/24
	v4Rule(0xffffff00, 0xc0000000, "IETF Protocol Assignments (RFC 6890)"), // 192.0.0.0/24
	v4Rule(0xffffff00, 0xc0586300, "6to4 Relay Anycast (RFC 7526)"),        // 192.88.99.0/24
	v4Rule(0xffff0000, 0xc0a80000, "Private (RFC 1918)"),                   // 192.168.0.0/16
	v4Rule(0xfffe0000, 0xc6120000, "Benchmarking (RFC 2544)"),              // 198.18.0.0/15
	v4Rule(0xffffff00, 0xc6336400, "Documentation TEST-NET-2 (RFC 5737)"),  // 198.51.100.0/24
	v4Rule(0xffffff00, 0xcb007100, "Documentation TEST-NET-3 (RFC 5737)"),  // 203.0.113.0/24
	v4Rule(0xf0000000, 0xe0000000, "Multicast (RFC 5771)"),                 // 224.0.0.0/4
	v4Rule(0xf0000000, 0xf0000000, "Reserved (RFC 1112)"),                  // 240.0.0.0/4
}

// v6TypeRules follows the same first-match discipline: the exact-match
// loopback and unspecified rules come before every wider range.
var v6TypeRules = []classRule{
	v6Rule(128, 0, 1, "Loopback (RFC 4291)"),                            // ::1/128
	v6Rule(128, 0, 0, "Unspecified (RFC 4291)"),                         // ::/128
	v6Rule(8, 0xff00000000000000, 0, "Multicast (RFC 4291)"),            // ff00::/8
	v6Rule(10, 0xfe80000000000000, 0, "Link-Local Unicast (RFC 4291)"),  // fe80::/10
	v6Rule(7, 0xfc00000000000000, 0, "Unique Local Address (RFC 4193)"), // fc00::/7
	v6Rule(32, 0x20010db800000000, 0, "Documentation (RFC 3849)"),       // 2001:db8::/32
	v6Rule(3, 0x2000000000000000, 0, "Global Unicast (RFC 4291)"),       // 2000::/3
}
