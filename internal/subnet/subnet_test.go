package subnet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseV4(t *testing.T) {
	t.Parallel()

	s, err := Parse(V4, "192.168.1.100/24")
	require.NoError(t, err)
	require.Equal(t, "192.168.1.0", s.Network().String())
	require.Equal(t, "192.168.1.255", s.Last().String())
	require.Equal(t, "255.255.255.0", s.Mask().String())
	require.Equal(t, "0.0.0.255", s.Wildcard().String())
	require.Equal(t, 24, s.Prefix())
	require.Equal(t, "192.168.1.1", s.FirstHost().String())
	require.Equal(t, "192.168.1.254", s.LastHost().String())
	require.Equal(t, uint64(256), s.TotalHosts())
	require.Equal(t, uint64(254), s.UsableHosts())
	require.Equal(t, "C", s.NetworkClass())
	require.True(t, s.IsPrivate())
	require.Equal(t, "Private (RFC 1918)", s.AddressType())
	require.Equal(t, "192.168.1.100/24", s.Input())
	require.Equal(t, "192.168.1.0/24", s.String())
}

func TestParseV4PointToPointAndHostRoute(t *testing.T) {
	t.Parallel()

	p2p, err := Parse(V4, "10.0.0.0/31")
	require.NoError(t, err)
	require.Equal(t, uint64(2), p2p.TotalHosts())
	require.Equal(t, uint64(2), p2p.UsableHosts(), "/31 has no reserved addresses")
	require.Equal(t, "10.0.0.0", p2p.FirstHost().String())
	require.Equal(t, "10.0.0.1", p2p.LastHost().String())

	host, err := Parse(V4, "10.0.0.1/32")
	require.NoError(t, err)
	require.Equal(t, uint64(1), host.TotalHosts())
	require.Equal(t, uint64(1), host.UsableHosts())
	require.Equal(t, "10.0.0.1", host.FirstHost().String())
	require.Equal(t, "10.0.0.1", host.LastHost().String())
}

func TestParseV6(t *testing.T) {
	t.Parallel()

	s, err := Parse(V6, "2001:db8:85a3::8a2e:370:7334/64")
	require.NoError(t, err)
	require.Equal(t, "2001:db8:85a3::", s.Network().String())
	require.Equal(t, "2001:0db8:85a3:0000:0000:0000:0000:0000", s.NetworkFull())
	require.Equal(t, "2001:db8:85a3:0:ffff:ffff:ffff:ffff", s.Last().String())
	require.Equal(t, "2001:0db8:85a3:0000:ffff:ffff:ffff:ffff", s.LastFull())
	require.Equal(t, 64, s.Prefix())
	require.Equal(t,
		[]string{"2001", "0db8", "85a3", "0000", "0000", "0000", "0000", "0000"},
		s.Hextets())
	require.Equal(t, "Documentation (RFC 3849)", s.AddressType())
}

func TestTotalAddressesBoundary(t *testing.T) {
	t.Parallel()

	// The literal/symbolic switch sits exactly at 2^64.
	testCases := []struct {
		prefix int
		want   string
	}{
		{128, "1"},
		{127, "2"},
		{65, "9223372036854775808"},
		{64, "18446744073709551616"},
		{63, "2^65"},
		{0, "2^128"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			s, err := Parse(V6, "2001:db8::/"+itoa(tc.prefix))
			require.NoError(t, err)
			require.Equal(t, tc.want, s.TotalAddresses())
		})
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [3]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

func requireErrAs[T error](t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	var target T
	require.ErrorAs(t, err, &target, msgAndArgs...)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		family Family
		text   string
		check  func(*testing.T, error, ...any)
	}{
		{"missing separator", V4, "192.168.1.0", requireErrAs[*InvalidCIDRError]},
		{"double separator", V4, "192.168.1.0/24/8", requireErrAs[*InvalidCIDRError]},
		{"non numeric prefix", V4, "192.168.1.0/ab", requireErrAs[*InvalidCIDRError]},
		{"bad address", V4, "300.1.2.3/24", requireErrAs[*InvalidAddressError]},
		{"v6 address in v4 parse", V4, "2001:db8::/32", requireErrAs[*InvalidAddressError]},
		{"zoned address", V6, "fe80::1%eth0/64", requireErrAs[*InvalidAddressError]},
		{"prefix too large v4", V4, "192.168.1.0/33", requireErrAs[*PrefixLengthError]},
		{"prefix too large v6", V6, "2001:db8::/129", requireErrAs[*PrefixLengthError]},
		{"negative prefix", V4, "192.168.1.0/-1", requireErrAs[*PrefixLengthError]},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.family, tc.text)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestParseInputTooLong(t *testing.T) {
	t.Parallel()

	_, err := Parse(V4, strings.Repeat("a", 300))
	var tooLong *InputTooLongError
	require.ErrorAs(t, err, &tooLong)
	require.Equal(t, 300, tooLong.Length)
	require.Equal(t, MaxInputLength, tooLong.Limit)
}

func TestNewNormalizesHostBits(t *testing.T) {
	t.Parallel()

	s, err := Parse(V4, "10.1.2.3/8")
	require.NoError(t, err)
	require.Equal(t, "10.0.0.0", s.Network().String())
	require.Equal(t, "10.1.2.3/8", s.Input(), "the original address is preserved as input")
}

func TestAddressTypePrecedence(t *testing.T) {
	t.Parallel()

	// Carve-outs must win over their containing ranges; this ordering is
	// observable behavior, not an implementation detail.
	testCases := []struct {
		cidr string
		want string
	}{
		{"100.64.0.0/10", "Carrier-Grade NAT (RFC 6598)"},
		{"100.127.0.0/16", "Carrier-Grade NAT (RFC 6598)"},
		{"100.128.0.0/9", "Public"},
		{"192.0.2.0/24", "Documentation TEST-NET-1 (RFC 5737)"},
		{"192.0.0.0/24", "IETF Protocol Assignments (RFC 6890)"},
		{"192.88.99.0/24", "6to4 Relay Anycast (RFC 7526)"},
		{"198.18.0.0/15", "Benchmarking (RFC 2544)"},
		{"198.51.100.0/24", "Documentation TEST-NET-2 (RFC 5737)"},
		{"203.0.113.0/24", "Documentation TEST-NET-3 (RFC 5737)"},
		{"0.0.0.0/8", "Current Network (RFC 1122)"},
		{"127.0.0.1/8", "Loopback (RFC 1122)"},
		{"169.254.1.0/24", "Link-Local (RFC 3927)"},
		{"172.16.0.0/12", "Private (RFC 1918)"},
		{"224.0.0.0/4", "Multicast (RFC 5771)"},
		{"240.0.0.0/4", "Reserved (RFC 1112)"},
		{"8.8.8.0/24", "Public"},
	}
	for _, tc := range testCases {
		t.Run(tc.cidr, func(t *testing.T) {
			t.Parallel()
			s, err := Parse(V4, tc.cidr)
			require.NoError(t, err)
			require.Equal(t, tc.want, s.AddressType())
		})
	}
}

func TestAddressTypeV6(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		cidr string
		want string
	}{
		{"::1/128", "Loopback (RFC 4291)"},
		{"::/128", "Unspecified (RFC 4291)"},
		{"ff02::/16", "Multicast (RFC 4291)"},
		{"fe80::1/10", "Link-Local Unicast (RFC 4291)"},
		{"fd00::1/8", "Unique Local Address (RFC 4193)"},
		{"2001:db8::/32", "Documentation (RFC 3849)"},
		{"2001:4860::/32", "Global Unicast (RFC 4291)"},
		{"::2/128", "Other"},
	}
	for _, tc := range testCases {
		t.Run(tc.cidr, func(t *testing.T) {
			t.Parallel()
			s, err := Parse(V6, tc.cidr)
			require.NoError(t, err)
			require.Equal(t, tc.want, s.AddressType())
		})
	}
}

func TestMaskInvariants(t *testing.T) {
	t.Parallel()

	// network <= any covered address <= broadcast, numerically.
	for _, cidr := range []string{"10.0.0.0/8", "192.168.1.128/25", "0.0.0.0/0", "203.0.113.7/32"} {
		s, err := Parse(V4, cidr)
		require.NoError(t, err)
		net := addrValue(s.Network())
		last := addrValue(s.Last())
		addr := addrValue(s.addr)
		require.LessOrEqual(t, net.cmp(addr), 0, cidr)
		require.LessOrEqual(t, addr.cmp(last), 0, cidr)
		require.Equal(t, net, addr.and(maskFor(V4, s.Prefix())), cidr)
		require.Equal(t, last, net.or(wildcardFor(V4, s.Prefix())), cidr)
	}
}

func TestDetectFamily(t *testing.T) {
	t.Parallel()

	require.Equal(t, V4, DetectFamily("192.168.1.0/24"))
	require.Equal(t, V6, DetectFamily("2001:db8::/32"))
	require.Equal(t, V6, DetectFamily("::1"))
	require.Equal(t, V4, DetectFamily("not-an-ip"))
}
