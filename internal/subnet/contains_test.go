package subnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cidr    string
		address string
		want    bool
	}{
		{"inside v4", "192.168.1.0/24", "192.168.1.100", true},
		{"outside v4", "192.168.1.0/24", "10.0.0.1", false},
		{"host route match", "10.0.0.1/32", "10.0.0.1", true},
		{"host route miss", "10.0.0.1/32", "10.0.0.2", false},
		{"default route covers everything", "0.0.0.0/0", "255.255.255.255", true},
		{"inside v6", "2001:db8::/32", "2001:db8::1", true},
		{"outside v6", "2001:db8::/32", "2001:db9::1", false},
		{"non-normalized cidr", "192.168.1.77/24", "192.168.1.200", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Contains(tc.cidr, tc.address)
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Contained)
			require.Equal(t, tc.address, res.Address)
		})
	}
}

func TestContainsReportsRange(t *testing.T) {
	t.Parallel()

	res, err := Contains("192.168.1.0/24", "192.168.1.100")
	require.NoError(t, err)
	require.Equal(t, "192.168.1.0/24", res.CIDR)
	require.Equal(t, "192.168.1.0", res.Network.String())
	require.Equal(t, "192.168.1.255", res.LastAddress.String())
}

func TestContainsErrorKinds(t *testing.T) {
	t.Parallel()

	// An invalid CIDR and an invalid address must stay distinguishable.
	_, err := Contains("not-a-cidr", "192.168.1.1")
	requireErrAs[*InvalidCIDRError](t, err)

	_, err = Contains("192.168.1.0/24", "not-an-ip")
	requireErrAs[*InvalidAddressError](t, err)

	// The address family follows the CIDR.
	_, err = Contains("192.168.1.0/24", "2001:db8::1")
	requireErrAs[*InvalidAddressError](t, err)
}
