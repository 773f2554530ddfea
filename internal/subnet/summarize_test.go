package subnet

import (
	"math/rand"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"go4.org/netipx"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		family Family
		in     []string
		want   []string
	}{
		{
			"adjacent siblings merge", V4,
			[]string{"192.168.0.0/24", "192.168.1.0/24"},
			[]string{"192.168.0.0/23"},
		},
		{
			"contained collapses into container", V4,
			[]string{"10.0.0.0/8", "10.1.0.0/16"},
			[]string{"10.0.0.0/8"},
		},
		{
			"cascading merge", V4,
			[]string{"10.0.0.0/24", "10.0.1.0/24", "10.0.2.0/24", "10.0.3.0/24"},
			[]string{"10.0.0.0/22"},
		},
		{
			"duplicates", V4,
			[]string{"10.0.0.0/24", "10.0.0.0/24"},
			[]string{"10.0.0.0/24"},
		},
		{
			"host bits normalized before merging", V4,
			[]string{"10.0.0.7/24", "10.0.1.200/24"},
			[]string{"10.0.0.0/23"},
		},
		{
			"non-adjacent stay apart", V4,
			[]string{"10.0.0.0/24", "10.0.2.0/24"},
			[]string{"10.0.0.0/24", "10.0.2.0/24"},
		},
		{
			"aligned pair only merges on even boundary", V4,
			[]string{"10.0.1.0/24", "10.0.2.0/24"},
			[]string{"10.0.1.0/24", "10.0.2.0/24"},
		},
		{
			"merge exposes containment", V4,
			[]string{"10.0.0.0/23", "10.0.2.0/24", "10.0.3.0/24", "10.0.0.0/22"},
			[]string{"10.0.0.0/22"},
		},
		{
			"single entry", V4,
			[]string{"172.16.5.0/24"},
			[]string{"172.16.5.0/24"},
		},
		{
			"v6 siblings merge", V6,
			[]string{"2001:db8:0::/48", "2001:db8:1::/48"},
			[]string{"2001:db8::/47"},
		},
		{
			"v6 containment", V6,
			[]string{"2001:db8::/32", "2001:db8:abcd::/48"},
			[]string{"2001:db8::/32"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := Summarize(tc.family, tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, cidrStrings(res.CIDRs))
			require.Equal(t, len(tc.in), res.InputCount)
			require.Equal(t, len(tc.want), res.OutputCount)
		})
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	t.Parallel()

	in := []string{"10.0.0.0/24", "10.0.1.0/24", "10.0.2.0/23", "192.168.0.0/16"}
	first, err := Summarize(V4, in)
	require.NoError(t, err)

	again, err := Summarize(V4, cidrStrings(first.CIDRs))
	require.NoError(t, err)
	require.Equal(t, cidrStrings(first.CIDRs), cidrStrings(again.CIDRs))
}

func TestSummarizeOrderIndependent(t *testing.T) {
	t.Parallel()

	in := []string{"10.0.3.0/24", "10.0.0.0/24", "10.0.2.0/24", "10.0.1.0/24", "172.16.0.0/12"}
	want, err := Summarize(V4, in)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), in...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := Summarize(V4, shuffled)
		require.NoError(t, err)
		require.Equal(t, cidrStrings(want.CIDRs), cidrStrings(got.CIDRs))
	}
}

// TestSummarizeMatchesIPSet cross-checks against netipx, which aggregates
// prefixes through an independent interval-set representation.
func TestSummarizeMatchesIPSet(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"10.0.0.0/24", "10.0.1.0/24", "10.0.2.0/25", "10.0.2.128/25"},
		{"192.168.0.0/16", "192.168.64.0/18", "192.169.0.0/16"},
		{"172.16.0.0/13", "172.24.0.0/13", "172.20.0.0/14"},
		{"2001:db8::/33", "2001:db8:8000::/33", "2001:db9::/32"},
	}

	for _, in := range inputs {
		in := in
		t.Run(in[0], func(t *testing.T) {
			t.Parallel()

			f := DetectFamily(in[0])
			res, err := Summarize(f, in)
			require.NoError(t, err)

			var b netipx.IPSetBuilder
			for _, c := range in {
				b.AddPrefix(netip.MustParsePrefix(c).Masked())
			}
			set, err := b.IPSet()
			require.NoError(t, err)

			want := make([]string, 0, len(set.Prefixes()))
			for _, p := range set.Prefixes() {
				want = append(want, p.String())
			}
			require.Equal(t, want, cidrStrings(res.CIDRs))
		})
	}
}

func TestSummarizeErrors(t *testing.T) {
	t.Parallel()

	_, err := Summarize(V4, nil)
	require.ErrorIs(t, err, ErrEmptyCIDRList)

	// One bad entry fails the whole call; nothing partial comes back.
	_, err = Summarize(V4, []string{"10.0.0.0/24", "not-a-cidr"})
	requireErrAs[*InvalidCIDRError](t, err)

	_, err = Summarize(V4, []string{"10.0.0.0/24", "2001:db8::/32"})
	requireErrAs[*InvalidAddressError](t, err)

	var limitErr *SummarizeLimitError
	_, err = SummarizeWithLimit(V4, []string{"10.0.0.0/24", "10.0.1.0/24", "10.0.2.0/24"}, 2)
	require.ErrorAs(t, err, &limitErr)
	require.Equal(t, 3, limitErr.Count)
	require.Equal(t, 2, limitErr.Limit)
}
