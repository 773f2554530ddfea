package render

import "github.com/Flarenzy/ipcalc/internal/subnet"

// SubnetView is the serializable form of a subnet, either V4 or V6. The
// concrete type decides the wire shape; callers mostly pass it through to a
// Writer.
type SubnetView interface {
	TextOutput
	subnetView()
}

// V4View is the wire representation of an IPv4 subnet.
type V4View struct {
	Version          string `json:"version,omitempty" yaml:"version,omitempty"`
	Input            string `json:"input" yaml:"input"`
	NetworkAddress   string `json:"network_address" yaml:"network_address"`
	BroadcastAddress string `json:"broadcast_address" yaml:"broadcast_address"`
	SubnetMask       string `json:"subnet_mask" yaml:"subnet_mask"`
	WildcardMask     string `json:"wildcard_mask" yaml:"wildcard_mask"`
	PrefixLength     int    `json:"prefix_length" yaml:"prefix_length"`
	FirstHost        string `json:"first_host" yaml:"first_host"`
	LastHost         string `json:"last_host" yaml:"last_host"`
	TotalHosts       uint64 `json:"total_hosts" yaml:"total_hosts"`
	UsableHosts      uint64 `json:"usable_hosts" yaml:"usable_hosts"`
	NetworkClass     string `json:"network_class" yaml:"network_class"`
	IsPrivate        bool   `json:"is_private" yaml:"is_private"`
	AddressType      string `json:"address_type" yaml:"address_type"`
}

// V6View is the wire representation of an IPv6 subnet.
type V6View struct {
	Version            string   `json:"version,omitempty" yaml:"version,omitempty"`
	Input              string   `json:"input" yaml:"input"`
	NetworkAddress     string   `json:"network_address" yaml:"network_address"`
	NetworkAddressFull string   `json:"network_address_full" yaml:"network_address_full"`
	LastAddress        string   `json:"last_address" yaml:"last_address"`
	LastAddressFull    string   `json:"last_address_full" yaml:"last_address_full"`
	PrefixLength       int      `json:"prefix_length" yaml:"prefix_length"`
	TotalAddresses     string   `json:"total_addresses" yaml:"total_addresses"`
	Hextets            []string `json:"hextets" yaml:"hextets"`
	AddressType        string   `json:"address_type" yaml:"address_type"`
}

func (*V4View) subnetView() {}
func (*V6View) subnetView() {}

// NewSubnetView maps a subnet to the view matching its family.
func NewSubnetView(s subnet.Subnet) SubnetView {
	if s.Family() == subnet.V6 {
		return NewV6View(s)
	}
	return NewV4View(s)
}

// NewV4View maps an IPv4 subnet to its wire form.
func NewV4View(s subnet.Subnet) *V4View {
	return &V4View{
		Input:            s.Input(),
		NetworkAddress:   s.Network().String(),
		BroadcastAddress: s.Last().String(),
		SubnetMask:       s.Mask().String(),
		WildcardMask:     s.Wildcard().String(),
		PrefixLength:     s.Prefix(),
		FirstHost:        s.FirstHost().String(),
		LastHost:         s.LastHost().String(),
		TotalHosts:       s.TotalHosts(),
		UsableHosts:      s.UsableHosts(),
		NetworkClass:     s.NetworkClass(),
		IsPrivate:        s.IsPrivate(),
		AddressType:      s.AddressType(),
	}
}

// NewV6View maps an IPv6 subnet to its wire form.
func NewV6View(s subnet.Subnet) *V6View {
	return &V6View{
		Input:              s.Input(),
		NetworkAddress:     s.Network().String(),
		NetworkAddressFull: s.NetworkFull(),
		LastAddress:        s.Last().String(),
		LastAddressFull:    s.LastFull(),
		PrefixLength:       s.Prefix(),
		TotalAddresses:     s.TotalAddresses(),
		Hextets:            s.Hextets(),
		AddressType:        s.AddressType(),
	}
}

// taggedSubnetView is NewSubnetView plus the version discriminator batch
// entries carry.
func taggedSubnetView(s subnet.Subnet) SubnetView {
	switch v := NewSubnetView(s).(type) {
	case *V4View:
		v.Version = "v4"
		return v
	case *V6View:
		v.Version = "v6"
		return v
	default:
		return v
	}
}

// ContainsView is the wire representation of a containment check.
type ContainsView struct {
	CIDR             string `json:"cidr" yaml:"cidr"`
	Address          string `json:"address" yaml:"address"`
	Contained        bool   `json:"contained" yaml:"contained"`
	NetworkAddress   string `json:"network_address" yaml:"network_address"`
	BroadcastAddress string `json:"broadcast_address" yaml:"broadcast_address"`
}

func NewContainsView(r subnet.ContainsResult) *ContainsView {
	return &ContainsView{
		CIDR:             r.CIDR,
		Address:          r.Address,
		Contained:        r.Contained,
		NetworkAddress:   r.Network.String(),
		BroadcastAddress: r.LastAddress.String(),
	}
}

// SplitView is the wire representation of a generated subnet list.
type SplitView struct {
	Supernet       SubnetView   `json:"supernet" yaml:"supernet"`
	NewPrefix      int          `json:"new_prefix" yaml:"new_prefix"`
	RequestedCount uint64       `json:"requested_count" yaml:"requested_count"`
	Subnets        []SubnetView `json:"subnets" yaml:"subnets"`
}

func NewSplitView(r subnet.SplitResult) *SplitView {
	subnets := make([]SubnetView, len(r.Subnets))
	for i, s := range r.Subnets {
		subnets[i] = NewSubnetView(s)
	}
	return &SplitView{
		Supernet:       NewSubnetView(r.Supernet),
		NewPrefix:      r.NewPrefix,
		RequestedCount: r.RequestedCount,
		Subnets:        subnets,
	}
}

// CountView is the wire representation of a count-only split.
type CountView struct {
	Supernet         string `json:"supernet" yaml:"supernet"`
	NewPrefix        int    `json:"new_prefix" yaml:"new_prefix"`
	AvailableSubnets string `json:"available_subnets" yaml:"available_subnets"`
}

func NewCountView(r subnet.CountResult) *CountView {
	return &CountView{
		Supernet:         r.Supernet.Input(),
		NewPrefix:        r.NewPrefix,
		AvailableSubnets: r.Available,
	}
}

// FromRangeView is the wire representation of a range decomposition.
type FromRangeView struct {
	StartAddress string       `json:"start_address" yaml:"start_address"`
	EndAddress   string       `json:"end_address" yaml:"end_address"`
	CIDRCount    int          `json:"cidr_count" yaml:"cidr_count"`
	CIDRs        []SubnetView `json:"cidrs" yaml:"cidrs"`
}

func NewFromRangeView(r subnet.FromRangeResult) *FromRangeView {
	cidrs := make([]SubnetView, len(r.CIDRs))
	for i, s := range r.CIDRs {
		cidrs[i] = NewSubnetView(s)
	}
	return &FromRangeView{
		StartAddress: r.StartAddress,
		EndAddress:   r.EndAddress,
		CIDRCount:    r.CIDRCount,
		CIDRs:        cidrs,
	}
}

// SummaryView is the wire representation of a summarization.
type SummaryView struct {
	InputCount  int          `json:"input_count" yaml:"input_count"`
	OutputCount int          `json:"output_count" yaml:"output_count"`
	CIDRs       []SubnetView `json:"cidrs" yaml:"cidrs"`
}

func NewSummaryView(r subnet.SummaryResult) *SummaryView {
	cidrs := make([]SubnetView, len(r.CIDRs))
	for i, s := range r.CIDRs {
		cidrs[i] = NewSubnetView(s)
	}
	return &SummaryView{
		InputCount:  r.InputCount,
		OutputCount: r.OutputCount,
		CIDRs:       cidrs,
	}
}

// BatchEntryView pairs an input CIDR with either its subnet or the error
// that rejected it.
type BatchEntryView struct {
	CIDR   string     `json:"cidr" yaml:"cidr"`
	Subnet SubnetView `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	Error  string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchView is the wire representation of a batch run.
type BatchView struct {
	Count   int              `json:"count" yaml:"count"`
	Results []BatchEntryView `json:"results" yaml:"results"`
}

func NewBatchView(r subnet.BatchResult) *BatchView {
	results := make([]BatchEntryView, len(r.Results))
	for i, e := range r.Results {
		entry := BatchEntryView{CIDR: e.CIDR}
		if e.Err != nil {
			entry.Error = e.Err.Error()
		} else {
			entry.Subnet = taggedSubnetView(*e.Subnet)
		}
		results[i] = entry
	}
	return &BatchView{Count: r.Count, Results: results}
}
