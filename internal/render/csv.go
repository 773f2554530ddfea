package render

import "strconv"

// CSVOutput is implemented by every view that has a tabular rendering. The
// first record is the header.
type CSVOutput interface {
	CSVRecords() [][]string
}

func (v *V4View) CSVRecords() [][]string {
	return [][]string{
		{"input", "network_address", "broadcast_address", "subnet_mask", "wildcard_mask",
			"prefix_length", "first_host", "last_host", "total_hosts", "usable_hosts",
			"network_class", "is_private", "address_type"},
		{v.Input, v.NetworkAddress, v.BroadcastAddress, v.SubnetMask, v.WildcardMask,
			strconv.Itoa(v.PrefixLength), v.FirstHost, v.LastHost,
			strconv.FormatUint(v.TotalHosts, 10), strconv.FormatUint(v.UsableHosts, 10),
			v.NetworkClass, strconv.FormatBool(v.IsPrivate), v.AddressType},
	}
}

func (v *V6View) CSVRecords() [][]string {
	return [][]string{
		{"input", "network_address", "network_address_full", "last_address",
			"last_address_full", "prefix_length", "total_addresses", "address_type"},
		{v.Input, v.NetworkAddress, v.NetworkAddressFull, v.LastAddress,
			v.LastAddressFull, strconv.Itoa(v.PrefixLength), v.TotalAddresses, v.AddressType},
	}
}

func (v *ContainsView) CSVRecords() [][]string {
	return [][]string{
		{"cidr", "address", "contained", "network_address", "broadcast_address"},
		{v.CIDR, v.Address, strconv.FormatBool(v.Contained), v.NetworkAddress, v.BroadcastAddress},
	}
}

func (v *CountView) CSVRecords() [][]string {
	return [][]string{
		{"supernet", "new_prefix", "available_subnets"},
		{v.Supernet, strconv.Itoa(v.NewPrefix), v.AvailableSubnets},
	}
}

// cidrRecords flattens a subnet list into cidr rows under a header.
func cidrRecords(views []SubnetView) [][]string {
	records := make([][]string, 0, len(views)+1)
	records = append(records, []string{"cidr"})
	for _, sub := range views {
		switch s := sub.(type) {
		case *V4View:
			records = append(records, []string{s.NetworkAddress + "/" + strconv.Itoa(s.PrefixLength)})
		case *V6View:
			records = append(records, []string{s.NetworkAddress + "/" + strconv.Itoa(s.PrefixLength)})
		}
	}
	return records
}

func (v *SplitView) CSVRecords() [][]string     { return cidrRecords(v.Subnets) }
func (v *FromRangeView) CSVRecords() [][]string { return cidrRecords(v.CIDRs) }
func (v *SummaryView) CSVRecords() [][]string   { return cidrRecords(v.CIDRs) }

func (v *BatchView) CSVRecords() [][]string {
	records := make([][]string, 0, len(v.Results)+1)
	records = append(records, []string{"cidr", "network_address", "prefix_length", "error"})
	for _, entry := range v.Results {
		if entry.Error != "" {
			records = append(records, []string{entry.CIDR, "", "", entry.Error})
			continue
		}
		switch s := entry.Subnet.(type) {
		case *V4View:
			records = append(records, []string{entry.CIDR, s.NetworkAddress, strconv.Itoa(s.PrefixLength), ""})
		case *V6View:
			records = append(records, []string{entry.CIDR, s.NetworkAddress, strconv.Itoa(s.PrefixLength), ""})
		}
	}
	return records
}
