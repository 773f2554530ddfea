package render

import (
	"fmt"
	"strings"
)

// TextOutput is implemented by every view that has a human-readable plain
// text rendering.
type TextOutput interface {
	Text() string
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (v *V4View) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "IPv4 Subnet Calculator")
	fmt.Fprintln(&b, "======================")
	fmt.Fprintf(&b, "Input:             %s\n", v.Input)
	fmt.Fprintf(&b, "Network Address:   %s\n", v.NetworkAddress)
	fmt.Fprintf(&b, "Broadcast Address: %s\n", v.BroadcastAddress)
	fmt.Fprintf(&b, "Subnet Mask:       %s\n", v.SubnetMask)
	fmt.Fprintf(&b, "Wildcard Mask:     %s\n", v.WildcardMask)
	fmt.Fprintf(&b, "Prefix Length:     /%d\n", v.PrefixLength)
	fmt.Fprintf(&b, "First Host:        %s\n", v.FirstHost)
	fmt.Fprintf(&b, "Last Host:         %s\n", v.LastHost)
	fmt.Fprintf(&b, "Total Hosts:       %d\n", v.TotalHosts)
	fmt.Fprintf(&b, "Usable Hosts:      %d\n", v.UsableHosts)
	fmt.Fprintf(&b, "Network Class:     %s\n", v.NetworkClass)
	fmt.Fprintf(&b, "Private Address:   %s\n", yesNo(v.IsPrivate))
	fmt.Fprintf(&b, "Address Type:      %s\n", v.AddressType)
	return b.String()
}

func (v *V6View) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "IPv6 Subnet Calculator")
	fmt.Fprintln(&b, "======================")
	fmt.Fprintf(&b, "Input:               %s\n", v.Input)
	fmt.Fprintf(&b, "Network Address:     %s\n", v.NetworkAddress)
	fmt.Fprintf(&b, "Network (Full):      %s\n", v.NetworkAddressFull)
	fmt.Fprintf(&b, "Last Address:        %s\n", v.LastAddress)
	fmt.Fprintf(&b, "Last Address (Full): %s\n", v.LastAddressFull)
	fmt.Fprintf(&b, "Prefix Length:       /%d\n", v.PrefixLength)
	fmt.Fprintf(&b, "Total Addresses:     %s\n", v.TotalAddresses)
	fmt.Fprintf(&b, "Hextets:             %s\n", strings.Join(v.Hextets, ":"))
	fmt.Fprintf(&b, "Address Type:        %s\n", v.AddressType)
	return b.String()
}

func (v *ContainsView) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Address Containment Check")
	fmt.Fprintln(&b, "=========================")
	fmt.Fprintf(&b, "Subnet:            %s\n", v.CIDR)
	fmt.Fprintf(&b, "Address:           %s\n", v.Address)
	fmt.Fprintf(&b, "Contained:         %s\n", yesNo(v.Contained))
	fmt.Fprintf(&b, "Network Address:   %s\n", v.NetworkAddress)
	fmt.Fprintf(&b, "Broadcast Address: %s\n", v.BroadcastAddress)
	return b.String()
}

func (v *SplitView) Text() string {
	var b strings.Builder
	_, v6 := v.Supernet.(*V6View)
	if v6 {
		fmt.Fprintln(&b, "IPv6 Subnet Generator")
	} else {
		fmt.Fprintln(&b, "IPv4 Subnet Generator")
	}
	fmt.Fprintln(&b, "=====================")
	fmt.Fprintf(&b, "Supernet: %s\n", supernetInput(v.Supernet))
	fmt.Fprintf(&b, "New Prefix: /%d\n", v.NewPrefix)
	fmt.Fprintf(&b, "Generated %d subnets:\n\n", v.RequestedCount)
	for i, sub := range v.Subnets {
		switch s := sub.(type) {
		case *V4View:
			fmt.Fprintf(&b, "  %d. %s/%d (Hosts: %s-%s)\n",
				i+1, s.NetworkAddress, s.PrefixLength, s.FirstHost, s.LastHost)
		case *V6View:
			fmt.Fprintf(&b, "  %d. %s/%d\n", i+1, s.NetworkAddress, s.PrefixLength)
		}
	}
	return b.String()
}

func supernetInput(v SubnetView) string {
	switch s := v.(type) {
	case *V4View:
		return s.Input
	case *V6View:
		return s.Input
	}
	return ""
}

func (v *CountView) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Subnet Split Summary")
	fmt.Fprintln(&b, "====================")
	fmt.Fprintf(&b, "Supernet:           %s\n", v.Supernet)
	fmt.Fprintf(&b, "New Prefix:         /%d\n", v.NewPrefix)
	fmt.Fprintf(&b, "Available Subnets:  %s\n", v.AvailableSubnets)
	return b.String()
}

// cidrLines renders a numbered network/prefix list, shared by the range and
// summary outputs.
func cidrLines(b *strings.Builder, views []SubnetView) {
	for i, sub := range views {
		switch s := sub.(type) {
		case *V4View:
			fmt.Fprintf(b, "  %d. %s/%d\n", i+1, s.NetworkAddress, s.PrefixLength)
		case *V6View:
			fmt.Fprintf(b, "  %d. %s/%d\n", i+1, s.NetworkAddress, s.PrefixLength)
		}
	}
}

func (v *FromRangeView) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "IP Range to CIDR")
	fmt.Fprintln(&b, "=================")
	fmt.Fprintf(&b, "Start Address: %s\n", v.StartAddress)
	fmt.Fprintf(&b, "End Address:   %s\n", v.EndAddress)
	fmt.Fprintf(&b, "CIDR Count:    %d\n\n", v.CIDRCount)
	cidrLines(&b, v.CIDRs)
	return b.String()
}

func (v *SummaryView) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "CIDR Summarization")
	fmt.Fprintln(&b, "==================")
	fmt.Fprintf(&b, "Input CIDRs:   %d\n", v.InputCount)
	fmt.Fprintf(&b, "Output CIDRs:  %d\n\n", v.OutputCount)
	cidrLines(&b, v.CIDRs)
	return b.String()
}

func (v *BatchView) Text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Batch CIDR Processing")
	fmt.Fprintln(&b, "=====================")
	fmt.Fprintf(&b, "Total CIDRs: %d\n\n", v.Count)
	for i, entry := range v.Results {
		fmt.Fprintf(&b, "--- [%d/%d] %s ---\n", i+1, v.Count, entry.CIDR)
		if entry.Error != "" {
			fmt.Fprintf(&b, "Error: %s\n\n", entry.Error)
			continue
		}
		b.WriteString(entry.Subnet.Text())
	}
	return b.String()
}
