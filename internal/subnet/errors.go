package subnet

import (
	"errors"
	"fmt"
)

// ErrEmptyCIDRList is returned when an operation over a CIDR list receives
// no entries at all.
var ErrEmptyCIDRList = errors.New("no CIDRs provided")

// InvalidAddressError reports text that does not parse as an address of the
// expected family.
type InvalidAddressError struct {
	Family Family
	Text   string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid %s address: %s", e.Family, e.Text)
}

// InvalidCIDRError reports text that is not address/prefix notation.
type InvalidCIDRError struct {
	Text string
}

func (e *InvalidCIDRError) Error() string {
	return fmt.Sprintf("invalid CIDR notation: %s", e.Text)
}

// PrefixLengthError reports a prefix length outside the family's range.
type PrefixLengthError struct {
	Prefix int
}

func (e *PrefixLengthError) Error() string {
	return fmt.Sprintf("invalid prefix length: %d (must be 0-32 for IPv4, 0-128 for IPv6)", e.Prefix)
}

// InputTooLongError rejects oversized input before any parsing happens.
type InputTooLongError struct {
	Length int
	Limit  int
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("input string exceeds maximum length of %d bytes", e.Limit)
}

// InvalidSplitError reports a split whose new prefix does not subdivide the
// supernet.
type InvalidSplitError struct {
	NewPrefix      int
	OriginalPrefix int
}

func (e *InvalidSplitError) Error() string {
	return fmt.Sprintf("new prefix length %d must be greater than original prefix %d", e.NewPrefix, e.OriginalPrefix)
}

// InsufficientSubnetsError reports a split request for more subnets than the
// supernet holds.
type InsufficientSubnetsError struct {
	Requested      uint64
	Available      uint64
	NewPrefix      int
	OriginalPrefix int
}

func (e *InsufficientSubnetsError) Error() string {
	return fmt.Sprintf("cannot generate %d /%d subnets from /%d (only %d available)",
		e.Requested, e.NewPrefix, e.OriginalPrefix, e.Available)
}

// SubnetLimitError reports that generating all subnets would cross the output
// ceiling. Count is rendered symbolically ("2^k") when it exceeds 2^64.
type SubnetLimitError struct {
	Count string
	Limit uint64
}

func (e *SubnetLimitError) Error() string {
	return fmt.Sprintf("generating %s subnets exceeds the limit of %d; use count-only to see the count, or request a smaller number", e.Count, e.Limit)
}

// InvalidRangeError reports a range whose start is above its end.
type InvalidRangeError struct {
	Start string
	End   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s is greater than end %s", e.Start, e.End)
}

// FromRangeLimitError reports that decomposing a range would emit more CIDRs
// than the output ceiling allows.
type FromRangeLimitError struct {
	Count int
	Limit int
}

func (e *FromRangeLimitError) Error() string {
	return fmt.Sprintf("generated CIDR count %d exceeds maximum of %d", e.Count, e.Limit)
}

// SummarizeLimitError reports a summarize input list above the input ceiling.
type SummarizeLimitError struct {
	Count int
	Limit int
}

func (e *SummarizeLimitError) Error() string {
	return fmt.Sprintf("summarize input count %d exceeds maximum of %d", e.Count, e.Limit)
}

// BatchSizeError reports a batch above the batch size ceiling.
type BatchSizeError struct {
	Count int
	Limit int
}

func (e *BatchSizeError) Error() string {
	return fmt.Sprintf("batch size %d exceeds maximum of %d", e.Count, e.Limit)
}
