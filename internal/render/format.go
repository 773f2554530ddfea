package render

import "fmt"

// Format selects the wire representation of a result.
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatYAML
	FormatCSV
)

// ParseFormat maps a user-supplied format name to a Format. It accepts the
// common aliases for text and yaml.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return FormatJSON, nil
	case "text", "plain", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	}
	return 0, fmt.Errorf("unknown output format: %s", s)
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatCSV:
		return "csv"
	}
	return "unknown"
}
