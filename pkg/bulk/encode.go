package bulk

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name to a Format. "yml" is accepted as
// YAML; an empty name means text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Report is the document written by the JSON and YAML encoders.
type Report struct {
	Summary Summary `json:"summary" yaml:"summary"`
	Results []Item  `json:"results" yaml:"results"`
}

// Encode writes items to w in the given format.
func Encode(w io.Writer, format Format, items []Item) error {
	report := Report{Summary: Summarize(items), Results: items}
	if report.Results == nil {
		report.Results = []Item{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return encodeText(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeText(w io.Writer, report Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range report.Results {
		status := "valid"
		detail := it.Rule
		if !it.Valid {
			status = "invalid"
			detail = it.Error
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Input, status, detail); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total=%d valid=%d invalid=%d\n",
		report.Summary.Total, report.Summary.Valid, report.Summary.Invalid)
	return err
}
