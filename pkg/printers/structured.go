package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"tableflip.dev/timeline/pkg/entry"
)

// Format is a machine-readable output encoding.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected pretty, json or yaml)", raw)
	}
}

// yamlEntry mirrors the JSON field names in YAML output.
type yamlEntry struct {
	ID          int64  `yaml:"id"`
	Date        string `yaml:"date"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Image       string `yaml:"image,omitempty"`
}

// Structured writes entries to w as JSON or YAML.
func Structured(w io.Writer, format Format, entries []*entry.Entry) error {
	switch format {
	case FormatJSON:
		if entries == nil {
			entries = []*entry.Entry{}
		}
		data, err := sonic.ConfigStd.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		out := make([]yamlEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, yamlEntry{
				ID:          e.ID,
				Date:        e.Date,
				Title:       e.Title,
				Description: e.Description,
				Image:       e.Image,
			})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}
