package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Format is a structured output encoding.
type Format string

// Supported output formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json or yaml)", s)
	}
}

// Output writes command results in the selected format.
type Output struct {
	writer io.Writer
	format Format
}

// NewOutput creates a new Output instance.
func NewOutput(cmd *cobra.Command) *Output {
	name, _ := cmd.Flags().GetString("output")
	format, err := ParseFormat(name)
	if err != nil {
		format = FormatJSON
	}
	return &Output{
		writer: cmd.OutOrStdout(),
		format: format,
	}
}

// Write encodes data in the selected format.
func (o *Output) Write(data interface{}) error {
	if o.format == FormatYAML {
		enc := yaml.NewEncoder(o.writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}

	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
