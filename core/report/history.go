package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"inventory-control/core/inventory"

	"github.com/goccy/go-yaml"
)

// Format is an audit log export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// HistoryBaseName is the audit log download name without extension.
const HistoryBaseName = "inventario_historial"

// ParseFormat accepts json, yaml or yml in any case. An empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported history format: %q", s)
	}
}

// FileName returns the suggested download name for the format.
func (f Format) FileName() string {
	return HistoryBaseName + "." + string(f)
}

// ContentType returns the media type of the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// WriteHistory writes the audit log, newest entry first, indented by two spaces.
func WriteHistory(w io.Writer, entries []inventory.AuditEntry, format Format) error {
	if entries == nil {
		entries = []inventory.AuditEntry{}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON, "":
		data, err = json.MarshalIndent(entries, "", "  ")
	case FormatYAML:
		data, err = yaml.MarshalWithOptions(entries, yaml.Indent(2))
	default:
		return fmt.Errorf("unsupported history format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	_, err = w.Write(data)
	return err
}
