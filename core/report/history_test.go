package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"inventory-control/core/inventory"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHistory() []inventory.AuditEntry {
	qty := 4
	at := time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)
	return []inventory.AuditEntry{
		{Action: inventory.ActionUpdate, Code: "A", Time: at, Updates: &inventory.RecordUpdate{Qty: &qty}},
		{Action: inventory.ActionClearReal, Time: at.Add(-time.Minute)},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: " yml ", want: FormatYAML},
		{in: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_FileName(t *testing.T) {
	assert.Equal(t, "inventario_historial.json", FormatJSON.FileName())
	assert.Equal(t, "inventario_historial.yaml", FormatYAML.FileName())
	assert.Equal(t, "application/yaml", FormatYAML.ContentType())
}

func TestWriteHistory_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteHistory(&buf, sampleHistory(), FormatJSON))

	assert.Contains(t, buf.String(), "\n  {\n    \"action\": \"update\"")
	var back []inventory.AuditEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sampleHistory(), back)
}

func TestWriteHistory_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, nil, FormatJSON))
	assert.Equal(t, "[]", buf.String())
}

func TestWriteHistory_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteHistory(&buf, sampleHistory(), FormatYAML))

	assert.Contains(t, buf.String(), "- action: update")
	var back []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 2)
	assert.Equal(t, "A", back[0]["code"])
	assert.Equal(t, "clear_real", back[1]["action"])
}

func TestWriteHistory_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteHistory(&buf, nil, Format("xml")))
	assert.Zero(t, buf.Len())
}
