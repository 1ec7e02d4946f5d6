package report

import (
	"bytes"
	"testing"

	"inventory-control/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incidents(n int) []inventory.Incident {
	out := make([]inventory.Incident, n)
	for i := range out {
		out[i] = inventory.Incident{Code: "C", Type: inventory.IncidentMissing, Expected: inventory.IntPtr(1), Actual: inventory.IntPtr(0)}
	}
	return out
}

func TestIncidentLine(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		inc  inventory.Incident
		want string
	}{
		{
			name: "Mismatch",
			idx:  0,
			inc:  inventory.Incident{Code: "A", Type: inventory.IncidentMismatch, Expected: inventory.IntPtr(5), Actual: inventory.IntPtr(7)},
			want: "1. [mismatch] A — esperado: 5 — actual: 7",
		},
		{
			name: "NotFoundWithoutQuantities",
			idx:  9,
			inc:  inventory.Incident{Code: "ZZZ", Type: inventory.IncidentNotFound},
			want: "10. [not_found] ZZZ — esperado: - — actual: -",
		},
		{
			name: "ZeroIsPrinted",
			idx:  1,
			inc:  inventory.Incident{Code: "B", Type: inventory.IncidentMissing, Expected: inventory.IntPtr(3), Actual: inventory.IntPtr(0)},
			want: "2. [missing] B — esperado: 3 — actual: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IncidentLine(tt.idx, tt.inc))
		})
	}
}

func TestPaginate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		layout := Paginate(nil)
		assert.Equal(t, 1, layout.Pages)
		assert.Empty(t, layout.Lines)
	})

	t.Run("FirstPageHolds31Lines", func(t *testing.T) {
		layout := Paginate(incidents(31))
		assert.Equal(t, 1, layout.Pages)
		assert.Equal(t, FirstLineY, layout.Lines[0].Y)
		assert.Equal(t, BreakY, layout.Lines[30].Y)
	})

	t.Run("SecondPageRestartsAtTop", func(t *testing.T) {
		layout := Paginate(incidents(32))
		require.Len(t, layout.Lines, 32)
		assert.Equal(t, 2, layout.Pages)
		assert.Equal(t, Placement{Page: 2, Y: PageTopY, Text: "32. [missing] C — esperado: 1 — actual: 0"}, layout.Lines[31])
	})

	t.Run("LaterPagesHold32Lines", func(t *testing.T) {
		layout := Paginate(incidents(31 + 32 + 1))
		assert.Equal(t, 3, layout.Pages)
		assert.Equal(t, 2, layout.Lines[62].Page)
		assert.Equal(t, 268.0, layout.Lines[62].Y)
		assert.Equal(t, 3, layout.Lines[63].Page)
	})
}

func TestWriteIncidentsPDF(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteIncidentsPDF(&buf, incidents(40)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")))
}

func TestWriteIncidentsPDF_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteIncidentsPDF(&buf, nil))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
