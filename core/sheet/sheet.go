package sheet

import (
	"fmt"
	"io"
	"strings"

	"inventory-control/core/inventory"
	"inventory-control/core/utils"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the name of the worksheet written by Export.
	SheetName = "Inventory"
	// FileName is the suggested download name for an exported workbook.
	FileName = "inventario_teorico.xlsx"
	// ContentType is the media type of an xlsx workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Header aliases in lookup order. The first alias present in the header row wins,
// even when its cell is empty for a given row.
var (
	CodeAliases = []string{"code", "Codigo", "CODIGO", "barcode", "Barcode", "BARCODE"}
	NameAliases = []string{"name", "Name", "NOMBRE", "nombre"}
	QtyAliases  = []string{"qty", "Qty", "CANT", "cant", "cantidad"}
)

// ExampleItem is exported in place of an empty theoretical inventory, as a template.
var ExampleItem = inventory.InventoryItem{Code: "1234567890123", Name: "Example item", Qty: 10}

// Import reads theoretical items from the first worksheet of an xlsx workbook.
// The first row is the header. Fully blank rows are skipped.
func Import(r io.Reader) ([]inventory.InventoryItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %s: %w", sheets[0], err)
	}

	items := make([]inventory.InventoryItem, 0, len(rows))
	if len(rows) == 0 {
		return items, nil
	}

	header := rows[0]
	codeCol := column(header, CodeAliases)
	nameCol := column(header, NameAliases)
	qtyCol := column(header, QtyAliases)

	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		items = append(items, inventory.InventoryItem{
			Code: strings.TrimSpace(cell(row, codeCol)),
			Name: cell(row, nameCol),
			Qty:  utils.ToQty(cell(row, qtyCol)),
		})
	}

	return items, nil
}

// Export writes items to a single "Inventory" worksheet with a code,name,qty header.
// An empty collection exports ExampleItem.
func Export(w io.Writer, items []inventory.InventoryItem) error {
	if len(items) == 0 {
		items = []inventory.InventoryItem{ExampleItem}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{"code", "name", "qty"}); err != nil {
		return err
	}

	for i, item := range items {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cellRef, &[]any{item.Code, item.Name, item.Qty}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// column returns the index of the first alias found in header, or -1.
func column(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, h := range header {
			if strings.TrimSpace(h) == alias {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
