package importer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TemplateSheet is the sheet name used by the downloadable template.
const TemplateSheet = "Template"

// Columns is the header row of the upload template, in column order.
var Columns = []string{
	"Company Name",
	"Staff Name",
	"Description",
	"Amount",
	"Currency (USD/MVR)",
	"Bill Date (YYYY-MM-DD)",
	"Due Date (YYYY-MM-DD)",
	"Category",
	"Subcategory",
}

// ReadXLSX reads data rows from the first sheet of a workbook. The first
// row is treated as the header. Cells are read raw so date cells arrive as
// serials rather than locale-formatted text.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rowsFromCells(cells), nil
}

// Template builds the blank upload workbook with one sample row.
func Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		return nil, fmt.Errorf("failed to name template sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	sample := []interface{}{
		"Acme Corp",
		"John Doe",
		"Monthly Server Cost",
		150.00,
		"USD",
		"2024-05-01",
		"2024-05-15",
		"Software Subscription",
		"Cloud Infrastructure",
	}
	if err := f.SetSheetRow(TemplateSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write template header: %w", err)
	}
	if err := f.SetSheetRow(TemplateSheet, "A2", &sample); err != nil {
		return nil, fmt.Errorf("failed to write template sample: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}
	return buf.Bytes(), nil
}

// rowsFromCells maps template-ordered cells to rows, skipping the header
// and blank rows. A row whose company cell is empty counts as blank.
func rowsFromCells(cells [][]string) []Row {
	var rows []Row
	for i, rec := range cells {
		if i == 0 || blank(rec) {
			continue
		}
		rows = append(rows, Row{
			Line:        i + 1,
			CompanyName: cell(rec, 0),
			StaffName:   cell(rec, 1),
			Description: cell(rec, 2),
			Amount:      cell(rec, 3),
			Currency:    cell(rec, 4),
			BillDate:    cell(rec, 5),
			DueDate:     cell(rec, 6),
			Category:    cell(rec, 7),
			Subcategory: cell(rec, 8),
		})
	}
	return rows
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blank(rec []string) bool {
	return len(rec) == 0 || strings.TrimSpace(rec[0]) == ""
}

// Decode picks a reader from the file name's extension.
func Decode(filename string, data []byte) ([]Row, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xlsm"):
		return ReadXLSX(bytes.NewReader(data))
	case strings.HasSuffix(name, ".csv"):
		return ReadCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w %q: upload .xlsx or .csv", ErrUnsupportedFormat, filename)
	}
}
