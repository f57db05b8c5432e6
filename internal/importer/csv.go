package importer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads template-ordered rows from comma separated text. The first
// record is the header.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rowsFromCells(records), nil
}
