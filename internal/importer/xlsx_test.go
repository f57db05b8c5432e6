package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTemplateRoundTrip(t *testing.T) {
	data, err := Template()
	require.NoError(t, err)

	rows, err := ReadXLSX(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "Acme Corp", row.CompanyName)
	assert.Equal(t, "2024-05-15", row.DueDate)
	assert.Equal(t, "150", row.Amount)

	bills, err := Normalize(rows, Options{Today: "2024-05-10"})
	require.NoError(t, err)
	assert.Equal(t, "Cloud Infrastructure", bills[0].Subcategory)
}

func TestReadXLSXSerialDatesAndBlankRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	row := []interface{}{"Beta Ltd", "Sarah Jones", "Rent", 4500, "MVR", 45383, 45414, "Rent/Lease", "Office Space"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &row))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Line)

	bills, err := Normalize(rows, Options{Today: "2024-06-01"})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", bills[0].BillDate.String())
	assert.Equal(t, "2024-05-02", bills[0].DueDate.String())
	assert.Equal(t, "Overdue", string(bills[0].Status))
	assert.Equal(t, "MVR", string(bills[0].Currency))
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		strings.Join(Columns, ","),
		`Acme Corp,John Smith,"Cloud, monthly",1250.00,USD,2024-05-01,2024-05-15,Software Subscription,SaaS`,
		`,,,,,,,,`,
		`,Orphan Staff,,10,,,2024-05-20,,`,
		`Gamma Inc,Emily Davis,,3200.50,,,2024-05-20,,`,
	}, "\n")

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cloud, monthly", rows[0].Description)
	assert.Equal(t, 5, rows[1].Line)
	assert.Equal(t, "", rows[1].Category)
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	_, err := Decode("bills.xls", []byte("whatever"))
	assert.ErrorContains(t, err, "unsupported file type")
}
