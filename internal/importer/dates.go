package importer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// fakeLeapDay is the serial Excel assigns to 1900-02-29, a day that never
// existed. Serials below it are one day off from the epoch used after it.
const fakeLeapDay = 60

// maxSerial is 9999-12-31, the last day with a four-digit year.
const maxSerial = 2958465

var serialEpochBeforeLeapBug = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// textDateLayouts are tried in order for non-numeric date cells.
var textDateLayouts = []string{
	models.DateLayout,
	"2006/01/02",
	"02/01/2006",
	"2-Jan-2006",
}

// ParseDateCell normalises a spreadsheet date cell to YYYY-MM-DD. Numeric
// cells are 1900-system serials; anything else is parsed as text.
func ParseDateCell(s string) (models.Date, error) {
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return SerialToDate(serial)
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateOf(t), nil
		}
	}
	return "", fmt.Errorf("unrecognised date %q", s)
}

// SerialToDate converts a 1900 date system serial (1 = 1900-01-01) to a
// calendar date, reproducing the spreadsheet leap-year bug: serial 60 is the
// nonexistent 1900-02-29 and is rejected. Fractional parts are times of day
// and are dropped.
func SerialToDate(serial float64) (models.Date, error) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", fmt.Errorf("date serial %v is not a number", serial)
	}
	days := int(serial)
	switch {
	case serial < 1, serial >= maxSerial+1:
		return "", fmt.Errorf("date serial %v is out of range", serial)
	case days == fakeLeapDay:
		return "", errors.New("date serial 60 is 1900-02-29, which does not exist")
	case days < fakeLeapDay:
		return models.DateOf(serialEpochBeforeLeapBug.AddDate(0, 0, days)), nil
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", fmt.Errorf("date serial %v: %w", serial, err)
	}
	d := models.DateOf(t)
	if _, err := models.ParseDate(string(d)); err != nil {
		return "", fmt.Errorf("date serial %v: %w", serial, err)
	}
	return d, nil
}
