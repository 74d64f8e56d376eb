package table

import (
	"encoding/csv"
	"io"

	"github.com/matzehuels/gridtable/pkg/errors"
)

// FromCSV builds a table from CSV input. When hasHeader is set the first
// record becomes the table header. Records may vary in length; short rows
// render with trailing empty cells.
func FromCSV(r io.Reader, hasHeader bool) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "reading csv")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "csv input is empty")
	}

	t := New()
	if hasHeader {
		t.SetHeader(records[0]...)
		records = records[1:]
	}
	t.AppendRows(records)
	return t, nil
}
