package curveio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/datareduce/advanced"
	"github.com/pkg/errors"
)

var DefaultHeader = []string{"X1", "X2"}

// ReadCSV reads a table of exactly two numeric columns. The first row may be
// a header, which is recognised by not being numeric; a non-numeric cell
// anywhere else is an error.
func ReadCSV(r io.Reader) (advanced.Sequence, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var xs, ys []float64
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading csv")
		}
		if len(record) != 2 {
			return nil, errors.Wrapf(advanced.ErrInvalidShape, "csv row %d has %d columns, expected 2", row+1, len(record))
		}
		x, xErr := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		y, yErr := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if xErr != nil || yErr != nil {
			if row == 0 {
				continue
			}
			return nil, errors.Wrapf(advanced.ErrInvalidShape, "csv row %d is not numeric: %q", row+1, record)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return advanced.FromColumns(xs, ys)
}

// WriteCSV writes points as two columns under header, or DefaultHeader if
// header is nil.
func WriteCSV(w io.Writer, points advanced.Sequence, header []string) error {
	if header == nil {
		header = DefaultHeader
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "writing csv")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing csv")
}
