package curveio

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/osuushi/datareduce/advanced"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Columns is the JSON form of a sequence: a pair of equal length coordinate
// arrays.
type Columns struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func NewColumns(points advanced.Sequence) Columns {
	xs, ys := points.Columns()
	return Columns{X: xs, Y: ys}
}

func (c Columns) Sequence() (advanced.Sequence, error) {
	return advanced.FromColumns(c.X, c.Y)
}

func ReadJSON(r io.Reader) (advanced.Sequence, error) {
	var columns Columns
	if err := json.NewDecoder(r).Decode(&columns); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	return columns.Sequence()
}

func WriteJSON(w io.Writer, points advanced.Sequence) error {
	return errors.Wrap(json.NewEncoder(w).Encode(NewColumns(points)), "encoding json")
}

// Read points in the given format.
func Read(r io.Reader, format Format) (advanced.Sequence, error) {
	switch format {
	case CSV:
		return ReadCSV(r)
	case JSON:
		return ReadJSON(r)
	case GeoJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading geojson")
		}
		return ReadGeoJSON(data)
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%d", int(format))
}

// Write points in the given format.
func Write(w io.Writer, points advanced.Sequence, format Format) error {
	switch format {
	case CSV:
		return WriteCSV(w, points, nil)
	case JSON:
		return WriteJSON(w, points)
	case GeoJSON:
		return WriteGeoJSON(w, points, nil)
	}
	return errors.Wrapf(ErrUnknownFormat, "%d", int(format))
}
