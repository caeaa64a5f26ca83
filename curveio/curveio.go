// Package curveio reads and writes sequences as two column CSV, GeoJSON
// LineStrings, or JSON coordinate columns.
package curveio

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type Format int

const (
	CSV Format = iota
	GeoJSON
	JSON
)

var formatNames = map[Format]string{
	CSV:     "csv",
	GeoJSON: "geojson",
	JSON:    "json",
}

func (f Format) String() string {
	return formatNames[f]
}

func FormatNames() []string {
	return []string{"csv", "geojson", "json"}
}

var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(name string) (Format, error) {
	for format, formatName := range formatNames {
		if strings.EqualFold(name, formatName) {
			return format, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Guess the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSV, nil
	case ".geojson":
		return GeoJSON, nil
	case ".json":
		return JSON, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "can't tell the format of %q", path)
}
