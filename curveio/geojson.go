package curveio

import (
	"io"

	"github.com/osuushi/datareduce/advanced"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// ReadGeoJSON reads a LineString from a bare geometry, a Feature, or the first
// LineString feature in a FeatureCollection. Only the first two values of each
// position are used.
func ReadGeoJSON(data []byte) (advanced.Sequence, error) {
	var geometry *geojson.Geometry

	if collection, err := geojson.UnmarshalFeatureCollection(data); err == nil && collection.Type == "FeatureCollection" {
		for _, feature := range collection.Features {
			if feature.Geometry != nil && feature.Geometry.IsLineString() {
				geometry = feature.Geometry
				break
			}
		}
		if geometry == nil {
			return nil, errors.Wrap(advanced.ErrInvalidShape, "feature collection has no LineString")
		}
	} else if feature, err := geojson.UnmarshalFeature(data); err == nil && feature.Type == "Feature" {
		geometry = feature.Geometry
	} else {
		geometry, err = geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing geojson")
		}
	}

	if geometry == nil || !geometry.IsLineString() {
		return nil, errors.Wrap(advanced.ErrInvalidShape, "geojson is not a LineString")
	}
	points := make(advanced.Sequence, len(geometry.LineString))
	for i, position := range geometry.LineString {
		if len(position) < 2 {
			return nil, errors.Wrapf(advanced.ErrInvalidShape, "position %d has %d values", i, len(position))
		}
		points[i] = advanced.Point{X: position[0], Y: position[1]}
		if !points[i].IsFinite() {
			return nil, errors.Wrapf(advanced.ErrInvalidShape, "position %d is not numeric", i)
		}
	}
	return points, nil
}

// WriteGeoJSON writes points as a LineString Feature with the given
// properties.
func WriteGeoJSON(w io.Writer, points advanced.Sequence, properties map[string]interface{}) error {
	feature := geojson.NewLineStringFeature(points.Rows())
	for key, value := range properties {
		feature.SetProperty(key, value)
	}
	data, err := feature.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
