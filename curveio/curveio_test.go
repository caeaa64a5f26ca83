package curveio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/datareduce/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = advanced.Sequence{{X: 0, Y: 0}, {X: 1.5, Y: -2}, {X: 3, Y: 4.25}}

func TestReadCSV(t *testing.T) {
	points, err := ReadCSV(strings.NewReader("X1,X2\n0,0\n1.5,-2\n3, 4.25\n"))
	require.NoError(t, err)
	assert.Equal(t, sample, points)

	// Header is optional
	points, err = ReadCSV(strings.NewReader("0,0\n1.5,-2\n3,4.25\n"))
	require.NoError(t, err)
	assert.Equal(t, sample, points)

	points, err = ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestReadCSV_InvalidShape(t *testing.T) {
	cases := map[string]string{
		"three columns":  "a,b,c\n1,2,3\n",
		"ragged":         "1,2\n3\n",
		"non-numeric":    "x,y\n1,2\nthree,4\n",
		"nan":            "1,2\nNaN,4\n",
		"one column row": "1\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(input))
			assert.ErrorIs(t, err, advanced.ErrInvalidShape)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample, nil))
	assert.Equal(t, "X1,X2\n0,0\n1.5,-2\n3,4.25\n", buf.String())

	points, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample, points)

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, sample[:1], []string{"t", "v"}))
	assert.Equal(t, "t,v\n0,0\n", buf.String())
}

func TestReadGeoJSON(t *testing.T) {
	geometry := `{"type":"LineString","coordinates":[[0,0],[1.5,-2],[3,4.25,99]]}`
	feature := `{"type":"Feature","properties":{},"geometry":` + geometry + `}`
	collection := `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,1]}},` +
		feature + `]}`

	for name, input := range map[string]string{"geometry": geometry, "feature": feature, "collection": collection} {
		t.Run(name, func(t *testing.T) {
			points, err := ReadGeoJSON([]byte(input))
			require.NoError(t, err)
			assert.Equal(t, sample, points)
		})
	}
}

func TestReadGeoJSON_Invalid(t *testing.T) {
	_, err := ReadGeoJSON([]byte(`{"type":"Point","coordinates":[1,1]}`))
	assert.ErrorIs(t, err, advanced.ErrInvalidShape)

	_, err = ReadGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	assert.ErrorIs(t, err, advanced.ErrInvalidShape)

	_, err = ReadGeoJSON([]byte(`{"type":"LineString","coordinates":[[0],[1,1]]}`))
	assert.ErrorIs(t, err, advanced.ErrInvalidShape)

	_, err = ReadGeoJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, sample, map[string]interface{}{"strategy": "Downsampling"}))
	assert.Contains(t, buf.String(), `"strategy":"Downsampling"`)

	points, err := ReadGeoJSON(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sample, points)
}

func TestJSON(t *testing.T) {
	points, err := ReadJSON(strings.NewReader(`{"x":[0,1.5,3],"y":[0,-2,4.25]}`))
	require.NoError(t, err)
	assert.Equal(t, sample, points)

	_, err = ReadJSON(strings.NewReader(`{"x":[0,1.5,3],"y":[0,-2]}`))
	assert.ErrorIs(t, err, advanced.ErrInvalidShape)

	_, err = ReadJSON(strings.NewReader(`{"x":["a"],"y":[0]}`))
	assert.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample))
	assert.JSONEq(t, `{"x":[0,1.5,3],"y":[0,-2,4.25]}`, buf.String())
}

func TestReadWrite(t *testing.T) {
	for _, name := range FormatNames() {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, format.String())

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sample, format))
		points, err := Read(&buf, format)
		require.NoError(t, err, name)
		assert.Equal(t, sample, points, name)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Write(&bytes.Buffer{}, sample, Format(42)), ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"data.csv":          CSV,
		"/tmp/DATA.CSV":     CSV,
		"track.geojson":     GeoJSON,
		"columns.json":      JSON,
		"some/dir/file.txt": CSV,
	}
	for path, expected := range cases {
		format, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, format, path)
	}
	_, err := FormatFromPath("image.png")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
