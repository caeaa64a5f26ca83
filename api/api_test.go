package api

import (
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/osuushi/datareduce/cache"
	"github.com/osuushi/datareduce/render"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zigzagBody = `{"x":[0,1,2,3,4],"y":[0,1,0,1,0]}`

func newTestAPI(t *testing.T) (*ReduceAPI, *cache.ImportanceCache) {
	importanceCache, err := cache.New(8)
	require.NoError(t, err)
	options := render.DefaultOptions()
	options.Width, options.Height = 160, 120
	return New(importanceCache, zerolog.Nop(), 3, options), importanceCache
}

func do(api *ReduceAPI, method, target, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	api.Handler("*").ServeHTTP(w, r)
	return w
}

func TestReduce(t *testing.T) {
	api, importanceCache := newTestAPI(t)

	w := do(api, "POST", "/reduce/vw?target=3", zigzagBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, contentJSON, w.Header().Get("Content-Type"))

	var response ReduceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Visvalingam-Whyatt", response.Strategy)
	assert.Equal(t, []float64{0, 3, 4}, response.X)
	assert.Equal(t, []float64{0, 1, 0}, response.Y)
	assert.Equal(t, []int{0, 3, 4}, response.Kept)
	assert.Empty(t, response.Warning)
	assert.Equal(t, 1, importanceCache.Len())
}

func TestReduce_DefaultTarget(t *testing.T) {
	api, _ := newTestAPI(t)
	w := do(api, "POST", "/reduce/Downsampling", zigzagBody)
	require.Equal(t, http.StatusOK, w.Code)

	var response ReduceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []int{0, 2, 4}, response.Kept)
}

func TestReduce_NoOp(t *testing.T) {
	api, _ := newTestAPI(t)
	w := do(api, "POST", "/reduce/downsample?target=5", zigzagBody)
	require.Equal(t, http.StatusOK, w.Code)

	var response ReduceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, response.X)
	assert.Contains(t, response.Warning, "no reduction will be performed")
}

func TestReduce_Errors(t *testing.T) {
	api, _ := newTestAPI(t)
	cases := []struct {
		name, target, body string
		status             int
	}{
		{"unknown strategy", "/reduce/rdp?target=3", zigzagBody, http.StatusNotFound},
		{"target too small", "/reduce/vw?target=2", zigzagBody, http.StatusBadRequest},
		{"target not a number", "/reduce/vw?target=few", zigzagBody, http.StatusBadRequest},
		{"mismatched columns", "/reduce/vw?target=3", `{"x":[0,1,2],"y":[0,1]}`, http.StatusBadRequest},
		{"not json", "/reduce/vw?target=3", `x,y`, http.StatusBadRequest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := do(api, "POST", c.target, c.body)
			assert.Equal(t, c.status, w.Code, w.Body.String())
		})
	}

	w := do(api, "GET", "/reduce/vw", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRender(t *testing.T) {
	api, _ := newTestAPI(t)
	w := do(api, "POST", "/render/vw?target=3", zigzagBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, contentPNG, w.Header().Get("Content-Type"))

	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())

	w = do(api, "POST", "/render/vw?target=1", zigzagBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStrategies(t *testing.T) {
	api, _ := newTestAPI(t)
	w := do(api, "GET", "/strategies", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Visvalingam-Whyatt","Downsampling"]`, w.Body.String())
}

func TestHealthcheckAndMetrics(t *testing.T) {
	api, _ := newTestAPI(t)
	w := do(api, "GET", "/healthcheck", "")
	assert.Equal(t, http.StatusOK, w.Code)

	do(api, "POST", "/reduce/vw?target=3", zigzagBody)
	w = do(api, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "datareduce_reductions_total")
}

func TestCORS(t *testing.T) {
	api, _ := newTestAPI(t)
	r := httptest.NewRequest("OPTIONS", "/reduce/vw", nil)
	r.Header.Set("Origin", "http://example.com")
	r.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	api.Handler("*").ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
