package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/osuushi/datareduce/advanced"
	"github.com/osuushi/datareduce/curveio"
	"github.com/osuushi/datareduce/render"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 32 << 20

// Content types
var (
	contentJSON = "application/json"
	contentPNG  = "image/png"
)

// ReduceResponse is the body returned by /reduce/{strategy}
type ReduceResponse struct {
	Strategy string    `json:"strategy"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
	Kept     []int     `json:"kept"`
	Warning  string    `json:"warning,omitempty"`
}

var errBadTarget = errors.New("target must be an integer")

func (api *ReduceAPI) listStrategies(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, strategy := range advanced.Strategies() {
		names = append(names, strategy.String())
	}
	api.writeJSON(w, names)
}

func (api *ReduceAPI) reduce(w http.ResponseWriter, r *http.Request) {
	_, result, err := api.runReduction(w, r)
	if err != nil {
		api.setErrorCode(w, err)
		return
	}

	xs, ys := result.reduction.Points.Columns()
	response := ReduceResponse{
		Strategy: result.strategy.String(),
		X:        xs,
		Y:        ys,
		Kept:     result.reduction.Kept,
	}
	if result.reduction.Warning != nil {
		response.Warning = result.reduction.Warning.Error()
	}
	api.writeJSON(w, response)
}

func (api *ReduceAPI) renderOverlay(w http.ResponseWriter, r *http.Request) {
	original, result, err := api.runReduction(w, r)
	if err != nil {
		api.setErrorCode(w, err)
		return
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, original, result.reduction.Points, api.renderOptions); err != nil {
		api.setErrorCode(w, err)
		return
	}
	w.Header().Set("Content-Type", contentPNG)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		api.logger.Error().Err(err).Msg("writing png response")
	}
}

type reductionResult struct {
	strategy  advanced.Strategy
	reduction *advanced.Reduction
}

// Shared by reduce and render: parse the strategy, target and body, then
// reduce.
func (api *ReduceAPI) runReduction(w http.ResponseWriter, r *http.Request) (advanced.Sequence, *reductionResult, error) {
	strategy, err := advanced.ParseStrategy(mux.Vars(r)["strategy"])
	if err != nil {
		return nil, nil, err
	}

	target := api.defaultTarget
	if raw := r.URL.Query().Get("target"); raw != "" {
		target, err = strconv.Atoi(raw)
		if err != nil {
			return nil, nil, errors.Wrapf(errBadTarget, "%q", raw)
		}
	}

	var columns curveio.Columns
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&columns); err != nil {
		return nil, nil, errors.Wrap(advanced.ErrInvalidShape, err.Error())
	}
	points, err := columns.Sequence()
	if err != nil {
		return nil, nil, err
	}
	reductionInputPoints.Observe(float64(len(points)))

	reducer, err := api.cache.NewReducer(strategy)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	reduction, err := reducer.Reduce(points, target)
	reductionDuration.WithLabelValues(strategy.String()).Observe(time.Since(start).Seconds())

	logEvent := api.logger.Debug()
	switch {
	case err != nil:
		reductionsTotal.WithLabelValues(strategy.String(), "error").Inc()
		return nil, nil, err
	case reduction.IsNoOp():
		reductionsTotal.WithLabelValues(strategy.String(), "noop").Inc()
		logEvent = api.logger.Warn().Str("warning", reduction.Warning.Error())
	default:
		reductionsTotal.WithLabelValues(strategy.String(), "ok").Inc()
	}
	logEvent.
		Str("strategy", strategy.String()).
		Int("points", len(points)).
		Int("target", target).
		Dur("elapsed", time.Since(start)).
		Msg("reduced")

	return points, &reductionResult{strategy: strategy, reduction: reduction}, nil
}

func (api *ReduceAPI) writeJSON(w http.ResponseWriter, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		api.setErrorCode(w, err)
		return
	}
	w.Header().Set("Content-Type", contentJSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		api.logger.Error().Err(err).Msg("writing json response")
	}
}

func (api *ReduceAPI) setErrorCode(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, advanced.ErrUnknownStrategy):
		status = http.StatusNotFound
	case errors.Is(err, advanced.ErrInvalidShape),
		errors.Is(err, advanced.ErrInvalidTargetCount),
		errors.Is(err, errBadTarget):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		api.logger.Error().Err(err).Msg("request failed")
	} else {
		api.logger.Debug().Err(err).Int("status", status).Msg("bad request")
	}
	http.Error(w, err.Error(), status)
}
