package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/osuushi/datareduce/cache"
	"github.com/osuushi/datareduce/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var httpServer *http.Server

// ReduceAPI serves point reduction over HTTP
type ReduceAPI struct {
	router        *mux.Router
	cache         *cache.ImportanceCache
	logger        zerolog.Logger
	defaultTarget int
	renderOptions render.Options
}

// New creates the API and its routes. VW reductions share importanceCache.
func New(importanceCache *cache.ImportanceCache, logger zerolog.Logger, defaultTarget int, renderOptions render.Options) *ReduceAPI {
	api := &ReduceAPI{
		router:        mux.NewRouter(),
		cache:         importanceCache,
		logger:        logger,
		defaultTarget: defaultTarget,
		renderOptions: renderOptions,
	}
	api.routes()
	return api
}

// routes contain all endpoints for the service
func (api *ReduceAPI) routes() {
	api.router.Path("/healthcheck").Methods("GET").HandlerFunc(emptyHealthcheck)
	api.router.Path("/metrics").Methods("GET").Handler(promhttp.Handler())
	api.router.HandleFunc("/strategies", api.listStrategies).Methods("GET")
	api.router.HandleFunc("/reduce/{strategy}", api.reduce).Methods("POST")
	api.router.HandleFunc("/render/{strategy}", api.renderOverlay).Methods("POST")
}

// Handler wraps the router in a CORS handler that responds to OPTIONS requests
func (api *ReduceAPI) Handler(allowedOrigins string) http.Handler {
	headersOk := handlers.AllowedHeaders([]string{"Accept", "Content-Type", "Access-Control-Allow-Origin", "Access-Control-Allow-Methods", "X-Requested-With"})
	originsOk := handlers.AllowedOrigins([]string{allowedOrigins})
	methodsOk := handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})

	return handlers.CORS(originsOk, headersOk, methodsOk)(api.router)
}

// Start listens on bindAddr in the background. Errors from the listener are
// sent to errorChan, so main can manage graceful shutdown of the entire app.
func Start(bindAddr string, allowedOrigins string, api *ReduceAPI, errorChan chan error) {
	httpServer = &http.Server{
		Addr:              bindAddr,
		Handler:           api.Handler(allowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		api.logger.Debug().Str("bind_addr", bindAddr).Msg("Starting reduction service...")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			api.logger.Error().Err(err).Str("method_in_error", "httpServer.ListenAndServe()").Msg("Main")
			errorChan <- err
		}
	}()
}

// Close represents the graceful shutting down of the http server
func Close(ctx context.Context, logger zerolog.Logger) error {
	if httpServer == nil {
		return nil
	}
	if err := httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info().Msg("graceful shutdown of http server complete")
	return nil
}

func emptyHealthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
