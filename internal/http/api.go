package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

type API struct {
	Logger zerolog.Logger
}

func NewAPI(logger zerolog.Logger) *API {
	return &API{
		Logger: logger,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("GET /version", a.handleVersion)
	mux.HandleFunc("GET /api/v1/subnet", a.handleSubnet)
	mux.HandleFunc("GET /api/v1/contains", a.handleContains)
	mux.HandleFunc("GET /api/v1/split", a.handleSplit)
	mux.HandleFunc("GET /api/v1/range", a.handleRange)
	mux.HandleFunc("POST /api/v1/summarize", a.handleSummarize)
	mux.HandleFunc("POST /api/v1/batch", a.handleBatch)

	return a.requestID(a.accessLog(mux))
}
