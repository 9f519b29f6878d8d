// Package api exposes the pricing engine over HTTP. One endpoint prices one
// contract per request from a fully specified JSON body; there is no session
// state and nothing is persisted.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Handler returns the API routes:
//
//	POST /price  — price a contract from a pricing.Params JSON body
//	GET  /health — liveness check
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/price", handlePrice)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// ListenAndServe runs the API on addr until the listener fails.
func ListenAndServe(addr string) error {
	logger.Infof("starting REST server on %s", addr)
	return http.ListenAndServe(addr, Handler())
}

func handlePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
		return
	}

	var p pricing.Params
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return
	}

	// selectors like "d" or "WEEK" are fine over the wire; normalize them
	// before handing the record to the engine
	if p.TimeUnit != "" {
		unit, err := pricing.ParseTimeUnit(string(p.TimeUnit))
		if err != nil {
			writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		p.TimeUnit = unit
	}

	contract, err := pricing.NewContract(p)
	if err != nil {
		resp := errorResponse{Error: err.Error()}
		var perr pricing.InvalidParameterError
		if errors.As(err, &perr) {
			resp.Field = perr.Field
		}
		writeError(w, http.StatusBadRequest, resp)
		return
	}

	res := report.FromContract(contract)
	logger.Debugf("priced %s S=%g K=%g -> %g", p.Type, p.UnderlyingPrice, p.Strike, res.Price)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func writeError(w http.ResponseWriter, code int, resp errorResponse) {
	logger.Debugf("request rejected: %s", resp.Error)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
