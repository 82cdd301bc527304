// Package http exposes a use case registry over HTTP.
//
// Each registered use case becomes a POST endpoint taking a JSON object as
// raw input. Outcomes map onto status codes: success is 200, validation
// failure 422, precondition failure 409, unknown use case 404. Command
// errors surface as 500 with no body details.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cjohansen/use-case/pkg/outcome"
	"github.com/cjohansen/use-case/pkg/ports"
	"github.com/cjohansen/use-case/pkg/registry"
)

// SuccessResponse is the body for successful executions.
type SuccessResponse struct {
	Status string `json:"status"`
	Result any    `json:"result"`
}

// FailureResponse is the body for validation failures.
type FailureResponse struct {
	Status string              `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// PreConditionResponse is the body for precondition failures. Detail is the
// cause's error message when the gate crashed rather than failed.
type PreConditionResponse struct {
	Status string `json:"status"`
	Tag    string `json:"tag"`
	Detail string `json:"detail,omitempty"`
}

// NewHandler creates an HTTP handler over the registry.
func NewHandler(reg *registry.Registry) http.Handler {
	r := chi.NewRouter()

	r.Get("/usecases", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"usecases": reg.Names()})
	})

	r.Post("/usecases/{name}", func(w http.ResponseWriter, req *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(req.Body).Decode(&raw); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		name := chi.URLParam(req, "name")
		o, err := reg.Execute(req.Context(), name, raw)
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			// Adapter and command errors are the caller-facing fatal path.
			http.Error(w, fmt.Sprintf("Execution error: %v", err), http.StatusInternalServerError)
			return
		}

		writeOutcome(w, o)
	})

	return r
}

func writeOutcome(w http.ResponseWriter, o *outcome.Outcome) {
	switch o.Status() {
	case outcome.StatusSuccess:
		writeJSON(w, http.StatusOK, SuccessResponse{
			Status: o.Status().String(),
			Result: o.OnSuccess(),
		})
	case outcome.StatusFailed:
		var errs map[string][]string
		o.OnFailure(func(result ports.ValidationResult, _ any) {
			errs = result.Errors()
		})
		writeJSON(w, http.StatusUnprocessableEntity, FailureResponse{
			Status: o.Status().String(),
			Errors: errs,
		})
	case outcome.StatusPreConditionFailed:
		resp := PreConditionResponse{
			Status: o.Status().String(),
			Tag:    outcome.Tag(o.OnPreConditionFailed()),
		}
		if err, ok := o.OnPreConditionFailed().(error); ok {
			resp.Detail = err.Error()
		}
		writeJSON(w, http.StatusConflict, resp)
	default:
		http.Error(w, "Unexpected outcome", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// The status line is already written; an encode failure here can only
	// truncate the body, so there is nothing useful to report to the client.
	_ = json.NewEncoder(w).Encode(body)
}
