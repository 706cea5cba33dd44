package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/annotatehub/annotation-backend/internal/middlewares"
	"github.com/annotatehub/annotation-backend/internal/policy"
)

// ErrorResponse is the JSON error envelope shared by all handlers
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// requester builds the policy requester from the token claims stored in the
// request context by the auth middleware.
func requester(r *http.Request) policy.Requester {
	claims := middlewares.GetClaimsFromContext(r.Context())
	if claims == nil {
		return policy.Requester{}
	}
	return policy.Requester{Username: claims.Username, IsAdmin: claims.IsAdmin}
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// pageParams reads skip/limit query parameters with their defaults.
func pageParams(r *http.Request) (skip, limit int) {
	skip, limit = 0, 10
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 0 {
		limit = v
	}
	return skip, limit
}
