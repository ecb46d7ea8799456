package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/pokedex"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// parseID parses a positive integer path or query value.
func parseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// writeServiceError maps façade and upstream errors onto API error codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fetchErr *provider.UpstreamFetchError
	switch {
	case errors.Is(err, pokedex.ErrInvalidID):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", err.Error())
	case errors.Is(err, pokedex.ErrBatchTooLarge):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "BATCH_TOO_LARGE", "too many ids requested", err.Error())
	case errors.As(err, &fetchErr) && fetchErr.NotFound():
		respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", "resource not found upstream", fetchErr.Path)
	case provider.IsDataIntegrity(err):
		h.logger.ErrorContext(r.Context(), "upstream data integrity failure", "path", r.URL.Path, "error", err)
		respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_DATA_INTEGRITY", "upstream returned data that could not be interpreted", err.Error())
	case errors.Is(err, provider.ErrUpstreamFetch):
		h.logger.WarnContext(r.Context(), "upstream fetch failed", "path", r.URL.Path, "error", err)
		respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_ERROR", "upstream request failed", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.WriteError(w, http.StatusServiceUnavailable, "REQUEST_CANCELLED", "request cancelled before completion")
	default:
		h.logger.ErrorContext(r.Context(), "unexpected error", "path", r.URL.Path, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}
