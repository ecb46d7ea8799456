package handler

import (
	"net/http"
	"strconv"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/provider"
)

// Search finds species by name.
// @Summary Search species
// @Description Returns species whose name contains the query letters in order (so "pkch" finds pikachu), in national dex order.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results (default 20, max 100)"
// @Success 200 {array} provider.Resource
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer", raw)
			return
		}
		limit = n
	}

	results, err := h.svc.Search(r.Context(), q.Get("q"), limit)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeValue(w, r, results)
}

// ListTypes returns the type vocabulary.
// @Summary List types
// @Description Returns every type name a Pokémon record may carry.
// @Tags meta
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/types [get]
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	h.writeValue(w, r, provider.TypeNames)
}
