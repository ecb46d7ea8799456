package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/pokedex-data/internal/api/respond"
	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/pokedex"
)

// GetPokemon returns one Pokémon record.
// @Summary Get Pokémon
// @Description Returns the normalized Pokémon record: types by slot, abilities, default sprites and the sprite options tree.
// @Tags pokemon
// @Produce json
// @Param id path int true "Pokémon ID"
// @Param If-None-Match header string false "ETag from previous response"
// @Success 200 {object} provider.Pokemon
// @Success 304 "Not Modified"
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/pokemon/{id} [get]
func (h *Handler) GetPokemon(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return
	}
	p, err := h.svc.PokemonPayload(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writePayload(w, r, p)
}

// GetPokemonBatch returns several Pokémon records in request order.
// @Summary Get Pokémon batch
// @Description Returns the Pokémon records for a comma-separated list of IDs, in the order given.
// @Tags pokemon
// @Produce json
// @Param ids query string true "Comma-separated Pokémon IDs" example(1,4,7)
// @Success 200 {array} provider.Pokemon
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/pokemon [get]
func (h *Handler) GetPokemonBatch(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_IDS", "ids query parameter is required")
		return
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, ok := parseID(strings.TrimSpace(part))
		if !ok {
			respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", part)
			return
		}
		ids = append(ids, id)
	}

	list, err := h.svc.PokemonBatch(r.Context(), ids)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeValue(w, r, list)
}

// GetSpecies returns one species record.
// @Summary Get species
// @Description Returns the normalized species record: genus, generation, evolution chain ID and varieties.
// @Tags species
// @Produce json
// @Param id path int true "Species ID"
// @Param If-None-Match header string false "ETag from previous response"
// @Success 200 {object} provider.Species
// @Success 304 "Not Modified"
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/species/{id} [get]
func (h *Handler) GetSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return
	}
	p, err := h.svc.SpeciesPayload(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writePayload(w, r, p)
}

// GetRelatives returns the direct evolution neighbours of a species.
// @Summary Get evolution relatives
// @Description Returns the species this one evolves from and into. With expand=species the full species records are returned instead of {id, name} pairs.
// @Tags species
// @Produce json
// @Param id path int true "Species ID"
// @Param expand query string false "Expand relatives" Enums(species)
// @Success 200 {object} provider.Relatives
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/species/{id}/relatives [get]
func (h *Handler) GetRelatives(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return
	}

	switch expand := r.URL.Query().Get("expand"); expand {
	case "":
		rel, err := h.svc.Relatives(r.Context(), id)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		h.writeValue(w, r, rel)
	case "species":
		rel, err := h.svc.RelativeSpecies(r.Context(), id)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		h.writeValue(w, r, rel)
	default:
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_EXPAND", "expand must be \"species\"", expand)
	}
}

// GetEvolutionChain returns one evolution chain.
// @Summary Get evolution chain
// @Description Returns the evolution tree rooted at the chain's base species.
// @Tags evolution
// @Produce json
// @Param id path int true "Evolution chain ID"
// @Param If-None-Match header string false "ETag from previous response"
// @Success 200 {object} provider.EvolutionChain
// @Success 304 "Not Modified"
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/evolution/{id} [get]
func (h *Handler) GetEvolutionChain(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return
	}
	p, err := h.svc.EvolutionChainPayload(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writePayload(w, r, p)
}

// writePayload serves a cached record, answering 304 when the client
// already holds it.
func (h *Handler) writePayload(w http.ResponseWriter, r *http.Request, p pokedex.Payload) {
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), p.ETag) {
		respond.WriteNotModified(w, p.ETag)
		return
	}
	respond.WriteJSON(w, p.Data, p.ETag, h.cfg.CacheTTL, p.Hit)
}

// writeValue serializes a value assembled from cached records and serves it
// with an ETag of its own.
func (h *Handler) writeValue(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writePayload(w, r, pokedex.Payload{Data: data, ETag: cache.ComputeETag(data)})
}
