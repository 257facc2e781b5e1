package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{
		service: service,
	}
}

// GetResults godoc
// @Summary      Returns live per-post tallies for an election
// @Description  Counts are recomputed from the ballots on every call; every declared candidate is listed, including those with zero votes.
// @Tags         results
// @Success      200
// @Failure      404
// @Router       /api/elections/{id}/results [get]
// GetCachedCounts godoc
// @Summary      Returns the snapshot vote counts for an election
// @Description  Counts come from the periodically refreshed vote_counts cache and may lag behind the live results.
// @Tags         results
// @Success      200
// @Failure      404
// @Router       /api/elections/{id}/counts [get]
func (h *ResultHandler) GetCachedCounts(w http.ResponseWriter, r *http.Request) {
	electionIDStr := chi.URLParam(r, "id")
	electionID, err := uuid.Parse(electionIDStr)
	if err != nil {
		http.Error(w, "invalid election id", http.StatusBadRequest)
		return
	}

	counts, err := h.service.CachedCounts(r.Context(), electionID)
	if err != nil {
		if errors.Is(err, domain.ErrElectionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if counts == nil {
		counts = map[uuid.UUID]int64{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(counts); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *ResultHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	electionIDStr := chi.URLParam(r, "id")
	electionID, err := uuid.Parse(electionIDStr)
	if err != nil {
		http.Error(w, "invalid election id", http.StatusBadRequest)
		return
	}

	result, err := h.service.ComputeResults(r.Context(), electionID)
	if err != nil {
		if errors.Is(err, domain.ErrElectionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
