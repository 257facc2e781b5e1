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

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type selectionRequest struct {
	PostID      uuid.UUID `json:"post_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
}

type submitVoteRequest struct {
	Selections []selectionRequest `json:"selections"`
}

// SubmitVote godoc
// @Summary      Casts the authenticated voter's ballot for an election
// @Description  Accepts one (post, candidate) selection per post. A voter can submit at most one ballot per election.
// @Tags         votes
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      403
// @Failure      404
// @Failure      409
// @Router       /api/elections/{id}/votes [post]
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	electionIDStr := chi.URLParam(r, "id")
	electionID, err := uuid.Parse(electionIDStr)
	if err != nil {
		http.Error(w, "invalid election id", http.StatusBadRequest)
		return
	}

	var req submitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// The voter identity comes from the authenticated session only.
	voterID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	selections := make([]domain.Selection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		selections = append(selections, domain.Selection{
			PostID:      sel.PostID,
			CandidateID: sel.CandidateID,
		})
	}

	input := ports.SubmitVoteInput{
		ElectionID: electionID,
		VoterID:    voterID,
		Selections: selections,
	}

	ballot, err := h.service.Submit(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBallot),
			errors.Is(err, domain.ErrUnknownPost),
			errors.Is(err, domain.ErrUnknownCandidate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrElectionNotOpen):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, domain.ErrElectionNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrAlreadyVoted):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"ballot_id": ballot.ID.String(),
		"message":   "vote submitted successfully",
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// VoteStatus godoc
// @Summary      Reports whether the authenticated voter has voted in an election
// @Tags         votes
// @Success      200
// @Router       /api/elections/{id}/votes/status [get]
func (h *VoteHandler) VoteStatus(w http.ResponseWriter, r *http.Request) {
	electionIDStr := chi.URLParam(r, "id")
	electionID, err := uuid.Parse(electionIDStr)
	if err != nil {
		http.Error(w, "invalid election id", http.StatusBadRequest)
		return
	}

	voterID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	voted, err := h.service.HasVoted(r.Context(), electionID, voterID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]bool{"voted": voted}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
