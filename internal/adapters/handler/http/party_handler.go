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

type PartyHandler struct {
	partyService  ports.PartyService
	memberService ports.MemberService
}

func NewPartyHandler(partyService ports.PartyService, memberService ports.MemberService) *PartyHandler {
	return &PartyHandler{
		partyService:  partyService,
		memberService: memberService,
	}
}

type createPartyRequest struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logo_url"`
}

func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	party, err := h.partyService.Create(r.Context(), ports.CreatePartyInput{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(party); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PartyHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	party, err := h.partyService.GetParty(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPartyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(party); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.partyService.ListParties(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if parties == nil {
		parties = []*domain.Party{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(parties); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PartyHandler) DeleteParty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.partyService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPartyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createMemberRequest struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
	PhotoURL  string `json:"photo_url"`
}

func (h *PartyHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	partyIDStr := chi.URLParam(r, "id")
	partyID, err := uuid.Parse(partyIDStr)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.memberService.Create(r.Context(), ports.CreateMemberInput{
		PartyID:   partyID,
		Name:      req.Name,
		Biography: req.Biography,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPartyNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(member); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PartyHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	partyIDStr := chi.URLParam(r, "id")
	partyID, err := uuid.Parse(partyIDStr)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	members, err := h.memberService.ListByParty(r.Context(), partyID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if members == nil {
		members = []*domain.PartyMember{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(members); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PartyHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "memberID")

	if err := h.memberService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
