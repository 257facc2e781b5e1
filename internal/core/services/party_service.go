package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type partyService struct {
	repo ports.PartyRepository
}

func NewPartyService(repo ports.PartyRepository) ports.PartyService {
	return &partyService{
		repo: repo,
	}
}

func (s *partyService) Create(ctx context.Context, input ports.CreatePartyInput) (*domain.Party, error) {
	if input.Name == "" {
		return nil, errors.New("party name is required")
	}

	party := &domain.Party{
		ID:           uuid.New(),
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
		LogoURL:      input.LogoURL,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Save(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

func (s *partyService) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	partyID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrPartyNotFound
	}

	return s.repo.GetByID(ctx, partyID)
}

func (s *partyService) ListParties(ctx context.Context) ([]*domain.Party, error) {
	return s.repo.GetAll(ctx)
}

func (s *partyService) Delete(ctx context.Context, id string) error {
	partyID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrPartyNotFound
	}

	return s.repo.Delete(ctx, partyID)
}
