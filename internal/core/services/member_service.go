package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type memberService struct {
	partyRepo  ports.PartyRepository
	memberRepo ports.MemberRepository
}

func NewMemberService(partyRepo ports.PartyRepository, memberRepo ports.MemberRepository) ports.MemberService {
	return &memberService{
		partyRepo:  partyRepo,
		memberRepo: memberRepo,
	}
}

func (s *memberService) Create(ctx context.Context, input ports.CreateMemberInput) (*domain.PartyMember, error) {
	if input.Name == "" {
		return nil, errors.New("member name is required")
	}

	// The party must exist before members can be attached to it.
	if _, err := s.partyRepo.GetByID(ctx, input.PartyID); err != nil {
		return nil, err
	}

	member := &domain.PartyMember{
		ID:        uuid.New(),
		PartyID:   input.PartyID,
		Name:      input.Name,
		Biography: input.Biography,
		PhotoURL:  input.PhotoURL,
		CreatedAt: time.Now(),
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) ListByParty(ctx context.Context, partyID uuid.UUID) ([]*domain.PartyMember, error) {
	return s.memberRepo.ListByParty(ctx, partyID)
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrMemberNotFound
	}

	return s.memberRepo.Delete(ctx, memberID)
}
