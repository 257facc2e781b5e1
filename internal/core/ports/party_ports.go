package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
)

type PartyRepository interface {
	Save(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error)
	GetAll(ctx context.Context) ([]*domain.Party, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberRepository interface {
	Save(ctx context.Context, member *domain.PartyMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PartyMember, error)
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]*domain.PartyMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatePartyInput struct {
	Name         string
	Abbreviation string
	LogoURL      string
}

type CreateMemberInput struct {
	PartyID   uuid.UUID
	Name      string
	Biography string
	PhotoURL  string
}

type PartyService interface {
	Create(ctx context.Context, input CreatePartyInput) (*domain.Party, error)
	GetParty(ctx context.Context, id string) (*domain.Party, error)
	ListParties(ctx context.Context) ([]*domain.Party, error)
	Delete(ctx context.Context, id string) error
}

type MemberService interface {
	Create(ctx context.Context, input CreateMemberInput) (*domain.PartyMember, error)
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]*domain.PartyMember, error)
	Delete(ctx context.Context, id string) error
}
