package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
)

type ElectionRepository interface {
	Save(ctx context.Context, election *domain.Election) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Election, error)
	GetAll(ctx context.Context) ([]*domain.Election, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCandidateInput struct {
	PartyID  uuid.UUID
	MemberID uuid.UUID
}

type CreatePostInput struct {
	Name       string
	Candidates []CreateCandidateInput
}

type CreateElectionInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Posts       []CreatePostInput
}

type ElectionService interface {
	Create(ctx context.Context, input CreateElectionInput) (*domain.Election, error)
	GetElection(ctx context.Context, id string) (*domain.Election, error)
	ListElections(ctx context.Context) ([]*domain.Election, error)
	Delete(ctx context.Context, id string) error
}
