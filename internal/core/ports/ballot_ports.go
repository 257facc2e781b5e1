package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
)

// BallotRepository owns the ballot lifecycle. Save must be an atomic
// conditional insert: the (election, voter) uniqueness is enforced by the
// store itself and a violation surfaces as domain.ErrAlreadyVoted. There is
// deliberately no update or delete.
type BallotRepository interface {
	Save(ctx context.Context, ballot *domain.Ballot) error
	HasVoted(ctx context.Context, electionID, voterID uuid.UUID) (bool, error)
	GetByElectionAndVoter(ctx context.Context, electionID, voterID uuid.UUID) (*domain.Ballot, error)
	ListByElection(ctx context.Context, electionID uuid.UUID) ([]*domain.Ballot, error)
}

type SubmitVoteInput struct {
	ElectionID uuid.UUID
	VoterID    uuid.UUID
	Selections []domain.Selection
}

type VoteService interface {
	Submit(ctx context.Context, input SubmitVoteInput) (*domain.Ballot, error)
	HasVoted(ctx context.Context, electionID, voterID uuid.UUID) (bool, error)
}
