package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
)

// VoteCountRepository maintains the vote_counts cache. The cache is a derived
// optimization only: the authoritative tally is always recomputed from the
// ballots themselves.
type VoteCountRepository interface {
	RefreshCounts(ctx context.Context, electionID uuid.UUID) error
	GetCounts(ctx context.Context, electionID uuid.UUID) (map[uuid.UUID]int64, error)
}

type ResultService interface {
	ComputeResults(ctx context.Context, electionID uuid.UUID) (*domain.TallyResult, error)
	CachedCounts(ctx context.Context, electionID uuid.UUID) (map[uuid.UUID]int64, error)
}

type SnapshotService interface {
	RefreshAllCounts(ctx context.Context) error
}
