package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/ports"
)

// voteCountRepository maintains the vote_counts cache table. It is a derived
// projection of the ballots: consumers that need authoritative numbers must
// recompute from the ballots instead.
type voteCountRepository struct {
	db *sql.DB
}

func NewVoteCountRepository(db *sql.DB) ports.VoteCountRepository {
	return &voteCountRepository{
		db: db,
	}
}

func (r *voteCountRepository) RefreshCounts(ctx context.Context, electionID uuid.UUID) error {
	query := `
		INSERT INTO vote_counts (election_id, post_id, candidate_id, vote_count, last_updated_at)
		SELECT b.election_id, s.post_id, s.candidate_id, COUNT(*), NOW()
		FROM ballot_selections s
		JOIN ballots b ON b.id = s.ballot_id
		WHERE b.election_id = $1
		GROUP BY b.election_id, s.post_id, s.candidate_id
		ON CONFLICT (election_id, post_id, candidate_id) DO UPDATE
		SET vote_count = EXCLUDED.vote_count,
		    last_updated_at = NOW();
	`

	_, err := r.db.ExecContext(ctx, query, electionID)
	if err != nil {
		return fmt.Errorf("failed to refresh vote counts for election %s: %w", electionID, err)
	}

	return nil
}

func (r *voteCountRepository) GetCounts(ctx context.Context, electionID uuid.UUID) (map[uuid.UUID]int64, error) {
	query := `
		SELECT candidate_id, vote_count
		FROM vote_counts
		WHERE election_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vote counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var candidateID uuid.UUID
		var count int64
		if err := rows.Scan(&candidateID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[candidateID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}

	return counts, nil
}
