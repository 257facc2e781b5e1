package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

const uniqueViolation = "23505"

type ballotRepository struct {
	db *sql.DB
}

func NewBallotRepository(db *sql.DB) ports.BallotRepository {
	return &ballotRepository{
		db: db,
	}
}

// Save inserts the ballot and its selections in one transaction. The
// one-ballot-per-(election, voter) rule is enforced by the unique index on
// ballots (election_id, voter_id): a concurrent duplicate is rejected by the
// database itself and reported as domain.ErrAlreadyVoted. No read precedes
// the insert, so there is no check-then-insert race, and a failure leaves no
// partial ballot behind.
func (r *ballotRepository) Save(ctx context.Context, ballot *domain.Ballot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryBallot := `
		INSERT INTO ballots (id, election_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.ExecContext(ctx, queryBallot, ballot.ID, ballot.ElectionID, ballot.VoterID, ballot.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert ballot: %w", err)
	}

	querySelection := `
		INSERT INTO ballot_selections (id, ballot_id, post_id, candidate_id)
		VALUES ($1, $2, $3, $4)
	`
	stmt, err := tx.PrepareContext(ctx, querySelection)
	if err != nil {
		return fmt.Errorf("failed to prepare selection statement: %w", err)
	}
	defer stmt.Close()

	for _, sel := range ballot.Selections {
		_, err = stmt.ExecContext(ctx, uuid.New(), ballot.ID, sel.PostID, sel.CandidateID)
		if err != nil {
			return fmt.Errorf("failed to insert selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *ballotRepository) HasVoted(ctx context.Context, electionID, voterID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM ballots WHERE election_id = $1 AND voter_id = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, electionID, voterID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing ballot: %w", err)
	}
	return true, nil
}

func (r *ballotRepository) GetByElectionAndVoter(ctx context.Context, electionID, voterID uuid.UUID) (*domain.Ballot, error) {
	query := `
		SELECT id, election_id, voter_id, created_at
		FROM ballots
		WHERE election_id = $1 AND voter_id = $2
	`
	var ballot domain.Ballot
	err := r.db.QueryRowContext(ctx, query, electionID, voterID).Scan(
		&ballot.ID, &ballot.ElectionID, &ballot.VoterID, &ballot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ballot: %w", err)
	}

	selections, err := r.fetchSelections(ctx, []uuid.UUID{ballot.ID})
	if err != nil {
		return nil, err
	}
	ballot.Selections = selections[ballot.ID]

	return &ballot, nil
}

func (r *ballotRepository) ListByElection(ctx context.Context, electionID uuid.UUID) ([]*domain.Ballot, error) {
	query := `
		SELECT id, election_id, voter_id, created_at
		FROM ballots
		WHERE election_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ballots: %w", err)
	}
	defer rows.Close()

	var ballots []*domain.Ballot
	var ballotIDs []uuid.UUID
	for rows.Next() {
		var ballot domain.Ballot
		if err := rows.Scan(&ballot.ID, &ballot.ElectionID, &ballot.VoterID, &ballot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ballot: %w", err)
		}
		ballots = append(ballots, &ballot)
		ballotIDs = append(ballotIDs, ballot.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ballots: %w", err)
	}

	if len(ballots) == 0 {
		return ballots, nil
	}

	selections, err := r.fetchSelections(ctx, ballotIDs)
	if err != nil {
		return nil, err
	}
	for _, ballot := range ballots {
		ballot.Selections = selections[ballot.ID]
	}

	return ballots, nil
}

func (r *ballotRepository) fetchSelections(ctx context.Context, ballotIDs []uuid.UUID) (map[uuid.UUID][]domain.Selection, error) {
	query := `
		SELECT ballot_id, post_id, candidate_id
		FROM ballot_selections
		WHERE ballot_id = ANY($1)
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ballotIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot selections: %w", err)
	}
	defer rows.Close()

	selections := make(map[uuid.UUID][]domain.Selection, len(ballotIDs))
	for rows.Next() {
		var ballotID uuid.UUID
		var sel domain.Selection
		if err := rows.Scan(&ballotID, &sel.PostID, &sel.CandidateID); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		selections[ballotID] = append(selections[ballotID], sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating selections: %w", err)
	}
	return selections, nil
}
