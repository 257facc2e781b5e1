package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type electionRepository struct {
	db *sql.DB
}

func NewElectionRepository(db *sql.DB) ports.ElectionRepository {
	return &electionRepository{
		db: db,
	}
}

func (r *electionRepository) Save(ctx context.Context, election *domain.Election) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryElection := `
		INSERT INTO elections (id, title, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, queryElection, election.ID, election.Title, election.Description, election.StartDate, election.EndDate)
	if err != nil {
		return fmt.Errorf("failed to insert election: %w", err)
	}

	queryPost := `
		INSERT INTO posts (id, election_id, name, position)
		VALUES ($1, $2, $3, $4)
	`
	queryCandidate := `
		INSERT INTO candidates (id, post_id, party_id, member_id, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	postStmt, err := tx.PrepareContext(ctx, queryPost)
	if err != nil {
		return fmt.Errorf("failed to prepare post statement: %w", err)
	}
	defer postStmt.Close()

	candidateStmt, err := tx.PrepareContext(ctx, queryCandidate)
	if err != nil {
		return fmt.Errorf("failed to prepare candidate statement: %w", err)
	}
	defer candidateStmt.Close()

	for pi, post := range election.Posts {
		_, err = postStmt.ExecContext(ctx, post.ID, post.ElectionID, post.Name, pi)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}
		for ci, candidate := range post.Candidates {
			_, err = candidateStmt.ExecContext(ctx, candidate.ID, candidate.PostID, candidate.PartyID, candidate.MemberID, ci)
			if err != nil {
				return fmt.Errorf("failed to insert candidate: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *electionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Election, error) {
	query := `
		SELECT id, title, description, start_date, end_date, created_at
		FROM elections
		WHERE id = $1 AND deleted_at IS NULL
	`

	var election domain.Election
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&election.ID, &election.Title, &election.Description,
		&election.StartDate, &election.EndDate, &election.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	posts, err := r.fetchPosts(ctx, election.ID)
	if err != nil {
		return nil, err
	}
	election.Posts = posts

	return &election, nil
}

func (r *electionRepository) GetAll(ctx context.Context) ([]*domain.Election, error) {
	query := `
		SELECT id, title, description, start_date, end_date, created_at
		FROM elections
		WHERE deleted_at IS NULL
		ORDER BY start_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all elections: %w", err)
	}
	defer rows.Close()

	var elections []*domain.Election
	for rows.Next() {
		var election domain.Election
		if err := rows.Scan(
			&election.ID, &election.Title, &election.Description,
			&election.StartDate, &election.EndDate, &election.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, &election)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating elections: %w", err)
	}

	for _, election := range elections {
		posts, err := r.fetchPosts(ctx, election.ID)
		if err != nil {
			return nil, err
		}
		election.Posts = posts
	}

	return elections, nil
}

func (r *electionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE elections SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete election: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrElectionNotFound
	}
	return nil
}

func (r *electionRepository) fetchPosts(ctx context.Context, electionID uuid.UUID) ([]domain.Post, error) {
	queryPosts := `
		SELECT id, election_id, name
		FROM posts
		WHERE election_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, queryPosts, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.ElectionID, &post.Name); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	for i := range posts {
		candidates, err := r.fetchCandidates(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Candidates = candidates
	}

	return posts, nil
}

func (r *electionRepository) fetchCandidates(ctx context.Context, postID uuid.UUID) ([]domain.Candidate, error) {
	queryCandidates := `
		SELECT id, post_id, party_id, member_id
		FROM candidates
		WHERE post_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, queryCandidates, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var candidate domain.Candidate
		if err := rows.Scan(&candidate.ID, &candidate.PostID, &candidate.PartyID, &candidate.MemberID); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}
