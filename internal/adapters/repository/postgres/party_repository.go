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

type partyRepository struct {
	db *sql.DB
}

func NewPartyRepository(db *sql.DB) ports.PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) Save(ctx context.Context, party *domain.Party) error {
	query := `
		INSERT INTO parties (id, name, abbreviation, logo_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, party.ID, party.Name, party.Abbreviation, party.LogoURL, party.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save party: %w", err)
	}
	return nil
}

func (r *partyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	query := `
		SELECT id, name, abbreviation, logo_url, created_at
		FROM parties
		WHERE id = $1 AND deleted_at IS NULL
	`
	party := &domain.Party{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&party.ID, &party.Name, &party.Abbreviation, &party.LogoURL, &party.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	return party, nil
}

func (r *partyRepository) GetAll(ctx context.Context) ([]*domain.Party, error) {
	query := `
		SELECT id, name, abbreviation, logo_url, created_at
		FROM parties
		WHERE deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all parties: %w", err)
	}
	defer rows.Close()

	var parties []*domain.Party
	for rows.Next() {
		party := &domain.Party{}
		if err := rows.Scan(&party.ID, &party.Name, &party.Abbreviation, &party.LogoURL, &party.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parties: %w", err)
	}
	return parties, nil
}

func (r *partyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE parties SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}
