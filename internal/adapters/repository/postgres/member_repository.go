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

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) ports.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Save(ctx context.Context, member *domain.PartyMember) error {
	query := `
		INSERT INTO party_members (id, party_id, name, biography, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, member.ID, member.PartyID, member.Name, member.Biography, member.PhotoURL, member.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save party member: %w", err)
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PartyMember, error) {
	query := `
		SELECT id, party_id, name, biography, photo_url, created_at
		FROM party_members
		WHERE id = $1 AND deleted_at IS NULL
	`
	member := &domain.PartyMember{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID, &member.PartyID, &member.Name, &member.Biography, &member.PhotoURL, &member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get party member: %w", err)
	}
	return member, nil
}

func (r *memberRepository) ListByParty(ctx context.Context, partyID uuid.UUID) ([]*domain.PartyMember, error) {
	query := `
		SELECT id, party_id, name, biography, photo_url, created_at
		FROM party_members
		WHERE party_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list party members: %w", err)
	}
	defer rows.Close()

	var members []*domain.PartyMember
	for rows.Next() {
		member := &domain.PartyMember{}
		if err := rows.Scan(&member.ID, &member.PartyID, &member.Name, &member.Biography, &member.PhotoURL, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan party member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party members: %w", err)
	}
	return members, nil
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE party_members SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete party member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
