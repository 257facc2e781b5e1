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

type inquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) ports.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, message, replied, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Message, inquiry.Replied, inquiry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}
	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	query := `
		SELECT id, name, email, message, replied, created_at
		FROM inquiries
		WHERE id = $1
	`
	inquiry := &domain.Inquiry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Message, &inquiry.Replied, &inquiry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return inquiry, nil
}

func (r *inquiryRepository) GetAll(ctx context.Context) ([]*domain.Inquiry, error) {
	query := `
		SELECT id, name, email, message, replied, created_at
		FROM inquiries
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiries: %w", err)
	}
	defer rows.Close()

	var items []*domain.Inquiry
	for rows.Next() {
		item := &domain.Inquiry{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Message, &item.Replied, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiries: %w", err)
	}
	return items, nil
}

func (r *inquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM inquiries WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}
