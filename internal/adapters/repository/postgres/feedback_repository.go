package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) ports.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Save(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, message, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, feedback.ID, feedback.UserID, feedback.Message, feedback.Rating, feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepository) GetAll(ctx context.Context) ([]*domain.Feedback, error) {
	query := `
		SELECT id, user_id, message, rating, created_at
		FROM feedback
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	defer rows.Close()

	var items []*domain.Feedback
	for rows.Next() {
		item := &domain.Feedback{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.Message, &item.Rating, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback: %w", err)
	}
	return items, nil
}
