package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
)

type FeedbackRepository interface {
	Save(ctx context.Context, feedback *domain.Feedback) error
	GetAll(ctx context.Context) ([]*domain.Feedback, error)
}

type SubmitFeedbackInput struct {
	UserID  uuid.UUID
	Message string
	Rating  int
}

type FeedbackService interface {
	Submit(ctx context.Context, input SubmitFeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
}
