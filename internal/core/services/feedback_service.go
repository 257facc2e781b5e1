package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type feedbackService struct {
	repo ports.FeedbackRepository
}

func NewFeedbackService(repo ports.FeedbackRepository) ports.FeedbackService {
	return &feedbackService{
		repo: repo,
	}
}

func (s *feedbackService) Submit(ctx context.Context, input ports.SubmitFeedbackInput) (*domain.Feedback, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, errors.New("message is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	feedback := &domain.Feedback{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Message:   input.Message,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *feedbackService) List(ctx context.Context) ([]*domain.Feedback, error) {
	return s.repo.GetAll(ctx)
}
