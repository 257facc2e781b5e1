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

type inquiryService struct {
	repo ports.InquiryRepository
}

func NewInquiryService(repo ports.InquiryRepository) ports.InquiryService {
	return &inquiryService{
		repo: repo,
	}
}

func (s *inquiryService) Submit(ctx context.Context, input ports.SubmitInquiryInput) (*domain.Inquiry, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("name is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, errors.New("message is required")
	}

	inquiry := &domain.Inquiry{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInquiryNotFound
	}
	return s.repo.GetByID(ctx, inquiryID)
}

func (s *inquiryService) List(ctx context.Context) ([]*domain.Inquiry, error) {
	return s.repo.GetAll(ctx)
}

func (s *inquiryService) Delete(ctx context.Context, id string) error {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInquiryNotFound
	}
	return s.repo.Delete(ctx, inquiryID)
}
