package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
)

type InquiryRepository interface {
	Save(ctx context.Context, inquiry *domain.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	GetAll(ctx context.Context) ([]*domain.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubmitInquiryInput struct {
	Name    string
	Email   string
	Message string
}

type InquiryService interface {
	Submit(ctx context.Context, input SubmitInquiryInput) (*domain.Inquiry, error)
	GetInquiry(ctx context.Context, id string) (*domain.Inquiry, error)
	List(ctx context.Context) ([]*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}
