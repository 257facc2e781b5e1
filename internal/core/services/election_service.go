package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type electionService struct {
	repo ports.ElectionRepository
}

func NewElectionService(repo ports.ElectionRepository) ports.ElectionService {
	return &electionService{
		repo: repo,
	}
}

func (s *electionService) Create(ctx context.Context, input ports.CreateElectionInput) (*domain.Election, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.New("end date must be after start date")
	}
	if len(input.Posts) == 0 {
		return nil, errors.New("at least one post is required")
	}

	electionID := uuid.New()
	now := time.Now()

	election := &domain.Election{
		ID:          electionID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedAt:   now,
	}

	for _, postInput := range input.Posts {
		if postInput.Name == "" {
			return nil, errors.New("every post needs a name")
		}
		if len(postInput.Candidates) == 0 {
			return nil, errors.New("every post needs at least one candidate")
		}

		post := domain.Post{
			ID:         uuid.New(),
			ElectionID: electionID,
			Name:       postInput.Name,
		}
		for _, candidateInput := range postInput.Candidates {
			if candidateInput.PartyID == uuid.Nil || candidateInput.MemberID == uuid.Nil {
				return nil, errors.New("every candidate needs a party and a member")
			}
			post.Candidates = append(post.Candidates, domain.Candidate{
				ID:       uuid.New(),
				PostID:   post.ID,
				PartyID:  candidateInput.PartyID,
				MemberID: candidateInput.MemberID,
			})
		}
		election.Posts = append(election.Posts, post)
	}

	if err := s.repo.Save(ctx, election); err != nil {
		return nil, err
	}

	return election, nil
}

func (s *electionService) GetElection(ctx context.Context, id string) (*domain.Election, error) {
	electionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidElectionID
	}

	return s.repo.GetByID(ctx, electionID)
}

func (s *electionService) ListElections(ctx context.Context) ([]*domain.Election, error) {
	return s.repo.GetAll(ctx)
}

func (s *electionService) Delete(ctx context.Context, id string) error {
	electionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidElectionID
	}

	return s.repo.Delete(ctx, electionID)
}
