package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type voteService struct {
	electionRepo ports.ElectionRepository
	ballotRepo   ports.BallotRepository
	userRepo     ports.UserRepository
	now          func() time.Time
}

func NewVoteService(electionRepo ports.ElectionRepository, ballotRepo ports.BallotRepository, userRepo ports.UserRepository) ports.VoteService {
	return &voteService{
		electionRepo: electionRepo,
		ballotRepo:   ballotRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// Submit validates a ballot against the election definition and persists it.
// The one-ballot-per-(election, voter) invariant is NOT checked here with a
// read: it is enforced by the ballot store's uniqueness constraint, so two
// concurrent submissions cannot both succeed.
func (s *voteService) Submit(ctx context.Context, input ports.SubmitVoteInput) (*domain.Ballot, error) {
	election, err := s.electionRepo.GetByID(ctx, input.ElectionID)
	if err != nil {
		return nil, err
	}

	// Window re-validated server-side against the server clock; the client
	// cannot bypass it by manipulating dates.
	if !election.IsOpen(s.now()) {
		return nil, domain.ErrElectionNotOpen
	}

	if err := validateSelections(election, input.Selections); err != nil {
		return nil, err
	}

	ballot := &domain.Ballot{
		ID:         uuid.New(),
		ElectionID: input.ElectionID,
		VoterID:    input.VoterID,
		Selections: input.Selections,
		CreatedAt:  s.now(),
	}

	if err := s.ballotRepo.Save(ctx, ballot); err != nil {
		return nil, err
	}

	// Best-effort bookkeeping on the voter profile. The ballot store remains
	// the sole source of truth for "has this voter voted".
	if err := s.userRepo.MarkVoted(ctx, input.VoterID); err != nil {
		slog.Warn("failed to mark voter profile",
			"voter_id", input.VoterID, "election_id", input.ElectionID, "error", err)
	}

	return ballot, nil
}

func (s *voteService) HasVoted(ctx context.Context, electionID, voterID uuid.UUID) (bool, error) {
	return s.ballotRepo.HasVoted(ctx, electionID, voterID)
}

func validateSelections(election *domain.Election, selections []domain.Selection) error {
	if len(selections) == 0 {
		return domain.ErrInvalidBallot
	}

	seen := make(map[uuid.UUID]bool, len(selections))
	for _, sel := range selections {
		if sel.PostID == uuid.Nil || sel.CandidateID == uuid.Nil {
			return domain.ErrInvalidBallot
		}
		if seen[sel.PostID] {
			return domain.ErrInvalidBallot
		}
		seen[sel.PostID] = true

		post := election.FindPost(sel.PostID)
		if post == nil {
			return domain.ErrUnknownPost
		}
		if !post.HasCandidate(sel.CandidateID) {
			return domain.ErrUnknownCandidate
		}
	}
	return nil
}
