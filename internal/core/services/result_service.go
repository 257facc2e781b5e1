package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
)

type resultService struct {
	electionRepo  ports.ElectionRepository
	ballotRepo    ports.BallotRepository
	partyRepo     ports.PartyRepository
	memberRepo    ports.MemberRepository
	voteCountRepo ports.VoteCountRepository
}

func NewResultService(electionRepo ports.ElectionRepository, ballotRepo ports.BallotRepository, partyRepo ports.PartyRepository, memberRepo ports.MemberRepository, voteCountRepo ports.VoteCountRepository) ports.ResultService {
	return &resultService{
		electionRepo:  electionRepo,
		ballotRepo:    ballotRepo,
		partyRepo:     partyRepo,
		memberRepo:    memberRepo,
		voteCountRepo: voteCountRepo,
	}
}

// ComputeResults recomputes the tally from the full ballot collection on
// every call. It never reads the vote_counts cache.
func (s *resultService) ComputeResults(ctx context.Context, electionID uuid.UUID) (*domain.TallyResult, error) {
	election, err := s.electionRepo.GetByID(ctx, electionID)
	if err != nil {
		return nil, err
	}

	ballots, err := s.ballotRepo.ListByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ballots: %w", err)
	}

	result := domain.ComputeTally(election, ballots)
	s.resolveNames(ctx, result)

	return result, nil
}

// CachedCounts reads the snapshot cache maintained by the tallysnapshot job.
// The numbers may lag behind the ballots. Anything authoritative goes through
// ComputeResults.
func (s *resultService) CachedCounts(ctx context.Context, electionID uuid.UUID) (map[uuid.UUID]int64, error) {
	if _, err := s.electionRepo.GetByID(ctx, electionID); err != nil {
		return nil, err
	}

	counts, err := s.voteCountRepo.GetCounts(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read vote counts: %w", err)
	}
	return counts, nil
}

// resolveNames attaches party and member display names to the tally. Name
// resolution is presentation support only: a missing party or member leaves
// the name empty and never fails the computation.
func (s *resultService) resolveNames(ctx context.Context, result *domain.TallyResult) {
	partyNames := make(map[uuid.UUID]string)
	memberNames := make(map[uuid.UUID]string)

	for pi := range result.Posts {
		for ci := range result.Posts[pi].Candidates {
			ct := &result.Posts[pi].Candidates[ci]

			name, ok := partyNames[ct.PartyID]
			if !ok {
				if party, err := s.partyRepo.GetByID(ctx, ct.PartyID); err == nil {
					name = party.Name
				}
				partyNames[ct.PartyID] = name
			}
			ct.PartyName = name

			name, ok = memberNames[ct.MemberID]
			if !ok {
				if member, err := s.memberRepo.GetByID(ctx, ct.MemberID); err == nil {
					name = member.Name
				}
				memberNames[ct.MemberID] = name
			}
			ct.MemberName = name
		}
	}
}
