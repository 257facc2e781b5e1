package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/ports"
)

type snapshotService struct {
	electionRepo  ports.ElectionRepository
	voteCountRepo ports.VoteCountRepository
}

func NewSnapshotService(electionRepo ports.ElectionRepository, voteCountRepo ports.VoteCountRepository) ports.SnapshotService {
	return &snapshotService{
		electionRepo:  electionRepo,
		voteCountRepo: voteCountRepo,
	}
}

// RefreshAllCounts rebuilds the vote_counts cache for every election from its
// ballots. The cache is never consulted by the results read path; it exists
// for dashboard-style consumers that can tolerate staleness.
func (s *snapshotService) RefreshAllCounts(ctx context.Context) error {
	elections, err := s.electionRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all elections: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(elections))

	for _, election := range elections {
		wg.Add(1)
		go func(electionID uuid.UUID) {
			defer wg.Done()
			if err := s.voteCountRepo.RefreshCounts(ctx, electionID); err != nil {
				errChan <- fmt.Errorf("failed to refresh counts for election %s: %w", electionID, err)
			}
		}(election.ID)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
