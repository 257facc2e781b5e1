package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
	"github.com/openelect/evote/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createElectionInput() ports.CreateElectionInput {
	now := time.Now()
	return ports.CreateElectionInput{
		Title:     "Student Council 2024",
		StartDate: now,
		EndDate:   now.Add(48 * time.Hour),
		Posts: []ports.CreatePostInput{
			{
				Name: "President",
				Candidates: []ports.CreateCandidateInput{
					{PartyID: uuid.New(), MemberID: uuid.New()},
					{PartyID: uuid.New(), MemberID: uuid.New()},
				},
			},
		},
	}
}

func TestCreateElection(t *testing.T) {
	repo := newFakeElectionRepo()
	svc := NewElectionService(repo)

	election, err := svc.Create(context.Background(), createElectionInput())
	require.NoError(t, err)

	require.Len(t, election.Posts, 1)
	assert.Equal(t, "President", election.Posts[0].Name)
	assert.Len(t, election.Posts[0].Candidates, 2)
	assert.Equal(t, election.ID, election.Posts[0].ElectionID)
	for _, c := range election.Posts[0].Candidates {
		assert.Equal(t, election.Posts[0].ID, c.PostID)
	}
	assert.Len(t, repo.saved, 1)
}

func TestCreateElectionValidation(t *testing.T) {
	svc := NewElectionService(newFakeElectionRepo())

	missingTitle := createElectionInput()
	missingTitle.Title = ""
	_, err := svc.Create(context.Background(), missingTitle)
	assert.Error(t, err)

	endBeforeStart := createElectionInput()
	endBeforeStart.EndDate = endBeforeStart.StartDate.Add(-time.Hour)
	_, err = svc.Create(context.Background(), endBeforeStart)
	assert.Error(t, err)

	endEqualsStart := createElectionInput()
	endEqualsStart.EndDate = endEqualsStart.StartDate
	_, err = svc.Create(context.Background(), endEqualsStart)
	assert.Error(t, err, "end date must be strictly after start date")

	noPosts := createElectionInput()
	noPosts.Posts = nil
	_, err = svc.Create(context.Background(), noPosts)
	assert.Error(t, err)

	noCandidates := createElectionInput()
	noCandidates.Posts[0].Candidates = nil
	_, err = svc.Create(context.Background(), noCandidates)
	assert.Error(t, err)
}

func TestGetElection(t *testing.T) {
	election := openElection(1)
	svc := NewElectionService(newFakeElectionRepo(election))

	got, err := svc.GetElection(context.Background(), election.ID.String())
	require.NoError(t, err)
	assert.Equal(t, election.ID, got.ID)

	_, err = svc.GetElection(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidElectionID)

	_, err = svc.GetElection(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrElectionNotFound)
}
