package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openelect/evote/internal/core/domain"
)

func TestResultsIncludeZeroCountCandidates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, adminToken := createAdminAndToken(t, app.DB)
	election := createElection(t, app, adminToken,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 3)

	var result domain.TallyResult
	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/elections/%s/results", election.ID), adminToken, nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Every declared candidate shows up even with no ballots at all.
	require.Len(t, result.Posts, 1)
	assert.Equal(t, domain.PostStatusNoVotes, result.Posts[0].Status)
	assert.Len(t, result.Posts[0].Candidates, 3)
	for _, c := range result.Posts[0].Candidates {
		assert.Equal(t, int64(0), c.VoteCount)
		assert.Equal(t, domain.ClassificationNone, c.Classification)
	}
	assert.Equal(t, 0, result.BallotCount)
}

func TestResultsWinner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, adminToken := createAdminAndToken(t, app.DB)
	election := createElection(t, app, adminToken,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 2)

	// Two ballots for candidate 0, one for candidate 1.
	for _, pick := range []int{0, 0, 1} {
		_, token := createUserAndToken(t, app.DB)
		resp := submitBallot(t, app, token, election, map[int]int{0: pick})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var result domain.TallyResult
	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/elections/%s/results", election.ID), adminToken, nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, result.Posts, 1)
	post := result.Posts[0]
	assert.Equal(t, domain.PostStatusDecided, post.Status)
	assert.Equal(t, 3, result.BallotCount)

	byCandidate := make(map[uuid.UUID]domain.CandidateTally)
	for _, c := range post.Candidates {
		byCandidate[c.CandidateID] = c
	}
	leader := byCandidate[election.Posts[0].Candidates[0].ID]
	runnerUp := byCandidate[election.Posts[0].Candidates[1].ID]

	assert.Equal(t, int64(2), leader.VoteCount)
	assert.Equal(t, domain.ClassificationWinner, leader.Classification)
	assert.Equal(t, int64(1), runnerUp.VoteCount)
	assert.Equal(t, domain.ClassificationNone, runnerUp.Classification)

	// Candidate rows carry resolved party and member names.
	assert.NotEmpty(t, leader.PartyName)
	assert.NotEmpty(t, leader.MemberName)
}

func TestResultsDraw(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, adminToken := createAdminAndToken(t, app.DB)
	election := createElection(t, app, adminToken,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 3)

	// Two candidates tied at the top, the third behind.
	for _, pick := range []int{0, 1, 0, 1, 2} {
		_, token := createUserAndToken(t, app.DB)
		resp := submitBallot(t, app, token, election, map[int]int{0: pick})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var result domain.TallyResult
	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/elections/%s/results", election.ID), adminToken, nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, result.Posts, 1)
	post := result.Posts[0]
	assert.Equal(t, domain.PostStatusDraw, post.Status)

	drawCount := 0
	for _, c := range post.Candidates {
		if c.Classification == domain.ClassificationDraw {
			drawCount++
			assert.Equal(t, int64(2), c.VoteCount)
		}
	}
	assert.Equal(t, 2, drawCount)
}

func TestResultsUnknownElection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, token := createUserAndToken(t, app.DB)
	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/elections/%s/results", uuid.New()), token, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
