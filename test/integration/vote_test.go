package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitVote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, adminToken := createAdminAndToken(t, app.DB)
	election := createElection(t, app, adminToken,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 2)

	voterID, token := createUserAndToken(t, app.DB)

	// 1. Vote status before voting -> false
	var status map[string]bool
	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/elections/%s/votes/status", election.ID), token, nil, &status)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, status["voted"])

	// 2. Submit ballot -> 201 with ballot id
	resp = submitBallot(t, app, token, election, map[int]int{0: 0})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	_, err := uuid.Parse(created["ballot_id"])
	require.NoError(t, err)

	// 3. Vote status after voting -> true
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/elections/%s/votes/status", election.ID), token, nil, &status)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, status["voted"])

	// 4. Voting again -> 409, still a single ballot stored
	resp = submitBallot(t, app, token, election, map[int]int{0: 1})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int
	err = app.DB.QueryRow("SELECT COUNT(*) FROM ballots WHERE election_id=$1 AND voter_id=$2", election.ID, voterID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSubmitVoteValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, adminToken := createAdminAndToken(t, app.DB)
	election := createElection(t, app, adminToken,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 2)

	_, token := createUserAndToken(t, app.DB)

	// Empty selections -> 400
	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/elections/%s/votes", election.ID), token,
		map[string]interface{}{"selections": []interface{}{}}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Candidate from another post -> 400
	resp = doJSON(t, app, "POST", fmt.Sprintf("/api/elections/%s/votes", election.ID), token,
		map[string]interface{}{"selections": []map[string]interface{}{{
			"post_id":      election.Posts[0].ID,
			"candidate_id": uuid.New(),
		}}}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown election -> 404
	resp = doJSON(t, app, "POST", fmt.Sprintf("/api/elections/%s/votes", uuid.New()), token,
		map[string]interface{}{"selections": []map[string]interface{}{{
			"post_id":      election.Posts[0].ID,
			"candidate_id": election.Posts[0].Candidates[0].ID,
		}}}, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitVoteOutsideWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, adminToken := createAdminAndToken(t, app.DB)
	closed := createElection(t, app, adminToken,
		time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour), 1)

	_, token := createUserAndToken(t, app.DB)
	resp := submitBallot(t, app, token, closed, map[int]int{0: 0})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestConcurrentVoteSubmissions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown()

	_, adminToken := createAdminAndToken(t, app.DB)
	election := createElection(t, app, adminToken,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 2)

	voterID, token := createUserAndToken(t, app.DB)

	payload, err := json.Marshal(map[string]interface{}{
		"selections": []map[string]interface{}{{
			"post_id":      election.Posts[0].ID,
			"candidate_id": election.Posts[0].Candidates[0].ID,
		}},
	})
	require.NoError(t, err)
	url := fmt.Sprintf("%s/api/elections/%s/votes", app.Server.URL, election.ID)

	const attempts = 8
	codes := make(chan int, attempts)
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
			if err != nil {
				errs <- err
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
			resp, err := app.Client.Do(req)
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(codes)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	created, conflicts := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		default:
			t.Fatalf("unexpected status code %d", code)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)

	var count int
	err = app.DB.QueryRow("SELECT COUNT(*) FROM ballots WHERE election_id=$1 AND voter_id=$2", election.ID, voterID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
