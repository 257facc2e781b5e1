package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestElection(candidatesPerPost ...int) *Election {
	election := &Election{
		ID:        uuid.New(),
		Title:     "Student Council 2024",
		StartDate: time.Now().Add(-time.Hour),
		EndDate:   time.Now().Add(time.Hour),
	}
	for i, n := range candidatesPerPost {
		post := Post{
			ID:         uuid.New(),
			ElectionID: election.ID,
			Name:       []string{"President", "Secretary", "Treasurer"}[i%3],
		}
		for range n {
			post.Candidates = append(post.Candidates, Candidate{
				ID:       uuid.New(),
				PostID:   post.ID,
				PartyID:  uuid.New(),
				MemberID: uuid.New(),
			})
		}
		election.Posts = append(election.Posts, post)
	}
	return election
}

func ballotFor(election *Election, selections ...Selection) *Ballot {
	return &Ballot{
		ID:         uuid.New(),
		ElectionID: election.ID,
		VoterID:    uuid.New(),
		Selections: selections,
		CreatedAt:  time.Now(),
	}
}

func TestComputeTallyEnumeratesAllCandidates(t *testing.T) {
	election := newTestElection(2, 3)

	result := ComputeTally(election, nil)

	require.Len(t, result.Posts, 2)
	assert.Len(t, result.Posts[0].Candidates, 2)
	assert.Len(t, result.Posts[1].Candidates, 3)
	for _, post := range result.Posts {
		assert.Equal(t, PostStatusNoVotes, post.Status)
		for _, c := range post.Candidates {
			assert.Zero(t, c.VoteCount)
			assert.Equal(t, ClassificationNone, c.Classification)
		}
	}
}

func TestComputeTallyCountsAndSoleWinner(t *testing.T) {
	election := newTestElection(2)
	post := election.Posts[0]
	x, y := post.Candidates[0], post.Candidates[1]

	ballots := []*Ballot{
		ballotFor(election, Selection{PostID: post.ID, CandidateID: x.ID}),
	}

	result := ComputeTally(election, ballots)

	require.Len(t, result.Posts, 1)
	require.Len(t, result.Posts[0].Candidates, 2)
	assert.Equal(t, 1, result.BallotCount)
	assert.Equal(t, PostStatusDecided, result.Posts[0].Status)

	byID := map[uuid.UUID]CandidateTally{}
	for _, c := range result.Posts[0].Candidates {
		byID[c.CandidateID] = c
	}
	assert.Equal(t, int64(1), byID[x.ID].VoteCount)
	assert.Equal(t, ClassificationWinner, byID[x.ID].Classification)
	assert.Equal(t, int64(0), byID[y.ID].VoteCount)
	assert.Equal(t, ClassificationNone, byID[y.ID].Classification)
}

func TestComputeTallyDraw(t *testing.T) {
	election := newTestElection(3)
	post := election.Posts[0]
	a, b, c := post.Candidates[0], post.Candidates[1], post.Candidates[2]

	var ballots []*Ballot
	for range 5 {
		ballots = append(ballots, ballotFor(election, Selection{PostID: post.ID, CandidateID: a.ID}))
		ballots = append(ballots, ballotFor(election, Selection{PostID: post.ID, CandidateID: b.ID}))
	}
	for range 2 {
		ballots = append(ballots, ballotFor(election, Selection{PostID: post.ID, CandidateID: c.ID}))
	}

	result := ComputeTally(election, ballots)

	require.Len(t, result.Posts, 1)
	assert.Equal(t, PostStatusDraw, result.Posts[0].Status)

	byID := map[uuid.UUID]CandidateTally{}
	for _, ct := range result.Posts[0].Candidates {
		byID[ct.CandidateID] = ct
	}
	assert.Equal(t, int64(5), byID[a.ID].VoteCount)
	assert.Equal(t, ClassificationDraw, byID[a.ID].Classification)
	assert.Equal(t, int64(5), byID[b.ID].VoteCount)
	assert.Equal(t, ClassificationDraw, byID[b.ID].Classification)
	assert.Equal(t, int64(2), byID[c.ID].VoteCount)
	assert.Equal(t, ClassificationNone, byID[c.ID].Classification)
}

func TestComputeTallyAllZeroIsNoVotesNotDraw(t *testing.T) {
	election := newTestElection(4)

	result := ComputeTally(election, nil)

	require.Len(t, result.Posts, 1)
	assert.Equal(t, PostStatusNoVotes, result.Posts[0].Status)
	for _, c := range result.Posts[0].Candidates {
		assert.Equal(t, ClassificationNone, c.Classification)
	}
}

func TestComputeTallyPerPostIndependence(t *testing.T) {
	election := newTestElection(2, 2)
	president, secretary := election.Posts[0], election.Posts[1]

	ballots := []*Ballot{
		ballotFor(election,
			Selection{PostID: president.ID, CandidateID: president.Candidates[0].ID},
			Selection{PostID: secretary.ID, CandidateID: secretary.Candidates[1].ID},
		),
		ballotFor(election,
			Selection{PostID: president.ID, CandidateID: president.Candidates[0].ID},
		),
	}

	result := ComputeTally(election, ballots)

	require.Len(t, result.Posts, 2)
	assert.Equal(t, PostStatusDecided, result.Posts[0].Status)
	assert.Equal(t, PostStatusDecided, result.Posts[1].Status)
	assert.Equal(t, int64(2), result.Posts[0].Candidates[0].VoteCount)
	assert.Equal(t, int64(1), result.Posts[1].Candidates[1].VoteCount)

	// Sum of counts per post equals the number of ballots selecting that post.
	var presidentTotal, secretaryTotal int64
	for _, c := range result.Posts[0].Candidates {
		presidentTotal += c.VoteCount
	}
	for _, c := range result.Posts[1].Candidates {
		secretaryTotal += c.VoteCount
	}
	assert.Equal(t, int64(2), presidentTotal)
	assert.Equal(t, int64(1), secretaryTotal)
}

func TestComputeTallyIgnoresUndeclaredSelections(t *testing.T) {
	election := newTestElection(2)
	post := election.Posts[0]

	ballots := []*Ballot{
		ballotFor(election, Selection{PostID: uuid.New(), CandidateID: uuid.New()}),
		ballotFor(election, Selection{PostID: post.ID, CandidateID: uuid.New()}),
	}

	result := ComputeTally(election, ballots)

	require.Len(t, result.Posts, 1)
	assert.Equal(t, PostStatusNoVotes, result.Posts[0].Status)
}

func TestComputeTallyIsIdempotent(t *testing.T) {
	election := newTestElection(3, 2)
	post := election.Posts[0]

	ballots := []*Ballot{
		ballotFor(election, Selection{PostID: post.ID, CandidateID: post.Candidates[1].ID}),
		ballotFor(election, Selection{PostID: post.ID, CandidateID: post.Candidates[2].ID}),
	}

	first := ComputeTally(election, ballots)
	second := ComputeTally(election, ballots)

	assert.Equal(t, first, second)
}
