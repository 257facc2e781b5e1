package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ballot is one voter's submission for one election. At most one ballot
// exists per (ElectionID, VoterID) pair, enforced by the ballot store, and a
// ballot is never updated or retracted once created.
type Ballot struct {
	ID         uuid.UUID   `json:"id"`
	ElectionID uuid.UUID   `json:"election_id"`
	VoterID    uuid.UUID   `json:"voter_id"`
	Selections []Selection `json:"selections"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Selection is a single (post, candidate) choice within a ballot.
type Selection struct {
	PostID      uuid.UUID `json:"post_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
}
