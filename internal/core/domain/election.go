package domain

import (
	"time"

	"github.com/google/uuid"
)

type Election struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Posts       []Post     `json:"posts"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type Post struct {
	ID         uuid.UUID   `json:"id"`
	ElectionID uuid.UUID   `json:"election_id"`
	Name       string      `json:"name"`
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	ID       uuid.UUID `json:"id"`
	PostID   uuid.UUID `json:"post_id"`
	PartyID  uuid.UUID `json:"party_id"`
	MemberID uuid.UUID `json:"member_id"`
}

// IsOpen reports whether the election accepts ballots at the given instant.
func (e *Election) IsOpen(at time.Time) bool {
	return !at.Before(e.StartDate) && !at.After(e.EndDate)
}

func (e *Election) FindPost(postID uuid.UUID) *Post {
	for i := range e.Posts {
		if e.Posts[i].ID == postID {
			return &e.Posts[i]
		}
	}
	return nil
}

func (p *Post) HasCandidate(candidateID uuid.UUID) bool {
	for _, c := range p.Candidates {
		if c.ID == candidateID {
			return true
		}
	}
	return false
}
