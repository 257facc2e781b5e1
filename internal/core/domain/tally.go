package domain

import "github.com/google/uuid"

// Classification of a candidate within a post's tally.
const (
	ClassificationWinner = "winner"
	ClassificationDraw   = "draw"
	ClassificationNone   = "none"
)

// Status of a post's tally as a whole.
const (
	PostStatusDecided = "decided"
	PostStatusDraw    = "draw"
	PostStatusNoVotes = "no_votes"
)

type TallyResult struct {
	ElectionID  uuid.UUID    `json:"election_id"`
	BallotCount int          `json:"ballot_count"`
	Posts       []PostResult `json:"posts"`
}

type PostResult struct {
	PostID     uuid.UUID        `json:"post_id"`
	PostName   string           `json:"post_name"`
	Status     string           `json:"status"`
	Candidates []CandidateTally `json:"candidates"`
}

type CandidateTally struct {
	CandidateID    uuid.UUID `json:"candidate_id"`
	PartyID        uuid.UUID `json:"party_id"`
	MemberID       uuid.UUID `json:"member_id"`
	PartyName      string    `json:"party_name,omitempty"`
	MemberName     string    `json:"member_name,omitempty"`
	VoteCount      int64     `json:"vote_count"`
	Classification string    `json:"classification"`
}

// ComputeTally aggregates ballots into per-post, per-candidate counts and
// classifies winners and draws. It is a pure function of its inputs: every
// candidate declared in the election is enumerated even with zero votes,
// counts are recomputed from the ballots on every call, and selections that
// do not match a declared (post, candidate) pair are ignored.
//
// Per post, the maximum count decides the outcome: a shared positive maximum
// is a draw among the candidates attaining it, a unique positive maximum is a
// sole winner, and a zero maximum means no votes were cast for that post
// (never a draw). Whether a draw is displayed as "Equal" or "Draw" relative
// to the election's end date is the caller's concern; the tally never
// consults the clock.
func ComputeTally(election *Election, ballots []*Ballot) *TallyResult {
	counts := make(map[uuid.UUID]map[uuid.UUID]int64, len(election.Posts))
	for _, post := range election.Posts {
		counts[post.ID] = make(map[uuid.UUID]int64, len(post.Candidates))
		for _, c := range post.Candidates {
			counts[post.ID][c.ID] = 0
		}
	}

	for _, ballot := range ballots {
		for _, sel := range ballot.Selections {
			postCounts, ok := counts[sel.PostID]
			if !ok {
				continue
			}
			if _, ok := postCounts[sel.CandidateID]; !ok {
				continue
			}
			postCounts[sel.CandidateID]++
		}
	}

	result := &TallyResult{
		ElectionID:  election.ID,
		BallotCount: len(ballots),
		Posts:       make([]PostResult, 0, len(election.Posts)),
	}

	for _, post := range election.Posts {
		postCounts := counts[post.ID]

		var max int64
		leaders := 0
		for _, c := range post.Candidates {
			switch n := postCounts[c.ID]; {
			case n > max:
				max = n
				leaders = 1
			case n == max && n > 0:
				leaders++
			}
		}

		postResult := PostResult{
			PostID:     post.ID,
			PostName:   post.Name,
			Candidates: make([]CandidateTally, 0, len(post.Candidates)),
		}

		switch {
		case max == 0:
			postResult.Status = PostStatusNoVotes
		case leaders > 1:
			postResult.Status = PostStatusDraw
		default:
			postResult.Status = PostStatusDecided
		}

		for _, c := range post.Candidates {
			n := postCounts[c.ID]
			classification := ClassificationNone
			if max > 0 && n == max {
				if leaders > 1 {
					classification = ClassificationDraw
				} else {
					classification = ClassificationWinner
				}
			}
			postResult.Candidates = append(postResult.Candidates, CandidateTally{
				CandidateID:    c.ID,
				PartyID:        c.PartyID,
				MemberID:       c.MemberID,
				VoteCount:      n,
				Classification: classification,
			})
		}

		result.Posts = append(result.Posts, postResult)
	}

	return result
}
