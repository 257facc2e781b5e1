package domain

import "errors"

var (
	ErrElectionNotFound  = errors.New("election not found")
	ErrInvalidElectionID = errors.New("invalid election id")
	ErrInvalidBallot     = errors.New("invalid ballot submission")
	ErrUnknownPost       = errors.New("post does not belong to this election")
	ErrUnknownCandidate  = errors.New("candidate does not belong to this post")
	ErrAlreadyVoted      = errors.New("voter has already voted in this election")
	ErrElectionNotOpen   = errors.New("election is not open for voting")
	ErrPartyNotFound     = errors.New("party not found")
	ErrMemberNotFound    = errors.New("party member not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInquiryNotFound   = errors.New("inquiry not found")
	ErrInternal          = errors.New("internal server error")
)
