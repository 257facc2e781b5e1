package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openelect/evote/internal/core/domain"
)

func timeNowFixed(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

type fakeElectionRepo struct {
	mu        sync.Mutex
	elections map[uuid.UUID]*domain.Election
	saved     []*domain.Election
}

func newFakeElectionRepo(elections ...*domain.Election) *fakeElectionRepo {
	repo := &fakeElectionRepo{elections: map[uuid.UUID]*domain.Election{}}
	for _, e := range elections {
		repo.elections[e.ID] = e
	}
	return repo
}

func (r *fakeElectionRepo) Save(ctx context.Context, election *domain.Election) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elections[election.ID] = election
	r.saved = append(r.saved, election)
	return nil
}

func (r *fakeElectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	election, ok := r.elections[id]
	if !ok {
		return nil, domain.ErrElectionNotFound
	}
	return election, nil
}

func (r *fakeElectionRepo) GetAll(ctx context.Context) ([]*domain.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Election
	for _, e := range r.elections {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeElectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.elections, id)
	return nil
}

// fakeBallotRepo enforces the (election, voter) uniqueness under a mutex the
// way the real store enforces it with a constraint, so concurrent Submit
// calls behave like they do against Postgres.
type fakeBallotRepo struct {
	mu      sync.Mutex
	ballots map[[2]uuid.UUID]*domain.Ballot
	saveErr error
}

func newFakeBallotRepo() *fakeBallotRepo {
	return &fakeBallotRepo{ballots: map[[2]uuid.UUID]*domain.Ballot{}}
}

func (r *fakeBallotRepo) Save(ctx context.Context, ballot *domain.Ballot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	key := [2]uuid.UUID{ballot.ElectionID, ballot.VoterID}
	if _, exists := r.ballots[key]; exists {
		return domain.ErrAlreadyVoted
	}
	r.ballots[key] = ballot
	return nil
}

func (r *fakeBallotRepo) HasVoted(ctx context.Context, electionID, voterID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ballots[[2]uuid.UUID{electionID, voterID}]
	return ok, nil
}

func (r *fakeBallotRepo) GetByElectionAndVoter(ctx context.Context, electionID, voterID uuid.UUID) (*domain.Ballot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ballot, ok := r.ballots[[2]uuid.UUID{electionID, voterID}]
	if !ok {
		return nil, nil
	}
	return ballot, nil
}

func (r *fakeBallotRepo) ListByElection(ctx context.Context, electionID uuid.UUID) ([]*domain.Ballot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Ballot
	for key, b := range r.ballots {
		if key[0] == electionID {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeVoteCountRepo rebuilds an election's counts from a ballot repo on
// RefreshCounts, mirroring the upsert the real table does from
// ballot_selections.
type fakeVoteCountRepo struct {
	mu         sync.Mutex
	ballots    *fakeBallotRepo
	counts     map[uuid.UUID]map[uuid.UUID]int64
	refreshed  []uuid.UUID
	refreshErr error
}

func newFakeVoteCountRepo(ballots *fakeBallotRepo) *fakeVoteCountRepo {
	return &fakeVoteCountRepo{
		ballots: ballots,
		counts:  map[uuid.UUID]map[uuid.UUID]int64{},
	}
}

func (r *fakeVoteCountRepo) RefreshCounts(ctx context.Context, electionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.refreshErr != nil {
		return r.refreshErr
	}
	r.refreshed = append(r.refreshed, electionID)

	counts := map[uuid.UUID]int64{}
	if r.ballots != nil {
		ballots, err := r.ballots.ListByElection(ctx, electionID)
		if err != nil {
			return err
		}
		for _, ballot := range ballots {
			for _, sel := range ballot.Selections {
				counts[sel.CandidateID]++
			}
		}
	}
	r.counts[electionID] = counts
	return nil
}

func (r *fakeVoteCountRepo) GetCounts(ctx context.Context, electionID uuid.UUID) (map[uuid.UUID]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[uuid.UUID]int64{}
	for candidateID, count := range r.counts[electionID] {
		out[candidateID] = count
	}
	return out, nil
}

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*domain.User
	marked  []uuid.UUID
	markErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*domain.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) MarkVoted(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.markErr != nil {
		return r.markErr
	}
	r.marked = append(r.marked, id)
	if u, ok := r.users[id]; ok {
		u.HasVoted = true
	}
	return nil
}

type fakePartyRepo struct {
	parties map[uuid.UUID]*domain.Party
}

func newFakePartyRepo(parties ...*domain.Party) *fakePartyRepo {
	repo := &fakePartyRepo{parties: map[uuid.UUID]*domain.Party{}}
	for _, p := range parties {
		repo.parties[p.ID] = p
	}
	return repo
}

func (r *fakePartyRepo) Save(ctx context.Context, party *domain.Party) error {
	r.parties[party.ID] = party
	return nil
}

func (r *fakePartyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	party, ok := r.parties[id]
	if !ok {
		return nil, domain.ErrPartyNotFound
	}
	return party, nil
}

func (r *fakePartyRepo) GetAll(ctx context.Context) ([]*domain.Party, error) {
	var out []*domain.Party
	for _, p := range r.parties {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.parties, id)
	return nil
}

type fakeMemberRepo struct {
	members map[uuid.UUID]*domain.PartyMember
}

func newFakeMemberRepo(members ...*domain.PartyMember) *fakeMemberRepo {
	repo := &fakeMemberRepo{members: map[uuid.UUID]*domain.PartyMember{}}
	for _, m := range members {
		repo.members[m.ID] = m
	}
	return repo
}

func (r *fakeMemberRepo) Save(ctx context.Context, member *domain.PartyMember) error {
	r.members[member.ID] = member
	return nil
}

func (r *fakeMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PartyMember, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}

func (r *fakeMemberRepo) ListByParty(ctx context.Context, partyID uuid.UUID) ([]*domain.PartyMember, error) {
	var out []*domain.PartyMember
	for _, m := range r.members {
		if m.PartyID == partyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.members, id)
	return nil
}

type fakeInquiryRepo struct {
	inquiries map[uuid.UUID]*domain.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: map[uuid.UUID]*domain.Inquiry{}}
}

func (r *fakeInquiryRepo) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	r.inquiries[inquiry.ID] = inquiry
	return nil
}

func (r *fakeInquiryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	return inquiry, nil
}

func (r *fakeInquiryRepo) GetAll(ctx context.Context) ([]*domain.Inquiry, error) {
	var out []*domain.Inquiry
	for _, i := range r.inquiries {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.inquiries[id]; !ok {
		return domain.ErrInquiryNotFound
	}
	delete(r.inquiries, id)
	return nil
}
