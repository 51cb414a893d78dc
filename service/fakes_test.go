package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

type fakeMazeRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*dmn.MazeRecord
	saveErr error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *fakeMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return rec, nil
}

func (r *fakeMazeRepo) ByOwner(_ context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*dmn.MazeRecord
	for _, rec := range r.records {
		if rec.OwnerID == ownerID && int64(len(out)) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeCache struct {
	mu        sync.Mutex
	solutions map[uuid.UUID]*dmn.Solution
	locked    map[uuid.UUID]bool
	sets      int
	// lockedAfter is cached when the lock is granted, as if another request
	// finished solving while this one waited.
	lockedAfter *dmn.Solution
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		solutions: make(map[uuid.UUID]*dmn.Solution),
		locked:    make(map[uuid.UUID]bool),
	}
}

func (c *fakeCache) Get(_ context.Context, id uuid.UUID) (*dmn.Solution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.solutions[id], nil
}

func (c *fakeCache) Set(_ context.Context, s *dmn.Solution) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.solutions[s.MazeID] = s
	return nil
}

func (c *fakeCache) Lock(_ context.Context, id uuid.UUID) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locked[id] {
		return nil, errors.New("lock already taken")
	}
	c.locked[id] = true
	if c.lockedAfter != nil {
		c.solutions[c.lockedAfter.MazeID] = c.lockedAfter
	}
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.locked, id)
	}, nil
}

type fakeSortedSet struct {
	mu     sync.Mutex
	scores map[string]map[string]float64
}

func newFakeSortedSet() *fakeSortedSet {
	return &fakeSortedSet{scores: make(map[string]map[string]float64)}
}

func (s *fakeSortedSet) Add(_ context.Context, key string, score float64, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scores[key] == nil {
		s.scores[key] = make(map[string]float64)
	}
	s.scores[key][member] = score
	return nil
}

func (s *fakeSortedSet) TopN(_ context.Context, key string, n int64) ([]i.ScoredMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []i.ScoredMember
	for m, sc := range s.scores[key] {
		out = append(out, i.ScoredMember{Member: m, Score: sc})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if int64(len(out)) > n {
		out = out[:n]
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
func (nopLogger) Debug(string)   {}

type fakeUserRepo struct {
	users map[string]*dmn.User
}

func (r *fakeUserRepo) Save(u *dmn.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, dmn.ErrUserNotFound
	}
	return u, nil
}

type fakeTokenizer struct {
	lastClaims map[string]interface{}
	lastExp    time.Duration
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	f.lastClaims, f.lastExp = claims, exp
	return "token", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return f.lastClaims, nil
}
