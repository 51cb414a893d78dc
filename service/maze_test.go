package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mazeServiceFixture struct {
	svc     *MazeService
	repo    *fakeMazeRepo
	cache   *fakeCache
	ranking *fakeSortedSet
}

func newMazeServiceFixture(t *testing.T) *mazeServiceFixture {
	t.Helper()
	f := &mazeServiceFixture{
		repo:    newFakeMazeRepo(),
		cache:   newFakeCache(),
		ranking: newFakeSortedSet(),
	}
	svc, err := NewMazeService(&MazeServiceConfig{
		Repo:    f.repo,
		Cache:   f.cache,
		Ranking: f.ranking,
		Logger:  nopLogger{},
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func detourLayout() maze.Layout {
	return maze.Layout{
		Rows:  3,
		Cols:  3,
		Start: maze.CellPosition{Row: 0, Col: 0},
		Exit:  maze.CellPosition{Row: 2, Col: 2},
		Walls: []maze.CellPosition{{Row: 0, Col: 1}, {Row: 1, Col: 2}},
	}
}

func TestNewMazeService_MissingDependency(t *testing.T) {
	_, err := NewMazeService(nil)
	assert.Error(t, err)

	_, err = NewMazeService(&MazeServiceConfig{Repo: newFakeMazeRepo()})
	assert.Error(t, err)
}

func TestMazeService_Create(t *testing.T) {
	f := newMazeServiceFixture(t)
	owner := uuid.New()

	t.Run("Stores valid layout", func(t *testing.T) {
		rec, err := f.svc.Create(context.Background(), owner, detourLayout())
		require.NoError(t, err)
		assert.Equal(t, owner, rec.OwnerID)
		assert.Equal(t, dmn.SourceUser, rec.Source)

		stored, err := f.svc.ByID(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec, stored)

		owned, err := f.svc.ByOwner(context.Background(), owner, 0)
		require.NoError(t, err)
		assert.Len(t, owned, 1)
	})

	t.Run("Rejects out of bounds wall", func(t *testing.T) {
		layout := detourLayout()
		layout.Walls = append(layout.Walls, maze.CellPosition{Row: 3, Col: 3})
		_, err := f.svc.Create(context.Background(), owner, layout)
		assert.ErrorIs(t, err, maze.ErrIndexOutOfBounds)
	})

	t.Run("Surfaces repo errors", func(t *testing.T) {
		f.repo.saveErr = errors.New("db down")
		defer func() { f.repo.saveErr = nil }()
		_, err := f.svc.Create(context.Background(), owner, detourLayout())
		assert.EqualError(t, err, "db down")
	})
}

func TestMazeService_Generate(t *testing.T) {
	f := newMazeServiceFixture(t)

	rec, err := f.svc.Generate(context.Background(), uuid.New(), 4, 3, 99)
	require.NoError(t, err)
	assert.Equal(t, dmn.SourceWilson, rec.Source)
	assert.Equal(t, int64(99), rec.Seed)

	want, err := generator.New(99).Generate(4, 3)
	require.NoError(t, err)
	assert.Equal(t, want, rec.Layout)

	_, err = f.svc.Generate(context.Background(), uuid.New(), 0, 3, 1)
	assert.ErrorIs(t, err, generator.ErrInvalidDimensions)
}

func TestMazeService_Solve(t *testing.T) {
	f := newMazeServiceFixture(t)
	rec, err := f.svc.Create(context.Background(), uuid.New(), detourLayout())
	require.NoError(t, err)

	sol, err := f.svc.Solve(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.True(t, sol.Found)
	assert.Equal(t, []maze.CellPosition{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, sol.Path)
	assert.Equal(t, 1, f.cache.sets)

	again, err := f.svc.Solve(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Same(t, sol, again, "second solve must come from the cache")
	assert.Equal(t, 1, f.cache.sets)
}

func TestMazeService_SolveUnknownMaze(t *testing.T) {
	f := newMazeServiceFixture(t)
	_, err := f.svc.Solve(context.Background(), uuid.New())
	assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
}

func TestMazeService_SolveLocked(t *testing.T) {
	f := newMazeServiceFixture(t)
	rec, err := f.svc.Create(context.Background(), uuid.New(), detourLayout())
	require.NoError(t, err)

	unlock, err := f.cache.Lock(context.Background(), rec.ID)
	require.NoError(t, err)

	_, err = f.svc.Solve(context.Background(), rec.ID)
	assert.ErrorIs(t, err, dmn.ErrSolveInProgress)

	unlock()
	_, err = f.svc.Solve(context.Background(), rec.ID)
	assert.NoError(t, err)
}

func TestMazeService_SolveCachedWhileLocking(t *testing.T) {
	f := newMazeServiceFixture(t)
	rec, err := f.svc.Create(context.Background(), uuid.New(), detourLayout())
	require.NoError(t, err)

	earlier := &dmn.Solution{MazeID: rec.ID, Found: true, Explored: 42}
	f.cache.lockedAfter = earlier

	sol, err := f.svc.Solve(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Same(t, earlier, sol)
	assert.Equal(t, 0, f.cache.sets, "solution must not be written again")
	assert.Empty(t, f.ranking.scores, "ranking must not be written again")
}

func TestMazeService_SolveCancelled(t *testing.T) {
	f := newMazeServiceFixture(t)
	rec, err := f.svc.Create(context.Background(), uuid.New(), detourLayout())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.svc.Solve(ctx, rec.ID)
	assert.ErrorIs(t, err, maze.ErrCancelled)
	assert.Equal(t, 0, f.cache.sets)
}

func TestMazeService_Ranking(t *testing.T) {
	f := newMazeServiceFixture(t)
	ctx := context.Background()

	open, err := f.svc.Create(ctx, uuid.New(), detourLayout())
	require.NoError(t, err)
	deadEnds, err := f.svc.Create(ctx, uuid.New(), maze.Layout{
		Rows:  3,
		Cols:  3,
		Start: maze.CellPosition{Row: 1, Col: 0},
		Exit:  maze.CellPosition{Row: 2, Col: 0},
		Walls: []maze.CellPosition{{Row: 2, Col: 1}},
	})
	require.NoError(t, err)

	for _, id := range []uuid.UUID{open.ID, deadEnds.ID} {
		_, err := f.svc.Solve(ctx, id)
		require.NoError(t, err)
	}
	require.NoError(t, f.ranking.Add(ctx, defaultRankingKey, 100, "not-a-uuid"))

	ranked, err := f.svc.Ranking(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []dmn.RankedMaze{
		{MazeID: deadEnds.ID, Explored: 6},
		{MazeID: open.ID, Explored: 0},
	}, ranked)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, int64(defaultRankingLimit), clampLimit(0))
	assert.Equal(t, int64(defaultRankingLimit), clampLimit(-3))
	assert.Equal(t, int64(7), clampLimit(7))
	assert.Equal(t, int64(maxRankingLimit), clampLimit(1000))
}
