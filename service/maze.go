package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultSolveTimeout = 2 * time.Second
	defaultRankingKey   = "pathfinder:ranking:explored"
	defaultRankingLimit = 10
	maxRankingLimit     = 100
)

var _ i.MazeService = &MazeService{}

// MazeService stores maze layouts and solves them, caching every solution.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.SolutionCache
	ranking      i.SortedSet
	logger       i.Logger
	solveTimeout time.Duration
	rankingKey   string
}

type MazeServiceConfig struct {
	Repo         i.MazeRepo
	Cache        i.SolutionCache
	Ranking      i.SortedSet
	Logger       i.Logger
	SolveTimeout time.Duration
	RankingKey   string
}

// NewMazeService creates a MazeService. Repo, Cache, Ranking and Logger are required.
func NewMazeService(c *MazeServiceConfig) (*MazeService, error) {
	if c == nil || c.Repo == nil || c.Cache == nil || c.Ranking == nil || c.Logger == nil {
		return nil, errors.New("maze service config is missing a dependency")
	}

	ms := &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		ranking:      c.Ranking,
		logger:       c.Logger,
		solveTimeout: c.SolveTimeout,
		rankingKey:   c.RankingKey,
	}
	if ms.solveTimeout <= 0 {
		ms.solveTimeout = defaultSolveTimeout
	}
	if ms.rankingKey == "" {
		ms.rankingKey = defaultRankingKey
	}
	return ms, nil
}

// Create validates and stores a caller-supplied layout.
func (ms *MazeService) Create(ctx context.Context, ownerID uuid.UUID, layout maze.Layout) (*dmn.MazeRecord, error) {
	return ms.save(ctx, dmn.MazeRecordConfig{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Source:  dmn.SourceUser,
		Layout:  layout,
	})
}

// Generate stores a Wilson maze of width x height rooms built from seed.
func (ms *MazeService) Generate(ctx context.Context, ownerID uuid.UUID, width, height int, seed int64) (*dmn.MazeRecord, error) {
	layout, err := generator.New(seed).Generate(width, height)
	if err != nil {
		return nil, err
	}

	return ms.save(ctx, dmn.MazeRecordConfig{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Source:  dmn.SourceWilson,
		Seed:    seed,
		Layout:  layout,
	})
}

func (ms *MazeService) save(ctx context.Context, config dmn.MazeRecordConfig) (*dmn.MazeRecord, error) {
	record, err := dmn.NewMazeRecord(config)
	if err != nil {
		return nil, err
	}

	if err := ms.repo.Save(ctx, record); err != nil {
		ms.logger.Error(fmt.Sprintf("Saving maze %s: %s", record.ID, err))
		return nil, err
	}

	ms.logger.Info(fmt.Sprintf("Maze stored: ID=%s Source=%s Size=%dx%d", record.ID, record.Source, record.Layout.Rows, record.Layout.Cols))
	return record, nil
}

// ByID returns a stored maze.
func (ms *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return ms.repo.ByID(ctx, id)
}

// ByOwner lists the mazes of a user.
func (ms *MazeService) ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.MazeRecord, error) {
	return ms.repo.ByOwner(ctx, ownerID, clampLimit(limit))
}

// Solve returns the solution of a stored maze. The search is deterministic,
// so a cached solution is returned as is. Otherwise the maze's solve lock is
// taken, the search runs under the solve timeout, and the result is cached
// and ranked.
func (ms *MazeService) Solve(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	if cached, err := ms.cache.Get(ctx, id); err != nil {
		ms.logger.Warning(fmt.Sprintf("Reading cached solution of %s: %s", id, err))
	} else if cached != nil {
		ms.logger.Debug(fmt.Sprintf("Solution cache hit: ID=%s", id))
		return cached, nil
	}

	record, err := ms.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock, err := ms.cache.Lock(ctx, id)
	if err != nil {
		ms.logger.Warning(fmt.Sprintf("Obtaining solve lock of %s: %s", id, err))
		return nil, dmn.ErrSolveInProgress
	}
	defer unlock()

	// Another request may have solved the maze while the lock was taken.
	if cached, err := ms.cache.Get(ctx, id); err == nil && cached != nil {
		ms.logger.Debug(fmt.Sprintf("Solution cached while locking: ID=%s", id))
		return cached, nil
	}

	solveCtx, cancel := context.WithTimeout(ctx, ms.solveTimeout)
	defer cancel()

	solution, err := record.Solve(func(m *maze.Maze) (bool, error) {
		return m.FindPathContext(solveCtx)
	})
	if err != nil {
		ms.logger.Error(fmt.Sprintf("Solving maze %s: %s", id, err))
		return nil, err
	}
	ms.logger.Info(fmt.Sprintf("Maze solved: ID=%s Found=%t PathLen=%d Explored=%d", id, solution.Found, len(solution.Path), solution.Explored))

	if err := ms.cache.Set(ctx, solution); err != nil {
		ms.logger.Warning(fmt.Sprintf("Caching solution of %s: %s", id, err))
	}
	if err := ms.ranking.Add(ctx, ms.rankingKey, float64(solution.Explored), id.String()); err != nil {
		ms.logger.Warning(fmt.Sprintf("Ranking maze %s: %s", id, err))
	}

	return solution, nil
}

// Ranking lists solved mazes by explored cells, most first.
func (ms *MazeService) Ranking(ctx context.Context, limit int64) ([]dmn.RankedMaze, error) {
	members, err := ms.ranking.TopN(ctx, ms.rankingKey, clampLimit(limit))
	if err != nil {
		return nil, err
	}

	ranked := make([]dmn.RankedMaze, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m.Member)
		if err != nil {
			ms.logger.Warning(fmt.Sprintf("Non-UUID value in ranking: %s", m.Member))
			continue
		}
		ranked = append(ranked, dmn.RankedMaze{MazeID: id, Explored: int(m.Score)})
	}
	return ranked, nil
}

func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return defaultRankingLimit
	}
	return min(limit, maxRankingLimit)
}
