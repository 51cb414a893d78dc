package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix     = "pathfinder"
	solutionKeyFmt    = "%s:solution:%s"
	solveLockKeyFmt   = "%s:solve_lock:%s"
	defaultLockExpiry = 10 * time.Second
)

var _ i.SolutionCache = &RedisSolutionCache{}

// RedisSolutionCache caches solutions as JSON and guards solves with a redsync mutex per maze.
type RedisSolutionCache struct {
	client     *redis.Client
	locker     *redsync.Redsync
	prefix     string
	ttl        time.Duration
	lockExpiry time.Duration
}

// Options configures a RedisSolutionCache.
type Options struct {
	Prefix     string
	TTL        time.Duration
	LockExpiry time.Duration
}

// NewRedisSolutionCache initializes a RedisSolutionCache on the given client.
func NewRedisSolutionCache(client *redis.Client, opts *Options) *RedisSolutionCache {
	if opts == nil {
		opts = &Options{}
	}
	c := &RedisSolutionCache{
		client:     client,
		locker:     redsync.New(goredis.NewPool(client)),
		prefix:     opts.Prefix,
		ttl:        opts.TTL,
		lockExpiry: opts.LockExpiry,
	}
	if c.prefix == "" {
		c.prefix = defaultPrefix
	}
	if c.lockExpiry <= 0 {
		c.lockExpiry = defaultLockExpiry
	}
	return c
}

// Get returns the cached solution of a maze, or (nil, nil) when absent.
func (c *RedisSolutionCache) Get(ctx context.Context, mazeID uuid.UUID) (*dmn.Solution, error) {
	raw, err := c.client.Get(ctx, c.solutionKey(mazeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decodeSolution(raw)
}

// Set stores a solution. A zero TTL keeps it until evicted.
func (c *RedisSolutionCache) Set(ctx context.Context, solution *dmn.Solution) error {
	raw, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.solutionKey(solution.MazeID), raw, c.ttl).Err()
}

// Lock takes the solve lock of a maze without retrying.
func (c *RedisSolutionCache) Lock(ctx context.Context, mazeID uuid.UUID) (func(), error) {
	mutex := c.locker.NewMutex(
		c.lockKey(mazeID),
		redsync.WithExpiry(c.lockExpiry),
		redsync.WithTries(1),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (c *RedisSolutionCache) solutionKey(id uuid.UUID) string {
	return fmt.Sprintf(solutionKeyFmt, c.prefix, id)
}

func (c *RedisSolutionCache) lockKey(id uuid.UUID) string {
	return fmt.Sprintf(solveLockKeyFmt, c.prefix, id)
}

func decodeSolution(raw []byte) (*dmn.Solution, error) {
	var s dmn.Solution
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decoding cached solution: %w", err)
	}
	return &s, nil
}
