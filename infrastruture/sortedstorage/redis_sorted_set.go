package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/redis/go-redis/v9"
)

var _ i.SortedSet = &RedisSortedSet{}

// RedisSortedSet keeps scored members in Redis sorted sets with TTL support.
type RedisSortedSet struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSortedSet initializes a RedisSortedSet with the provided Redis client and TTL.
// A non-positive ttlSeconds keeps keys forever.
func NewRedisSortedSet(client *redis.Client, ttlSeconds int) *RedisSortedSet {
	return &RedisSortedSet{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Add sets the score of member and sets expiration if necessary.
func (rss *RedisSortedSet) Add(ctx context.Context, key string, score float64, member string) error {
	if err := rss.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	if rss.ttl <= 0 {
		return nil
	}

	// Set expiration only if it's not already set
	ttl, err := rss.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = rss.client.Expire(ctx, key, rss.ttl).Err()
	}

	return nil
}

// TopN returns up to n members with the highest scores.
func (rss *RedisSortedSet) TopN(ctx context.Context, key string, n int64) ([]i.ScoredMember, error) {
	if n <= 0 {
		return nil, nil
	}

	zs, err := rss.client.ZRevRangeWithScores(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	return toScoredMembers(zs), nil
}

func toScoredMembers(zs []redis.Z) []i.ScoredMember {
	members := make([]i.ScoredMember, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		members = append(members, i.ScoredMember{Member: member, Score: z.Score})
	}
	return members
}
