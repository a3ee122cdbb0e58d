// Package cache provides Redis-backed stores for the message pipeline.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Belkouche/jarvis-sub000/internal/domain/contract"
)

const contractStatusPrefix = "contract:status:"

// ContractStatusCache stores contract status snapshots in Redis with a TTL.
// Entries are immutable snapshots replaced wholesale on refresh.
type ContractStatusCache struct {
	client *redis.Client
}

func NewContractStatusCache(client *redis.Client) *ContractStatusCache {
	return &ContractStatusCache{client: client}
}

func (c *ContractStatusCache) Get(ctx context.Context, contractNumber string) (*contract.Status, error) {
	val, err := c.client.Get(ctx, contractStatusPrefix+contractNumber).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, contract.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read contract status cache: %w", err)
	}

	var status contract.Status
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		return nil, fmt.Errorf("corrupt contract status cache entry: %w", err)
	}
	return &status, nil
}

func (c *ContractStatusCache) Set(ctx context.Context, contractNumber string, status *contract.Status, ttl time.Duration) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal contract status: %w", err)
	}

	if err := c.client.Set(ctx, contractStatusPrefix+contractNumber, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write contract status cache: %w", err)
	}
	return nil
}

func (c *ContractStatusCache) Invalidate(ctx context.Context, contractNumber string) error {
	if err := c.client.Del(ctx, contractStatusPrefix+contractNumber).Err(); err != nil {
		return fmt.Errorf("failed to invalidate contract status cache: %w", err)
	}
	return nil
}
