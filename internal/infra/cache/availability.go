package cache

import (
	"context"
	"encoding/json"
	"time"

	"tablestay/internal/pkg/errs"
	"tablestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const availabilityKeyPrefix = "availability:listing:"

// AvailabilityCache keeps blocked-dates snapshots in Redis with a short TTL.
// Stale reads are acceptable on the display path since admission re-validates
// against the database.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context, listingID uuid.UUID) (*queries.AvailabilitySnapshot, error) {
	raw, err := c.client.Get(ctx, availabilityKey(listingID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read availability snapshot")
	}

	var snapshot queries.AvailabilitySnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errs.Wrap(err, "failed to decode availability snapshot")
	}
	return &snapshot, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, snapshot *queries.AvailabilitySnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errs.Wrap(err, "failed to encode availability snapshot")
	}
	if err := c.client.Set(ctx, availabilityKey(snapshot.ListingID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store availability snapshot")
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	if err := c.client.Del(ctx, availabilityKey(listingID)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate availability snapshot")
	}
	return nil
}

func availabilityKey(listingID uuid.UUID) string {
	return availabilityKeyPrefix + listingID.String()
}

// NoopAvailabilityCache is used when Redis is not configured, such as in
// tests. Every Get is a miss.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(ctx context.Context, listingID uuid.UUID) (*queries.AvailabilitySnapshot, error) {
	return nil, nil
}

func (NoopAvailabilityCache) Set(ctx context.Context, snapshot *queries.AvailabilitySnapshot) error {
	return nil
}

func (NoopAvailabilityCache) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	return nil
}
