package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"whatoGift/domain"

	"github.com/redis/go-redis/v9"
)

const catalogSnapshotKey = "catalog:snapshot"

type snapshotData struct {
	Entries  []domain.CatalogEntry `json:"entries"`
	StoredAt time.Time             `json:"stored_at"`
}

// SnapshotRepository keeps the joined product catalog as a single JSON value.
type SnapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{
		client: client,
	}
}

// GetSnapshot returns domain.ErrCacheMiss when no snapshot is stored.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context) ([]domain.CatalogEntry, error) {
	val, err := r.client.Get(ctx, catalogSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get catalog snapshot from Redis: %w", err)
	}

	var data snapshotData
	if err := json.Unmarshal(val, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}

	return data.Entries, nil
}

func (r *SnapshotRepository) SetSnapshot(ctx context.Context, entries []domain.CatalogEntry, ttl time.Duration) error {
	jsonData, err := json.Marshal(snapshotData{Entries: entries, StoredAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}

	if err := r.client.Set(ctx, catalogSnapshotKey, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store catalog snapshot in Redis: %w", err)
	}

	return nil
}

// Invalidate drops the stored snapshot so the next read goes to the store.
func (r *SnapshotRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, catalogSnapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog snapshot: %w", err)
	}

	return nil
}
