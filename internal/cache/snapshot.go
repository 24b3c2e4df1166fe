package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jewelry_storefront/internal/store"

	"github.com/redis/go-redis/v9"
)

// SnapshotTTL : un panier abandonné survit 30 jours
const SnapshotTTL = 30 * 24 * time.Hour

// SnapshotStore persiste l'état des sessions dans Redis
type SnapshotStore struct {
	rdb  redis.UniversalClient
	keys Keys
	ttl  time.Duration
}

func NewSnapshotStore(rdb redis.UniversalClient, namespace string, ttl time.Duration) *SnapshotStore {
	if ttl <= 0 {
		ttl = SnapshotTTL
	}
	return &SnapshotStore{rdb: rdb, keys: Keys{Namespace: namespace}, ttl: ttl}
}

func (s *SnapshotStore) Load(ctx context.Context, sessionID string) (*store.Snapshot, error) {
	data, err := s.rdb.Get(ctx, s.keys.Snapshot(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, store.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("lecture du snapshot: %w", err)
	}
	return decodeSnapshot(data)
}

// Save réécrit le snapshot et repousse son expiration
func (s *SnapshotStore) Save(ctx context.Context, sessionID string, snap store.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.keys.Snapshot(sessionID), data, s.ttl).Err()
}

func (s *SnapshotStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, s.keys.Snapshot(sessionID)).Err()
}

// decodeSnapshot traite un contenu illisible comme une session vierge
func decodeSnapshot(data []byte) (*store.Snapshot, error) {
	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrNoSnapshot, err)
	}
	return &snap, nil
}
