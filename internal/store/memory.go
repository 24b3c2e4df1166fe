package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryPersister garde les snapshots en mémoire (tests, mode sans Redis)
type MemoryPersister struct {
	mu    sync.Mutex
	snaps map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{snaps: map[string][]byte{}}
}

func (p *MemoryPersister) Load(_ context.Context, sessionID string) (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.snaps[sessionID]
	if !ok {
		return nil, ErrNoSnapshot
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (p *MemoryPersister) Save(_ context.Context, sessionID string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snaps[sessionID] = data
	return nil
}

func (p *MemoryPersister) Delete(_ context.Context, sessionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.snaps, sessionID)
	return nil
}
