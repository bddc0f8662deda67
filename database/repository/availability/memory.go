// File: database/repository/availability/memory.go
package availabilityRepo

import (
	"context"
	"sync"
)

type memoryRepo struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRepo keeps records in process memory; they are lost on exit.
func NewMemoryRepo() Repository {
	return &memoryRepo{records: make(map[string][]byte)}
}

func (r *memoryRepo) Name() string { return DriverMemory }

func (r *memoryRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (r *memoryRepo) Put(_ context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[key] = append([]byte(nil), payload...)
	return nil
}

func (r *memoryRepo) Ping(context.Context) error { return nil }
