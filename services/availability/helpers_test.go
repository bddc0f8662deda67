package availability

import (
	"context"
	"errors"
	"sync"

	availabilityRepo "tutorhub/database/repository/availability"
)

// flakyRepo wraps the memory repository and can be told to fail writes or reads.
type flakyRepo struct {
	availabilityRepo.Repository
	mu       sync.Mutex
	failPut  bool
	failGet  bool
	putCalls int
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{Repository: availabilityRepo.NewMemoryRepo()}
}

var errQuota = errors.New("quota exceeded")

func (r *flakyRepo) setFailPut(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failPut = v
}

func (r *flakyRepo) setFailGet(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failGet = v
}

func (r *flakyRepo) Put(ctx context.Context, key string, payload []byte) error {
	r.mu.Lock()
	r.putCalls++
	fail := r.failPut
	r.mu.Unlock()
	if fail {
		return errQuota
	}
	return r.Repository.Put(ctx, key, payload)
}

func (r *flakyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	fail := r.failGet
	r.mu.Unlock()
	if fail {
		return nil, errors.New("disk unavailable")
	}
	return r.Repository.Get(ctx, key)
}
