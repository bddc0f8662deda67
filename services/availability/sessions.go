package availability

import (
	"context"
	"sync"

	availabilityRepo "tutorhub/database/repository/availability"
	"tutorhub/models"

	"go.uber.org/zap"
)

// Sessions hands out one Store per namespace and keeps it, so a failed save
// never loses the in-memory template. A store whose read failed is read
// again on the next access, before any mutation can overwrite the record.
type Sessions struct {
	mu     sync.Mutex
	repo   availabilityRepo.Repository
	prefix string
	window models.OperatingWindow
	logger *zap.Logger
	stores map[string]*Store
}

func NewSessions(repo availabilityRepo.Repository, prefix string, window models.OperatingWindow, logger *zap.Logger) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sessions{
		repo:   repo,
		prefix: prefix,
		window: window,
		logger: logger,
		stores: make(map[string]*Store),
	}
}

// Key builds the record key for a namespace, e.g. "tutor_availability:default".
func (m *Sessions) Key(namespace string) string {
	return m.prefix + ":" + namespace
}

// Store returns the namespace's store, loading it until a read succeeds.
// The read ignores ctx cancellation so a dropped client cannot leave the
// namespace half loaded.
func (m *Sessions) Store(ctx context.Context, namespace string) *Store {
	m.mu.Lock()
	st, ok := m.stores[namespace]
	if !ok {
		st = NewStore(m.repo, m.Key(namespace), m.window, m.logger)
		m.stores[namespace] = st
	}
	m.mu.Unlock()

	st.EnsureLoaded(context.WithoutCancel(ctx))
	return st
}
