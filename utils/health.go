package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything whose reachability can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

// HealthStatus represents current status of the record storage.
type HealthStatus struct {
	Storage   string    `json:"storage"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest storage health snapshot.
type HealthMonitor struct {
	target Pinger
	mu     sync.RWMutex
	status HealthStatus
}

func NewHealthMonitor(target Pinger) *HealthMonitor {
	return &HealthMonitor{target: target}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Check pings the target once and records the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	st := HealthStatus{Storage: h.target.Name(), Healthy: true, CheckedAt: time.Now()}
	if err := h.target.Ping(ctx); err != nil {
		st.Healthy = false
		st.Error = err.Error()
	}

	h.mu.Lock()
	h.status = st
	h.mu.Unlock()
	return st
}

// Start checks immediately and then every interval until ctx is done.
func (h *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	h.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Check(ctx)
			}
		}
	}()
}
