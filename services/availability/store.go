package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	availabilityRepo "tutorhub/database/repository/availability"
	"tutorhub/models"

	"go.uber.org/zap"
)

// Store owns one namespace's weekly template. Every mutation is written
// through to the repository; a failed write keeps the in-memory change.
type Store struct {
	mu       sync.Mutex
	repo     availabilityRepo.Repository
	key      string
	window   models.OperatingWindow
	logger   *zap.Logger
	template models.WeeklyTemplate
	// loaded is false until a read has reached the repository, so a
	// transient read error is retried instead of trusted.
	loaded bool
}

// NewStore returns a store with an empty template. Call Load to restore it.
func NewStore(repo availabilityRepo.Repository, key string, window models.OperatingWindow, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:     repo,
		key:      key,
		window:   window,
		logger:   logger,
		template: models.NewWeeklyTemplate(),
	}
}

// Window is the operating window slots are validated against.
func (s *Store) Window() models.OperatingWindow { return s.window }

// Template returns a copy of the current template.
func (s *Store) Template() models.WeeklyTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template.Clone()
}

// Load replaces the in-memory template with the stored record. It never
// fails: a missing, malformed or unreadable record yields an empty
// template. After a read error the store stays unloaded; see EnsureLoaded.
func (s *Store) Load(ctx context.Context) models.WeeklyTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
	return s.template.Clone()
}

// EnsureLoaded reads the record unless an earlier read already succeeded.
func (s *Store) EnsureLoaded(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.loadLocked(ctx)
	}
}

// Loaded reports whether the template reflects the stored record.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store) loadLocked(ctx context.Context) {
	t, err := s.read(ctx)
	s.template = t
	s.loaded = err == nil
}

// read returns an error only when the repository could not be reached.
// A missing or malformed record is not an error.
func (s *Store) read(ctx context.Context) (models.WeeklyTemplate, error) {
	data, err := s.repo.Get(ctx, s.key)
	if errors.Is(err, availabilityRepo.ErrNotFound) {
		return models.NewWeeklyTemplate(), nil
	}
	if err != nil {
		s.logger.Warn("Failed to read availability, starting empty",
			zap.String("key", s.key), zap.Error(err))
		return models.NewWeeklyTemplate(), err
	}

	t, clean := models.ParseTemplate(data, s.window)
	if !clean {
		s.logger.Warn("Malformed availability record, unusable parts dropped",
			zap.String("key", s.key))
	}
	return t, nil
}

// Save writes the current template.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) error {
	data, err := json.Marshal(s.template)
	if err == nil {
		err = s.repo.Put(ctx, s.key, data)
	}
	if err != nil {
		s.logger.Warn("Failed to persist availability; keeping in-memory state",
			zap.String("key", s.key), zap.String("driver", s.repo.Name()), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

func (s *Store) validate(day models.Weekday, slot string) error {
	if !day.Valid() {
		return ErrUnknownWeekday
	}
	if !s.window.Contains(slot) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return nil
}

// Toggle flips slot on day and reports whether it is now open.
func (s *Store) Toggle(ctx context.Context, day models.Weekday, slot string) (bool, error) {
	if err := s.validate(day, slot); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := !s.template.Has(day, slot)
	if added {
		s.template[day] = models.NormalizeSlots(append(append([]string{}, s.template[day]...), slot), s.window)
	} else {
		s.template[day] = without(s.template[day], slot)
	}
	return added, s.saveLocked(ctx)
}

// Remove closes slot on day whatever its current state. removed is false
// when the slot was already closed.
func (s *Store) Remove(ctx context.Context, day models.Weekday, slot string) (bool, error) {
	if err := s.validate(day, slot); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.template.Has(day, slot)
	s.template[day] = without(s.template[day], slot)
	return removed, s.saveLocked(ctx)
}

// ClearAll empties every day.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.template = models.NewWeeklyTemplate()
	return s.saveLocked(ctx)
}

// ApplyWeekdayTemplate sets Monday to Friday to defaults and empties the
// weekend, overwriting all seven days.
func (s *Store) ApplyWeekdayTemplate(ctx context.Context, defaults []string) error {
	for _, slot := range defaults {
		if !s.window.Contains(slot) {
			return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
		}
	}
	slots := models.NormalizeSlots(defaults, s.window)

	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.NewWeeklyTemplate()
	for _, d := range []models.Weekday{models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday} {
		t[d] = append([]string{}, slots...)
	}
	s.template = t
	return s.saveLocked(ctx)
}

func without(slots []string, slot string) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s != slot {
			out = append(out, s)
		}
	}
	return out
}
