package availability

import (
	"context"
	"fmt"
	"time"

	"tutorhub/models"
)

// Controller turns dashboard gestures into store operations and returns a
// transient notice for each. It keeps no state of its own.
type Controller struct {
	Sessions        *Sessions
	DefaultWeekdays []string
	NoticeTTL       time.Duration
	Loc             *time.Location
	Clock           func() time.Time
}

var _ AvailabilityService = (*Controller)(nil)

// Location is the zone calendar dates are computed in.
func (c *Controller) Location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

// Now is the controller clock in Location.
func (c *Controller) Now() time.Time {
	if c.Clock == nil {
		return time.Now().In(c.Location())
	}
	return c.Clock().In(c.Location())
}

func (c *Controller) View(ctx context.Context, namespace string) models.AvailabilityView {
	st := c.Sessions.Store(ctx, namespace)
	t := st.Template()
	return models.AvailabilityView{
		Template:    t,
		WeeklyCount: WeeklyCount(t),
		Window:      st.Window(),
		Slots:       st.Window().Slots(),
	}
}

func (c *Controller) Month(ctx context.Context, namespace string, cursor time.Time) models.MonthView {
	t := c.Sessions.Store(ctx, namespace).Template()
	days := MonthGrid(t, cursor.In(c.Location()), c.Now())
	return models.MonthView{
		Month:           cursor.In(c.Location()).Format(monthLayout),
		Days:            days,
		MonthlyCoverage: MonthlyCoverage(days),
	}
}

func (c *Controller) week(ctx context.Context, namespace string, anchor *time.Time) (time.Time, []models.CalendarEvent) {
	a := DefaultAnchor(c.Now())
	if anchor != nil {
		a = anchor.In(c.Location())
	}
	t := c.Sessions.Store(ctx, namespace).Template()
	return a, WeekEvents(t, a)
}

func (c *Controller) Week(ctx context.Context, namespace string, anchor *time.Time) models.WeekView {
	a, events := c.week(ctx, namespace, anchor)
	if events == nil {
		events = []models.CalendarEvent{}
	}
	return models.WeekView{Anchor: a.Format(dateLayout), Events: events}
}

func (c *Controller) Calendar(ctx context.Context, namespace string, anchor *time.Time) string {
	_, events := c.week(ctx, namespace, anchor)
	return FormatICS("Availability ("+namespace+")", events, c.Now())
}

// ClickSlot toggles the hour that start falls in, on start's weekday.
func (c *Controller) ClickSlot(ctx context.Context, namespace string, start time.Time) (models.Notice, error) {
	start = start.In(c.Location())
	day := models.WeekdayOfDate(start)
	return c.toggle(ctx, namespace, day, models.FormatSlot(start.Hour()))
}

// ClickCell toggles an explicit grid cell.
func (c *Controller) ClickCell(ctx context.Context, namespace, day, slot string) (models.Notice, error) {
	wd, ok := models.ParseWeekday(day)
	if !ok {
		return models.Notice{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
	}
	return c.toggle(ctx, namespace, wd, slot)
}

func (c *Controller) toggle(ctx context.Context, namespace string, day models.Weekday, slot string) (models.Notice, error) {
	added, err := c.Sessions.Store(ctx, namespace).Toggle(ctx, day, slot)
	if err != nil && !IsPersistFailure(err) {
		return models.Notice{}, err
	}
	if added {
		return c.notice(models.ActionAdded, fmt.Sprintf("Added %s on %s", slot, day.Key()), err), nil
	}
	return c.notice(models.ActionRemoved, fmt.Sprintf("Removed %s on %s", slot, day.Key()), err), nil
}

// ClickEvent removes the slot behind a rendered event. It never adds.
func (c *Controller) ClickEvent(ctx context.Context, namespace, day, slot string) (models.Notice, error) {
	wd, ok := models.ParseWeekday(day)
	if !ok {
		return models.Notice{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
	}
	_, err := c.Sessions.Store(ctx, namespace).Remove(ctx, wd, slot)
	if err != nil && !IsPersistFailure(err) {
		return models.Notice{}, err
	}
	return c.notice(models.ActionRemoved, fmt.Sprintf("Removed %s on %s", slot, wd.Key()), err), nil
}

// ApplyWeekdayTemplate uses DefaultWeekdays when slots is empty.
func (c *Controller) ApplyWeekdayTemplate(ctx context.Context, namespace string, slots []string) (models.Notice, error) {
	if len(slots) == 0 {
		slots = c.DefaultWeekdays
	}
	err := c.Sessions.Store(ctx, namespace).ApplyWeekdayTemplate(ctx, slots)
	if err != nil && !IsPersistFailure(err) {
		return models.Notice{}, err
	}
	return c.notice(models.ActionTemplate, "Weekday template applied", err), nil
}

func (c *Controller) ClearAll(ctx context.Context, namespace string) (models.Notice, error) {
	err := c.Sessions.Store(ctx, namespace).ClearAll(ctx)
	if err != nil && !IsPersistFailure(err) {
		return models.Notice{}, err
	}
	return c.notice(models.ActionCleared, "All availability cleared", err), nil
}

// notice builds the confirmation; a persist failure turns it into a warning.
func (c *Controller) notice(action, message string, persistErr error) models.Notice {
	n := models.Notice{
		Kind:          models.NoticeSuccess,
		Action:        action,
		Message:       message,
		AutoDismissMs: c.NoticeTTL.Milliseconds(),
	}
	if persistErr != nil {
		n.Kind = models.NoticeWarning
		n.Warning = "Changes are kept for this session but could not be saved"
	}
	return n
}
