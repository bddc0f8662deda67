package availability

import (
	"context"
	"strings"
	"testing"
	"time"

	"tutorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 11, 20, 0, 0, time.UTC)

func newTestController(t *testing.T) (*Controller, *flakyRepo) {
	t.Helper()
	repo := newFlakyRepo()
	return &Controller{
		Sessions:        NewSessions(repo, "tutor_availability", models.DefaultWindow, nil),
		DefaultWeekdays: []string{"09:00", "10:00"},
		NoticeTTL:       3 * time.Second,
		Loc:             time.UTC,
		Clock:           func() time.Time { return fixedNow },
	}, repo
}

func TestClickSlotTogglesHourOfStart(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()
	// Wednesday 2026-10-21 at 14:37 lands in the 14:00 slot.
	start := time.Date(2026, 10, 21, 14, 37, 0, 0, time.UTC)

	n, err := c.ClickSlot(ctx, "ns", start)
	require.NoError(t, err)
	assert.Equal(t, models.NoticeSuccess, n.Kind)
	assert.Equal(t, models.ActionAdded, n.Action)
	assert.Equal(t, int64(3000), n.AutoDismissMs)
	assert.True(t, c.View(ctx, "ns").Template.Has(models.Wednesday, "14:00"))

	n, err = c.ClickSlot(ctx, "ns", start)
	require.NoError(t, err)
	assert.Equal(t, models.ActionRemoved, n.Action)
	assert.Equal(t, 0, c.View(ctx, "ns").WeeklyCount)
}

func TestClickSlotUsesControllerLocation(t *testing.T) {
	c, _ := newTestController(t)
	c.Loc = time.FixedZone("UTC-5", -5*3600)
	ctx := context.Background()
	// 02:00 UTC Thursday is 21:00 Wednesday at UTC-5, outside the window.
	_, err := c.ClickSlot(ctx, "ns", time.Date(2026, 10, 22, 2, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = c.ClickSlot(ctx, "ns", time.Date(2026, 10, 22, 1, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, c.View(ctx, "ns").Template.Has(models.Wednesday, "20:00"))
}

func TestClickCell(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	n, err := c.ClickCell(ctx, "ns", "friday", "07:00")
	require.NoError(t, err)
	assert.Equal(t, models.ActionAdded, n.Action)
	assert.Contains(t, n.Message, "friday")

	_, err = c.ClickCell(ctx, "ns", "someday", "07:00")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestClickEventAlwaysRemoves(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()
	_, err := c.ClickCell(ctx, "ns", "monday", "09:00")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		n, err := c.ClickEvent(ctx, "ns", "monday", "09:00")
		require.NoError(t, err)
		assert.Equal(t, models.ActionRemoved, n.Action)
		assert.False(t, c.View(ctx, "ns").Template.Has(models.Monday, "09:00"))
	}
}

func TestApplyAndClear(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	n, err := c.ApplyWeekdayTemplate(ctx, "ns", nil)
	require.NoError(t, err)
	assert.Equal(t, models.ActionTemplate, n.Action)
	view := c.View(ctx, "ns")
	assert.Equal(t, 10, view.WeeklyCount)
	assert.Equal(t, []string{"09:00", "10:00"}, view.Template[models.Friday])
	assert.Empty(t, view.Template[models.Saturday])

	_, err = c.ApplyWeekdayTemplate(ctx, "ns", []string{"16:00"})
	require.NoError(t, err)
	assert.Equal(t, 5, c.View(ctx, "ns").WeeklyCount)

	_, err = c.ApplyWeekdayTemplate(ctx, "ns", []string{"nope"})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	n, err = c.ClearAll(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, models.ActionCleared, n.Action)
	assert.Equal(t, 0, c.View(ctx, "ns").WeeklyCount)
}

func TestPersistFailureIsWarning(t *testing.T) {
	c, repo := newTestController(t)
	ctx := context.Background()
	repo.setFailPut(true)

	n, err := c.ClickCell(ctx, "ns", "monday", "09:00")
	require.NoError(t, err)
	assert.Equal(t, models.NoticeWarning, n.Kind)
	assert.Equal(t, models.ActionAdded, n.Action)
	assert.NotEmpty(t, n.Warning)
	assert.True(t, c.View(ctx, "ns").Template.Has(models.Monday, "09:00"))

	n, err = c.ClearAll(ctx, "ns")
	require.NoError(t, err)
	assert.Equal(t, models.NoticeWarning, n.Kind)
}

func TestNamespacesAreIsolated(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()
	_, err := c.ClickCell(ctx, "alice", "monday", "09:00")
	require.NoError(t, err)
	assert.Equal(t, 1, c.View(ctx, "alice").WeeklyCount)
	assert.Equal(t, 0, c.View(ctx, "bob").WeeklyCount)
}

func TestMonthAndWeekViews(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()
	_, _ = c.ApplyWeekdayTemplate(ctx, "ns", []string{"09:00"})

	month := c.Month(ctx, "ns", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-10", month.Month)
	assert.Len(t, month.Days, GridCells)
	// October 2026 has 22 weekdays.
	assert.Equal(t, 22, month.MonthlyCoverage)

	week := c.Week(ctx, "ns", nil)
	assert.Equal(t, "2026-10-18", week.Anchor)
	require.Len(t, week.Events, 5)
	assert.Equal(t, "monday", week.Events[0].Day)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), week.Events[0].Start)

	anchor := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	week = c.Week(ctx, "ns", &anchor)
	assert.Equal(t, "2026-10-21", week.Anchor)
	assert.Equal(t, "wednesday", week.Events[0].Day)

	ics := c.Calendar(ctx, "ns", nil)
	assert.Equal(t, 5, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestWeekViewEmptyEventsIsNotNil(t *testing.T) {
	c, _ := newTestController(t)
	assert.NotNil(t, c.Week(context.Background(), "ns", nil).Events)
}
