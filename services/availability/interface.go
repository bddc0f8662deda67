package availability

import (
	"context"
	"time"

	"tutorhub/models"
)

// AvailabilityService is what the HTTP layer needs from the editor.
type AvailabilityService interface {
	View(ctx context.Context, namespace string) models.AvailabilityView
	Month(ctx context.Context, namespace string, cursor time.Time) models.MonthView
	Week(ctx context.Context, namespace string, anchor *time.Time) models.WeekView
	Calendar(ctx context.Context, namespace string, anchor *time.Time) string

	ClickSlot(ctx context.Context, namespace string, start time.Time) (models.Notice, error)
	ClickCell(ctx context.Context, namespace, day, slot string) (models.Notice, error)
	ClickEvent(ctx context.Context, namespace, day, slot string) (models.Notice, error)
	ApplyWeekdayTemplate(ctx context.Context, namespace string, slots []string) (models.Notice, error)
	ClearAll(ctx context.Context, namespace string) (models.Notice, error)

	Location() *time.Location
	Now() time.Time
}
