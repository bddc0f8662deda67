package availability

import (
	"sort"
	"time"

	"tutorhub/models"

	"github.com/google/uuid"
)

const (
	// GridCells is six full Monday-first weeks.
	GridCells = 42

	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// eventNamespace seeds the UUIDv5 event identifiers.
var eventNamespace = uuid.MustParse("5b0e3f4a-6c1d-4e57-9a53-1f7d8c2b9e61")

// dateOf truncates t to midnight in its own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthGrid lays the template over the month containing cursor. The grid
// starts on the Monday on or before the 1st and always has GridCells days.
// today is compared by calendar date in cursor's location.
func MonthGrid(t models.WeeklyTemplate, cursor, today time.Time) []models.CalendarDay {
	first := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location())
	start := first.AddDate(0, 0, -int(models.WeekdayOfDate(first)))
	today = today.In(cursor.Location())

	days := make([]models.CalendarDay, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		date := start.AddDate(0, 0, i)
		wd := models.WeekdayOfDate(date)
		days = append(days, models.CalendarDay{
			Date:           date.Format(dateLayout),
			Weekday:        wd.Key(),
			InCurrentMonth: date.Month() == first.Month(),
			OpenSlots:      t.Count(wd),
			IsToday:        sameDay(date, today),
		})
	}
	return days
}

// WeekEvents places every open slot on the next occurrence of its weekday
// on or after anchor, giving one hour-long event per slot over a seven-day
// window. Events are ordered by start time.
func WeekEvents(t models.WeeklyTemplate, anchor time.Time) []models.CalendarEvent {
	base := dateOf(anchor)
	anchorDay := models.WeekdayOfDate(base)

	var events []models.CalendarEvent
	for _, wd := range models.Weekdays {
		slots := t.Day(wd)
		if len(slots) == 0 {
			continue
		}
		delta := (int(wd) - int(anchorDay) + models.DaysPerWeek) % models.DaysPerWeek
		date := base.AddDate(0, 0, delta)

		for _, slot := range slots {
			hour, ok := models.ParseSlot(slot)
			if !ok {
				continue
			}
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
			events = append(events, models.CalendarEvent{
				UID:   eventUID(wd, slot, date),
				Start: start,
				End:   start.Add(time.Hour),
				Day:   wd.Key(),
				Slot:  slot,
			})
		}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events
}

// DefaultAnchor is the day before now, so today is the second column.
func DefaultAnchor(now time.Time) time.Time {
	return dateOf(now).AddDate(0, 0, -1)
}

// WeeklyCount is the number of open slots across the week.
func WeeklyCount(t models.WeeklyTemplate) int {
	return t.Total()
}

// MonthlyCoverage sums open slots over the cells of the displayed month.
func MonthlyCoverage(days []models.CalendarDay) int {
	n := 0
	for _, d := range days {
		if d.InCurrentMonth {
			n += d.OpenSlots
		}
	}
	return n
}

func eventUID(wd models.Weekday, slot string, date time.Time) string {
	return uuid.NewSHA1(eventNamespace, []byte(wd.Key()+"|"+slot+"|"+date.Format(dateLayout))).String()
}
