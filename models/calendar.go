package models

import "time"

// CalendarDay is one cell of the month grid. It is derived on every request.
type CalendarDay struct {
	Date           string `json:"date"` // e.g. "2026-10-19"
	Weekday        string `json:"weekday"`
	InCurrentMonth bool   `json:"inCurrentMonth"`
	OpenSlots      int    `json:"openSlots"`
	IsToday        bool   `json:"isToday"`
}

// CalendarEvent is a one-hour open slot placed on a concrete date.
// Day and Slot map the event back to its template entry.
type CalendarEvent struct {
	UID   string    `json:"uid"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Day   string    `json:"day"`
	Slot  string    `json:"slot"`
}

// MonthView is the month grid response.
type MonthView struct {
	Month           string        `json:"month"` // e.g. "2026-10"
	Days            []CalendarDay `json:"days"`
	MonthlyCoverage int           `json:"monthlyCoverage"`
}

// WeekView is the rolling seven-day event list response.
type WeekView struct {
	Anchor string          `json:"anchor"`
	Events []CalendarEvent `json:"events"`
}

// AvailabilityView is the template response.
type AvailabilityView struct {
	Template    WeeklyTemplate  `json:"template"`
	WeeklyCount int             `json:"weeklyCount"`
	Window      OperatingWindow `json:"window"`
	Slots       []string        `json:"slots"`
}

// Notice kinds.
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
)

// Notice actions.
const (
	ActionAdded    = "added"
	ActionRemoved  = "removed"
	ActionTemplate = "template"
	ActionCleared  = "cleared"
)

// Notice is a transient, auto-dismissing confirmation for a gesture.
type Notice struct {
	Kind          string `json:"kind"`
	Action        string `json:"action"`
	Message       string `json:"message"`
	Warning       string `json:"warning,omitempty"`
	AutoDismissMs int64  `json:"autoDismissMs"`
}

// SlotRequest addresses one template entry directly or by a calendar instant.
type SlotRequest struct {
	Day   string     `json:"day"`
	Slot  string     `json:"slot"`
	Start *time.Time `json:"start"`
}

// WeekdayTemplateRequest overrides the configured default weekday slots.
type WeekdayTemplateRequest struct {
	Slots []string `json:"slots"`
}
