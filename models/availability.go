package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Weekday is a day of week with Monday as index 0.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of entries in a WeeklyTemplate.
const DaysPerWeek = 7

var weekdayKeys = [DaysPerWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var weekdayByKey = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// Weekdays lists every weekday in template order.
var Weekdays = [DaysPerWeek]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Key returns the storage key of the weekday ("monday".."sunday").
func (d Weekday) Key() string {
	if !d.Valid() {
		return weekdayKeys[Monday]
	}
	return weekdayKeys[d]
}

func (d Weekday) String() string { return d.Key() }

// Valid reports whether d is one of the seven weekdays.
func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

// ParseWeekday maps a storage key to its weekday.
func ParseWeekday(key string) (Weekday, bool) {
	d, ok := weekdayByKey[key]
	return d, ok
}

// WeekdayOf converts a time.Weekday (Sunday=0) into a Monday-first Weekday.
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % 7)
}

// WeekdayOfDate returns the weekday of t's calendar date.
func WeekdayOfDate(t time.Time) Weekday {
	return WeekdayOf(t.Weekday())
}

// OperatingWindow bounds the bookable start hours to [OpenHour, CloseHour).
type OperatingWindow struct {
	OpenHour  int `json:"openHour"`
	CloseHour int `json:"closeHour"`
}

// DefaultWindow is the 07:00–21:00 operating window.
var DefaultWindow = OperatingWindow{OpenHour: 7, CloseHour: 21}

// Valid reports whether the window is a non-empty range inside a day.
func (w OperatingWindow) Valid() bool {
	return w.OpenHour >= 0 && w.CloseHour <= 24 && w.OpenHour < w.CloseHour
}

// Slots lists every bookable slot in the window, in order.
func (w OperatingWindow) Slots() []string {
	out := make([]string, 0, w.CloseHour-w.OpenHour)
	for h := w.OpenHour; h < w.CloseHour; h++ {
		out = append(out, FormatSlot(h))
	}
	return out
}

// Contains reports whether slot is a well-formed "HH:00" inside the window.
func (w OperatingWindow) Contains(slot string) bool {
	h, ok := ParseSlot(slot)
	return ok && h >= w.OpenHour && h < w.CloseHour
}

// FormatSlot renders an hour as a zero-padded "HH:00" slot.
func FormatSlot(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// ParseSlot returns the hour of a "HH:00" slot.
func ParseSlot(slot string) (int, bool) {
	if len(slot) != 5 || slot[2] != ':' || slot[3] != '0' || slot[4] != '0' {
		return 0, false
	}
	if slot[0] < '0' || slot[0] > '9' || slot[1] < '0' || slot[1] > '9' {
		return 0, false
	}
	h := int(slot[0]-'0')*10 + int(slot[1]-'0')
	if h > 23 {
		return 0, false
	}
	return h, true
}

// NormalizeSlots returns the valid slots of in, de-duplicated and sorted.
// Zero-padded "HH:00" strings sort chronologically.
func NormalizeSlots(in []string, w OperatingWindow) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !w.Contains(s) {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// WeeklyTemplate is the recurring availability: for each weekday, the sorted
// set of open slots. Every weekday is always present.
type WeeklyTemplate [DaysPerWeek][]string

// NewWeeklyTemplate returns a template with all seven days empty.
func NewWeeklyTemplate() WeeklyTemplate {
	var t WeeklyTemplate
	for i := range t {
		t[i] = []string{}
	}
	return t
}

// Clone deep-copies the template.
func (t WeeklyTemplate) Clone() WeeklyTemplate {
	var out WeeklyTemplate
	for i, slots := range t {
		out[i] = append([]string{}, slots...)
	}
	return out
}

// Day returns the slots of d.
func (t WeeklyTemplate) Day(d Weekday) []string {
	if !d.Valid() {
		return nil
	}
	return t[d]
}

// Has reports whether slot is open on d.
func (t WeeklyTemplate) Has(d Weekday, slot string) bool {
	for _, s := range t.Day(d) {
		if s == slot {
			return true
		}
	}
	return false
}

// Count returns the number of open slots on d.
func (t WeeklyTemplate) Count(d Weekday) int {
	return len(t.Day(d))
}

// Total returns the weekly number of open slots.
func (t WeeklyTemplate) Total() int {
	n := 0
	for _, slots := range t {
		n += len(slots)
	}
	return n
}

// MarshalJSON writes {"monday":[...],...,"sunday":[...]} in weekday order.
func (t WeeklyTemplate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		slots := t[d]
		if slots == nil {
			slots = []string{}
		}
		key, _ := json.Marshal(d.Key())
		val, err := json.Marshal(slots)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes leniently with the default window; see ParseTemplate.
func (t *WeeklyTemplate) UnmarshalJSON(data []byte) error {
	parsed, _ := ParseTemplate(data, DefaultWindow)
	*t = parsed
	return nil
}

// ParseTemplate decodes a stored record. It never fails: anything it cannot
// use is dropped and the remaining days stay empty. clean is false when the
// record was not a JSON object or a day value was not an array.
func ParseTemplate(data []byte, w OperatingWindow) (t WeeklyTemplate, clean bool) {
	t = NewWeeklyTemplate()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return t, false
	}

	clean = true
	for _, d := range Weekdays {
		msg, ok := raw[d.Key()]
		if !ok {
			continue
		}
		var entries []interface{}
		if err := json.Unmarshal(msg, &entries); err != nil {
			clean = false
			continue
		}
		slots := make([]string, 0, len(entries))
		for _, e := range entries {
			if s, ok := e.(string); ok {
				slots = append(slots, s)
			}
		}
		t[d] = NormalizeSlots(slots, w)
	}
	return t, clean
}
