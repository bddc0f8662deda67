package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(time.Monday))
	assert.Equal(t, Saturday, WeekdayOf(time.Saturday))
	assert.Equal(t, Sunday, WeekdayOf(time.Sunday))

	// 2026-10-19 is a Monday.
	d := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, WeekdayOfDate(d))
	assert.Equal(t, Sunday, WeekdayOfDate(d.AddDate(0, 0, 6)))
}

func TestParseWeekday(t *testing.T) {
	for _, d := range Weekdays {
		got, ok := ParseWeekday(d.Key())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	got, ok := ParseWeekday("funday")
	assert.False(t, ok)
	assert.Equal(t, Monday, got)

	_, ok = ParseWeekday("Friday")
	assert.False(t, ok)
	assert.Equal(t, "monday", Weekday(42).Key())
}

func TestParseSlot(t *testing.T) {
	cases := []struct {
		in   string
		hour int
		ok   bool
	}{
		{"09:00", 9, true},
		{"00:00", 0, true},
		{"23:00", 23, true},
		{"24:00", 0, false},
		{"9:00", 0, false},
		{"09:30", 0, false},
		{"ab:00", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		h, ok := ParseSlot(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.hour, h, tc.in)
		}
	}
}

func TestOperatingWindow(t *testing.T) {
	w := DefaultWindow
	assert.True(t, w.Contains("07:00"))
	assert.True(t, w.Contains("20:00"))
	assert.False(t, w.Contains("21:00"))
	assert.False(t, w.Contains("06:00"))

	slots := w.Slots()
	require.Len(t, slots, 14)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "20:00", slots[13])
}

func TestNormalizeSlots(t *testing.T) {
	got := NormalizeSlots([]string{"15:00", "09:00", "bogus", "09:00", "22:00", "10:00"}, DefaultWindow)
	assert.Equal(t, []string{"09:00", "10:00", "15:00"}, got)
}

func TestMarshalTemplateShape(t *testing.T) {
	tmpl := NewWeeklyTemplate()
	tmpl[Monday] = []string{"09:00", "10:00"}

	data, err := json.Marshal(tmpl)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"monday":["09:00","10:00"],
		"tuesday":[],"wednesday":[],"thursday":[],"friday":[],
		"saturday":[],"sunday":[]
	}`, string(data))
}

func TestMarshalZeroTemplateUsesEmptyArrays(t *testing.T) {
	var tmpl WeeklyTemplate
	data, err := json.Marshal(tmpl)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestParseTemplateMixedTypes(t *testing.T) {
	tmpl, clean := ParseTemplate([]byte(`{"monday":["09:00", 5, null]}`), DefaultWindow)
	assert.True(t, clean)
	assert.Equal(t, []string{"09:00"}, tmpl[Monday])
	for _, d := range Weekdays[1:] {
		assert.Empty(t, tmpl[d], d.Key())
		assert.NotNil(t, tmpl[d], d.Key())
	}
}

func TestParseTemplateMalformed(t *testing.T) {
	for _, blob := range []string{`not json`, `[]`, `"monday"`, `null`} {
		tmpl, clean := ParseTemplate([]byte(blob), DefaultWindow)
		assert.False(t, clean, blob)
		assert.Equal(t, 0, tmpl.Total(), blob)
	}

	tmpl, clean := ParseTemplate([]byte(`{"monday":"09:00","tuesday":["11:00","08:00"]}`), DefaultWindow)
	assert.False(t, clean)
	assert.Empty(t, tmpl[Monday])
	assert.Equal(t, []string{"08:00", "11:00"}, tmpl[Tuesday])
}

func TestTemplateRoundTrip(t *testing.T) {
	tmpl := NewWeeklyTemplate()
	tmpl[Wednesday] = []string{"07:00", "20:00"}
	tmpl[Sunday] = []string{"12:00"}

	data, err := json.Marshal(tmpl)
	require.NoError(t, err)

	var back WeeklyTemplate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tmpl, back)
}

func TestCloneIsDeep(t *testing.T) {
	tmpl := NewWeeklyTemplate()
	tmpl[Friday] = []string{"09:00"}

	c := tmpl.Clone()
	c[Friday][0] = "10:00"
	assert.Equal(t, "09:00", tmpl[Friday][0])
}

func TestTotalAndCount(t *testing.T) {
	tmpl := NewWeeklyTemplate()
	tmpl[Monday] = []string{"09:00", "10:00"}
	tmpl[Thursday] = []string{"11:00"}
	assert.Equal(t, 3, tmpl.Total())
	assert.Equal(t, 2, tmpl.Count(Monday))
	assert.True(t, tmpl.Has(Thursday, "11:00"))
	assert.False(t, tmpl.Has(Thursday, "12:00"))
}
