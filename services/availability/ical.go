package availability

import (
	"fmt"
	"strings"
	"time"

	"tutorhub/models"
)

const (
	icsDateTimeFormat = "20060102T150405Z"
	icsProductID      = "-//tutorhub//availability//EN"
)

// FormatICS renders events as an iCalendar feed.
func FormatICS(name string, events []models.CalendarEvent, stamp time.Time) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:" + icsProductID + "\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(name)))
	}

	for _, e := range events {
		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString(fmt.Sprintf("UID:%s\r\n", e.UID))
		b.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp.UTC().Format(icsDateTimeFormat)))
		b.WriteString(fmt.Sprintf("DTSTART:%s\r\n", e.Start.UTC().Format(icsDateTimeFormat)))
		b.WriteString(fmt.Sprintf("DTEND:%s\r\n", e.End.UTC().Format(icsDateTimeFormat)))
		b.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS("Open slot "+e.Slot)))
		b.WriteString("TRANSP:TRANSPARENT\r\n")
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
