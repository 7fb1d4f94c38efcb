package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"schedule_notification_bot/internal/domain/schedule"
)

// FormatDaySchedule renders the records falling on one day as a chat
// message, ordered by pair index. Sentinel fields render as a dash so every
// line stays printable.
func FormatDaySchedule(day schedule.Day, records []schedule.Record) string {
	var todays []schedule.Record
	for _, rec := range records {
		if rec.Day == day {
			todays = append(todays, rec)
		}
	}
	if len(todays) == 0 {
		return fmt.Sprintf("%s: no lessons scheduled.", day)
	}

	sort.Slice(todays, func(i, j int) bool {
		if todays[i].Slot != todays[j].Slot {
			return todays[i].Slot < todays[j].Slot
		}
		return todays[i].Group < todays[j].Group
	})

	var b strings.Builder
	b.WriteString(string(day))
	b.WriteString(":\n")
	for _, rec := range todays {
		b.WriteString(formatLine(rec))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatLine(rec schedule.Record) string {
	slot := "-"
	if rec.Slot != schedule.SlotNone {
		slot = fmt.Sprintf("%d", rec.Slot)
		if times, ok := schedule.SlotTimes[rec.Slot]; ok {
			slot = fmt.Sprintf("%d (%s)", rec.Slot, times)
		}
	}
	return fmt.Sprintf("%s: %s | %s | %s | room %s",
		slot,
		displayValue(rec.Subject),
		displayValue(rec.Group),
		displayValue(rec.Teacher),
		displayValue(rec.Room),
	)
}

func displayValue(v string) string {
	if v == "" || v == schedule.ValueNone {
		return "-"
	}
	return v
}

// ParseDayQuery interprets free text as a day request: a day name in any
// case, or "bugin"/"today" for the current day.
func ParseDayQuery(text string, now time.Time) (schedule.Day, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(text))
	switch trimmed {
	case "BUGIN", "TODAY":
		return DayOf(now)
	}
	for _, day := range schedule.Days {
		if trimmed == string(day) {
			return day, true
		}
	}
	return "", false
}

// DayOf maps a wall-clock date to the timetable day. Sunday has no lessons.
func DayOf(now time.Time) (schedule.Day, bool) {
	switch now.Weekday() {
	case time.Monday:
		return schedule.DayDuysembi, true
	case time.Tuesday:
		return schedule.DaySiyshembi, true
	case time.Wednesday:
		return schedule.DaySarshembi, true
	case time.Thursday:
		return schedule.DayPiyshembi, true
	case time.Friday:
		return schedule.DayJuma, true
	case time.Saturday:
		return schedule.DayShembi, true
	default:
		return "", false
	}
}
