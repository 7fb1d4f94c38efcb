package app

import (
	"strings"
	"testing"
	"time"

	"schedule_notification_bot/internal/domain/schedule"
)

func TestFormatDayScheduleOrdersBySlot(t *testing.T) {
	records := []schedule.Record{
		{Day: schedule.DayDuysembi, Slot: 3, Group: "101", Subject: "Physics", Teacher: "Mamirbaeva D", Room: "318"},
		{Day: schedule.DayDuysembi, Slot: 1, Group: "101-102", Subject: "Math", Teacher: "Tajieva A", Room: "204"},
		{Day: schedule.DayJuma, Slot: 2, Group: "101", Subject: "History", Teacher: "Koyshekenova T", Room: "105"},
	}

	got := FormatDaySchedule(schedule.DayDuysembi, records)

	if !strings.HasPrefix(got, "DUYSEMBI:") {
		t.Errorf("message must open with the day name, got %q", got)
	}
	mathIdx := strings.Index(got, "Math")
	physicsIdx := strings.Index(got, "Physics")
	if mathIdx < 0 || physicsIdx < 0 || mathIdx > physicsIdx {
		t.Errorf("slots must render in order, got %q", got)
	}
	if strings.Contains(got, "History") {
		t.Errorf("other days must not leak into the message, got %q", got)
	}
	if !strings.Contains(got, "8:30-9:50") {
		t.Errorf("slot wall-clock times must render, got %q", got)
	}
}

func TestFormatDayScheduleEmpty(t *testing.T) {
	got := FormatDaySchedule(schedule.DayShembi, nil)
	if !strings.Contains(got, "no lessons") {
		t.Errorf("an empty day still renders a line, got %q", got)
	}
}

func TestFormatDayScheduleRendersSentinels(t *testing.T) {
	records := []schedule.Record{
		{Day: schedule.DayDuysembi, Slot: schedule.SlotNone, Group: "101", Subject: schedule.ValueNone, Teacher: "Tajieva A", Room: schedule.ValueNone},
	}
	got := FormatDaySchedule(schedule.DayDuysembi, records)
	if strings.Contains(got, schedule.ValueNone) {
		t.Errorf("the sentinel must not leak into chat output, got %q", got)
	}
}

func TestParseDayQuery(t *testing.T) {
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC) // a Monday

	day, ok := ParseDayQuery("juma", monday)
	if !ok || day != schedule.DayJuma {
		t.Errorf("ParseDayQuery(juma) = %v, %v", day, ok)
	}
	day, ok = ParseDayQuery("  DUYSEMBI ", monday)
	if !ok || day != schedule.DayDuysembi {
		t.Errorf("ParseDayQuery(DUYSEMBI) = %v, %v", day, ok)
	}
	day, ok = ParseDayQuery("bugin", monday)
	if !ok || day != schedule.DayDuysembi {
		t.Errorf("ParseDayQuery(bugin) on a Monday = %v, %v", day, ok)
	}
	if _, ok := ParseDayQuery("whatever", monday); ok {
		t.Error("unknown text must not parse as a day")
	}
}

func TestDayOfSunday(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	if _, ok := DayOf(sunday); ok {
		t.Error("Sunday has no timetable day")
	}
}
