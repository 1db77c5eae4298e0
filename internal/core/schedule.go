package core

import (
	"sort"
	"strings"
)

// TodaysAppointments flattens all slots across all rooms that fall on the
// given day, sorted ascending by start time. The "HH:MM" prefix is
// zero-padded 24-hour format, so a lexicographic comparison orders
// correctly. The sort is stable: ties keep the original room/slot order.
func TodaysAppointments(rooms []Room, today Date) []ScheduleSlot {
	var out []ScheduleSlot
	for _, room := range rooms {
		for _, slot := range room.Schedule {
			if slot.Date.SameDay(today) {
				out = append(out, slot)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return startTime(out[i].Time) < startTime(out[j].Time)
	})
	return out
}

// WeekBounds returns the Monday and Sunday of the week containing ref.
func WeekBounds(ref Date) (start, end Date) {
	offset := (int(ref.Weekday()) + 6) % 7 // days since Monday
	start = DateOf(ref.AddDate(0, 0, -offset))
	end = DateOf(start.AddDate(0, 0, 6))
	return start, end
}

// WeeklyAppointments flattens all slots dated within the week containing
// ref, Monday through Sunday inclusive. The result keeps natural flattening
// order; no sorting is applied.
func WeeklyAppointments(rooms []Room, ref Date) []ScheduleSlot {
	start, end := WeekBounds(ref)
	var out []ScheduleSlot
	for _, room := range rooms {
		for _, slot := range room.Schedule {
			d := slot.Date
			if !d.Before(start.Time) && !d.After(end.Time) {
				out = append(out, slot)
			}
		}
	}
	return out
}

// startTime extracts the "HH:MM" start from a "HH:MM - HH:MM" range. The
// whole string is used as-is when there is no separator.
func startTime(timeRange string) string {
	if before, _, found := strings.Cut(timeRange, " - "); found {
		return strings.TrimSpace(before)
	}
	return strings.TrimSpace(timeRange)
}
