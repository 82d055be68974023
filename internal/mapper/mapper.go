/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package mapper converts scheduler items into pixel rectangles for the four
// calendar view modes: month grid, week grid, single-day timeline and the
// vertical slot-aligned column view. Every mapper implements the same Map
// contract and composes the timegrid geometry and the overlap resolver with
// strategy-specific clipping.
//
// Mappers are built for a single logical thread (the render thread). The
// per-date caches carry no locking; concurrent calls into one mapper
// instance are the caller's bug, not the engine's.
package mapper

import (
	"time"

	"github.com/latticeui/lattice/internal/models"
	"github.com/latticeui/lattice/internal/timegrid"
)

// Mapper is the shared contract of all four positioning strategies. Map
// returns the rectangles for the given item on the given date: an empty
// result when the item does not intersect the visible window, otherwise one
// rectangle per contiguous visible segment. A multi-day item is mapped once
// per day it touches; each call covers only that day's slice.
type Mapper interface {
	Map(slots []models.SchedulerSlot, item models.SchedulerItem, container models.ElementDimensions, date time.Time) []models.MappedItemRect
}

// ItemSource supplies the items active on a calendar day, already grouped
// and sorted by the caller. The mappers trust this grouping; they never
// re-derive it from item start/end instants.
type ItemSource interface {
	ItemsForDay(day time.Time) []models.SchedulerItem
}

// startOfWeek walks a day back to the configured first weekday.
func startOfWeek(day time.Time, weekStart time.Weekday) time.Time {
	day = models.DayOf(day)
	for day.Weekday() != weekStart {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// daysBetween counts calendar days from one day to another using date
// arithmetic, so daylight-saving shifts cannot skew the count.
func daysBetween(from, to time.Time) int {
	from = models.DayOf(from)
	to = models.DayOf(to)
	if to.Before(from) {
		return -daysBetween(to, from)
	}
	n := 0
	for from.Before(to) {
		from = from.AddDate(0, 0, 1)
		n++
	}
	return n
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// lastDayOf returns the final calendar day an item touches. An item ending
// exactly at midnight stops on the preceding day; a zero-length item ends on
// its start day.
func lastDayOf(item models.SchedulerItem) time.Time {
	last := models.DayOf(item.End)
	if item.End.Equal(last) && item.End.After(item.Start) {
		last = last.AddDate(0, 0, -1)
	}
	return last
}

// clipToDay intersects an item with one calendar day and returns the covered
// range as time-of-day offsets. A span reaching past midnight clips to 24h.
// ok is false when the item does not touch the day at all.
func clipToDay(item models.SchedulerItem, day time.Time) (start, end time.Duration, ok bool) {
	if !item.TouchesDay(day) {
		return 0, 0, false
	}
	day = models.DayOf(day)
	dayEnd := day.AddDate(0, 0, 1)

	if item.Start.After(day) {
		start = item.Start.Sub(day)
	}
	if item.End.Before(dayEnd) {
		end = item.End.Sub(day)
	} else {
		end = 24 * time.Hour
	}
	return start, end, true
}

// clipToWindow intersects a day-relative range with the working-hours
// window. ok is false when the range lies entirely outside the window.
func clipToWindow(start, end time.Duration, win timegrid.Window) (time.Duration, time.Duration, bool) {
	if end < win.Start || start > win.End {
		return 0, 0, false
	}
	return win.Clamp(start), win.Clamp(end), true
}

// dayInRange reports whether a date falls inside the slot-derived visible
// window. An empty slot array has no visible days.
func dayInRange(slots []models.SchedulerSlot, date time.Time) bool {
	first, last, ok := timegrid.SlotRange(slots)
	if !ok {
		return false
	}
	day := models.DayOf(date)
	return !day.Before(first) && !day.After(last)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
