/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package timegrid holds the pure time-axis geometry shared by the position
// mappers: converting a time of day into a pixel offset for a given
// working-hours window and subdivision count, snapping instants to slot
// boundaries, and deriving grid extents from a slot array.
package timegrid

import (
	"errors"
	"time"

	"github.com/latticeui/lattice/internal/models"
)

var (
	// ErrInvalidSubdivisions is returned when an axis is configured with a
	// non-positive subdivisions-per-hour count.
	ErrInvalidSubdivisions = errors.New("subdivisions per hour must be positive")
	// ErrInvalidWindow is returned when a working-hours window ends at or
	// before its start.
	ErrInvalidWindow = errors.New("working hours end must be after start")
)

// Window is a sub-range of a day, expressed as offsets from midnight. A full
// day is Window{0, 24 * time.Hour}.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// FullDay is the window covering all 24 hours.
var FullDay = Window{Start: 0, End: 24 * time.Hour}

// Duration returns the window's length.
func (w Window) Duration() time.Duration {
	return w.End - w.Start
}

// Hours returns the window's length in fractional hours.
func (w Window) Hours() float64 {
	return w.Duration().Hours()
}

// Clamp restricts a time-of-day offset to the window.
func (w Window) Clamp(tod time.Duration) time.Duration {
	if tod < w.Start {
		return w.Start
	}
	if tod > w.End {
		return w.End
	}
	return tod
}

// Contains reports whether a time-of-day offset lies inside the window,
// end inclusive so an item finishing exactly at the window edge still counts.
func (w Window) Contains(tod time.Duration) bool {
	return tod >= w.Start && tod <= w.End
}

// Axis describes one visible time axis: a working-hours window subdivided
// into equal slots. Axis values are immutable and safe to copy.
type Axis struct {
	Window              Window
	SubdivisionsPerHour int
}

// Validate checks the axis configuration. Violations are reported, never
// silently corrected.
func (a Axis) Validate() error {
	if a.SubdivisionsPerHour <= 0 {
		return ErrInvalidSubdivisions
	}
	if a.Window.End <= a.Window.Start {
		return ErrInvalidWindow
	}
	return nil
}

// SlotSize returns the duration of one subdivision.
func (a Axis) SlotSize() time.Duration {
	return time.Hour / time.Duration(a.SubdivisionsPerHour)
}

// SlotCount returns the number of subdivisions covering the window.
func (a Axis) SlotCount() int {
	size := a.SlotSize()
	if size <= 0 {
		return 0
	}
	return int((a.Window.Duration() + size - 1) / size)
}

// Offset converts a time-of-day offset into a pixel position along an axis
// of the given extent. The input is clamped to the window first, so values
// outside working hours map to the axis edges.
func (a Axis) Offset(tod time.Duration, extent float64) float64 {
	hours := a.Window.Hours()
	if hours <= 0 || extent <= 0 {
		return 0
	}
	clamped := a.Window.Clamp(tod)
	elapsed := (clamped - a.Window.Start).Hours()
	return elapsed / hours * extent
}

// SlotIndex returns the subdivision index that contains the given
// time-of-day offset, clamped to the axis range.
func (a Axis) SlotIndex(tod time.Duration) int {
	size := a.SlotSize()
	if size <= 0 {
		return 0
	}
	idx := int(a.Window.Clamp(tod)-a.Window.Start) / int(size)
	if max := a.SlotCount(); idx >= max && max > 0 {
		idx = max - 1
	}
	return idx
}

// SnapDown rounds a time-of-day offset down to the nearest slot boundary at
// or before it, within the window.
func (a Axis) SnapDown(tod time.Duration) time.Duration {
	size := a.SlotSize()
	if size <= 0 {
		return a.Window.Clamp(tod)
	}
	clamped := a.Window.Clamp(tod)
	steps := (clamped - a.Window.Start) / size
	return a.Window.Start + steps*size
}

// SnapUp rounds a time-of-day offset up to the nearest slot boundary at or
// after it, within the window.
func (a Axis) SnapUp(tod time.Duration) time.Duration {
	size := a.SlotSize()
	if size <= 0 {
		return a.Window.Clamp(tod)
	}
	clamped := a.Window.Clamp(tod)
	rem := (clamped - a.Window.Start) % size
	if rem == 0 {
		return clamped
	}
	snapped := clamped + size - rem
	return a.Window.Clamp(snapped)
}

// TimeOfDay returns an instant's offset from its day's midnight.
func TimeOfDay(t time.Time) time.Duration {
	return t.Sub(models.DayOf(t))
}

// SlotRange derives the first and last calendar day covered by the slot
// array. ok is false for an empty array; the caller treats that as an empty
// visible window, not an error.
func SlotRange(slots []models.SchedulerSlot) (first, last time.Time, ok bool) {
	if len(slots) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first = models.DayOf(slots[0].Start)
	tail := slots[len(slots)-1]
	lastInstant := tail.End
	// A slot ending exactly at midnight still belongs to the preceding day.
	if TimeOfDay(lastInstant) == 0 && lastInstant.After(tail.Start) {
		lastInstant = lastInstant.Add(-time.Nanosecond)
	}
	last = models.DayOf(lastInstant)
	return first, last, true
}

// TotalSubdivisions returns the number of axis subdivisions described by the
// slot array. Slots are authoritative; the engine never invents more.
func TotalSubdivisions(slots []models.SchedulerSlot) int {
	return len(slots)
}
