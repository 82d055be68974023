/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package models

import "time"

// SchedulerItem is a schedulable entity positioned by the mappers. Start and
// End are timezone-naive local instants with Start <= End. The engine never
// mutates an item; Payload is carried through untouched for the renderer.
type SchedulerItem struct {
	ID      int64
	Start   time.Time
	End     time.Time
	Payload any
}

// Duration returns the item's total length.
func (it SchedulerItem) Duration() time.Duration {
	return it.End.Sub(it.Start)
}

// TouchesDay reports whether the item is active at any point of the given
// calendar day. Day boundaries are half-open: an item ending exactly at
// midnight does not touch the following day unless it is zero length.
func (it SchedulerItem) TouchesDay(day time.Time) bool {
	dayStart := DayOf(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	if it.Start.Equal(it.End) {
		return !it.Start.Before(dayStart) && it.Start.Before(dayEnd)
	}
	return it.Start.Before(dayEnd) && it.End.After(dayStart)
}

// SchedulerSlot is one discrete segment of the visible time axis. The caller
// supplies slots as a contiguous ascending array; the engine derives grid
// extents from it and never invents slots of its own.
type SchedulerSlot struct {
	Start time.Time
	End   time.Time
}

// ElementDimensions is the pixel size of the rendering container for the
// current date or page. Measurement happens outside the engine.
type ElementDimensions struct {
	Width  float64
	Height float64
}

// Padding reserves pixels on each inner edge of a grid cell.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// MeasureLayout carries the per-pass strategy configuration: spacing between
// cells, space reserved for day labels, cell sizing and inner padding. It is
// supplied once per layout pass and does not change mid-pass.
type MeasureLayout struct {
	Gap          float64
	LabelHeight  float64
	CellSize     float64
	UsableHeight float64 // 0 means derive from the container height
	Padding      Padding
}

// MappedItemRect is the engine's sole output unit: one pixel rectangle plus
// four anchor flags. An anchor is true only when that edge coincides with the
// item's true temporal boundary; edges produced by clipping to the visible
// window never carry an anchor.
type MappedItemRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	ShowLeftAnchor   bool `json:"show_left_anchor"`
	ShowRightAnchor  bool `json:"show_right_anchor"`
	ShowTopAnchor    bool `json:"show_top_anchor"`
	ShowBottomAnchor bool `json:"show_bottom_anchor"`
}

// SlotLayoutResult is one precomputed column assignment consumed by the
// vertical slot-aligned mapper: the item occupies column Index of Count
// side-by-side columns.
type SlotLayoutResult struct {
	ItemID int64
	Index  int
	Count  int
}

// DayOf truncates an instant to midnight of its calendar day, preserving the
// instant's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayKey returns a stable integer key for an instant's calendar day, suitable
// for map keys independent of location pointer identity.
func DayKey(t time.Time) int64 {
	y, m, d := t.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}
