/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mapper

import (
	"time"

	"github.com/latticeui/lattice/internal/models"
	"github.com/latticeui/lattice/internal/overlap"
	"github.com/latticeui/lattice/internal/timegrid"
	"github.com/rs/zerolog"
)

// WeekConfig configures the week grid mapper.
type WeekConfig struct {
	// SubdivisionsPerHour splits each hour of the vertical axis.
	SubdivisionsPerHour int
	// WorkingHours is the visible sub-range of the day when
	// HideNonWorkingHours is set.
	WorkingHours timegrid.Window
	// HideNonWorkingHours clips the vertical axis to WorkingHours instead of
	// the full 24 hours.
	HideNonWorkingHours bool
	// WeekStart is the weekday rendered in the first column.
	WeekStart time.Weekday
	Layout    models.MeasureLayout
}

// DefaultWeekConfig returns the week mapper defaults: quarter-hour
// subdivisions, an 08:00-18:00 working window (not hidden), Monday first.
func DefaultWeekConfig() WeekConfig {
	return WeekConfig{
		SubdivisionsPerHour: 4,
		WorkingHours:        timegrid.Window{Start: 8 * time.Hour, End: 18 * time.Hour},
		WeekStart:           time.Monday,
	}
}

// Week positions items inside a 7-column week grid: one column per day, the
// vertical axis subdivided by time of day. Items overlapping in time share
// the day column side by side.
type Week struct {
	src    ItemSource
	cfg    WeekConfig
	axis   timegrid.Axis
	cache  *dayCache
	logger zerolog.Logger
}

// NewWeek constructs a week grid mapper. The subdivision count and, when
// non-working hours are hidden, the working window are validated up front;
// violations are configuration errors, never silently corrected.
func NewWeek(src ItemSource, cfg WeekConfig, logger zerolog.Logger) (*Week, error) {
	if cfg.SubdivisionsPerHour <= 0 {
		cfg.SubdivisionsPerHour = DefaultWeekConfig().SubdivisionsPerHour
	}
	window := timegrid.FullDay
	if cfg.HideNonWorkingHours {
		window = cfg.WorkingHours
	}
	axis := timegrid.Axis{Window: window, SubdivisionsPerHour: cfg.SubdivisionsPerHour}
	if err := axis.Validate(); err != nil {
		return nil, err
	}
	componentLogger := logger.With().Str("component", "week_mapper").Logger()
	return &Week{
		src:    src,
		cfg:    cfg,
		axis:   axis,
		cache:  newDayCache(componentLogger),
		logger: componentLogger,
	}, nil
}

const weekDays = 7

// Map returns the rectangle for the item's slice of the given day column, or
// an empty result when the day is outside the visible window or the item's
// time range misses the visible hours entirely.
func (w *Week) Map(slots []models.SchedulerSlot, item models.SchedulerItem, container models.ElementDimensions, date time.Time) []models.MappedItemRect {
	if !dayInRange(slots, date) {
		return nil
	}
	day := models.DayOf(date)

	segStart, segEnd, ok := clipToDay(item, day)
	if !ok {
		return nil
	}
	clippedStart, clippedEnd, ok := clipToWindow(segStart, segEnd, w.axis.Window)
	if !ok {
		return nil
	}

	layout := w.cfg.Layout
	usable := layout.UsableHeight
	if usable <= 0 {
		usable = nonNegative(container.Height - layout.LabelHeight)
	}

	topOffset := w.axis.Offset(clippedStart, usable)
	height := nonNegative(w.axis.Offset(clippedEnd, usable) - topOffset)
	y := layout.LabelHeight + topOffset

	weekStartDay := startOfWeek(day, w.cfg.WeekStart)
	dayIndex := daysBetween(weekStartDay, day) % weekDays

	assignment := w.columnFor(day, item)
	dayWidth := container.Width / weekDays
	available := nonNegative(dayWidth - layout.Padding.Left - layout.Padding.Right)
	slice := available / float64(assignment.Lanes)
	x := float64(dayIndex)*dayWidth + layout.Padding.Left + float64(assignment.Lane)*slice
	width := nonNegative(slice - layout.Gap)

	return []models.MappedItemRect{{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		// Anchors require the rendered edge to be the item's true boundary:
		// same ISO week, same day, and not clipped by the visible window.
		ShowTopAnchor: sameISOWeek(day, item.Start) &&
			models.SameDay(day, item.Start) &&
			segStart >= w.axis.Window.Start,
		ShowBottomAnchor: sameISOWeek(day, lastDayOf(item)) &&
			models.SameDay(day, lastDayOf(item)) &&
			segEnd <= w.axis.Window.End,
	}}
}

// columnFor resolves (or recalls) the item's side-by-side column within its
// day. Items absent from the day grouping default to a full-width single
// column.
func (w *Week) columnFor(day time.Time, item models.SchedulerItem) overlap.Assignment {
	res := w.cache.resolve(day, func() overlap.Result {
		items := w.src.ItemsForDay(day)
		intervals := make([]overlap.Interval, 0, len(items))
		dayStart := models.DayOf(day)
		for _, it := range items {
			s, e, ok := clipToDay(it, day)
			if !ok {
				continue
			}
			cs, ce, ok := clipToWindow(s, e, w.axis.Window)
			if !ok {
				continue
			}
			intervals = append(intervals, overlap.Interval{
				ID:    it.ID,
				Start: dayStart.Add(cs),
				End:   dayStart.Add(ce),
			})
		}
		return overlap.Resolve(intervals)
	})
	assignment, ok := res.For(item.ID)
	if !ok || assignment.Lanes <= 0 {
		return overlap.Assignment{Lane: 0, Lanes: 1}
	}
	return assignment
}

// InvalidateDateLayout drops the cached column assignments for one date.
func (w *Week) InvalidateDateLayout(date time.Time) {
	w.cache.invalidate(date)
}

// InvalidateAllLayouts drops every cached column assignment.
func (w *Week) InvalidateAllLayouts() {
	w.cache.invalidateAll()
}
