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

// TimelineConfig configures the single-day timeline mapper.
type TimelineConfig struct {
	// SubdivisionsPerHour splits each hour of the horizontal axis.
	SubdivisionsPerHour int
	// WorkingHours is the visible sub-range of the day.
	WorkingHours timegrid.Window
	// RowHeight is the fixed height of each item row.
	RowHeight float64
	// Gap is the vertical spacing between rows.
	Gap    float64
	Layout models.MeasureLayout
}

// DefaultTimelineConfig returns the timeline defaults: quarter-hour
// subdivisions over 08:00-18:00, 40px rows with a 2px gap.
func DefaultTimelineConfig() TimelineConfig {
	return TimelineConfig{
		SubdivisionsPerHour: 4,
		WorkingHours:        timegrid.Window{Start: 8 * time.Hour, End: 18 * time.Hour},
		RowHeight:           40,
		Gap:                 2,
	}
}

// Timeline positions one day's items along a horizontal time axis, stacking
// overlapping items into rows. Row assignments and the required container
// height are cached per date until the owner invalidates them.
type Timeline struct {
	src    ItemSource
	cfg    TimelineConfig
	axis   timegrid.Axis
	cache  *dayCache
	logger zerolog.Logger
}

// NewTimeline constructs a timeline mapper. The subdivision count and
// working-hours window are validated immediately; a non-positive subdivision
// count or a window ending at or before its start is a configuration error.
func NewTimeline(src ItemSource, cfg TimelineConfig, logger zerolog.Logger) (*Timeline, error) {
	axis := timegrid.Axis{Window: cfg.WorkingHours, SubdivisionsPerHour: cfg.SubdivisionsPerHour}
	if err := axis.Validate(); err != nil {
		return nil, err
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = DefaultTimelineConfig().RowHeight
	}
	componentLogger := logger.With().Str("component", "timeline_mapper").Logger()
	return &Timeline{
		src:    src,
		cfg:    cfg,
		axis:   axis,
		cache:  newDayCache(componentLogger),
		logger: componentLogger,
	}, nil
}

// Map returns the rectangle for the item's slice of the given day, or an
// empty result when the day is outside the slot range or the item misses the
// working-hours window.
func (t *Timeline) Map(slots []models.SchedulerSlot, item models.SchedulerItem, container models.ElementDimensions, date time.Time) []models.MappedItemRect {
	if !dayInRange(slots, date) {
		return nil
	}
	day := models.DayOf(date)

	segStart, segEnd, ok := clipToDay(item, day)
	if !ok {
		return nil
	}
	clippedStart, clippedEnd, ok := clipToWindow(segStart, segEnd, t.axis.Window)
	if !ok {
		return nil
	}

	assignment, ok := t.rowsFor(day).For(item.ID)
	if !ok {
		return nil
	}

	layout := t.cfg.Layout
	extent := nonNegative(container.Width - layout.Padding.Left - layout.Padding.Right)
	left := t.axis.Offset(clippedStart, extent)
	width := nonNegative(t.axis.Offset(clippedEnd, extent) - left)
	x := layout.Padding.Left + left
	y := layout.LabelHeight + float64(assignment.Lane)*(t.cfg.RowHeight+t.cfg.Gap)

	return []models.MappedItemRect{{
		X:      x,
		Y:      y,
		Width:  width,
		Height: t.cfg.RowHeight,
		// Anchors only where the rendered edge is the true item boundary,
		// not a day or working-hours clip.
		ShowLeftAnchor:  models.SameDay(day, item.Start) && segStart >= t.axis.Window.Start,
		ShowRightAnchor: models.SameDay(day, lastDayOf(item)) && segEnd <= t.axis.Window.End,
	}}
}

// RequiredHeight returns the container height needed to show every row on
// the given date: rows*rowHeight + (rows-1)*gap, zero when nothing is
// visible. The value derives from the cached row assignment, so the caller
// can size the container before rendering.
func (t *Timeline) RequiredHeight(date time.Time) float64 {
	rows := t.rowsFor(models.DayOf(date)).LaneCount()
	if rows <= 0 {
		return 0
	}
	return float64(rows)*t.cfg.RowHeight + float64(rows-1)*t.cfg.Gap
}

// rowsFor resolves (or recalls) the packed rows for a date. Items whose time
// range misses the working window are excluded so they cannot inflate the
// row count.
func (t *Timeline) rowsFor(day time.Time) overlap.Result {
	return t.cache.resolve(day, func() overlap.Result {
		items := t.src.ItemsForDay(day)
		intervals := make([]overlap.Interval, 0, len(items))
		dayStart := models.DayOf(day)
		for _, it := range items {
			s, e, ok := clipToDay(it, day)
			if !ok {
				continue
			}
			cs, ce, ok := clipToWindow(s, e, t.axis.Window)
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
}

// InvalidateDateLayout drops the cached rows and required height for one
// date. Call it whenever the day's item set changes.
func (t *Timeline) InvalidateDateLayout(date time.Time) {
	t.cache.invalidate(date)
}

// InvalidateAllLayouts drops every cached row assignment.
func (t *Timeline) InvalidateAllLayouts() {
	t.cache.invalidateAll()
}
