/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mapper

import (
	"time"

	"github.com/latticeui/lattice/internal/models"
	"github.com/latticeui/lattice/internal/timegrid"
	"github.com/rs/zerolog"
)

// VerticalConfig configures the vertical slot-aligned mapper.
type VerticalConfig struct {
	// SubdivisionsPerHour defines the slot boundaries items snap to.
	SubdivisionsPerHour int
	// WorkingHours is the visible sub-range of the day.
	WorkingHours timegrid.Window
	Layout       models.MeasureLayout
}

// DefaultVerticalConfig returns the vertical mapper defaults: quarter-hour
// slots over 08:00-18:00.
func DefaultVerticalConfig() VerticalConfig {
	return VerticalConfig{
		SubdivisionsPerHour: 4,
		WorkingHours:        timegrid.Window{Start: 8 * time.Hour, End: 18 * time.Hour},
	}
}

// Vertical positions items in a single- or multi-day column view, snapping
// start and end to slot boundaries and placing each item purely by elapsed
// time since the window start. It performs no overlap resolution of its own:
// column assignments arrive precomputed via SetLayout, and an item without
// one occupies column 0 of 1 (full width) by definition, not as an error.
type Vertical struct {
	cfg     VerticalConfig
	axis    timegrid.Axis
	layouts map[int64]models.SlotLayoutResult
	logger  zerolog.Logger
}

// NewVertical constructs a vertical slot-aligned mapper. Subdivision count
// and working window are validated immediately, like the timeline mapper.
func NewVertical(cfg VerticalConfig, logger zerolog.Logger) (*Vertical, error) {
	axis := timegrid.Axis{Window: cfg.WorkingHours, SubdivisionsPerHour: cfg.SubdivisionsPerHour}
	if err := axis.Validate(); err != nil {
		return nil, err
	}
	return &Vertical{
		cfg:     cfg,
		axis:    axis,
		layouts: make(map[int64]models.SlotLayoutResult),
		logger:  logger.With().Str("component", "vertical_mapper").Logger(),
	}, nil
}

// SetLayout replaces the stored column assignments with the results of an
// external overlap resolution step. Entries with a non-positive column count
// are ignored.
func (v *Vertical) SetLayout(results []models.SlotLayoutResult) {
	v.layouts = make(map[int64]models.SlotLayoutResult, len(results))
	for _, r := range results {
		if r.Count <= 0 || r.Index < 0 || r.Index >= r.Count {
			continue
		}
		v.layouts[r.ItemID] = r
	}
	v.logger.Debug().Int("count", len(v.layouts)).Msg("column layout set")
}

// InvalidateAllLayouts drops every stored column assignment; items fall back
// to full width until the next SetLayout.
func (v *Vertical) InvalidateAllLayouts() {
	if len(v.layouts) == 0 {
		return
	}
	v.layouts = make(map[int64]models.SlotLayoutResult)
	v.logger.Debug().Msg("column layout invalidated")
}

// Map returns the slot-aligned rectangle for the item's slice of the given
// day, or an empty result when the day is outside the slot range or the item
// misses the working-hours window.
func (v *Vertical) Map(slots []models.SchedulerSlot, item models.SchedulerItem, container models.ElementDimensions, date time.Time) []models.MappedItemRect {
	if !dayInRange(slots, date) {
		return nil
	}
	day := models.DayOf(date)

	segStart, segEnd, ok := clipToDay(item, day)
	if !ok {
		return nil
	}
	clippedStart, clippedEnd, ok := clipToWindow(segStart, segEnd, v.axis.Window)
	if !ok {
		return nil
	}

	snappedStart := v.axis.SnapDown(clippedStart)
	snappedEnd := v.axis.SnapUp(clippedEnd)

	layout := v.cfg.Layout
	usable := layout.UsableHeight
	if usable <= 0 {
		usable = nonNegative(container.Height - layout.LabelHeight)
	}
	pixelsPerHour := 0.0
	if hours := v.axis.Window.Hours(); hours > 0 {
		pixelsPerHour = usable / hours
	}

	y := layout.LabelHeight + (snappedStart-v.axis.Window.Start).Hours()*pixelsPerHour
	height := nonNegative((snappedEnd - snappedStart).Hours() * pixelsPerHour)

	assignment, ok := v.layouts[item.ID]
	if !ok {
		assignment = models.SlotLayoutResult{ItemID: item.ID, Index: 0, Count: 1}
	}

	available := nonNegative(container.Width - layout.Padding.Left - layout.Padding.Right)
	slice := available / float64(assignment.Count)
	x := layout.Padding.Left + float64(assignment.Index)*slice
	width := nonNegative(slice - layout.Gap)

	return []models.MappedItemRect{{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		ShowTopAnchor: models.SameDay(day, item.Start) &&
			segStart >= v.axis.Window.Start,
		ShowBottomAnchor: models.SameDay(day, lastDayOf(item)) &&
			segEnd <= v.axis.Window.End,
	}}
}
