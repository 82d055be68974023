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

// MonthConfig configures the month grid mapper.
type MonthConfig struct {
	// Columns is the number of day columns per grid row.
	Columns int
	// WeekStart is the first weekday of each grid row.
	WeekStart time.Weekday
	// MaxItemsInCell caps how many items receive a row inside one day cell.
	// Items packed beyond the cap are omitted; the renderer is expected to
	// show an overflow indicator for them.
	MaxItemsInCell int
	Layout         models.MeasureLayout
}

// DefaultMonthConfig returns the month mapper defaults: a 7-column grid
// starting on Monday with up to 4 item rows per cell.
func DefaultMonthConfig() MonthConfig {
	return MonthConfig{
		Columns:        7,
		WeekStart:      time.Monday,
		MaxItemsInCell: 4,
	}
}

// Month positions items inside a week-aligned month grid. Each day an item
// touches yields one full-cell-width bar stacked into the day cell's rows.
type Month struct {
	src    ItemSource
	cfg    MonthConfig
	cache  *dayCache
	logger zerolog.Logger
}

// NewMonth constructs a month grid mapper. Zero Columns and MaxItemsInCell
// fall back to the defaults.
func NewMonth(src ItemSource, cfg MonthConfig, logger zerolog.Logger) *Month {
	def := DefaultMonthConfig()
	if cfg.Columns <= 0 {
		cfg.Columns = def.Columns
	}
	if cfg.MaxItemsInCell <= 0 {
		cfg.MaxItemsInCell = def.MaxItemsInCell
	}
	componentLogger := logger.With().Str("component", "month_mapper").Logger()
	return &Month{
		src:    src,
		cfg:    cfg,
		cache:  newDayCache(componentLogger),
		logger: componentLogger,
	}
}

// Map returns the rectangle for the item's slice on the given day, or an
// empty result when the day is outside the visible slot range, the item does
// not touch the day, or the item fell past the cell's row cap.
func (m *Month) Map(slots []models.SchedulerSlot, item models.SchedulerItem, container models.ElementDimensions, date time.Time) []models.MappedItemRect {
	if !dayInRange(slots, date) || !item.TouchesDay(date) {
		return nil
	}
	first, last, _ := timegrid.SlotRange(slots)
	day := models.DayOf(date)

	gridStart := startOfWeek(first, m.cfg.WeekStart)
	totalDays := daysBetween(gridStart, last) + 1
	weekCount := (totalDays + m.cfg.Columns - 1) / m.cfg.Columns
	if weekCount <= 0 {
		return nil
	}

	dayOrdinal := daysBetween(gridStart, day)
	weekIndex := dayOrdinal / m.cfg.Columns
	columnIndex := dayOrdinal % m.cfg.Columns

	assignment, ok := m.rowFor(day, item.ID)
	if !ok || assignment.Lane >= m.cfg.MaxItemsInCell {
		return nil
	}

	layout := m.cfg.Layout
	weekHeight := container.Height / float64(weekCount)
	usable := layout.UsableHeight
	if usable <= 0 {
		usable = weekHeight - layout.LabelHeight
	}
	maxRows := float64(m.cfg.MaxItemsInCell)
	rowHeight := nonNegative((usable - layout.Gap*maxRows) / (maxRows + 1))

	cellWidth := container.Width / float64(m.cfg.Columns)
	x := float64(columnIndex)*cellWidth + layout.Padding.Left
	width := nonNegative(cellWidth - layout.Padding.Left - layout.Padding.Right)

	weekOffsetY := float64(weekIndex) * weekHeight
	y := weekOffsetY + layout.LabelHeight + layout.Gap + float64(assignment.Lane)*(rowHeight+layout.Gap)

	return []models.MappedItemRect{{
		X:      x,
		Y:      y,
		Width:  width,
		Height: rowHeight,
		// Left/right anchors mark the item's true start and end dates, never
		// a week-segment or slot-range boundary.
		ShowLeftAnchor:  models.SameDay(day, item.Start),
		ShowRightAnchor: models.SameDay(day, lastDayOf(item)),
	}}
}

// rowFor looks up (or computes and caches) the item's row inside a day cell.
// Every item on a day occupies the full cell width, so rows follow the
// canonical (start, end, id) order at day granularity.
func (m *Month) rowFor(day time.Time, itemID int64) (overlap.Assignment, bool) {
	res := m.cache.resolve(day, func() overlap.Result {
		items := m.src.ItemsForDay(day)
		intervals := make([]overlap.Interval, 0, len(items))
		for _, it := range items {
			intervals = append(intervals, overlap.Interval{ID: it.ID, Start: it.Start, End: it.End})
		}
		return overlap.Stack(intervals)
	})
	return res.For(itemID)
}

// InvalidateDateLayout drops the cached row assignments for one date. Call
// it whenever the day's item set changes.
func (m *Month) InvalidateDateLayout(date time.Time) {
	m.cache.invalidate(date)
}

// InvalidateAllLayouts drops every cached row assignment.
func (m *Month) InvalidateAllLayouts() {
	m.cache.invalidateAll()
}
