/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/latticeui/lattice/internal/config"
	"github.com/latticeui/lattice/internal/itemindex"
	"github.com/latticeui/lattice/internal/mapper"
	"github.com/latticeui/lattice/internal/models"
)

// fixtureTime parses the timezone-naive local instants used in fixtures.
type fixtureTime struct {
	time.Time
}

var fixtureTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func (t *fixtureTime) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	for _, layout := range fixtureTimeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unparsable time %q", raw)
}

type fixtureItem struct {
	ID    int64       `yaml:"id"`
	Start fixtureTime `yaml:"start"`
	End   fixtureTime `yaml:"end"`
	Label string      `yaml:"label"`
}

type fixtureSlot struct {
	Start fixtureTime `yaml:"start"`
	End   fixtureTime `yaml:"end"`
}

type fixtureColumn struct {
	ItemID int64 `yaml:"itemId"`
	Index  int   `yaml:"index"`
	Count  int   `yaml:"count"`
}

type fixtureDimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type fixtureLayout struct {
	Gap          float64 `yaml:"gap"`
	LabelHeight  float64 `yaml:"labelHeight"`
	CellSize     float64 `yaml:"cellSize"`
	UsableHeight float64 `yaml:"usableHeight"`
	PaddingLeft  float64 `yaml:"paddingLeft"`
	PaddingRight float64 `yaml:"paddingRight"`
}

// fixture is the YAML description of one layout scenario: the item set, the
// visible slots, the container size and the view mode to exercise.
type fixture struct {
	View      string            `yaml:"view"`
	Container fixtureDimensions `yaml:"container"`
	Layout    fixtureLayout     `yaml:"layout"`
	Items     []fixtureItem     `yaml:"items"`
	Slots     []fixtureSlot     `yaml:"slots"`
	Columns   []fixtureColumn   `yaml:"columns"`
	Dates     []fixtureTime     `yaml:"dates"`
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if f.View == "" {
		f.View = "timeline"
	}
	if f.Container.Width <= 0 {
		f.Container.Width = 1000
	}
	if f.Container.Height <= 0 {
		f.Container.Height = 600
	}
	return &f, nil
}

func (f *fixture) items() []models.SchedulerItem {
	items := make([]models.SchedulerItem, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, models.SchedulerItem{
			ID:      it.ID,
			Start:   it.Start.Time,
			End:     it.End.Time,
			Payload: it.Label,
		})
	}
	return items
}

// slots returns the fixture's slot array. When the fixture omits slots, the
// harness synthesizes them over the configured working window for each
// mapped date, playing the slot-source role the renderer normally fills.
func (f *fixture) slots(cfg *config.Config) []models.SchedulerSlot {
	if len(f.Slots) > 0 {
		slots := make([]models.SchedulerSlot, 0, len(f.Slots))
		for _, s := range f.Slots {
			slots = append(slots, models.SchedulerSlot{Start: s.Start.Time, End: s.End.Time})
		}
		return slots
	}

	window := cfg.WorkingHours()
	size := time.Hour / time.Duration(cfg.SubdivisionsPerHour)
	var slots []models.SchedulerSlot
	for _, d := range f.dates() {
		day := models.DayOf(d)
		for at := window.Start; at < window.End; at += size {
			slots = append(slots, models.SchedulerSlot{
				Start: day.Add(at),
				End:   day.Add(at + size),
			})
		}
	}
	return slots
}

// dates returns the days to map: either the fixture's explicit list or every
// day any item touches.
func (f *fixture) dates() []time.Time {
	if len(f.Dates) > 0 {
		dates := make([]time.Time, 0, len(f.Dates))
		for _, d := range f.Dates {
			dates = append(dates, models.DayOf(d.Time))
		}
		return dates
	}

	seen := map[int64]bool{}
	var dates []time.Time
	for _, it := range f.items() {
		day := models.DayOf(it.Start)
		for it.TouchesDay(day) {
			if !seen[models.DayKey(day)] {
				seen[models.DayKey(day)] = true
				dates = append(dates, day)
			}
			day = day.AddDate(0, 0, 1)
		}
	}
	return dates
}

func (f *fixture) measureLayout() models.MeasureLayout {
	return models.MeasureLayout{
		Gap:          f.Layout.Gap,
		LabelHeight:  f.Layout.LabelHeight,
		CellSize:     f.Layout.CellSize,
		UsableHeight: f.Layout.UsableHeight,
		Padding: models.Padding{
			Left:  f.Layout.PaddingLeft,
			Right: f.Layout.PaddingRight,
		},
	}
}

// buildMapper wires the fixture's view mode into a mapper instance using the
// environment defaults for everything the fixture does not override.
func (f *fixture) buildMapper(cfg *config.Config) (mapper.Mapper, error) {
	src := itemindex.New(f.items())
	layout := f.measureLayout()
	window := cfg.WorkingHours()

	switch f.View {
	case "month":
		return mapper.NewMonth(src, mapper.MonthConfig{
			Columns:        cfg.MonthColumns,
			WeekStart:      cfg.WeekStart,
			MaxItemsInCell: cfg.MaxItemsInCell,
			Layout:         layout,
		}, logger), nil
	case "week":
		return mapper.NewWeek(src, mapper.WeekConfig{
			SubdivisionsPerHour: cfg.SubdivisionsPerHour,
			WorkingHours:        window,
			HideNonWorkingHours: cfg.HideNonWorkingHours,
			WeekStart:           cfg.WeekStart,
			Layout:              layout,
		}, logger)
	case "timeline":
		return mapper.NewTimeline(src, mapper.TimelineConfig{
			SubdivisionsPerHour: cfg.SubdivisionsPerHour,
			WorkingHours:        window,
			RowHeight:           cfg.RowHeight,
			Gap:                 cfg.RowGap,
			Layout:              layout,
		}, logger)
	case "vertical":
		v, err := mapper.NewVertical(mapper.VerticalConfig{
			SubdivisionsPerHour: cfg.SubdivisionsPerHour,
			WorkingHours:        window,
			Layout:              layout,
		}, logger)
		if err != nil {
			return nil, err
		}
		if len(f.Columns) > 0 {
			results := make([]models.SlotLayoutResult, 0, len(f.Columns))
			for _, c := range f.Columns {
				results = append(results, models.SlotLayoutResult{
					ItemID: c.ItemID,
					Index:  c.Index,
					Count:  c.Count,
				})
			}
			v.SetLayout(results)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown view %q", f.View)
}

func (f *fixture) container() models.ElementDimensions {
	return models.ElementDimensions{Width: f.Container.Width, Height: f.Container.Height}
}
