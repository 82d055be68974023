/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package itemindex groups a flat item set by calendar day and by
// (day, hour) bucket, the shapes the position mappers consume. It is a
// reference implementation of the item-source collaborator: it neither
// fetches nor persists anything, it only reorganizes what the caller
// already holds.
package itemindex

import (
	"sort"
	"time"

	"github.com/latticeui/lattice/internal/models"
)

type hourKey struct {
	day  int64
	hour int
}

// Index holds items grouped for mapper consumption. Build it once per item
// set and rebuild it when the set changes; an Index never mutates after New.
type Index struct {
	byDay  map[int64][]models.SchedulerItem
	byHour map[hourKey][]models.SchedulerItem
}

// New builds an index from a flat item slice. Items are attached to every
// day they touch and, within a day, to every hour bucket their active range
// covers. Per-day slices come out pre-sorted in (start, end, id) order.
func New(items []models.SchedulerItem) *Index {
	idx := &Index{
		byDay:  make(map[int64][]models.SchedulerItem),
		byHour: make(map[hourKey][]models.SchedulerItem),
	}

	for _, it := range items {
		if it.End.Before(it.Start) {
			continue
		}
		day := models.DayOf(it.Start)
		lastDay := models.DayOf(it.End)
		// An item ending exactly at midnight stops on the previous day.
		if it.End.Equal(lastDay) && it.End.After(it.Start) {
			lastDay = lastDay.AddDate(0, 0, -1)
		}
		for !day.After(lastDay) {
			key := models.DayKey(day)
			idx.byDay[key] = append(idx.byDay[key], it)
			idx.indexHours(key, day, it)
			day = day.AddDate(0, 0, 1)
		}
	}

	for key := range idx.byDay {
		sortItems(idx.byDay[key])
	}
	for key := range idx.byHour {
		sortItems(idx.byHour[key])
	}
	return idx
}

func (x *Index) indexHours(key int64, day time.Time, it models.SchedulerItem) {
	dayEnd := day.AddDate(0, 0, 1)
	from := it.Start
	if from.Before(day) {
		from = day
	}
	to := it.End
	if to.After(dayEnd) {
		to = dayEnd
	}

	firstHour := from.Hour()
	lastHour := 23
	if to.Before(dayEnd) {
		lastHour = to.Hour()
		// End on an exact hour boundary belongs to the previous bucket.
		if to.Minute() == 0 && to.Second() == 0 && to.Nanosecond() == 0 && lastHour > firstHour {
			lastHour--
		}
	}
	for h := firstHour; h <= lastHour; h++ {
		hk := hourKey{day: key, hour: h}
		x.byHour[hk] = append(x.byHour[hk], it)
	}
}

func sortItems(items []models.SchedulerItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.ID < b.ID
	})
}

// ItemsForDay returns the items active on a calendar day in deterministic
// (start, end, id) order. The returned slice is shared; callers must not
// mutate it.
func (x *Index) ItemsForDay(day time.Time) []models.SchedulerItem {
	return x.byDay[models.DayKey(day)]
}

// ItemsForHour returns the items active during one hour bucket of a day.
func (x *Index) ItemsForHour(day time.Time, hour int) []models.SchedulerItem {
	return x.byHour[hourKey{day: models.DayKey(day), hour: hour}]
}

// Days returns the number of distinct days carrying at least one item.
func (x *Index) Days() int {
	return len(x.byDay)
}
