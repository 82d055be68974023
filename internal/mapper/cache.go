/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package mapper

import (
	"time"

	"github.com/latticeui/lattice/internal/models"
	"github.com/latticeui/lattice/internal/overlap"
	"github.com/rs/zerolog"
)

// dayCache memoizes per-date lane assignments for a single mapper instance.
// The owner invalidates whenever the underlying item set for a date changes;
// a missed invalidation yields stale but never corrupt layouts. No locking:
// mappers live on one logical thread.
type dayCache struct {
	entries map[int64]overlap.Result
	logger  zerolog.Logger
}

func newDayCache(logger zerolog.Logger) *dayCache {
	return &dayCache{
		entries: make(map[int64]overlap.Result),
		logger:  logger,
	}
}

// resolve returns the cached result for a date, building and storing it on
// first use.
func (c *dayCache) resolve(date time.Time, build func() overlap.Result) overlap.Result {
	key := models.DayKey(date)
	if res, ok := c.entries[key]; ok {
		return res
	}
	res := build()
	c.entries[key] = res
	c.logger.Debug().Int64("day", key).Int("lanes", res.LaneCount()).Msg("day layout cached")
	return res
}

// invalidate drops the cached layout for one date.
func (c *dayCache) invalidate(date time.Time) {
	key := models.DayKey(date)
	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.logger.Debug().Int64("day", key).Msg("day layout invalidated")
	}
}

// invalidateAll drops every cached layout.
func (c *dayCache) invalidateAll() {
	if len(c.entries) == 0 {
		return
	}
	c.logger.Debug().Int("count", len(c.entries)).Msg("all day layouts invalidated")
	c.entries = make(map[int64]overlap.Result)
}
