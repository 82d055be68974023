/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package occurrence materializes recurring series into concrete scheduler
// items for a visible window. Expansion is deterministic: occurrence ids
// derive from the series id and the occurrence ordinal, so re-expanding an
// unchanged series reproduces identical items.
package occurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/latticeui/lattice/internal/models"
)

// ErrEmptyRule is returned when a series carries no recurrence rule.
var ErrEmptyRule = errors.New("recurrence rule is empty")

// ordinalSpan is the id space reserved per series for occurrence ordinals.
const ordinalSpan = 1_000_000

// Series is a recurring appointment: a base item giving the first start,
// the duration and the payload, plus an RFC 5545 recurrence rule and
// optional exception dates whose occurrences are skipped.
type Series struct {
	Base       models.SchedulerItem
	Rule       string
	Exceptions []time.Time
}

// Expand materializes the series' occurrences whose start falls inside
// [from, to], inclusive. Each occurrence keeps the base item's duration and
// payload; its id is seriesID*1e6 + ordinal, where the ordinal counts
// occurrences from the series start so window position cannot shift ids.
// An unparsable rule is a configuration error and fails loudly.
func Expand(s Series, from, to time.Time) ([]models.SchedulerItem, error) {
	if s.Rule == "" {
		return nil, ErrEmptyRule
	}
	opt, err := rrule.StrToROption(s.Rule)
	if err != nil {
		return nil, fmt.Errorf("parse recurrence rule: %w", err)
	}
	opt.Dtstart = s.Base.Start
	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("build recurrence rule: %w", err)
	}

	duration := s.Base.Duration()
	starts := rule.Between(s.Base.Start, to, true)

	items := make([]models.SchedulerItem, 0, len(starts))
	for ordinal, start := range starts {
		if start.Before(from) || excepted(s.Exceptions, start) {
			continue
		}
		items = append(items, models.SchedulerItem{
			ID:      s.Base.ID*ordinalSpan + int64(ordinal),
			Start:   start,
			End:     start.Add(duration),
			Payload: s.Base.Payload,
		})
	}
	return items, nil
}

func excepted(exceptions []time.Time, start time.Time) bool {
	for _, ex := range exceptions {
		if ex.Equal(start) {
			return true
		}
	}
	return false
}
