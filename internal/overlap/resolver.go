/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package overlap assigns non-overlapping lanes (rows or columns) to
// concurrent time intervals using greedy interval packing. Lane assignment
// for a fixed interval set is deterministic: intervals are ordered by
// (start, end, id) before packing, so recomputation with unchanged input
// reproduces identical lanes regardless of arrival order.
package overlap

import (
	"sort"
	"time"
)

// Interval is one packable time range. ID ties the assignment back to the
// originating scheduler item.
type Interval struct {
	ID    int64
	Start time.Time
	End   time.Time
}

// Assignment is the resolved position of one interval: Lane within its
// overlap cluster, and Lanes, the cluster's total lane count. Lanes drives
// side-by-side width division in the week view; Lane alone drives row
// stacking in the timeline and month views.
type Assignment struct {
	Lane  int
	Lanes int
}

// Result holds the lane assignments for one resolved interval set.
type Result struct {
	laneCount int
	byID      map[int64]Assignment
}

// LaneCount returns the maximum number of simultaneously occupied lanes
// across the whole set (the packing depth of the busiest cluster).
func (r Result) LaneCount() int {
	return r.laneCount
}

// For returns the assignment for an interval id.
func (r Result) For(id int64) (Assignment, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// Order sorts intervals into the canonical (start, end, id) order used for
// packing. The input is not modified.
func Order(intervals []Interval) []Interval {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.ID < b.ID
	})
	return sorted
}

// Stack assigns every interval its own lane in canonical order. This is the
// day-granularity form of packing used by the month grid, where each item
// occupies the full cell width and therefore conflicts with every other item
// on the same day regardless of time-of-day overlap.
func Stack(intervals []Interval) Result {
	res := Result{byID: make(map[int64]Assignment, len(intervals))}
	sorted := Order(intervals)
	for i, iv := range sorted {
		res.byID[iv.ID] = Assignment{Lane: i, Lanes: len(sorted)}
	}
	res.laneCount = len(sorted)
	return res
}

// Resolve packs the intervals into lanes. Walking the canonical order, each
// interval reuses the first lane whose last-assigned end is at or before the
// interval's start, or opens a new lane. Intervals that do not transitively
// overlap form separate clusters; lanes and cluster lane counts reset at
// cluster boundaries so disjoint groups keep full width.
func Resolve(intervals []Interval) Result {
	res := Result{byID: make(map[int64]Assignment, len(intervals))}
	if len(intervals) == 0 {
		return res
	}

	sorted := Order(intervals)

	var (
		laneEnds   []time.Time
		clusterIDs []int64
		clusterEnd time.Time
	)

	flush := func() {
		lanes := len(laneEnds)
		for _, id := range clusterIDs {
			a := res.byID[id]
			a.Lanes = lanes
			res.byID[id] = a
		}
		if lanes > res.laneCount {
			res.laneCount = lanes
		}
		laneEnds = laneEnds[:0]
		clusterIDs = clusterIDs[:0]
	}

	for _, iv := range sorted {
		if len(clusterIDs) > 0 && !iv.Start.Before(clusterEnd) {
			flush()
		}

		lane := -1
		for i, end := range laneEnds {
			if !end.After(iv.Start) {
				lane = i
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, iv.End)
		} else {
			laneEnds[lane] = iv.End
		}

		res.byID[iv.ID] = Assignment{Lane: lane}
		clusterIDs = append(clusterIDs, iv.ID)
		if len(clusterIDs) == 1 || iv.End.After(clusterEnd) {
			clusterEnd = iv.End
		}
	}
	flush()

	return res
}
