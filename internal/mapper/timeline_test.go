package mapper

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/latticeui/lattice/internal/itemindex"
	"github.com/latticeui/lattice/internal/models"
)

func newTimelineMapper(t *testing.T, items ...models.SchedulerItem) *Timeline {
	t.Helper()
	tl, err := NewTimeline(itemindex.New(items), DefaultTimelineConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	return tl
}

func TestTimelineMapPacksRows(t *testing.T) {
	a := item(1, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	b := item(2, day(3).Add(9*time.Hour+30*time.Minute), day(3).Add(10*time.Hour+30*time.Minute))
	c := item(3, day(3).Add(11*time.Hour), day(3).Add(12*time.Hour))
	tl := newTimelineMapper(t, a, b, c)

	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 1000, Height: 100} // 100 px/h

	ra := tl.Map(slots, a, container, day(3))
	rb := tl.Map(slots, b, container, day(3))
	rc := tl.Map(slots, c, container, day(3))
	if len(ra) != 1 || len(rb) != 1 || len(rc) != 1 {
		t.Fatalf("rects = %d/%d/%d, want 1/1/1", len(ra), len(rb), len(rc))
	}

	if ra[0].X != 100 || ra[0].Width != 100 || ra[0].Y != 0 || ra[0].Height != 40 {
		t.Fatalf("a rect = %+v, want x=100 w=100 y=0 h=40", ra[0])
	}
	if rb[0].X != 150 || rb[0].Y != 42 {
		t.Fatalf("b rect = %+v, want x=150 y=42", rb[0])
	}
	// C overlaps nothing, so the packer hands row 0 back.
	if rc[0].X != 300 || rc[0].Y != 0 {
		t.Fatalf("c rect = %+v, want x=300 y=0", rc[0])
	}

	if got := tl.RequiredHeight(day(3)); got != 82 {
		t.Fatalf("RequiredHeight = %v, want 82", got)
	}
}

func TestTimelineRequiredHeightEmptyDay(t *testing.T) {
	tl := newTimelineMapper(t)
	if got := tl.RequiredHeight(day(3)); got != 0 {
		t.Fatalf("RequiredHeight = %v, want 0", got)
	}
}

func TestTimelineMapClipsToWindow(t *testing.T) {
	it := item(1, day(3).Add(7*time.Hour), day(3).Add(9*time.Hour))
	tl := newTimelineMapper(t, it)
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 1000, Height: 100}

	rects := tl.Map(slots, it, container, day(3))
	if len(rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(rects))
	}
	r := rects[0]
	if r.X != 0 || r.Width != 100 {
		t.Fatalf("x/width = %v/%v, want 0/100", r.X, r.Width)
	}
	if r.ShowLeftAnchor {
		t.Fatal("window-clipped left edge must not carry an anchor")
	}
	if !r.ShowRightAnchor {
		t.Fatal("uncut right edge should carry an anchor")
	}
}

func TestTimelineMapOutsideWindowIsEmpty(t *testing.T) {
	it := item(1, day(3).Add(19*time.Hour), day(3).Add(21*time.Hour))
	tl := newTimelineMapper(t, it)
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 1000, Height: 100}

	if rects := tl.Map(slots, it, container, day(3)); len(rects) != 0 {
		t.Fatalf("rects = %d, want 0", len(rects))
	}
	// An invisible item must not inflate the row count either.
	if got := tl.RequiredHeight(day(3)); got != 0 {
		t.Fatalf("RequiredHeight = %v, want 0", got)
	}
}

func TestTimelineMapRespectsPadding(t *testing.T) {
	it := item(1, day(3).Add(8*time.Hour), day(3).Add(18*time.Hour))
	tl, err := NewTimeline(itemindex.New([]models.SchedulerItem{it}), TimelineConfig{
		SubdivisionsPerHour: 4,
		WorkingHours:        DefaultTimelineConfig().WorkingHours,
		RowHeight:           40,
		Gap:                 2,
		Layout: models.MeasureLayout{
			LabelHeight: 16,
			Padding:     models.Padding{Left: 10, Right: 30},
		},
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 1040, Height: 100}

	rects := tl.Map(slots, it, container, day(3))
	if len(rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(rects))
	}
	if rects[0].X != 10 || rects[0].Width != 1000 || rects[0].Y != 16 {
		t.Fatalf("rect = %+v, want x=10 w=1000 y=16", rects[0])
	}
}

func TestTimelineMapIsDeterministic(t *testing.T) {
	a := item(1, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	b := item(2, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	tl := newTimelineMapper(t, a, b)
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 1000, Height: 100}

	first := tl.Map(slots, b, container, day(3))
	second := tl.Map(slots, b, container, day(3))
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Fatalf("repeated Map differs: %+v vs %+v", first, second)
	}
}

func TestTimelineInvalidationRecomputesRows(t *testing.T) {
	src := newStubSource()
	a := item(1, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	src.set(day(3), a)

	tl, err := NewTimeline(src, DefaultTimelineConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewTimeline: %v", err)
	}
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 1000, Height: 100}

	if got := tl.RequiredHeight(day(3)); got != 40 {
		t.Fatalf("initial RequiredHeight = %v, want 40", got)
	}

	b := item(2, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	src.set(day(3), a, b)
	if got := tl.RequiredHeight(day(3)); got != 40 {
		t.Fatalf("stale RequiredHeight = %v, want 40", got)
	}

	tl.InvalidateDateLayout(day(3))
	if got := tl.RequiredHeight(day(3)); got != 82 {
		t.Fatalf("recomputed RequiredHeight = %v, want 82", got)
	}
	if rects := tl.Map(slots, b, container, day(3)); len(rects) != 1 || rects[0].Y != 42 {
		t.Fatalf("b after invalidation = %+v, want y=42", rects)
	}
}
