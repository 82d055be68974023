package mapper

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/latticeui/lattice/internal/models"
	"github.com/latticeui/lattice/internal/timegrid"
)

func newVerticalMapper(t *testing.T) *Vertical {
	t.Helper()
	cfg := DefaultVerticalConfig()
	cfg.Layout = models.MeasureLayout{
		LabelHeight: 20,
		Padding:     models.Padding{Left: 10, Right: 10},
	}
	v, err := NewVertical(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewVertical: %v", err)
	}
	return v
}

func TestVerticalMapSnapsToSlots(t *testing.T) {
	v := newVerticalMapper(t)
	it := item(1, day(3).Add(9*time.Hour+5*time.Minute), day(3).Add(9*time.Hour+50*time.Minute))
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 400, Height: 520} // 500 usable, 50 px/h

	rects := v.Map(slots, it, container, day(3))
	if len(rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(rects))
	}
	r := rects[0]
	// 09:05 snaps down to 09:00, 09:50 snaps up to 10:00.
	if r.Y != 70 || r.Height != 50 {
		t.Fatalf("y/height = %v/%v, want 70/50", r.Y, r.Height)
	}
	if !r.ShowTopAnchor || !r.ShowBottomAnchor {
		t.Fatalf("anchors = %v/%v, want true/true", r.ShowTopAnchor, r.ShowBottomAnchor)
	}
}

func TestVerticalMapFullWidthWithoutLayout(t *testing.T) {
	v := newVerticalMapper(t)
	it := item(1, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 400, Height: 520}

	rects := v.Map(slots, it, container, day(3))
	if len(rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(rects))
	}
	if rects[0].X != 10 || rects[0].Width != 380 {
		t.Fatalf("x/width = %v/%v, want 10/380", rects[0].X, rects[0].Width)
	}
}

func TestVerticalSetLayoutColumns(t *testing.T) {
	v := newVerticalMapper(t)
	a := item(1, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	b := item(2, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	v.SetLayout([]models.SlotLayoutResult{
		{ItemID: 1, Index: 0, Count: 2},
		{ItemID: 2, Index: 1, Count: 2},
	})
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 400, Height: 520}

	ra := v.Map(slots, a, container, day(3))
	rb := v.Map(slots, b, container, day(3))
	if len(ra) != 1 || len(rb) != 1 {
		t.Fatalf("rects = %d/%d, want 1/1", len(ra), len(rb))
	}
	if ra[0].X != 10 || ra[0].Width != 190 {
		t.Fatalf("a x/width = %v/%v, want 10/190", ra[0].X, ra[0].Width)
	}
	if rb[0].X != 200 || rb[0].Width != 190 {
		t.Fatalf("b x/width = %v/%v, want 200/190", rb[0].X, rb[0].Width)
	}
}

func TestVerticalSetLayoutRejectsBadEntries(t *testing.T) {
	v := newVerticalMapper(t)
	it := item(1, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	v.SetLayout([]models.SlotLayoutResult{
		{ItemID: 1, Index: 2, Count: 2}, // index out of range
		{ItemID: 1, Index: 0, Count: 0}, // no columns
	})
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 400, Height: 520}

	rects := v.Map(slots, it, container, day(3))
	if len(rects) != 1 || rects[0].Width != 380 {
		t.Fatalf("rect = %+v, want full 380 width fallback", rects)
	}
}

func TestVerticalInvalidateAllLayouts(t *testing.T) {
	v := newVerticalMapper(t)
	it := item(1, day(3).Add(9*time.Hour), day(3).Add(10*time.Hour))
	v.SetLayout([]models.SlotLayoutResult{{ItemID: 1, Index: 1, Count: 2}})
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 400, Height: 520}

	if rects := v.Map(slots, it, container, day(3)); rects[0].X != 200 {
		t.Fatalf("x = %v, want 200", rects[0].X)
	}
	v.InvalidateAllLayouts()
	if rects := v.Map(slots, it, container, day(3)); rects[0].X != 10 || rects[0].Width != 380 {
		t.Fatalf("rect after invalidation = %+v, want full width", rects[0])
	}
}

func TestVerticalMapClippedAnchors(t *testing.T) {
	v := newVerticalMapper(t)
	it := item(1, day(3).Add(7*time.Hour), day(3).Add(19*time.Hour))
	slots := daySlots(day(3), day(3))
	container := models.ElementDimensions{Width: 400, Height: 520}

	rects := v.Map(slots, it, container, day(3))
	if len(rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(rects))
	}
	if rects[0].ShowTopAnchor || rects[0].ShowBottomAnchor {
		t.Fatalf("anchors = %v/%v, want false/false on clipped edges",
			rects[0].ShowTopAnchor, rects[0].ShowBottomAnchor)
	}
	if rects[0].Y != 20 || rects[0].Height != 500 {
		t.Fatalf("y/height = %v/%v, want 20/500", rects[0].Y, rects[0].Height)
	}
}

func TestNewVerticalRejectsBadConfig(t *testing.T) {
	cfg := DefaultVerticalConfig()
	cfg.SubdivisionsPerHour = 0
	if _, err := NewVertical(cfg, zerolog.Nop()); !errors.Is(err, timegrid.ErrInvalidSubdivisions) {
		t.Fatalf("err = %v, want ErrInvalidSubdivisions", err)
	}

	cfg = DefaultVerticalConfig()
	cfg.WorkingHours = timegrid.Window{Start: 18 * time.Hour, End: 8 * time.Hour}
	if _, err := NewVertical(cfg, zerolog.Nop()); !errors.Is(err, timegrid.ErrInvalidWindow) {
		t.Fatalf("err = %v, want ErrInvalidWindow", err)
	}
}
