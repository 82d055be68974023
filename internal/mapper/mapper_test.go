package mapper

import (
	"time"

	"github.com/latticeui/lattice/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func item(id int64, start, end time.Time) models.SchedulerItem {
	return models.SchedulerItem{ID: id, Start: start, End: end}
}

// daySlots builds one whole-day slot per day in [from, to], the shape the
// month view supplies.
func daySlots(from, to time.Time) []models.SchedulerSlot {
	var slots []models.SchedulerSlot
	d := models.DayOf(from)
	for !d.After(models.DayOf(to)) {
		slots = append(slots, models.SchedulerSlot{Start: d, End: d.AddDate(0, 0, 1)})
		d = d.AddDate(0, 0, 1)
	}
	return slots
}

// stubSource is a mutable item source for exercising cache invalidation.
type stubSource struct {
	items map[int64][]models.SchedulerItem
}

func newStubSource() *stubSource {
	return &stubSource{items: make(map[int64][]models.SchedulerItem)}
}

func (s *stubSource) set(d time.Time, items ...models.SchedulerItem) {
	s.items[models.DayKey(d)] = items
}

func (s *stubSource) ItemsForDay(d time.Time) []models.SchedulerItem {
	return s.items[models.DayKey(d)]
}
