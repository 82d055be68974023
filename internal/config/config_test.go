package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Environment != "development" {
		t.Fatalf("unexpected environment: %q", cfg.Environment)
	}
	if cfg.MonthColumns != 7 || cfg.MaxItemsInCell != 4 {
		t.Fatalf("unexpected month defaults: %d/%d", cfg.MonthColumns, cfg.MaxItemsInCell)
	}
	if cfg.WeekStart != time.Monday {
		t.Fatalf("unexpected week start: %v", cfg.WeekStart)
	}
	if w := cfg.WorkingHours(); w.Start != 8*time.Hour || w.End != 18*time.Hour {
		t.Fatalf("unexpected working hours: %v-%v", w.Start, w.End)
	}
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	t.Setenv("LATTICE_SUBDIVISIONS_PER_HOUR", "6")
	t.Setenv("LATTICE_DAY_START_HOUR", "6")
	t.Setenv("LATTICE_DAY_END_HOUR", "22")
	t.Setenv("LATTICE_HIDE_NON_WORKING_HOURS", "true")
	t.Setenv("LATTICE_WEEK_START", "Sunday")
	t.Setenv("LATTICE_ROW_HEIGHT", "32.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SubdivisionsPerHour != 6 {
		t.Fatalf("unexpected subdivisions: %d", cfg.SubdivisionsPerHour)
	}
	if !cfg.HideNonWorkingHours {
		t.Fatal("expected non-working hours to be hidden")
	}
	if cfg.WeekStart != time.Sunday {
		t.Fatalf("unexpected week start: %v", cfg.WeekStart)
	}
	if cfg.RowHeight != 32.5 {
		t.Fatalf("unexpected row height: %v", cfg.RowHeight)
	}
	if w := cfg.WorkingHours(); w.Start != 6*time.Hour || w.End != 22*time.Hour {
		t.Fatalf("unexpected working hours: %v-%v", w.Start, w.End)
	}
}

func TestLoadRejectsInvertedDayWindow(t *testing.T) {
	t.Setenv("LATTICE_DAY_START_HOUR", "18")
	t.Setenv("LATTICE_DAY_END_HOUR", "8")

	if _, err := Load(); err == nil {
		t.Fatal("expected config load to fail for an inverted day window")
	}
}

func TestLoadRejectsBadWeekStart(t *testing.T) {
	t.Setenv("LATTICE_WEEK_START", "someday")

	if _, err := Load(); err == nil {
		t.Fatal("expected config load to fail for an unknown week start")
	}
}

func TestLoadRejectsNonPositiveSubdivisions(t *testing.T) {
	t.Setenv("LATTICE_SUBDIVISIONS_PER_HOUR", "-2")

	if _, err := Load(); err == nil {
		t.Fatal("expected config load to fail for negative subdivisions")
	}
}
