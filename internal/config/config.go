/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/latticeui/lattice/internal/timegrid"
)

// Config covers process level configuration read from environment variables:
// the ambient defaults the developer harness feeds into the mappers. Library
// callers can ignore it entirely and construct mapper configs in process.
type Config struct {
	Environment string

	// Month view defaults
	MonthColumns   int
	WeekStart      time.Weekday
	MaxItemsInCell int

	// Time axis defaults shared by the week, timeline and vertical views
	SubdivisionsPerHour int
	DayStartHour        int
	DayEndHour          int
	HideNonWorkingHours bool

	// Timeline row defaults
	RowHeight float64
	RowGap    float64

	LabelHeight float64
}

// Load reads environment variables, applies defaults, and validates the
// result. Validation mirrors the mappers' construction rules so a bad
// environment fails here instead of at first render.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:         getEnv("LATTICE_ENV", "development"),
		MonthColumns:        getEnvInt("LATTICE_MONTH_COLUMNS", 7),
		MaxItemsInCell:      getEnvInt("LATTICE_MAX_ITEMS_IN_CELL", 4),
		SubdivisionsPerHour: getEnvInt("LATTICE_SUBDIVISIONS_PER_HOUR", 4),
		DayStartHour:        getEnvInt("LATTICE_DAY_START_HOUR", 8),
		DayEndHour:          getEnvInt("LATTICE_DAY_END_HOUR", 18),
		HideNonWorkingHours: getEnvBool("LATTICE_HIDE_NON_WORKING_HOURS", false),
		RowHeight:           getEnvFloat("LATTICE_ROW_HEIGHT", 40),
		RowGap:              getEnvFloat("LATTICE_ROW_GAP", 2),
		LabelHeight:         getEnvFloat("LATTICE_LABEL_HEIGHT", 0),
	}

	weekStart, err := parseWeekday(getEnv("LATTICE_WEEK_START", "monday"))
	if err != nil {
		return nil, err
	}
	cfg.WeekStart = weekStart

	if cfg.MonthColumns <= 0 {
		return nil, fmt.Errorf("LATTICE_MONTH_COLUMNS must be positive, got %d", cfg.MonthColumns)
	}
	if cfg.MaxItemsInCell <= 0 {
		return nil, fmt.Errorf("LATTICE_MAX_ITEMS_IN_CELL must be positive, got %d", cfg.MaxItemsInCell)
	}
	if cfg.SubdivisionsPerHour <= 0 {
		return nil, fmt.Errorf("LATTICE_SUBDIVISIONS_PER_HOUR must be positive, got %d", cfg.SubdivisionsPerHour)
	}
	if cfg.DayEndHour <= cfg.DayStartHour {
		return nil, fmt.Errorf("LATTICE_DAY_END_HOUR (%d) must be after LATTICE_DAY_START_HOUR (%d)", cfg.DayEndHour, cfg.DayStartHour)
	}
	if cfg.RowHeight <= 0 {
		return nil, fmt.Errorf("LATTICE_ROW_HEIGHT must be positive, got %v", cfg.RowHeight)
	}

	return cfg, nil
}

// WorkingHours returns the configured day window as a time-axis window.
func (c *Config) WorkingHours() timegrid.Window {
	return timegrid.Window{
		Start: time.Duration(c.DayStartHour) * time.Hour,
		End:   time.Duration(c.DayEndHour) * time.Hour,
	}
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unsupported week start %q", name)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(strings.TrimSpace(val))
		if val == "true" || val == "1" || val == "yes" {
			return true
		}
		if val == "false" || val == "0" || val == "no" {
			return false
		}
	}
	return def
}
