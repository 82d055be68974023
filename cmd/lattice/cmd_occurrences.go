/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/latticeui/lattice/internal/models"
	"github.com/latticeui/lattice/internal/occurrence"
)

var (
	occRule     string
	occStart    string
	occDuration time.Duration
	occFrom     string
	occTo       string
	occSeriesID int64
)

var occurrencesCmd = &cobra.Command{
	Use:   "occurrences",
	Short: "Expand a recurrence rule into concrete items",
	Long: `Materialize a recurring series over a window and print the concrete
occurrences as JSON.

Example:

  lattice occurrences --rule "FREQ=WEEKLY;BYDAY=MO,WE" \
    --start "2024-01-01 09:00" --duration 1h \
    --from 2024-01-01 --to 2024-02-01
`,
	RunE: runOccurrences,
}

func init() {
	occurrencesCmd.Flags().StringVar(&occRule, "rule", "", "RFC 5545 recurrence rule (required)")
	occurrencesCmd.Flags().StringVar(&occStart, "start", "", "Series start instant (required)")
	occurrencesCmd.Flags().DurationVar(&occDuration, "duration", time.Hour, "Occurrence duration")
	occurrencesCmd.Flags().StringVar(&occFrom, "from", "", "Window start date (required)")
	occurrencesCmd.Flags().StringVar(&occTo, "to", "", "Window end date (required)")
	occurrencesCmd.Flags().Int64Var(&occSeriesID, "series-id", 1, "Series id occurrence ids derive from")
	_ = occurrencesCmd.MarkFlagRequired("rule")
	_ = occurrencesCmd.MarkFlagRequired("start")
	_ = occurrencesCmd.MarkFlagRequired("from")
	_ = occurrencesCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(occurrencesCmd)
}

type occurrenceEntry struct {
	ID    int64  `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func runOccurrences(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	start, err := parseNaiveTime(occStart)
	if err != nil {
		return fmt.Errorf("parse --start: %w", err)
	}
	from, err := parseNaiveTime(occFrom)
	if err != nil {
		return fmt.Errorf("parse --from: %w", err)
	}
	to, err := parseNaiveTime(occTo)
	if err != nil {
		return fmt.Errorf("parse --to: %w", err)
	}

	items, err := occurrence.Expand(occurrence.Series{
		Base: models.SchedulerItem{
			ID:    occSeriesID,
			Start: start,
			End:   start.Add(occDuration),
		},
		Rule: occRule,
	}, from, to)
	if err != nil {
		return err
	}

	logger.Debug().Int("count", len(items)).Str("rule", occRule).Msg("series expanded")

	entries := make([]occurrenceEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, occurrenceEntry{
			ID:    it.ID,
			Start: it.Start.Format("2006-01-02 15:04"),
			End:   it.End.Format("2006-01-02 15:04"),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func parseNaiveTime(raw string) (time.Time, error) {
	for _, layout := range fixtureTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable time %q", raw)
}
