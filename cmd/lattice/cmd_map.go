/*
Copyright (C) 2026 Lattice UI

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/latticeui/lattice/internal/models"
)

var mapFixturePath string

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map a fixture's items into rectangles",
	Long: `Run the selected position mapper over a YAML fixture and print the
resulting rectangles as JSON, one entry per (date, item) pair.

Example fixture:

  view: timeline
  container: {width: 1000, height: 600}
  items:
    - {id: 1, start: "2024-01-01 09:00", end: "2024-01-01 10:00", label: standup}
    - {id: 2, start: "2024-01-01 09:30", end: "2024-01-01 10:30", label: review}
`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVarP(&mapFixturePath, "fixture", "f", "", "Path to the YAML fixture (required)")
	_ = mapCmd.MarkFlagRequired("fixture")
	rootCmd.AddCommand(mapCmd)
}

// mappedEntry is one line of map output: the rectangles one item produced on
// one date.
type mappedEntry struct {
	Date   string                  `json:"date"`
	ItemID int64                   `json:"item_id"`
	Rects  []models.MappedItemRect `json:"rects"`
}

func runMap(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	f, err := loadFixture(mapFixturePath)
	if err != nil {
		return err
	}
	m, err := f.buildMapper(cfg)
	if err != nil {
		return err
	}

	slots := f.slots(cfg)
	container := f.container()
	items := f.items()

	var entries []mappedEntry
	for _, date := range f.dates() {
		for _, item := range items {
			rects := m.Map(slots, item, container, date)
			if len(rects) == 0 {
				continue
			}
			entries = append(entries, mappedEntry{
				Date:   date.Format("2006-01-02"),
				ItemID: item.ID,
				Rects:  rects,
			})
		}
	}

	logger.Debug().Str("view", f.View).Int("entries", len(entries)).Msg("fixture mapped")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
