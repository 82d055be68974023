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

	"github.com/latticeui/lattice/internal/itemindex"
	"github.com/latticeui/lattice/internal/mapper"
)

var heightFixturePath string

var heightCmd = &cobra.Command{
	Use:   "height",
	Short: "Print the timeline container height required per day",
	Long:  "Compute the timeline mapper's required container height for every date a fixture's items touch, so a renderer can size containers before drawing.",
	RunE:  runHeight,
}

func init() {
	heightCmd.Flags().StringVarP(&heightFixturePath, "fixture", "f", "", "Path to the YAML fixture (required)")
	_ = heightCmd.MarkFlagRequired("fixture")
	rootCmd.AddCommand(heightCmd)
}

type heightEntry struct {
	Date   string  `json:"date"`
	Height float64 `json:"height"`
}

func runHeight(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	f, err := loadFixture(heightFixturePath)
	if err != nil {
		return err
	}

	t, err := mapper.NewTimeline(itemindex.New(f.items()), mapper.TimelineConfig{
		SubdivisionsPerHour: cfg.SubdivisionsPerHour,
		WorkingHours:        cfg.WorkingHours(),
		RowHeight:           cfg.RowHeight,
		Gap:                 cfg.RowGap,
		Layout:              f.measureLayout(),
	}, logger)
	if err != nil {
		return err
	}

	var entries []heightEntry
	for _, date := range f.dates() {
		entries = append(entries, heightEntry{
			Date:   date.Format("2006-01-02"),
			Height: t.RequiredHeight(date),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
