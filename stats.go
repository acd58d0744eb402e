package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-year article and image counts",
	Long: `Counts the export's articles and images per year for the configured
category. Read-only: nothing is written.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	export, err := LoadExport(cfg.Source.Input)
	if err != nil {
		return err
	}

	selector := NewSelector(NewNormalizer())
	summaries, err := selector.Summarize(export.Data, cfg.Filter.Category)
	if err != nil {
		return err
	}

	printer := NewPrinter(cfg.Output.Colors)
	printer.Header(fmt.Sprintf("Category %d in %s", cfg.Filter.Category, cfg.Source.Input))

	table := NewTable([]string{"YEAR", "ARTICLES", "IMAGES"})
	var totalArticles, totalImages int
	for _, summary := range summaries {
		table.AddRow([]string{
			strconv.Itoa(summary.Year),
			strconv.Itoa(summary.Articles),
			strconv.Itoa(summary.Images),
		})
		totalArticles += summary.Articles
		totalImages += summary.Images
	}
	table.AddRow([]string{"TOTAL", strconv.Itoa(totalArticles), strconv.Itoa(totalImages)})
	table.Render()

	return nil
}
