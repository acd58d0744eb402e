package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/adrg/frontmatter"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check a migrated tree against the export",
	Long: `Recomputes the migration plan for the configured years and checks the
output tree against it: every article present, front matter matching the
export, image and thumbnail files on disk. Fails when anything is missing
or diverged. Read-only.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	if len(cfg.Filter.Years) == 0 {
		return fmt.Errorf("no years configured: set filter.years or FF_CONVERTER_FILTER_YEARS")
	}

	export, err := LoadExport(cfg.Source.Input)
	if err != nil {
		return err
	}

	selector := NewSelector(NewNormalizer())
	layout := NewLayout(cfg.Output.Root)
	printer := NewPrinter(cfg.Output.Colors)

	years := append([]int(nil), cfg.Filter.Years...)
	sort.Ints(years)

	table := NewTable([]string{"YEAR", "ARTICLES", "PROBLEMS"})
	total := 0
	for _, year := range years {
		bundle, err := selector.Select(export.Data, year, cfg.Filter.Category)
		if err != nil {
			return err
		}

		problems := verifyYear(layout, bundle)
		for _, problem := range problems {
			printer.Error("%s", problem)
		}
		table.AddRow([]string{strconv.Itoa(year), strconv.Itoa(len(bundle.Articles)), strconv.Itoa(len(problems))})
		total += len(problems)
	}
	table.Render()

	if total > 0 {
		return fmt.Errorf("verification failed: %d problems", total)
	}
	printer.Success("Verified %d years, no problems", len(years))

	return nil
}

// verifyYear checks one year's migrated files against a freshly computed
// plan. Problems are collected, not fatal: the operator wants the full
// list, and verification writes nothing.
func verifyYear(layout Layout, bundle YearBundle) []string {
	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	store := OSFileStore{}

	if !store.Exists(layout.YearIndexPath(bundle.Year)) {
		fail("%s: missing", layout.YearIndexPath(bundle.Year))
	}

	for index, article := range bundle.Articles {
		markdownPath := layout.MarkdownPath(bundle.Year, index)
		data, err := os.ReadFile(markdownPath)
		if err != nil {
			fail("%s: missing", markdownPath)
			continue
		}

		var meta articleFrontMatter
		if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
			fail("%s: unparseable front matter: %v", markdownPath, err)
			continue
		}

		if meta.Title != article.Title {
			fail("%s: title %q, export has %q", markdownPath, meta.Title, article.Title)
		}
		if meta.Date != article.Date {
			fail("%s: date %q, export has %q", markdownPath, meta.Date, article.Date)
		}
		wantThumbnail := ThumbnailRef(bundle.Year, index, len(article.Images) > 0)
		if meta.Thumbnail != wantThumbnail {
			fail("%s: thumbnail %q, want %q", markdownPath, meta.Thumbnail, wantThumbnail)
		}
		if len(meta.Resources) != len(article.Images) {
			fail("%s: %d resources, export has %d images", markdownPath, len(meta.Resources), len(article.Images))
		}

		for imageIndex := range article.Images {
			if imagePath := layout.ImagePath(bundle.Year, index, imageIndex); !store.Exists(imagePath) {
				fail("%s: missing", imagePath)
			}
		}
		if len(article.Images) > 0 {
			if thumbnailPath := layout.ThumbnailPath(bundle.Year, index); !store.Exists(thumbnailPath) {
				fail("%s: missing", thumbnailPath)
			}
		}
	}

	return problems
}
