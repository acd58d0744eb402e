package main

import (
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show one article the way migration will write it",
	Long: `Selects a single article by year and position and prints its metadata,
image plan, and normalized body without writing anything.

With --rich the original introtext is additionally rendered as markdown,
for a side-by-side look at what the tag stripping discards.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Int("year", 0, "migration year of the article")
	inspectCmd.Flags().Int("index", 0, "position of the article within the sorted year")
	inspectCmd.Flags().Bool("rich", false, "also render the original introtext as markdown")
	_ = inspectCmd.MarkFlagRequired("year")
}

func runInspect(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	index, _ := cmd.Flags().GetInt("index")
	rich, _ := cmd.Flags().GetBool("rich")

	export, err := LoadExport(cfg.Source.Input)
	if err != nil {
		return err
	}

	normalizer := NewNormalizer()
	selector := NewSelector(normalizer)
	records, err := selector.SelectRecords(export.Data, year, cfg.Filter.Category)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("index %d out of range: year %d has %d articles", index, year, len(records))
	}

	article, err := normalizer.Normalize(records[index])
	if err != nil {
		return err
	}

	layout := NewLayout(cfg.Output.Root)
	printer := NewPrinter(cfg.Output.Colors)

	printer.Header(fmt.Sprintf("Article %s of year %d", articleIndex(index), year))
	printer.Print("%s %s", printer.Bold("Title:    "), article.Title)
	printer.Print("%s %s", printer.Bold("Date:     "), article.Date)
	printer.Print("%s %s", printer.Bold("Markdown: "), layout.MarkdownPath(year, index))
	printer.Print("%s %s", printer.Bold("Thumbnail:"), ThumbnailRef(year, index, len(article.Images) > 0))

	if len(article.Images) > 0 {
		printer.Header("Images")
		table := NewTable([]string{"ORDER", "SOURCE", "RENAMED"})
		for i, ref := range article.Images {
			table.AddRow([]string{imageIndexName(i), ref, ImageFilename(year, index, i)})
		}
		table.Render()
	}

	printer.Header("Body")
	printer.Print("%s", article.Body)

	if rich {
		introtext, _ := records[index].StringField("introtext")
		converter := md.NewConverter("", true, nil)
		rendered, err := converter.ConvertString(introtext)
		if err != nil {
			return fmt.Errorf("converting introtext to markdown: %w", err)
		}
		printer.Header("Rich preview of original markup")
		printer.Print("%s", rendered)
	}

	return nil
}
