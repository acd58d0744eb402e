package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	cfg     *Config
	logger  *slog.Logger
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "ff-website-converter",
	Short: "Migrate legacy CMS articles into a static-site content tree",
	Long: `Converts a legacy CMS JSON export into per-article markdown files with
front matter, renamed image copies, and generated thumbnails.

Reruns are safe: a year or article that already exists in the output tree
is skipped, never overwritten, so manual edits survive.

Example usage:
  ff-website-converter --years 2021 --assets /old-site/images
  ff-website-converter stats
  ff-website-converter inspect --year 2021 --index 3
  ff-website-converter verify`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .ff-website-converter.yaml)")
	rootCmd.PersistentFlags().String("input", "input.json", "export document path or URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().IntSlice("years", nil, "years to migrate")
	rootCmd.Flags().Int("category", 5, "category id filter")
	rootCmd.Flags().String("output", ".", "destination root for content/ and thumbnail/")
	rootCmd.Flags().String("assets", "", "legacy asset root images are copied from")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log writes without performing them")
	rootCmd.Flags().Bool("skip-existing-years", false, "skip a year whose content directory already exists")

	// Bind flags to viper
	_ = viper.BindPFlag("source.input", rootCmd.PersistentFlags().Lookup("input"))
	_ = viper.BindPFlag("source.assets", rootCmd.Flags().Lookup("assets"))
	_ = viper.BindPFlag("filter.years", rootCmd.Flags().Lookup("years"))
	_ = viper.BindPFlag("filter.category", rootCmd.Flags().Lookup("category"))
	_ = viper.BindPFlag("output.root", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.skip_existing_years", rootCmd.Flags().Lookup("skip-existing-years"))
}

// initConfig loads configuration and sets up the logger for every command.
func initConfig() error {
	var err error
	cfg, err = LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := slogLevel(cfg.Logging.Level)
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	logger.Debug("configuration loaded",
		"input", cfg.Source.Input,
		"years", cfg.Filter.Years,
		"category", cfg.Filter.Category,
		"output", cfg.Output.Root,
	)

	return nil
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runMigrate migrates every configured year, ascending.
func runMigrate(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateForMigration(); err != nil {
		return err
	}

	printer := NewPrinter(cfg.Output.Colors)

	export, err := LoadExport(cfg.Source.Input)
	if err != nil {
		return err
	}
	logger.Debug("export loaded", "source", cfg.Source.Input, "records", len(export.Data))

	selector := NewSelector(NewNormalizer())

	var store FileStore = OSFileStore{}
	if dryRun {
		printer.Info("Dry run: no files will be written")
		store = NewDryRunStore(store, printer)
	}
	writer := NewWriter(cfg.Output.Root, store, NewAssetCopier(cfg.Source.Assets), printer, cfg.Output.SkipExistingYears)

	years := append([]int(nil), cfg.Filter.Years...)
	sort.Ints(years)

	for _, year := range years {
		bundle, err := selector.Select(export.Data, year, cfg.Filter.Category)
		if err != nil {
			return err
		}

		printer.Header(fmt.Sprintf("Year %d: %d articles", year, len(bundle.Articles)))
		result, err := writer.MigrateYear(bundle)
		if err != nil {
			return err
		}
		if !result.SkippedYear {
			printer.Info("Year %d done: %d written, %d skipped, %d images, %d thumbnails",
				result.Year, result.Written, result.Skipped, result.Images, result.Thumbnails)
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
