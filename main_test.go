package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commandExport = `{
	"data": [
		{"created": "2021-02-03 04:05:06", "catid": "5", "title": "Quiet day", "introtext": "<p>Nothing happened.</p>"},
		{"created": "2021-11-30 08:15:00", "catid": "5", "title": "Busy day", "introtext": "<p>Everything happened.</p><img src=\"images/a.jpg\" alt=\"a\">"},
		{"created": "2020-01-01 00:00:00", "catid": "5", "title": "Old news", "introtext": "x"}
	]
}`

// writeCommandFixtures prepares an export file and a legacy asset root and
// points the process environment at them.
func writeCommandFixtures(t *testing.T) (root string) {
	t.Helper()

	root = t.TempDir()
	assets := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "images"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "images", "a.jpg"), []byte("AAA"), 0644))

	input := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(input, []byte(commandExport), 0644))

	t.Setenv("FF_CONVERTER_SOURCE_INPUT", input)
	t.Setenv("FF_CONVERTER_SOURCE_ASSETS", assets)
	t.Setenv("FF_CONVERTER_OUTPUT_ROOT", root)
	return root
}

func TestMigrateAndVerifyCommands(t *testing.T) {
	resetViper(t)
	root := writeCommandFixtures(t)
	t.Setenv("FF_CONVERTER_FILTER_YEARS", "2021")

	rootCmd.SetArgs([]string{})
	require.NoError(t, rootCmd.Execute())

	require.FileExists(t, filepath.Join(root, "content", "2021", "_index.md"))
	require.FileExists(t, filepath.Join(root, "content", "2021", "0000", "index.md"))
	require.FileExists(t, filepath.Join(root, "content", "2021", "0001", "index.md"))
	require.FileExists(t, filepath.Join(root, "content", "2021", "0001", "img", "2021-0001-00.jpg"))
	require.FileExists(t, filepath.Join(root, "thumbnail", "2021", "0001.jpg"))
	// 2020 was not configured.
	assert.NoDirExists(t, filepath.Join(root, "content", "2020"))

	rootCmd.SetArgs([]string{"verify"})
	require.NoError(t, rootCmd.Execute())

	require.NoError(t, os.Remove(filepath.Join(root, "content", "2021", "0001", "img", "2021-0001-00.jpg")))

	rootCmd.SetArgs([]string{"verify"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification failed")
}

func TestMigrateCommandMalformedRecordWritesNothing(t *testing.T) {
	resetViper(t)

	root := t.TempDir()
	badExport := `{"data": [
		{"created": "2021-02-03 04:05:06", "catid": "5", "title": "Good", "introtext": "x"},
		{"created": "not-a-date", "catid": "5", "title": "Bad", "introtext": "x"}
	]}`
	input := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(input, []byte(badExport), 0644))

	t.Setenv("FF_CONVERTER_SOURCE_INPUT", input)
	t.Setenv("FF_CONVERTER_SOURCE_ASSETS", t.TempDir())
	t.Setenv("FF_CONVERTER_FILTER_YEARS", "2021")
	t.Setenv("FF_CONVERTER_OUTPUT_ROOT", root)

	rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violation")
	// The malformed record aborts the run before anything lands on disk.
	assert.NoDirExists(t, filepath.Join(root, "content"))
}

func TestMigrateCommandRequiresYears(t *testing.T) {
	resetViper(t)
	writeCommandFixtures(t)

	rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no years configured")
}

func TestStatsCommand(t *testing.T) {
	resetViper(t)
	writeCommandFixtures(t)

	rootCmd.SetArgs([]string{"stats"})
	require.NoError(t, rootCmd.Execute())
}

func TestInspectCommand(t *testing.T) {
	resetViper(t)
	writeCommandFixtures(t)

	rootCmd.SetArgs([]string{"inspect", "--year", "2021", "--index", "1"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"inspect", "--year", "2021", "--index", "1", "--rich"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"inspect", "--year", "2021", "--index", "9"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, slogLevel(tt.level))
		})
	}
}
