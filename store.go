package main

import (
	"fmt"
	"io"
	"os"
)

// FileStore is the filesystem surface the writer works through. The real
// store does plain OS calls; the dry-run store logs mutations instead of
// performing them.
type FileStore interface {
	MkdirAll(path string) error
	Exists(path string) bool
	WriteFile(path string, data []byte) error
	CopyFile(src, dst string) error
}

// OSFileStore writes to the real filesystem.
type OSFileStore struct{}

func (OSFileStore) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (OSFileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func (OSFileStore) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}

	return out.Close()
}

// DryRunStore answers existence checks from the wrapped store but only
// announces mutations, so a dry run reports the same skips a real run
// would.
type DryRunStore struct {
	store   FileStore
	printer *Printer
}

// NewDryRunStore wraps a store for dry-run mode.
func NewDryRunStore(store FileStore, printer *Printer) *DryRunStore {
	return &DryRunStore{store: store, printer: printer}
}

func (d *DryRunStore) MkdirAll(path string) error {
	d.printer.Info("dry-run: mkdir %s", path)
	return nil
}

func (d *DryRunStore) Exists(path string) bool {
	return d.store.Exists(path)
}

func (d *DryRunStore) WriteFile(path string, data []byte) error {
	d.printer.Info("dry-run: write %s (%d bytes)", path, len(data))
	return nil
}

func (d *DryRunStore) CopyFile(src, dst string) error {
	d.printer.Info("dry-run: copy %s -> %s", src, dst)
	return nil
}
