package main

import (
	"fmt"
)

// Writer orchestrates the filesystem effects for one year bundle. It holds
// no state between runs: every run recomputes the full plan from the export
// and skips whatever already exists.
type Writer struct {
	layout            Layout
	store             FileStore
	assets            *AssetCopier
	printer           *Printer
	skipExistingYears bool
}

// NewWriter creates a Writer targeting the given output root.
func NewWriter(outputRoot string, store FileStore, assets *AssetCopier, printer *Printer, skipExistingYears bool) *Writer {
	return &Writer{
		layout:            NewLayout(outputRoot),
		store:             store,
		assets:            assets,
		printer:           printer,
		skipExistingYears: skipExistingYears,
	}
}

// MigrateYear writes one year's articles, images, thumbnails, and year
// index. An article whose index.md already exists is skipped, never
// overwritten, so manual edits survive reruns; image and thumbnail copies
// happen exactly when their article was written in this run. Any directory,
// write, or copy failure aborts with files written so far left in place.
func (w *Writer) MigrateYear(bundle YearBundle) (YearResult, error) {
	result := YearResult{Year: bundle.Year}

	contentDir := w.layout.YearContentDir(bundle.Year)
	if w.skipExistingYears && w.store.Exists(contentDir) {
		w.printer.Info("Skipping year %d: %s exists", bundle.Year, contentDir)
		result.SkippedYear = true
		return result, nil
	}

	if err := w.store.MkdirAll(contentDir); err != nil {
		return result, &FileSystemError{Op: "creating year directory", Path: contentDir, Err: err}
	}
	thumbnailDir := w.layout.YearThumbnailDir(bundle.Year)
	if err := w.store.MkdirAll(thumbnailDir); err != nil {
		return result, &FileSystemError{Op: "creating thumbnail directory", Path: thumbnailDir, Err: err}
	}

	for index, article := range bundle.Articles {
		written, err := w.writeArticle(bundle.Year, index, article)
		if err != nil {
			return result, err
		}
		if !written {
			result.Skipped++
			continue
		}
		result.Written++
		result.Images += len(article.Images)
		if len(article.Images) > 0 {
			result.Thumbnails++
		}
	}

	if err := w.writeYearIndex(bundle.Year); err != nil {
		return result, err
	}

	return result, nil
}

// writeArticle writes one article and its assets. Returns false when the
// article's index.md already exists and nothing was done.
func (w *Writer) writeArticle(year, index int, article Article) (bool, error) {
	markdownPath := w.layout.MarkdownPath(year, index)
	if w.store.Exists(markdownPath) {
		w.printer.Info("Skipping %s: file exists", markdownPath)
		return false, nil
	}

	articleDir := w.layout.ArticleDir(year, index)
	if err := w.store.MkdirAll(articleDir); err != nil {
		return false, &FileSystemError{Op: "creating article directory", Path: articleDir, Err: err}
	}
	if len(article.Images) > 0 {
		imageDir := w.layout.ImageDir(year, index)
		if err := w.store.MkdirAll(imageDir); err != nil {
			return false, &FileSystemError{Op: "creating image directory", Path: imageDir, Err: err}
		}
	}

	document, err := RenderArticle(article, year, index)
	if err != nil {
		return false, fmt.Errorf("rendering article %d/%s: %w", year, articleIndex(index), err)
	}
	if err := w.store.WriteFile(markdownPath, document); err != nil {
		return false, &FileSystemError{Op: "writing article", Path: markdownPath, Err: err}
	}
	w.printer.Success("Wrote %s", markdownPath)

	for imageIndex, ref := range article.Images {
		imagePath := w.layout.ImagePath(year, index, imageIndex)
		if err := w.assets.Copy(ref, imagePath, w.store); err != nil {
			return false, &FileSystemError{Op: "copying image", Path: imagePath, Err: err}
		}
	}

	if len(article.Images) > 0 {
		thumbnailPath := w.layout.ThumbnailPath(year, index)
		if err := w.assets.Copy(article.Images[0], thumbnailPath, w.store); err != nil {
			return false, &FileSystemError{Op: "copying thumbnail", Path: thumbnailPath, Err: err}
		}
	}

	return true, nil
}

func (w *Writer) writeYearIndex(year int) error {
	indexPath := w.layout.YearIndexPath(year)
	if w.store.Exists(indexPath) {
		w.printer.Info("Skipping %s: file exists", indexPath)
		return nil
	}

	if err := w.store.WriteFile(indexPath, RenderYearIndex(year)); err != nil {
		return &FileSystemError{Op: "writing year index", Path: indexPath, Err: err}
	}
	w.printer.Success("Wrote %s", indexPath)

	return nil
}
