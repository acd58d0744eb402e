package main

import (
	"fmt"
	"path/filepath"
)

// DefaultThumbnailRef is the site-provided placeholder referenced by
// articles without images. The migration never writes this file.
const DefaultThumbnailRef = "/thumbnail/default.jpg"

// Layout derives every output path from (year, article index, image index).
// Indices come from the sorted bundle, so an unchanged export reproduces
// identical paths on every run.
type Layout struct {
	root string
}

// NewLayout creates a Layout rooted at the output directory.
func NewLayout(root string) Layout {
	return Layout{root: root}
}

// YearContentDir returns content/{year}. Its existence is the coarse
// already-migrated marker for the year fast path.
func (l Layout) YearContentDir(year int) string {
	return filepath.Join(l.root, "content", fmt.Sprint(year))
}

// YearIndexPath returns content/{year}/_index.md.
func (l Layout) YearIndexPath(year int) string {
	return filepath.Join(l.YearContentDir(year), "_index.md")
}

// YearThumbnailDir returns thumbnail/{year}.
func (l Layout) YearThumbnailDir(year int) string {
	return filepath.Join(l.root, "thumbnail", fmt.Sprint(year))
}

// ArticleDir returns content/{year}/{0000}.
func (l Layout) ArticleDir(year, index int) string {
	return filepath.Join(l.YearContentDir(year), articleIndex(index))
}

// MarkdownPath returns content/{year}/{0000}/index.md.
func (l Layout) MarkdownPath(year, index int) string {
	return filepath.Join(l.ArticleDir(year, index), "index.md")
}

// ImageDir returns content/{year}/{0000}/img.
func (l Layout) ImageDir(year, index int) string {
	return filepath.Join(l.ArticleDir(year, index), "img")
}

// ImagePath returns content/{year}/{0000}/img/{year}-{0000}-{00}.jpg.
func (l Layout) ImagePath(year, index, imageIndex int) string {
	return filepath.Join(l.ImageDir(year, index), ImageFilename(year, index, imageIndex))
}

// ThumbnailPath returns thumbnail/{year}/{0000}.jpg, the copy target for an
// article's first image.
func (l Layout) ThumbnailPath(year, index int) string {
	return filepath.Join(l.YearThumbnailDir(year), articleIndex(index)+".jpg")
}

// ImageFilename returns the renamed image name. The extension is fixed to
// .jpg regardless of the source name.
func ImageFilename(year, index, imageIndex int) string {
	return fmt.Sprintf("%d-%s-%s.jpg", year, articleIndex(index), imageIndexName(imageIndex))
}

// ImageRef returns the front-matter resource src, relative to the article
// directory. Always forward slashes: these paths face the site, not the
// filesystem.
func ImageRef(year, index, imageIndex int) string {
	return "img/" + ImageFilename(year, index, imageIndex)
}

// ThumbnailRef returns the front-matter thumbnail reference: the article's
// copied thumbnail, or the placeholder when it has no images.
func ThumbnailRef(year, index int, hasImages bool) string {
	if !hasImages {
		return DefaultThumbnailRef
	}
	return fmt.Sprintf("/thumbnail/%d/%s.jpg", year, articleIndex(index))
}

func articleIndex(index int) string {
	return fmt.Sprintf("%04d", index)
}

func imageIndexName(imageIndex int) string {
	return fmt.Sprintf("%02d", imageIndex)
}
