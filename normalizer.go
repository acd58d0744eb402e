package main

import (
	"regexp"
	"strings"
)

// Normalizer turns a raw record's introtext into plain structured text and
// collects its image references. All patterns are compiled once in
// NewNormalizer and never mutated, so a single Normalizer can be shared.
type Normalizer struct {
	tags      *regexp.Regexp
	images    *regexp.Regexp
	sentences *regexp.Regexp
	leading   *regexp.Regexp
}

// NewNormalizer compiles the normalization patterns.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		// Single-level tags only: nothing between the brackets may be
		// another bracket. Nested or unbalanced markup stays untouched.
		tags:   regexp.MustCompile(`<[^<>]+>`),
		images: regexp.MustCompile(`<img src="([^"]+)"`),
		// A sentence ends at a period followed by whitespace, unless the
		// period sits after a digit ("3.14 is pi" stays on one line).
		sentences: regexp.MustCompile(`([^0-9])\.\s+`),
		leading:   regexp.MustCompile(`^\n+`),
	}
}

// Normalize builds an Article from a record that passed selection. A record
// reaching this point without title, introtext, or created is a schema
// violation and aborts the run.
func (n *Normalizer) Normalize(record RawRecord) (Article, error) {
	title, ok := record.StringField("title")
	if !ok {
		return Article{}, &SchemaViolationError{Field: "title", Reason: "missing on selected record"}
	}
	introtext, ok := record.StringField("introtext")
	if !ok {
		return Article{}, &SchemaViolationError{Field: "introtext", Reason: "missing on selected record"}
	}
	created, ok := record.StringField("created")
	if !ok {
		return Article{}, &SchemaViolationError{Field: "created", Reason: "missing on selected record"}
	}

	return Article{
		Title:  title,
		Date:   created,
		Body:   n.CleanText(introtext),
		Images: n.ExtractImages(introtext),
	}, nil
}

// CleanText applies the normalization rules in order: strip tags, drop
// non-breaking spaces, normalize CRLF to LF, break after sentence
// terminators, and trim leading newlines.
func (n *Normalizer) CleanText(introtext string) string {
	text := n.tags.ReplaceAllString(introtext, "")
	text = strings.ReplaceAll(text, "\u00a0", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = n.sentences.ReplaceAllString(text, "${1}.\n")
	text = n.leading.ReplaceAllString(text, "")
	return text
}

// ExtractImages collects img src values from the original introtext, before
// any stripping, in order of appearance. Duplicates are kept: the renamed
// output files are index-based, so each occurrence gets its own copy.
func (n *Normalizer) ExtractImages(introtext string) []string {
	var images []string
	for _, match := range n.images.FindAllStringSubmatch(introtext, -1) {
		images = append(images, match[1])
	}
	return images
}
