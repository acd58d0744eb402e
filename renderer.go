package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// articleFrontMatter is the metadata block of one article document. Field
// order here is the order the site generator sees. The verify command
// parses migrated files back into the same struct.
type articleFrontMatter struct {
	Title       string     `yaml:"title"`
	Date        string     `yaml:"date"`
	Description string     `yaml:"description"`
	Thumbnail   string     `yaml:"thumbnail"`
	Resources   []resource `yaml:"resources,omitempty"`
}

// resource declares one page-bundle image under the name the body's
// shortcodes reference it by.
type resource struct {
	Name string `yaml:"name"`
	Src  string `yaml:"src"`
}

type resourceList struct {
	Resources []resource `yaml:"resources"`
}

// RenderArticle builds the markdown document for one article: front matter,
// normalized body, then one img shortcode per image in source order. The
// front matter is assembled line by line so the date keeps its plain
// unquoted form; title and description carry free text and are quoted. Only
// the resources block goes through yaml.Marshal.
func RenderArticle(article Article, year, index int) ([]byte, error) {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", article.Title)
	fmt.Fprintf(&b, "date: %s\n", article.Date)
	fmt.Fprintf(&b, "description: %q\n", article.Title)
	fmt.Fprintf(&b, "thumbnail: %s\n", ThumbnailRef(year, index, len(article.Images) > 0))

	if len(article.Images) > 0 {
		var resources resourceList
		for i := range article.Images {
			resources.Resources = append(resources.Resources, resource{
				Name: resourceName(i),
				Src:  ImageRef(year, index, i),
			})
		}
		data, err := yaml.Marshal(resources)
		if err != nil {
			return nil, fmt.Errorf("marshaling resources: %w", err)
		}
		b.Write(data)
	}

	b.WriteString("---\n")
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(article.Body, "\n"))
	b.WriteString("\n")
	for i := range article.Images {
		if i == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "{{< img name=%q >}}\n", resourceName(i))
	}

	return []byte(b.String()), nil
}

// RenderYearIndex builds content/{year}/_index.md: a flat section page
// titled after the year.
func RenderYearIndex(year int) []byte {
	return []byte(fmt.Sprintf("---\ntitle: Year %d\nnested: false\n---\n", year))
}

func resourceName(imageIndex int) string {
	return "img-" + imageIndexName(imageIndex)
}
