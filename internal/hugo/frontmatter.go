package hugo

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// FrontMatter is the ordered metadata header of a rendered document. yaml.v3
// quotes structurally significant characters (colons, brackets, leading
// dashes) and emits multi-value fields as block sequences, so values survive a
// parse round trip unescaped.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	LastMod     string   `yaml:"lastmod"`
	Draft       bool     `yaml:"draft"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Categories  []string `yaml:"categories,omitempty"`
	Author      string   `yaml:"author,omitempty"`
	Image       string   `yaml:"image,omitempty"`
}

// Marshal renders the header block including delimiters.
func (fm *FrontMatter) Marshal() (string, error) {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}
	return frontMatterDelimiter + "\n" + string(data) + frontMatterDelimiter + "\n", nil
}

// ParseFrontMatter extracts and decodes the header block of a rendered
// document, returning the remaining body as well.
func ParseFrontMatter(doc string) (*FrontMatter, string, error) {
	rest, found := strings.CutPrefix(doc, frontMatterDelimiter+"\n")
	if !found {
		return nil, "", fmt.Errorf("document has no front matter")
	}

	header, body, found := strings.Cut(rest, "\n"+frontMatterDelimiter+"\n")
	if !found {
		return nil, "", fmt.Errorf("front matter is not terminated")
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(header+"\n"), &fm); err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}

	return &fm, body, nil
}
