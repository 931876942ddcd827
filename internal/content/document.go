// Package content loads the page shown behind the console and lays it out
// as terminal lines with named anchors.
package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for content files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported content format")
	// ErrInvalidDocument is returned when a document fails validation.
	ErrInvalidDocument = errors.New("invalid content document")
)

// HeaderLine is one line of the page header. Typing names the animation
// role ("name" or empty for the default speed).
type HeaderLine struct {
	Text   string `yaml:"text" json:"text" toml:"text"`
	Typing string `yaml:"typing,omitempty" json:"typing,omitempty" toml:"typing,omitempty"`
}

// Section is a navigable block of the page. ID is the anchor the console
// scrolls to; Body is markdown.
type Section struct {
	ID    string `yaml:"id" json:"id" toml:"id"`
	Title string `yaml:"title" json:"title" toml:"title"`
	Body  string `yaml:"body" json:"body" toml:"body"`
}

// Document is a whole page.
type Document struct {
	Title    string       `yaml:"title" json:"title" toml:"title"`
	Header   []HeaderLine `yaml:"header" json:"header" toml:"header"`
	Sections []Section    `yaml:"sections" json:"sections" toml:"sections"`
}

// Validate checks that every section has a unique, non-empty id.
func (d Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Sections))
	for i, s := range d.Sections {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return fmt.Errorf("%w: section %d has no id", ErrInvalidDocument, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidDocument, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Section returns the section with the given id.
func (d Document) Section(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
