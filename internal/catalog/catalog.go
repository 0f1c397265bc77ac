// Package catalog loads the ordered list of display items a showmore view
// pages over.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/Alp4ka/showmore/tui"
)

var ErrEmptyTitle = errors.New("catalog entry has an empty title")

type Entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Catalog struct {
	Items []Entry `yaml:"items"`
}

// Parse decodes a YAML catalog document. An empty document yields an empty
// catalog.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog

	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i, e := range c.Items {
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrEmptyTitle)
		}
	}

	return &c, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.Items)
}

// Cards converts the entries to TUI cards, preserving order.
func (c *Catalog) Cards() []*tui.Card {
	if c == nil {
		return nil
	}

	return lo.Map(c.Items, func(e Entry, _ int) *tui.Card {
		return tui.NewCard(e.Title, e.Description)
	})
}
