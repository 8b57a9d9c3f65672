package gallery

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/venuesite/pkg/sanitizer"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is an ordered, validated set of gallery items.
type Catalog struct {
	Title string
	Items []Item

	index map[string]int
}

type document struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

var cleanText = sanitizer.Compose(sanitizer.StripHTML, sanitizer.SingleLine)

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	c := &Catalog{
		Title: cleanText(doc.Title),
		Items: make([]Item, 0, len(doc.Items)),
		index: make(map[string]int, len(doc.Items)),
	}

	for n, raw := range doc.Items {
		item, err := normalizeItem(raw)
		if err != nil {
			return nil, fmt.Errorf("item #%d: %w", n+1, err)
		}
		if _, exists := c.index[item.ID]; exists {
			return nil, fmt.Errorf("item #%d %q: %w", n+1, item.ID, ErrDuplicateID)
		}
		c.index[item.ID] = len(c.Items)
		c.Items = append(c.Items, item)
	}

	return c, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data)
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("gallery: bundled catalog is invalid: %v", err))
	}
	return c
}

// Find returns the item with the given id.
func (c *Catalog) Find(id string) (Item, error) {
	if c == nil {
		return Item{}, ErrItemNotFound
	}
	i, ok := c.index[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return c.Items[i], nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

func normalizeItem(raw Item) (Item, error) {
	item := Item{
		Thumb:   sanitizer.Trim(raw.Thumb),
		Full:    sanitizer.Trim(raw.Full),
		Alt:     cleanText(raw.Alt),
		Caption: cleanText(raw.Caption),
	}

	if item.Full == "" {
		return Item{}, ErrMissingFullImage
	}
	if item.Thumb == "" {
		item.Thumb = item.Full
	}

	id := raw.ID
	if sanitizer.Trim(id) == "" {
		id = item.Alt
	}
	item.ID = makeID(id)
	if item.ID == "" {
		return Item{}, ErrMissingID
	}

	return item, nil
}
