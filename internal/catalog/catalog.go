// Package catalog loads the restaurant menu, the single source of truth for
// item names, prices and dietary tags.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

type Catalog struct {
	Categories []models.MenuCategory `yaml:"categories"`
	Items      []models.MenuItem     `yaml:"items"`

	byID map[string]int
}

// Load reads the menu at path, or the built-in menu when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultMenu)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	return Parse(data)
}

func Default() *Catalog {
	c, err := Parse(defaultMenu)
	if err != nil {
		panic(fmt.Sprintf("built-in menu is invalid: %v", err))
	}

	return c
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	if err := c.index(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) index() error {
	if len(c.Categories) == 0 {
		return errors.New("menu has no categories")
	}

	categories := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return errors.New("menu category without an id")
		}
		if _, dup := categories[cat.ID]; dup {
			return fmt.Errorf("duplicate menu category %q", cat.ID)
		}
		categories[cat.ID] = struct{}{}
	}

	c.byID = make(map[string]int, len(c.Items))
	names := make(map[string]struct{}, len(c.Items))

	for i, item := range c.Items {
		switch {
		case item.ID == "" || item.Name == "":
			return fmt.Errorf("menu item %d needs an id and a name", i)
		case item.Price.IsNegative():
			return fmt.Errorf("menu item %q has a negative price", item.ID)
		}

		if _, ok := categories[item.CategoryID]; !ok {
			return fmt.Errorf("menu item %q has unknown category %q", item.ID, item.CategoryID)
		}
		if _, dup := c.byID[item.ID]; dup {
			return fmt.Errorf("duplicate menu item %q", item.ID)
		}
		// cart lines are keyed by name
		if _, dup := names[item.Name]; dup {
			return fmt.Errorf("duplicate menu item name %q", item.Name)
		}

		c.byID[item.ID] = i
		names[item.Name] = struct{}{}
	}

	return nil
}

func (c *Catalog) Item(id string) (models.MenuItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.MenuItem{}, false
	}

	return c.Items[i], true
}

func (c *Catalog) ItemByName(name string) (models.MenuItem, bool) {
	for _, item := range c.Items {
		if item.Name == name {
			return item, true
		}
	}

	return models.MenuItem{}, false
}
