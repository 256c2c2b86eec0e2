package service

import (
	"context"
	"math"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/catalog"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/shopspring/decimal"
)

const allCategories = "all"

type MenuService interface {
	GetMenu(ctx context.Context, filter models.MenuFilter) (*models.MenuResponse, error)
	GetItem(ctx context.Context, id string) (*models.MenuItem, error)
	FindByName(ctx context.Context, name string) (*models.MenuItem, error)
}

type menuService struct {
	catalog *catalog.Catalog
}

func NewMenuService(c *catalog.Catalog) MenuService {
	return &menuService{catalog: c}
}

// GetMenu implements MenuService. Sections follow menu order and empty ones are left out.
func (s *menuService) GetMenu(ctx context.Context, filter models.MenuFilter) (*models.MenuResponse, error) {

	if !finite(filter.MinPrice) {
		return nil, errors.AddValidationError("minPrice", "Must be a number")
	}
	if !finite(filter.MaxPrice) {
		return nil, errors.AddValidationError("maxPrice", "Must be a number")
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, errors.AddValidationError("maxPrice", "Must be at least the minimum price")
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	category := strings.ToLower(strings.TrimSpace(filter.Category))

	sections := make([]models.MenuSection, 0, len(s.catalog.Categories))
	total := 0

	for _, cat := range s.catalog.Categories {
		if category != "" && category != allCategories && category != cat.ID {
			continue
		}

		var items []models.MenuItem
		for _, item := range s.catalog.Items {
			if item.CategoryID == cat.ID && matches(item, filter, search) {
				items = append(items, item)
			}
		}

		if len(items) == 0 {
			continue
		}

		sections = append(sections, models.MenuSection{Category: cat, Items: items})
		total += len(items)
	}

	return &models.MenuResponse{
		Categories: s.catalog.Categories,
		Sections:   sections,
		Total:      total,
	}, nil
}

// finite guards decimal.NewFromFloat, which panics on NaN and infinities.
func finite(v *float64) bool {
	return v == nil || !(math.IsInf(*v, 0) || math.IsNaN(*v))
}

func matches(item models.MenuItem, filter models.MenuFilter, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(item.Name), search) &&
		!strings.Contains(strings.ToLower(item.Description), search) {
		return false
	}

	if filter.MinPrice != nil && item.Price.LessThan(decimal.NewFromFloat(*filter.MinPrice)) {
		return false
	}

	if filter.MaxPrice != nil && item.Price.GreaterThan(decimal.NewFromFloat(*filter.MaxPrice)) {
		return false
	}

	for _, tag := range filter.Dietary {
		if !slices.Contains(item.Dietary, tag) {
			return false
		}
	}

	return !filter.Featured || item.Featured
}

// GetItem implements MenuService.
func (s *menuService) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	item, ok := s.catalog.Item(id)
	if !ok {
		return nil, errors.NotFoundError("Menu item not found")
	}

	return &item, nil
}

// FindByName implements MenuService.
func (s *menuService) FindByName(ctx context.Context, name string) (*models.MenuItem, error) {
	item, ok := s.catalog.ItemByName(name)
	if !ok {
		return nil, errors.NotFoundError("Menu item not found")
	}

	return &item, nil
}
