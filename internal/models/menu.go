package models

import "github.com/shopspring/decimal"

type DietaryTag string

const (
	DietaryVegetarian DietaryTag = "vegetarian"
	DietaryVegan      DietaryTag = "vegan"
	DietaryGlutenFree DietaryTag = "gluten-free"
	DietarySpicy      DietaryTag = "spicy"
)

type MenuCategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type MenuItem struct {
	ID          string          `json:"id" yaml:"id"`
	CategoryID  string          `json:"category" yaml:"category"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Dietary     []DietaryTag    `json:"dietary,omitempty" yaml:"dietary"`
	Featured    bool            `json:"featured" yaml:"featured"`
}

type MenuFilter struct {
	Category string       `json:"category" validate:"omitempty,max=40"`
	Search   string       `json:"search" validate:"omitempty,max=100"`
	MinPrice *float64     `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64     `json:"maxPrice" validate:"omitempty,gte=0"`
	Dietary  []DietaryTag `json:"dietary" validate:"omitempty,dive,oneof=vegetarian vegan gluten-free spicy"`
	Featured bool         `json:"featured"`
}

type MenuSection struct {
	Category MenuCategory `json:"category"`
	Items    []MenuItem   `json:"items"`
}

type MenuResponse struct {
	Categories []MenuCategory `json:"categories"`
	Sections   []MenuSection  `json:"sections"`
	Total      int            `json:"total"`
}
