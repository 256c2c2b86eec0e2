package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Favorite struct {
	ItemID  string          `json:"itemId"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	AddedAt time.Time       `json:"addedAt"`
}

type AddFavoriteRequest struct {
	ItemID string `json:"itemId" validate:"required,notblank,max=60"`
}

type Address struct {
	Label     string `json:"label" validate:"required,notblank,max=40"`
	Street    string `json:"street" validate:"required,notblank,max=200"`
	City      string `json:"city" validate:"required,notblank,max=100"`
	State     string `json:"state" validate:"required,notblank,max=50"`
	ZipCode   string `json:"zipCode" validate:"required,notblank,max=10"`
	IsDefault bool   `json:"isDefault"`
}

type ProfileStats struct {
	TotalOrders   int `json:"totalOrders"`
	FavoriteItems int `json:"favoriteItems"`
	MemberSince   int `json:"memberSince"`
}

type Dashboard struct {
	User         *UserSession  `json:"user"`
	Stats        ProfileStats  `json:"stats"`
	RecentOrders []OrderRecord `json:"recentOrders"`
}

type ReorderResponse struct {
	Added   []string     `json:"added"`
	Skipped []string     `json:"skipped,omitempty"`
	Cart    CartSnapshot `json:"cart"`
}
