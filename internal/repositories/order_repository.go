package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository keeps the session's order history, newest first.
type OrderRepository interface {
	CreateOrder(ctx context.Context, sessionID string, order *models.OrderRecord) error
	GetOrderByID(ctx context.Context, sessionID, id string) (*models.OrderRecord, error)
	ListOrders(ctx context.Context, sessionID string) ([]models.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, sessionID, id string, status models.OrderStatus) (*models.OrderRecord, error)
}

type orderRepository struct {
	store storage.Store
}

func NewOrderRepository(store storage.Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) CreateOrder(ctx context.Context, sessionID string, order *models.OrderRecord) error {

	orders, err := r.ListOrders(ctx, sessionID)
	if err != nil {
		return err
	}

	orders = slices.Insert(orders, 0, *order)

	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyOrders, orders); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, sessionID, id string) (*models.OrderRecord, error) {

	orders, err := r.ListOrders(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(orders, func(o models.OrderRecord) bool { return o.ID == id })
	if idx < 0 {
		return nil, ErrOrderNotFound
	}

	return &orders[idx], nil
}

func (r *orderRepository) ListOrders(ctx context.Context, sessionID string) ([]models.OrderRecord, error) {

	var orders []models.OrderRecord

	if _, err := storage.GetJSON(ctx, r.store, sessionID, storage.KeyOrders, &orders); err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []models.OrderRecord{}
	}

	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, sessionID, id string, status models.OrderStatus) (*models.OrderRecord, error) {

	orders, err := r.ListOrders(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(orders, func(o models.OrderRecord) bool { return o.ID == id })
	if idx < 0 {
		return nil, ErrOrderNotFound
	}

	orders[idx].Status = status

	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyOrders, orders); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &orders[idx], nil
}
