package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

const recentOrderCount = 3

type ProfileService interface {
	GetDashboard(ctx context.Context, sessionID string) (*models.Dashboard, error)
	UpdatePersonalInfo(ctx context.Context, sessionID string, req *models.UpdatePersonalInfoRequest) (*models.UserSession, error)
	UpdateNotifications(ctx context.Context, sessionID string, req *models.UpdateNotificationsRequest) (*models.UserSession, error)

	ListOrders(ctx context.Context, sessionID string, query models.OrderListQuery) (*models.PaginatedResponse, error)
	GetOrder(ctx context.Context, sessionID, id string) (*models.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, sessionID, id string, status models.OrderStatus) (*models.OrderRecord, error)
	Reorder(ctx context.Context, sessionID, id string) (*models.ReorderResponse, error)

	ListFavorites(ctx context.Context, sessionID string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, sessionID, itemID string) ([]models.Favorite, error)
	RemoveFavorite(ctx context.Context, sessionID, itemID string) ([]models.Favorite, error)
	AddFavoritesToCart(ctx context.Context, sessionID string) (*models.ReorderResponse, error)

	ListAddresses(ctx context.Context, sessionID string) ([]models.Address, error)
	AddAddress(ctx context.Context, sessionID string, address *models.Address) ([]models.Address, error)
	DeleteAddress(ctx context.Context, sessionID string, index int) ([]models.Address, error)
	SetDefaultAddress(ctx context.Context, sessionID string, index int) ([]models.Address, error)
}

type profileService struct {
	repo   repository.ProfileRepository
	orders repository.OrderRepository
	users  repository.UserRepository
	auth   AuthService
	menu   MenuService
	carts  CartService
	now    func() time.Time
}

func NewProfileService(
	repo repository.ProfileRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	auth AuthService,
	menu MenuService,
	carts CartService,
) ProfileService {
	return &profileService{repo: repo, orders: orders, users: users, auth: auth, menu: menu, carts: carts, now: time.Now}
}

// GetDashboard implements ProfileService. Only a signed-in user has a dashboard.
func (s *profileService) GetDashboard(ctx context.Context, sessionID string) (*models.Dashboard, error) {

	user, err := s.signedInUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orders, err := s.loadOrders(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.ListFavorites(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		User: user,
		Stats: models.ProfileStats{
			TotalOrders:   len(orders),
			FavoriteItems: len(favorites),
			MemberSince:   user.JoinDate.Year(),
		},
		RecentOrders: orders[:min(recentOrderCount, len(orders))],
	}, nil
}

// UpdatePersonalInfo implements ProfileService.
func (s *profileService) UpdatePersonalInfo(ctx context.Context, sessionID string, req *models.UpdatePersonalInfoRequest) (*models.UserSession, error) {

	user, err := s.signedInUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = strings.TrimSpace(req.Email)
	user.Phone = req.Phone

	return s.saveUser(ctx, sessionID, user)
}

// UpdateNotifications implements ProfileService. Flags missing from the request keep their value.
func (s *profileService) UpdateNotifications(ctx context.Context, sessionID string, req *models.UpdateNotificationsRequest) (*models.UserSession, error) {

	user, err := s.signedInUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.EmailNotifications != nil {
		user.Notifications.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		user.Notifications.SMSNotifications = *req.SMSNotifications
	}
	if req.Newsletter != nil {
		user.Newsletter = *req.Newsletter
	}

	return s.saveUser(ctx, sessionID, user)
}

func (s *profileService) signedInUser(ctx context.Context, sessionID string) (*models.UserSession, error) {

	user, err := s.auth.GetCurrentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, errors.UnauthorizedError("Please sign in to view your profile")
	}

	return user, nil
}

func (s *profileService) saveUser(ctx context.Context, sessionID string, user *models.UserSession) (*models.UserSession, error) {
	if err := s.users.SaveCurrentUser(ctx, sessionID, user); err != nil {
		return nil, errors.StorageError("Failed to update profile").WithError(err)
	}

	return user, nil
}

// ListOrders implements ProfileService.
func (s *profileService) ListOrders(ctx context.Context, sessionID string, query models.OrderListQuery) (*models.PaginatedResponse, error) {

	orders, err := s.loadOrders(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(query.Status)
	if status != "" && status != allCategories {
		orders = slices.DeleteFunc(orders, func(o models.OrderRecord) bool {
			return string(o.Status) != status
		})
	}

	page, total := models.Paginate(orders, query.Page, query.PageSize)

	return &models.PaginatedResponse{
		Data:     page,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

// GetOrder implements ProfileService.
func (s *profileService) GetOrder(ctx context.Context, sessionID, id string) (*models.OrderRecord, error) {

	order, err := s.orders.GetOrderByID(ctx, sessionID, id)
	if err != nil {
		return nil, orderError(err, "Failed to fetch order")
	}

	return order, nil
}

// UpdateOrderStatus implements ProfileService. The only transition is pending to delivered.
func (s *profileService) UpdateOrderStatus(ctx context.Context, sessionID, id string, status models.OrderStatus) (*models.OrderRecord, error) {

	order, err := s.GetOrder(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}

	if order.Status != models.OrderStatusPending || status != models.OrderStatusDelivered {
		return nil, errors.InvalidTransitionError(fmt.Sprintf("Order cannot move from %s to %s", order.Status, status))
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, sessionID, id, status)
	if err != nil {
		return nil, orderError(err, "Failed to update order status")
	}

	middleware.LoggerFromContext(ctx).Info("Order status updated",
		slog.String("orderId", id),
		slog.String("status", string(status)))

	return updated, nil
}

// Reorder implements ProfileService. Items are added back at today's menu
// price; anything no longer on the menu is skipped.
func (s *profileService) Reorder(ctx context.Context, sessionID, id string) (*models.ReorderResponse, error) {

	order, err := s.GetOrder(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}

	lines := order.Lines
	if len(lines) == 0 {
		for _, name := range order.Items {
			lines = append(lines, models.CartLineItem{Name: name, Quantity: 1})
		}
	}

	resp := &models.ReorderResponse{Added: []string{}}

	var cart models.Cart
	for _, line := range lines {
		item, err := s.menu.FindByName(ctx, line.Name)
		if err != nil {
			resp.Skipped = append(resp.Skipped, line.Name)
			continue
		}

		for range max(line.Quantity, 1) {
			cart, err = s.carts.AddItem(ctx, sessionID, &models.AddItemRequest{Name: item.Name, UnitPrice: item.Price})
			if err != nil {
				return nil, err
			}
		}

		resp.Added = append(resp.Added, item.Name)
	}

	if len(resp.Added) == 0 {
		cart, err = s.carts.GetCart(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	}

	resp.Cart = models.NewCartSnapshot(cart)

	return resp, nil
}

// ListFavorites implements ProfileService.
func (s *profileService) ListFavorites(ctx context.Context, sessionID string) ([]models.Favorite, error) {

	favorites, err := s.repo.ListFavorites(ctx, sessionID)
	if err == nil {
		return favorites, nil
	}

	if !isCorrupt(err) {
		return nil, errors.StorageError("Failed to load favorites").WithError(err)
	}

	recoverCorrupt(ctx, storage.KeyFavorites, err)

	return []models.Favorite{}, nil
}

// AddFavorite implements ProfileService. Adding a favorite twice is a no-op.
func (s *profileService) AddFavorite(ctx context.Context, sessionID, itemID string) ([]models.Favorite, error) {

	item, err := s.menu.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.ListFavorites(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if slices.ContainsFunc(favorites, func(f models.Favorite) bool { return f.ItemID == item.ID }) {
		return favorites, nil
	}

	favorites = append(favorites, models.Favorite{
		ItemID:  item.ID,
		Name:    item.Name,
		Price:   item.Price,
		AddedAt: s.now().UTC(),
	})

	if err := s.repo.SaveFavorites(ctx, sessionID, favorites); err != nil {
		return nil, errors.StorageError("Failed to save favorites").WithError(err)
	}

	return favorites, nil
}

// RemoveFavorite implements ProfileService.
func (s *profileService) RemoveFavorite(ctx context.Context, sessionID, itemID string) ([]models.Favorite, error) {

	favorites, err := s.ListFavorites(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(favorites, func(f models.Favorite) bool { return f.ItemID == itemID })
	if idx < 0 {
		return nil, errors.NotFoundError("Favorite not found")
	}

	favorites = slices.Delete(favorites, idx, idx+1)

	if err := s.repo.SaveFavorites(ctx, sessionID, favorites); err != nil {
		return nil, errors.StorageError("Failed to save favorites").WithError(err)
	}

	return favorites, nil
}

// AddFavoritesToCart implements ProfileService, pricing each favorite from the current menu.
func (s *profileService) AddFavoritesToCart(ctx context.Context, sessionID string) (*models.ReorderResponse, error) {

	favorites, err := s.ListFavorites(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &models.ReorderResponse{Added: []string{}}

	for _, fav := range favorites {
		item, err := s.menu.GetItem(ctx, fav.ItemID)
		if err != nil {
			resp.Skipped = append(resp.Skipped, fav.Name)
			continue
		}

		if _, err := s.carts.AddItem(ctx, sessionID, &models.AddItemRequest{Name: item.Name, UnitPrice: item.Price}); err != nil {
			return nil, err
		}

		resp.Added = append(resp.Added, item.Name)
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp.Cart = models.NewCartSnapshot(cart)

	return resp, nil
}

// ListAddresses implements ProfileService.
func (s *profileService) ListAddresses(ctx context.Context, sessionID string) ([]models.Address, error) {

	addresses, err := s.repo.ListAddresses(ctx, sessionID)
	if err == nil {
		return addresses, nil
	}

	if !isCorrupt(err) {
		return nil, errors.StorageError("Failed to load addresses").WithError(err)
	}

	recoverCorrupt(ctx, storage.KeyAddresses, err)

	return []models.Address{}, nil
}

// AddAddress implements ProfileService. The first address becomes the default.
func (s *profileService) AddAddress(ctx context.Context, sessionID string, address *models.Address) ([]models.Address, error) {

	addresses, err := s.ListAddresses(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	added := *address
	added.IsDefault = added.IsDefault || len(addresses) == 0

	if added.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
	}

	addresses = append(addresses, added)

	return s.saveAddresses(ctx, sessionID, addresses)
}

// DeleteAddress implements ProfileService. Removing the default promotes the first remaining address.
func (s *profileService) DeleteAddress(ctx context.Context, sessionID string, index int) ([]models.Address, error) {

	addresses, err := s.ListAddresses(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(addresses) {
		return nil, errors.NotFoundError("Address not found")
	}

	wasDefault := addresses[index].IsDefault
	addresses = slices.Delete(addresses, index, index+1)

	if wasDefault && len(addresses) > 0 {
		addresses[0].IsDefault = true
	}

	return s.saveAddresses(ctx, sessionID, addresses)
}

// SetDefaultAddress implements ProfileService.
func (s *profileService) SetDefaultAddress(ctx context.Context, sessionID string, index int) ([]models.Address, error) {

	addresses, err := s.ListAddresses(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(addresses) {
		return nil, errors.NotFoundError("Address not found")
	}

	for i := range addresses {
		addresses[i].IsDefault = i == index
	}

	return s.saveAddresses(ctx, sessionID, addresses)
}

func (s *profileService) saveAddresses(ctx context.Context, sessionID string, addresses []models.Address) ([]models.Address, error) {
	if err := s.repo.SaveAddresses(ctx, sessionID, addresses); err != nil {
		return nil, errors.StorageError("Failed to save addresses").WithError(err)
	}

	return addresses, nil
}

func (s *profileService) loadOrders(ctx context.Context, sessionID string) ([]models.OrderRecord, error) {

	orders, err := s.orders.ListOrders(ctx, sessionID)
	if err == nil {
		return orders, nil
	}

	if !isCorrupt(err) {
		return nil, errors.StorageError("Failed to fetch orders").WithError(err)
	}

	// order history is never rewritten on read
	recoverCorrupt(ctx, storage.KeyOrders, err)

	return []models.OrderRecord{}, nil
}

func orderError(err error, message string) error {
	if stdErrors.Is(err, repository.ErrOrderNotFound) {
		return errors.NotFoundError("Order not found").WithError(err)
	}

	return errors.StorageError(message).WithError(err)
}
