package service_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	profile service.ProfileService
	auth    service.AuthService
	carts   service.CartService
	orders  repository.OrderRepository
	store   storage.Store
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	store, _, _ := newTestStore(t)
	f := &profileFixture{store: store}

	f.carts = service.NewCartService(repository.NewCartRepository(store), nil)
	users := repository.NewUserRepository(store)
	f.auth = service.NewAuthService(users, nil, passingBackend())
	f.orders = repository.NewOrderRepository(store)
	f.profile = service.NewProfileService(
		repository.NewProfileRepository(store),
		f.orders,
		users,
		f.auth,
		service.NewMenuService(catalog.Default()),
		f.carts,
	)

	return f
}

func (f *profileFixture) seedOrders(t *testing.T) {
	t.Helper()

	orders := []models.OrderRecord{
		{ID: "o-1", Number: "#12345", Items: []string{"Signature Burger", "Truffle Pizza", "Craft Beer"}, Total: price("48.97"), Status: models.OrderStatusDelivered},
		{ID: "o-2", Number: "#12344", Items: []string{"Grilled Salmon", "House Wine"}, Total: price("33.98"), Status: models.OrderStatusDelivered},
		{
			ID: "o-3", Number: "#12343", Items: []string{"Pasta Carbonara", "Tiramisu"}, Total: price("28.98"), Status: models.OrderStatusPending,
			Lines: []models.CartLineItem{
				{Name: "Pasta Carbonara", UnitPrice: price("15.00"), Quantity: 2},
				{Name: "Tiramisu", UnitPrice: price("8.99"), Quantity: 1},
			},
		},
		{ID: "o-4", Number: "#12342", Items: []string{"Lobster Thermidor", "Craft Beer"}, Status: models.OrderStatusDelivered},
	}

	for i := range orders {
		orders[i].CreatedAt = time.Date(2025, 1, i+1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, f.orders.CreateOrder(t.Context(), sessionID, &orders[i]))
	}
}

func TestDashboard(t *testing.T) {
	ctx := t.Context()

	t.Run("Failure - signed out", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.GetDashboard(ctx, sessionID)

		requireCode(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Success - stats and recent orders", func(t *testing.T) {
		// Arrange
		f := newProfileFixture(t)
		_, err := f.auth.SignIn(ctx, sessionID, &models.SignInRequest{Email: "jane@savory.com", Password: "x"})
		require.NoError(t, err)
		f.seedOrders(t)
		_, err = f.profile.AddFavorite(ctx, sessionID, "truffle-pizza")
		require.NoError(t, err)

		// Act
		dashboard, err := f.profile.GetDashboard(ctx, sessionID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, dashboard.Stats.TotalOrders)
		assert.Equal(t, 1, dashboard.Stats.FavoriteItems)
		assert.Equal(t, time.Now().UTC().Year(), dashboard.Stats.MemberSince)
		require.Len(t, dashboard.RecentOrders, 3)
		assert.Equal(t, "o-4", dashboard.RecentOrders[0].ID)
	})
}

func TestUpdatePersonalInfo(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - details rewritten on the signed-in user", func(t *testing.T) {
		// Arrange
		f := newProfileFixture(t)
		signedIn, err := f.auth.SignIn(ctx, sessionID, &models.SignInRequest{Email: "jane@savory.com", Password: "x"})
		require.NoError(t, err)

		// Act
		user, err := f.profile.UpdatePersonalInfo(ctx, sessionID, &models.UpdatePersonalInfoRequest{
			FirstName: " Janet ",
			LastName:  "Smith",
			Email:     "janet.smith@savory.com",
			Phone:     "(555) 123-4567",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Janet", user.FirstName)
		assert.Equal(t, signedIn.ID, user.ID)

		stored, err := f.auth.GetCurrentUser(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Janet Smith", stored.FullName())
		assert.Equal(t, "janet.smith@savory.com", stored.Email)
		assert.Equal(t, "(555) 123-4567", stored.Phone)
		assert.True(t, signedIn.JoinDate.Equal(stored.JoinDate))
	})

	t.Run("Failure - signed out", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.UpdatePersonalInfo(ctx, sessionID, &models.UpdatePersonalInfoRequest{FirstName: "Jane", LastName: "Doe", Email: "jane@savory.com"})

		requireCode(t, err, appErrors.ErrCodeUnauthorized)
	})
}

func TestUpdateNotifications(t *testing.T) {
	ctx := t.Context()
	on, off := true, false

	t.Run("Success - only present flags change", func(t *testing.T) {
		// Arrange
		f := newProfileFixture(t)
		_, err := f.auth.SignUp(ctx, sessionID, &models.SignUpRequest{
			FirstName: "Jane", LastName: "Doe", Email: "jane@savory.com", Newsletter: true,
		})
		require.NoError(t, err)

		// Act
		_, err = f.profile.UpdateNotifications(ctx, sessionID, &models.UpdateNotificationsRequest{EmailNotifications: &on})
		require.NoError(t, err)
		user, err := f.profile.UpdateNotifications(ctx, sessionID, &models.UpdateNotificationsRequest{SMSNotifications: &on, Newsletter: &off})

		// Assert
		require.NoError(t, err)
		assert.True(t, user.Notifications.EmailNotifications)
		assert.True(t, user.Notifications.SMSNotifications)
		assert.False(t, user.Newsletter)

		stored, err := f.auth.GetCurrentUser(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, user.Notifications, stored.Notifications)
		assert.False(t, stored.Newsletter)
	})

	t.Run("Failure - signed out", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.UpdateNotifications(ctx, sessionID, &models.UpdateNotificationsRequest{Newsletter: &on})

		requireCode(t, err, appErrors.ErrCodeUnauthorized)
	})
}

func TestOrderHistory(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - status filter and paging", func(t *testing.T) {
		f := newProfileFixture(t)
		f.seedOrders(t)

		tests := []struct {
			name      string
			query     models.OrderListQuery
			wantIDs   []string
			wantTotal int
		}{
			{"all", models.OrderListQuery{Status: "all", Page: 1, PageSize: 10}, []string{"o-4", "o-3", "o-2", "o-1"}, 4},
			{"pending", models.OrderListQuery{Status: "pending", Page: 1, PageSize: 10}, []string{"o-3"}, 1},
			{"delivered second page", models.OrderListQuery{Status: "delivered", Page: 2, PageSize: 2}, []string{"o-1"}, 3},
			{"past the end", models.OrderListQuery{Page: 5, PageSize: 2}, []string{}, 4},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp, err := f.profile.ListOrders(ctx, sessionID, tt.query)

				require.NoError(t, err)
				assert.Equal(t, tt.wantTotal, resp.Total)

				page := resp.Data.([]models.OrderRecord)
				ids := []string{}
				for _, o := range page {
					ids = append(ids, o.ID)
				}
				assert.Equal(t, tt.wantIDs, ids)
			})
		}
	})

	t.Run("Failure - unknown order", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.GetOrder(ctx, sessionID, "missing")

		requireCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - pending order is marked delivered", func(t *testing.T) {
		f := newProfileFixture(t)
		f.seedOrders(t)

		order, err := f.profile.UpdateOrderStatus(ctx, sessionID, "o-3", models.OrderStatusDelivered)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, order.Status)

		stored, err := f.profile.GetOrder(ctx, sessionID, "o-3")
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, stored.Status)
	})

	t.Run("Failure - delivered orders stay delivered", func(t *testing.T) {
		f := newProfileFixture(t)
		f.seedOrders(t)

		_, err := f.profile.UpdateOrderStatus(ctx, sessionID, "o-1", models.OrderStatusPending)

		requireCode(t, err, appErrors.ErrCodeInvalidTransition)
	})
}

func TestReorder(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - current menu prices and quantities", func(t *testing.T) {
		// Arrange
		f := newProfileFixture(t)
		f.seedOrders(t)

		// Act
		resp, err := f.profile.Reorder(ctx, sessionID, "o-3")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"Pasta Carbonara", "Tiramisu"}, resp.Added)
		assert.Equal(t, 3, resp.Cart.ItemCount)
		assert.Equal(t, "19.99", resp.Cart.Items[0].UnitPrice.StringFixed(2))
	})

	t.Run("Success - items no longer on the menu are skipped", func(t *testing.T) {
		f := newProfileFixture(t)
		f.seedOrders(t)

		resp, err := f.profile.Reorder(ctx, sessionID, "o-4")

		require.NoError(t, err)
		assert.Equal(t, []string{"Craft Beer"}, resp.Added)
		assert.Equal(t, []string{"Lobster Thermidor"}, resp.Skipped)
		assert.Equal(t, 1, resp.Cart.ItemCount)
	})
}

func TestFavorites(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - add, dedupe and remove", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.AddFavorite(ctx, sessionID, "signature-burger")
		require.NoError(t, err)
		favorites, err := f.profile.AddFavorite(ctx, sessionID, "signature-burger")
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, "Signature Burger", favorites[0].Name)

		favorites, err = f.profile.RemoveFavorite(ctx, sessionID, "signature-burger")

		require.NoError(t, err)
		assert.Empty(t, favorites)
	})

	t.Run("Failure - unknown menu item", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.AddFavorite(ctx, sessionID, "lobster")

		requireCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - removing a missing favorite", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.RemoveFavorite(ctx, sessionID, "tiramisu")

		requireCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - all favorites go to the cart", func(t *testing.T) {
		f := newProfileFixture(t)
		for _, id := range []string{"signature-burger", "truffle-pizza", "chocolate-lava-cake"} {
			_, err := f.profile.AddFavorite(ctx, sessionID, id)
			require.NoError(t, err)
		}

		resp, err := f.profile.AddFavoritesToCart(ctx, sessionID)

		require.NoError(t, err)
		assert.Len(t, resp.Added, 3)
		assert.Equal(t, 3, resp.Cart.ItemCount)
		assert.Equal(t, "51.97", resp.Cart.Subtotal.StringFixed(2))
	})

	t.Run("Success - corrupt favorites read as empty", func(t *testing.T) {
		f := newProfileFixture(t)
		require.NoError(t, f.store.Set(ctx, sessionID, storage.KeyFavorites, []byte("[{")))

		favorites, err := f.profile.ListFavorites(ctx, sessionID)

		require.NoError(t, err)
		assert.Empty(t, favorites)
	})
}

func TestAddresses(t *testing.T) {
	ctx := t.Context()

	home := models.Address{Label: "Home", Street: "123 Main Street", City: "San Francisco", State: "CA", ZipCode: "94105"}
	work := models.Address{Label: "Work", Street: "456 Market Street", City: "San Francisco", State: "CA", ZipCode: "94102"}
	gym := models.Address{Label: "Gym", Street: "9 Mission Street", City: "San Francisco", State: "CA", ZipCode: "94103"}

	defaults := func(addresses []models.Address) []string {
		var labels []string
		for _, a := range addresses {
			if a.IsDefault {
				labels = append(labels, a.Label)
			}
		}
		return labels
	}

	t.Run("Success - first address is the default", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.AddAddress(ctx, sessionID, &home)
		require.NoError(t, err)
		addresses, err := f.profile.AddAddress(ctx, sessionID, &work)

		require.NoError(t, err)
		require.Len(t, addresses, 2)
		assert.Equal(t, []string{"Home"}, defaults(addresses))
	})

	t.Run("Success - exactly one default", func(t *testing.T) {
		f := newProfileFixture(t)
		for _, a := range []models.Address{home, work, gym} {
			_, err := f.profile.AddAddress(ctx, sessionID, &a)
			require.NoError(t, err)
		}

		addresses, err := f.profile.SetDefaultAddress(ctx, sessionID, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Gym"}, defaults(addresses))

		newDefault := work
		newDefault.Label = "Office"
		newDefault.IsDefault = true
		addresses, err = f.profile.AddAddress(ctx, sessionID, &newDefault)
		require.NoError(t, err)
		assert.Equal(t, []string{"Office"}, defaults(addresses))
	})

	t.Run("Success - deleting the default promotes the first", func(t *testing.T) {
		f := newProfileFixture(t)
		for _, a := range []models.Address{home, work} {
			_, err := f.profile.AddAddress(ctx, sessionID, &a)
			require.NoError(t, err)
		}

		addresses, err := f.profile.DeleteAddress(ctx, sessionID, 0)

		require.NoError(t, err)
		require.Len(t, addresses, 1)
		assert.Equal(t, []string{"Work"}, defaults(addresses))
	})

	t.Run("Failure - index out of range", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.profile.DeleteAddress(ctx, sessionID, 0)
		requireCode(t, err, appErrors.ErrCodeNotFound)

		_, err = f.profile.SetDefaultAddress(ctx, sessionID, -1)
		requireCode(t, err, appErrors.ErrCodeNotFound)
	})
}
