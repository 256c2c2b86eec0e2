package redisstore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage/redisstore"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sessionID = "3f7c1b9e-session"
	ttl       = 24 * time.Hour
)

func setup(t *testing.T) (storage.Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return redisstore.New(client, ttl), mock
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	fullKey := storage.Key(sessionID, storage.KeyCart)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		mock.ExpectGet(fullKey).SetVal(`[{"name":"Craft Beer","price":"6.99","quantity":2}]`)

		// Act
		data, err := store.Get(ctx, sessionID, storage.KeyCart)

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"Craft Beer","price":"6.99","quantity":2}]`, string(data))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Key Not Found", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		mock.ExpectGet(fullKey).SetErr(redis.Nil)

		// Act
		data, err := store.Get(ctx, sessionID, storage.KeyCart)

		// Assert
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(fullKey).SetErr(expectedErr)

		// Act
		_, err := store.Get(ctx, sessionID, storage.KeyCart)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get key "+fullKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	fullKey := storage.Key(sessionID, storage.KeyTheme)

	t.Run("Success - value stored with session ttl", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		mock.ExpectSet(fullKey, []byte(`"dark"`), ttl).SetVal("OK")

		// Act
		err := store.Set(ctx, sessionID, storage.KeyTheme, []byte(`"dark"`))

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		expectedErr := errors.New("OOM command not allowed")
		mock.ExpectSet(fullKey, []byte(`"dark"`), ttl).SetErr(expectedErr)

		// Act
		err := store.Set(ctx, sessionID, storage.KeyTheme, []byte(`"dark"`))

		// Assert
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	fullKey := storage.Key(sessionID, storage.KeyCurrentUser)

	t.Run("Success", func(t *testing.T) {
		store, mock := setup(t)
		mock.ExpectDel(fullKey).SetVal(1)

		err := store.Delete(ctx, sessionID, storage.KeyCurrentUser)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setup(t)
		mock.ExpectDel(fullKey).SetErr(errors.New("connection refused"))

		err := store.Delete(ctx, sessionID, storage.KeyCurrentUser)

		assert.ErrorContains(t, err, "failed to delete key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJSONHelpers(t *testing.T) {
	ctx := t.Context()
	fullKey := storage.Key(sessionID, storage.KeyCart)

	t.Run("Success - round trip through the store", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		cart := models.Cart{Items: []models.CartLineItem{{Name: "Tiramisu", UnitPrice: decimal.RequireFromString("8.99"), Quantity: 1}}}
		mock.ExpectSet(fullKey, []byte(`[{"name":"Tiramisu","price":"8.99","quantity":1}]`), ttl).SetVal("OK")
		mock.ExpectGet(fullKey).SetVal(`[{"name":"Tiramisu","price":"8.99","quantity":1}]`)

		// Act
		err := storage.SetJSON(ctx, store, sessionID, storage.KeyCart, cart)
		require.NoError(t, err)

		var restored models.Cart
		found, err := storage.GetJSON(ctx, store, sessionID, storage.KeyCart, &restored)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Tiramisu", restored.Items[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - missing key reports not found", func(t *testing.T) {
		store, mock := setup(t)
		mock.ExpectGet(fullKey).SetErr(redis.Nil)

		var restored models.Cart
		found, err := storage.GetJSON(ctx, store, sessionID, storage.KeyCart, &restored)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - corrupt value", func(t *testing.T) {
		store, mock := setup(t)
		mock.ExpectGet(fullKey).SetVal(`{not json`)

		var restored models.Cart
		found, err := storage.GetJSON(ctx, store, sessionID, storage.KeyCart, &restored)

		assert.True(t, found)
		assert.ErrorIs(t, err, storage.ErrCorrupt)
	})
}

func TestPing(t *testing.T) {
	store, mock := setup(t)
	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, store.Ping(t.Context()))
	assert.NoError(t, store.Close())
}
