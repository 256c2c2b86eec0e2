package validation

import (
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	assert.True(t, IsEmail("jane@savory.com"))
	assert.False(t, IsEmail("jane@savory"))
	assert.False(t, IsEmail("ja ne@savory.com"))

	assert.True(t, IsPhone("(555) 123-4567"))
	assert.False(t, IsPhone("555-123-4567"))
	assert.False(t, IsPhone("(555)123-4567"))

	assert.True(t, IsCardNumber("4242 4242 4242 4242"))
	assert.False(t, IsCardNumber("4242 4242"))
	assert.False(t, IsCardNumber("4242-4242-4242-4242"))

	assert.True(t, IsCardExpiry("08/27"))
	assert.False(t, IsCardExpiry("13/27"))

	assert.True(t, IsCVV("123"))
	assert.True(t, IsCVV("1234"))
	assert.False(t, IsCVV("12"))

	assert.False(t, IsRequired("   "))
}

func TestPasswordLevel(t *testing.T) {
	tests := []struct {
		password string
		score    int
		level    int
	}{
		{"", 0, 1},
		{"abc", 1, 1},
		{"abcdefgh", 2, 1},
		{"abcdefgH", 3, 2},
		{"abcdefH1", 4, 3},
		{"abcdeH1!", 5, 4},
		{"Ab1!", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.score, PasswordScore(tt.password))
			assert.Equal(t, tt.level, PasswordLevel(tt.password))
		})
	}

	assert.Equal(t, "Fair", PasswordLabel(2))
}

func fieldErrors(t *testing.T, v *validator.Validate, data any) map[string]string {
	t.Helper()

	err := v.Struct(data)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	return FieldErrors(errs)
}

func TestNew(t *testing.T) {
	v := New()

	t.Run("Success - valid sign up", func(t *testing.T) {
		req := models.SignUpRequest{
			FirstName:       "Jane",
			LastName:        "Doe",
			Email:           "jane@savory.com",
			Password:        "Sup3rSecret!",
			ConfirmPassword: "Sup3rSecret!",
			AcceptTerms:     true,
		}

		assert.Nil(t, fieldErrors(t, v, req))
	})

	t.Run("Failure - sign up errors are per field", func(t *testing.T) {
		req := models.SignUpRequest{
			FirstName:       "  ",
			LastName:        "Doe",
			Email:           "not-an-email",
			Phone:           "5551234567",
			Password:        "abcdefgh",
			ConfirmPassword: "abcdefgx",
		}

		fields := fieldErrors(t, v, req)

		assert.Equal(t, "This field is required", fields["firstName"])
		assert.Equal(t, "Please enter a valid email address", fields["email"])
		assert.Contains(t, fields, "phone")
		assert.Equal(t, "Password is too weak", fields["password"])
		assert.Equal(t, "Passwords do not match", fields["confirmPassword"])
		assert.Contains(t, fields, "acceptTerms")
		assert.NotContains(t, fields, "lastName")
	})

	t.Run("Failure - delivery form requires address for delivery only", func(t *testing.T) {
		form := models.DeliveryForm{
			OrderType:     models.OrderTypeDelivery,
			PaymentMethod: models.PaymentMethodCash,
			Contact: models.ContactDetails{
				FirstName: "Jane", LastName: "Doe", Email: "jane@savory.com", Phone: "(555) 123-4567",
			},
		}

		fields := fieldErrors(t, v, form)
		assert.Equal(t, map[string]string{"address": "This field is required"}, fields)

		form.OrderType = models.OrderTypePickup
		assert.Nil(t, fieldErrors(t, v, form))
	})

	t.Run("Failure - nested fields use their path", func(t *testing.T) {
		form := models.DeliveryForm{
			OrderType:     models.OrderTypeDelivery,
			PaymentMethod: models.PaymentMethodCard,
			Contact:       models.ContactDetails{FirstName: "Jane", LastName: "Doe", Email: "jane@savory.com", Phone: "bad"},
			Address:       &models.DeliveryAddress{Street: "123 Main Street", City: "San Francisco", State: "CA"},
		}

		fields := fieldErrors(t, v, form)

		assert.Contains(t, fields, "contact.phone")
		assert.Contains(t, fields, "address.zipCode")
	})

	t.Run("Failure - negative price", func(t *testing.T) {
		req := models.AddItemRequest{Name: "Craft Beer", UnitPrice: decimal.NewFromInt(-1)}

		fields := fieldErrors(t, v, req)

		assert.Contains(t, fields, "price")
	})

	t.Run("Success - clear action needs no name", func(t *testing.T) {
		assert.Nil(t, fieldErrors(t, v, models.CartAction{Type: models.ActionClear}))

		fields := fieldErrors(t, v, models.CartAction{Type: models.ActionAddItem})
		assert.Contains(t, fields, "name")
	})

	t.Run("Failure - card details", func(t *testing.T) {
		card := models.CardDetails{Number: "4242", Expiry: "0827", CVV: "1"}

		fields := fieldErrors(t, v, card)

		assert.Len(t, fields, 3)
	})
}
