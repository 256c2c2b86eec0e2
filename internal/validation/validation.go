// Package validation wires the form rules of the ordering site into go-playground/validator.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	digitsRegex = regexp.MustCompile(`^\d{13,19}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)

	lowerRegex  = regexp.MustCompile(`[a-z]`)
	upperRegex  = regexp.MustCompile(`[A-Z]`)
	digitRegex  = regexp.MustCompile(`\d`)
	symbolRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// MinPasswordLevel is the weakest level accepted at sign-up.
const MinPasswordLevel = 2

func IsRequired(s string) bool { return strings.TrimSpace(s) != "" }

func IsEmail(s string) bool { return emailRegex.MatchString(s) }

func IsPhone(s string) bool { return phoneRegex.MatchString(s) }

func IsCardNumber(s string) bool {
	return digitsRegex.MatchString(strings.ReplaceAll(s, " ", ""))
}

func IsCardExpiry(s string) bool { return expiryRegex.MatchString(s) }

func IsCVV(s string) bool { return cvvRegex.MatchString(s) }

// PasswordScore counts the satisfied checks: length of at least 8,
// lowercase, uppercase, digit and symbol.
func PasswordScore(password string) int {
	checks := []bool{
		len(password) >= 8,
		lowerRegex.MatchString(password),
		upperRegex.MatchString(password),
		digitRegex.MatchString(password),
		symbolRegex.MatchString(password),
	}

	score := 0
	for _, ok := range checks {
		if ok {
			score++
		}
	}

	return score
}

// PasswordLevel maps a score to 1 (weak) through 4 (strong).
func PasswordLevel(password string) int {
	return min(4, max(1, PasswordScore(password)-1))
}

var levelLabels = map[int]string{1: "Weak", 2: "Fair", 3: "Good", 4: "Strong"}

func PasswordLabel(level int) string {
	return levelLabels[level]
}

func stringRule(pred func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pred(fl.Field().String())
	}
}

// New returns a validator with the site's custom tags, reporting fields by their JSON names.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}

		return nil
	}, decimal.Decimal{})

	rules := map[string]validator.Func{
		"notblank":      stringRule(IsRequired),
		"email_address": stringRule(IsEmail),
		"phone":         stringRule(IsPhone),
		"card_number":   stringRule(IsCardNumber),
		"card_expiry":   stringRule(IsCardExpiry),
		"cvv":           stringRule(IsCVV),
		"password_strength": stringRule(func(s string) bool {
			return PasswordLevel(s) >= MinPasswordLevel
		}),
		"accepted": func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
		},
	}

	for tag, fn := range rules {
		// "accepted" must run on the zero value too.
		callEvenIfNull := tag == "accepted"
		if err := v.RegisterValidation(tag, fn, callEvenIfNull); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}

	return v
}

// FieldErrors turns validator output into one message per field, keyed by
// the field path without the top-level struct name.
func FieldErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))

	for _, fe := range errs {
		key := fe.Namespace()
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[i+1:]
		}

		if _, exists := fields[key]; !exists {
			fields[key] = Message(fe)
		}
	}

	return fields
}

func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank", "required_if", "required_unless":
		return "This field is required"
	case "email_address":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a phone number like (555) 123-4567"
	case "card_number":
		return "Please enter a valid card number"
	case "card_expiry":
		return "Please enter a valid expiry date (MM/YY)"
	case "cvv":
		return "Please enter a valid CVV"
	case "password_strength":
		return "Password is too weak"
	case "eqfield":
		return "Passwords do not match"
	case "accepted":
		return "You must accept the terms and conditions"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid value: %s=%s", fe.Tag(), fe.Param())
	}
}
