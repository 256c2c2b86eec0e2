package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserSession is the signed-in user kept under the "currentUser" key.
type UserSession struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Phone      string     `json:"phone,omitempty"`
	Newsletter bool       `json:"newsletter"`
	RememberMe bool       `json:"rememberMe"`
	JoinDate   time.Time  `json:"joinDate"`
	LoginTime  *time.Time `json:"loginTime,omitempty"`

	Notifications NotificationPreferences `json:"notifications"`
}

type NotificationPreferences struct {
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
}

func (u UserSession) FullName() string {
	return u.FirstName + " " + u.LastName
}

type SignInRequest struct {
	Email      string `json:"email" validate:"required,email_address"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type SignUpRequest struct {
	FirstName       string `json:"firstName" validate:"required,notblank,max=60"`
	LastName        string `json:"lastName" validate:"required,notblank,max=60"`
	Email           string `json:"email" validate:"required,email_address"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	Password        string `json:"password" validate:"required,password_strength"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Newsletter      bool   `json:"newsletter"`
	AcceptTerms     bool   `json:"acceptTerms" validate:"accepted"`
}

type UpdatePersonalInfoRequest struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=60"`
	LastName  string `json:"lastName" validate:"required,notblank,max=60"`
	Email     string `json:"email" validate:"required,email_address"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
}

// UpdateNotificationsRequest changes only the flags that are present.
type UpdateNotificationsRequest struct {
	EmailNotifications *bool `json:"emailNotifications"`
	SMSNotifications   *bool `json:"smsNotifications"`
	Newsletter         *bool `json:"newsletter"`
}

type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

type PasswordStrength struct {
	Score int    `json:"score"`
	Level int    `json:"level"`
	Label string `json:"label"`
}

type AuthResponse struct {
	User    *UserSession `json:"user"`
	Message string       `json:"message"`
}

// SessionClaims identifies the browser-profile equivalent that owns the stored state.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
