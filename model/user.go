package model

import (
	"time"

	"github.com/cafelumiere/cafe-api/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID               uint64              `db:"id" json:"id"`
	Fullname         string              `db:"fullname" json:"fullname"`
	Username         string              `db:"username" json:"username"`
	Email            string              `db:"email" json:"email"`
	PasswordHash     string              `db:"password_hash" json:"-"`
	Picture          string              `db:"picture" json:"picture,omitempty"`
	Role             string              `db:"role" json:"role"`
	Phone            string              `db:"phone" json:"phone,omitempty"`
	Address          string              `db:"address" json:"address,omitempty"`
	Birthday         string              `db:"birthday" json:"birthday,omitempty"`
	Status           constant.UserStatus `db:"status" json:"status"`
	PromoCode        *string             `db:"promo_code" json:"-"`
	PromoLastClaimed *time.Time          `db:"promo_last_claimed" json:"-"`
	PromoTimesUsed   int                 `db:"promo_times_used" json:"-"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// PromoCodeView is the per-user promo ledger as exposed to clients
type PromoCodeView struct {
	Code        string    `json:"code"`
	LastClaimed time.Time `json:"lastClaimed"`
	TimesUsed   int       `json:"timesUsed"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// SignupRequest for user registration
type SignupRequest struct {
	Fullname string `json:"fullname" validate:"required"`
	Username string `json:"username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *UserEntity `json:"user"`
}

// UpdateProfileRequest covers the user-facing profile/shipping details form
type UpdateProfileRequest struct {
	Fullname string `json:"fullname" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateUserRequest is the admin-side user edit
type UpdateUserRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Birthday string `json:"birthday"`
	Status   string `json:"status" validate:"omitempty,oneof=active blocked"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type ValidatePromoRequest struct {
	UserID    uint64 `json:"userId" validate:"required"`
	PromoCode string `json:"promoCode" validate:"required"`
}

type ValidatePromoResponse struct {
	Discount float64 `json:"discount"`
}

type GeneratePromoResponse struct {
	PromoCode string `json:"promoCode"`
}
