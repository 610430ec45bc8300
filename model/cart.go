package model

import (
	"time"

	"github.com/cafelumiere/cafe-api/constant"
)

// CartEntity represents the cart table entity. At most one cart per user
// has status=active at any time.
type CartEntity struct {
	ID        uint64              `db:"id" json:"id"`
	UserID    uint64              `db:"user_id" json:"user_id"`
	Status    constant.CartStatus `db:"status" json:"status"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
}

// CartItemEntity is one product line in a cart. Subtotal is cached at
// add/update time, not recomputed on read.
type CartItemEntity struct {
	ID        uint64  `db:"id" json:"-"`
	CartID    uint64  `db:"cart_id" json:"-"`
	ProductID uint64  `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

// CartItemDetail is a cart line joined with live product data for display
type CartItemDetail struct {
	ProductID uint64  `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Image     string  `db:"image" json:"image,omitempty"`
	Stock     int64   `db:"stock" json:"stock"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

type CartView struct {
	ID     uint64              `json:"id,omitempty"`
	UserID uint64              `json:"user_id,omitempty"`
	Status constant.CartStatus `json:"status,omitempty"`
	Items  []CartItemDetail    `json:"items"`
}

type AddToCartRequest struct {
	UserID    uint64 `json:"userId" validate:"required"`
	ProductID uint64 `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}
