package model

import (
	"time"

	"github.com/cafelumiere/cafe-api/constant"
)

type ShippingAddress struct {
	Fullname string `db:"ship_fullname" json:"fullname" validate:"required"`
	Phone    string `db:"ship_phone" json:"phone" validate:"required"`
	Address  string `db:"ship_address" json:"address" validate:"required"`
}

type BankTransferDetails struct {
	AccountName   string `db:"bank_account_name" json:"accountName"`
	AccountNumber string `db:"bank_account_number" json:"accountNumber"`
}

type PlaceOrderRequest struct {
	UserID              uint64               `json:"userId" validate:"required"`
	PaymentMethod       string               `json:"payment_method" validate:"required,payment_method"`
	ShippingAddress     ShippingAddress      `json:"shippingAddress"`
	BankTransferDetails *BankTransferDetails `json:"bankTransferDetails,omitempty"`
	PromoCode           string               `json:"promoCode,omitempty"`
}

// OrderEntity represents the order table entity. Everything except status
// is immutable after creation.
type OrderEntity struct {
	ID                uint64               `db:"id"`
	UserID            uint64               `db:"user_id"`
	Subtotal          float64              `db:"subtotal"`
	Shipping          float64              `db:"shipping"`
	Discount          float64              `db:"discount"`
	Total             float64              `db:"total"`
	ShipFullname      string               `db:"ship_fullname"`
	ShipPhone         string               `db:"ship_phone"`
	ShipAddress       string               `db:"ship_address"`
	PaymentMethod     string               `db:"payment_method"`
	BankAccountName   *string              `db:"bank_account_name"`
	BankAccountNumber *string              `db:"bank_account_number"`
	PromoCodeUsed     *string              `db:"promo_code_used"`
	Status            constant.OrderStatus `db:"status"`
	OrderDate         time.Time            `db:"order_date"`
}

// OrderItemEntity is a frozen snapshot of one cart line at order time.
// Name and price are captured from the product so later catalog edits
// cannot alter historical orders.
type OrderItemEntity struct {
	ID              uint64  `db:"id" json:"-"`
	OrderID         uint64  `db:"order_id" json:"-"`
	ProductID       uint64  `db:"product_id" json:"product_id"`
	Name            string  `db:"name" json:"name"`
	Quantity        int     `db:"quantity" json:"quantity"`
	PriceAtPurchase float64 `db:"price_at_purchase" json:"price_at_purchase"`
}

// OrderUser is the populated user summary embedded in order responses
type OrderUser struct {
	ID       uint64 `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

type OrderView struct {
	ID                  uint64               `json:"id"`
	UserID              uint64               `json:"userId"`
	User                *OrderUser           `json:"user,omitempty"`
	Items               []OrderItemEntity    `json:"items"`
	Subtotal            float64              `json:"subtotal"`
	Shipping            float64              `json:"shipping"`
	Discount            float64              `json:"discount"`
	Total               float64              `json:"total"`
	ShippingAddress     ShippingAddress      `json:"shippingAddress"`
	PaymentMethod       string               `json:"payment_method"`
	BankTransferDetails *BankTransferDetails `json:"bankTransferDetails,omitempty"`
	PromoCodeUsed       string               `json:"promoCodeUsed,omitempty"`
	Status              constant.OrderStatus `json:"status"`
	OrderDate           time.Time            `json:"order_date"`
}

type PlaceOrderResponse struct {
	Order           *OrderView `json:"order"`
	DiscountApplied bool       `json:"discountApplied"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// InsertOrderTxItem carries the order header written inside the checkout
// transaction.
type InsertOrderTxItem struct {
	UserID            uint64
	Subtotal          float64
	Shipping          float64
	Discount          float64
	Total             float64
	ShippingAddress   ShippingAddress
	PaymentMethod     string
	BankAccountName   *string
	BankAccountNumber *string
	PromoCodeUsed     *string
	Status            constant.OrderStatus
}
