package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrAccountBlocked
	ErrCannotModifyAdmin
	ErrEmptyCart
	ErrCartNotFound
	ErrCartItemNotFound
	ErrProductNotFound
	ErrInsufficientStock
	ErrIncompleteShippingAddress
	ErrMissingBankDetails
	ErrOrderNotFound
	ErrInvalidOrderStatus
	ErrPromoIneligible
	ErrPromoExpired
	ErrPromoStillActive
	ErrResetTokenInvalid
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                   "success",
	ErrInternal:                  "error internal",
	ErrNotFound:                  "data not found",
	ErrInvalidRequest:            "invalid request",
	ErrUnauthorize:               "unauthorize request",
	ErrForbidden:                 "forbidden",
	ErrCredentialExists:          "email already in use",
	ErrInvalidPassword:           "invalid credentials",
	ErrAccountBlocked:            "your account has been blocked, please contact support for assistance",
	ErrCannotModifyAdmin:         "cannot modify admin accounts",
	ErrEmptyCart:                 "cart is empty",
	ErrCartNotFound:              "cart not found",
	ErrCartItemNotFound:          "item not found in cart",
	ErrProductNotFound:           "product not found",
	ErrInsufficientStock:         "insufficient stock",
	ErrIncompleteShippingAddress: "please provide complete shipping address",
	ErrMissingBankDetails:        "please provide bank transfer details",
	ErrOrderNotFound:             "order not found",
	ErrInvalidOrderStatus:        "invalid order status transition",
	ErrPromoIneligible:           "invalid promo code",
	ErrPromoExpired:              "this promo code has expired",
	ErrPromoStillActive:          "you already have an active promo code, please wait 7 days before claiming a new one",
	ErrResetTokenInvalid:         "invalid or expired reset token",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                   http.StatusOK,
	ErrInternal:                  http.StatusInternalServerError,
	ErrNotFound:                  http.StatusNotFound,
	ErrInvalidRequest:            http.StatusBadRequest,
	ErrUnauthorize:               http.StatusUnauthorized,
	ErrForbidden:                 http.StatusForbidden,
	ErrCredentialExists:          http.StatusBadRequest,
	ErrInvalidPassword:           http.StatusBadRequest,
	ErrAccountBlocked:            http.StatusForbidden,
	ErrCannotModifyAdmin:         http.StatusBadRequest,
	ErrEmptyCart:                 http.StatusBadRequest,
	ErrCartNotFound:              http.StatusNotFound,
	ErrCartItemNotFound:          http.StatusNotFound,
	ErrProductNotFound:           http.StatusNotFound,
	ErrInsufficientStock:         http.StatusBadRequest,
	ErrIncompleteShippingAddress: http.StatusBadRequest,
	ErrMissingBankDetails:        http.StatusBadRequest,
	ErrOrderNotFound:             http.StatusNotFound,
	ErrInvalidOrderStatus:        http.StatusBadRequest,
	ErrPromoIneligible:           http.StatusBadRequest,
	ErrPromoExpired:              http.StatusBadRequest,
	ErrPromoStillActive:          http.StatusBadRequest,
	ErrResetTokenInvalid:         http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                   "0000",
	ErrInternal:                  "0001",
	ErrNotFound:                  "0002",
	ErrInvalidRequest:            "0003",
	ErrUnauthorize:               "0004",
	ErrForbidden:                 "0005",
	ErrCredentialExists:          "0006",
	ErrInvalidPassword:           "0007",
	ErrAccountBlocked:            "0008",
	ErrCannotModifyAdmin:         "0009",
	ErrEmptyCart:                 "0010",
	ErrCartNotFound:              "0011",
	ErrCartItemNotFound:          "0012",
	ErrProductNotFound:           "0013",
	ErrInsufficientStock:         "0014",
	ErrIncompleteShippingAddress: "0015",
	ErrMissingBankDetails:        "0016",
	ErrOrderNotFound:             "0017",
	ErrInvalidOrderStatus:        "0018",
	ErrPromoIneligible:           "0019",
	ErrPromoExpired:              "0020",
	ErrPromoStillActive:          "0021",
	ErrResetTokenInvalid:         "0022",
}
