package transport

import (
	"encoding/json"
	"net/http"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	"github.com/cafelumiere/cafe-api/utils/errors"
	validatorx "github.com/cafelumiere/cafe-api/utils/validator"
)

type cartPayload struct {
	Cart *model.CartView `json:"cart"`
}

// AddToCart handler
// @Summary Add a product to the active cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddToCartRequest true "Add To Cart Request"
// @Success 200 {object} model.CartView
// @Failure 404 {object} errors.CustomError
// @Router /api/cart [post]
func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.AddToCart(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, cartPayload{Cart: res})
}

// GetCart handler
// @Summary Get the active cart for a user
// @Tags Cart
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} model.CartView
// @Router /api/cart/{userId} [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.GetCart(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, cartPayload{Cart: res})
}

// UpdateCartItem handler
// @Summary Update the quantity of a cart line
// @Tags Cart
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param productId path int true "Product ID"
// @Param request body model.UpdateCartItemRequest true "Update Cart Item Request"
// @Success 200 {object} model.CartView
// @Failure 404 {object} errors.CustomError
// @Router /api/cart/{userId}/item/{productId} [put]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.UpdateItemQuantity(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, cartPayload{Cart: res})
}

// RemoveCartItem handler
// @Summary Remove a line from the cart
// @Tags Cart
// @Produce json
// @Param userId path int true "User ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} model.CartView
// @Failure 404 {object} errors.CustomError
// @Router /api/cart/{userId}/item/{productId} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, cartPayload{Cart: res})
}

// ClearCart handler
// @Summary Remove every line from the active cart
// @Tags Cart
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]string
// @Router /api/cart/{userId} [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CartApp.ClearCart(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "cart cleared"})
}
