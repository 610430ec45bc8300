package transport

import (
	"encoding/json"
	"net/http"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	"github.com/cafelumiere/cafe-api/utils/errors"
	validatorx "github.com/cafelumiere/cafe-api/utils/validator"
)

type orderPayload struct {
	Order *model.OrderView `json:"order"`
}

type ordersPayload struct {
	Orders []model.OrderView `json:"orders"`
}

// PlaceOrder handler
// @Summary Place an order from the active cart
// @Description Converts the user's active cart into a pending order, validating stock and applying an optional promo code
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.PlaceOrderRequest true "Place Order Request"
// @Success 200 {object} model.PlaceOrderResponse
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /api/orders [post]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.PlaceOrder(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListOrders handler
// @Summary List all orders, newest first (admin)
// @Tags Orders
// @Produce json
// @Success 200 {array} model.OrderView
// @Failure 403 {object} errors.CustomError
// @Router /api/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.ListOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, ordersPayload{Orders: res})
}

// ListUserOrders handler
// @Summary List a user's orders, newest first
// @Tags Orders
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.OrderView
// @Router /api/orders/user/{userId} [get]
func (s *RestHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.ListUserOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, ordersPayload{Orders: res})
}

// GetOrder handler
// @Summary Get an order by id
// @Tags Orders
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderView
// @Failure 404 {object} errors.CustomError
// @Router /api/orders/{orderId} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, orderPayload{Order: res})
}

// UpdateOrderStatus handler
// @Summary Update an order's status (admin)
// @Description Allowed transitions: Pending to Paid/Completed/Cancelled, Paid to Completed/Cancelled. Cancelling restores stock.
// @Tags Orders
// @Accept json
// @Produce json
// @Param orderId path int true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "Status Request"
// @Success 200 {object} model.OrderView
// @Failure 400 {object} errors.CustomError
// @Router /api/orders/{orderId}/status [put]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.SetOrderStatus(r.Context(), orderID, constant.OrderStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, orderPayload{Order: res})
}

// CancelOrder handler
// @Summary Cancel a pending order
// @Description Only pending orders may be cancelled by the customer; stock is restored
// @Tags Orders
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderView
// @Failure 400 {object} errors.CustomError
// @Router /api/orders/{orderId}/cancel [put]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.CancelOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, orderPayload{Order: res})
}

// DeleteOrder handler
// @Summary Delete an order (admin)
// @Tags Orders
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/orders/{orderId} [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CheckoutApp.DeleteOrder(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "order deleted"})
}
