package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/cafelumiere/cafe-api/cmd/config"
	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	cartrepo "github.com/cafelumiere/cafe-api/repository/cart"
	orderrepo "github.com/cafelumiere/cafe-api/repository/order"
	productrepo "github.com/cafelumiere/cafe-api/repository/product"
	txrepo "github.com/cafelumiere/cafe-api/repository/tx"
	userrepo "github.com/cafelumiere/cafe-api/repository/user"
	"github.com/cafelumiere/cafe-api/thirdparty/rabbitmq"
	"github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/cafelumiere/cafe-api/utils/logger"
	"go.uber.org/zap"
)

// CheckoutApp converts an active cart into an immutable order and owns
// every order status change thereafter.
type CheckoutApp interface {
	PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.PlaceOrderResponse, error)
	CancelOrder(ctx context.Context, orderID uint64) (*model.OrderView, error)
	SetOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) (*model.OrderView, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderView, error)
	ListOrders(ctx context.Context) ([]model.OrderView, error)
	ListUserOrders(ctx context.Context, userID uint64) ([]model.OrderView, error)
	DeleteOrder(ctx context.Context, orderID uint64) error
}

type checkoutAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	cartRepo    cartrepo.CartRepository
	productRepo productrepo.ProductRepository
	orderRepo   orderrepo.OrderRepository
	userRepo    userrepo.UserRepository
	publisher   *rabbitmq.Publisher
}

func NewCheckoutApp(config *config.Config, txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository, productRepo productrepo.ProductRepository, orderRepo orderrepo.OrderRepository, userRepo userrepo.UserRepository, publisher *rabbitmq.Publisher) CheckoutApp {
	return &checkoutAppImpl{
		config:      config,
		txRepo:      txRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// PlaceOrder runs the whole checkout as one transaction: every cart line is
// validated against locked product rows before any write happens, then the
// order snapshot, conditional stock decrements, cart reset and promo usage
// all commit or roll back together.
func (s *checkoutAppImpl) PlaceOrder(ctx context.Context, req *model.PlaceOrderRequest) (*model.PlaceOrderResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PlaceOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// load the active cart
	cart, err := s.cartRepo.GetActiveCartTx(ctx, tx, req.UserID)
	if err != nil {
		logger.Error("[PlaceOrder] get active cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}
	cartItems, err := s.cartRepo.GetItemsTx(ctx, tx, cart.ID)
	if err != nil {
		logger.Error("[PlaceOrder] get cart items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(cartItems) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	// validate every line against live, locked stock before any mutation
	var subtotal float64
	orderItems := make([]model.OrderItemEntity, 0, len(cartItems))
	for _, item := range cartItems {
		product, err := s.productRepo.GetByIDTx(ctx, tx, item.ProductID)
		if err != nil {
			logger.Error("[PlaceOrder] get product", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if product == nil {
			return nil, errors.SetCustomErrorWithMessage(constant.ErrProductNotFound,
				fmt.Sprintf("product %d not found", item.ProductID))
		}
		if product.Stock < int64(item.Quantity) {
			logger.Info("[PlaceOrder] insufficient stock",
				zap.Uint64("product_id", product.ID), zap.Int("need", item.Quantity), zap.Int64("available", product.Stock))
			return nil, errors.SetCustomErrorWithMessage(constant.ErrInsufficientStock,
				fmt.Sprintf("insufficient stock for %s, available: %d", product.Name, product.Stock))
		}

		lineSubtotal := item.Subtotal
		if s.config.Checkout.RecomputeSubtotals {
			lineSubtotal = product.Price * float64(item.Quantity)
		}
		subtotal += lineSubtotal

		orderItems = append(orderItems, model.OrderItemEntity{
			ProductID:       product.ID,
			Name:            product.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
		})
	}

	if req.ShippingAddress.Fullname == "" || req.ShippingAddress.Phone == "" || req.ShippingAddress.Address == "" {
		return nil, errors.SetCustomError(constant.ErrIncompleteShippingAddress)
	}

	var bankAccountName, bankAccountNumber *string
	if constant.PaymentMethod(req.PaymentMethod) == constant.PaymentBankTransfer {
		if req.BankTransferDetails == nil || req.BankTransferDetails.AccountName == "" || req.BankTransferDetails.AccountNumber == "" {
			return nil, errors.SetCustomError(constant.ErrMissingBankDetails)
		}
		bankAccountName = &req.BankTransferDetails.AccountName
		bankAccountNumber = &req.BankTransferDetails.AccountNumber
	}

	shipping := s.config.Checkout.ShippingFee

	// A supplied promo that does not match or has expired is a silent
	// no-op: the order still goes through at full price.
	var discount float64
	var promoCodeUsed *string
	if req.PromoCode != "" {
		user, err := s.userRepo.GetByIDTx(ctx, tx, req.UserID)
		if err != nil {
			logger.Error("[PlaceOrder] get user", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if user != nil && s.promoEligible(user, req.PromoCode) {
			discount = (subtotal + shipping) * s.config.Checkout.PromoDiscountRate
			promoCodeUsed = &req.PromoCode
		}
	}

	total := subtotal + shipping - discount
	if total < 0 {
		total = 0
	}

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		UserID:            req.UserID,
		Subtotal:          subtotal,
		Shipping:          shipping,
		Discount:          discount,
		Total:             total,
		ShippingAddress:   req.ShippingAddress,
		PaymentMethod:     req.PaymentMethod,
		BankAccountName:   bankAccountName,
		BankAccountNumber: bankAccountNumber,
		PromoCodeUsed:     promoCodeUsed,
		Status:            constant.OrderStatusPending,
	})
	if err != nil {
		logger.Error("[PlaceOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, orderItems); err != nil {
		logger.Error("[PlaceOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// conditional decrements; a failed one means a concurrent order won
	// the race after our validation pass, so the whole checkout aborts
	for _, item := range orderItems {
		ok, err := s.productRepo.DecrementStockTx(ctx, tx, item.ProductID, item.Quantity)
		if err != nil {
			logger.Error("[PlaceOrder] decrement stock", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !ok {
			return nil, errors.SetCustomErrorWithMessage(constant.ErrInsufficientStock,
				fmt.Sprintf("insufficient stock for %s", item.Name))
		}
	}

	if err := s.cartRepo.ResetCartTx(ctx, tx, cart.ID); err != nil {
		logger.Error("[PlaceOrder] reset cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if promoCodeUsed != nil {
		if err := s.userRepo.IncrementPromoUsageTx(ctx, tx, req.UserID); err != nil {
			logger.Error("[PlaceOrder] increment promo usage", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[PlaceOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderEventMessage{
			OrderID:    orderID,
			UserID:     req.UserID,
			Total:      total,
			Status:     string(constant.OrderStatusPending),
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishOrderPlaced(msg); err != nil {
			logger.Error("[PlaceOrder] publish order placed", zap.String("error", err.Error()))
		}
	}

	view := &model.OrderView{
		ID:              orderID,
		UserID:          req.UserID,
		Items:           orderItems,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Discount:        discount,
		Total:           total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          constant.OrderStatusPending,
		OrderDate:       time.Now(),
	}
	if bankAccountName != nil {
		view.BankTransferDetails = req.BankTransferDetails
	}
	if promoCodeUsed != nil {
		view.PromoCodeUsed = *promoCodeUsed
	}
	s.populateUser(ctx, view, req.UserID)

	return &model.PlaceOrderResponse{
		Order:           view,
		DiscountApplied: discount > 0,
	}, nil
}

// CancelOrder reverses a pending order: each line's stock is restored and
// the order moves to Cancelled. This and SetOrderStatus(..., Cancelled)
// are the only stock-restoring paths.
func (s *checkoutAppImpl) CancelOrder(ctx context.Context, orderID uint64) (*model.OrderView, error) {
	view, err := s.transitionOrder(ctx, orderID, constant.OrderStatusCancelled, true)
	if err != nil {
		return nil, err
	}
	s.publishCancelled(view)
	return view, nil
}

// SetOrderStatus applies an admin-driven status change through the
// transition table. Moving into Cancelled restores stock exactly like
// CancelOrder so the two paths cannot drift apart.
func (s *checkoutAppImpl) SetOrderStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) (*model.OrderView, error) {
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	view, err := s.transitionOrder(ctx, orderID, status, false)
	if err != nil {
		return nil, err
	}
	if status == constant.OrderStatusCancelled {
		s.publishCancelled(view)
	}
	return view, nil
}

// transitionOrder performs a status transition in one transaction.
// requirePending narrows the gate to the dedicated cancel endpoint's
// Pending-only contract; otherwise the transition table decides.
func (s *checkoutAppImpl) transitionOrder(ctx context.Context, orderID uint64, next constant.OrderStatus, requirePending bool) (*model.OrderView, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[transitionOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[transitionOrder] get order detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}

	if requirePending && order.Status != constant.OrderStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[transitionOrder] get order items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if next == constant.OrderStatusCancelled {
		for _, item := range items {
			if err := s.productRepo.RestoreStockTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
				logger.Error("[transitionOrder] restore stock", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, next); err != nil {
		logger.Error("[transitionOrder] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[transitionOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	order.Status = next
	view := buildOrderView(order, items)
	s.populateUser(ctx, view, order.UserID)
	return view, nil
}

func (s *checkoutAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderView, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}
	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	view := buildOrderView(order, items)
	s.populateUser(ctx, view, order.UserID)
	return view, nil
}

func (s *checkoutAppImpl) ListOrders(ctx context.Context) ([]model.OrderView, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.buildOrderViews(ctx, orders)
}

func (s *checkoutAppImpl) ListUserOrders(ctx context.Context, userID uint64) ([]model.OrderView, error) {
	orders, err := s.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListUserOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.buildOrderViews(ctx, orders)
}

func (s *checkoutAppImpl) DeleteOrder(ctx context.Context, orderID uint64) error {
	ok, err := s.orderRepo.DeleteOrder(ctx, orderID)
	if err != nil {
		logger.Error("[DeleteOrder] delete order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrOrderNotFound)
	}
	return nil
}

func (s *checkoutAppImpl) buildOrderViews(ctx context.Context, orders []model.OrderEntity) ([]model.OrderView, error) {
	views := make([]model.OrderView, 0, len(orders))
	for i := range orders {
		items, err := s.orderRepo.GetOrderItems(ctx, orders[i].ID)
		if err != nil {
			logger.Error("[buildOrderViews] get order items", zap.Uint64("order_id", orders[i].ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		view := buildOrderView(&orders[i], items)
		s.populateUser(ctx, view, orders[i].UserID)
		views = append(views, *view)
	}
	return views, nil
}

func (s *checkoutAppImpl) promoEligible(user *model.UserEntity, code string) bool {
	if user.PromoCode == nil || user.PromoLastClaimed == nil {
		return false
	}
	if *user.PromoCode != code {
		return false
	}
	return time.Since(*user.PromoLastClaimed) < s.config.Checkout.PromoValidityWindow
}

// populateUser attaches the user summary for display. A lookup failure is
// logged but never fails the order flow itself.
func (s *checkoutAppImpl) populateUser(ctx context.Context, view *model.OrderView, userID uint64) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Warn("[populateUser] get user", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return
	}
	if user == nil {
		return
	}
	view.User = &model.OrderUser{
		ID:       user.ID,
		Fullname: user.Fullname,
		Email:    user.Email,
	}
}

func (s *checkoutAppImpl) publishCancelled(view *model.OrderView) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.OrderEventMessage{
		OrderID:    view.ID,
		UserID:     view.UserID,
		Total:      view.Total,
		Status:     string(view.Status),
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishOrderCancelled(msg); err != nil {
		logger.Error("[publishCancelled] publish order cancelled", zap.String("error", err.Error()))
	}
}

func buildOrderView(order *model.OrderEntity, items []model.OrderItemEntity) *model.OrderView {
	view := &model.OrderView{
		ID:       order.ID,
		UserID:   order.UserID,
		Items:    items,
		Subtotal: order.Subtotal,
		Shipping: order.Shipping,
		Discount: order.Discount,
		Total:    order.Total,
		ShippingAddress: model.ShippingAddress{
			Fullname: order.ShipFullname,
			Phone:    order.ShipPhone,
			Address:  order.ShipAddress,
		},
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		OrderDate:     order.OrderDate,
	}
	if order.BankAccountName != nil && order.BankAccountNumber != nil {
		view.BankTransferDetails = &model.BankTransferDetails{
			AccountName:   *order.BankAccountName,
			AccountNumber: *order.BankAccountNumber,
		}
	}
	if order.PromoCodeUsed != nil {
		view.PromoCodeUsed = *order.PromoCodeUsed
	}
	return view
}
