package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcheckout "github.com/cafelumiere/cafe-api/application/checkout"
	"github.com/cafelumiere/cafe-api/cmd/config"
	"github.com/cafelumiere/cafe-api/constant"
	cartmocks "github.com/cafelumiere/cafe-api/mocks/repository/cart"
	ordermocks "github.com/cafelumiere/cafe-api/mocks/repository/order"
	productmocks "github.com/cafelumiere/cafe-api/mocks/repository/product"
	txmocks "github.com/cafelumiere/cafe-api/mocks/repository/tx"
	usermocks "github.com/cafelumiere/cafe-api/mocks/repository/user"
	"github.com/cafelumiere/cafe-api/model"
	cerr "github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// Note: checkout.go checks if publisher is nil before publishing events,
// so tests can pass a nil publisher without panicking.

func checkoutConfig() *config.Config {
	return &config.Config{
		Checkout: config.CheckoutConfig{
			ShippingFee:         50,
			PromoValidityWindow: 7 * 24 * time.Hour,
			PromoDiscountRate:   0.5,
		},
	}
}

func validShipping() model.ShippingAddress {
	return model.ShippingAddress{
		Fullname: "Jean Valjean",
		Phone:    "555-0100",
		Address:  "24601 Rue de la Paix",
	}
}

func TestCheckoutApp_PlaceOrder(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		cartRepo    *cartmocks.CartRepository
		productRepo *productmocks.ProductRepository
		orderRepo   *ordermocks.OrderRepository
		userRepo    *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.PlaceOrderRequest
	}
	tests := []struct {
		name         string
		fields       fields
		args         args
		mockCall     func(f fields)
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
		wantApplied  bool
		wantErr      bool
		errCode      constant.ErrorType
	}{
		{
			name: "success: cash on delivery, no promo",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID:     10,
					UserID: 1,
					Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(&model.ProductEntity{
					ID:    7,
					Name:  "Latte Blend",
					Price: 100,
					Stock: 5,
				}, nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
					return req.UserID == 1 &&
						req.Subtotal == 200 &&
						req.Shipping == 50 &&
						req.Discount == 0 &&
						req.Total == 250 &&
						req.Status == constant.OrderStatusPending
				})).Return(uint64(42), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(42), []model.OrderItemEntity{
					{ProductID: 7, Name: "Latte Blend", Quantity: 2, PriceAtPurchase: 100},
				}).Return(nil).Once()

				f.productRepo.On("DecrementStockTx", mock.Anything, tx, uint64(7), 2).Return(true, nil).Once()
				f.cartRepo.On("ResetCartTx", mock.Anything, tx, uint64(10)).Return(nil).Once()

				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
					ID:       1,
					Fullname: "Jean Valjean",
					Email:    "jean@example.com",
				}, nil).Once()
			},
			wantSubtotal: 200,
			wantDiscount: 0,
			wantTotal:    250,
			wantApplied:  false,
		},
		{
			name: "success: valid promo halves subtotal plus shipping",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
					PromoCode:       "CAFE-ABC123",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(&model.ProductEntity{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 5,
				}, nil).Once()

				code := "CAFE-ABC123"
				claimed := time.Now().Add(-24 * time.Hour)
				f.userRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(&model.UserEntity{
					ID:               1,
					PromoCode:        &code,
					PromoLastClaimed: &claimed,
				}, nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
					return req.Discount == 125 && req.Total == 125 &&
						req.PromoCodeUsed != nil && *req.PromoCodeUsed == "CAFE-ABC123"
				})).Return(uint64(43), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(43), mock.Anything).Return(nil).Once()

				f.productRepo.On("DecrementStockTx", mock.Anything, tx, uint64(7), 2).Return(true, nil).Once()
				f.cartRepo.On("ResetCartTx", mock.Anything, tx, uint64(10)).Return(nil).Once()
				f.userRepo.On("IncrementPromoUsageTx", mock.Anything, tx, uint64(1)).Return(nil).Once()

				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantSubtotal: 200,
			wantDiscount: 125,
			wantTotal:    125,
			wantApplied:  true,
		},
		{
			name: "success: expired promo is a silent no-op",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
					PromoCode:       "CAFE-ABC123",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(&model.ProductEntity{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 5,
				}, nil).Once()

				code := "CAFE-ABC123"
				claimed := time.Now().Add(-8 * 24 * time.Hour)
				f.userRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(&model.UserEntity{
					ID:               1,
					PromoCode:        &code,
					PromoLastClaimed: &claimed,
				}, nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
					return req.Discount == 0 && req.Total == 250 && req.PromoCodeUsed == nil
				})).Return(uint64(44), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(44), mock.Anything).Return(nil).Once()

				f.productRepo.On("DecrementStockTx", mock.Anything, tx, uint64(7), 2).Return(true, nil).Once()
				f.cartRepo.On("ResetCartTx", mock.Anything, tx, uint64(10)).Return(nil).Once()

				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantSubtotal: 200,
			wantDiscount: 0,
			wantTotal:    250,
			wantApplied:  false,
		},
		{
			name: "error: no active cart",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmptyCart,
		},
		{
			name: "error: active cart with no items",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmptyCart,
		},
		{
			name: "error: cart line references missing product",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 99, Quantity: 1, Subtotal: 40},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name: "error: insufficient stock leaves no writes behind",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(&model.ProductEntity{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 1,
				}, nil).Once()
				// no order insert, no decrement, no cart reset
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: incomplete shipping address",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:        1,
					PaymentMethod: string(constant.PaymentCashOnDelivery),
					ShippingAddress: model.ShippingAddress{
						Fullname: "Jean Valjean",
					},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(&model.ProductEntity{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 5,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrIncompleteShippingAddress,
		},
		{
			name: "error: bank transfer without bank details",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentBankTransfer),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(&model.ProductEntity{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 5,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrMissingBankDetails,
		},
		{
			name: "error: conditional decrement loses the race",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.cartRepo.On("GetActiveCartTx", mock.Anything, tx, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemsTx", mock.Anything, tx, uint64(10)).Return([]model.CartItemEntity{
					{CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200},
				}, nil).Once()

				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(&model.ProductEntity{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 5,
				}, nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(45), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(45), mock.Anything).Return(nil).Once()

				f.productRepo.On("DecrementStockTx", mock.Anything, tx, uint64(7), 2).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.PlaceOrderRequest{
					UserID:          1,
					PaymentMethod:   string(constant.PaymentCashOnDelivery),
					ShippingAddress: validShipping(),
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcheckout.NewCheckoutApp(tt.fields.config, tt.fields.txRepo, tt.fields.cartRepo, tt.fields.productRepo, tt.fields.orderRepo, tt.fields.userRepo, nil)

			got, err := app.PlaceOrder(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PlaceOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Order.Subtotal != tt.wantSubtotal {
				t.Fatalf("PlaceOrder() subtotal = %v, want %v", got.Order.Subtotal, tt.wantSubtotal)
			}
			if got.Order.Discount != tt.wantDiscount {
				t.Fatalf("PlaceOrder() discount = %v, want %v", got.Order.Discount, tt.wantDiscount)
			}
			if got.Order.Total != tt.wantTotal {
				t.Fatalf("PlaceOrder() total = %v, want %v", got.Order.Total, tt.wantTotal)
			}
			if got.DiscountApplied != tt.wantApplied {
				t.Fatalf("PlaceOrder() discountApplied = %v, want %v", got.DiscountApplied, tt.wantApplied)
			}
			if got.Order.Status != constant.OrderStatusPending {
				t.Fatalf("PlaceOrder() status = %v, want %v", got.Order.Status, constant.OrderStatusPending)
			}
		})
	}
}

func TestCheckoutApp_CancelOrder(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		cartRepo    *cartmocks.CartRepository
		productRepo *productmocks.ProductRepository
		orderRepo   *ordermocks.OrderRepository
		userRepo    *usermocks.UserRepository
	}
	type args struct {
		ctx     context.Context
		orderID uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cancel pending order restores stock",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 42,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(42)).Return(&model.OrderEntity{
					ID:     42,
					UserID: 1,
					Status: constant.OrderStatusPending,
				}, nil).Once()
				f.orderRepo.On("GetOrderItemsTx", mock.Anything, tx, uint64(42)).Return([]model.OrderItemEntity{
					{ProductID: 7, Name: "Latte Blend", Quantity: 2, PriceAtPurchase: 100},
				}, nil).Once()

				f.productRepo.On("RestoreStockTx", mock.Anything, tx, uint64(7), 2).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(42), constant.OrderStatusCancelled).Return(nil).Once()

				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: order not found",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 999,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderNotFound,
		},
		{
			name: "error: completed order cannot be cancelled",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 42,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(42)).Return(&model.OrderEntity{
					ID:     42,
					UserID: 1,
					Status: constant.OrderStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcheckout.NewCheckoutApp(tt.fields.config, tt.fields.txRepo, tt.fields.cartRepo, tt.fields.productRepo, tt.fields.orderRepo, tt.fields.userRepo, nil)

			got, err := app.CancelOrder(tt.args.ctx, tt.args.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != constant.OrderStatusCancelled {
				t.Fatalf("CancelOrder() status = %v, want %v", got.Status, constant.OrderStatusCancelled)
			}
			// the owning user id comes from the order row even when the
			// display-only user lookup returned nothing
			if got.UserID != 1 {
				t.Fatalf("CancelOrder() userID = %d, want 1", got.UserID)
			}
			if got.User != nil {
				t.Fatalf("CancelOrder() user = %+v, want nil", got.User)
			}
		})
	}
}

func TestCheckoutApp_SetOrderStatus(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		cartRepo    *cartmocks.CartRepository
		productRepo *productmocks.ProductRepository
		orderRepo   *ordermocks.OrderRepository
		userRepo    *usermocks.UserRepository
	}
	type args struct {
		ctx     context.Context
		orderID uint64
		status  constant.OrderStatus
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending to paid does not touch stock",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 42,
				status:  constant.OrderStatusPaid,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(42)).Return(&model.OrderEntity{
					ID:     42,
					UserID: 1,
					Status: constant.OrderStatusPending,
				}, nil).Once()
				f.orderRepo.On("GetOrderItemsTx", mock.Anything, tx, uint64(42)).Return([]model.OrderItemEntity{
					{ProductID: 7, Quantity: 2},
				}, nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(42), constant.OrderStatusPaid).Return(nil).Once()

				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: paid to cancelled restores stock",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 42,
				status:  constant.OrderStatusCancelled,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(42)).Return(&model.OrderEntity{
					ID:     42,
					UserID: 1,
					Status: constant.OrderStatusPaid,
				}, nil).Once()
				f.orderRepo.On("GetOrderItemsTx", mock.Anything, tx, uint64(42)).Return([]model.OrderItemEntity{
					{ProductID: 7, Quantity: 2},
				}, nil).Once()

				f.productRepo.On("RestoreStockTx", mock.Anything, tx, uint64(7), 2).Return(nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(42), constant.OrderStatusCancelled).Return(nil).Once()

				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: completed is terminal",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 42,
				status:  constant.OrderStatusPaid,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderDetailTx", mock.Anything, tx, uint64(42)).Return(&model.OrderEntity{
					ID:     42,
					UserID: 1,
					Status: constant.OrderStatusCompleted,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name: "error: unknown status string",
			fields: fields{
				config:      checkoutConfig(),
				txRepo:      txmocks.NewTxRepository(t),
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: 42,
				status:  constant.OrderStatus("Shipped"),
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcheckout.NewCheckoutApp(tt.fields.config, tt.fields.txRepo, tt.fields.cartRepo, tt.fields.productRepo, tt.fields.orderRepo, tt.fields.userRepo, nil)

			got, err := app.SetOrderStatus(tt.args.ctx, tt.args.orderID, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetOrderStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != tt.args.status {
				t.Fatalf("SetOrderStatus() status = %v, want %v", got.Status, tt.args.status)
			}
		})
	}
}
