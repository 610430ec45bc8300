package cart_test

import (
	"context"
	"errors"
	"testing"

	appcart "github.com/cafelumiere/cafe-api/application/cart"
	"github.com/cafelumiere/cafe-api/constant"
	cartmocks "github.com/cafelumiere/cafe-api/mocks/repository/cart"
	productmocks "github.com/cafelumiere/cafe-api/mocks/repository/product"
	"github.com/cafelumiere/cafe-api/model"
	cerr "github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCartApp_AddToCart(t *testing.T) {
	type fields struct {
		cartRepo    *cartmocks.CartRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		req *model.AddToCartRequest
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantItems int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: first item creates the cart",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AddToCartRequest{UserID: 1, ProductID: 7, Quantity: 2},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductDetail{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 5,
				}, nil).Once()

				f.cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(nil, nil).Once()
				f.cartRepo.On("CreateCart", mock.Anything, uint64(1)).Return(uint64(10), nil).Once()
				f.cartRepo.On("GetItem", mock.Anything, uint64(10), uint64(7)).Return(nil, nil).Once()
				f.cartRepo.On("InsertItem", mock.Anything, &model.CartItemEntity{
					CartID:    10,
					ProductID: 7,
					Quantity:  2,
					Subtotal:  200,
				}).Return(nil).Once()

				f.cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItemDetails", mock.Anything, uint64(10)).Return([]model.CartItemDetail{
					{ProductID: 7, Name: "Latte Blend", Price: 100, Quantity: 2, Subtotal: 200},
				}, nil).Once()
			},
			wantItems: 1,
		},
		{
			name: "success: existing line increments quantity",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AddToCartRequest{UserID: 1, ProductID: 7, Quantity: 1},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductDetail{
					ID: 7, Name: "Latte Blend", Price: 100, Stock: 5,
				}, nil).Once()

				f.cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Twice()
				f.cartRepo.On("GetItem", mock.Anything, uint64(10), uint64(7)).Return(&model.CartItemEntity{
					CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200,
				}, nil).Once()
				f.cartRepo.On("UpdateItem", mock.Anything, uint64(10), uint64(7), 3, float64(300)).Return(nil).Once()

				f.cartRepo.On("GetItemDetails", mock.Anything, uint64(10)).Return([]model.CartItemDetail{
					{ProductID: 7, Name: "Latte Blend", Price: 100, Quantity: 3, Subtotal: 300},
				}, nil).Once()
			},
			wantItems: 1,
		},
		{
			name: "error: unknown product",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AddToCartRequest{UserID: 1, ProductID: 99, Quantity: 1},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(tt.fields.cartRepo, tt.fields.productRepo)

			got, err := app.AddToCart(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddToCart() error = %v, wantErr %v", err, tt.wantErr)
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

			if len(got.Items) != tt.wantItems {
				t.Fatalf("AddToCart() items = %d, want %d", len(got.Items), tt.wantItems)
			}
		})
	}
}

func TestCartApp_UpdateItemQuantity(t *testing.T) {
	type fields struct {
		cartRepo    *cartmocks.CartRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx       context.Context
		userID    uint64
		productID uint64
		quantity  int
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
			name: "success: subtotal recomputed from live price",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: 1, productID: 7, quantity: 4},
			mockCall: func(f fields) {
				f.cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Twice()
				f.cartRepo.On("GetItem", mock.Anything, uint64(10), uint64(7)).Return(&model.CartItemEntity{
					CartID: 10, ProductID: 7, Quantity: 2, Subtotal: 200,
				}, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductDetail{
					ID: 7, Name: "Latte Blend", Price: 120, Stock: 5,
				}, nil).Once()
				f.cartRepo.On("UpdateItem", mock.Anything, uint64(10), uint64(7), 4, float64(480)).Return(nil).Once()
				f.cartRepo.On("GetItemDetails", mock.Anything, uint64(10)).Return([]model.CartItemDetail{
					{ProductID: 7, Name: "Latte Blend", Price: 120, Quantity: 4, Subtotal: 480},
				}, nil).Once()
			},
		},
		{
			name: "error: no active cart",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: 1, productID: 7, quantity: 4},
			mockCall: func(f fields) {
				f.cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCartNotFound,
		},
		{
			name: "error: product not in cart",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{ctx: context.Background(), userID: 1, productID: 7, quantity: 4},
			mockCall: func(f fields) {
				f.cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(&model.CartEntity{
					ID: 10, UserID: 1, Status: constant.CartStatusActive,
				}, nil).Once()
				f.cartRepo.On("GetItem", mock.Anything, uint64(10), uint64(7)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCartItemNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(tt.fields.cartRepo, tt.fields.productRepo)

			_, err := app.UpdateItemQuantity(tt.args.ctx, tt.args.userID, tt.args.productID, tt.args.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateItemQuantity() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestCartApp_GetCart(t *testing.T) {
	t.Run("no active cart yields an empty view", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(nil, nil).Once()

		app := appcart.NewCartApp(cartRepo, productRepo)
		got, err := app.GetCart(context.Background(), 1)
		if err != nil {
			t.Fatalf("GetCart() error = %v", err)
		}
		if got == nil || len(got.Items) != 0 {
			t.Fatalf("GetCart() = %+v, want empty view", got)
		}
	})
}

func TestCartApp_ClearCart(t *testing.T) {
	t.Run("clearing a missing cart is a no-op", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(nil, nil).Once()

		app := appcart.NewCartApp(cartRepo, productRepo)
		if err := app.ClearCart(context.Background(), 1); err != nil {
			t.Fatalf("ClearCart() error = %v", err)
		}
	})

	t.Run("clears items of the active cart", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		productRepo := productmocks.NewProductRepository(t)
		cartRepo.On("GetActiveCart", mock.Anything, uint64(1)).Return(&model.CartEntity{
			ID: 10, UserID: 1, Status: constant.CartStatusActive,
		}, nil).Once()
		cartRepo.On("ClearItems", mock.Anything, uint64(10)).Return(nil).Once()

		app := appcart.NewCartApp(cartRepo, productRepo)
		if err := app.ClearCart(context.Background(), 1); err != nil {
			t.Fatalf("ClearCart() error = %v", err)
		}
	})
}
