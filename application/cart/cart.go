package cart

import (
	"context"
	"fmt"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	cartrepo "github.com/cafelumiere/cafe-api/repository/cart"
	productrepo "github.com/cafelumiere/cafe-api/repository/product"
	"github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/cafelumiere/cafe-api/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	AddToCart(ctx context.Context, req *model.AddToCartRequest) (*model.CartView, error)
	UpdateItemQuantity(ctx context.Context, userID, productID uint64, quantity int) (*model.CartView, error)
	RemoveItem(ctx context.Context, userID, productID uint64) (*model.CartView, error)
	ClearCart(ctx context.Context, userID uint64) error
	GetCart(ctx context.Context, userID uint64) (*model.CartView, error)
}

type cartAppImpl struct {
	cartRepo    cartrepo.CartRepository
	productRepo productrepo.ProductRepository
}

func NewCartApp(cartRepo cartrepo.CartRepository, productRepo productrepo.ProductRepository) CartApp {
	return &cartAppImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart lazily creates the user's active cart on first use. Stock is
// deliberately not checked here: carts may over-commit and only checkout
// enforces availability.
func (s *cartAppImpl) AddToCart(ctx context.Context, req *model.AddToCartRequest) (*model.CartView, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[AddToCart] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrProductNotFound,
			fmt.Sprintf("product %d not found", req.ProductID))
	}

	cart, err := s.cartRepo.GetActiveCart(ctx, req.UserID)
	if err != nil {
		logger.Error("[AddToCart] get active cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var cartID uint64
	if cart == nil {
		cartID, err = s.cartRepo.CreateCart(ctx, req.UserID)
		if err != nil {
			logger.Error("[AddToCart] create cart", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		cartID = cart.ID
	}

	existing, err := s.cartRepo.GetItem(ctx, cartID, req.ProductID)
	if err != nil {
		logger.Error("[AddToCart] get cart item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existing != nil {
		quantity := existing.Quantity + req.Quantity
		subtotal := float64(quantity) * product.Price
		if err := s.cartRepo.UpdateItem(ctx, cartID, req.ProductID, quantity, subtotal); err != nil {
			logger.Error("[AddToCart] update cart item", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else {
		item := &model.CartItemEntity{
			CartID:    cartID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Subtotal:  float64(req.Quantity) * product.Price,
		}
		if err := s.cartRepo.InsertItem(ctx, item); err != nil {
			logger.Error("[AddToCart] insert cart item", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return s.cartView(ctx, req.UserID)
}

// UpdateItemQuantity recomputes the cached line subtotal from the current
// product price.
func (s *cartAppImpl) UpdateItemQuantity(ctx context.Context, userID, productID uint64, quantity int) (*model.CartView, error) {
	cart, err := s.cartRepo.GetActiveCart(ctx, userID)
	if err != nil {
		logger.Error("[UpdateItemQuantity] get active cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return nil, errors.SetCustomError(constant.ErrCartNotFound)
	}

	existing, err := s.cartRepo.GetItem(ctx, cart.ID, productID)
	if err != nil {
		logger.Error("[UpdateItemQuantity] get cart item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrCartItemNotFound)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[UpdateItemQuantity] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrProductNotFound,
			fmt.Sprintf("product %d not found", productID))
	}

	subtotal := product.Price * float64(quantity)
	if err := s.cartRepo.UpdateItem(ctx, cart.ID, productID, quantity, subtotal); err != nil {
		logger.Error("[UpdateItemQuantity] update cart item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.cartView(ctx, userID)
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, userID, productID uint64) (*model.CartView, error) {
	cart, err := s.cartRepo.GetActiveCart(ctx, userID)
	if err != nil {
		logger.Error("[RemoveItem] get active cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return nil, errors.SetCustomError(constant.ErrCartNotFound)
	}

	if _, err := s.cartRepo.DeleteItem(ctx, cart.ID, productID); err != nil {
		logger.Error("[RemoveItem] delete cart item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.cartView(ctx, userID)
}

func (s *cartAppImpl) ClearCart(ctx context.Context, userID uint64) error {
	cart, err := s.cartRepo.GetActiveCart(ctx, userID)
	if err != nil {
		logger.Error("[ClearCart] get active cart", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		// nothing to clear
		return nil
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		logger.Error("[ClearCart] clear items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// GetCart returns an empty view when the user has no active cart, mirroring
// storefront expectations.
func (s *cartAppImpl) GetCart(ctx context.Context, userID uint64) (*model.CartView, error) {
	cart, err := s.cartRepo.GetActiveCart(ctx, userID)
	if err != nil {
		logger.Error("[GetCart] get active cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return &model.CartView{Items: []model.CartItemDetail{}}, nil
	}

	items, err := s.cartRepo.GetItemDetails(ctx, cart.ID)
	if err != nil {
		logger.Error("[GetCart] get item details", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CartView{
		ID:     cart.ID,
		UserID: cart.UserID,
		Status: cart.Status,
		Items:  items,
	}, nil
}

func (s *cartAppImpl) cartView(ctx context.Context, userID uint64) (*model.CartView, error) {
	view, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view, nil
}
