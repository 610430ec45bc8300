package product

import (
	"context"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	categoryrepo "github.com/cafelumiere/cafe-api/repository/category"
	productrepo "github.com/cafelumiere/cafe-api/repository/product"
	"github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/cafelumiere/cafe-api/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error)
	ListByCategory(ctx context.Context, categoryName, subcategory string) ([]model.ProductDetail, error)
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.ProductDetail, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.ProductRequest) (*model.ProductDetail, error)
	DeleteProduct(ctx context.Context, id uint64) error

	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
	GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error)
	UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.CategoryEntity, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	productRepo  productrepo.ProductRepository
	categoryRepo categoryrepo.CategoryRepository
}

func NewProductApp(productRepo productrepo.ProductRepository, categoryRepo categoryrepo.CategoryRepository) ProductApp {
	return &productAppImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	return result, nil
}

// ListByCategory matches the category by name case-insensitively; the
// subcategory filter is optional.
func (s *productAppImpl) ListByCategory(ctx context.Context, categoryName, subcategory string) ([]model.ProductDetail, error) {
	cat, err := s.categoryRepo.GetByName(ctx, categoryName)
	if err != nil {
		logger.Error("[ListByCategory] error categoryRepo.GetByName", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cat == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.productRepo.ListByCategory(ctx, cat.ID, subcategory)
	if err != nil {
		logger.Error("[ListByCategory] error productRepo.ListByCategory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.ProductDetail, error) {
	cat, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		logger.Error("[CreateProduct] error categoryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cat == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := productEntityFromRequest(req)
	id, err := s.productRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] error productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.GetProduct(ctx, id)
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.ProductRequest) (*model.ProductDetail, error) {
	entity := productEntityFromRequest(req)
	ok, err := s.productRepo.Update(ctx, id, entity)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	return s.GetProduct(ctx, id)
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	ok, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrProductNotFound)
	}
	return nil
}

func (s *productAppImpl) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	items, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCategories] error categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	cat, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCategory] error categoryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cat == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return cat, nil
}

func (s *productAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error) {
	entity := &model.CategoryEntity{
		Name:          req.Name,
		Description:   req.Description,
		Subcategories: req.Subcategories,
	}
	id, err := s.categoryRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateCategory] error categoryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.ID = id
	return entity, nil
}

func (s *productAppImpl) UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.CategoryEntity, error) {
	entity := &model.CategoryEntity{
		Name:          req.Name,
		Description:   req.Description,
		Subcategories: req.Subcategories,
	}
	ok, err := s.categoryRepo.Update(ctx, id, entity)
	if err != nil {
		logger.Error("[UpdateCategory] error categoryRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	entity.ID = id
	return entity, nil
}

func (s *productAppImpl) DeleteCategory(ctx context.Context, id uint64) error {
	ok, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteCategory] error categoryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func productEntityFromRequest(req *model.ProductRequest) *model.ProductEntity {
	status := constant.ProductStatus(req.Status)
	if status == "" {
		status = constant.ProductStatusAvailable
	}
	return &model.ProductEntity{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Subcategory: req.Subcategory,
		Stock:       req.Stock,
		Image:       req.Image,
		Status:      status,
	}
}
