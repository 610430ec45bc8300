package product_test

import (
	"context"
	"errors"
	"testing"

	appproduct "github.com/cafelumiere/cafe-api/application/product"
	"github.com/cafelumiere/cafe-api/constant"
	categorymocks "github.com/cafelumiere/cafe-api/mocks/repository/category"
	productmocks "github.com/cafelumiere/cafe-api/mocks/repository/product"
	"github.com/cafelumiere/cafe-api/model"
	cerr "github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductDetail{
			ID: 7, Name: "Latte Blend", Price: 100, CategoryName: "Beans",
		}, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		got, err := app.GetProduct(context.Background(), 7)
		if err != nil {
			t.Fatalf("GetProduct() error = %v", err)
		}
		if got.Name != "Latte Blend" {
			t.Fatalf("GetProduct() name = %s, want Latte Blend", got.Name)
		}
	})

	t.Run("error: unknown id", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		productRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		_, err := app.GetProduct(context.Background(), 99)
		assertErrCode(t, err, constant.ErrProductNotFound)
	})
}

func TestProductApp_ListProducts(t *testing.T) {
	t.Run("defaults page and perPage", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		productRepo.On("List", mock.Anything, 1, 10).Return([]model.ProductDetail{
			{ID: 7, Name: "Latte Blend"},
		}, int64(1), nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		got, err := app.ListProducts(context.Background(), 0, -5)
		if err != nil {
			t.Fatalf("ListProducts() error = %v", err)
		}
		if got.Page != 1 || got.PerPage != 10 || got.TotalCount != 1 {
			t.Fatalf("ListProducts() = %+v, want page=1 perPage=10 total=1", got)
		}
	})
}

func TestProductApp_ListByCategory(t *testing.T) {
	t.Run("success: with subcategory filter", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		categoryRepo.On("GetByName", mock.Anything, "beans").Return(&model.CategoryEntity{
			ID: 3, Name: "Beans",
		}, nil).Once()
		productRepo.On("ListByCategory", mock.Anything, uint64(3), "arabica").Return([]model.ProductDetail{
			{ID: 7, Name: "Latte Blend", CategoryID: 3},
		}, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		got, err := app.ListByCategory(context.Background(), "beans", "arabica")
		if err != nil {
			t.Fatalf("ListByCategory() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("ListByCategory() len = %d, want 1", len(got))
		}
	})

	t.Run("error: unknown category name", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		categoryRepo.On("GetByName", mock.Anything, "nope").Return(nil, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		_, err := app.ListByCategory(context.Background(), "nope", "")
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestProductApp_CreateProduct(t *testing.T) {
	t.Run("success: defaults status to available", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		categoryRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.CategoryEntity{
			ID: 3, Name: "Beans",
		}, nil).Once()
		productRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.ProductEntity) bool {
			return e.Name == "Latte Blend" && e.Status == constant.ProductStatusAvailable
		})).Return(uint64(7), nil).Once()
		productRepo.On("GetByID", mock.Anything, uint64(7)).Return(&model.ProductDetail{
			ID: 7, Name: "Latte Blend", CategoryID: 3, CategoryName: "Beans",
		}, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		got, err := app.CreateProduct(context.Background(), &model.ProductRequest{
			Name: "Latte Blend", Price: 100, CategoryID: 3, Stock: 5,
		})
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if got.ID != 7 {
			t.Fatalf("CreateProduct() id = %d, want 7", got.ID)
		}
	})

	t.Run("error: unknown category", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		categoryRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		_, err := app.CreateProduct(context.Background(), &model.ProductRequest{
			Name: "Latte Blend", Price: 100, CategoryID: 99,
		})
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestProductApp_DeleteProduct(t *testing.T) {
	t.Run("error: nothing deleted", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		productRepo.On("Delete", mock.Anything, uint64(99)).Return(false, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		err := app.DeleteProduct(context.Background(), 99)
		assertErrCode(t, err, constant.ErrProductNotFound)
	})
}

func TestProductApp_Categories(t *testing.T) {
	t.Run("create assigns the new id", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CategoryEntity) bool {
			return e.Name == "Beans"
		})).Return(uint64(3), nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		got, err := app.CreateCategory(context.Background(), &model.CategoryRequest{Name: "Beans"})
		if err != nil {
			t.Fatalf("CreateCategory() error = %v", err)
		}
		if got.ID != 3 {
			t.Fatalf("CreateCategory() id = %d, want 3", got.ID)
		}
	})

	t.Run("update on a missing category fails", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)

		categoryRepo.On("Update", mock.Anything, uint64(99), mock.Anything).Return(false, nil).Once()

		app := appproduct.NewProductApp(productRepo, categoryRepo)
		_, err := app.UpdateCategory(context.Background(), 99, &model.CategoryRequest{Name: "Beans"})
		assertErrCode(t, err, constant.ErrNotFound)
	})
}
