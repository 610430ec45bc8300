package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	"github.com/cafelumiere/cafe-api/utils/errors"
	validatorx "github.com/cafelumiere/cafe-api/utils/validator"
	"github.com/gorilla/mux"
)

type productPayload struct {
	Product *model.ProductDetail `json:"product"`
}

type productsPayload struct {
	Products []model.ProductDetail `json:"products"`
}

type categoryPayload struct {
	Category *model.CategoryEntity `json:"category"`
}

type categoriesPayload struct {
	Categories []model.CategoryEntity `json:"categories"`
}

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param perPage query int false "Items per page"
// @Success 200 {object} model.ProductListResponse
// @Router /api/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProductsByCategory handler
// @Summary List products in a category
// @Tags Products
// @Produce json
// @Param categoryName path string true "Category name"
// @Param subcategory query string false "Subcategory filter"
// @Success 200 {array} model.ProductDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/products/category/{categoryName} [get]
func (s *RestHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryName := mux.Vars(r)["categoryName"]
	subcategory := r.URL.Query().Get("subcategory")

	res, err := s.ProductApp.ListByCategory(r.Context(), categoryName, subcategory)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, productsPayload{Products: res})
}

// GetProduct handler
// @Summary Get a product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, productPayload{Product: res})
}

// CreateProduct handler
// @Summary Create a product (admin)
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.ProductRequest true "Product Request"
// @Success 200 {object} model.ProductDetail
// @Failure 400 {object} errors.CustomError
// @Router /api/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, productPayload{Product: res})
}

// UpdateProduct handler
// @Summary Update a product (admin)
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ProductRequest true "Product Request"
// @Success 200 {object} model.ProductDetail
// @Failure 400 {object} errors.CustomError
// @Router /api/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, productPayload{Product: res})
}

// DeleteProduct handler
// @Summary Delete a product (admin)
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "product deleted"})
}

// ListCategories handler
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} model.CategoryEntity
// @Router /api/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, categoriesPayload{Categories: res})
}

// GetCategory handler
// @Summary Get a category by id
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} model.CategoryEntity
// @Failure 404 {object} errors.CustomError
// @Router /api/categories/{id} [get]
func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, categoryPayload{Category: res})
}

// CreateCategory handler
// @Summary Create a category (admin)
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body model.CategoryRequest true "Category Request"
// @Success 200 {object} model.CategoryEntity
// @Failure 400 {object} errors.CustomError
// @Router /api/categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, categoryPayload{Category: res})
}

// UpdateCategory handler
// @Summary Update a category (admin)
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body model.CategoryRequest true "Category Request"
// @Success 200 {object} model.CategoryEntity
// @Failure 400 {object} errors.CustomError
// @Router /api/categories/{id} [put]
func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, categoryPayload{Category: res})
}

// DeleteCategory handler
// @Summary Delete a category (admin)
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/categories/{id} [delete]
func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "category deleted"})
}
