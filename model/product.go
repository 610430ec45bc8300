package model

import (
	"time"

	"github.com/cafelumiere/cafe-api/constant"
)

// ProductEntity represents the product table entity
type ProductEntity struct {
	ID          uint64                 `db:"id" json:"id"`
	Name        string                 `db:"name" json:"name"`
	Description string                 `db:"description" json:"description"`
	Price       float64                `db:"price" json:"price"`
	CategoryID  uint64                 `db:"category_id" json:"category_id"`
	Subcategory string                 `db:"subcategory" json:"subcategory,omitempty"`
	Stock       int64                  `db:"stock" json:"stock"`
	Image       string                 `db:"image" json:"image,omitempty"`
	Status      constant.ProductStatus `db:"status" json:"status"`
	DateAdded   time.Time              `db:"date_added" json:"date_added"`
}

// ProductDetail is a product row joined with its category name
type ProductDetail struct {
	ID           uint64                 `db:"id" json:"id"`
	Name         string                 `db:"name" json:"name"`
	Description  string                 `db:"description" json:"description"`
	Price        float64                `db:"price" json:"price"`
	CategoryID   uint64                 `db:"category_id" json:"category_id"`
	CategoryName string                 `db:"category_name" json:"category_name"`
	Subcategory  string                 `db:"subcategory" json:"subcategory,omitempty"`
	Stock        int64                  `db:"stock" json:"stock"`
	Image        string                 `db:"image" json:"image,omitempty"`
	Status       constant.ProductStatus `db:"status" json:"status"`
	DateAdded    time.Time              `db:"date_added" json:"date_added"`
}

type ProductListResponse struct {
	Items      []ProductDetail `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}

// ProductRequest covers admin create/update
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  uint64  `json:"category_id" validate:"required"`
	Subcategory string  `json:"subcategory"`
	Stock       int64   `json:"stock" validate:"gte=0"`
	Image       string  `json:"image"`
	Status      string  `json:"status" validate:"omitempty,oneof=available unavailable"`
}

// CategoryEntity represents the category table entity
type CategoryEntity struct {
	ID            uint64 `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Description   string `db:"description" json:"description,omitempty"`
	Subcategories string `db:"subcategories" json:"subcategories,omitempty"`
}

type CategoryRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Subcategories string `json:"subcategories"`
}
