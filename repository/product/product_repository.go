package product

import (
	"context"
	"database/sql"

	"github.com/cafelumiere/cafe-api/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductDetail, int64, error)
	ListByCategory(ctx context.Context, categoryID uint64, subcategory string) ([]model.ProductDetail, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
	Create(ctx context.Context, req *model.ProductEntity) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.ProductEntity) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)

	// Tx variants used by the checkout workflow. GetByIDTx locks the
	// product row; DecrementStockTx only succeeds while enough stock
	// remains, so a concurrent checkout that lost the race aborts.
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int) (bool, error)
	RestoreStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase = `SELECT p.id, p.name, p.description, p.price, p.category_id, c.name as category_name, p.subcategory, p.stock, p.image, p.status, p.date_added
FROM product p
JOIN category c ON p.category_id = c.id`

	countProductsQuery = `SELECT COUNT(*) FROM product`

	insertProductQuery = `INSERT INTO product (name, description, price, category_id, subcategory, stock, image, status, date_added)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateProductQuery = `UPDATE product SET name = ?, description = ?, price = ?, category_id = ?, subcategory = ?, stock = ?, image = ?, status = ? WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductDetail, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductDetail, 0)
	for rows.Next() {
		var it model.ProductDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) ListByCategory(ctx context.Context, categoryID uint64, subcategory string) ([]model.ProductDetail, error) {
	query := listProductsBase + " WHERE p.category_id = ?"
	args := []any{categoryID}
	if subcategory != "" {
		query += " AND p.subcategory = ?"
		args = append(args, subcategory)
	}
	query += " ORDER BY p.id"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductDetail, 0)
	for rows.Next() {
		var it model.ProductDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	query := listProductsBase + " WHERE p.id = ?"
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) Create(ctx context.Context, req *model.ProductEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, insertProductQuery,
		req.Name, req.Description, req.Price, req.CategoryID, req.Subcategory, req.Stock, req.Image, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.ProductEntity) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateProductQuery,
		req.Name, req.Description, req.Price, req.CategoryID, req.Subcategory, req.Stock, req.Image, req.Status, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM product WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	q := "SELECT id, name, description, price, category_id, subcategory, stock, image, status, date_added FROM product WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int) (bool, error) {
	res, err := tx.ExecContext(ctx, "UPDATE product SET stock = stock - ? WHERE id = ? AND stock >= ?", quantity, id, quantity)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) RestoreStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int) error {
	_, err := tx.ExecContext(ctx, "UPDATE product SET stock = stock + ? WHERE id = ?", quantity, id)
	return err
}
