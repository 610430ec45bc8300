package cart

import (
	"context"
	"database/sql"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CartRepository interface {
	GetActiveCart(ctx context.Context, userID uint64) (*model.CartEntity, error)
	CreateCart(ctx context.Context, userID uint64) (uint64, error)
	GetItem(ctx context.Context, cartID, productID uint64) (*model.CartItemEntity, error)
	InsertItem(ctx context.Context, item *model.CartItemEntity) error
	UpdateItem(ctx context.Context, cartID, productID uint64, quantity int, subtotal float64) error
	DeleteItem(ctx context.Context, cartID, productID uint64) (bool, error)
	ClearItems(ctx context.Context, cartID uint64) error
	GetItemDetails(ctx context.Context, cartID uint64) ([]model.CartItemDetail, error)

	// Tx variants used by checkout. GetActiveCartTx locks the cart row so
	// two concurrent checkouts on the same cart serialize.
	GetActiveCartTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (*model.CartEntity, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartItemEntity, error)
	ResetCartTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	getActiveCartQuery = `SELECT id, user_id, status, created_at FROM cart WHERE user_id = ? AND status = ?`

	getItemDetailsQuery = `SELECT ci.product_id, p.name, p.price, p.image, p.stock, ci.quantity, ci.subtotal
FROM cart_item ci
JOIN product p ON ci.product_id = p.id
WHERE ci.cart_id = ?
ORDER BY ci.id`
)

func (s *SQL) GetActiveCart(ctx context.Context, userID uint64) (*model.CartEntity, error) {
	var entity model.CartEntity
	if err := s.conn.QueryRowxContext(ctx, getActiveCartQuery, userID, constant.CartStatusActive).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateCart(ctx context.Context, userID uint64) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, "INSERT INTO cart (user_id, status, created_at) VALUES (?, ?, NOW())",
		userID, constant.CartStatusActive)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) GetItem(ctx context.Context, cartID, productID uint64) (*model.CartItemEntity, error) {
	var item model.CartItemEntity
	q := "SELECT id, cart_id, product_id, quantity, subtotal FROM cart_item WHERE cart_id = ? AND product_id = ?"
	if err := s.conn.QueryRowxContext(ctx, q, cartID, productID).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) InsertItem(ctx context.Context, item *model.CartItemEntity) error {
	_, err := s.conn.ExecContext(ctx, "INSERT INTO cart_item (cart_id, product_id, quantity, subtotal) VALUES (?, ?, ?, ?)",
		item.CartID, item.ProductID, item.Quantity, item.Subtotal)
	return err
}

func (s *SQL) UpdateItem(ctx context.Context, cartID, productID uint64, quantity int, subtotal float64) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE cart_item SET quantity = ?, subtotal = ? WHERE cart_id = ? AND product_id = ?",
		quantity, subtotal, cartID, productID)
	return err
}

func (s *SQL) DeleteItem(ctx context.Context, cartID, productID uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM cart_item WHERE cart_id = ? AND product_id = ?", cartID, productID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) ClearItems(ctx context.Context, cartID uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM cart_item WHERE cart_id = ?", cartID)
	return err
}

func (s *SQL) GetItemDetails(ctx context.Context, cartID uint64) ([]model.CartItemDetail, error) {
	rows, err := s.conn.QueryxContext(ctx, getItemDetailsQuery, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CartItemDetail, 0)
	for rows.Next() {
		var it model.CartItemDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) GetActiveCartTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (*model.CartEntity, error) {
	var entity model.CartEntity
	if err := tx.QueryRowxContext(ctx, getActiveCartQuery+" FOR UPDATE", userID, constant.CartStatusActive).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartItemEntity, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, cart_id, product_id, quantity, subtotal FROM cart_item WHERE cart_id = ? ORDER BY id", cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CartItemEntity, 0)
	for rows.Next() {
		var it model.CartItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ResetCartTx empties the cart and marks it completed. The next add-to-cart
// call lazily creates a fresh active cart for the user.
func (s *SQL) ResetCartTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM cart_item WHERE cart_id = ?", cartID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "UPDATE cart SET status = ? WHERE id = ?", constant.CartStatusCompleted, cartID)
	return err
}
