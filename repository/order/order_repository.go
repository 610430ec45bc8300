package order

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

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error

	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error)
	ListOrders(ctx context.Context) ([]model.OrderEntity, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]model.OrderEntity, error)
	DeleteOrder(ctx context.Context, orderID uint64) (bool, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = "id, user_id, subtotal, shipping, discount, total, ship_fullname, ship_phone, ship_address, payment_method, bank_account_name, bank_account_number, promo_code_used, status, order_date"

	insertOrderQuery = "INSERT INTO `order` (user_id, subtotal, shipping, discount, total, ship_fullname, ship_phone, ship_address, payment_method, bank_account_name, bank_account_number, promo_code_used, status, order_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())"

	insertOrderItemQuery = "INSERT INTO order_item (order_id, product_id, name, quantity, price_at_purchase) VALUES (?, ?, ?, ?, ?)"

	orderItemColumns = "id, order_id, product_id, name, quantity, price_at_purchase"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery,
		req.UserID, req.Subtotal, req.Shipping, req.Discount, req.Total,
		req.ShippingAddress.Fullname, req.ShippingAddress.Phone, req.ShippingAddress.Address,
		req.PaymentMethod, req.BankAccountName, req.BankAccountNumber, req.PromoCodeUsed, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, it.ProductID, it.Name, it.Quantity, it.PriceAtPurchase); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	q := "SELECT " + orderColumns + " FROM `order` WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, orderID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT "+orderItemColumns+" FROM order_item WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrderItems(rows)
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ?", status, orderID)
	return err
}

func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	q := "SELECT " + orderColumns + " FROM `order` WHERE id = ?"
	if err := r.conn.QueryRowxContext(ctx, q, orderID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT "+orderItemColumns+" FROM order_item WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrderItems(rows)
}

func (r *SQL) ListOrders(ctx context.Context) ([]model.OrderEntity, error) {
	q := "SELECT " + orderColumns + " FROM `order` ORDER BY order_date DESC"
	return r.listOrders(ctx, q)
}

func (r *SQL) ListOrdersByUser(ctx context.Context, userID uint64) ([]model.OrderEntity, error) {
	q := "SELECT " + orderColumns + " FROM `order` WHERE user_id = ? ORDER BY order_date DESC"
	return r.listOrders(ctx, q, userID)
}

func (r *SQL) DeleteOrder(ctx context.Context, orderID uint64) (bool, error) {
	if _, err := r.conn.ExecContext(ctx, "DELETE FROM order_item WHERE order_id = ?", orderID); err != nil {
		return false, err
	}
	res, err := r.conn.ExecContext(ctx, "DELETE FROM `order` WHERE id = ?", orderID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQL) listOrders(ctx context.Context, query string, args ...any) ([]model.OrderEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.OrderEntity, 0)
	for rows.Next() {
		var o model.OrderEntity
		if err := rows.StructScan(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func scanOrderItems(rows *sqlx.Rows) ([]model.OrderItemEntity, error) {
	items := make([]model.OrderItemEntity, 0)
	for rows.Next() {
		var it model.OrderItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
