package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateUserRequest) (bool, error)
	UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (bool, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.UserStatus) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	Delete(ctx context.Context, id uint64) (bool, error)

	SetPromoCode(ctx context.Context, id uint64, code string, claimedAt time.Time) error

	// Tx variants used inside the checkout transaction: the user row is
	// locked while promo eligibility is checked and usage incremented.
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error)
	IncrementPromoUsageTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns = `id, fullname, username, email, password_hash, picture, role, phone, address, birthday, status, promo_code, promo_last_claimed, promo_times_used, created_at, updated_at`

	insertUserQuery = `INSERT INTO user (fullname, username, email, password_hash, role, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`

	getUserBase = `SELECT ` + userColumns + ` FROM user WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Fullname, data.Username, data.Email, data.PasswordHash, data.Role, data.Status)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getUserBase+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var u model.UserEntity
		if err := rows.StructScan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateUserRequest) (bool, error) {
	res, err := s.conn.ExecContext(ctx,
		"UPDATE user SET fullname = ?, username = ?, email = ?, role = ?, phone = ?, address = ?, birthday = ?, status = ?, updated_at = NOW() WHERE id = ?",
		req.Fullname, req.Username, req.Email, req.Role, req.Phone, req.Address, req.Birthday, req.Status, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (bool, error) {
	res, err := s.conn.ExecContext(ctx,
		"UPDATE user SET fullname = ?, phone = ?, address = ?, updated_at = NOW() WHERE id = ?",
		req.Fullname, req.Phone, req.Address, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.UserStatus) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE user SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	return err
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE user SET password_hash = ?, updated_at = NOW() WHERE id = ?", passwordHash, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM user WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetPromoCode installs a freshly claimed code and resets its usage counter.
func (s *SQL) SetPromoCode(ctx context.Context, id uint64, code string, claimedAt time.Time) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE user SET promo_code = ?, promo_last_claimed = ?, promo_times_used = 0, updated_at = NOW() WHERE id = ?",
		code, claimedAt, id)
	return err
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error) {
	var entity model.UserEntity
	q := getUserBase + " AND id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) IncrementPromoUsageTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE user SET promo_times_used = promo_times_used + 1 WHERE id = ?", id)
	return err
}
