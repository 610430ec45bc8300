package category

import (
	"context"
	"database/sql"

	"github.com/cafelumiere/cafe-api/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.CategoryEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	GetByName(ctx context.Context, name string) (*model.CategoryEntity, error)
	Create(ctx context.Context, req *model.CategoryEntity) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.CategoryEntity) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

func (s *SQL) List(ctx context.Context) ([]model.CategoryEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT id, name, description, subcategories FROM category ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CategoryEntity, 0)
	for rows.Next() {
		var it model.CategoryEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, "SELECT id, name, description, subcategories FROM category WHERE id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByName(ctx context.Context, name string) (*model.CategoryEntity, error) {
	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, "SELECT id, name, description, subcategories FROM category WHERE LOWER(name) = LOWER(?)", name).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, req *model.CategoryEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, "INSERT INTO category (name, description, subcategories) VALUES (?, ?, ?)",
		req.Name, req.Description, req.Subcategories)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.CategoryEntity) (bool, error) {
	res, err := s.conn.ExecContext(ctx, "UPDATE category SET name = ?, description = ?, subcategories = ? WHERE id = ?",
		req.Name, req.Description, req.Subcategories, id)
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
	res, err := s.conn.ExecContext(ctx, "DELETE FROM category WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
