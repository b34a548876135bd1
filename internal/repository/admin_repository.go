package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/base"
)

type AdminRepository struct {
	*base.Repository
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{Repository: base.NewRepository(pool)}
}

// GetByUsername получает администратора по логину
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.QueryRow(ctx, `SELECT username, password FROM admin WHERE username = $1`, username).
		Scan(&admin.Username, &admin.Password)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by username: %w", err)
	}

	return &admin, nil
}

// CreateIfMissing добавляет администратора, существующего не трогает.
// Возвращает true если запись была создана.
func (r *AdminRepository) CreateIfMissing(ctx context.Context, admin *model.Admin) (bool, error) {
	affected, err := r.ExecAffected(ctx, `
		INSERT INTO admin (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`, admin.Username, admin.Password)
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	return affected > 0, nil
}
