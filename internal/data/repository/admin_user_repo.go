package repository

import (
	"context"
	"errors"
	"fmt"

	"teide-booking/internal/data/entity"
	"teide-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminUserRepository interface {
	Upsert(ctx context.Context, user *entity.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	FindByID(ctx context.Context, id int64) (*entity.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type adminUserRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminUserRepository(db database.PgxIface, log *zap.Logger) AdminUserRepository {
	return &adminUserRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin_user")),
	}
}

// Upsert creates the user or replaces the password hash of an existing one.
// created_at is left to the column default and read back into user.
func (r *adminUserRepository) Upsert(ctx context.Context, user *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Username, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		r.log.Error("Failed to upsert admin user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("upsert admin user %s: %w", user.Username, err)
	}

	return nil
}

func (r *adminUserRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`

	var user entity.AdminUser
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin user by username", zap.Error(err))
		return nil, fmt.Errorf("find admin user by username: %w", err)
	}

	return &user, nil
}

func (r *adminUserRepository) FindByID(ctx context.Context, id int64) (*entity.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE id = $1
	`

	var user entity.AdminUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin user by ID", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("find admin user by ID %d: %w", id, err)
	}

	return &user, nil
}

func (r *adminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		r.log.Error("Failed to count admin users", zap.Error(err))
		return 0, fmt.Errorf("count admin users: %w", err)
	}
	return count, nil
}
