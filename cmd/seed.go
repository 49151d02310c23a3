package cmd

import (
	"context"
	"errors"
	"fmt"

	"teide-booking/internal/data/entity"
	"teide-booking/internal/data/repository"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

var ErrSeedCredentials = errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set to seed an admin")

// SeedAdmin creates the admin account from the configured credentials, or
// resets its password when the username already exists.
func SeedAdmin(ctx context.Context, users repository.AdminUserRepository, auth utils.AuthConfig, logger *zap.Logger) error {
	if auth.AdminUsername == "" || auth.AdminPassword == "" {
		return ErrSeedCredentials
	}

	hash, err := utils.HashPassword(auth.AdminPassword, auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &entity.AdminUser{
		Username:     auth.AdminUsername,
		PasswordHash: hash,
	}
	if err := users.Upsert(ctx, user); err != nil {
		return fmt.Errorf("seed admin %s: %w", auth.AdminUsername, err)
	}

	logger.Info("Admin user seeded",
		zap.String("username", user.Username),
		zap.Int64("id", user.ID),
	)
	return nil
}
