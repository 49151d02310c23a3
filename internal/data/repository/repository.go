package repository

import (
	"teide-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	AdminUser       AdminUserRepository
	Session         SessionRepository
	Booking         BookingRepository
	ServiceOverride ServiceOverrideRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		AdminUser:       NewAdminUserRepository(db, log),
		Session:         NewSessionRepository(db, log),
		Booking:         NewBookingRepository(db, log),
		ServiceOverride: NewServiceOverrideRepository(db, log),
	}
}
