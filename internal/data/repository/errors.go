package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateReference is returned by BookingRepository.Create when the
// reference is already taken. Callers regenerate and retry.
var ErrDuplicateReference = errors.New("booking reference already exists")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
