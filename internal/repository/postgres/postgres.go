package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"

	"github.com/lib/pq"
)

// SQLSTATE codes mapped to domain errors.
const (
	pqExclusionViolation pq.ErrorCode = "23P01"
	pqCheckViolation     pq.ErrorCode = "23514"
)

// Store bundles every repository over one connection pool. The pool is owned
// by the caller, which opens and closes it.
type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		VehicleRepository: NewVehicleRepository(db),
		RentalRepository:  NewRentalRepository(db),
	}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// translateError maps driver errors onto domain error kinds.
func translateError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqExclusionViolation:
			return domain.NewConflictError("vehicle is already booked for the requested dates")
		case pqCheckViolation:
			return domain.NewValidationError(fmt.Sprintf("constraint %s violated", pqErr.Constraint))
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
