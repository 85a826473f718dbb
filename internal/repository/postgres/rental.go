package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"

	"github.com/lib/pq"
)

// rentalLockNamespace is the first key of the two-key advisory lock taken per
// vehicle while booking; the second key is the vehicle id.
const rentalLockNamespace int32 = 0x52454e54 // "RENT"

const rentalColumns = `id, vehicle_id, renter_id, pickup_location, drop_off_location, start_date, end_date, total_cost, status, created_on, updated_on`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.VehicleID, &rt.RenterID, &rt.PickupLocation, &rt.DropOffLocation,
		&rt.Period.Start, &rt.Period.End, &rt.TotalCost, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("rental", id)
	}
	if err != nil {
		return nil, translateError("get rental", err)
	}
	return rt, nil
}

const overlapQuery = `SELECT ` + rentalColumns + ` FROM rentals
	WHERE vehicle_id = $1 AND status <> $2 AND start_date < $4 AND $3 < end_date
	ORDER BY start_date LIMIT 1`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findOverlapping(ctx context.Context, q queryRower, vehicleID int32, period domain.DateRange) (*domain.Rental, error) {
	rt, err := scanRental(q.QueryRowContext(ctx, overlapQuery, vehicleID, domain.RentalStatusCancelled, period.Start, period.End))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError("find overlapping rental", err)
	}
	return rt, nil
}

func (r *rentalRepository) FindOverlapping(ctx context.Context, vehicleID int32, period domain.DateRange) (*domain.Rental, error) {
	return findOverlapping(ctx, r.db, vehicleID, period)
}

func (r *rentalRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, translateError(op, err)
		}
		rentals = append(rentals, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return rentals, nil
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID int32) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE renter_id = $1 ORDER BY start_date DESC`
	return r.list(ctx, "list rentals by renter", query, renterID)
}

func (r *rentalRepository) ListByVehicleIDs(ctx context.Context, vehicleIDs []int32) ([]domain.Rental, error) {
	if len(vehicleIDs) == 0 {
		return nil, nil
	}
	ids := make([]int64, len(vehicleIDs))
	for i, id := range vehicleIDs {
		ids[i] = int64(id)
	}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE vehicle_id = ANY($1) ORDER BY start_date DESC`
	return r.list(ctx, "list rentals by vehicles", query, pq.Array(ids))
}

func (r *rentalRepository) ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND end_date < $2 ORDER BY end_date`
	return r.list(ctx, "list expired active rentals", query, domain.RentalStatusActive, cutoff)
}

// CreateIfNoOverlap serialises bookings per vehicle with a transaction-scoped
// advisory lock, so the overlap check and the insert cannot interleave with
// another booking of the same vehicle. The rentals_no_overlap exclusion
// constraint backs this up for writers that bypass the lock.
func (r *rentalRepository) CreateIfNoOverlap(ctx context.Context, rt *domain.Rental) error {
	logger.DatabaseCall("CreateIfNoOverlap", "INSERT INTO rentals", "vehicle_id", rt.VehicleID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateError("begin booking transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, rentalLockNamespace, rt.VehicleID); err != nil {
		return translateError("lock vehicle for booking", err)
	}

	existing, err := findOverlapping(ctx, tx, rt.VehicleID, rt.Period)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewConflictError(fmt.Sprintf("vehicle is already booked from %s to %s",
			existing.Period.Start.Format(time.DateOnly), existing.Period.End.Format(time.DateOnly)))
	}

	now := time.Now().UTC()
	query := `INSERT INTO rentals (vehicle_id, renter_id, pickup_location, drop_off_location, start_date, end_date, total_cost, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err = tx.QueryRowContext(ctx, query, rt.VehicleID, rt.RenterID, rt.PickupLocation, rt.DropOffLocation,
		rt.Period.Start, rt.Period.End, rt.TotalCost, rt.Status, now, now).Scan(&rt.ID)
	if err != nil {
		err = translateError("insert rental", err)
		logger.DatabaseResult("CreateIfNoOverlap", 0, err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return translateError("commit booking transaction", err)
	}
	rt.CreatedOn = now
	rt.UpdatedOn = now
	logger.DatabaseResult("CreateIfNoOverlap", 1, nil, "rental_id", rt.ID)
	return nil
}

// UpdateStatus is a compare-and-set on the status column. Losing the race to
// another writer yields a Conflict rather than overwriting its change.
func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.RentalStatus) (*domain.Rental, error) {
	query := `UPDATE rentals SET status = $1, updated_on = $2 WHERE id = $3 AND status = $4 RETURNING ` + rentalColumns
	logger.DatabaseCall("UpdateStatus", query, "rental_id", id, "from", from, "to", to)

	rt, err := scanRental(r.db.QueryRowContext(ctx, query, to, time.Now().UTC(), id, from))
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.NewConflictError(fmt.Sprintf("rental %d is no longer %s", id, from))
		logger.DatabaseResult("UpdateStatus", 0, err)
		return nil, err
	}
	if err != nil {
		err = translateError("update rental status", err)
		logger.DatabaseResult("UpdateStatus", 0, err)
		return nil, err
	}
	logger.DatabaseResult("UpdateStatus", 1, nil)
	return rt, nil
}
