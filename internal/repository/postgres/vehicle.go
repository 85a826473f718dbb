package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, owner_id, name, price_per_day, is_available, created_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.OwnerID, &v.Name, &v.PricePerDay, &v.IsAvailable, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("vehicle", id)
	}
	if err != nil {
		return nil, translateError("get vehicle", err)
	}
	return v, nil
}

func (r *vehicleRepository) ListIDsByOwner(ctx context.Context, ownerID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM vehicles WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, translateError("list vehicles by owner", err)
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, translateError("list vehicles by owner", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *vehicleRepository) UpdateAvailability(ctx context.Context, id int32, available bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET is_available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return translateError("update vehicle availability", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translateError("update vehicle availability", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("vehicle", id)
	}
	return nil
}
