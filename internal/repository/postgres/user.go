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
)

const userColumns = `id, email, name, role, provider_status, created_on, updated_on`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var providerStatus sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &providerStatus, &u.CreatedOn, &u.UpdatedOn); err != nil {
		return nil, err
	}
	if providerStatus.Valid {
		u.ProviderStatus = domain.ProviderStatus(providerStatus.String)
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("user", id)
	}
	if err != nil {
		return nil, translateError("get user", err)
	}
	return u, nil
}

func (r *userRepository) UpdateProviderStatus(ctx context.Context, id int32, from, to domain.ProviderStatus) (*domain.User, error) {
	query := `UPDATE users SET provider_status = $1, updated_on = $2
	          WHERE id = $3 AND role = 'provider' AND provider_status = $4
	          RETURNING ` + userColumns
	logger.DatabaseCall("UpdateProviderStatus", query, "user_id", id, "from", from, "to", to)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, to, time.Now().UTC(), id, from))
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.NewConflictError(fmt.Sprintf("provider %d is no longer %s", id, from))
		logger.DatabaseResult("UpdateProviderStatus", 0, err)
		return nil, err
	}
	if err != nil {
		err = translateError("update provider status", err)
		logger.DatabaseResult("UpdateProviderStatus", 0, err)
		return nil, err
	}
	logger.DatabaseResult("UpdateProviderStatus", 1, nil)
	return u, nil
}

func (r *userRepository) ListByProviderStatus(ctx context.Context, status domain.ProviderStatus) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = 'provider' AND provider_status = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, translateError("list providers", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translateError("list providers", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list providers", err)
	}
	return users, nil
}
