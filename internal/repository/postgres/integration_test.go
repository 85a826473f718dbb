//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository/postgres"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupDatabase starts PostgreSQL, applies migrations and returns a store.
func setupDatabase(t *testing.T) (*sql.DB, *postgres.Store) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "rentwheels_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://test:test@%s:%s/rentwheels_test?sslmode=disable", host, port.Port())

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.Eventually(t, func() bool { return db.Ping() == nil }, 30*time.Second, time.Second)

	require.NoError(t, postgres.Migrate(dsn))
	// Second run is a no-op.
	require.NoError(t, postgres.Migrate(dsn))

	return db, postgres.NewStore(db)
}

func seed(t *testing.T, db *sql.DB) (ownerID, renterID, vehicleID int32) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (email, name, role, provider_status) VALUES ('owner@test', 'Owner', 'provider', 'approved') RETURNING id`).Scan(&ownerID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (email, name, role) VALUES ('renter@test', 'Renter', 'user') RETURNING id`).Scan(&renterID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO vehicles (owner_id, name, price_per_day) VALUES ($1, 'Civic', 25) RETURNING id`, ownerID).Scan(&vehicleID))
	return ownerID, renterID, vehicleID
}

func newRental(vehicleID, renterID int32, start, end time.Time) *domain.Rental {
	return &domain.Rental{
		VehicleID:       vehicleID,
		RenterID:        renterID,
		PickupLocation:  "Airport",
		DropOffLocation: "Downtown",
		Period:          domain.DateRange{Start: start, End: end},
		TotalCost:       100,
		Status:          domain.RentalStatusPending,
	}
}

func TestIntegration_Bookings(t *testing.T) {
	db, store := setupDatabase(t)
	ownerID, renterID, vehicleID := seed(t, db)
	ctx := context.Background()
	mar := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	t.Run("Concurrent requests for the same dates", func(t *testing.T) {
		const workers = 10
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			created   int
			conflicts int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.RentalRepository.CreateIfNoOverlap(ctx, newRental(vehicleID, renterID, mar(1), mar(5)))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					created++
				case domain.IsKind(err, domain.KindConflict):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, created)
		assert.Equal(t, workers-1, conflicts)
	})

	t.Run("Touching range is allowed", func(t *testing.T) {
		require.NoError(t, store.RentalRepository.CreateIfNoOverlap(ctx, newRental(vehicleID, renterID, mar(5), mar(8))))
	})

	t.Run("Exclusion constraint rejects a direct insert", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO rentals
			(vehicle_id, renter_id, pickup_location, drop_off_location, start_date, end_date, total_cost, status)
			VALUES ($1, $2, 'A', 'B', $3, $4, 10, 'pending')`, vehicleID, renterID, mar(2), mar(3))
		var pqErr *pq.Error
		require.True(t, errors.As(err, &pqErr))
		assert.Equal(t, pq.ErrorCode("23P01"), pqErr.Code)
	})

	t.Run("Cancelled rentals free the dates", func(t *testing.T) {
		rt := newRental(vehicleID, renterID, mar(10), mar(12))
		require.NoError(t, store.RentalRepository.CreateIfNoOverlap(ctx, rt))
		_, err := store.RentalRepository.UpdateStatus(ctx, rt.ID, domain.RentalStatusPending, domain.RentalStatusCancelled)
		require.NoError(t, err)

		require.NoError(t, store.RentalRepository.CreateIfNoOverlap(ctx, newRental(vehicleID, renterID, mar(10), mar(12))))
	})

	t.Run("Stale status update is a conflict", func(t *testing.T) {
		rt := newRental(vehicleID, renterID, mar(20), mar(22))
		require.NoError(t, store.RentalRepository.CreateIfNoOverlap(ctx, rt))

		updated, err := store.RentalRepository.UpdateStatus(ctx, rt.ID, domain.RentalStatusPending, domain.RentalStatusActive)
		require.NoError(t, err)
		assert.Equal(t, domain.RentalStatusActive, updated.Status)

		_, err = store.RentalRepository.UpdateStatus(ctx, rt.ID, domain.RentalStatusPending, domain.RentalStatusCancelled)
		assert.True(t, domain.IsKind(err, domain.KindConflict))

		expired, err := store.RentalRepository.ListActiveEndedBefore(ctx, mar(23))
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, rt.ID, expired[0].ID)
	})

	t.Run("Expiry sweep completes each rental once", func(t *testing.T) {
		sweep := func() int {
			expired, err := store.RentalRepository.ListActiveEndedBefore(ctx, mar(23))
			require.NoError(t, err)
			completed := 0
			for _, rt := range expired {
				_, err := store.RentalRepository.UpdateStatus(ctx, rt.ID, rt.Status, domain.RentalStatusCompleted)
				require.NoError(t, err)
				completed++
			}
			return completed
		}

		assert.Equal(t, 1, sweep())
		assert.Equal(t, 0, sweep())
	})

	t.Run("Provider rentals", func(t *testing.T) {
		ids, err := store.VehicleRepository.ListIDsByOwner(ctx, ownerID)
		require.NoError(t, err)
		rentals, err := store.RentalRepository.ListByVehicleIDs(ctx, ids)
		require.NoError(t, err)
		assert.Len(t, rentals, 5)
	})
}
