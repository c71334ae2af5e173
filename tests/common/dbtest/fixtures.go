//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by the pool and by a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, u shared.UserSnapshot) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO users (id, username) VALUES ($1, $2)", u.ID, u.Username)
	require.NoError(t, err)

	return u.ID
}

// CreateTestTour also inserts the guide when it does not exist yet.
func CreateTestTour(t *testing.T, db DBLike, tr tour.Tour) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	ensureUser(t, db, tr.GuideID)

	var startsAt *time.Time
	if !tr.StartsAt.IsZero() {
		startsAt = &tr.StartsAt
	}
	_, err := db.Exec(ctx,
		"INSERT INTO tours (id, name, max_guests, guide_id, status, starts_at) VALUES ($1, $2, $3, $4, $5, $6)",
		tr.ID, tr.Name, tr.MaxGuests, tr.GuideID, string(tr.Status), startsAt)
	require.NoError(t, err)

	return tr.ID
}

// CreateTestRestaurant also inserts the owner when it does not exist yet.
func CreateTestRestaurant(t *testing.T, db DBLike, r restaurant.Restaurant) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	ensureUser(t, db, r.OwnerID)

	_, err := db.Exec(ctx,
		"INSERT INTO restaurants (id, name, capacity, owner_id, status) VALUES ($1, $2, $3, $4, $5)",
		r.ID, r.Name, r.Capacity, r.OwnerID, r.Status)
	require.NoError(t, err)

	return r.ID
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func ensureUser(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, username) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
		id, "user-"+id.String()[:8])
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table in the public schema
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
