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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCourt(t *testing.T, db DBLike, name, sport string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO courts (venue_name, name, sport) VALUES ($1, $2, $3) RETURNING id",
		"Test Venue", name, sport).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestSlot inserts an open one-hour slot.
func CreateTestSlot(t *testing.T, db DBLike, courtID uuid.UUID, start time.Time, priceCents int32) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO slots (court_id, start_ts, end_ts, price_cents, currency) VALUES ($1, $2, $3, $4, 'USD') RETURNING id",
		courtID, start, start.Add(time.Hour), priceCents).Scan(&id)
	require.NoError(t, err)
	return id
}

func SlotStatus(t *testing.T, db DBLike, slotID uuid.UUID) string {
	t.Helper()
	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM slots WHERE id = $1", slotID).Scan(&status))
	return status
}

func ReservationStatus(t *testing.T, db DBLike, reservationID uuid.UUID) string {
	t.Helper()
	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status))
	return status
}

func Count(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// ExpireHold moves a pending reservation's deadline into the past.
func ExpireHold(t *testing.T, db DBLike, reservationID uuid.UUID) {
	t.Helper()
	tag, err := db.Exec(context.Background(),
		"UPDATE reservations SET expires_at = now() - interval '1 minute' WHERE id = $1 AND status = 'pending'", reservationID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "reservation %s is not pending", reservationID)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table, leaving goose's version table alone.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
