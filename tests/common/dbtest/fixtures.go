//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type OrderState struct {
	HasPlayed  bool
	DrawResult *string
}

type DrawResultRow struct {
	DrawResult string
	CreatedAt  time.Time
}

func CreateTestOrder(t *testing.T, db DBLike, orderNumber string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO order_records (order_number) VALUES ($1) ON CONFLICT (order_number) DO NOTHING", orderNumber)
	require.NoError(t, err)
}

func GetOrderState(t *testing.T, db DBLike, orderNumber string) OrderState {
	t.Helper()

	var s OrderState
	err := db.QueryRow(context.Background(),
		"SELECT has_played, draw_result FROM order_records WHERE order_number = $1", orderNumber).
		Scan(&s.HasPlayed, &s.DrawResult)
	require.NoError(t, err)
	return s
}

func CountDrawResults(t *testing.T, db DBLike, orderNumber string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM draw_results WHERE order_number = $1", orderNumber).Scan(&n)
	require.NoError(t, err)
	return n
}

func GetDrawResult(t *testing.T, db DBLike, orderNumber string) DrawResultRow {
	t.Helper()

	var r DrawResultRow
	err := db.QueryRow(context.Background(),
		"SELECT draw_result, created_at FROM draw_results WHERE order_number = $1", orderNumber).
		Scan(&r.DrawResult, &r.CreatedAt)
	require.NoError(t, err)
	return r
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every public table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
