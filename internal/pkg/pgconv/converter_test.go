//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"lucky-draw/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringConversions(t *testing.T) {
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))

	got := pgconv.StringPtrFromPgtype(pgtype.Text{String: "PRIZE1", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "PRIZE1", *got)

	assert.Equal(t, pgtype.Text{String: "x", Valid: true}, pgconv.StringToPgtype("x"))
	assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)

	s := "PRIZE2"
	assert.Equal(t, pgtype.Text{String: "PRIZE2", Valid: true}, pgconv.StringPtrToPgtype(&s))
}

func TestTimeConversions(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now, pgconv.TimeFromPgtype(pgconv.TimeToPgtype(now)))
}

func TestErrorClassification(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		noRows    bool
		unique    bool
		retryable bool
	}{
		{name: "pgx no rows", err: pgx.ErrNoRows, noRows: true},
		{name: "sql no rows wrapped", err: fmt.Errorf("get: %w", sql.ErrNoRows), noRows: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, retryable: true},
		{name: "deadlock", err: fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40P01"}), retryable: true},
		{name: "plain error", err: errors.New("boom")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.noRows, pgconv.IsNoRows(tc.err))
			assert.Equal(t, tc.unique, pgconv.IsUniqueViolation(tc.err))
			assert.Equal(t, tc.retryable, pgconv.IsRetryable(tc.err))
		})
	}
}
