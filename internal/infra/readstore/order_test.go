//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"lucky-draw/internal/infra"
	"lucky-draw/internal/infra/readstore"
	sqlc "lucky-draw/internal/infra/sqlc/generated"
	"lucky-draw/internal/usecase/queries"
	readstoremock "lucky-draw/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderReadStore_FindByOrderNumber(t *testing.T) {
	ctx := context.Background()
	prize := "PRIZE_B"

	testCases := []struct {
		name       string
		row        sqlc.OrderRecords
		mockErr    error
		expected   *queries.OrderView
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:     "success: unplayed order",
			row:      sqlc.OrderRecords{OrderNumber: "ORD-2002"},
			expected: &queries.OrderView{OrderNumber: "ORD-2002"},
		},
		{
			name:     "success: played order",
			row:      sqlc.OrderRecords{OrderNumber: "ORD-2002", HasPlayed: true, DrawResult: pgtype.Text{String: prize, Valid: true}},
			expected: &queries.OrderView{OrderNumber: "ORD-2002", HasPlayed: true, DrawResult: &prize},
		},
		{
			name:       "error: not found",
			mockErr:    pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			mockErr:    errors.New("timeout"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewOrderReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetOrderRecord(ctx, mockDB, "ORD-2002").Return(tc.row, tc.mockErr)

			view, err := store.FindByOrderNumber(ctx, "ORD-2002")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, view); diff != "" {
				t.Errorf("FindByOrderNumber() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
