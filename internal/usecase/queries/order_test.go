//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"lucky-draw/internal/infra"
	"lucky-draw/internal/pkg/errs"
	"lucky-draw/internal/usecase/queries"
	queriesmock "lucky-draw/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckOrderNumber(t *testing.T) {
	ctx := context.Background()
	prize := "PRIZE_A"

	testCases := []struct {
		name        string
		input       string
		setupMock   func(m *queriesmock.MockOrderReadStore)
		expectedErr error
	}{
		{
			name:  "success: unplayed order",
			input: "  ABC123\t",
			setupMock: func(m *queriesmock.MockOrderReadStore) {
				m.EXPECT().FindByOrderNumber(gomock.Any(), "ABC123").
					Return(&queries.OrderView{OrderNumber: "ABC123"}, nil)
			},
		},
		{
			name:        "error: blank input",
			input:       "   ",
			setupMock:   func(m *queriesmock.MockOrderReadStore) {},
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name:        "error: path separator",
			input:       "A/B",
			setupMock:   func(m *queriesmock.MockOrderReadStore) {},
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name:  "error: not found",
			input: "XYZ999",
			setupMock: func(m *queriesmock.MockOrderReadStore) {
				m.EXPECT().FindByOrderNumber(gomock.Any(), "XYZ999").
					Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))
			},
			expectedErr: errs.ErrOrderNotFound,
		},
		{
			name:  "error: already played",
			input: "ABC123",
			setupMock: func(m *queriesmock.MockOrderReadStore) {
				m.EXPECT().FindByOrderNumber(gomock.Any(), "ABC123").
					Return(&queries.OrderView{OrderNumber: "ABC123", HasPlayed: true, DrawResult: &prize}, nil)
			},
			expectedErr: errs.ErrOrderAlreadyUsed,
		},
		{
			name:  "error: store failure",
			input: "ABC123",
			setupMock: func(m *queriesmock.MockOrderReadStore) {
				m.EXPECT().FindByOrderNumber(gomock.Any(), "ABC123").
					Return(nil, infra.WrapRepoErr("failed to get order", errors.New("unavailable")))
			},
			expectedErr: errs.ErrStoreFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockOrderReadStore(ctrl)
			tc.setupMock(store)

			view, err := queries.NewOrderQueries(store).CheckOrderNumber(ctx, tc.input)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected [%v] but got (%v)", tc.expectedErr, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ABC123", view.OrderNumber)
			assert.False(t, view.HasPlayed)
		})
	}
}
