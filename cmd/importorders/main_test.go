//go:build unit

package main

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"lucky-draw/internal/usecase/commands"
	commandsmock "lucky-draw/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunImport(t *testing.T) {
	testCases := []struct {
		name        string
		result      *commands.ImportOrdersResult
		err         error
		expectErr   bool
		expectInLog []string
	}{
		{
			name: "reports counts and rejected lines",
			result: &commands.ImportOrdersResult{
				Created:  2,
				Skipped:  1,
				Rejected: []commands.RejectedOrderNumber{{Line: 4, Value: "a/b", Reason: "invalid order number"}},
			},
			expectInLog: []string{"order number rejected", "line=4", "import finished", "created=2", "skipped=1", "rejected=1"},
		},
		{
			name:        "store failure keeps partial counts",
			result:      &commands.ImportOrdersResult{Created: 1},
			err:         errors.New("store unavailable"),
			expectErr:   true,
			expectInLog: []string{"import finished", "created=1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			input := []string{"A1", "A2", "A1", "a/b"}
			imports := commandsmock.NewMockOrderImportCommands(ctrl)
			imports.EXPECT().ImportOrders(gomock.Any(), input).Return(tc.result, tc.err)

			var buf bytes.Buffer
			p := importParams{
				Imports: imports,
				Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
			}

			err := runImport(p, input)

			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			for _, s := range tc.expectInLog {
				assert.Contains(t, buf.String(), s)
			}
			assert.Contains(t, buf.String(), "read=4")
		})
	}
}
