//go:build unit

package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReadOrderNumbers(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		skipHeader bool
		expected   []string
	}{
		{
			name:     "single column",
			input:    "A100\nA101\n",
			expected: []string{"A100", "A101"},
		},
		{
			name:       "header and extra columns",
			input:      "order_number,channel\nA100,web\n A101 ,store\n",
			skipHeader: true,
			expected:   []string{"A100", "A101 "},
		},
		{
			name:     "quoted values",
			input:    "\"A,100\"\n",
			expected: []string{"A,100"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readOrderNumbers(strings.NewReader(tc.input), tc.skipHeader)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("readOrderNumbers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadOrderNumbers_Malformed(t *testing.T) {
	_, err := readOrderNumbers(strings.NewReader("\"A100\n"), false)
	require.Error(t, err)
}
