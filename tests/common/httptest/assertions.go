//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var resp envelope
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	if !assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
		return
	}
	if assert.NotNil(t, resp.Success, "Response is missing the success flag") {
		assert.True(t, *resp.Success)
	}
	if expectedMsg != "" {
		assert.Equal(t, expectedMsg, resp.Message)
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var resp envelope
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	if !assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String())) {
		return
	}
	if assert.NotNil(t, resp.Success, "Response is missing the success flag") {
		assert.False(t, *resp.Success)
	}

	if expectedErrorMsg != "" {
		assert.Contains(t, resp.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
