package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/complaintdesk/internal/shared/errors"
)

func TestErrorResponseWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    string
		wantDetails string
	}{
		{"conflict", errors.NewConflictError("status changed", "expected PENDING"), http.StatusConflict, "conflict", "expected PENDING"},
		{"invalid transition", errors.NewInvalidTransitionError("not allowed"), http.StatusUnprocessableEntity, "invalid_transition", ""},
		{"forbidden", errors.NewForbiddenError("no"), http.StatusForbidden, "forbidden", ""},
		{"wrapped not found", fmt.Errorf("lookup: %w", errors.NewNotFoundError("complaint 9 not found")), http.StatusNotFound, "not_found", ""},
		{"persistence hides details", errors.NewPersistenceError("db down", "dial tcp 10.0.0.1"), http.StatusInternalServerError, "persistence_failure", ""},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError, "persistence_failure", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
}
