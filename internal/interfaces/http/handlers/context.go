package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/complaintdesk/internal/shared/constants"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
)

// currentUserID returns the caller set by the auth middleware.
func currentUserID(c *gin.Context) (uint, error) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}
	return userID, nil
}

// bindJSON decodes the request body. Malformed JSON is a client error, not a
// server one, so it is reported as a validation failure.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}
