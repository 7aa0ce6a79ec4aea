package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/SscSPs/budget_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pathID parses a positive int64 path parameter, writing the failure
// envelope itself when the value is unusable.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}

// authedUserID pulls the authenticated user's ID out of the request context.
// The auth middleware always sets it; a miss means the route was registered
// outside the protected group.
func authedUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			StatusCode: http.StatusUnauthorized,
			Message:    "Unauthorized",
		})
		return 0, false
	}
	return userID, true
}
