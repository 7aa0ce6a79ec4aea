package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/SscSPs/budget_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError is the single boundary translator from service errors to the
// failure envelope. AppError carries its own status code and caller-safe
// message; anything else is masked as a generic internal error with the
// detail kept in the logs.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", appErr.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("error", appErr.Error()))
		}
		c.JSON(appErr.StatusCode, dto.ErrorResponse{
			StatusCode: appErr.StatusCode,
			Message:    appErr.Message,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			StatusCode: http.StatusUnauthorized,
			Message:    "Unauthorized",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			StatusCode: http.StatusNotFound,
			Message:    "Not found",
		})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
		})
	}
}

// respondBindError reports a malformed request body. Field-level validation
// failures are summarized per field instead of dumping the raw binding error.
func respondBindError(c *gin.Context, err error) {
	message := "Invalid request body: " + err.Error()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, len(verrs))
		for i, fe := range verrs {
			parts[i] = fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag())
		}
		message = "Invalid request body: " + strings.Join(parts, ", ")
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	})
}
