package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	_ "promptvault/cmd/api/dto"
	"promptvault/cmd/internal/logger"
	"promptvault/errs"
)

var startedAt = time.Now()

// respondError translates any error into the JSON error envelope with
// its stable status code. Validation errors carry the full missing
// field list; 5xx detail is suppressed in release mode.
func respondError(c *gin.Context, err error) {
	status := errs.StatusOf(err)
	body := gin.H{"error": err.Error()}

	var apiErr *errs.APIError
	if errors.As(err, &apiErr) && len(apiErr.MissingFields) > 0 {
		body["error"] = "validation failed"
		body["missing"] = apiErr.MissingFields
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		})
		if gin.Mode() == gin.ReleaseMode {
			body["error"] = "internal server error"
		}
	}

	c.JSON(status, body)
}

// HealthHandler godoc
// @Summary      Liveness check
// @Description  Reports service status and process uptime
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(startedAt).Round(time.Second).String(),
		})
	}
}
