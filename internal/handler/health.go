package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/model"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports process liveness and record-store reachability.
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		status := http.StatusOK
		if err := db.Ping(c.Request.Context()); err != nil {
			dbStatus = "disconnected"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, model.HealthResponse{
			Status:   "ok",
			Database: dbStatus,
		})
	}
}
