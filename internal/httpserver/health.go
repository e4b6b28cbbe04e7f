package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nb-query/pkg/response"
)

const (
	ServiceName    = "nb-query"
	ServiceVersion = "1.0.0"

	readyTimeout = 2 * time.Second
)

// NotesPinger reports whether the note server can be reached.
type NotesPinger interface {
	Ping(ctx context.Context) error
}

func statusBody(status string) gin.H {
	return gin.H{"status": status, "service": ServiceName, "version": ServiceVersion}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck is ready only when the nb server answers. Without a pinger it
// always reports ready.
// @Summary Readiness Check
// @Description Check that the nb server behind the API is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "nb server unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.pinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := srv.pinger.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   err.Error(),
				Data:      statusBody("unavailable"),
			})
			return
		}
	}
	response.OK(c, statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
