package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HomeHandler serves the service root and health endpoints.
type HomeHandler struct {
	pool *pgxpool.Pool
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(pool *pgxpool.Pool) *HomeHandler {
	return &HomeHandler{pool: pool}
}

func registerHomeRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	h := NewHomeHandler(pool)
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}

// Root godoc
// @Summary Service info
// @Description Returns the service name and status.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HomeHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "dare2earn-backend",
		"status":  "ok",
	})
}

// Health godoc
// @Summary Health check
// @Description Pings the database and reports connection pool statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HomeHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	httpStatus := http.StatusOK
	start := time.Now()
	if err := h.pool.Ping(ctx); err != nil {
		dbStatus = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	stats := h.pool.Stat()
	c.JSON(httpStatus, gin.H{
		"status": dbStatus,
		"database": gin.H{
			"ping_ms":           time.Since(start).Milliseconds(),
			"total_conns":       stats.TotalConns(),
			"idle_conns":        stats.IdleConns(),
			"acquired_conns":    stats.AcquiredConns(),
			"max_conns":         stats.MaxConns(),
			"constructing_conns": stats.ConstructingConns(),
		},
	})
}
