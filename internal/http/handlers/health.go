package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sigc-piloto/sigc-backend/internal/http/response"
	"github.com/sigc-piloto/sigc-backend/internal/platform/logger"
)

// DBPinger runs a trivial query against storage.
type DBPinger interface {
	Ping(ctx context.Context) ([]int, error)
}

type HealthHandler struct {
	log *logger.Logger
	db  DBPinger
}

func NewHealthHandler(log *logger.Logger, db DBPinger) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), db: db}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.RespondOK(c, gin.H{"status": "ok"})
}

// GET /db-test
func (h *HealthHandler) DBTest(c *gin.Context) {
	if h.db == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "db_unavailable", nil)
		return
	}
	result, err := h.db.Ping(c.Request.Context())
	if err != nil {
		h.log.Error("db ping failed", "error", err)
		response.RespondError(c, http.StatusServiceUnavailable, "db_unavailable", err)
		return
	}
	response.RespondOK(c, gin.H{"db": "connected", "result": result})
}
