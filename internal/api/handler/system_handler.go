package handler

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/idosos/backend/internal/api/dto"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SystemHandler struct {
	db     Pinger
	dbPath string
}

func NewSystemHandler(db Pinger, dbPath string) *SystemHandler {
	return &SystemHandler{
		db:     db,
		dbPath: dbPath,
	}
}

// Home handles GET /
func (h *SystemHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{
		Status: "API is running",
		Routes: map[string]string{
			"register_elder": "POST /idosos",
			"list_elders":    "GET /idosos",
			"get_elder":      "GET /idosos/<id>",
			"delete_elder":   "DELETE /idosos/<id>",
			"lookup_address": "GET /cep/<cep>",
		},
	})
}

// Probe handles GET /teste. It always answers 200 and reports the
// database state alongside.
func (h *SystemHandler) Probe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "connected"
	if err := h.db.PingContext(ctx); err != nil {
		database = "unreachable"
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:   "API operational",
		Database: database,
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// StoragePath handles GET /caminho_banco
func (h *SystemHandler) StoragePath(c *gin.Context) {
	path, err := filepath.Abs(h.dbPath)
	if err != nil {
		path = h.dbPath
	}

	_, statErr := os.Stat(path)
	c.JSON(http.StatusOK, dto.StoragePathResponse{
		Path:   path,
		Exists: statErr == nil,
	})
}
