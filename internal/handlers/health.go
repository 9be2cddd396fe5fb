// internal/handlers/health.go
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/materialmap-backend/internal/i18n"
	"github.com/javajoker/materialmap-backend/internal/services"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	statusService *services.StatusService
	environment   string
	databaseURL   string
}

func NewHealthHandler(statusService *services.StatusService, environment, databaseURL string) *HealthHandler {
	return &HealthHandler{
		statusService: statusService,
		environment:   environment,
		databaseURL:   databaseURL,
	}
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Material Map API",
		"version": apiVersion,
		"status":  "running",
	})
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// GET /api/health
func (h *HealthHandler) APIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Material Map API is running",
		"version":   apiVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /api/status
func (h *HealthHandler) Status(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	counts, err := h.statusService.Counts(c.Request.Context())
	if err != nil {
		utils.ServiceUnavailableResponse(c, i18n.T(lang, i18n.KeyStatusDatabaseDown), gin.H{
			"database_connected": false,
			"database_type":      h.databaseType(),
			"environment":        h.environment,
			"error":              err.Error(),
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status":             "healthy",
		"database_connected": true,
		"database_type":      h.databaseType(),
		"environment":        h.environment,
		"api_version":        apiVersion,
		"data_stats":         counts,
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) databaseType() string {
	if strings.Contains(h.databaseURL, "supabase") {
		return "PostgreSQL (Supabase)"
	}
	return "PostgreSQL"
}
