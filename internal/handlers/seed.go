// internal/handlers/seed.go
package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/materialmap-backend/internal/i18n"
	"github.com/javajoker/materialmap-backend/internal/services"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
	}
}

// POST /api/quick-seed
func (h *SeedHandler) QuickSeed(c *gin.Context) {
	h.run(c, h.seedService.QuickSeed)
}

// POST /api/seed
func (h *SeedHandler) FullSeed(c *gin.Context) {
	h.run(c, h.seedService.FullSeed)
}

func (h *SeedHandler) run(c *gin.Context, seed func(context.Context) (*services.SeedResult, error)) {
	lang := utils.GetLangFromContext(c)

	result, err := seed(c.Request.Context())
	if err != nil {
		var seeded *services.AlreadySeededError
		if errors.As(err, &seeded) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeySeedAlreadyExists), gin.H{
				"product_count": seeded.ProductCount,
			})
			return
		}
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeySeedFailed)+": "+err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySeedCompleted),
		"counts":  result,
	})
}
