// internal/handlers/store.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/materialmap-backend/internal/geo"
	"github.com/javajoker/materialmap-backend/internal/i18n"
	"github.com/javajoker/materialmap-backend/internal/services"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

type StoreHandler struct {
	storeService   *services.StoreService
	storageService *services.StorageService
}

func NewStoreHandler(storeService *services.StoreService, storageService *services.StorageService) *StoreHandler {
	return &StoreHandler{
		storeService:   storeService,
		storageService: storageService,
	}
}

// GET /api/stores
func (h *StoreHandler) GetStores(c *gin.Context) {
	stores, err := h.storeService.ListStores(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stores)
}

// GET /api/store-categories
func (h *StoreHandler) GetCategories(c *gin.Context) {
	categories, err := h.storeService.Categories(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /api/stores/category/:category
func (h *StoreHandler) GetStoresByCategory(c *gin.Context) {
	stores, err := h.storeService.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stores)
}

// GET /api/stores/nearby?latitude=&longitude=&radius=
func (h *StoreHandler) GetNearbyStores(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	latitude, errLat := strconv.ParseFloat(c.DefaultQuery("latitude", "0"), 64)
	longitude, errLon := strconv.ParseFloat(c.DefaultQuery("longitude", "0"), 64)
	radius, errRadius := strconv.ParseFloat(c.DefaultQuery("radius", strconv.FormatFloat(geo.DefaultRadiusKm, 'f', -1, 64)), 64)
	if errLat != nil || errLon != nil || errRadius != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyGeoInvalidCoordinates), nil)
		return
	}

	stores, err := h.storeService.FindNearby(c.Request.Context(), services.NearbyQuery{
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radius,
	})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stores)
}

// GET /api/stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "store")
	if !ok {
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, 0)
		return
	}

	utils.SuccessResponse(c, store)
}

// POST /api/stores
func (h *StoreHandler) CreateStore(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateStoreRequest
	if !bindAndValidate(c, &req) {
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, 0)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyStoreCreated),
		"store":   store,
	})
}

// PUT /api/stores/:id
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c, "id", "store")
	if !ok {
		return
	}

	var req services.UpdateStoreRequest
	if !bindAndValidate(c, &req) {
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, 0)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyStoreUpdated),
		"store":   store,
	})
}

// DELETE /api/stores/:id
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c, "id", "store")
	if !ok {
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), id); err != nil {
		respondError(c, err, 0)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyStoreDeleted),
	})
}

// POST /api/stores/:id/image
func (h *StoreHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c, "id", "store")
	if !ok {
		return
	}

	upload, ok := readImageUpload(c)
	if !ok {
		return
	}
	defer upload.Close()

	store, err := h.storeService.UploadImage(c.Request.Context(), id, upload.Filename(), upload.Size(), upload.Body())
	if err != nil {
		respondError(c, err, maxImageMB(h.storageService))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyImageUploaded),
		"image_url": store.ImageURL,
		"store":     store,
	})
}
