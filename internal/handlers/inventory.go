// internal/handlers/inventory.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/materialmap-backend/internal/i18n"
	"github.com/javajoker/materialmap-backend/internal/services"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// GET /api/inventory
func (h *InventoryHandler) GetItems(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	items, total, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(items, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /api/inventory/product/:product_id
func (h *InventoryHandler) GetOffersForProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id", "product")
	if !ok {
		return
	}

	offers, err := h.inventoryService.ListOffersForProduct(c.Request.Context(), productID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, offers)
}

// GET /api/inventory/store/:store_id
func (h *InventoryHandler) GetStoreInventory(c *gin.Context) {
	storeID, ok := parseIDParam(c, "store_id", "store")
	if !ok {
		return
	}

	items, err := h.inventoryService.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, items)
}

// GET /api/inventory/:id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "inventory")
	if !ok {
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, 0)
		return
	}

	utils.SuccessResponse(c, item)
}

// POST /api/inventory
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, 0)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyInventoryCreated),
		"inventory": item,
	})
}

// PUT /api/inventory/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c, "id", "inventory")
	if !ok {
		return
	}

	var req services.UpdateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, 0)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyInventoryUpdated),
		"inventory": item,
	})
}

// DELETE /api/inventory/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseIDParam(c, "id", "inventory")
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err, 0)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyInventoryDeleted),
	})
}
