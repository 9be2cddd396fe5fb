// internal/repository/inventory_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

var inventorySortFields = []string{"created_at", "updated_at", "price", "quantity"}

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	List(ctx context.Context, params utils.PaginationParams) ([]models.InventoryItem, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	// FindByProduct returns the product's offers in creation order with their stores loaded.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.InventoryItem, error)
	// FindByStore returns the store's offers in creation order with their products loaded.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Omit("Product", "Store").Create(item).Error
}

func (r *inventoryRepo) List(ctx context.Context, params utils.PaginationParams) ([]models.InventoryItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.InventoryItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.InventoryItem
	query := utils.ApplySort(r.db.WithContext(ctx), params, inventorySortFields)
	if err := utils.ApplyPagination(query, params).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Store").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *inventoryRepo) FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Store").
		Where("product_id = ?", productID).
		Order("created_at, id").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByStore(ctx context.Context, storeID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("store_id = ?", storeID).
		Order("created_at, id").
		Find(&items).Error
	return items, err
}

// Update writes every column, so cleared offer fields are stored as NULL.
func (r *inventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Omit("Product", "Store").Save(item).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &models.InventoryItem{}, id)
}

func (r *inventoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.InventoryItem{}).Count(&n).Error
	return n, err
}
