// internal/repository/seed_repo.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/materialmap-backend/internal/database"
	"github.com/javajoker/materialmap-backend/internal/models"
)

// Catalog is a batch of rows written together by the seeder.
type Catalog struct {
	Stores    []models.Store
	Products  []models.Product
	Inventory []models.InventoryItem
}

type SeedRepository interface {
	// WriteCatalog inserts the whole catalog in one transaction.
	WriteCatalog(ctx context.Context, catalog *Catalog) error
}

type seedRepo struct {
	db *gorm.DB
}

func NewSeedRepo(db *gorm.DB) SeedRepository {
	return &seedRepo{db}
}

func (r *seedRepo) WriteCatalog(ctx context.Context, catalog *Catalog) error {
	return database.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if len(catalog.Stores) > 0 {
			if err := tx.Create(&catalog.Stores).Error; err != nil {
				return fmt.Errorf("failed to insert stores: %w", err)
			}
		}
		if len(catalog.Products) > 0 {
			if err := tx.Create(&catalog.Products).Error; err != nil {
				return fmt.Errorf("failed to insert products: %w", err)
			}
		}
		if len(catalog.Inventory) > 0 {
			if err := tx.Omit("Product", "Store").Create(&catalog.Inventory).Error; err != nil {
				return fmt.Errorf("failed to insert inventory: %w", err)
			}
		}
		return nil
	})
}
