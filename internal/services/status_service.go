// internal/services/status_service.go
package services

import (
	"context"
	"fmt"

	"github.com/javajoker/materialmap-backend/internal/repository"
)

type StatusService struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	stores    repository.StoreRepository
	inventory repository.InventoryRepository
}

type TableCounts struct {
	Users          int64 `json:"users"`
	Products       int64 `json:"products"`
	Stores         int64 `json:"stores"`
	InventoryItems int64 `json:"inventory_items"`
}

func NewStatusService(
	users repository.UserRepository,
	products repository.ProductRepository,
	stores repository.StoreRepository,
	inventory repository.InventoryRepository,
) *StatusService {
	return &StatusService{
		users:     users,
		products:  products,
		stores:    stores,
		inventory: inventory,
	}
}

// Counts reports row counts per table. Any failure means the database is unreachable.
func (s *StatusService) Counts(ctx context.Context) (*TableCounts, error) {
	var counts TableCounts
	var err error

	if counts.Users, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if counts.Products, err = s.products.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if counts.Stores, err = s.stores.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count stores: %w", err)
	}
	if counts.InventoryItems, err = s.inventory.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count inventory: %w", err)
	}

	return &counts, nil
}
