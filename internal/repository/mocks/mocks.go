// internal/repository/mocks/mocks.go
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

var (
	_ repository.UserRepository      = (*UserRepository)(nil)
	_ repository.ProductRepository   = (*ProductRepository)(nil)
	_ repository.StoreRepository     = (*StoreRepository)(nil)
	_ repository.InventoryRepository = (*InventoryRepository)(nil)
	_ repository.SeedRepository      = (*SeedRepository)(nil)
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	args := m.Called(ctx, params)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *ProductRepository) FindByCategory(ctx context.Context, category string, limit int) ([]models.Product, error) {
	args := m.Called(ctx, category, limit)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *ProductRepository) Search(ctx context.Context, query, tag string, limit int) ([]models.Product, error) {
	args := m.Called(ctx, query, tag, limit)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type StoreRepository struct{ mock.Mock }

func (m *StoreRepository) Create(ctx context.Context, store *models.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *StoreRepository) FindAll(ctx context.Context) ([]models.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]models.Store)
	return stores, args.Error(1)
}

func (m *StoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*models.Store)
	return store, args.Error(1)
}

func (m *StoreRepository) FindByCategory(ctx context.Context, category string) ([]models.Store, error) {
	args := m.Called(ctx, category)
	stores, _ := args.Get(0).([]models.Store)
	return stores, args.Error(1)
}

func (m *StoreRepository) FindWithCoordinates(ctx context.Context) ([]models.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]models.Store)
	return stores, args.Error(1)
}

func (m *StoreRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

func (m *StoreRepository) Update(ctx context.Context, store *models.Store) error {
	return m.Called(ctx, store).Error(0)
}

func (m *StoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *StoreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type InventoryRepository struct{ mock.Mock }

func (m *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *InventoryRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.InventoryItem, int64, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]models.InventoryItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.InventoryItem)
	return item, args.Error(1)
}

func (m *InventoryRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]models.InventoryItem, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]models.InventoryItem)
	return items, args.Error(1)
}

func (m *InventoryRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]models.InventoryItem, error) {
	args := m.Called(ctx, storeID)
	items, _ := args.Get(0).([]models.InventoryItem)
	return items, args.Error(1)
}

func (m *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *InventoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type SeedRepository struct{ mock.Mock }

func (m *SeedRepository) WriteCatalog(ctx context.Context, catalog *repository.Catalog) error {
	return m.Called(ctx, catalog).Error(0)
}
