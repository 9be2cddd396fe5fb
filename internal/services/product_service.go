// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

const (
	CategoryProductsLimit = 30
	SearchProductsLimit   = 20
)

type ProductService struct {
	products repository.ProductRepository
	storage  *StorageService
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,notblank,max=255"`
	Brand       string   `json:"brand" validate:"required,notblank,max=255"`
	Category    string   `json:"category" validate:"required,notblank,max=100"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Description *string  `json:"description,omitempty"`
	Unit        *string  `json:"unit,omitempty" validate:"omitempty,max=100"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,notblank,max=50"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Brand       *string  `json:"brand,omitempty" validate:"omitempty,notblank,max=255"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,notblank,max=100"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	Description *string  `json:"description,omitempty"`
	Unit        *string  `json:"unit,omitempty" validate:"omitempty,max=100"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,notblank,max=50"`
}

func NewProductService(products repository.ProductRepository, storage *StorageService) *ProductService {
	return &ProductService{
		products: products,
		storage:  storage,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Brand:       strings.TrimSpace(req.Brand),
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Unit:        req.Unit,
		Tags:        pq.StringArray(req.Tags),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	products, total, err := s.products.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return nonNil(products), total, nil
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.products.FindByCategory(ctx, category, CategoryProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return nonNil(products), nil
}

// SearchProducts matches the query against name and brand. An empty query
// returns nothing rather than the whole catalog.
func (s *ProductService) SearchProducts(ctx context.Context, query, tag string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Product{}, nil
	}

	products, err := s.products.Search(ctx, query, strings.TrimSpace(tag), SearchProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return nonNil(products), nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Brand != nil {
		product.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Unit != nil {
		product.Unit = req.Unit
	}
	if req.Tags != nil {
		product.Tags = pq.StringArray(req.Tags)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes the product only; its inventory rows are kept.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) UploadImage(ctx context.Context, id uuid.UUID, filename string, size int64, body io.ReadSeeker) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.storage.UploadImage(ctx, FolderProducts, id, filename, size, body)
	if err != nil {
		return nil, err
	}

	previous := product.ImageURL
	product.ImageURL = &result.URL
	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product image: %w", err)
	}

	removeReplacedImage(ctx, s.storage, previous, result.Key)
	return product, nil
}

// removeReplacedImage deletes an older object of ours whose key differs from
// the new one, e.g. after a .png replaced a .jpg.
func removeReplacedImage(ctx context.Context, storage *StorageService, previous *string, currentKey string) {
	if previous == nil {
		return
	}
	oldKey, ok := storage.KeyFromURL(*previous)
	if !ok || oldKey == currentKey {
		return
	}
	if err := storage.DeleteFile(ctx, oldKey); err != nil {
		logrus.WithError(err).WithField("key", oldKey).Warn("Failed to delete replaced image")
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
