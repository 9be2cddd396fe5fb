// internal/services/store_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/materialmap-backend/internal/geo"
	"github.com/javajoker/materialmap-backend/internal/metrics"
	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

type StoreService struct {
	stores  repository.StoreRepository
	storage *StorageService
	metrics *metrics.Metrics
}

type CreateStoreRequest struct {
	Name      string   `json:"name" validate:"required,notblank,max=255"`
	Category  *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Address   string   `json:"address" validate:"required,notblank,max=500"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Phone     *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	ImageURL  *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
}

type UpdateStoreRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Category  *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,notblank,max=500"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Phone     *string  `json:"phone,omitempty" validate:"omitempty,max=20"`
	ImageURL  *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
}

// NearbyQuery is a proximity search around a point.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

func NewStoreService(stores repository.StoreRepository, storage *StorageService, m *metrics.Metrics) *StoreService {
	return &StoreService{
		stores:  stores,
		storage: storage,
		metrics: m,
	}
}

func (s *StoreService) CreateStore(ctx context.Context, req *CreateStoreRequest) (*models.Store, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	store := &models.Store{
		Name:      strings.TrimSpace(req.Name),
		Category:  storeCategory(req.Category),
		Address:   strings.TrimSpace(req.Address),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Phone:     req.Phone,
		ImageURL:  req.ImageURL,
	}

	if err := s.stores.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

func (s *StoreService) GetStore(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return store, nil
}

func (s *StoreService) ListStores(ctx context.Context) ([]models.Store, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return nonNil(stores), nil
}

func (s *StoreService) ListByCategory(ctx context.Context, category string) ([]models.Store, error) {
	stores, err := s.stores.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores by category: %w", err)
	}
	return nonNil(stores), nil
}

func (s *StoreService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.stores.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list store categories: %w", err)
	}
	return nonNil(categories), nil
}

// FindNearby returns the stores within the query radius, in storage order.
func (s *StoreService) FindNearby(ctx context.Context, q NearbyQuery) ([]models.Store, error) {
	stores, err := s.stores.FindWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}

	nearby := geo.FindNearby(stores, q.Latitude, q.Longitude, q.RadiusKm)
	s.metrics.RecordNearbySearch(len(nearby))

	logrus.WithFields(logrus.Fields{
		"latitude":  q.Latitude,
		"longitude": q.Longitude,
		"radius_km": q.RadiusKm,
		"results":   len(nearby),
	}).Debug("Nearby store search")

	return nearby, nil
}

func (s *StoreService) UpdateStore(ctx context.Context, id uuid.UUID, req *UpdateStoreRequest) (*models.Store, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	store, err := s.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		store.Category = storeCategory(req.Category)
	}
	if req.Address != nil {
		store.Address = strings.TrimSpace(*req.Address)
	}
	if req.Latitude != nil {
		store.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		store.Longitude = req.Longitude
	}
	if req.Phone != nil {
		store.Phone = req.Phone
	}
	if req.ImageURL != nil {
		store.ImageURL = req.ImageURL
	}

	if err := s.stores.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	return store, nil
}

// DeleteStore removes the store only; its inventory rows are kept.
func (s *StoreService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	if err := s.stores.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStoreNotFound
		}
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}

func (s *StoreService) UploadImage(ctx context.Context, id uuid.UUID, filename string, size int64, body io.ReadSeeker) (*models.Store, error) {
	store, err := s.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.storage.UploadImage(ctx, FolderStores, id, filename, size, body)
	if err != nil {
		return nil, err
	}

	previous := store.ImageURL
	store.ImageURL = &result.URL
	if err := s.stores.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to save store image: %w", err)
	}

	removeReplacedImage(ctx, s.storage, previous, result.Key)
	return store, nil
}

func storeCategory(category *string) string {
	if category == nil || strings.TrimSpace(*category) == "" {
		return models.DefaultStoreCategory
	}
	return strings.TrimSpace(*category)
}
