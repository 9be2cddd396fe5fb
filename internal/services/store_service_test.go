package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/materialmap-backend/internal/config"
	"github.com/javajoker/materialmap-backend/internal/metrics"
	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/repository/mocks"
)

func storeAt(name string, lat, lon float64) models.Store {
	s := models.Store{Name: name, Latitude: &lat, Longitude: &lon}
	s.ID = uuid.New()
	return s
}

func TestStoreService_FindNearby(t *testing.T) {
	repo := new(mocks.StoreRepository)
	m := metrics.New("test")
	service := NewStoreService(repo, nil, m)

	repo.On("FindWithCoordinates", mock.Anything).Return([]models.Store{
		storeAt("close", 11.3415, 77.7171),
		storeAt("far", 12.9716, 77.5946),
		storeAt("also close", 11.3500, 77.7100),
	}, nil)

	stores, err := service.FindNearby(context.Background(), NearbyQuery{
		Latitude: 11.34, Longitude: 77.71, RadiusKm: 10,
	})
	require.NoError(t, err)

	require.Len(t, stores, 2)
	assert.Equal(t, "close", stores[0].Name)
	assert.Equal(t, "also close", stores[1].Name)
}

func TestStoreService_FindNearbyNegativeRadius(t *testing.T) {
	repo := new(mocks.StoreRepository)
	service := NewStoreService(repo, nil, nil)
	repo.On("FindWithCoordinates", mock.Anything).Return([]models.Store{storeAt("a", 0, 0)}, nil)

	stores, err := service.FindNearby(context.Background(), NearbyQuery{RadiusKm: -1})
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestStoreService_CreateStoreDefaultsCategory(t *testing.T) {
	repo := new(mocks.StoreRepository)
	service := NewStoreService(repo, nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Store")).Return(nil)

	store, err := service.CreateStore(context.Background(), &CreateStoreRequest{
		Name:    " Corner Shop ",
		Address: "1 Main St",
	})
	require.NoError(t, err)

	assert.Equal(t, "Corner Shop", store.Name)
	assert.Equal(t, models.DefaultStoreCategory, store.Category)
	assert.Nil(t, store.Latitude)
}

func TestStoreService_CreateStoreRejectsBadCoordinates(t *testing.T) {
	service := NewStoreService(new(mocks.StoreRepository), nil, nil)
	lat := 91.0

	_, err := service.CreateStore(context.Background(), &CreateStoreRequest{
		Name: "x", Address: "y", Latitude: &lat,
	})
	assert.Error(t, err)
}

func TestStoreService_UpdateStorePartial(t *testing.T) {
	repo := new(mocks.StoreRepository)
	service := NewStoreService(repo, nil, nil)

	existing := storeAt("Old", 1, 2)
	existing.Address = "Somewhere"
	existing.Category = "grocery"
	repo.On("FindByID", mock.Anything, existing.ID).Return(&existing, nil)
	repo.On("Update", mock.Anything, &existing).Return(nil)

	name := "New"
	updated, err := service.UpdateStore(context.Background(), existing.ID, &UpdateStoreRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "Somewhere", updated.Address)
	assert.Equal(t, "grocery", updated.Category)
	assert.Equal(t, 1.0, *updated.Latitude)
}

func TestStoreService_GetStoreNotFound(t *testing.T) {
	repo := new(mocks.StoreRepository)
	service := NewStoreService(repo, nil, nil)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

	_, err := service.GetStore(context.Background(), id)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestStoreService_UploadImage(t *testing.T) {
	repo := new(mocks.StoreRepository)
	storage := NewStorageServiceWithClient(&fakeS3{}, config.StorageConfig{
		Bucket:         "material-map",
		PublicBaseURL:  "https://cdn.example.com/material-map",
		MaxImageSizeMB: 5,
	}, nil)
	service := NewStoreService(repo, storage, nil)

	store := storeAt("Shop", 1, 1)
	repo.On("FindByID", mock.Anything, store.ID).Return(&store, nil)
	repo.On("Update", mock.Anything, &store).Return(nil)

	body := pngBytes()
	updated, err := service.UploadImage(context.Background(), store.ID, "front.PNG", int64(len(body)), bytesReader(body))
	require.NoError(t, err)

	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "https://cdn.example.com/material-map/stores/"+store.ID.String()+".png", *updated.ImageURL)
}
