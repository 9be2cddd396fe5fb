package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/materialmap-backend/internal/config"
	"github.com/javajoker/materialmap-backend/internal/handlers"
	"github.com/javajoker/materialmap-backend/internal/metrics"
	"github.com/javajoker/materialmap-backend/internal/middleware"
	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/repository/mocks"
	"github.com/javajoker/materialmap-backend/internal/services"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

type fixture struct {
	engine   *gin.Engine
	products *mocks.ProductRepository
	stores   *mocks.StoreRepository
	limiters *middleware.RateLimiters
}

func newFixture(t *testing.T, m *metrics.Metrics) *fixture {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "router-test", AccessTokenTTL: 1},
		RateLimit: config.RateLimitConfig{
			GeneralPerSecond: 1000, GeneralBurst: 1000,
			AuthPerMinute: 600, AuthBurst: 100,
			UploadPerMinute: 600, UploadBurst: 100,
		},
	}

	users := new(mocks.UserRepository)
	products := new(mocks.ProductRepository)
	stores := new(mocks.StoreRepository)
	inventory := new(mocks.InventoryRepository)
	seeds := new(mocks.SeedRepository)

	storage, err := services.NewStorageService(config.StorageConfig{MaxImageSizeMB: 1}, m)
	require.NoError(t, err)

	h := Handlers{
		Auth:      handlers.NewAuthHandler(services.NewAuthService(users, cfg)),
		Product:   handlers.NewProductHandler(services.NewProductService(products, storage), storage),
		Store:     handlers.NewStoreHandler(services.NewStoreService(stores, storage, m), storage),
		Inventory: handlers.NewInventoryHandler(services.NewInventoryService(inventory, products, stores, m)),
		Seed:      handlers.NewSeedHandler(services.NewSeedService(products, seeds, cfg.Seed, m)),
		Health:    handlers.NewHealthHandler(services.NewStatusService(users, products, stores, inventory), "test", ""),
	}

	limiters := middleware.NewRateLimiters(cfg.RateLimit)
	t.Cleanup(limiters.Stop)

	return &fixture{
		engine:   New(cfg, h, m, limiters),
		products: products,
		stores:   stores,
		limiters: limiters,
	}
}

func (f *fixture) request(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthEndpoints(t *testing.T) {
	f := newFixture(t, nil)

	for _, path := range []string{"/", "/health", "/api/health"} {
		w := f.request(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_MutationsRequireToken(t *testing.T) {
	f := newFixture(t, nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/stores/" + uuid.NewString()},
		{http.MethodDelete, "/api/inventory/" + uuid.NewString()},
		{http.MethodPost, "/api/stores/" + uuid.NewString() + "/image"},
	} {
		w := f.request(route.method, route.path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestRouter_AuthorizedMutationReachesHandler(t *testing.T) {
	f := newFixture(t, nil)
	token, err := utils.GenerateJWT(uuid.New(), "owner@example.com", 1)
	require.NoError(t, err)

	id := uuid.New()
	f.products.On("Delete", mock.Anything, id).Return(nil)

	w := f.request(http.MethodDelete, "/api/products/"+id.String(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	f.products.AssertExpectations(t)
}

func TestRouter_LogoutIdentifiesCaller(t *testing.T) {
	f := newFixture(t, nil)
	hook := logtest.NewGlobal()
	t.Cleanup(hook.Reset)

	userID := uuid.New()
	token, err := utils.GenerateJWT(userID, "owner@example.com", 1)
	require.NoError(t, err)

	w := f.request(http.MethodPost, "/api/auth/logout", map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var logged bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "User logged out" {
			logged = true
			assert.Equal(t, userID.String(), entry.Data["user_id"])
		}
	}
	assert.True(t, logged)

	// Anonymous logout still succeeds.
	hook.Reset()
	w = f.request(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, "User logged out", entry.Message)
	}
}

func TestRouter_NearbyIsNotAStoreID(t *testing.T) {
	f := newFixture(t, nil)
	f.stores.On("FindWithCoordinates", mock.Anything).Return([]models.Store{}, nil)

	w := f.request(http.MethodGet, "/api/stores/nearby?latitude=1&longitude=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	f.stores.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestRouter_CORSPreflight(t *testing.T) {
	f := newFixture(t, nil)

	w := f.request(http.MethodOptions, "/api/products", map[string]string{
		"Origin":                        "https://materialmap.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	f := newFixture(t, metrics.New("materialmap"))
	f.stores.On("FindWithCoordinates", mock.Anything).Return([]models.Store{}, nil)

	f.request(http.MethodGet, "/api/stores/nearby", nil)

	w := f.request(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "materialmap_nearby_searches_total"), body)
	assert.True(t, strings.Contains(body, `path="/api/stores/nearby"`))
}

func TestRouter_NoMetricsRouteWhenDisabled(t *testing.T) {
	f := newFixture(t, nil)

	w := f.request(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
