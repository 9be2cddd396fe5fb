package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/pricing"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/repository/mocks"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

type inventoryFixture struct {
	inventory *mocks.InventoryRepository
	products  *mocks.ProductRepository
	stores    *mocks.StoreRepository
	service   *InventoryService
}

func newInventoryFixture() *inventoryFixture {
	f := &inventoryFixture{
		inventory: new(mocks.InventoryRepository),
		products:  new(mocks.ProductRepository),
		stores:    new(mocks.StoreRepository),
	}
	f.service = NewInventoryService(f.inventory, f.products, f.stores, nil).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func (f *inventoryFixture) expectReferences(productID, storeID uuid.UUID) {
	f.products.On("FindByID", mock.Anything, productID).Return(&models.Product{}, nil)
	f.stores.On("FindByID", mock.Anything, storeID).Return(&models.Store{}, nil)
}

func TestInventoryService_CreateItemDerivesDiscount(t *testing.T) {
	f := newInventoryFixture()
	productID, storeID := uuid.New(), uuid.New()
	f.expectReferences(productID, storeID)
	f.inventory.On("Create", mock.Anything, mock.AnythingOfType("*models.InventoryItem")).Return(nil)

	item, err := f.service.CreateItem(context.Background(), &CreateInventoryRequest{
		ProductID:          productID,
		StoreID:            storeID,
		Price:              f64(100),
		Quantity:           intp(5),
		DiscountPercentage: f64(20),
	})
	require.NoError(t, err)

	assert.InDelta(t, 80.0, item.Price, 1e-9)
	require.NotNil(t, item.OriginalPrice)
	assert.Equal(t, 100.0, *item.OriginalPrice)
	require.NotNil(t, item.OfferValidUntil)
	assert.Equal(t, fixedNow.Add(pricing.OfferWindow), *item.OfferValidUntil)
	f.inventory.AssertExpectations(t)
}

func TestInventoryService_CreateItemWithoutDiscount(t *testing.T) {
	f := newInventoryFixture()
	productID, storeID := uuid.New(), uuid.New()
	f.expectReferences(productID, storeID)
	f.inventory.On("Create", mock.Anything, mock.Anything).Return(nil)

	item, err := f.service.CreateItem(context.Background(), &CreateInventoryRequest{
		ProductID: productID,
		StoreID:   storeID,
		Price:     f64(50),
		Quantity:  intp(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, item.Price)
	assert.Nil(t, item.OriginalPrice)
	assert.Nil(t, item.DiscountPercentage)
	assert.Nil(t, item.OfferValidUntil)
}

func TestInventoryService_CreateItemZeroDiscountIsNoDiscount(t *testing.T) {
	f := newInventoryFixture()
	productID, storeID := uuid.New(), uuid.New()
	f.expectReferences(productID, storeID)
	f.inventory.On("Create", mock.Anything, mock.Anything).Return(nil)

	item, err := f.service.CreateItem(context.Background(), &CreateInventoryRequest{
		ProductID:          productID,
		StoreID:            storeID,
		Price:              f64(40),
		Quantity:           intp(1),
		DiscountPercentage: f64(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 40.0, item.Price)
	assert.Nil(t, item.DiscountPercentage)
	assert.Nil(t, item.OfferValidUntil)
}

func TestInventoryService_CreateItemExplicitExpiry(t *testing.T) {
	f := newInventoryFixture()
	productID, storeID := uuid.New(), uuid.New()
	f.expectReferences(productID, storeID)
	f.inventory.On("Create", mock.Anything, mock.Anything).Return(nil)

	until := fixedNow.Add(72 * time.Hour)
	item, err := f.service.CreateItem(context.Background(), &CreateInventoryRequest{
		ProductID:          productID,
		StoreID:            storeID,
		Price:              f64(85),
		Quantity:           intp(1),
		OriginalPrice:      f64(100),
		DiscountPercentage: f64(15),
		OfferValidUntil:    &until,
	})
	require.NoError(t, err)

	assert.Equal(t, 85.0, item.Price)
	assert.Equal(t, 100.0, *item.OriginalPrice)
	assert.Equal(t, until, *item.OfferValidUntil)
}

func TestInventoryService_CreateItemRejectsInvalidInput(t *testing.T) {
	f := newInventoryFixture()
	ctx := context.Background()

	_, err := f.service.CreateItem(ctx, &CreateInventoryRequest{
		ProductID: uuid.New(), StoreID: uuid.New(),
		Price: f64(100), Quantity: intp(1), DiscountPercentage: f64(150),
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidDiscount)

	_, err = f.service.CreateItem(ctx, &CreateInventoryRequest{
		ProductID: uuid.New(), StoreID: uuid.New(),
		Price: f64(10), Quantity: intp(-1),
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidQuantityOrPrice)

	// Nothing was looked up or written.
	f.products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	f.inventory.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInventoryService_CreateItemUnknownReferences(t *testing.T) {
	f := newInventoryFixture()
	productID, storeID := uuid.New(), uuid.New()
	f.products.On("FindByID", mock.Anything, productID).Return(nil, repository.ErrNotFound)

	_, err := f.service.CreateItem(context.Background(), &CreateInventoryRequest{
		ProductID: productID, StoreID: storeID, Price: f64(1), Quantity: intp(1),
	})
	assert.ErrorIs(t, err, ErrProductNotFound)

	f = newInventoryFixture()
	f.products.On("FindByID", mock.Anything, productID).Return(&models.Product{}, nil)
	f.stores.On("FindByID", mock.Anything, storeID).Return(nil, repository.ErrNotFound)

	_, err = f.service.CreateItem(context.Background(), &CreateInventoryRequest{
		ProductID: productID, StoreID: storeID, Price: f64(1), Quantity: intp(1),
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func discountedItem() *models.InventoryItem {
	until := fixedNow.Add(-24 * time.Hour).Add(pricing.OfferWindow)
	item := &models.InventoryItem{
		ProductID:          uuid.New(),
		StoreID:            uuid.New(),
		Price:              80,
		Quantity:           10,
		OriginalPrice:      f64(100),
		DiscountPercentage: f64(20),
		OfferValidUntil:    &until,
	}
	item.ID = uuid.New()
	return item
}

func TestInventoryService_UpdateDiscountDoesNotCompound(t *testing.T) {
	f := newInventoryFixture()
	item := discountedItem()
	f.inventory.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	f.inventory.On("Update", mock.Anything, item).Return(nil)

	updated, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		DiscountPercentage: f64(10),
	})
	require.NoError(t, err)

	assert.InDelta(t, 90.0, updated.Price, 1e-9)
	assert.Equal(t, 100.0, *updated.OriginalPrice)
	assert.Equal(t, 10.0, *updated.DiscountPercentage)
	assert.Equal(t, fixedNow.Add(pricing.OfferWindow), *updated.OfferValidUntil)

	// The same update again yields the same price.
	again, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		DiscountPercentage: f64(10),
	})
	require.NoError(t, err)
	assert.InDelta(t, 90.0, again.Price, 1e-9)
}

func TestInventoryService_UpdateQuantityKeepsOffer(t *testing.T) {
	f := newInventoryFixture()
	item := discountedItem()
	expiry := *item.OfferValidUntil
	f.inventory.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	f.inventory.On("Update", mock.Anything, item).Return(nil)

	updated, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		Quantity: intp(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, 80.0, updated.Price)
	assert.Equal(t, expiry, *updated.OfferValidUntil)
}

func TestInventoryService_UpdateNewBasePriceWithDiscount(t *testing.T) {
	f := newInventoryFixture()
	item := discountedItem()
	f.inventory.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	f.inventory.On("Update", mock.Anything, item).Return(nil)

	updated, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		Price: f64(200),
	})
	require.NoError(t, err)

	assert.InDelta(t, 160.0, updated.Price, 1e-9)
	assert.Equal(t, 200.0, *updated.OriginalPrice)
}

func TestInventoryService_UpdateRemovingDiscountRestoresOriginal(t *testing.T) {
	f := newInventoryFixture()
	item := discountedItem()
	f.inventory.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	f.inventory.On("Update", mock.Anything, item).Return(nil)

	updated, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		DiscountPercentage: f64(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, updated.Price)
	assert.Nil(t, updated.OriginalPrice)
	assert.Nil(t, updated.DiscountPercentage)
	assert.Nil(t, updated.OfferValidUntil)
}

func TestInventoryService_UpdateClearOffer(t *testing.T) {
	f := newInventoryFixture()
	item := discountedItem()
	f.inventory.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	f.inventory.On("Update", mock.Anything, item).Return(nil)

	updated, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		ClearOffer: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, updated.Price)
	assert.Nil(t, updated.OriginalPrice)
	assert.Nil(t, updated.DiscountPercentage)
	assert.Nil(t, updated.OfferValidUntil)
}

func undiscountedItem() *models.InventoryItem {
	item := &models.InventoryItem{
		ProductID:     uuid.New(),
		StoreID:       uuid.New(),
		Price:         50,
		Quantity:      4,
		OriginalPrice: f64(65),
	}
	item.ID = uuid.New()
	return item
}

func TestInventoryService_UpdateZeroDiscountOnUndiscountedItemKeepsPrice(t *testing.T) {
	f := newInventoryFixture()
	item := undiscountedItem()
	f.inventory.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	f.inventory.On("Update", mock.Anything, item).Return(nil)

	updated, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		DiscountPercentage: f64(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, updated.Price)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, 65.0, *updated.OriginalPrice)
	assert.Nil(t, updated.DiscountPercentage)
	assert.Nil(t, updated.OfferValidUntil)
}

func TestInventoryService_UpdateClearOfferOnUndiscountedItemKeepsPrice(t *testing.T) {
	f := newInventoryFixture()
	item := undiscountedItem()
	f.inventory.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	f.inventory.On("Update", mock.Anything, item).Return(nil)

	updated, err := f.service.UpdateItem(context.Background(), item.ID, &UpdateInventoryRequest{
		ClearOffer: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, updated.Price)
	assert.Nil(t, updated.OriginalPrice)
	assert.Nil(t, updated.DiscountPercentage)
	assert.Nil(t, updated.OfferValidUntil)
}

func TestInventoryService_UpdateRejectsInvalidDiscount(t *testing.T) {
	f := newInventoryFixture()

	_, err := f.service.UpdateItem(context.Background(), uuid.New(), &UpdateInventoryRequest{
		DiscountPercentage: f64(101),
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidDiscount)
	f.inventory.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestInventoryService_UpdateMissingItem(t *testing.T) {
	f := newInventoryFixture()
	id := uuid.New()
	f.inventory.On("FindByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

	_, err := f.service.UpdateItem(context.Background(), id, &UpdateInventoryRequest{Quantity: intp(1)})
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryService_ListOffersForProductSortsStably(t *testing.T) {
	f := newInventoryFixture()
	productID := uuid.New()

	var items []models.InventoryItem
	for _, price := range []float64{80, 50, 50, 120} {
		item := models.InventoryItem{ProductID: productID, Price: price, Store: &models.Store{Name: "s"}}
		item.ID = uuid.New()
		items = append(items, item)
	}
	firstFifty, secondFifty := items[1].ID, items[2].ID
	f.inventory.On("FindByProduct", mock.Anything, productID).Return(items, nil)

	offers, err := f.service.ListOffersForProduct(context.Background(), productID)
	require.NoError(t, err)

	var prices []float64
	for _, offer := range offers {
		prices = append(prices, offer.Price)
		assert.NotNil(t, offer.Store)
	}
	assert.Equal(t, []float64{50, 50, 80, 120}, prices)
	assert.Equal(t, firstFifty, offers[0].ID)
	assert.Equal(t, secondFifty, offers[1].ID)
}

func TestInventoryService_ListOffersFlagsExpiredDiscounts(t *testing.T) {
	f := newInventoryFixture()
	productID := uuid.New()

	live := *discountedItem()
	expired := *discountedItem()
	ended := fixedNow.Add(-time.Hour)
	expired.OfferValidUntil = &ended
	plain := *undiscountedItem()
	f.inventory.On("FindByProduct", mock.Anything, productID).
		Return([]models.InventoryItem{live, expired, plain}, nil)

	offers, err := f.service.ListOffersForProduct(context.Background(), productID)
	require.NoError(t, err)

	active := map[uuid.UUID]bool{}
	for _, offer := range offers {
		active[offer.ID] = offer.OfferActive
	}
	assert.True(t, active[live.ID])
	assert.False(t, active[expired.ID])
	assert.False(t, active[plain.ID])
}

func TestInventoryService_ListOffersForProductEmpty(t *testing.T) {
	f := newInventoryFixture()
	productID := uuid.New()
	f.inventory.On("FindByProduct", mock.Anything, productID).Return(nil, nil)

	offers, err := f.service.ListOffersForProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
}

func TestInventoryService_RepositoryErrorsPropagate(t *testing.T) {
	f := newInventoryFixture()
	boom := errors.New("connection reset")
	productID := uuid.New()
	f.inventory.On("FindByProduct", mock.Anything, productID).Return(nil, boom)

	_, err := f.service.ListOffersForProduct(context.Background(), productID)
	assert.ErrorIs(t, err, boom)
}

func TestInventoryService_DeleteItem(t *testing.T) {
	f := newInventoryFixture()
	id := uuid.New()
	f.inventory.On("Delete", mock.Anything, id).Return(repository.ErrNotFound).Once()
	assert.ErrorIs(t, f.service.DeleteItem(context.Background(), id), ErrInventoryNotFound)

	f.inventory.On("Delete", mock.Anything, id).Return(nil).Once()
	assert.NoError(t, f.service.DeleteItem(context.Background(), id))
}
