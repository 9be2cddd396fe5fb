package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/materialmap-backend/internal/repository/mocks"
)

func TestStatusService_Counts(t *testing.T) {
	users, products := new(mocks.UserRepository), new(mocks.ProductRepository)
	stores, inventory := new(mocks.StoreRepository), new(mocks.InventoryRepository)
	users.On("Count", anyCtx).Return(int64(2), nil)
	products.On("Count", anyCtx).Return(int64(36), nil)
	stores.On("Count", anyCtx).Return(int64(13), nil)
	inventory.On("Count", anyCtx).Return(int64(110), nil)

	counts, err := NewStatusService(users, products, stores, inventory).Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &TableCounts{Users: 2, Products: 36, Stores: 13, InventoryItems: 110}, counts)
}

func TestStatusService_CountsFailure(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("Count", anyCtx).Return(int64(0), errors.New("dial tcp: refused"))

	_, err := NewStatusService(users, nil, nil, nil).Counts(context.Background())
	assert.Error(t, err)
}
