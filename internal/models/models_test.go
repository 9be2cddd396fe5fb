package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Password(t *testing.T) {
	u := &User{Email: "a@example.com"}
	require.NoError(t, u.SetPassword("s3cret"))

	assert.NotEqual(t, "s3cret", u.HashedPassword)
	assert.NoError(t, u.CheckPassword("s3cret"))
	assert.Error(t, u.CheckPassword("wrong"))
}

func TestBaseModel_BeforeCreateKeepsPresetID(t *testing.T) {
	preset := uuid.New()
	b := &BaseModel{ID: preset}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, preset, b.ID)

	fresh := &BaseModel{}
	require.NoError(t, fresh.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, fresh.ID)
}

func TestStore_Coordinates(t *testing.T) {
	lat, lon := 0.0, 0.0
	_, _, ok := Store{Latitude: &lat}.Coordinates()
	assert.False(t, ok)

	gotLat, gotLon, ok := Store{Latitude: &lat, Longitude: &lon}.Coordinates()
	assert.True(t, ok)
	assert.Equal(t, 0.0, gotLat)
	assert.Equal(t, 0.0, gotLon)
}

func TestInventoryItem_HasActiveOffer(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)
	d := 10.0
	zero := 0.0

	assert.False(t, (&InventoryItem{}).HasActiveOffer(now))
	assert.False(t, (&InventoryItem{DiscountPercentage: &zero}).HasActiveOffer(now))
	assert.True(t, (&InventoryItem{DiscountPercentage: &d, OfferValidUntil: &later}).HasActiveOffer(now))
	assert.False(t, (&InventoryItem{DiscountPercentage: &d, OfferValidUntil: &earlier}).HasActiveOffer(now))
}
