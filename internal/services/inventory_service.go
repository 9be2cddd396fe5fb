// internal/services/inventory_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/materialmap-backend/internal/metrics"
	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/pricing"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

type InventoryService struct {
	inventory repository.InventoryRepository
	products  repository.ProductRepository
	stores    repository.StoreRepository
	metrics   *metrics.Metrics
	now       func() time.Time
}

type CreateInventoryRequest struct {
	ProductID          uuid.UUID  `json:"product_id" validate:"required"`
	StoreID            uuid.UUID  `json:"store_id" validate:"required"`
	Price              *float64   `json:"price" validate:"required"`
	Quantity           *int       `json:"quantity" validate:"required"`
	OriginalPrice      *float64   `json:"original_price,omitempty"`
	DiscountPercentage *float64   `json:"discount_percentage,omitempty"`
	OfferValidUntil    *time.Time `json:"offer_valid_until,omitempty"`
}

// UpdateInventoryRequest is a partial update; nil fields keep their stored value.
type UpdateInventoryRequest struct {
	ProductID          *uuid.UUID `json:"product_id,omitempty"`
	StoreID            *uuid.UUID `json:"store_id,omitempty"`
	Price              *float64   `json:"price,omitempty"`
	Quantity           *int       `json:"quantity,omitempty"`
	OriginalPrice      *float64   `json:"original_price,omitempty"`
	DiscountPercentage *float64   `json:"discount_percentage,omitempty"`
	OfferValidUntil    *time.Time `json:"offer_valid_until,omitempty"`
	ClearOffer         bool       `json:"clear_offer,omitempty"`
}

func (r *UpdateInventoryRequest) touchesPricing() bool {
	return r.Price != nil || r.OriginalPrice != nil || r.DiscountPercentage != nil ||
		r.OfferValidUntil != nil || r.ClearOffer
}

func NewInventoryService(
	inventory repository.InventoryRepository,
	products repository.ProductRepository,
	stores repository.StoreRepository,
	m *metrics.Metrics,
) *InventoryService {
	return &InventoryService{
		inventory: inventory,
		products:  products,
		stores:    stores,
		metrics:   m,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for offer expiry.
func (s *InventoryService) WithClock(now func() time.Time) *InventoryService {
	s.now = now
	return s
}

func (s *InventoryService) CreateItem(ctx context.Context, req *CreateInventoryRequest) (*models.InventoryItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := pricing.ValidatePriceAndQuantity(*req.Price, *req.Quantity); err != nil {
		return nil, err
	}
	if err := pricing.ValidateDiscount(req.DiscountPercentage); err != nil {
		return nil, err
	}

	if err := s.ensureReferences(ctx, req.ProductID, req.StoreID); err != nil {
		return nil, err
	}

	discount := pricing.NormalizeDiscount(req.DiscountPercentage)
	offer, err := pricing.ComputeOfferPricing(*req.Price, discount, req.OriginalPrice, s.now())
	if err != nil {
		return nil, err
	}
	if discount != nil && req.OfferValidUntil != nil {
		offer.OfferValidUntil = req.OfferValidUntil
	}

	item := &models.InventoryItem{
		ProductID:          req.ProductID,
		StoreID:            req.StoreID,
		Quantity:           *req.Quantity,
		DiscountPercentage: discount,
	}
	applyOffer(item, offer)

	if err := s.inventory.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.metrics.RecordOfferPriced(discount != nil)
	item.OfferActive = item.HasActiveOffer(s.now())
	logrus.WithFields(logrus.Fields{
		"inventory_id": item.ID,
		"price":        item.Price,
		"discounted":   discount != nil,
	}).Info("Inventory item created")

	return item, nil
}

// UpdateItem merges the request into the stored item and reprices it.
// The stored original price is the base for a discount, so repeated updates
// never stack discounts on an already discounted price.
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *UpdateInventoryRequest) (*models.InventoryItem, error) {
	if err := pricing.ValidateDiscount(req.DiscountPercentage); err != nil {
		return nil, err
	}

	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	productID, storeID := item.ProductID, item.StoreID
	if req.ProductID != nil {
		productID = *req.ProductID
	}
	if req.StoreID != nil {
		storeID = *req.StoreID
	}
	if productID != item.ProductID || storeID != item.StoreID {
		if err := s.ensureReferences(ctx, productID, storeID); err != nil {
			return nil, err
		}
	}

	quantity := item.Quantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	price := item.Price
	if req.Price != nil {
		price = *req.Price
	}
	if err := pricing.ValidatePriceAndQuantity(price, quantity); err != nil {
		return nil, err
	}

	item.ProductID = productID
	item.StoreID = storeID
	item.Quantity = quantity

	if req.touchesPricing() {
		offer, discount, err := s.repriceItem(item, req)
		if err != nil {
			return nil, err
		}
		item.DiscountPercentage = discount
		applyOffer(item, offer)
		s.metrics.RecordOfferPriced(discount != nil)
	}

	// Relations may point at the previous product or store.
	item.Product = nil
	item.Store = nil

	if err := s.inventory.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	item.OfferActive = item.HasActiveOffer(s.now())
	return item, nil
}

func (s *InventoryService) repriceItem(item *models.InventoryItem, req *UpdateInventoryRequest) (pricing.OfferPricing, *float64, error) {
	now := s.now()

	// Only an active discount has an undiscounted price to restore.
	wasDiscounted := item.DiscountPercentage != nil && item.OriginalPrice != nil

	if req.ClearOffer {
		price := item.Price
		switch {
		case req.Price != nil:
			price = *req.Price
		case wasDiscounted:
			price = *item.OriginalPrice
		}
		offer, err := pricing.ComputeOfferPricing(price, nil, nil, now)
		return offer, nil, err
	}

	discountChanged := req.DiscountPercentage != nil
	discount := item.DiscountPercentage
	if discountChanged {
		discount = pricing.NormalizeDiscount(req.DiscountPercentage)
	}

	if discount == nil {
		price := item.Price
		original := item.OriginalPrice
		if discountChanged && wasDiscounted {
			price = *item.OriginalPrice
			original = nil
		}
		if req.Price != nil {
			price = *req.Price
		}
		if req.OriginalPrice != nil {
			original = req.OriginalPrice
		}
		offer, err := pricing.ComputeOfferPricing(price, nil, original, now)
		return offer, nil, err
	}

	var (
		base     float64
		explicit *float64
	)
	switch {
	case req.OriginalPrice != nil:
		base = item.Price
		if req.Price != nil {
			base = *req.Price
		}
		explicit = req.OriginalPrice
	case req.Price != nil:
		base = *req.Price
	case item.OriginalPrice != nil:
		base = *item.OriginalPrice
	default:
		base = item.Price
	}

	offer, err := pricing.ComputeOfferPricing(base, discount, explicit, now)
	if err != nil {
		return offer, nil, err
	}

	switch {
	case req.OfferValidUntil != nil:
		offer.OfferValidUntil = req.OfferValidUntil
	case !discountChanged && req.Price == nil && req.OriginalPrice == nil && item.OfferValidUntil != nil:
		offer.OfferValidUntil = item.OfferValidUntil
	}

	return offer, discount, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.inventory.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	item.OfferActive = item.HasActiveOffer(s.now())
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.inventory.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInventoryNotFound
		}
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

func (s *InventoryService) ListItems(ctx context.Context, params utils.PaginationParams) ([]models.InventoryItem, int64, error) {
	items, total, err := s.inventory.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory: %w", err)
	}
	s.markActiveOffers(items)
	return nonNil(items), total, nil
}

// ListOffersForProduct returns every offer for the product, cheapest first.
// Offers with the same price keep their creation order.
func (s *InventoryService) ListOffersForProduct(ctx context.Context, productID uuid.UUID) ([]models.InventoryItem, error) {
	items, err := s.inventory.FindByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers for product: %w", err)
	}

	SortOffersByPrice(items)
	s.markActiveOffers(items)
	return nonNil(items), nil
}

func (s *InventoryService) ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.InventoryItem, error) {
	items, err := s.inventory.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory for store: %w", err)
	}
	s.markActiveOffers(items)
	return nonNil(items), nil
}

func (s *InventoryService) markActiveOffers(items []models.InventoryItem) {
	now := s.now()
	for i := range items {
		items[i].OfferActive = items[i].HasActiveOffer(now)
	}
}

// SortOffersByPrice orders offers by ascending price, keeping ties in place.
func SortOffersByPrice(items []models.InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Price < items[j].Price
	})
}

func (s *InventoryService) ensureReferences(ctx context.Context, productID, storeID uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to look up product: %w", err)
	}
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStoreNotFound
		}
		return fmt.Errorf("failed to look up store: %w", err)
	}
	return nil
}

func applyOffer(item *models.InventoryItem, offer pricing.OfferPricing) {
	item.Price = offer.EffectivePrice
	item.OriginalPrice = offer.OriginalPrice
	item.OfferValidUntil = offer.OfferValidUntil
}
