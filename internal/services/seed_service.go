// internal/services/seed_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/materialmap-backend/internal/config"
	"github.com/javajoker/materialmap-backend/internal/metrics"
	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/pricing"
	"github.com/javajoker/materialmap-backend/internal/repository"
)

const (
	SeedKindQuick = "quick"
	SeedKindFull  = "full"
)

type SeedService struct {
	products repository.ProductRepository
	seeds    repository.SeedRepository
	cfg      config.SeedConfig
	metrics  *metrics.Metrics
	now      func() time.Time
}

type SeedResult struct {
	Stores         int `json:"stores"`
	Products       int `json:"products"`
	InventoryItems int `json:"inventory_items"`
}

// AlreadySeededError carries the product count found when seeding was refused.
type AlreadySeededError struct {
	ProductCount int64
}

func (e *AlreadySeededError) Error() string {
	return fmt.Sprintf("%s (%d products)", ErrAlreadySeeded, e.ProductCount)
}

func (e *AlreadySeededError) Unwrap() error { return ErrAlreadySeeded }

func NewSeedService(products repository.ProductRepository, seeds repository.SeedRepository, cfg config.SeedConfig, m *metrics.Metrics) *SeedService {
	return &SeedService{
		products: products,
		seeds:    seeds,
		cfg:      cfg,
		metrics:  m,
		now:      time.Now,
	}
}

// QuickSeed writes a small demo catalog: 3 stores, 15 products, 2 offers each.
func (s *SeedService) QuickSeed(ctx context.Context) (*SeedResult, error) {
	return s.seed(ctx, SeedKindQuick, s.quickCatalog)
}

// FullSeed writes the categorized demo catalog.
func (s *SeedService) FullSeed(ctx context.Context) (*SeedResult, error) {
	return s.seed(ctx, SeedKindFull, s.fullCatalog)
}

func (s *SeedService) seed(ctx context.Context, kind string, build func(time.Time) (*repository.Catalog, error)) (result *SeedResult, err error) {
	defer func() {
		if !errors.Is(err, ErrAlreadySeeded) {
			s.metrics.RecordSeedRun(kind, err)
		}
	}()

	count, err := s.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil, &AlreadySeededError{ProductCount: count}
	}

	catalog, err := build(s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to build %s catalog: %w", kind, err)
	}

	err = s.retry(ctx, func() error {
		return s.seeds.WriteCatalog(ctx, catalog)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write %s catalog: %w", kind, err)
	}

	logrus.WithFields(logrus.Fields{
		"kind":      kind,
		"stores":    len(catalog.Stores),
		"products":  len(catalog.Products),
		"inventory": len(catalog.Inventory),
	}).Info("Database seeded")

	return &SeedResult{
		Stores:         len(catalog.Stores),
		Products:       len(catalog.Products),
		InventoryItems: len(catalog.Inventory),
	}, nil
}

// retry runs op up to MaxRetries times, doubling the delay after each failure.
func (s *SeedService) retry(ctx context.Context, op func() error) error {
	attempts := s.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	delay := time.Duration(s.cfg.InitialDelayMs) * time.Millisecond

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		logrus.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
		}).Warn("Seed attempt failed, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), err)
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}

func (s *SeedService) quickCatalog(now time.Time) (*repository.Catalog, error) {
	clock := newSeedClock(now)
	catalog := &repository.Catalog{
		Stores:   buildStores(quickStores, clock),
		Products: buildProducts(quickProducts, clock),
	}

	for _, product := range catalog.Products {
		for i, store := range catalog.Stores[:2] {
			base := 50 + float64(len(product.Name)*3) + float64(i*10)
			var discount *float64
			if i == 0 {
				d := 5.0
				discount = &d
			}
			item, err := pricedItem(product.ID, store.ID, base, 100-i*20, discount, now)
			if err != nil {
				return nil, err
			}
			item.CreatedAt = clock.next()
			catalog.Inventory = append(catalog.Inventory, *item)
		}
	}

	return catalog, nil
}

func (s *SeedService) fullCatalog(now time.Time) (*repository.Catalog, error) {
	clock := newSeedClock(now)
	catalog := &repository.Catalog{
		Stores:   buildStores(fullStores, clock),
		Products: buildProducts(fullProducts, clock),
	}

	for _, plan := range fullOfferPlans {
		stores := storesInCategory(catalog.Stores, plan.StoreCategory)
		products := productsInCategory(catalog.Products, plan.ProductCategory)

		for productIdx, product := range products {
			for storeIdx, store := range stores {
				if storeIdx >= len(plan.Prices) {
					break
				}
				base := plan.Prices[storeIdx] +
					plan.StepPerProduct*float64(productIdx) +
					plan.NameSurcharge*float64(len(product.Name))

				var discount *float64
				if plan.DiscountAt(storeIdx) {
					d := plan.Discount
					discount = &d
				}

				item, err := pricedItem(product.ID, store.ID, base, plan.Quantities[storeIdx], discount, now)
				if err != nil {
					return nil, err
				}
				item.CreatedAt = clock.next()
				catalog.Inventory = append(catalog.Inventory, *item)
			}
		}
	}

	return catalog, nil
}

func pricedItem(productID, storeID uuid.UUID, base float64, quantity int, discount *float64, now time.Time) (*models.InventoryItem, error) {
	if err := pricing.ValidatePriceAndQuantity(base, quantity); err != nil {
		return nil, err
	}
	offer, err := pricing.ComputeOfferPricing(base, discount, nil, now)
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		ProductID:          productID,
		StoreID:            storeID,
		Quantity:           quantity,
		DiscountPercentage: pricing.NormalizeDiscount(discount),
	}
	item.ID = uuid.New()
	applyOffer(item, offer)
	return item, nil
}

func buildStores(seeds []storeSeed, clock *seedClock) []models.Store {
	stores := make([]models.Store, 0, len(seeds))
	for _, seed := range seeds {
		lat, lon := seed.Latitude, seed.Longitude
		store := models.Store{
			Name:      seed.Name,
			Category:  seed.Category,
			Address:   seed.Address,
			Latitude:  &lat,
			Longitude: &lon,
		}
		if seed.Phone != "" {
			phone := seed.Phone
			store.Phone = &phone
		}
		store.ID = uuid.New()
		store.CreatedAt = clock.next()
		stores = append(stores, store)
	}
	return stores
}

func buildProducts(seeds []productSeed, clock *seedClock) []models.Product {
	products := make([]models.Product, 0, len(seeds))
	for _, seed := range seeds {
		product := models.Product{
			Name:     seed.Name,
			Brand:    seed.Brand,
			Category: seed.Category,
			Tags:     pq.StringArray{seed.Category},
		}
		if seed.Unit != "" {
			unit := seed.Unit
			product.Unit = &unit
		}
		if seed.Description != "" {
			description := seed.Description
			product.Description = &description
		}
		product.ID = uuid.New()
		product.CreatedAt = clock.next()
		products = append(products, product)
	}
	return products
}

func storesInCategory(stores []models.Store, category string) []models.Store {
	var out []models.Store
	for _, store := range stores {
		if store.Category == category {
			out = append(out, store)
		}
	}
	return out
}

func productsInCategory(products []models.Product, category string) []models.Product {
	var out []models.Product
	for _, product := range products {
		if product.Category == category {
			out = append(out, product)
		}
	}
	return out
}

// seedClock hands out strictly increasing timestamps so seeded rows keep
// their insertion order when sorted by created_at.
type seedClock struct {
	t time.Time
}

func newSeedClock(start time.Time) *seedClock {
	return &seedClock{t: start.UTC().Truncate(time.Microsecond)}
}

func (c *seedClock) next() time.Time {
	c.t = c.t.Add(time.Microsecond)
	return c.t
}
