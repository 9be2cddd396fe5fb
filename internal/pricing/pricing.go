// internal/pricing/pricing.go
package pricing

import (
	"errors"
	"math"
	"time"
)

// OfferWindow is how long a discount stays valid once it is applied.
const OfferWindow = 30 * 24 * time.Hour

var (
	ErrInvalidDiscount        = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidQuantityOrPrice = errors.New("price and quantity must not be negative")
)

// OfferPricing holds the derived price fields of an inventory offer.
type OfferPricing struct {
	EffectivePrice  float64
	OriginalPrice   *float64
	OfferValidUntil *time.Time
}

// ValidateDiscount rejects a discount outside [0, 100]. A nil discount is valid.
func ValidateDiscount(discountPercentage *float64) error {
	if discountPercentage == nil {
		return nil
	}
	d := *discountPercentage
	if math.IsNaN(d) || d < 0 || d > 100 {
		return ErrInvalidDiscount
	}
	return nil
}

// ValidatePriceAndQuantity rejects negative (or NaN) prices and negative quantities.
func ValidatePriceAndQuantity(price float64, quantity int) error {
	if math.IsNaN(price) || price < 0 || quantity < 0 {
		return ErrInvalidQuantityOrPrice
	}
	return nil
}

// ComputeOfferPricing derives the effective price, original price and offer
// expiry for an offer.
//
// Without a discount the base price is charged as is and the original price
// passes through untouched. With a discount and no explicit original price,
// basePrice is the pre-discount price and the effective price is derived from
// it. With both, the caller's figures are kept and only the expiry is set.
func ComputeOfferPricing(basePrice float64, discountPercentage, explicitOriginalPrice *float64, now time.Time) (OfferPricing, error) {
	if math.IsNaN(basePrice) || basePrice < 0 {
		return OfferPricing{}, ErrInvalidQuantityOrPrice
	}
	if err := ValidateDiscount(discountPercentage); err != nil {
		return OfferPricing{}, err
	}

	if discountPercentage == nil {
		return OfferPricing{
			EffectivePrice: basePrice,
			OriginalPrice:  copyFloat(explicitOriginalPrice),
		}, nil
	}

	validUntil := now.Add(OfferWindow)

	if explicitOriginalPrice != nil {
		return OfferPricing{
			EffectivePrice:  basePrice,
			OriginalPrice:   copyFloat(explicitOriginalPrice),
			OfferValidUntil: &validUntil,
		}, nil
	}

	original := basePrice
	return OfferPricing{
		EffectivePrice:  basePrice * (1 - *discountPercentage/100),
		OriginalPrice:   &original,
		OfferValidUntil: &validUntil,
	}, nil
}

// NormalizeDiscount treats a zero discount as no discount at all.
func NormalizeDiscount(discountPercentage *float64) *float64 {
	if discountPercentage == nil || *discountPercentage == 0 {
		return nil
	}
	return copyFloat(discountPercentage)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
