package catalog

import (
	"fmt"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"
)

// Size is the closed enumeration of taco size classes. Sizes are static
// configuration, not user data: the set and its composition limits change only
// with the menu itself.
type Size string

// The six recognized size tiers.
const (
	SizeL      Size = "tacos_L"
	SizeBowl   Size = "tacos_BOWL"
	SizeLMixte Size = "tacos_L_mixte"
	SizeXL     Size = "tacos_XL"
	SizeXXL    Size = "tacos_XXL"
	SizeGiga   Size = "tacos_GIGA"
)

// maxSauceCount is fixed at 3 across all tiers in the current rules.
const maxSauceCount = 3

// sizeLimits maps each size to its protein-portion ceiling and garnish eligibility.
func sizeLimits() map[Size]struct {
	maxProteins  int
	allowGarnish bool
} {
	return map[Size]struct {
		maxProteins  int
		allowGarnish bool
	}{
		SizeL:      {maxProteins: 1, allowGarnish: true},
		SizeBowl:   {maxProteins: 2, allowGarnish: true},
		SizeLMixte: {maxProteins: 3, allowGarnish: true},
		SizeXL:     {maxProteins: 3, allowGarnish: true},
		SizeXXL:    {maxProteins: 4, allowGarnish: true},
		SizeGiga:   {maxProteins: 5, allowGarnish: true},
	}
}

// Validate checks the size against the closed enumeration.
func (s Size) Validate() error {
	if _, ok := sizeLimits()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%q is not a recognized size tier", string(s)))
	}
	return nil
}

// String returns the size code as it appears in the catalog feed.
func (s Size) String() string {
	return string(s)
}

// SizeTier combines a size with its current base price and composition limits.
// Base prices come from the live catalog; limits are static per size.
type SizeTier struct {
	size         Size
	basePrice    kernel.Price
	maxProteins  int
	maxSauces    int
	allowGarnish bool
}

// NewSizeTier creates the tier for a recognized size with the given base price.
// Limits are derived from the static size table.
func NewSizeTier(size Size, basePrice kernel.Price) (SizeTier, error) {
	if err := size.Validate(); err != nil {
		return SizeTier{}, err
	}
	limits := sizeLimits()[size]
	return SizeTier{
		size:         size,
		basePrice:    basePrice,
		maxProteins:  limits.maxProteins,
		maxSauces:    maxSauceCount,
		allowGarnish: limits.allowGarnish,
	}, nil
}

// RestoreSizeTier reconstructs a tier from an external catalog entry, trusting
// the feed's limits. Used by the catalog adapter; domain code uses NewSizeTier.
func RestoreSizeTier(
	size Size, basePrice kernel.Price, maxProteins, maxSauces int, allowGarnish bool,
) (SizeTier, error) {
	if err := size.Validate(); err != nil {
		return SizeTier{}, err
	}
	if maxProteins < 1 || maxProteins > 5 {
		return SizeTier{}, errs.NewValueIsOutOfRangeError("maxProteins", maxProteins, 1, 5)
	}
	if maxSauces < 1 {
		return SizeTier{}, errs.NewValueIsOutOfRangeError("maxSauces", maxSauces, 1, maxSauceCount)
	}
	return SizeTier{
		size:         size,
		basePrice:    basePrice,
		maxProteins:  maxProteins,
		maxSauces:    maxSauces,
		allowGarnish: allowGarnish,
	}, nil
}

// Size returns the tier's size code.
func (t SizeTier) Size() Size {
	return t.size
}

// BasePrice returns the tier's base price before components.
func (t SizeTier) BasePrice() kernel.Price {
	return t.basePrice
}

// MaxProteins returns the ceiling on the summed protein-portion quantity.
func (t SizeTier) MaxProteins() int {
	return t.maxProteins
}

// MaxSauces returns the ceiling on the sauce selection count.
func (t SizeTier) MaxSauces() int {
	return t.maxSauces
}

// AllowGarnish reports whether garnish selections are permitted for this tier.
func (t SizeTier) AllowGarnish() bool {
	return t.allowGarnish
}
