package catalog_test

import (
	"testing"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize_Validate(t *testing.T) {
	valid := []catalog.Size{
		catalog.SizeL, catalog.SizeBowl, catalog.SizeLMixte,
		catalog.SizeXL, catalog.SizeXXL, catalog.SizeGiga,
	}
	for _, size := range valid {
		t.Run(size.String(), func(t *testing.T) {
			require.NoError(t, size.Validate())
		})
	}

	t.Run("unknown size rejected", func(t *testing.T) {
		err := catalog.Size("tacos_MEGA").Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewSizeTier(t *testing.T) {
	base, _ := kernel.NewPriceFromCents(950)

	t.Run("limits follow the size table", func(t *testing.T) {
		expectations := map[catalog.Size]int{
			catalog.SizeL:      1,
			catalog.SizeBowl:   2,
			catalog.SizeLMixte: 3,
			catalog.SizeXL:     3,
			catalog.SizeXXL:    4,
			catalog.SizeGiga:   5,
		}

		for size, maxProteins := range expectations {
			tier, err := catalog.NewSizeTier(size, base)

			require.NoError(t, err)
			assert.Equal(t, maxProteins, tier.MaxProteins(), size.String())
			assert.Equal(t, 3, tier.MaxSauces(), "sauce cap is fixed at 3")
			assert.True(t, tier.AllowGarnish())
			assert.True(t, tier.BasePrice().IsEqual(base))
		}
	})

	t.Run("unknown size rejected", func(t *testing.T) {
		_, err := catalog.NewSizeTier(catalog.Size("tacos_S"), base)
		require.Error(t, err)
	})
}

func TestRestoreSizeTier(t *testing.T) {
	base, _ := kernel.NewPriceFromCents(1200)

	t.Run("feed values are trusted within bounds", func(t *testing.T) {
		tier, err := catalog.RestoreSizeTier(catalog.SizeXL, base, 3, 3, false)

		require.NoError(t, err)
		assert.Equal(t, 3, tier.MaxProteins())
		assert.False(t, tier.AllowGarnish())
	})

	t.Run("protein ceiling out of bounds rejected", func(t *testing.T) {
		_, err := catalog.RestoreSizeTier(catalog.SizeXL, base, 6, 3, true)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
