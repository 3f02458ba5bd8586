package services_test

import (
	"testing"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/taco"
	"tacoshare/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPriceFromCents(amount)
	require.NoError(t, err)
	return price
}

func item(t *testing.T, id string, priceCents int64, inStock bool) catalog.Item {
	t.Helper()
	created, err := catalog.NewItem(id, id, cents(t, priceCents), inStock)
	require.NoError(t, err)
	return created
}

func tier(t *testing.T, size catalog.Size, priceCents int64) catalog.SizeTier {
	t.Helper()
	created, err := catalog.NewSizeTier(size, cents(t, priceCents))
	require.NoError(t, err)
	return created
}

// testSnapshot builds the catalog used across the service tests: a few items
// per category including one out-of-stock sauce, and all size tiers.
func testSnapshot(t *testing.T) catalog.Snapshot {
	t.Helper()
	items := map[catalog.Category][]catalog.Item{
		catalog.CategoryProtein: {
			item(t, "chicken", 200, true),
			item(t, "beef", 250, true),
			item(t, "cordon_bleu", 200, true),
			item(t, "merguez", 180, false),
		},
		catalog.CategorySauce: {
			item(t, "algerienne", 0, true),
			item(t, "blanche", 0, true),
			item(t, "samurai", 0, true),
			item(t, "harissa", 0, true),
			item(t, "biggy", 0, false),
		},
		catalog.CategoryGarnish: {
			item(t, "salade", 0, true),
			item(t, "tomate", 0, true),
			item(t, "oignon", 0, true),
		},
		catalog.CategoryAddon: {
			item(t, "fries", 300, true),
			item(t, "tenders_box", 850, true),
		},
		catalog.CategoryBeverage: {
			item(t, "coke", 150, true),
		},
		catalog.CategoryDessert: {
			item(t, "tiramisu", 300, true),
		},
	}
	tiers := []catalog.SizeTier{
		tier(t, catalog.SizeL, 950),
		tier(t, catalog.SizeBowl, 1050),
		tier(t, catalog.SizeLMixte, 1150),
		tier(t, catalog.SizeXL, 1250),
		tier(t, catalog.SizeXXL, 1550),
		tier(t, catalog.SizeGiga, 1950),
	}
	return catalog.NewSnapshot(items, tiers)
}

func proteins(ids ...string) []taco.ComponentSelectionInput {
	inputs := make([]taco.ComponentSelectionInput, 0, len(ids))
	for _, id := range ids {
		inputs = append(inputs, taco.ComponentSelectionInput{ID: id})
	}
	return inputs
}

func configuration(
	t *testing.T,
	size catalog.Size,
	proteinInputs []taco.ComponentSelectionInput,
	sauces []string,
	garnishes []string,
) taco.Configuration {
	t.Helper()
	cfg, err := taco.NewConfiguration(size, proteinInputs, sauces, garnishes, "", 1)
	require.NoError(t, err)
	return cfg
}

func TestCompositionValidator_ValidateConfiguration(t *testing.T) {
	snapshot := testSnapshot(t)
	validator := services.NewCompositionValidator()

	t.Run("should accept a fully composed item", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeXL,
			proteins("chicken", "beef"), []string{"algerienne", "blanche"}, []string{"salade"})

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.NoError(t, err)
	})

	t.Run("should accept protein sum equal to the tier cap", func(t *testing.T) {
		inputs := []taco.ComponentSelectionInput{
			{ID: "chicken", Quantity: 2, QuantitySet: true},
			{ID: "beef", Quantity: 1, QuantitySet: true},
		}
		cfg := configuration(t, catalog.SizeXL, inputs, []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.NoError(t, err)
	})

	t.Run("should reject protein sum above the tier cap", func(t *testing.T) {
		inputs := []taco.ComponentSelectionInput{
			{ID: "chicken", Quantity: 2, QuantitySet: true},
			{ID: "beef", Quantity: 2, QuantitySet: true},
		}
		cfg := configuration(t, catalog.SizeXL, inputs, []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrQuantityExceedsLimit)
	})

	t.Run("should enforce the single-protein cap of the smallest size", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeL,
			proteins("chicken", "beef"), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.ErrorIs(t, err, services.ErrQuantityExceedsLimit)
	})

	t.Run("should require a protein selection", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeL, nil, []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrMissingRequiredSelection)
		assert.Contains(t, err.Error(), "protein")
	})

	t.Run("should accept the explicit no-protein choice", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeL,
			proteins(catalog.NoProtein), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.NoError(t, err)
	})

	t.Run("should not count the no-protein choice toward the cap", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeL,
			proteins(catalog.NoProtein, "chicken"), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.NoError(t, err)
	})

	t.Run("should require a sauce selection", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeL, proteins("chicken"), nil, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrMissingRequiredSelection)
		assert.Contains(t, err.Error(), "sauce")
	})

	t.Run("should accept the explicit no-sauce choice", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeL,
			proteins("chicken"), []string{catalog.NoSauce}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.NoError(t, err)
	})

	t.Run("should reject more than three sauces on every size", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeGiga, proteins("chicken"),
			[]string{"algerienne", "blanche", "samurai", "harissa"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrQuantityExceedsLimit)
		assert.Contains(t, err.Error(), "sauces")
	})

	t.Run("should not let a repeated sauce exhaust the cap", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeGiga, proteins("chicken"),
			[]string{"algerienne", "algerienne", "algerienne", "blanche"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.NoError(t, err)
	})

	t.Run("should reject an unknown protein without dropping it", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeXL,
			proteins("kangaroo"), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrUnavailableItem)
		assert.Contains(t, err.Error(), "kangaroo")
	})

	t.Run("should reject an out-of-stock item", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeXL,
			proteins("merguez"), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.ErrorIs(t, err, services.ErrUnavailableItem)
	})

	t.Run("should reject an out-of-stock sauce", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeXL,
			proteins("chicken"), []string{"biggy"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.ErrorIs(t, err, services.ErrUnavailableItem)
	})

	t.Run("should reject a size absent from the snapshot", func(t *testing.T) {
		partial := catalog.NewSnapshot(map[catalog.Category][]catalog.Item{
			catalog.CategoryProtein: {item(t, "chicken", 200, true)},
			catalog.CategorySauce:   {item(t, "algerienne", 0, true)},
		}, []catalog.SizeTier{tier(t, catalog.SizeL, 950)})
		cfg := configuration(t, catalog.SizeGiga,
			proteins("chicken"), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, partial)

		require.ErrorIs(t, err, services.ErrUnavailableItem)
	})

	t.Run("should reject an unrecognized size code", func(t *testing.T) {
		cfg := configuration(t, catalog.Size("tacos_MEGA"),
			proteins("chicken"), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.Error(t, err)
	})

	t.Run("should reject garnish when the tier disallows it", func(t *testing.T) {
		noGarnishTier, err := catalog.RestoreSizeTier(catalog.SizeL, cents(t, 950), 1, 3, false)
		require.NoError(t, err)
		restricted := catalog.NewSnapshot(map[catalog.Category][]catalog.Item{
			catalog.CategoryProtein: {item(t, "chicken", 200, true)},
			catalog.CategorySauce:   {item(t, "algerienne", 0, true)},
			catalog.CategoryGarnish: {item(t, "salade", 0, true)},
		}, []catalog.SizeTier{noGarnishTier})
		cfg := configuration(t, catalog.SizeL,
			proteins("chicken"), []string{"algerienne"}, []string{"salade"})

		err = validator.ValidateConfiguration(cfg, restricted)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrGarnishNotAllowed)
	})

	t.Run("should never require garnish", func(t *testing.T) {
		cfg := configuration(t, catalog.SizeXL,
			proteins("chicken"), []string{"algerienne"}, nil)

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.NoError(t, err)
	})

	t.Run("should reject a zero-value configuration", func(t *testing.T) {
		var cfg taco.Configuration

		err := validator.ValidateConfiguration(cfg, snapshot)

		require.Error(t, err)
		assert.Equal(t, taco.ErrConfigurationIsNotConstructed, err)
	})
}

func TestCompositionValidator_ValidateSides(t *testing.T) {
	snapshot := testSnapshot(t)
	validator := services.NewCompositionValidator()

	side := func(id string, category catalog.Category, quantity int, slots []string) taco.SideSelection {
		created, err := taco.NewSideSelection(id, category, quantity, slots)
		require.NoError(t, err)
		return created
	}

	t.Run("should accept available sides of every category", func(t *testing.T) {
		sides := []taco.SideSelection{
			side("fries", catalog.CategoryAddon, 1, nil),
			side("coke", catalog.CategoryBeverage, 2, nil),
			side("tiramisu", catalog.CategoryDessert, 1, nil),
		}

		err := validator.ValidateSides(sides, snapshot)

		require.NoError(t, err)
	})

	t.Run("should reject an unknown side", func(t *testing.T) {
		sides := []taco.SideSelection{side("nachos", catalog.CategoryAddon, 1, nil)}

		err := validator.ValidateSides(sides, snapshot)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrUnavailableItem)
		assert.Contains(t, err.Error(), "nachos")
	})

	t.Run("should accept resolved free accompaniments", func(t *testing.T) {
		sides := []taco.SideSelection{
			side("fries", catalog.CategoryAddon, 2, []string{"algerienne", "blanche"}),
		}

		err := validator.ValidateSides(sides, snapshot)

		require.NoError(t, err)
	})

	t.Run("should reject an out-of-stock free accompaniment", func(t *testing.T) {
		sides := []taco.SideSelection{
			side("fries", catalog.CategoryAddon, 1, []string{"biggy"}),
		}

		err := validator.ValidateSides(sides, snapshot)

		require.ErrorIs(t, err, services.ErrUnavailableItem)
	})

	t.Run("should skip unresolved free-accompaniment slots", func(t *testing.T) {
		sides := []taco.SideSelection{
			side("tenders_box", catalog.CategoryAddon, 2, []string{"", "samurai"}),
		}

		err := validator.ValidateSides(sides, snapshot)

		require.NoError(t, err)
	})

	t.Run("should accept an empty side list", func(t *testing.T) {
		err := validator.ValidateSides(nil, snapshot)

		require.NoError(t, err)
	})
}
