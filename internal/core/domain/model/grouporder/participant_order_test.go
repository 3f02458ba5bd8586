package grouporder_test

import (
	"testing"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/taco"
	"tacoshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration(t *testing.T) *taco.Configuration {
	t.Helper()
	cfg, err := taco.NewConfiguration(
		catalog.SizeL,
		[]taco.ComponentSelectionInput{{ID: "chicken"}},
		[]string{"algerienne"},
		nil, "", 1)
	require.NoError(t, err)
	return &cfg
}

func testSides(t *testing.T) []taco.SideSelection {
	t.Helper()
	side, err := taco.NewSideSelection("coke", catalog.CategoryBeverage, 1, nil)
	require.NoError(t, err)
	return []taco.SideSelection{side}
}

func price(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	created, err := kernel.NewPriceFromCents(amount)
	require.NoError(t, err)
	return created
}

func TestNewParticipantOrder(t *testing.T) {
	t.Run("should create an order with a composed item and sides", func(t *testing.T) {
		id := kernel.NewUUID()
		groupOrderID := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		participantOrder, err := grouporder.NewParticipantOrder(
			id, groupOrderID, ownerID, testConfiguration(t), testSides(t), price(t, 1300))

		require.NoError(t, err)
		assert.True(t, participantOrder.ID().IsEqual(id))
		assert.True(t, participantOrder.GroupOrderID().IsEqual(groupOrderID))
		assert.True(t, participantOrder.OwnerID().IsEqual(ownerID))
		require.NotNil(t, participantOrder.Configuration())
		assert.Len(t, participantOrder.Sides(), 1)
		assert.Equal(t, int64(1300), participantOrder.Total().Cents())
	})

	t.Run("should create a side-items-only order", func(t *testing.T) {
		participantOrder, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, testSides(t), price(t, 150))

		require.NoError(t, err)
		assert.Nil(t, participantOrder.Configuration())
		assert.Len(t, participantOrder.Sides(), 1)
	})

	t.Run("should reject an empty order", func(t *testing.T) {
		_, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, price(t, 0))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a zero-value configuration", func(t *testing.T) {
		var cfg taco.Configuration

		_, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&cfg, nil, price(t, 0))

		require.Error(t, err)
	})

	t.Run("should reject a zero-value owner id", func(t *testing.T) {
		var ownerID kernel.UUID

		_, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), kernel.NewUUID(), ownerID,
			testConfiguration(t), nil, price(t, 1150))

		require.Error(t, err)
	})
}

func TestParticipantOrder_Replace(t *testing.T) {
	t.Run("should replace the content wholesale", func(t *testing.T) {
		participantOrder, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testConfiguration(t), testSides(t), price(t, 1300))
		require.NoError(t, err)

		err = participantOrder.Replace(nil, testSides(t), price(t, 150))

		require.NoError(t, err)
		assert.Nil(t, participantOrder.Configuration())
		assert.Len(t, participantOrder.Sides(), 1)
		assert.Equal(t, int64(150), participantOrder.Total().Cents())
	})

	t.Run("should reject replacing with empty content", func(t *testing.T) {
		participantOrder, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testConfiguration(t), nil, price(t, 1150))
		require.NoError(t, err)

		err = participantOrder.Replace(nil, nil, price(t, 0))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		// Previous content is untouched.
		assert.NotNil(t, participantOrder.Configuration())
		assert.Equal(t, int64(1150), participantOrder.Total().Cents())
	})

	t.Run("should reject a zero-value aggregate", func(t *testing.T) {
		var participantOrder grouporder.ParticipantOrder

		err := participantOrder.Replace(testConfiguration(t), nil, price(t, 1150))

		assert.Equal(t, grouporder.ErrParticipantOrderIsNotConstructed, err)
	})
}
