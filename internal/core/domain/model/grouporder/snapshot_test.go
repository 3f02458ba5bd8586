package grouporder_test

import (
	"testing"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	leaderID := kernel.NewUUID()

	newOrder := func(t *testing.T, groupOrderID kernel.UUID, totalCents int64) *grouporder.ParticipantOrder {
		t.Helper()
		participantOrder, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), groupOrderID, kernel.NewUUID(),
			testConfiguration(t), testSides(t), price(t, totalCents))
		require.NoError(t, err)
		return participantOrder
	}

	t.Run("should flatten every participant order and sum totals", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)
		first := newOrder(t, groupOrder.ID(), 1300)
		second := newOrder(t, groupOrder.ID(), 600)

		snapshot, err := grouporder.BuildSnapshot(groupOrder,
			[]*grouporder.ParticipantOrder{first, second})

		require.NoError(t, err)
		assert.Equal(t, groupOrder.ID().String(), snapshot.GroupOrderID)
		assert.Len(t, snapshot.Lines, 2)
		assert.Equal(t, int64(1900), snapshot.TotalCents)
	})

	t.Run("should flatten the composed item and sides", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)
		participantOrder := newOrder(t, groupOrder.ID(), 1300)

		snapshot, err := grouporder.BuildSnapshot(groupOrder,
			[]*grouporder.ParticipantOrder{participantOrder})

		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		line := snapshot.Lines[0]
		assert.Equal(t, participantOrder.ID().String(), line.ParticipantOrderID)
		assert.Equal(t, participantOrder.OwnerID().String(), line.OwnerID)
		require.NotNil(t, line.Item)
		assert.Equal(t, catalog.SizeL.String(), line.Item.Size)
		require.Len(t, line.Item.Proteins, 1)
		assert.Equal(t, "chicken", line.Item.Proteins[0].ID)
		assert.Equal(t, 1, line.Item.Proteins[0].Quantity)
		assert.Equal(t, []string{"algerienne"}, line.Item.Sauces)
		require.Len(t, line.Sides, 1)
		assert.Equal(t, "coke", line.Sides[0].ID)
		assert.Equal(t, string(catalog.CategoryBeverage), line.Sides[0].Category)
	})

	t.Run("should omit the item for a side-items-only order", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)
		participantOrder, err := grouporder.NewParticipantOrder(
			kernel.NewUUID(), groupOrder.ID(), kernel.NewUUID(),
			nil, testSides(t), price(t, 150))
		require.NoError(t, err)

		snapshot, err := grouporder.BuildSnapshot(groupOrder,
			[]*grouporder.ParticipantOrder{participantOrder})

		require.NoError(t, err)
		require.Len(t, snapshot.Lines, 1)
		assert.Nil(t, snapshot.Lines[0].Item)
	})

	t.Run("should order lines deterministically regardless of input order", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)
		first := newOrder(t, groupOrder.ID(), 1300)
		second := newOrder(t, groupOrder.ID(), 600)
		third := newOrder(t, groupOrder.ID(), 950)

		forward, err := grouporder.BuildSnapshot(groupOrder,
			[]*grouporder.ParticipantOrder{first, second, third})
		require.NoError(t, err)
		backward, err := grouporder.BuildSnapshot(groupOrder,
			[]*grouporder.ParticipantOrder{third, first, second})
		require.NoError(t, err)

		assert.Equal(t, forward, backward)
	})

	t.Run("should produce an empty snapshot for an empty cart", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)

		snapshot, err := grouporder.BuildSnapshot(groupOrder, nil)

		require.NoError(t, err)
		assert.Empty(t, snapshot.Lines)
		assert.Zero(t, snapshot.TotalCents)
	})

	t.Run("should reject an unconstructed group order", func(t *testing.T) {
		var groupOrder grouporder.GroupOrder

		_, err := grouporder.BuildSnapshot(&groupOrder, nil)

		require.Error(t, err)
	})
}
