package grouporder_test

import (
	"testing"
	"time"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) kernel.TimeWindow {
	t.Helper()
	start := time.Date(2025, 6, 13, 11, 30, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(start, start.Add(2*time.Hour))
	require.NoError(t, err)
	return window
}

func openGroupOrder(t *testing.T, leaderID kernel.UUID) *grouporder.GroupOrder {
	t.Helper()
	groupOrder, err := grouporder.NewGroupOrder(kernel.NewUUID(), leaderID, "Friday lunch", testWindow(t))
	require.NoError(t, err)
	return groupOrder
}

func TestNewGroupOrder(t *testing.T) {
	t.Run("should create an open order", func(t *testing.T) {
		id := kernel.NewUUID()
		leaderID := kernel.NewUUID()

		groupOrder, err := grouporder.NewGroupOrder(id, leaderID, "Friday lunch", testWindow(t))

		require.NoError(t, err)
		assert.True(t, groupOrder.ID().IsEqual(id))
		assert.True(t, groupOrder.LeaderID().IsEqual(leaderID))
		assert.Equal(t, "Friday lunch", groupOrder.Name())
		assert.Equal(t, grouporder.Open, groupOrder.Status())
		assert.True(t, groupOrder.IsOpen())
		assert.False(t, groupOrder.IsPendingDelivery())
		assert.Nil(t, groupOrder.LockedSnapshot())
		assert.Empty(t, groupOrder.ExternalOrderID())
	})

	t.Run("should allow an empty name", func(t *testing.T) {
		groupOrder, err := grouporder.NewGroupOrder(kernel.NewUUID(), kernel.NewUUID(), "", testWindow(t))

		require.NoError(t, err)
		assert.Empty(t, groupOrder.Name())
	})

	t.Run("should reject a zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := grouporder.NewGroupOrder(id, kernel.NewUUID(), "", testWindow(t))

		require.Error(t, err)
	})

	t.Run("should reject a zero-value leader id", func(t *testing.T) {
		var leaderID kernel.UUID

		_, err := grouporder.NewGroupOrder(kernel.NewUUID(), leaderID, "", testWindow(t))

		require.Error(t, err)
	})

	t.Run("should reject an invalid window", func(t *testing.T) {
		var window kernel.TimeWindow

		_, err := grouporder.NewGroupOrder(kernel.NewUUID(), kernel.NewUUID(), "", window)

		require.Error(t, err)
	})
}

func TestGroupOrder_Validate(t *testing.T) {
	t.Run("should reject a zero-value aggregate", func(t *testing.T) {
		var groupOrder grouporder.GroupOrder

		assert.Equal(t, grouporder.ErrGroupOrderIsNotConstructed, groupOrder.Validate())
	})

	t.Run("should reject nil", func(t *testing.T) {
		var groupOrder *grouporder.GroupOrder

		assert.Equal(t, grouporder.ErrGroupOrderIsNotConstructed, groupOrder.Validate())
	})
}

func TestGroupOrder_Lock(t *testing.T) {
	t.Run("should lock once for the leader", func(t *testing.T) {
		leaderID := kernel.NewUUID()
		groupOrder := openGroupOrder(t, leaderID)
		snapshot := grouporder.Snapshot{GroupOrderID: groupOrder.ID().String()}

		err := groupOrder.Lock(leaderID, snapshot)

		require.NoError(t, err)
		assert.Equal(t, grouporder.Locked, groupOrder.Status())
		assert.False(t, groupOrder.IsOpen())
		assert.True(t, groupOrder.IsPendingDelivery())
		require.NotNil(t, groupOrder.LockedSnapshot())
		assert.Equal(t, groupOrder.ID().String(), groupOrder.LockedSnapshot().GroupOrderID)
	})

	t.Run("should refuse a non-leader", func(t *testing.T) {
		groupOrder := openGroupOrder(t, kernel.NewUUID())
		stranger := kernel.NewUUID()

		err := groupOrder.Lock(stranger, grouporder.Snapshot{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.True(t, groupOrder.IsOpen())
		assert.False(t, groupOrder.IsPendingDelivery())
	})

	t.Run("should conflict on a second lock", func(t *testing.T) {
		leaderID := kernel.NewUUID()
		groupOrder := openGroupOrder(t, leaderID)
		require.NoError(t, groupOrder.Lock(leaderID, grouporder.Snapshot{}))

		err := groupOrder.Lock(leaderID, grouporder.Snapshot{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, grouporder.Locked, groupOrder.Status())
	})

	t.Run("should reject a zero-value actor", func(t *testing.T) {
		groupOrder := openGroupOrder(t, kernel.NewUUID())
		var actor kernel.UUID

		err := groupOrder.Lock(actor, grouporder.Snapshot{})

		require.Error(t, err)
		assert.True(t, groupOrder.IsOpen())
	})
}

func TestGroupOrder_AuthorizeEdit(t *testing.T) {
	leaderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	t.Run("should allow the owner", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)

		assert.NoError(t, groupOrder.AuthorizeEdit(ownerID, ownerID))
	})

	t.Run("should allow the leader on a foreign order", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)

		assert.NoError(t, groupOrder.AuthorizeEdit(leaderID, ownerID))
	})

	t.Run("should refuse a stranger", func(t *testing.T) {
		groupOrder := openGroupOrder(t, leaderID)
		stranger := kernel.NewUUID()

		err := groupOrder.AuthorizeEdit(stranger, ownerID)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestGroupOrder_MarkDelivered(t *testing.T) {
	lockedGroupOrder := func(t *testing.T) *grouporder.GroupOrder {
		t.Helper()
		leaderID := kernel.NewUUID()
		groupOrder := openGroupOrder(t, leaderID)
		require.NoError(t, groupOrder.Lock(leaderID, grouporder.Snapshot{}))
		return groupOrder
	}

	t.Run("should record the receipt and clear the pending flag", func(t *testing.T) {
		groupOrder := lockedGroupOrder(t)

		err := groupOrder.MarkDelivered("ext-42", "txn-7")

		require.NoError(t, err)
		assert.Equal(t, "ext-42", groupOrder.ExternalOrderID())
		assert.Equal(t, "txn-7", groupOrder.TransactionID())
		assert.False(t, groupOrder.IsPendingDelivery())
		assert.Equal(t, grouporder.Locked, groupOrder.Status())
	})

	t.Run("should conflict on an open order", func(t *testing.T) {
		groupOrder := openGroupOrder(t, kernel.NewUUID())

		err := groupOrder.MarkDelivered("ext-42", "txn-7")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should conflict when already delivered", func(t *testing.T) {
		groupOrder := lockedGroupOrder(t)
		require.NoError(t, groupOrder.MarkDelivered("ext-42", "txn-7"))

		err := groupOrder.MarkDelivered("ext-43", "txn-8")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "ext-42", groupOrder.ExternalOrderID())
	})

	t.Run("should require receipt identifiers", func(t *testing.T) {
		groupOrder := lockedGroupOrder(t)

		err := groupOrder.MarkDelivered("", "txn-7")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.True(t, groupOrder.IsPendingDelivery())
	})
}

func TestRestoreGroupOrder(t *testing.T) {
	t.Run("should restore a locked pending order", func(t *testing.T) {
		id := kernel.NewUUID()
		leaderID := kernel.NewUUID()
		snapshot := &grouporder.Snapshot{GroupOrderID: id.String(), TotalCents: 1150}

		groupOrder, err := grouporder.RestoreGroupOrder(
			id, leaderID, "Friday lunch", testWindow(t),
			grouporder.Locked, true, snapshot, "", "")

		require.NoError(t, err)
		assert.Equal(t, grouporder.Locked, groupOrder.Status())
		assert.True(t, groupOrder.IsPendingDelivery())
		require.NotNil(t, groupOrder.LockedSnapshot())
		assert.Equal(t, int64(1150), groupOrder.LockedSnapshot().TotalCents)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := grouporder.RestoreGroupOrder(
			kernel.NewUUID(), kernel.NewUUID(), "", testWindow(t),
			grouporder.Unknown, false, nil, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
