package commands_test

import (
	"testing"
	"time"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/taco"
	"tacoshare/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func cents(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPriceFromCents(amount)
	require.NoError(t, err)
	return price
}

// fixtureCatalog carries chicken at 2.00 on a 9.50 tacos_L tier plus basic
// sauces and sides; the priced example order totals 11.50.
func fixtureCatalog(t *testing.T) catalog.Snapshot {
	t.Helper()
	chicken, err := catalog.NewItem("chicken", "chicken", cents(t, 200), true)
	require.NoError(t, err)
	algerienne, err := catalog.NewItem("algerienne", "algerienne", cents(t, 0), true)
	require.NoError(t, err)
	coke, err := catalog.NewItem("coke", "coke", cents(t, 150), true)
	require.NoError(t, err)
	tierL, err := catalog.NewSizeTier(catalog.SizeL, cents(t, 950))
	require.NoError(t, err)

	return catalog.NewSnapshot(map[catalog.Category][]catalog.Item{
		catalog.CategoryProtein:  {chicken},
		catalog.CategorySauce:    {algerienne},
		catalog.CategoryBeverage: {coke},
	}, []catalog.SizeTier{tierL})
}

func fixtureConfiguration(t *testing.T) *taco.Configuration {
	t.Helper()
	cfg, err := taco.NewConfiguration(
		catalog.SizeL,
		[]taco.ComponentSelectionInput{{ID: "chicken"}},
		[]string{"algerienne"},
		nil, "", 1)
	require.NoError(t, err)
	return &cfg
}

func fixtureSides(t *testing.T) []taco.SideSelection {
	t.Helper()
	side, err := taco.NewSideSelection("coke", catalog.CategoryBeverage, 1, nil)
	require.NoError(t, err)
	return []taco.SideSelection{side}
}

func fixtureWindow(t *testing.T) kernel.TimeWindow {
	t.Helper()
	start := time.Date(2025, 6, 13, 11, 30, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(start, start.Add(2*time.Hour))
	require.NoError(t, err)
	return window
}

func fixtureGroupOrder(t *testing.T, leaderID kernel.UUID) *grouporder.GroupOrder {
	t.Helper()
	groupOrder, err := grouporder.NewGroupOrder(kernel.NewUUID(), leaderID, "Friday lunch", fixtureWindow(t))
	require.NoError(t, err)
	return groupOrder
}

func fixtureLockedGroupOrder(t *testing.T, leaderID kernel.UUID) *grouporder.GroupOrder {
	t.Helper()
	groupOrder := fixtureGroupOrder(t, leaderID)
	require.NoError(t, groupOrder.Lock(leaderID, grouporder.Snapshot{GroupOrderID: groupOrder.ID().String()}))
	return groupOrder
}

func fixtureParticipantOrder(t *testing.T, groupOrderID kernel.UUID, ownerID kernel.UUID) *grouporder.ParticipantOrder {
	t.Helper()
	participantOrder, err := grouporder.NewParticipantOrder(
		kernel.NewUUID(), groupOrderID, ownerID,
		fixtureConfiguration(t), fixtureSides(t), cents(t, 1300))
	require.NoError(t, err)
	return participantOrder
}

func fixtureDetails() ports.Details {
	return ports.Details{
		CustomerName:  "Sam",
		CustomerPhone: "+33600000000",
		Mode:          ports.DeliveryModePickup,
	}
}
