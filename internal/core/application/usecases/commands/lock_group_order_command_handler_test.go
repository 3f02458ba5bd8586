package commands_test

import (
	"errors"
	"testing"

	"tacoshare/internal/core/application/usecases/commands"
	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/ports"
	"tacoshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewLockGroupOrderCommand(t *testing.T) {
	t.Run("should reject details without a customer name", func(t *testing.T) {
		details := fixtureDetails()
		details.CustomerName = ""

		_, err := commands.NewLockGroupOrderCommand(kernel.NewUUID(), kernel.NewUUID(), details)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject delivery mode without an address", func(t *testing.T) {
		details := fixtureDetails()
		details.Mode = ports.DeliveryModeDelivery

		_, err := commands.NewLockGroupOrderCommand(kernel.NewUUID(), kernel.NewUUID(), details)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unknown delivery mode", func(t *testing.T) {
		details := fixtureDetails()
		details.Mode = "drone"

		_, err := commands.NewLockGroupOrderCommand(kernel.NewUUID(), kernel.NewUUID(), details)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLockGroupOrderCommandHandler_Handle_GatewayConfirms(t *testing.T) {
	ctx := t.Context()
	leaderID := kernel.NewUUID()
	groupOrder := fixtureGroupOrder(t, leaderID)
	participantOrder := fixtureParticipantOrder(t, groupOrder.ID(), kernel.NewUUID())

	groupRepo := new(MockGroupOrderRepository)
	participantRepo := new(MockParticipantOrderRepository)

	lockUoW := new(MockCartUoW)
	lockUoW.On("Begin", ctx).Return(nil).Once()
	lockUoW.On("Rollback", ctx).Return(nil).Once()
	lockUoW.On("Commit", ctx).Return(nil).Once()
	lockUoW.On("GroupOrderRepository").Return(groupRepo)
	lockUoW.On("ParticipantOrderRepository").Return(participantRepo)

	confirmUoW := new(MockCartUoW)
	confirmUoW.On("Begin", ctx).Return(nil).Once()
	confirmUoW.On("Rollback", ctx).Return(nil).Once()
	confirmUoW.On("Commit", ctx).Return(nil).Once()
	confirmUoW.On("GroupOrderRepository").Return(groupRepo)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(lockUoW).Once()
	factory.On("Create").Return(confirmUoW).Once()

	groupRepo.On("Get", mock.Anything, groupOrder.ID()).Return(groupOrder, nil).Twice()
	participantRepo.On("GetAllForGroupOrder", mock.Anything, groupOrder.ID()).
		Return([]*grouporder.ParticipantOrder{participantOrder}, nil).Once()
	groupRepo.On("Lock", mock.Anything, groupOrder).Return(nil).Once()
	groupRepo.On("Update", mock.Anything, groupOrder).Return(nil).Once()

	gateway := new(MockFulfillmentGateway)
	gateway.On("Submit", ctx, mock.MatchedBy(func(snapshot grouporder.Snapshot) bool {
		return snapshot.Customer.Name == "Sam" &&
			len(snapshot.Lines) == 1 &&
			snapshot.TotalCents == 1300
	})).Return(ports.Receipt{ExternalOrderID: "ext-1", TransactionID: "tx-1"}, nil).Once()

	cmd, err := commands.NewLockGroupOrderCommand(leaderID, groupOrder.ID(), fixtureDetails())
	require.NoError(t, err)

	handler := commands.NewLockGroupOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, groupOrder.IsOpen())
	assert.False(t, groupOrder.IsPendingDelivery())
	assert.Equal(t, "ext-1", groupOrder.ExternalOrderID())
	lockUoW.AssertExpectations(t)
	confirmUoW.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestLockGroupOrderCommandHandler_Handle_GatewayFails(t *testing.T) {
	ctx := t.Context()
	leaderID := kernel.NewUUID()
	groupOrder := fixtureGroupOrder(t, leaderID)
	participantOrder := fixtureParticipantOrder(t, groupOrder.ID(), kernel.NewUUID())

	groupRepo := new(MockGroupOrderRepository)
	participantRepo := new(MockParticipantOrderRepository)

	lockUoW := new(MockCartUoW)
	lockUoW.On("Begin", ctx).Return(nil).Once()
	lockUoW.On("Rollback", ctx).Return(nil).Once()
	lockUoW.On("Commit", ctx).Return(nil).Once()
	lockUoW.On("GroupOrderRepository").Return(groupRepo)
	lockUoW.On("ParticipantOrderRepository").Return(participantRepo)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(lockUoW).Once()

	groupRepo.On("Get", mock.Anything, groupOrder.ID()).Return(groupOrder, nil).Once()
	participantRepo.On("GetAllForGroupOrder", mock.Anything, groupOrder.ID()).
		Return([]*grouporder.ParticipantOrder{participantOrder}, nil).Once()
	groupRepo.On("Lock", mock.Anything, groupOrder).Return(nil).Once()

	gateway := new(MockFulfillmentGateway)
	gateway.On("Submit", ctx, mock.Anything).
		Return(ports.Receipt{}, errs.NewDependencyUnavailableError("fulfillment", errors.New("timeout"))).Once()

	cmd, err := commands.NewLockGroupOrderCommand(leaderID, groupOrder.ID(), fixtureDetails())
	require.NoError(t, err)

	handler := commands.NewLockGroupOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	// The lock sticks and the retry job picks the order up later.
	assert.False(t, groupOrder.IsOpen())
	assert.True(t, groupOrder.IsPendingDelivery())
	groupRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestLockGroupOrderCommandHandler_Handle_NonLeader(t *testing.T) {
	ctx := t.Context()
	groupOrder := fixtureGroupOrder(t, kernel.NewUUID())
	participantOrder := fixtureParticipantOrder(t, groupOrder.ID(), kernel.NewUUID())

	groupRepo := new(MockGroupOrderRepository)
	participantRepo := new(MockParticipantOrderRepository)

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("GroupOrderRepository").Return(groupRepo)
	uow.On("ParticipantOrderRepository").Return(participantRepo)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	groupRepo.On("Get", mock.Anything, groupOrder.ID()).Return(groupOrder, nil).Once()
	participantRepo.On("GetAllForGroupOrder", mock.Anything, groupOrder.ID()).
		Return([]*grouporder.ParticipantOrder{participantOrder}, nil).Once()

	gateway := new(MockFulfillmentGateway)

	cmd, err := commands.NewLockGroupOrderCommand(kernel.NewUUID(), groupOrder.ID(), fixtureDetails())
	require.NoError(t, err)

	handler := commands.NewLockGroupOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.True(t, groupOrder.IsOpen())
	gateway.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLockGroupOrderCommandHandler_Handle_AlreadyLocked(t *testing.T) {
	ctx := t.Context()
	leaderID := kernel.NewUUID()
	groupOrder := fixtureLockedGroupOrder(t, leaderID)

	groupRepo := new(MockGroupOrderRepository)
	participantRepo := new(MockParticipantOrderRepository)

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("GroupOrderRepository").Return(groupRepo)
	uow.On("ParticipantOrderRepository").Return(participantRepo)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	groupRepo.On("Get", mock.Anything, groupOrder.ID()).Return(groupOrder, nil).Once()
	participantRepo.On("GetAllForGroupOrder", mock.Anything, groupOrder.ID()).
		Return([]*grouporder.ParticipantOrder{}, nil).Once()

	gateway := new(MockFulfillmentGateway)

	cmd, err := commands.NewLockGroupOrderCommand(leaderID, groupOrder.ID(), fixtureDetails())
	require.NoError(t, err)

	handler := commands.NewLockGroupOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	gateway.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestLockGroupOrderCommandHandler_Handle_ConcurrentLockLosesRace(t *testing.T) {
	ctx := t.Context()
	leaderID := kernel.NewUUID()
	groupOrder := fixtureGroupOrder(t, leaderID)
	participantOrder := fixtureParticipantOrder(t, groupOrder.ID(), kernel.NewUUID())

	groupRepo := new(MockGroupOrderRepository)
	participantRepo := new(MockParticipantOrderRepository)

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("GroupOrderRepository").Return(groupRepo)
	uow.On("ParticipantOrderRepository").Return(participantRepo)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	groupRepo.On("Get", mock.Anything, groupOrder.ID()).Return(groupOrder, nil).Once()
	participantRepo.On("GetAllForGroupOrder", mock.Anything, groupOrder.ID()).
		Return([]*grouporder.ParticipantOrder{participantOrder}, nil).Once()
	groupRepo.On("Lock", mock.Anything, groupOrder).
		Return(errs.NewConflictError("group order", "is already locked")).Once()

	gateway := new(MockFulfillmentGateway)

	cmd, err := commands.NewLockGroupOrderCommand(leaderID, groupOrder.ID(), fixtureDetails())
	require.NoError(t, err)

	handler := commands.NewLockGroupOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	gateway.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
