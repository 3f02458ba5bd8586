package commands_test

import (
	"context"

	"tacoshare/internal/core/application/usecases/commands"
	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockGroupOrderRepository struct{ mock.Mock }

func (m *MockGroupOrderRepository) Add(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockGroupOrderRepository) Update(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockGroupOrderRepository) Get(ctx context.Context, id kernel.UUID) (*grouporder.GroupOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*grouporder.GroupOrder), args.Error(1)
}
func (m *MockGroupOrderRepository) Lock(ctx context.Context, aggregate *grouporder.GroupOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockGroupOrderRepository) GetPendingDelivery(ctx context.Context) ([]*grouporder.GroupOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*grouporder.GroupOrder), args.Error(1)
}

type MockParticipantOrderRepository struct{ mock.Mock }

func (m *MockParticipantOrderRepository) Add(ctx context.Context, aggregate *grouporder.ParticipantOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockParticipantOrderRepository) Update(ctx context.Context, aggregate *grouporder.ParticipantOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockParticipantOrderRepository) Get(ctx context.Context, id kernel.UUID) (*grouporder.ParticipantOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*grouporder.ParticipantOrder), args.Error(1)
}
func (m *MockParticipantOrderRepository) GetByOwner(
	ctx context.Context, groupOrderID kernel.UUID, ownerID kernel.UUID,
) (*grouporder.ParticipantOrder, error) {
	args := m.Called(ctx, groupOrderID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*grouporder.ParticipantOrder), args.Error(1)
}
func (m *MockParticipantOrderRepository) GetAllForGroupOrder(
	ctx context.Context, groupOrderID kernel.UUID,
) ([]*grouporder.ParticipantOrder, error) {
	args := m.Called(ctx, groupOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*grouporder.ParticipantOrder), args.Error(1)
}
func (m *MockParticipantOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMembershipRepository struct{ mock.Mock }

func (m *MockMembershipRepository) Add(ctx context.Context, aggregate *membership.Membership) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMembershipRepository) Update(ctx context.Context, aggregate *membership.Membership) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMembershipRepository) Get(
	ctx context.Context, orgID kernel.UUID, userID kernel.UUID,
) (*membership.Membership, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}
func (m *MockMembershipRepository) GetMembers(ctx context.Context, orgID kernel.UUID) ([]*membership.Membership, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*membership.Membership), args.Error(1)
}
func (m *MockMembershipRepository) CountActiveAdmins(ctx context.Context, orgID kernel.UUID) (int, error) {
	args := m.Called(ctx, orgID)
	return args.Int(0), args.Error(1)
}
func (m *MockMembershipRepository) Remove(ctx context.Context, orgID kernel.UUID, userID kernel.UUID) error {
	args := m.Called(ctx, orgID, userID)
	return args.Error(0)
}

type MockGroupOrderUoW struct{ mock.Mock }

func (m *MockGroupOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGroupOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGroupOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockGroupOrderUoW) GroupOrderRepository() ports.GroupOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.GroupOrderRepository)
}

type MockGroupOrderUoWFactory struct{ mock.Mock }

func (m *MockGroupOrderUoWFactory) Create() commands.GroupOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.GroupOrderUoW)
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) GroupOrderRepository() ports.GroupOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.GroupOrderRepository)
}
func (m *MockCartUoW) ParticipantOrderRepository() ports.ParticipantOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ParticipantOrderRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockMembershipUoW struct{ mock.Mock }

func (m *MockMembershipUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMembershipUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMembershipUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMembershipUoW) MembershipRepository() ports.MembershipRepository {
	args := m.Called()
	return args.Get(0).(ports.MembershipRepository)
}

type MockMembershipUoWFactory struct{ mock.Mock }

func (m *MockMembershipUoWFactory) Create() commands.MembershipUoW {
	args := m.Called()
	return args.Get(0).(commands.MembershipUoW)
}

type MockCatalogProvider struct{ mock.Mock }

func (m *MockCatalogProvider) GetCatalog(ctx context.Context) (catalog.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Snapshot), args.Error(1)
}

type MockFulfillmentGateway struct{ mock.Mock }

func (m *MockFulfillmentGateway) Submit(ctx context.Context, snapshot grouporder.Snapshot) (ports.Receipt, error) {
	args := m.Called(ctx, snapshot)
	return args.Get(0).(ports.Receipt), args.Error(1)
}
