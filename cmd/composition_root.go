package cmd

import (
	"tacoshare/internal/adapters/out/catalogclient"
	"tacoshare/internal/adapters/out/fulfillment"
	"tacoshare/internal/adapters/out/postgres"
	"tacoshare/internal/core/application/usecases/commands"
	"tacoshare/internal/core/application/usecases/queries"
	"tacoshare/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	catalogProvider    ports.CatalogProvider
	fulfillmentGateway ports.FulfillmentGateway
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogProvider:    catalogclient.NewClient(configs.CatalogBaseURL),
		fulfillmentGateway: fulfillment.NewClient(configs.FulfillmentBaseURL),
	}
}

func (c *CompositionRoot) CreateCreateGroupOrderCommandHandler() commands.CreateGroupOrderCommandHandler {
	var f commands.GroupOrderUoWFactory = FuncGroupOrderUoWFactory(func() commands.GroupOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateGroupOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitParticipantOrderCommandHandler() commands.SubmitParticipantOrderCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitParticipantOrderCommandHandler(f, c.catalogProvider)
}

func (c *CompositionRoot) CreateDeleteParticipantOrderCommandHandler() commands.DeleteParticipantOrderCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParticipantOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateLockGroupOrderCommandHandler() commands.LockGroupOrderCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLockGroupOrderCommandHandler(f, c.fulfillmentGateway)
}

func (c *CompositionRoot) CreateDeliverPendingGroupOrdersCommandHandler() commands.DeliverPendingGroupOrdersCommandHandler {
	var f commands.GroupOrderUoWFactory = FuncGroupOrderUoWFactory(func() commands.GroupOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverPendingGroupOrdersCommandHandler(f, c.fulfillmentGateway)
}

func (c *CompositionRoot) CreateRequestToJoinCommandHandler() commands.RequestToJoinCommandHandler {
	return commands.NewRequestToJoinCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJoinRequestCommandHandler() commands.AcceptJoinRequestCommandHandler {
	return commands.NewAcceptJoinRequestCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateRejectJoinRequestCommandHandler() commands.RejectJoinRequestCommandHandler {
	return commands.NewRejectJoinRequestCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMemberRoleCommandHandler() commands.UpdateMemberRoleCommandHandler {
	return commands.NewUpdateMemberRoleCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateRemoveMemberCommandHandler() commands.RemoveMemberCommandHandler {
	return commands.NewRemoveMemberCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateDirectAddMemberCommandHandler() commands.DirectAddMemberCommandHandler {
	return commands.NewDirectAddMemberCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateRepairAdminCommandHandler() commands.RepairAdminCommandHandler {
	return commands.NewRepairAdminCommandHandler(c.membershipUoWFactory())
}

func (c *CompositionRoot) CreateGetGroupOrderQueryHandler() queries.GetGroupOrderQueryHandler {
	return queries.NewGetGroupOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrganizationMembersQueryHandler() queries.GetOrganizationMembersQueryHandler {
	return queries.NewGetOrganizationMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingJoinRequestsQueryHandler() queries.GetPendingJoinRequestsQueryHandler {
	return queries.NewGetPendingJoinRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) membershipUoWFactory() commands.MembershipUoWFactory {
	return FuncMembershipUoWFactory(func() commands.MembershipUoW {
		return c.uowFactory.Create()
	})
}

type FuncGroupOrderUoWFactory func() commands.GroupOrderUoW

func (f FuncGroupOrderUoWFactory) Create() commands.GroupOrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncMembershipUoWFactory func() commands.MembershipUoW

func (f FuncMembershipUoWFactory) Create() commands.MembershipUoW {
	return f()
}
