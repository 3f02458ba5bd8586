package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrRepairAdminCommandIsNotConstructed = errors.New(
		"RepairAdminCommand must be created via NewRepairAdminCommand constructor",
	)
)

// RepairAdminCommand triggers the bootstrap repair: when the organization has
// no active admin left, the acting user is promoted to active admin so the
// organization stays administrable. Idempotent; invoked by the member-list
// endpoint and by the join-request flow.
type RepairAdminCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orgID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRepairAdminCommand creates a command to run the bootstrap repair.
func NewRepairAdminCommand(actorID kernel.UUID, orgID kernel.UUID) (RepairAdminCommand, error) {
	command := RepairAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrgID(orgID),
	); err != nil {
		return RepairAdminCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RepairAdminCommand) Validate() error {
	return c.guard.Validate(ErrRepairAdminCommandIsNotConstructed)
}

// ActorID returns the user who triggers and may receive the promotion.
func (c RepairAdminCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrgID returns the organization being repaired.
func (c RepairAdminCommand) OrgID() kernel.UUID {
	return c.orgID
}

func (c *RepairAdminCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *RepairAdminCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}
