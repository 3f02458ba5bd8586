package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrCreateGroupOrderCommandIsNotConstructed = errors.New(
		"CreateGroupOrderCommand must be created via NewCreateGroupOrderCommand constructor",
	)
)

// CreateGroupOrderCommand represents a request to open a new shared cart.
// The creating member becomes its leader.
type CreateGroupOrderCommand struct { //nolint:recvcheck //using for validation
	groupOrderID kernel.UUID
	leaderID     kernel.UUID
	name         string
	window       kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateGroupOrderCommand creates a command to open a group order.
// The name is optional; identifiers and the ordering window must be valid.
func NewCreateGroupOrderCommand(
	groupOrderID kernel.UUID, leaderID kernel.UUID, name string, window kernel.TimeWindow,
) (CreateGroupOrderCommand, error) {
	command := CreateGroupOrderCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setGroupOrderID(groupOrderID),
		command.setLeaderID(leaderID),
		command.setWindow(window),
	); err != nil {
		return CreateGroupOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateGroupOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateGroupOrderCommandIsNotConstructed)
}

// GroupOrderID returns the identifier assigned to the new group order.
func (c CreateGroupOrderCommand) GroupOrderID() kernel.UUID {
	return c.groupOrderID
}

// LeaderID returns the member opening the cart.
func (c CreateGroupOrderCommand) LeaderID() kernel.UUID {
	return c.leaderID
}

// Name returns the optional human label.
func (c CreateGroupOrderCommand) Name() string {
	return c.name
}

// Window returns the ordering window.
func (c CreateGroupOrderCommand) Window() kernel.TimeWindow {
	return c.window
}

func (c *CreateGroupOrderCommand) setGroupOrderID(groupOrderID kernel.UUID) error {
	if err := groupOrderID.Validate(); err != nil {
		return err
	}
	c.groupOrderID = groupOrderID
	return nil
}

func (c *CreateGroupOrderCommand) setLeaderID(leaderID kernel.UUID) error {
	if err := leaderID.Validate(); err != nil {
		return err
	}
	c.leaderID = leaderID
	return nil
}

func (c *CreateGroupOrderCommand) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.window = window
	return nil
}
