package grouporder

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/taco"
	"tacoshare/internal/pkg/errs"
)

var (
	// ErrParticipantOrderIsNotConstructed is returned when a ParticipantOrder was
	// not created through its factory methods.
	ErrParticipantOrderIsNotConstructed = errors.New(
		"ParticipantOrder must be created via NewParticipantOrder constructor")
)

// ParticipantOrder is one member's contribution to a group order: an optional
// composed item plus any side selections, with the priced total. Each member
// holds at most one participant order per group order; re-submission replaces
// the previous content wholesale rather than merging.
type ParticipantOrder struct {
	id           kernel.UUID
	groupOrderID kernel.UUID
	ownerID      kernel.UUID

	// configuration is nil for side-items-only orders.
	configuration *taco.Configuration
	sides         []taco.SideSelection
	total         kernel.Price

	isConstructed bool
}

// NewParticipantOrder creates a participant order. Either a configuration or at
// least one side must be present; an entirely empty order is rejected.
func NewParticipantOrder(
	id kernel.UUID,
	groupOrderID kernel.UUID,
	ownerID kernel.UUID,
	configuration *taco.Configuration,
	sides []taco.SideSelection,
	total kernel.Price,
) (*ParticipantOrder, error) {
	participantOrder := &ParticipantOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		participantOrder.setID(id),
		participantOrder.setGroupOrderID(groupOrderID),
		participantOrder.setOwnerID(ownerID),
		participantOrder.setContent(configuration, sides, total),
	); err != nil {
		return nil, err
	}

	return participantOrder, nil
}

// RestoreParticipantOrder reconstructs a participant order from persistence.
func RestoreParticipantOrder(
	id kernel.UUID,
	groupOrderID kernel.UUID,
	ownerID kernel.UUID,
	configuration *taco.Configuration,
	sides []taco.SideSelection,
	total kernel.Price,
) (*ParticipantOrder, error) {
	return NewParticipantOrder(id, groupOrderID, ownerID, configuration, sides, total)
}

// Validate ensures the ParticipantOrder instance was properly constructed.
func (p *ParticipantOrder) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParticipantOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two participant orders by identifier.
func (p *ParticipantOrder) IsEqual(other *ParticipantOrder) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the participant order's unique identifier.
func (p *ParticipantOrder) ID() kernel.UUID {
	return p.id
}

// GroupOrderID returns the group order this contribution belongs to.
func (p *ParticipantOrder) GroupOrderID() kernel.UUID {
	return p.groupOrderID
}

// OwnerID returns the member who owns this contribution.
func (p *ParticipantOrder) OwnerID() kernel.UUID {
	return p.ownerID
}

// Configuration returns the composed item, or nil for a side-items-only order.
func (p *ParticipantOrder) Configuration() *taco.Configuration {
	return p.configuration
}

// Sides returns the side selections. The returned slice is a copy.
func (p *ParticipantOrder) Sides() []taco.SideSelection {
	return append([]taco.SideSelection(nil), p.sides...)
}

// Total returns the priced total of this contribution.
func (p *ParticipantOrder) Total() kernel.Price {
	return p.total
}

// Replace swaps the order content wholesale. The previous configuration and
// sides are discarded, never merged; the caller supplies the re-priced total.
func (p *ParticipantOrder) Replace(
	configuration *taco.Configuration, sides []taco.SideSelection, total kernel.Price,
) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return p.setContent(configuration, sides, total)
}

func (p *ParticipantOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ParticipantOrder) setGroupOrderID(groupOrderID kernel.UUID) error {
	if err := groupOrderID.Validate(); err != nil {
		return err
	}
	p.groupOrderID = groupOrderID
	return nil
}

func (p *ParticipantOrder) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *ParticipantOrder) setContent(
	configuration *taco.Configuration, sides []taco.SideSelection, total kernel.Price,
) error {
	if configuration == nil && len(sides) == 0 {
		return errs.NewValueIsRequiredError("order content")
	}
	if configuration != nil {
		if err := configuration.Validate(); err != nil {
			return err
		}
	}

	p.configuration = configuration
	p.sides = append([]taco.SideSelection(nil), sides...)
	p.total = total
	return nil
}
