package grouporder

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/errs"
)

var (
	// ErrGroupOrderIsNotConstructed is returned when a GroupOrder instance was not
	// created through the NewGroupOrder or RestoreGroupOrder factory methods.
	ErrGroupOrderIsNotConstructed = errors.New("GroupOrder must be created via NewGroupOrder constructor")
)

// GroupOrder is the shared cart aggregate root. One member, the leader, opens
// it; any member attaches a participant order while it is open; the leader
// locks it exactly once, freezing the cart into a snapshot that is submitted
// to the fulfillment gateway.
//
// GroupOrder follows these invariants:
//   - Must have valid id and leader identifiers
//   - Status transitions follow the Open -> Locked state machine
//   - Only the leader may lock, and only once
//   - The lock-time snapshot is immutable: delivery retries resubmit it verbatim
//   - External order and transaction identifiers are set only on confirmed delivery
type GroupOrder struct {
	id       kernel.UUID
	leaderID kernel.UUID

	// name is an optional human label for the cart ("Friday lunch").
	name string

	// window is the ordering window communicated to participants.
	window kernel.TimeWindow

	status Status

	// pendingDelivery is true from lock until the gateway confirms, driving
	// the retry job.
	pendingDelivery bool

	// snapshot is the cart frozen at lock time. Nil while Open.
	snapshot *Snapshot

	externalOrderID string
	transactionID   string

	isConstructed bool
}

// NewGroupOrder creates an open group order led by leaderID. The name is
// optional; the window must be a valid time window.
func NewGroupOrder(id kernel.UUID, leaderID kernel.UUID, name string, window kernel.TimeWindow) (*GroupOrder, error) {
	groupOrder := &GroupOrder{
		status:        Open,
		name:          name,
		isConstructed: true,
	}

	if err := errors.Join(
		groupOrder.setID(id),
		groupOrder.setLeaderID(leaderID),
		groupOrder.setWindow(window),
	); err != nil {
		return nil, err
	}

	return groupOrder, nil
}

// RestoreGroupOrder reconstructs a group order from persistence, validating
// every restored field.
func RestoreGroupOrder(
	id kernel.UUID,
	leaderID kernel.UUID,
	name string,
	window kernel.TimeWindow,
	status Status,
	pendingDelivery bool,
	snapshot *Snapshot,
	externalOrderID string,
	transactionID string,
) (*GroupOrder, error) {
	groupOrder := &GroupOrder{
		name:            name,
		pendingDelivery: pendingDelivery,
		snapshot:        snapshot,
		externalOrderID: externalOrderID,
		transactionID:   transactionID,
		isConstructed:   true,
	}

	if err := errors.Join(
		groupOrder.setID(id),
		groupOrder.setLeaderID(leaderID),
		groupOrder.setWindow(window),
		groupOrder.setStatus(status),
	); err != nil {
		return nil, err
	}

	return groupOrder, nil
}

// Validate ensures the GroupOrder instance was properly constructed.
func (g *GroupOrder) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGroupOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two group orders by identifier.
func (g *GroupOrder) IsEqual(other *GroupOrder) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the group order's unique identifier.
func (g *GroupOrder) ID() kernel.UUID {
	return g.id
}

// LeaderID returns the identifier of the member who opened the cart.
func (g *GroupOrder) LeaderID() kernel.UUID {
	return g.leaderID
}

// Name returns the optional human label.
func (g *GroupOrder) Name() string {
	return g.name
}

// Window returns the ordering window.
func (g *GroupOrder) Window() kernel.TimeWindow {
	return g.window
}

// Status returns the current lifecycle status.
func (g *GroupOrder) Status() Status {
	return g.status
}

// IsOpen reports whether participant orders may still be edited.
func (g *GroupOrder) IsOpen() bool {
	return g.status == Open
}

// IsPendingDelivery reports whether the locked cart still awaits gateway
// confirmation.
func (g *GroupOrder) IsPendingDelivery() bool {
	return g.pendingDelivery
}

// LockedSnapshot returns the cart frozen at lock time, or nil while Open.
func (g *GroupOrder) LockedSnapshot() *Snapshot {
	return g.snapshot
}

// ExternalOrderID returns the gateway order identifier. Empty until delivered.
func (g *GroupOrder) ExternalOrderID() string {
	return g.externalOrderID
}

// TransactionID returns the gateway transaction identifier. Empty until delivered.
func (g *GroupOrder) TransactionID() string {
	return g.transactionID
}

// Lock freezes the cart.
//
// Business rules:
//   - Only the leader may lock
//   - Only an Open order may be locked; a second lock is a conflict
//   - The snapshot passed in becomes the immutable payload for delivery,
//     and the order enters the pending-delivery state
func (g *GroupOrder) Lock(actor kernel.UUID, snapshot Snapshot) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsEqual(g.leaderID) {
		return errs.NewNotAuthorizedError("lock group order", actor.String())
	}

	newStatus, err := g.status.Lock()
	if err != nil {
		return err
	}

	g.status = newStatus
	g.snapshot = &snapshot
	g.pendingDelivery = true
	return nil
}

// AuthorizeEdit checks whether actor may create, replace, or delete the
// participant order owned by ownerID: the owner and the leader may, anyone
// else may not.
func (g *GroupOrder) AuthorizeEdit(actor kernel.UUID, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsEqual(ownerID) || actor.IsEqual(g.leaderID) {
		return nil
	}
	return errs.NewNotAuthorizedError("edit participant order", actor.String())
}

// MarkDelivered records a confirmed gateway submission and clears the
// pending-delivery flag. Valid only on a locked order still awaiting delivery.
func (g *GroupOrder) MarkDelivered(externalOrderID, transactionID string) error {
	if g.status != Locked || !g.pendingDelivery {
		return errs.NewConflictError("group order", "is not awaiting delivery")
	}
	if externalOrderID == "" {
		return errs.NewValueIsRequiredError("externalOrderID")
	}
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}

	g.externalOrderID = externalOrderID
	g.transactionID = transactionID
	g.pendingDelivery = false
	return nil
}

func (g *GroupOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *GroupOrder) setLeaderID(leaderID kernel.UUID) error {
	if err := leaderID.Validate(); err != nil {
		return err
	}
	g.leaderID = leaderID
	return nil
}

func (g *GroupOrder) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	g.window = window
	return nil
}

func (g *GroupOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	g.status = status
	return nil
}
