package ports

import (
	"context"
	"time"

	"tacoshare/internal/core/domain/model/grouporder"
)

// DeliveryMode selects how the locked order reaches the group.
type DeliveryMode string

const (
	DeliveryModePickup   DeliveryMode = "pickup"
	DeliveryModeDelivery DeliveryMode = "delivery"
)

// Details carries the contact and handover information the leader provides at
// lock time. It is frozen into the snapshot's customer section so retries
// submit the exact payload of the first attempt.
type Details struct {
	CustomerName  string
	CustomerPhone string
	Mode          DeliveryMode
	// Address is required for delivery mode, empty for pickup.
	Address       string
	RequestedTime time.Time
}

// Receipt is the gateway's confirmation of an accepted order.
type Receipt struct {
	ExternalOrderID string
	TransactionID   string
}

// FulfillmentGateway submits locked group orders to the external storefront.
// The snapshot already contains the cart lines and customer section; it is
// resubmitted verbatim until a receipt is obtained. Transient failures are
// reported as dependency errors.
type FulfillmentGateway interface {
	Submit(ctx context.Context, snapshot grouporder.Snapshot) (Receipt, error)
}
