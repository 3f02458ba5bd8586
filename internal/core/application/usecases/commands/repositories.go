// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tacoshare/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// GroupOrderRepoFactory provides access to the group order repository within a transaction.
	GroupOrderRepoFactory interface {
		GroupOrderRepository() ports.GroupOrderRepository
	}

	// ParticipantOrderRepoFactory provides access to the participant order repository within a transaction.
	ParticipantOrderRepoFactory interface {
		ParticipantOrderRepository() ports.ParticipantOrderRepository
	}

	// MembershipRepoFactory provides access to the membership repository within a transaction.
	MembershipRepoFactory interface {
		MembershipRepository() ports.MembershipRepository
	}

	// GroupOrderUoW manages transactions for group-order-only operations.
	GroupOrderUoW interface {
		TxManager
		GroupOrderRepoFactory
	}

	// GroupOrderUoWFactory creates new group order unit of work instances.
	GroupOrderUoWFactory interface {
		Create() GroupOrderUoW
	}

	// CartUoW manages transactions across the group order and its participant
	// orders. Used by every command that touches the shared cart.
	CartUoW interface {
		TxManager
		GroupOrderRepoFactory
		ParticipantOrderRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// MembershipUoW manages transactions for membership operations.
	MembershipUoW interface {
		TxManager
		MembershipRepoFactory
	}

	// MembershipUoWFactory creates new membership unit of work instances.
	MembershipUoWFactory interface {
		Create() MembershipUoW
	}
)
