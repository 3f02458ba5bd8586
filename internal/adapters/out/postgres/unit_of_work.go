// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction across the group
// order, participant order, and membership repositories, tracks the aggregates
// it touched, and rolls back automatically on failure.
package postgres

import (
	"context"

	"tacoshare/internal/adapters/out/postgres/grouporderrepo"
	"tacoshare/internal/adapters/out/postgres/membershiprepo"
	"tacoshare/internal/adapters/out/postgres/participantorderrepo"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin on an instance
// with an active transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// GroupOrderRepository provides group order persistence within the unit of
// work. Operations run inside the current transaction when one is active.
func (uow *GormUnitOfWork) GroupOrderRepository() ports.GroupOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return grouporderrepo.NewGormGroupOrderRepository(db, uow)
}

// ParticipantOrderRepository provides participant order persistence within the
// unit of work.
func (uow *GormUnitOfWork) ParticipantOrderRepository() ports.ParticipantOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return participantorderrepo.NewGormParticipantOrderRepository(db, uow)
}

// MembershipRepository provides membership persistence within the unit of
// work.
func (uow *GormUnitOfWork) MembershipRepository() ports.MembershipRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return membershiprepo.NewGormMembershipRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call this when aggregates are added or
// updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
