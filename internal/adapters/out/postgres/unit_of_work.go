// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work maintains the set of aggregates touched by a business
// transaction and coordinates writing out changes atomically.
//
// Each business operation gets a fresh instance from the factory:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained from a unit of work run inside its transaction when
// one is active, and fall back to the plain connection otherwise. Aggregates
// written through those repositories are tracked and can be inspected after
// commit for post-transaction processing.
package postgres

import (
	"context"

	"docflow/internal/adapters/out/postgres/analysisrepo"
	"docflow/internal/adapters/out/postgres/documentrepo"
	"docflow/internal/adapters/out/postgres/orderrepo"
	"docflow/internal/adapters/out/postgres/paymentrepo"
	"docflow/internal/adapters/out/postgres/userrepo"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing a single GORM
// connection. Each created instance owns its own transaction state, keeping
// concurrent operations isolated from each other.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database
// connection.
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

// GormUnitOfWork coordinates database transactions across the repositories
// of a single business operation using GORM transaction support.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not create nested transactions.
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

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// UserRepository provides user persistence bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// OrderRepository provides order persistence bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// DocumentRepository provides document persistence bound to the current transaction.
func (uow *GormUnitOfWork) DocumentRepository() ports.DocumentRepository {
	return documentrepo.NewGormDocumentRepository(uow.conn(), uow)
}

// AnalysisRepository provides analysis persistence bound to the current transaction.
func (uow *GormUnitOfWork) AnalysisRepository() ports.AnalysisRepository {
	return analysisrepo.NewGormAnalysisRepository(uow.conn(), uow)
}

// PaymentRepository provides payment persistence bound to the current transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it when aggregates are added or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
