// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StationRepoFactory interface {
		TableRepository() ports.TableRepository
		CellRepository() ports.CellRepository
	}

	// ItemUoW manages transactions touching only the inventory ledger.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// OrderUoW manages transactions touching only order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReservationUoW spans the inventory ledger and orders: stock is decremented and the
	// order is created in one transaction.
	ReservationUoW interface {
		TxManager
		ItemRepoFactory
		OrderRepoFactory
	}

	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	// StationUoW manages transactions touching tables and cells.
	StationUoW interface {
		TxManager
		StationRepoFactory
	}

	StationUoWFactory interface {
		Create() StationUoW
	}

	// UoW manages transactions across every aggregate type.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cell, err := uow.CellRepository().GetForUpdate(ctx, cellID)
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ItemRepoFactory
		OrderRepoFactory
		StationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
