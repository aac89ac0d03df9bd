// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RiderLocationRepoFactory provides access to the rider location repository within a transaction.
	RiderLocationRepoFactory interface {
		RiderLocationRepository() ports.RiderLocationRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// RestaurantUoW manages transactions for operations on restaurants and
	// their menus.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// AccountRestaurantUoW manages transactions spanning accounts and
	// restaurants. Used when creating a restaurant for an owner account.
	AccountRestaurantUoW interface {
		TxManager
		AccountRepoFactory
		RestaurantRepoFactory
	}

	// AccountRestaurantUoWFactory creates new account-restaurant unit of work instances.
	AccountRestaurantUoWFactory interface {
		Create() AccountRestaurantUoW
	}

	// OrderUoW manages transactions for order commands. Restaurant access is
	// included: order creation reads menus and status updates resolve which
	// restaurant the acting owner runs.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across account, restaurant, and order
	// aggregates. Used by rider assignment, which checks the assignee's role.
	UoW interface {
		TxManager
		AccountRepoFactory
		RestaurantRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// TrackingUoW manages transactions for rider location reports.
	TrackingUoW interface {
		TxManager
		RiderLocationRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}
)
