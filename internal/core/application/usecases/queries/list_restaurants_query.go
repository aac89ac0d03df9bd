// Package queries contains the read side. Query handlers go straight to the
// database with raw SQL instead of loading aggregates; they never mutate
// state.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery retrieves the restaurants a customer can browse.
// Deactivated restaurants are excluded; closed ones are listed with their
// open flag so the UI can grey them out.
type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery creates a parameterless query for the restaurant
// listing.
func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// ListRestaurantsQueryResponse is one row of the restaurant listing.
type ListRestaurantsQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
	Cuisine restaurant.Cuisine
	IsOpen  bool
}
