// Package query answers the two lookups the dashboard needs from the
// reference tables.
package query

import (
	"cmp"
	"slices"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

// Tables is the read side of the reference data store.
type Tables interface {
	Seasonality() []domain.SeasonalityRecord
	Locations() []domain.StoreLocationRecord
}

// Resolver filters the reference tables by store and by state.
type Resolver struct {
	tables Tables
}

// NewResolver creates a Resolver over the given tables.
func NewResolver(tables Tables) *Resolver {
	return &Resolver{tables: tables}
}

// ResolveSeasonality returns the store's monthly values in month order.
// An unknown store yields an empty slice.
func (r *Resolver) ResolveSeasonality(store int) []domain.MonthValue {
	points := []domain.MonthValue{}
	for _, rec := range r.tables.Seasonality() {
		if rec.Store == store {
			points = append(points, domain.MonthValue{Month: rec.Month, Value: rec.Value})
		}
	}
	slices.SortStableFunc(points, func(a, b domain.MonthValue) int {
		return cmp.Compare(a.Month, b.Month)
	})
	return points
}

// ResolveStateStores finds the state of store, taken from its first location
// row, and returns every location in that state in table order. The queried
// store is part of the result.
func (r *Resolver) ResolveStateStores(store int) (string, []domain.StoreLocationRecord, error) {
	locations := r.tables.Locations()

	i := slices.IndexFunc(locations, func(rec domain.StoreLocationRecord) bool {
		return rec.Store == store
	})
	if i < 0 {
		return "", nil, &domain.UnknownStoreError{Store: store}
	}
	state := locations[i].State

	var sameState []domain.StoreLocationRecord
	for _, rec := range locations {
		if rec.State == state {
			sameState = append(sameState, rec)
		}
	}
	return state, sameState, nil
}
