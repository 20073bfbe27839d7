package referencedata

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

// Tables holds both reference tables. They are never mutated after Load,
// so concurrent readers need no locking.
type Tables struct {
	seasonality []domain.SeasonalityRecord
	locations   []domain.StoreLocationRecord
}

// Stats summarizes what was loaded.
type Stats struct {
	SeasonalityRows   int
	SeasonalityStores int
	LocationRows      int
	LocationStores    int
	States            int
}

// Load builds the seasonality table and reads the location table from path.
func Load(path string, logger *slog.Logger) (*Tables, error) {
	locations, err := LoadStoreLocations(path)
	if err != nil {
		return nil, err
	}
	t := New(LoadSeasonality(), locations)

	st := t.Stats()
	logger.Info("reference data loaded",
		"path", path,
		"seasonality_rows", st.SeasonalityRows,
		"location_rows", st.LocationRows,
		"states", st.States,
	)
	return t, nil
}

// New wraps already-loaded tables.
func New(seasonality []domain.SeasonalityRecord, locations []domain.StoreLocationRecord) *Tables {
	return &Tables{seasonality: seasonality, locations: locations}
}

// Seasonality returns the seasonality table. Callers must not modify it.
func (t *Tables) Seasonality() []domain.SeasonalityRecord { return t.seasonality }

// Locations returns the location table. Callers must not modify it.
func (t *Tables) Locations() []domain.StoreLocationRecord { return t.locations }

// CheckReadiness reports whether the location table is populated.
func (t *Tables) CheckReadiness(_ context.Context) error {
	if t == nil || len(t.locations) == 0 {
		return errors.New("reference data not loaded")
	}
	return nil
}

// Stats counts rows, distinct stores and states in both tables.
func (t *Tables) Stats() Stats {
	seasonStores := make(map[int]struct{})
	for _, r := range t.seasonality {
		seasonStores[r.Store] = struct{}{}
	}
	locStores := make(map[int]struct{})
	states := make(map[string]struct{})
	for _, r := range t.locations {
		locStores[r.Store] = struct{}{}
		states[r.State] = struct{}{}
	}
	return Stats{
		SeasonalityRows:   len(t.seasonality),
		SeasonalityStores: len(seasonStores),
		LocationRows:      len(t.locations),
		LocationStores:    len(locStores),
		States:            len(states),
	}
}
