// Package render draws the dashboard's chart pair for a Selection.
package render

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

// Resolver is the query side the renderer reads from.
type Resolver interface {
	ResolveSeasonality(store int) []domain.MonthValue
	ResolveStateStores(store int) (string, []domain.StoreLocationRecord, error)
}

// ChartPair is the rendered output for one Selection. It is rebuilt on every
// render and never stored.
type ChartPair struct {
	Selection domain.Selection
	State     string

	// Seasonality is the line chart SVG; nil when NoSeasonalityData is set.
	Seasonality       []byte
	NoSeasonalityData bool

	// Map is the state scatter map SVG.
	Map        []byte
	StoreCount int
}

// Renderer resolves a Selection against the reference data and draws both charts.
type Renderer struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewRenderer creates a Renderer that reads through resolver.
func NewRenderer(resolver Resolver, logger *slog.Logger) *Renderer {
	return &Renderer{resolver: resolver, logger: logger}
}

// Render builds the chart pair. A store missing from the location table
// returns *domain.UnknownStoreError; a store with no seasonality rows still
// gets a map, with NoSeasonalityData set.
func (r *Renderer) Render(sel domain.Selection) (ChartPair, error) {
	state, stores, err := r.resolver.ResolveStateStores(sel.Store)
	if err != nil {
		return ChartPair{}, err
	}

	pair := ChartPair{
		Selection:  sel,
		State:      state,
		StoreCount: len(stores),
	}

	points := r.resolver.ResolveSeasonality(sel.Store)
	if len(points) == 0 {
		pair.NoSeasonalityData = true
		r.logger.Debug("no seasonality data", "store", sel.Store)
	} else {
		pair.Seasonality, err = SeasonalityChart(sel.Store, points)
		if err != nil {
			return ChartPair{}, fmt.Errorf("render seasonality chart: %w", err)
		}
	}

	pair.Map, err = StateMap(state, stores, sel.Store)
	if err != nil {
		return ChartPair{}, fmt.Errorf("render state map: %w", err)
	}

	r.logger.Debug("charts rendered",
		"store", sel.Store,
		"grain", sel.Grain,
		"state", state,
		"state_stores", len(stores),
	)
	return pair, nil
}
