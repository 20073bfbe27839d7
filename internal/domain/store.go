package domain

import "github.com/paulmach/orb"

// Selection is the store and grain a user last submitted.
// Grain is carried through to the page but does not filter any table.
type Selection struct {
	Store int    `json:"store"`
	Grain string `json:"grain"`
}

// SeasonalityRecord is one month of pre-aggregated seasonality for a store.
type SeasonalityRecord struct {
	Store int     `json:"store"`
	State string  `json:"state"`
	Month int     `json:"month"` // 1-12
	Value float64 `json:"value"`
}

// StoreLocationRecord is one row of the store location table.
type StoreLocationRecord struct {
	Store     int     `json:"store"`
	State     string  `json:"state"`
	Latitude  float64 `json:"loc_lat"`
	Longitude float64 `json:"loc_long"`

	// Attributes holds the remaining per-store CSV columns, keyed by header.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Point returns the store coordinates in orb's [lon, lat] order.
func (r StoreLocationRecord) Point() orb.Point {
	return orb.Point{r.Longitude, r.Latitude}
}

// MonthValue is a single point of a store's seasonality curve.
type MonthValue struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}
