package referencedata

import "github.com/couchcryptid/store-seasonality-dashboard/internal/domain"

// seasonalityStores lists the stores in the embedded seasonality table with
// their monthly values, January first.
var seasonalityStores = []struct {
	store  int
	state  string
	values [12]float64
}{
	{store: 1, state: "AL", values: [12]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
	{store: 2, state: "NJ", values: [12]float64{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
}

// LoadSeasonality returns the seasonality table, one record per store and
// month, grouped by store in month order. Each call returns a fresh slice.
func LoadSeasonality() []domain.SeasonalityRecord {
	records := make([]domain.SeasonalityRecord, 0, len(seasonalityStores)*12)
	for _, s := range seasonalityStores {
		for i, v := range s.values {
			records = append(records, domain.SeasonalityRecord{
				Store: s.store,
				State: s.state,
				Month: i + 1,
				Value: v,
			})
		}
	}
	return records
}
