// Command validate checks the dashboard's reference tables for the
// invariants the query layer relies on: twelve months per seasonality store,
// one state and coordinate pair per location store, and seasonality stores
// present in the location table under the same state.
//
// Usage:
//
//	go run ./cmd/validate -locations data/dunkin_stores.csv
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/referencedata"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	locationsPath := flag.String("locations", "data/dunkin_stores.csv", "path to the store location CSV")
	flag.Parse()

	os.Exit(run(*locationsPath))
}

func run(locationsPath string) int {
	fmt.Println("=== Reference Data Validation ===")
	fmt.Println()

	locations, err := referencedata.LoadStoreLocations(locationsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}
	seasonality := referencedata.LoadSeasonality()

	phases := validate(seasonality, locations)

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d seasonality, %d location\n", len(seasonality), len(locations))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func validate(seasonality []domain.SeasonalityRecord, locations []domain.StoreLocationRecord) []*phase {
	return []*phase{
		validateSeasonality(seasonality),
		validateLocations(locations),
		validateCrossReference(seasonality, locations),
	}
}

// ── Phase 1: Seasonality ──

func validateSeasonality(records []domain.SeasonalityRecord) *phase {
	p := &phase{name: "Phase 1: Seasonality (12 months per store)"}

	months := map[int]map[int]int{}
	states := map[int]string{}
	for _, r := range records {
		if r.Month < 1 || r.Month > 12 {
			p.errorf("store %d: month %d out of range", r.Store, r.Month)
			continue
		}
		if months[r.Store] == nil {
			months[r.Store] = map[int]int{}
		}
		months[r.Store][r.Month]++
		if prev, ok := states[r.Store]; ok && prev != r.State {
			p.errorf("store %d: states %q and %q", r.Store, prev, r.State)
		}
		states[r.Store] = r.State
	}

	for _, store := range sortedKeys(months) {
		for m := 1; m <= 12; m++ {
			switch n := months[store][m]; {
			case n == 0:
				p.errorf("store %d: month %d missing", store, m)
			case n > 1:
				p.errorf("store %d: month %d appears %d times", store, m, n)
			}
		}
	}
	return p
}

// ── Phase 2: Locations ──

func validateLocations(records []domain.StoreLocationRecord) *phase {
	p := &phase{name: "Phase 2: Locations (one row per store)"}

	first := map[int]domain.StoreLocationRecord{}
	for _, r := range records {
		if r.Latitude < -90 || r.Latitude > 90 {
			p.errorf("store %d: latitude %g out of range", r.Store, r.Latitude)
		}
		if r.Longitude < -180 || r.Longitude > 180 {
			p.errorf("store %d: longitude %g out of range", r.Store, r.Longitude)
		}
		prev, seen := first[r.Store]
		if !seen {
			first[r.Store] = r
			continue
		}
		if prev.State != r.State {
			p.errorf("store %d: listed in %s and %s", r.Store, prev.State, r.State)
		}
		if prev.Latitude != r.Latitude || prev.Longitude != r.Longitude {
			p.errorf("store %d: coordinates (%g, %g) and (%g, %g)",
				r.Store, prev.Latitude, prev.Longitude, r.Latitude, r.Longitude)
		}
	}
	return p
}

// ── Phase 3: Cross reference ──

func validateCrossReference(seasonality []domain.SeasonalityRecord, locations []domain.StoreLocationRecord) *phase {
	p := &phase{name: "Phase 3: Cross Reference (seasonality → locations)"}

	locState := map[int]string{}
	for _, r := range locations {
		if _, ok := locState[r.Store]; !ok {
			locState[r.Store] = r.State
		}
	}

	checked := map[int]bool{}
	for _, r := range seasonality {
		if checked[r.Store] {
			continue
		}
		checked[r.Store] = true

		state, ok := locState[r.Store]
		switch {
		case !ok:
			p.errorf("store %d: in seasonality table but not in location table", r.Store)
		case state != r.State:
			p.errorf("store %d: seasonality state %s, location state %s", r.Store, r.State, state)
		}
	}
	return p
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
