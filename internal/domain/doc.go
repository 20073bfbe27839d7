// Package domain models the reference data behind the store seasonality
// dashboard.
//
// # Reference Tables
//
// Seasonality table:
//
//	store | state | month | value
//	One row per store per calendar month. Every store present has exactly
//	twelve rows, months 1 through 12, each once. Values are pre-aggregated
//	upstream and carry no unit.
//
// Location table:
//
//	row_id | state | loc_lat | loc_long | <other per-store attributes>
//	Loaded from CSV. The row_id column is the store id and is exposed as
//	Store. A store id maps to one state (two-letter USPS code) and one
//	WGS-84 coordinate pair. Extra columns are kept verbatim in Attributes.
//
// # Selection
//
// A Selection is the (store, grain) pair from the dashboard form. Store is a
// foreign key into both tables. Grain is free text that is accepted and shown
// back to the user but does not filter anything; see [ParseSelection] for the
// rules applied to raw form input.
//
// # Errors
//
//	*DataLoadError           startup only, the process refuses to start
//	*UnknownStoreError       store id missing from the location table
//	*InvalidStoreFormatError store input that is not an integer
package domain
