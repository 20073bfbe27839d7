package referencedata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

// Column names in the location CSV. The store id arrives as row_id and is
// renamed to store; a file that already says store is accepted too.
const (
	colRowID = "row_id"
	colStore = "store"
	colState = "state"
	colLat   = "loc_lat"
	colLong  = "loc_long"
)

// LoadStoreLocations reads the location table from a CSV file with a header
// row. Records keep the file's row order.
func LoadStoreLocations(path string) ([]domain.StoreLocationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DataLoadError{Path: path, Reason: "open file", Err: err}
	}
	defer f.Close()

	records, err := parseStoreLocations(f)
	if err != nil {
		var loadErr *domain.DataLoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, &domain.DataLoadError{Path: path, Reason: "read csv", Err: err}
	}
	return records, nil
}

// parseStoreLocations decodes location rows from r. DataLoadErrors it returns
// have an empty Path; the caller fills it in.
func parseStoreLocations(r io.Reader) ([]domain.StoreLocationRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.DataLoadError{Reason: "empty file"}
	}
	if err != nil {
		return nil, err
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.StoreLocationRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		rec, err := cols.decode(header, row)
		if err != nil {
			return nil, &domain.DataLoadError{Reason: fmt.Sprintf("line %d", line), Err: err}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &domain.DataLoadError{Reason: "no data rows"}
	}
	return records, nil
}

// columnIndex records where each required column sits in a row.
type columnIndex struct {
	store, state, lat, long int
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		header[i] = name
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	if _, ok := pos[colStore]; !ok {
		if i, ok := pos[colRowID]; ok {
			pos[colStore] = i
		}
	}

	var missing []string
	for _, name := range []string{colStore, colState, colLat, colLong} {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, &domain.DataLoadError{
			Reason: "missing required columns: " + strings.Join(missing, ", "),
		}
	}

	return columnIndex{
		store: pos[colStore],
		state: pos[colState],
		lat:   pos[colLat],
		long:  pos[colLong],
	}, nil
}

func (c columnIndex) decode(header, row []string) (domain.StoreLocationRecord, error) {
	store, err := strconv.Atoi(strings.TrimSpace(row[c.store]))
	if err != nil {
		return domain.StoreLocationRecord{}, fmt.Errorf("parse store: %w", err)
	}
	state := strings.ToUpper(strings.TrimSpace(row[c.state]))
	if state == "" {
		return domain.StoreLocationRecord{}, fmt.Errorf("store %d: blank state", store)
	}
	if !validStateCode(state) {
		return domain.StoreLocationRecord{}, fmt.Errorf("store %d: invalid state %q", store, state)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(row[c.lat]), 64)
	if err != nil {
		return domain.StoreLocationRecord{}, fmt.Errorf("store %d: parse loc_lat: %w", store, err)
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(row[c.long]), 64)
	if err != nil {
		return domain.StoreLocationRecord{}, fmt.Errorf("store %d: parse loc_long: %w", store, err)
	}

	rec := domain.StoreLocationRecord{
		Store:     store,
		State:     state,
		Latitude:  lat,
		Longitude: long,
	}
	for i, name := range header {
		if i == c.store || i == c.state || i == c.lat || i == c.long {
			continue
		}
		if rec.Attributes == nil {
			rec.Attributes = make(map[string]string, len(header)-4)
		}
		rec.Attributes[name] = row[i]
	}
	return rec, nil
}

// validStateCode reports whether s is made of ASCII letters only. State codes
// end up as chart titles, so anything else is rejected at load time.
func validStateCode(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
