package domain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		sel, ok, err := ParseSelection("1", "AB")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, Selection{Store: 1, Grain: "AB"}, sel)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		sel, ok, err := ParseSelection("  42 ", " BC\t")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, Selection{Store: 42, Grain: "BC"}, sel)
	})

	t.Run("negative store parses", func(t *testing.T) {
		sel, ok, err := ParseSelection("-3", "AB")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, -3, sel.Store)
	})

	for _, tc := range []struct {
		name         string
		store, grain string
	}{
		{"blank store", "", "AB"},
		{"whitespace store", "   ", "AB"},
		{"blank grain", "1", ""},
		{"both blank", "", ""},
	} {
		t.Run(tc.name+" ignored", func(t *testing.T) {
			sel, ok, err := ParseSelection(tc.store, tc.grain)

			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, Selection{}, sel)
		})
	}

	t.Run("non-integer store", func(t *testing.T) {
		_, ok, err := ParseSelection("abc", "AB")

		require.Error(t, err)
		assert.False(t, ok)

		var formatErr *InvalidStoreFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, "abc", formatErr.Input)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
		assert.Contains(t, err.Error(), "whole number")
	})

	t.Run("decimal store rejected", func(t *testing.T) {
		_, _, err := ParseSelection("1.5", "AB")

		var formatErr *InvalidStoreFormatError
		assert.True(t, errors.As(err, &formatErr))
	})
}

func TestErrors(t *testing.T) {
	cause := errors.New("no such file")
	loadErr := &DataLoadError{Path: "data/x.csv", Reason: "open file", Err: cause}
	assert.Equal(t, `load reference data "data/x.csv": open file: no such file`, loadErr.Error())
	assert.ErrorIs(t, loadErr, cause)

	bare := &DataLoadError{Path: "data/x.csv", Reason: "no data rows"}
	assert.Equal(t, `load reference data "data/x.csv": no data rows`, bare.Error())

	assert.Equal(t, "store 7 not found", (&UnknownStoreError{Store: 7}).Error())
}

func TestStoreLocationRecord_Point(t *testing.T) {
	r := StoreLocationRecord{Latitude: 33.5, Longitude: -86.8}
	p := r.Point()

	assert.Equal(t, -86.8, p.Lon())
	assert.Equal(t, 33.5, p.Lat())
}
