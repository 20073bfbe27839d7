package render

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

// --- mock resolver ---

type mockResolver struct {
	points   []domain.MonthValue
	state    string
	stores   []domain.StoreLocationRecord
	stateErr error

	seasonalityCalls int
	stateCalls       int
}

func (m *mockResolver) ResolveSeasonality(_ int) []domain.MonthValue {
	m.seasonalityCalls++
	return m.points
}

func (m *mockResolver) ResolveStateStores(_ int) (string, []domain.StoreLocationRecord, error) {
	m.stateCalls++
	return m.state, m.stores, m.stateErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func monthlyValues(values ...float64) []domain.MonthValue {
	points := make([]domain.MonthValue, len(values))
	for i, v := range values {
		points[i] = domain.MonthValue{Month: i + 1, Value: v}
	}
	return points
}

func alabamaStores() []domain.StoreLocationRecord {
	return []domain.StoreLocationRecord{
		{Store: 1, State: "AL", Latitude: 33.5186, Longitude: -86.8104},
		{Store: 3, State: "AL", Latitude: 34.7304, Longitude: -86.5861},
		{Store: 4, State: "AL", Latitude: 30.6954, Longitude: -88.0399},
	}
}

// --- tests ---

func TestRender_BothCharts(t *testing.T) {
	res := &mockResolver{
		points: monthlyValues(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12),
		state:  "AL",
		stores: alabamaStores(),
	}
	r := NewRenderer(res, discardLogger())
	sel := domain.Selection{Store: 1, Grain: "AB"}

	pair, err := r.Render(sel)

	require.NoError(t, err)
	assert.Equal(t, sel, pair.Selection)
	assert.Equal(t, "AL", pair.State)
	assert.Equal(t, 3, pair.StoreCount)
	assert.False(t, pair.NoSeasonalityData)
	assert.Contains(t, string(pair.Seasonality), "<svg")
	assert.Contains(t, string(pair.Map), "<svg")
	assert.Equal(t, 1, res.seasonalityCalls)
	assert.Equal(t, 1, res.stateCalls)
}

func TestRender_NoSeasonalityData(t *testing.T) {
	res := &mockResolver{state: "AL", stores: alabamaStores()}
	r := NewRenderer(res, discardLogger())

	pair, err := r.Render(domain.Selection{Store: 3, Grain: "AB"})

	require.NoError(t, err)
	assert.True(t, pair.NoSeasonalityData)
	assert.Nil(t, pair.Seasonality)
	assert.NotEmpty(t, pair.Map)
}

func TestRender_UnknownStore(t *testing.T) {
	res := &mockResolver{stateErr: &domain.UnknownStoreError{Store: 99}}
	r := NewRenderer(res, discardLogger())

	pair, err := r.Render(domain.Selection{Store: 99, Grain: "AB"})

	require.Error(t, err)
	var unknown *domain.UnknownStoreError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, ChartPair{}, pair)
	assert.Equal(t, 0, res.seasonalityCalls, "no chart work for an unknown store")
}

func TestSeasonalityChart(t *testing.T) {
	svg, err := SeasonalityChart(2, monthlyValues(12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1))

	require.NoError(t, err)
	out := string(svg)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Store 2")
}

func TestSeasonalityChart_FlatSeries(t *testing.T) {
	svg, err := SeasonalityChart(5, monthlyValues(3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3))

	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestStateMap_TitleAndLabels(t *testing.T) {
	svg, err := StateMap("AL", alabamaStores(), 1)

	require.NoError(t, err)
	out := string(svg)
	assert.Contains(t, out, ">AL<")
	for _, label := range []string{">1<", ">3<", ">4<"} {
		assert.Contains(t, out, label)
	}
}

func TestStateMap_SingleStore(t *testing.T) {
	stores := []domain.StoreLocationRecord{{Store: 11, State: "CT", Latitude: 41.7658, Longitude: -72.6734}}

	svg, err := StateMap("CT", stores, 11)

	require.NoError(t, err)
	assert.Contains(t, string(svg), ">CT<")
}

func TestViewport(t *testing.T) {
	b := viewport(alabamaStores())

	for _, s := range alabamaStores() {
		assert.True(t, b.Contains(s.Point()), "store %d outside viewport", s.Store)
	}
	assert.Less(t, b.Left(), -88.0399-0.5)
	assert.Greater(t, b.Top(), 34.7304+0.5)
}

func TestViewport_SinglePointHasArea(t *testing.T) {
	b := viewport([]domain.StoreLocationRecord{{Latitude: 40, Longitude: -74}})

	assert.InDelta(t, 1.0, b.Right()-b.Left(), 1e-9)
	assert.InDelta(t, 1.0, b.Top()-b.Bottom(), 1e-9)
}

func TestValueRange(t *testing.T) {
	lo, hi := valueRange([]float64{1, 11})
	assert.InDelta(t, 0.5, lo, 1e-9)
	assert.InDelta(t, 11.5, hi, 1e-9)

	lo, hi = valueRange([]float64{4, 4})
	assert.Equal(t, 3.0, lo)
	assert.Equal(t, 5.0, hi)
}

func TestDegreeFormatter(t *testing.T) {
	assert.Equal(t, "-86.8°", degreeFormatter(-86.81))
	assert.Equal(t, "", degreeFormatter("x"))
}
