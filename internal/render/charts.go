package render

import (
	"bytes"
	"math"
	"strconv"

	"github.com/paulmach/orb"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

const (
	chartWidth  = 960
	chartHeight = 420
	mapHeight   = 520
)

var (
	// axisColor is rgb(0, 58, 174), used for the mirrored axis border.
	axisColor   = drawing.Color{R: 0, G: 58, B: 174, A: 255}
	lineColor   = drawing.Color{R: 99, G: 110, B: 250, A: 255}
	markerColor = drawing.Color{R: 99, G: 110, B: 250, A: 255}
	focusColor  = drawing.Color{R: 239, G: 85, B: 59, A: 255}
)

func axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: axisColor,
		StrokeWidth: 1,
		FontColor:   drawing.ColorBlack,
	}
}

// borderedCanvas draws the plot area outline so the axes read as a box.
func borderedCanvas() chart.Style {
	return chart.Style{
		FillColor:   drawing.ColorWhite,
		StrokeColor: axisColor,
		StrokeWidth: 1,
	}
}

// SeasonalityChart draws value by month as an SVG line chart.
// points must be non-empty and ordered by month.
func SeasonalityChart(store int, points []domain.MonthValue) ([]byte, error) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Month)
		ys[i] = p.Value
	}

	monthTicks := make([]chart.Tick, 0, 12)
	for m := 1; m <= 12; m++ {
		monthTicks = append(monthTicks, chart.Tick{Value: float64(m), Label: strconv.Itoa(m)})
	}

	lo, hi := valueRange(ys)
	graph := chart.Chart{
		Title:      "Store " + strconv.Itoa(store),
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{FillColor: drawing.ColorWhite, Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		Canvas:     borderedCanvas(),
		XAxis: chart.XAxis{
			Name:  "month",
			Style: axisStyle(),
			Range: &chart.ContinuousRange{Min: 1, Max: 12},
			Ticks: monthTicks,
		},
		YAxis: chart.YAxis{
			Name:  "value",
			Style: axisStyle(),
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "value",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// valueRange pads the y extent so flat series still have a drawable range.
func valueRange(ys []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

// StateMap draws every store in stores as a marker at its coordinates,
// labelled by store id, with the map scoped to the stores' bounding box.
// The focus store gets its own marker color. The title is the state code.
func StateMap(state string, stores []domain.StoreLocationRecord, focus int) ([]byte, error) {
	bound := viewport(stores)

	others := markerSeries("stores", markerColor)
	selected := markerSeries("selected", focusColor)
	labels := chart.AnnotationSeries{
		Style: chart.Style{
			FontColor:   drawing.ColorBlack,
			StrokeColor: axisColor,
			FillColor:   drawing.ColorWhite,
		},
	}

	for _, s := range stores {
		p := s.Point()
		target := &others
		if s.Store == focus {
			target = &selected
		}
		target.XValues = append(target.XValues, p.Lon())
		target.YValues = append(target.YValues, p.Lat())
		labels.Annotations = append(labels.Annotations, chart.Value2{
			XValue: p.Lon(),
			YValue: p.Lat(),
			Label:  strconv.Itoa(s.Store),
		})
	}

	series := []chart.Series{}
	if len(others.XValues) > 0 {
		series = append(series, others)
	}
	if len(selected.XValues) > 0 {
		series = append(series, selected)
	}
	series = append(series, labels)

	graph := chart.Chart{
		Title:      state,
		Width:      chartWidth,
		Height:     mapHeight,
		Background: chart.Style{FillColor: drawing.ColorWhite, Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		Canvas:     borderedCanvas(),
		XAxis: chart.XAxis{
			Name:           "longitude",
			Style:          axisStyle(),
			Range:          &chart.ContinuousRange{Min: bound.Min.Lon(), Max: bound.Max.Lon()},
			ValueFormatter: degreeFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "latitude",
			Style:          axisStyle(),
			Range:          &chart.ContinuousRange{Min: bound.Min.Lat(), Max: bound.Max.Lat()},
			ValueFormatter: degreeFormatter,
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func markerSeries(name string, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    6,
			DotColor:    color,
		},
	}
}

// viewport is the stores' bounding box padded by half a degree plus a tenth
// of its larger side, so a single store still gets a visible area.
func viewport(stores []domain.StoreLocationRecord) orb.Bound {
	mp := make(orb.MultiPoint, 0, len(stores))
	for _, s := range stores {
		mp = append(mp, s.Point())
	}
	bound := mp.Bound()
	span := math.Max(bound.Right()-bound.Left(), bound.Top()-bound.Bottom())
	return bound.Pad(0.5 + span*0.1)
}

func degreeFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 1, 64) + "°"
	}
	return ""
}
