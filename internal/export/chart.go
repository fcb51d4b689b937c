package export

import (
	"errors"
	"fmt"
	"os"
	"time"

	"nutritional-planner/internal/domain/entity"
	"nutritional-planner/internal/metrics"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Weight axis range for the BMI chart, in pounds.
const (
	bmiChartMinWeight = 100.0
	bmiChartMaxWeight = 250.0
	bmiChartSamples   = 100
)

// BMIChart renders the user's BMI against the weight range at their height,
// with the gain/lose threshold guides drawn across the range and the user's
// own point annotated. Returns the written file path.
func (e *Exporter) BMIChart(weightLbs float64, heightFt, heightIn int) (string, error) {
	bmi, err := metrics.CalculateBMI(weightLbs, heightFt, heightIn)
	if err != nil {
		return "", err
	}

	xs := make([]float64, bmiChartSamples)
	ys := make([]float64, bmiChartSamples)
	step := (bmiChartMaxWeight - bmiChartMinWeight) / float64(bmiChartSamples-1)
	for i := 0; i < bmiChartSamples; i++ {
		w := bmiChartMinWeight + float64(i)*step
		xs[i] = w
		// Height is fixed, so the curve is linear in weight; rendering it
		// across the range shows where the user's weight would land.
		b, _ := metrics.CalculateBMI(w, heightFt, heightIn)
		ys[i] = b
	}

	graph := chart.Chart{
		Title: "BMI Chart",
		XAxis: chart.XAxis{Name: "Weight (lbs)"},
		YAxis: chart.YAxis{Name: "BMI"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("BMI at %d'%d\"", heightFt, heightIn),
				XValues: xs,
				YValues: ys,
			},
			thresholdGuide("Gain below", 18.5, drawing.ColorFromHex("32cd32")),
			thresholdGuide("Lose above", 24.9, drawing.ColorFromHex("e9153f")),
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{XValue: weightLbs, YValue: bmi, Label: fmt.Sprintf("Your BMI: %.2f", bmi)},
				},
			},
		},
	}

	path := e.path(bmiChartFileName)
	if err := e.renderPNG(graph, path); err != nil {
		return "", err
	}
	return path, nil
}

// ProgressChart renders a profile's ordered (timestamp, bmi) history as a
// line chart. At least two points are required to draw a trend.
func (e *Exporter) ProgressChart(points []entity.HistoryPoint) (string, error) {
	if len(points) < 2 {
		return "", errors.New("progress chart needs at least two history points")
	}

	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Timestamp
		ys[i] = p.BMI
	}

	graph := chart.Chart{
		Title: "BMI Progress Over Time",
		XAxis: chart.XAxis{Name: "Date"},
		YAxis: chart.YAxis{Name: "BMI"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "BMI",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	path := e.path(progressFileName)
	if err := e.renderPNG(graph, path); err != nil {
		return "", err
	}
	return path, nil
}

// thresholdGuide draws a horizontal classification boundary across the
// chart's weight range.
func thresholdGuide(name string, bmi float64, color drawing.Color) chart.Series {
	return chart.ContinuousSeries{
		Name:    fmt.Sprintf("%s %.1f", name, bmi),
		XValues: []float64{bmiChartMinWeight, bmiChartMaxWeight},
		YValues: []float64{bmi, bmi},
		Style: chart.Style{
			StrokeColor:     color,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

func (e *Exporter) renderPNG(graph chart.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
