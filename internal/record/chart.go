package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewSamples is returned when a chart has fewer than two points.
var ErrTooFewSamples = errors.New("record: need at least two samples")

// Population collects population samples per generation.
type Population struct {
	gens []float64
	pops []float64
	peak float64
}

// Add records the population at a generation.
func (p *Population) Add(gen, pop int) {
	p.gens = append(p.gens, float64(gen))
	p.pops = append(p.pops, float64(pop))
	p.peak = max(p.peak, float64(pop))
}

// Len returns the number of samples.
func (p *Population) Len() int { return len(p.gens) }

// WriteChart renders the samples as a PNG line chart.
func (p *Population) WriteChart(w io.Writer) error {
	if len(p.gens) < 2 {
		return ErrTooFewSamples
	}
	graph := chart.Chart{
		Width:  800,
		Height: 300,
		XAxis: chart.XAxis{
			Name:  "generation",
			Range: &chart.ContinuousRange{Min: p.gens[0], Max: max(p.gens[len(p.gens)-1], p.gens[0]+1)},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "population",
			Range: &chart.ContinuousRange{Min: 0, Max: max(p.peak, 1)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "population",
				XValues: p.gens,
				YValues: p.pops,
				Style: chart.Style{
					StrokeColor: drawing.Color{G: 0xc0, A: 255},
					StrokeWidth: 2.0,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
