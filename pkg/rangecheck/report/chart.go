package report

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// verdictChart renders a bar chart of verdict counts as PNG bytes.
func verdictChart(s *Summary) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Verdicts"
	p.Y.Label.Text = "cells"

	values := plotter.Values{
		float64(s.LowCount),
		float64(s.OkCount),
		float64(s.HighCount),
		float64(s.Unclassified),
	}
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}

	p.Add(bars)
	p.NominalX("low", "ok", "high", "unclassified")

	wt, err := p.WriterTo(5*vg.Inch, 3*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
