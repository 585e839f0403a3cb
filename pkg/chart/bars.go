/*
Copyright 2026 The Dapr Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// headroom scales the tallest bar to leave space for its value label.
const headroom = 1.15

type series struct {
	label  string
	values plotter.Values
}

// groupedBars is a bar chart with one group per category and one bar per
// series inside each group.
type groupedBars struct {
	title      string
	xLabel     string
	yLabel     string
	categories []string
	series     []series
	// barFraction is the width of a single bar relative to a category slot.
	barFraction float64
}

func (r *Renderer) plot(g groupedBars) (*plot.Plot, error) {
	if len(g.categories) == 0 {
		return nil, fmt.Errorf("%s chart has no categories", g.title)
	}

	p := plot.New()
	p.Title.Text = g.title
	p.X.Label.Text = g.xLabel
	p.Y.Label.Text = g.yLabel
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Horizontal.Width = vg.Points(0.5)
	grid.Horizontal.Dashes = nil
	p.Add(grid)

	// Qualitative brewer palettes start at three colors.
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Dark2", max(len(g.series), 3))
	if err != nil {
		return nil, err
	}
	colors := palette.Colors()

	// Bar widths are canvas lengths, so approximate a category slot as the
	// figure width less room for the y axis.
	usable := r.opts.Width - vg.Inch
	if usable <= 0 {
		usable = r.opts.Width
	}
	slot := usable / vg.Length(len(g.categories))
	barWidth := slot * vg.Length(g.barFraction)
	groupWidth := barWidth * vg.Length(len(g.series))

	var bottom, top float64
	for i, s := range g.series {
		values := finite(s.values)

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to build %q bars: %w", s.label, err)
		}
		bars.Color = colors[i]
		bars.LineStyle.Width = 0
		bars.Offset = barWidth*vg.Length(i) - groupWidth/2 + barWidth/2
		p.Add(bars)
		p.Legend.Add(s.label, bars)

		labels, err := valueLabels(values, bars.Offset)
		if err != nil {
			return nil, err
		}
		p.Add(labels)

		for _, v := range values {
			bottom = math.Min(bottom, v)
			top = math.Max(top, v)
		}
	}

	ticks := make([]plot.Tick, len(g.categories))
	for i, c := range g.categories {
		ticks[i] = plot.Tick{Value: float64(i), Label: c}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -0.5
	p.X.Max = float64(len(g.categories)) - 0.5

	p.Y.Min, p.Y.Max = yRange(bottom, top)

	return p, nil
}

// yRange returns the y axis bounds for bars spanning bottom..top. The axis
// always includes 0 and gets headroom on whichever side has bars.
func yRange(bottom, top float64) (lo, hi float64) {
	if bottom < 0 {
		lo = bottom * headroom
	}
	switch {
	case top > 0:
		hi = top * headroom
	case lo == 0:
		hi = 1
	}
	return lo, hi
}

// valueLabels annotates each bar with its rounded height, just above the bar.
func valueLabels(values plotter.Values, offset vg.Length) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(values))
	strs := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		strs[i] = fmt.Sprintf("%.0f", v)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return nil, fmt.Errorf("failed to build bar labels: %w", err)
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Points(4)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	return labels, nil
}

// finite replaces NaN and infinite values, which cannot be drawn, with 0.
func finite(values plotter.Values) plotter.Values {
	out := make(plotter.Values, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = v
	}
	return out
}

// encode prepares p for writing in the configured format.
func (r *Renderer) encode(p *plot.Plot) (io.WriterTo, error) {
	if r.opts.Format == FormatPNG {
		c := vgimg.NewWith(vgimg.UseWH(r.opts.Width, r.opts.Height), vgimg.UseDPI(r.opts.DPI))
		p.Draw(draw.New(c))
		return vgimg.PngCanvas{Canvas: c}, nil
	}
	return p.WriterTo(r.opts.Width, r.opts.Height, r.opts.Format)
}
