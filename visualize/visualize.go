// Package visualize renders the diagnostic plots of a sweep: the
// complexity-versus-RMSE scatter with its elbow selection, and
// one-dimensional fit overlays comparing fitted expressions with the
// true function.
package visualize

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/symgo-ml/symgo/pareto"
	"github.com/symgo-ml/symgo/pkg/errors"
)

var (
	hullColor     = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	selectedColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	pointColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	truthColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	curvePalette = []color.RGBA{
		{R: 255, G: 127, B: 14, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 140, G: 86, B: 75, A: 255},
	}
)

// ComplexityVsRMSE plots one point per parsimony value, a red line
// through the hull extremes and, when a selection is given, an orange
// marker and slope line through the selected point.
func ComplexityVsRMSE(points []pareto.Point, selected *pareto.Point, title, path string) error {
	if len(points) == 0 {
		return errors.NewValueError("visualize.ComplexityVsRMSE", "no points to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Operation Count"
	p.Y.Label.Text = "RMSE"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.Complexity, Y: pt.RMSE}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "building sweep scatter")
	}
	scatter.GlyphStyle.Color = pointColor
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)
	p.Legend.Add("sweep points", scatter)

	lowerRight, upperLeft, ok := pareto.Extremes(points)
	if !ok {
		return errors.NewValueError("visualize.ComplexityVsRMSE", "no hull extremes")
	}
	hull, err := plotter.NewLine(plotter.XYs{
		{X: upperLeft.Complexity, Y: upperLeft.RMSE},
		{X: lowerRight.Complexity, Y: lowerRight.RMSE},
	})
	if err != nil {
		return errors.Wrap(err, "building hull line")
	}
	hull.LineStyle.Color = hullColor
	p.Add(hull)
	p.Legend.Add("hull extremes", hull)

	if selected != nil {
		marker, err := plotter.NewScatter(plotter.XYs{
			{X: selected.Complexity, Y: selected.RMSE},
		})
		if err != nil {
			return errors.Wrap(err, "building selection marker")
		}
		marker.GlyphStyle.Color = selectedColor
		marker.GlyphStyle.Shape = draw.PlusGlyph{}
		marker.GlyphStyle.Radius = vg.Points(6)
		p.Add(marker)
		p.Legend.Add("selected", marker)

		// Slope line through the selection, spanning the hull extremes.
		if slope, _, _, ok := pareto.HullLine(points); ok {
			startY := slope*(upperLeft.Complexity-selected.Complexity) + selected.RMSE
			endX := (lowerRight.RMSE-selected.RMSE)/slope + selected.Complexity
			slopeLine, err := plotter.NewLine(plotter.XYs{
				{X: upperLeft.Complexity, Y: startY},
				{X: endX, Y: lowerRight.RMSE},
			})
			if err != nil {
				return errors.Wrap(err, "building selection line")
			}
			slopeLine.LineStyle.Color = selectedColor
			p.Add(slopeLine)
		}
	}

	return errors.Wrap(p.Save(10*vg.Inch, 6*vg.Inch, path), "saving plot")
}

// Curve is one labeled series of a fit plot.
type Curve struct {
	Label string
	X     []float64
	Y     []float64
}

func (c Curve) xys() plotter.XYs {
	xys := make(plotter.XYs, len(c.X))
	for i := range c.X {
		xys[i] = plotter.XY{X: c.X[i], Y: c.Y[i]}
	}
	return xys
}

// Fit1D overlays the true function, the fitted model curves and the
// training points of both sampling strategies on one plot.
func Fit1D(title string, truth Curve, models []Curve, trainSets []Curve, xlabel, ylabel, path string) error {
	if len(truth.X) != len(truth.Y) {
		return errors.NewDimensionError("visualize.Fit1D", len(truth.X), len(truth.Y), 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	truthLine, err := plotter.NewLine(truth.xys())
	if err != nil {
		return errors.Wrap(err, "building truth line")
	}
	truthLine.LineStyle.Color = truthColor
	truthLine.LineStyle.Width = vg.Points(2)
	p.Add(truthLine)
	p.Legend.Add(truth.Label, truthLine)

	for i, m := range models {
		if len(m.X) != len(m.Y) {
			return errors.NewDimensionError("visualize.Fit1D", len(m.X), len(m.Y), 0)
		}
		line, err := plotter.NewLine(m.xys())
		if err != nil {
			return errors.Wrap(err, "building model curve")
		}
		line.LineStyle.Color = curvePalette[i%len(curvePalette)]
		p.Add(line)
		p.Legend.Add(m.Label, line)
	}

	for i, ts := range trainSets {
		if len(ts.X) != len(ts.Y) {
			return errors.NewDimensionError("visualize.Fit1D", len(ts.X), len(ts.Y), 0)
		}
		scatter, err := plotter.NewScatter(ts.xys())
		if err != nil {
			return errors.Wrap(err, "building train scatter")
		}
		scatter.GlyphStyle.Color = curvePalette[(i+len(models))%len(curvePalette)]
		scatter.GlyphStyle.Shape = draw.PyramidGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)
		p.Legend.Add(ts.Label, scatter)
	}

	return errors.Wrap(p.Save(8*vg.Inch, 5*vg.Inch, path), "saving plot")
}
