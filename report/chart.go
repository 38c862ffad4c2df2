package report

import (
	"github.com/scitune/scitune/pkg/errors"
	"github.com/scitune/scitune/search"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveConvergenceChart renders the winning partition's best-score-so-far
// trace as a line chart and writes it to path. The axes are fixed to the
// trace's domain: up to search.TraceCap iterations and accuracy in [0, 1.1].
func SaveConvergenceChart(path string, scores []float64) error {
	if len(scores) == 0 {
		return errors.NewValueError("report.SaveConvergenceChart", "empty convergence trace")
	}

	xys := make(plotter.XYs, len(scores))
	for i, s := range scores {
		xys[i] = plotter.XY{X: float64(i + 1), Y: s}
	}

	p := plot.New()
	p.Title.Text = "Convergence of best validation accuracy"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "accuracy"
	p.X.Min, p.X.Max = 0, float64(search.TraceCap)
	p.Y.Min, p.Y.Max = 0, 1.1

	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "report.SaveConvergenceChart")
	}
	line.Width = vg.Points(1.5)
	p.Add(line, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "report.SaveConvergenceChart")
	}
	return nil
}
