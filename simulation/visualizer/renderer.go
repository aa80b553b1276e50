// Copyright 2025 rzaliznyak-math
// This file is part of the random simulation toolkit.
//
// The toolkit is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The toolkit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the toolkit. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/rzaliznyak-math/random/simulation/recorder"
)

// HTML references for the rendered pages.
const densityRef = "density"
const cdfRef = "cdf"
const convergenceRef = "convergence"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Random: Binomial Interval Estimator</title>
    <link rel="stylesheet" href="style.css">
    <script src="script.js"></script>
  </head>
  <body>
    <h1>Random: Binomial Interval Estimator</h1>
    <ul>
    <li> <h3> <a href="/` + densityRef + `"> Sample Density </a> </h3> </li>
    <li> <h3> <a href="/` + cdfRef + `"> Cumulative Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + convergenceRef + `"> Estimate Convergence </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertLineData converts curve points to chart points.
func convertLineData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newCurveChart creates a line chart with the common options of the site.
func newCurveChart(title string, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// renderDensity renders the sample density with one shaded panel per
// evaluated interval.
func renderDensity(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	title := fmt.Sprintf("Sample Density of Binomial(%d, %v)", view.trial.Visitors, view.trial.Rate)
	chart := newCurveChart(title, "kernel density estimate of the success counts")
	chart.AddSeries("Sample KDE", convertLineData(view.result.Density))
	if view.normalPDF != nil {
		chart.AddSeries("Normal Approximation", convertLineData(view.normalPDF))
	}
	for _, e := range view.estimates {
		chart.AddSeries(e.label, convertLineData(e.shaded),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.4}))
	}
	_ = chart.Render(w)
}

// renderCDF renders the empirical distribution against the normal reference.
func renderCDF(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	title := fmt.Sprintf("Cumulative Distribution of Binomial(%d, %v)", view.trial.Visitors, view.trial.Rate)
	chart := newCurveChart(title, "")
	chart.AddSeries("Empirical CDF", convertLineData(view.result.SampleECDF))
	if len(view.smoothedCDF) > 0 {
		chart.AddSeries("Smoothed CDF", convertLineData(view.smoothedCDF))
	}
	if view.normalCDF != nil {
		chart.AddSeries("Normal CDF", convertLineData(view.normalCDF))
	}
	_ = chart.Render(w)
}

// renderConvergence renders the running empirical estimates together with
// their analytical references.
func renderConvergence(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := newCurveChart("Estimate Convergence", "running empirical estimate by number of experiments")
	for _, e := range view.estimates {
		chart.AddSeries(e.label, convertLineData(e.convergence))
		if e.analytical != nil && len(e.convergence) > 0 {
			chart.AddSeries(e.label+" analytical", convertLineData(referenceLine(e.convergence, *e.analytical)))
		}
	}
	_ = chart.Render(w)
}

// referenceLine spans a constant value across the x range of a curve.
func referenceLine(curve [][2]float64, value float64) [][2]float64 {
	first := curve[0][0]
	last := curve[len(curve)-1][0]
	return [][2]float64{{first, value}, {last, value}}
}

// FireUpWeb derives the view model of a recorded run and visualizes it
// with a local web-server.
func FireUpWeb(result *recorder.ResultJSON, addr string) error {
	if err := setViewState(result); err != nil {
		return err
	}

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+densityRef, renderDensity)
	http.HandleFunc("/"+cdfRef, renderCDF)
	http.HandleFunc("/"+convergenceRef, renderConvergence)
	return http.ListenAndServe(":"+addr, nil)
}
