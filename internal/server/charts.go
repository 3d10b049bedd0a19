package server

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Interactive chart pages for the two curve-shaped views, rendered
// server-side so the dashboard can embed them directly.

func (s *Server) handleCurveChart(w http.ResponseWriter, r *http.Request) {
	abilityID, ok := s.abilityID(w, r)
	if !ok {
		return
	}
	view, err := s.stats.CurveView(r.Context(), abilityID, s.patch(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s — pick and win rate by draft position", view.Slot.AbilityName),
			Subtitle: "patch " + s.patch(r),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	xLabels := make([]string, len(view.Points))
	pickRate := make([]opts.LineData, len(view.Points))
	winRate := make([]opts.LineData, len(view.Points))
	cumWinRate := make([]opts.LineData, len(view.Points))
	for i, p := range view.Points {
		xLabels[i] = fmt.Sprintf("%d", p.Pick)
		pickRate[i] = opts.LineData{Value: p.PickRate}
		winRate[i] = opts.LineData{Value: p.Winrate}
		cumWinRate[i] = opts.LineData{Value: p.CumulativeWinrate}
	}

	line.SetXAxis(xLabels).
		AddSeries("Pick Rate", pickRate).
		AddSeries("Win Rate", winRate).
		AddSeries("Cumulative Win Rate", cumWinRate).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	s.renderChart(w, func(wr http.ResponseWriter) error { return line.Render(wr) })
}

func (s *Server) handleDistributionChart(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.DistributionView(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Rating distribution",
			Subtitle: fmt.Sprintf("%d players, median %.0f, mean %.1f",
				summary.TotalPlayers, summary.Median, summary.Mean),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	xLabels := make([]string, len(summary.Points))
	counts := make([]opts.LineData, len(summary.Points))
	percentiles := make([]opts.LineData, len(summary.Points))
	for i, p := range summary.Points {
		xLabels[i] = fmt.Sprintf("%.0f", p.Rating)
		counts[i] = opts.LineData{Value: p.Count}
		percentiles[i] = opts.LineData{Value: p.Percentile}
	}

	line.SetXAxis(xLabels).
		AddSeries("Players", counts).
		AddSeries("Percentile", percentiles).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	s.renderChart(w, func(wr http.ResponseWriter) error { return line.Render(wr) })
}

func (s *Server) renderChart(w http.ResponseWriter, render func(http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(w); err != nil {
		s.logger.Error().Err(err).Msg("failed to render chart")
	}
}
