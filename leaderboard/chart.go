package leaderboard

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart renders the board as a PNG bar chart in rank order.
func WriteChart(w io.Writer, b Board) error {
	if len(b.Entries) == 0 {
		return ErrEmptyBoard
	}

	top := 1
	bars := make([]chart.Value, 0, len(b.Entries))
	for _, e := range b.Entries {
		bars = append(bars, chart.Value{Value: float64(e.Score), Label: e.Team})
		top = max(top, e.Score)
	}

	title := "Tournament Leaderboard"
	if b.Event != "" {
		title += " - " + b.Event
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  max(400, 120*len(bars)),
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth:   60,
		BarSpacing: 40,
		// a fixed range keeps an all-zero board renderable
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
