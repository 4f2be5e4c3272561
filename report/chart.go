package report

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/multi-byte-pixel/robo-hw/robot"
)

func barChart(title string, labels []string, values []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	items := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.BarData{Value: v})
	}
	bar.SetXAxis(labels).AddSeries("probability", items)
	return bar
}

func movementChart(title string, moves robot.MoveDistribution) *charts.Bar {
	distances := moves.Distances()
	labels := make([]string, len(distances))
	values := make([]float64, len(distances))
	for i, m := range distances {
		labels[i] = fmt.Sprintf("%d", m)
		values[i] = moves[m]
	}
	return barChart(title, labels, values)
}

func positionChart(title string, dist robot.PositionDistribution) *charts.Bar {
	labels := make([]string, len(dist))
	for pos := range dist {
		labels[pos] = fmt.Sprintf("%d", pos)
	}
	return barChart(title, labels, dist)
}

// RunPage builds the page for a single run: the input movement
// distribution next to the resulting final-position distribution.
func RunPage(moves robot.MoveDistribution, dist robot.PositionDistribution, caption string) *components.Page {
	page := components.NewPage()
	page.AddCharts(
		movementChart("Input Movement Distribution", moves),
		positionChart(fmt.Sprintf("Final Positions (%s)", caption), dist),
	)
	return page
}

// ComparePage builds the side-by-side page for the catalog: one
// movement/outcome chart pair per entry, in catalog order.
func ComparePage(entries []robot.CatalogEntry, results []robot.PositionDistribution, caption string) *components.Page {
	page := components.NewPage()
	for i, e := range entries {
		page.AddCharts(
			movementChart(fmt.Sprintf("Dist %d Input Distribution", i+1), e.Movement),
			positionChart(fmt.Sprintf("Dist %d Final Positions (%s)", i+1, caption), results[i]),
		)
	}
	return page
}

// WriteHTML renders the page to an HTML file at path.
func WriteHTML(page *components.Page, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	defer f.Close()
	if err := page.Render(io.MultiWriter(f)); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

// Serve renders the page under dir and serves that directory over HTTP
// until the listener fails. It blocks.
func Serve(page *components.Page, dir, addr string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("serve charts: %w", err)
	}
	if err := WriteHTML(page, filepath.Join(dir, "index.html")); err != nil {
		return err
	}
	log.Printf("serving charts at http://%s", addr)
	return http.ListenAndServe(addr, http.FileServer(http.Dir(dir)))
}
