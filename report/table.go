// Package report renders position distributions as colored console
// tables and echarts bar-chart pages.
package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/multi-byte-pixel/robo-hw/robot"
)

// FprintDistribution writes a final-position probability table.
func FprintDistribution(w io.Writer, title string, dist robot.PositionDistribution) {
	fmt.Fprintln(w, aurora.White(title))
	for pos, p := range dist {
		fmt.Fprintf(w, "  %s %s\n",
			aurora.Blue(fmt.Sprintf("pos %d:", pos)),
			aurora.Green(fmt.Sprintf("%.4f", p)))
	}
}

// FprintCatalog writes the movement distributions and sensor models of
// every catalog entry.
func FprintCatalog(w io.Writer, entries []robot.CatalogEntry) {
	for i, e := range entries {
		fmt.Fprintf(w, "%s %s\n",
			aurora.White(fmt.Sprintf("dist %d:", i+1)),
			aurora.Cyan(e.Name))
		for _, m := range e.Movement.Distances() {
			fmt.Fprintf(w, "  %s %s\n",
				aurora.Blue(fmt.Sprintf("move %d:", m)),
				aurora.Green(fmt.Sprintf("%.2f", e.Movement[m])))
		}
		fmt.Fprintf(w, "  %s wall %.2f, window %.2f\n",
			aurora.Blue("sensor:"), e.Sensor.PCorrectWall, e.Sensor.PCorrectWindow)
	}
}
