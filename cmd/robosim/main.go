package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"

	"github.com/multi-byte-pixel/robo-hw/report"
	"github.com/multi-byte-pixel/robo-hw/robot"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "robosim",
		Short: "Simulate a robot walking a bounded line with noisy sensing",
		Long: `robosim models a robot on positions 0..3 that samples a movement
distance each time step, clamped at the right boundary, and takes a
noisy reading of the window/wall label where it lands.

It reports the distribution over final positions either empirically
(Monte Carlo trials) or exactly (transition-matrix iteration), prints
it as a table, and renders bar charts to an HTML page.`,
		RunE: runRoot,
	}

	cmd.Flags().Int("steps", 5, "Number of time steps")
	cmd.Flags().Int("trials", 20000, "Number of simulation trials")
	cmd.Flags().Int64("seed", 1, "Random source seed")
	cmd.Flags().String("save", "", "Write charts to this HTML file instead of serving them")
	cmd.Flags().Bool("compare", false, "Run every catalog entry side by side")
	cmd.Flags().Bool("exact", false, "Compute the exact posterior instead of sampling")
	cmd.Flags().String("catalog", "", "YAML file overriding the built-in distribution catalog")
	cmd.Flags().String("listen", "localhost:8089", "Address the chart server binds to")

	cmd.AddCommand(
		newCatalogCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "robosim version %s\n", version)
		},
	}
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the movement distribution catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			entries, err := loadEntries(path)
			if err != nil {
				return err
			}
			report.FprintCatalog(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().String("file", "", "YAML file overriding the built-in distribution catalog")
	return cmd
}

func loadEntries(path string) ([]robot.CatalogEntry, error) {
	if path == "" {
		return robot.DefaultCatalog(), nil
	}
	return robot.LoadCatalog(path)
}

func runRoot(cmd *cobra.Command, args []string) error {
	steps, _ := cmd.Flags().GetInt("steps")
	trials, _ := cmd.Flags().GetInt("trials")
	seed, _ := cmd.Flags().GetInt64("seed")
	save, _ := cmd.Flags().GetString("save")
	compare, _ := cmd.Flags().GetBool("compare")
	exact, _ := cmd.Flags().GetBool("exact")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	listen, _ := cmd.Flags().GetString("listen")

	src := robot.NewSource(seed)
	caption := fmt.Sprintf("empirical, %d trials", trials)
	if exact {
		caption = "exact"
	}

	if compare {
		entries, err := loadEntries(catalogPath)
		if err != nil {
			return err
		}
		results := make([]robot.PositionDistribution, len(entries))
		for i, e := range entries {
			dist, err := finalDistribution(e.Movement, e.Sensor, steps, trials, exact, src)
			if err != nil {
				return err
			}
			results[i] = dist
			report.FprintDistribution(cmd.OutOrStdout(),
				fmt.Sprintf("dist %d (%s), final position probabilities after %d steps:", i+1, e.Name, steps), dist)
		}
		return render(cmd, report.ComparePage(entries, results, caption), save, listen)
	}

	dist, err := finalDistribution(robot.DefaultMoves, robot.PerfectSensor(), steps, trials, exact, src)
	if err != nil {
		return err
	}
	report.FprintDistribution(cmd.OutOrStdout(),
		fmt.Sprintf("Final position probabilities after %d steps (%s):", steps, caption), dist)
	return render(cmd, report.RunPage(robot.DefaultMoves, dist, caption), save, listen)
}

func finalDistribution(moves robot.MoveDistribution, sensor robot.SensorModel, steps, trials int, exact bool, src robot.Source) (robot.PositionDistribution, error) {
	if exact {
		return robot.ExactPosterior(robot.DefaultMaxPos, moves, steps)
	}
	sim := robot.NewSimulator(robot.DefaultMaxPos, moves, sensor, src)
	return sim.Estimate(steps, trials)
}

func render(cmd *cobra.Command, page *components.Page, save, listen string) error {
	if save != "" {
		if err := report.WriteHTML(page, save); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved charts to %s\n", save)
		return nil
	}
	return report.Serve(page, "charts", listen)
}
