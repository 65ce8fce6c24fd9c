package main

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past review runs",
	RunE:  runHistory,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.cleanup()

	runs, err := a.store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		dimColor.Println("no recorded runs")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header([]string{"RUN", "MODE", "FILES", "REJECTED", "EXIT", "WHEN"})
	for _, r := range runs {
		_ = table.Append([]string{
			r.ID,
			r.Mode,
			strconv.Itoa(r.Files),
			strconv.Itoa(r.Rejected),
			strconv.Itoa(r.ExitCode),
			r.CreatedAt.Format(time.RFC3339),
		})
	}
	return table.Render()
}
