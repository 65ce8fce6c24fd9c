package main

import (
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter <file>...",
	Short: "Show which files pass the complexity gate",
	Long: `Score each file's content with the complexity heuristic and report
whether it would be reviewed or skipped. Useful for tuning the threshold.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFilter,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(filterCmd)
}

func runFilter(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.cleanup()

	for _, path := range args {
		content, err := a.changes.FileContent(path)
		if err != nil {
			warnColor.Printf("[WARN] %s: %v\n", path, err)
			continue
		}
		score := a.scorer.Score(content)
		if score >= a.scorer.Threshold() {
			successColor.Printf("[REVIEW] %s (complexity: %d)\n", path, score)
		} else {
			dimColor.Printf("[SKIP] %s (complexity: %d)\n", path, score)
		}
	}
	return nil
}
