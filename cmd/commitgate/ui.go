package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vitkovskyi/commitgate/internal/core"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

// summaryTable prints one row per verdict.
func summaryTable(out io.Writer, verdicts []core.Verdict) {
	table := tablewriter.NewTable(out,
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
	table.Header([]string{"UNIT", "DECISION", "SCORE", "CRITICAL", "SOURCE"})

	for _, v := range verdicts {
		unit := strings.Join(v.Paths, ", ")
		critical := "no"
		if v.Critical {
			critical = "YES"
		}
		_ = table.Append([]string{unit, string(v.Decision), strconv.Itoa(v.Score), critical, string(v.Source)})
	}
	_ = table.Render()
}
