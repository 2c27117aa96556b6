// Package printers renders tracker state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/glyph"
	"tableflip.dev/pace/pkg/task"
)

type PrettyPrint struct {
	ShowIndex bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Tasks prints the numbered task list, completed items struck through.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	p := color.New()
	d := color.New(color.Faint)
	for i, t := range tasks {
		if pp.ShowIndex {
			_, _ = d.Printf("%3d  ", i+1)
		}
		if t.Completed {
			_, _ = d.Printf("%s  %s\n", glyph.Completed, glyph.Strike(t.Description))
		} else {
			_, _ = p.Printf("%s  %s\n", glyph.Open, t.Description)
		}
	}
	fmt.Println("")
}

// Target prints the daily target line, or nothing when unset.
func (pp *PrettyPrint) Target(text string) {
	if text == "" {
		return
	}
	y := color.New(color.FgHiYellow)
	_, _ = y.Printf("%s  Today's target: %s\n\n", glyph.Target, text)
}

// Quote prints the motivational toast shown after a completion.
func (pp *PrettyPrint) Quote(text string) {
	if text == "" {
		return
	}
	i := color.New(color.Italic, color.FgHiCyan)
	_, _ = i.Printf("%s\n\n", text)
}

const barWidth = 20

// CompletionBar prints the month's completion as a proportional bar
// with a percentage, the terminal stand-in for the pie chart.
func (pp *PrettyPrint) CompletionBar(stats task.Stats) {
	if stats.Total == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no tasks this month\n\n")
		return
	}
	filled := stats.Completed * barWidth / stats.Total
	g := color.New(color.FgGreen)
	d := color.New(color.Faint)
	_, _ = g.Print(strings.Repeat("█", filled))
	_, _ = d.Print(strings.Repeat("░", barWidth-filled))
	_, _ = fmt.Printf("  %d/%d (%.1f%%)\n\n", stats.Completed, stats.Total, stats.Ratio()*100)
}

// Summary prints a month's combined statistics as a table.
func (pp *PrettyPrint) Summary(sum app.Summary) {
	pp.Title(sum.Month)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("tasks added", fmt.Sprintf("%d", sum.Stats.Total))
	tbl.AddRow("tasks completed", fmt.Sprintf("%d", sum.Stats.Completed))
	tbl.AddRow("completion rate", fmt.Sprintf("%.1f%%", sum.Ratio*100))
	tbl.AddRow("avg study hours", fmt.Sprintf("%.2f hrs/day", sum.AvgHours))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Averages prints the weekly line and, when active, the monthly line.
func (pp *PrettyPrint) Averages(weekly float64, monthly float64, monthlyActive bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("weekly avg", fmt.Sprintf("%.2f hrs/day", weekly))
	if monthlyActive {
		tbl.AddRow("monthly avg", fmt.Sprintf("%.2f hrs/day", monthly))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
