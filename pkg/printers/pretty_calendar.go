package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/dates"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month grid with event days highlighted, followed
// by the event lines.
func (pp *PrettyPrint) Calendar(month time.Time, events []app.Event) {
	days := dates.DaysIn(month)

	count := make([]int, days)
	for _, e := range events {
		if dates.SameMonth(e.Day, month) {
			count[e.Day.Day()-1]++
		}
	}

	pp.printMonthCount(month, count)

	p := color.New()
	d := color.New(color.Faint)
	for _, e := range events {
		_, _ = d.Printf("%2d  ", e.Day.Day())
		_, _ = p.Printf("%s %s\n", e.Bullet, e.Text)
	}
	if len(events) > 0 {
		fmt.Println("")
	}
}

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := dates.StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := dates.DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}
