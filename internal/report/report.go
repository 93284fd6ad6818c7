package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"os-scheduling/internal/responses"
)

var (
	titleColor = color.New(color.Bold, color.FgCyan)
	labelColor = color.New(color.Faint)
)

// Write renders a schedule as a title, a gantt line, the per-process table
// and the two average lines. Averages are rounded to 2 decimals here only.
func Write(w io.Writer, title string, response responses.ScheduleResponse) {
	writeTitle(w, title)
	if response.TimeQuantum > 0 {
		labelColor.Fprintf(w, "Time quantum = %d\n", response.TimeQuantum)
	}
	writeGantt(w, response.Timeline)
	writeTable(w, response.Details)
	writeSummary(w, response)
}

func writeTitle(w io.Writer, title string) {
	rule := strings.Repeat("-", len(title)*2)
	fmt.Fprintln(w, rule)
	titleColor.Fprintln(w, strings.Repeat(" ", len(title)/2)+title)
	fmt.Fprintln(w, rule)
}

func writeGantt(w io.Writer, timeline []responses.SliceResponse) {
	if len(timeline) == 0 {
		return
	}

	fmt.Fprintln(w, "Gantt schedule")
	var bars, ticks strings.Builder
	bars.WriteString("|")
	for _, s := range timeline {
		pid := strconv.Itoa(s.ProcessId)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		bars.WriteString(padding + pid + padding + "|")

		start := strconv.Itoa(s.Start)
		ticks.WriteString(start + strings.Repeat(" ", max(1, len(padding)*2+len(pid)+1-len(start))))
	}
	ticks.WriteString(strconv.Itoa(timeline[len(timeline)-1].Stop))

	fmt.Fprintln(w, bars.String())
	fmt.Fprintln(w, ticks.String())
	fmt.Fprintln(w)
}

func writeTable(w io.Writer, details []responses.ProcessResponse) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "Burst time", "Waiting time", "Turn around time"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	rows := make([][]string, len(details))
	for i, d := range details {
		rows[i] = []string{
			strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
		}
	}
	table.AppendBulk(rows)
	table.Render()
}

func writeSummary(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintf(w, "Average waiting time = %.2f\n", response.AverageWaitingTime)
	fmt.Fprintf(w, "Average turn around time = %.2f\n", response.AverageTurnAroundTime)
	labelColor.Fprintf(w, "Total time = %d, context switches = %d\n", response.TotalTime, response.ContextSwitches)
}
