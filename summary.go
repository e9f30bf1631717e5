package fa6latex

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/dasheen/fa6latex/metadata"
)

// PrintSummary renders per-style macro counts after a successful run.
// "Written" counts real glyph macros; the difference to "Total" is the
// number of pro-only stubs in a free-mode build.
func PrintSummary(w io.Writer, res *RunResult) {
	written := map[metadata.Style]int{}
	total := map[metadata.Style]int{}
	numWritten := 0
	for i := range res.Defs {
		d := &res.Defs[i]
		total[d.Style]++
		if !d.ProStub {
			written[d.Style]++
			numWritten++
		}
	}

	fmt.Fprintf(w, "==Macro stats==\n")
	fmt.Fprintf(w, "Generated %v macros for %v icons (%v mode):\n", len(res.Defs), res.Icons, res.Mode)
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Style", "Written/Total"})
	for _, style := range metadata.StylePriority {
		if total[style] == 0 {
			continue
		}
		tbl.Append([]string{string(style), fmt.Sprintf("%v/%v", written[style], total[style])})
	}
	tbl.Append([]string{"==TOTAL==", fmt.Sprintf("%v/%v", numWritten, len(res.Defs))})
	tbl.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})
	tbl.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tbl.SetCenterSeparator("|")
	tbl.Render()
}
