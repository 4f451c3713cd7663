package monitoring

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"arctic-room/internal/core"
)

// rewriteLine moves the cursor up one line and clears it.
const rewriteLine = "\033[F\033[K"

var (
	labelStyle   = color.Style{color.FgCyan, color.OpBold}
	counterStyle = color.Style{color.FgWhite}
	timeStyle    = color.Style{color.FgGray}
	fitnessStyle = color.Style{color.FgGreen, color.OpBold}
)

// Progress prints a single console line that is rewritten on every update.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	watch   *core.Stopwatch
	printed bool
}

// NewProgress returns a progress line for total iterations. A nil watch
// starts a new stopwatch.
func NewProgress(w io.Writer, label string, total int, watch *core.Stopwatch) *Progress {
	if watch == nil {
		watch = core.NewStopwatch()
	}
	return &Progress{w: w, label: label, total: total, watch: watch}
}

// Update prints iteration i, replacing the previous progress line.
func (p *Progress) Update(i int) {
	prefix := ""
	if p.printed {
		prefix = rewriteLine
	}
	p.printed = true
	fmt.Fprintf(p.w, "%s%s\t| %s %s\n",
		prefix,
		labelStyle.Sprint(p.label),
		counterStyle.Sprintf("%d/%d (%s%%)", i, p.total, formatPercent(i, p.total)),
		timeStyle.Sprint(p.watch.String()),
	)
}

// Summary prints a labelled line below the progress line.
func (p *Progress) Summary(label, text string) {
	fmt.Fprintf(p.w, "%s\t| %s\n", fitnessStyle.Sprint(label), text)
	p.printed = false
}

// Elapsed reports the stopwatch reading.
func (p *Progress) Elapsed() string { return p.watch.String() }

func formatPercent(i, total int) string {
	return fmt.Sprintf("%.2f", 100*float64(i)/float64(max(total, 1)))
}
