// Package progress reports link-check progress, one page at a time.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter is told about every checked page and the final tally.
type Reporter interface {
	Start(pages int)
	Page(n int, route string, broken int)
	Finish(pages, broken int)
}

// Silent discards progress.
type Silent struct{}

func (Silent) Start(int)             {}
func (Silent) Page(int, string, int) {}
func (Silent) Finish(int, int)       {}

// NewReporter returns a LogReporter under CI and a BarReporter otherwise,
// both writing to w.
func NewReporter(w io.Writer) Reporter {
	if w == nil {
		w = os.Stderr
	}
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LogReporter{Out: w}
	}
	return &BarReporter{Out: w}
}

// BarReporter draws a progress bar whose description tracks the page being
// checked and the broken links found so far.
type BarReporter struct {
	Out    io.Writer
	bar    *progressbar.ProgressBar
	broken int
}

func (r *BarReporter) Start(pages int) {
	r.broken = 0
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Checking pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Page(n int, route string, broken int) {
	if r.bar == nil {
		return
	}
	r.broken += broken
	desc := route
	if r.broken > 0 {
		desc = fmt.Sprintf("%s (%d broken)", route, r.broken)
	}
	r.bar.Describe(desc)
	_ = r.bar.Set(n)
}

func (r *BarReporter) Finish(pages, broken int) {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LogReporter writes one line per page that has broken links, plus a
// summary. Clean pages are not logged so CI output stays short.
type LogReporter struct {
	Out   io.Writer
	pages int
}

func (r *LogReporter) Start(pages int) {
	r.pages = pages
	fmt.Fprintf(r.Out, "Checking %d pages\n", pages)
}

func (r *LogReporter) Page(n int, route string, broken int) {
	if broken > 0 {
		fmt.Fprintf(r.Out, "[%d/%d] %s: %d broken links\n", n, r.pages, route, broken)
	}
}

func (r *LogReporter) Finish(pages, broken int) {
	if broken == 0 {
		fmt.Fprintf(r.Out, "Checked %d pages, no broken links\n", pages)
		return
	}
	fmt.Fprintf(r.Out, "Checked %d pages, %d broken links\n", pages, broken)
}
