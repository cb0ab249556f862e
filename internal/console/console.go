// Package console renders styled status output for the CLI. Report files
// never go through this package; their content stays plain and deterministic.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	maxRuleWidth  = 100
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Faint(true)

	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnMark = color.New(color.FgYellow).Sprint("!")
)

// Printer writes section headers and status lines sized to the terminal.
type Printer struct {
	out   io.Writer
	width int
}

// New returns a printer for out. When out is a terminal its width is used
// for rules, clamped to a readable maximum; otherwise 80 columns.
func New(out io.Writer) *Printer {
	width := fallbackWidth
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	if width > maxRuleWidth {
		width = maxRuleWidth
	}
	return &Printer{out: out, width: width}
}

func (p *Printer) rule() string {
	return ruleStyle.Render(strings.Repeat("=", p.width))
}

// Header prints a bold title block with an optional subtitle.
func (p *Printer) Header(title, subtitle string) {
	fmt.Fprintln(p.out, "")
	fmt.Fprintln(p.out, p.rule())
	fmt.Fprintln(p.out, headerStyle.Render("  "+title))
	if subtitle != "" {
		fmt.Fprintln(p.out, "  "+subtitle)
	}
	fmt.Fprintln(p.out, p.rule())
}

// Section prints a section separator with a bold title.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.out, "")
	fmt.Fprintln(p.out, headerStyle.Render(title))
	fmt.Fprintln(p.out, ruleStyle.Render(strings.Repeat("-", p.width)))
}

// Infof prints a plain status line.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Successf prints a green check status line.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", okMark, fmt.Sprintf(format, args...))
}

// Warnf prints a yellow warning status line.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", warnMark, fmt.Sprintf(format, args...))
}

// Failf prints a red failure status line.
func (p *Printer) Failf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", failMark, fmt.Sprintf(format, args...))
}
