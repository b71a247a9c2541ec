package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleChanged for permutation positions touched by the last transition.
	StyleChanged = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

var styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled status lines to one writer. Styles are bound to a
// renderer for that writer, so output redirected to a file or a buffer
// carries no escape codes.
type printer struct {
	w io.Writer

	success, failure, warning, info lipgloss.Style
	key, number, dim, value         lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		success: r.NewStyle().Foreground(colorGreen),
		failure: r.NewStyle().Foreground(colorRed),
		warning: r.NewStyle().Foreground(colorYellow),
		info:    r.NewStyle().Foreground(colorGray),
		key:     r.NewStyle().Foreground(colorGray),
		number:  r.NewStyle().Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		value:   r.NewStyle().Foreground(colorWhite),
	}
}

// =============================================================================
// Status Output
// =============================================================================

// Success prints a success message.
func (p *printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.success.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (p *printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, p.failure.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (p *printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.w, p.warning.Render(iconWarning)+" "+p.warning.Render(fmt.Sprintf(format, args...)))
}

// Info prints an info/status message.
func (p *printer) Info(format string, args ...any) {
	fmt.Fprintln(p.w, p.info.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// Detail prints a detail line (indented).
func (p *printer) Detail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+p.dim.Render(fmt.Sprintf(format, args...)))
}

// File prints a file output line.
func (p *printer) File(path string) {
	fmt.Fprintln(p.w, "  "+p.dim.Render(iconArrow)+" "+p.value.Render(path))
}

// =============================================================================
// Summary Output
// =============================================================================

// Count prints the run summary, "Number of permutations: N".
func (p *printer) Count(n int) {
	p.KeyValue("Number of permutations", p.number.Render(strconv.Itoa(n)))
}

// KeyValue prints "key: value".
func (p *printer) KeyValue(key, value string) {
	fmt.Fprintln(p.w, p.key.Render(key+":")+" "+value)
}

// Unrecognized prints the warning for an option the generator ignores.
func (p *printer) Unrecognized(arg string) {
	fmt.Fprintln(p.w, p.warning.Render("Warning:")+" unrecognized command-line option "+arg)
}
