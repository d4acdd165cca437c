package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoi/pkg/core/hanoi"
	"github.com/matzehuels/hanoi/pkg/core/render/ascii"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// diskColors cycles by disk size so neighbouring disks differ.
var diskColors = []lipgloss.Color{
	lipgloss.Color("167"),
	lipgloss.Color("215"),
	lipgloss.Color("220"),
	lipgloss.Color("35"),
	lipgloss.Color("36"),
	lipgloss.Color("75"),
	lipgloss.Color("141"),
}

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for rejected moves and failures.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)

	styleBase     = lipgloss.NewStyle().Foreground(colorGray)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(8)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
)

// =============================================================================
// Printer
// =============================================================================

// printer writes status lines, optionally styled.
type printer struct {
	w     io.Writer
	color bool
}

func (p printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// success prints a success message.
func (p printer) success(format string, args ...any) {
	fmt.Fprintln(p.w, p.style(StyleSuccess, fmt.Sprintf(format, args...)))
}

// failure prints an error message.
func (p printer) failure(format string, args ...any) {
	fmt.Fprintln(p.w, p.style(StyleError, fmt.Sprintf(format, args...)))
}

// prompt prints a prompt without a trailing newline.
func (p printer) prompt(text string) {
	fmt.Fprint(p.w, p.style(StyleTitle, text))
}

// keyValue prints a labeled value.
func (p printer) keyValue(key, value string) {
	fmt.Fprintln(p.w, p.style(styleKey, key)+" "+p.style(StyleValue, value))
}

// newline prints an empty line.
func (p printer) newline() {
	fmt.Fprintln(p.w)
}

// game renders the whole game as ASCII art.
func (p printer) game(g *hanoi.Game) error {
	return ascii.Render(p.w, g, p.renderOptions()...)
}

func (p printer) renderOptions() []ascii.RenderOption {
	if !p.color {
		return nil
	}
	return []ascii.RenderOption{
		ascii.WithDiskStyle(diskStyle),
		ascii.WithBaseStyle(func(row string) string { return styleBase.Render(row) }),
	}
}

func diskStyle(d hanoi.Disk, row string) string {
	c := diskColors[(int(d)-1)%len(diskColors)]
	return lipgloss.NewStyle().Foreground(c).Render(row)
}
