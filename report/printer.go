package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled probe output
type Printer struct {
	options PrinterOptions
}

type PrinterOptions struct {
	Width  int
	Writer io.Writer
	// Plain disables styling, used when the output is not a terminal
	Plain bool
}

func DefaultPrinterOptions() PrinterOptions {
	return PrinterOptions{
		Width:  100,
		Writer: os.Stdout,
	}
}

func NewPrinter(options PrinterOptions) *Printer {
	return &Printer{options}
}

func (p *Printer) Heading(d string) {
	var style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		PaddingTop(1).
		PaddingLeft(0).
		Width(p.options.Width)

	p.Print(fmt.Sprintf("HOST: '%s'", d), style)
}

func (p *Printer) Action(action, status string, ok bool) {
	color := lipgloss.Color("#B9E3CE")
	if !ok {
		color = lipgloss.Color("#EC1C24")
	}

	var style = lipgloss.NewStyle().
		Foreground(color).
		PaddingTop(0).
		PaddingLeft(2).
		Width(p.options.Width)

	p.Print(fmt.Sprintf("%-45s %s", action, status), style)
}

func (p *Printer) Line(d string) {
	var style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		PaddingTop(0).
		PaddingLeft(2).
		Width(p.options.Width)

	p.Print(d, style)
}

func (p *Printer) Error(d string) {
	var style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EC1C24")).
		PaddingTop(1).
		PaddingLeft(0).
		Width(p.options.Width)

	p.Print(d, style)
}

func (p *Printer) Print(s string, style lipgloss.Style) {
	if p.options.Plain {
		fmt.Fprintf(p.options.Writer, "%s\n", s)
		return
	}

	fmt.Fprintf(p.options.Writer, "%s\n", style.Render(s))
}
