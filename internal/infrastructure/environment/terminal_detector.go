// Package environment detects host signals such as the terminal background.
package environment

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// TerminalDetector reports the terminal's background as the system theme.
type TerminalDetector struct {
	out      *os.File
	isTTY    func(fd int) bool
	darkBack func() bool
}

// NewTerminalDetector inspects the terminal attached to out. A nil out uses stdout.
func NewTerminalDetector(out *os.File) *TerminalDetector {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalDetector{
		out:      out,
		isTTY:    term.IsTerminal,
		darkBack: lipgloss.HasDarkBackground,
	}
}

// SystemTheme returns ok=false when out is not a terminal, since the
// background cannot be queried.
func (p *TerminalDetector) SystemTheme(ctx context.Context) (dark bool, ok bool) {
	if ctx.Err() != nil {
		return false, false
	}
	if !p.isTTY(int(p.out.Fd())) {
		return false, false
	}
	return p.darkBack(), true
}

// StaticDetector always reports a fixed signal.
type StaticDetector struct {
	Dark      bool
	Available bool
}

func (p StaticDetector) SystemTheme(context.Context) (bool, bool) {
	return p.Dark, p.Available
}
