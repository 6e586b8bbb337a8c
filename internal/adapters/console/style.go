package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/uw/internal/core/domain"
	"golang.org/x/term"
)

// Status colours.
var (
	Green   = lipgloss.Color("#22A06B")
	Red     = lipgloss.Color("#D93025")
	Yellow  = lipgloss.Color("#F59E0B")
	Blue    = lipgloss.Color("#3B82F6")
	Magenta = lipgloss.Color("#C026D3")
)

// Status glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "⚠"
	Info    = "ℹ"
	Skip    = "⊘"
)

// Rule separates the header and the summary from the status lines.
const Rule = "=============================================="

// styles holds the glyph style per severity for one renderer.
type styles map[domain.Severity]lipgloss.Style

func newStyles(re *lipgloss.Renderer) styles {
	out := make(styles)
	for _, sev := range []domain.Severity{
		domain.SeverityInfo, domain.SeveritySuccess, domain.SeverityWarning,
		domain.SeverityError, domain.SeveritySkipped,
	} {
		_, color := glyph(sev)
		style := re.NewStyle().Foreground(color)
		if sev == domain.SeverityError {
			style = style.Bold(true)
		}
		out[sev] = style
	}
	return out
}

// render returns the coloured glyph for s.
func (st styles) render(s domain.Severity) string {
	symbol, _ := glyph(s)
	style, ok := st[s]
	if !ok {
		style = st[domain.SeverityInfo]
	}
	return style.Render(symbol)
}

func glyph(s domain.Severity) (string, lipgloss.Color) {
	switch s {
	case domain.SeveritySuccess:
		return Check, Green
	case domain.SeverityError:
		return Cross, Red
	case domain.SeverityWarning:
		return Warning, Yellow
	case domain.SeveritySkipped:
		return Skip, Magenta
	default:
		return Info, Blue
	}
}

// ColorProfile returns the colour profile for stdout. NO_COLOR disables
// colour. CI logs get plain ANSI colours even though stdout is not a terminal.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if isCI() && !term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
