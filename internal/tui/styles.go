package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/animo/internal/theme"
	"github.com/jmylchreest/animo/internal/widget"
)

// Fixed colors that do not follow the applied scheme.
const (
	colorMuted   = lipgloss.Color("8")
	colorSuccess = lipgloss.Color("10")
	colorError   = lipgloss.Color("9")
)

// styles are rebuilt from the palette on every render.
type styles struct {
	title         lipgloss.Style
	card          lipgloss.Style
	phrase        lipgloss.Style
	hint          lipgloss.Style
	button        lipgloss.Style
	buttonFocused lipgloss.Style
	counter       lipgloss.Style
	label         lipgloss.Style
	input         lipgloss.Style
	inputFocused  lipgloss.Style
	status        lipgloss.Style
	statusErr     lipgloss.Style
}

func newStyles(p theme.Palette, width int) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Background(p.Shadow).
			Padding(1, 2).
			Width(width).
			Align(lipgloss.Center),
		phrase: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.PrimaryDark).
			Background(p.Shadow),
		hint: lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted).
			Background(p.Shadow),
		button: lipgloss.NewStyle().
			Padding(0, 3).
			Foreground(p.OnPrimary).
			Background(p.Primary),
		buttonFocused: lipgloss.NewStyle().
			Padding(0, 3).
			Bold(true).
			Underline(true).
			Foreground(p.OnPrimary).
			Background(p.PrimaryDark),
		counter: lipgloss.NewStyle().
			Foreground(p.Primary).
			MarginTop(1),
		label: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Width(width),
		inputFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Focus).
			Width(width),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		statusErr: lipgloss.NewStyle().
			Foreground(colorError),
	}
}

// feedbackStyle colors a feedback message by its state.
func feedbackStyle(state string) lipgloss.Style {
	style := lipgloss.NewStyle().MarginTop(1)
	switch widget.FeedbackState(state) {
	case widget.StateSuccess:
		return style.Foreground(colorSuccess)
	case widget.StateError:
		return style.Foreground(colorError).Bold(true)
	default:
		return style.Foreground(colorMuted)
	}
}

// renderBand renders a one-row strip of the background gradient.
func renderBand(p theme.Palette, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range p.BandColors(width) {
		sb.WriteString(lipgloss.NewStyle().Background(c).Render(" "))
	}
	return sb.String()
}
