package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected                                      lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
	DeleteMark, SymOK, SymFail                    string
}

var themes = map[string]Theme{
	"classic": {
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		DeleteMark:  "✓", SymOK: "✔", SymFail: "✖",
	},
	"neon": {
		Name:        "neon",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Border:      lipgloss.ThickBorder(),
		BorderColor: lipgloss.Color("13"),
		DeleteMark:  "◼", SymOK: "✔", SymFail: "✖",
	},
	"mono": {
		Name:        "mono",
		Title:       lipgloss.NewStyle(),
		Muted:       lipgloss.NewStyle(),
		Accent:      lipgloss.NewStyle(),
		Success:     lipgloss.NewStyle(),
		Error:       lipgloss.NewStyle(),
		Pending:     lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle(),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		DeleteMark:  "x", SymOK: "ok", SymFail: "error:",
	},
}

var current = themes["classic"]

// ThemeNames lists the accepted theme names.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// SetTheme switches the palette. "mono" also drops ANSI colors entirely.
func SetTheme(name string) error {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	current = t
	if t.Name == "mono" {
		DisableColor()
	}
	return nil
}

// DisableColor forces plain output regardless of terminal detection.
func DisableColor() { lipgloss.SetColorProfile(termenv.Ascii) }

// Expose what renderers need
func Current() Theme { return current }
