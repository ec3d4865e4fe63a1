// Package theme holds the color palettes and lipgloss styles used by svcman.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/svcman/tui/render"
)

const defaultThemeName = "kanagawa"

// palette is one light/dark pair of hex or ANSI colors per role.
type palette struct {
	green, yellow, red, orange, cyan, blue, violet, pink [2]string
	text, muted, border, selected, subtle                [2]string
}

// Palettes are {light, dark}.
var kanagawa = palette{
	green:    [2]string{"#4E7C5A", "#98BB6C"},
	yellow:   [2]string{"#A68A64", "#FF9E3B"},
	red:      [2]string{"#C34043", "#FF5D62"},
	orange:   [2]string{"#CC6B4E", "#FFA066"},
	cyan:     [2]string{"#5B8BBE", "#7E9CD8"},
	blue:     [2]string{"#4F7CAC", "#7FB4CA"},
	violet:   [2]string{"#674D7A", "#957FB8"},
	pink:     [2]string{"#B35C74", "#D27E99"},
	text:     [2]string{"#2B2F42", "#DCD7BA"},
	muted:    [2]string{"#6C7086", "#727169"},
	border:   [2]string{"#B5BDC5", "#363646"},
	selected: [2]string{"#E2E6F3", "#223249"},
	subtle:   [2]string{"#F7F7FB", "#1F1F28"},
}

var gruvbox = palette{
	green:    [2]string{"#98971A", "#B8BB26"},
	yellow:   [2]string{"#D79921", "#FABD2F"},
	red:      [2]string{"#CC241D", "#FB4934"},
	orange:   [2]string{"#D65D0E", "#FE8019"},
	cyan:     [2]string{"#458588", "#83A598"},
	blue:     [2]string{"#076678", "#458588"},
	violet:   [2]string{"#8F3F71", "#B16286"},
	pink:     [2]string{"#B57679", "#D3869B"},
	text:     [2]string{"#3C3836", "#EBDBB2"},
	muted:    [2]string{"#928374", "#BDAE93"},
	border:   [2]string{"#D5C4A1", "#504945"},
	selected: [2]string{"#F2E5BC", "#32302F"},
	subtle:   [2]string{"#FBF1C7", "#282828"},
}

// Colors is the resolved palette of a theme.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	Pink               lipgloss.TerminalColor
	Text               lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the styles shared by the TUI, the CLI and the log formatter.
type Theme struct {
	Name   string
	Colors Colors

	Header lipgloss.Style
	Title  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style

	// Unit list highlighting.
	Match         lipgloss.Style
	SelectedMatch lipgloss.Style
	SelectedRow   lipgloss.Style

	StatusBar lipgloss.Style
	Prompt    lipgloss.Style
	Cursor    lipgloss.Style
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
	"ansi":            "terminal",
}

// DefaultTheme is the active theme. SVCMAN_THEME selects it at startup and
// SetTheme replaces it once configuration is loaded.
var DefaultTheme = NewThemeWithName(os.Getenv("SVCMAN_THEME"))

// SetTheme makes the named theme active. SVCMAN_THEME still wins.
func SetTheme(name string) {
	if env := normalizeThemeName(os.Getenv("SVCMAN_THEME")); env != "" {
		name = env
	}
	DefaultTheme = NewThemeWithName(name)
}

// Names lists the selectable theme names.
func Names() []string {
	return []string{"kanagawa", "gruvbox", "terminal"}
}

// NewThemeWithName constructs a theme from a palette name. Unknown names
// fall back to kanagawa.
func NewThemeWithName(name string) *Theme {
	key := resolveName(name)
	return newThemeFromColors(colorsFor(key), key)
}

// RenderStatus renders text with the style named by status.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

// SpanStyles maps frame span styles to this theme.
func (t *Theme) SpanStyles() render.Styles {
	return render.Styles{
		render.StylePlain:         t.Normal,
		render.StyleMatch:         t.Match,
		render.StyleSelectedMatch: t.SelectedMatch,
		render.StyleSelected:      t.SelectedRow,
		render.StyleStatus:        t.StatusBar,
		render.StylePrompt:        t.Prompt,
		render.StyleMuted:         t.Muted,
		render.StyleCursor:        t.Cursor,
		render.StyleError:         t.Error,
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	t := &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().Bold(true).MarginTop(1).MarginBottom(1),
		Title:  lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),

		Success: lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colors.Red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colors.Cyan).Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Faint(true),
		Accent: lipgloss.NewStyle().Foreground(colors.Violet).Bold(true),

		StatusBar: lipgloss.NewStyle().Reverse(true),
		Prompt:    lipgloss.NewStyle().Foreground(colors.Violet).Bold(true),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}

	// Match colors are fixed so hits stay readable on every palette.
	t.Match = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#96DC82"))
	t.SelectedMatch = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3C961E"))
	t.SelectedRow = lipgloss.NewStyle().Background(lipgloss.Color("#3C371E"))

	if name == "terminal" {
		t.Match = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("10"))
		t.SelectedMatch = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
		t.SelectedRow = lipgloss.NewStyle().Background(colors.SelectedBackground)
	}
	return t
}

func colorsFor(name string) Colors {
	switch name {
	case "terminal":
		return Colors{
			Green:              lipgloss.Color("2"),
			Yellow:             lipgloss.Color("3"),
			Red:                lipgloss.Color("1"),
			Orange:             lipgloss.Color("208"),
			Cyan:               lipgloss.Color("6"),
			Blue:               lipgloss.Color("4"),
			Violet:             lipgloss.Color("5"),
			Pink:               lipgloss.Color("13"),
			Text:               lipgloss.Color("7"),
			MutedText:          lipgloss.Color("8"),
			Border:             lipgloss.Color("8"),
			SelectedBackground: lipgloss.Color("8"),
			SubtleBackground:   lipgloss.Color("0"),
		}
	case "gruvbox":
		return gruvbox.colors()
	default:
		return kanagawa.colors()
	}
}

func (p palette) colors() Colors {
	adaptive := func(pair [2]string) lipgloss.TerminalColor {
		return lipgloss.AdaptiveColor{Light: pair[0], Dark: pair[1]}
	}
	return Colors{
		Green:              adaptive(p.green),
		Yellow:             adaptive(p.yellow),
		Red:                adaptive(p.red),
		Orange:             adaptive(p.orange),
		Cyan:               adaptive(p.cyan),
		Blue:               adaptive(p.blue),
		Violet:             adaptive(p.violet),
		Pink:               adaptive(p.pink),
		Text:               adaptive(p.text),
		MutedText:          adaptive(p.muted),
		Border:             adaptive(p.border),
		SelectedBackground: adaptive(p.selected),
		SubtleBackground:   adaptive(p.subtle),
	}
}

func resolveName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	for _, known := range Names() {
		if key == known {
			return key
		}
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}
