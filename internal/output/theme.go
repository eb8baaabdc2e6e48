// Package output provides terminal presentation for the Serenium CLI:
// color themes, the run logger, banners, the progress bar, and the
// created-file tree.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	serrors "github.com/serenium/cli/internal/errors"
)

// ThemeName identifies one of the built-in color themes.
type ThemeName string

// Built-in themes.
const (
	ThemeSerenium   ThemeName = "serenium"
	ThemeCyberpunk  ThemeName = "cyberpunk"
	ThemeOcean      ThemeName = "ocean"
	ThemeForest     ThemeName = "forest"
	ThemeSunset     ThemeName = "sunset"
	ThemeMonochrome ThemeName = "monochrome"
	ThemeNeon       ThemeName = "neon"
	ThemeMatrix     ThemeName = "matrix"
)

// DefaultTheme is used when no theme is selected.
const DefaultTheme = ThemeSerenium

// ANSI 16-color palette shared by the theme tables.
var (
	colorRed           = lipgloss.Color("1")
	colorGreen         = lipgloss.Color("2")
	colorYellow        = lipgloss.Color("3")
	colorBlue          = lipgloss.Color("4")
	colorMagenta       = lipgloss.Color("5")
	colorCyan          = lipgloss.Color("6")
	colorWhite         = lipgloss.Color("7")
	colorBrightBlack   = lipgloss.Color("8")
	colorBrightRed     = lipgloss.Color("9")
	colorBrightGreen   = lipgloss.Color("10")
	colorBrightYellow  = lipgloss.Color("11")
	colorBrightBlue    = lipgloss.Color("12")
	colorBrightMagenta = lipgloss.Color("13")
	colorBrightCyan    = lipgloss.Color("14")
	colorBrightWhite   = lipgloss.Color("15")
)

// styleTable maps semantic roles to styles. One immutable table per theme,
// resolved once at startup.
type styleTable struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Info      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Border    lipgloss.Style
	Icon      lipgloss.Style
}

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

func boldFg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

var themeTables = map[ThemeName]styleTable{
	ThemeSerenium: {
		Primary:   fg(colorCyan),
		Secondary: fg(colorBlue),
		Accent:    fg(colorGreen),
		Warning:   fg(colorYellow),
		Error:     fg(colorRed),
		Success:   fg(colorBrightGreen),
		Info:      fg(colorBrightBlue),
		Muted:     fg(colorBrightBlack),
		Highlight: fg(colorBrightCyan),
		Title:     boldFg(colorCyan),
		Prompt:    boldFg(colorBlue),
		Border:    fg(colorBrightBlack),
		Icon:      fg(colorGreen),
	},
	ThemeCyberpunk: {
		Primary:   fg(colorMagenta),
		Secondary: fg(colorBrightMagenta),
		Accent:    fg(colorCyan),
		Warning:   fg(colorYellow),
		Error:     fg(colorBrightRed),
		Success:   fg(colorBrightGreen),
		Info:      fg(colorBrightCyan),
		Muted:     fg(colorBrightBlack),
		Highlight: fg(colorBrightMagenta),
		Title:     boldFg(colorMagenta),
		Prompt:    boldFg(colorCyan),
		Border:    fg(colorMagenta),
		Icon:      fg(colorCyan),
	},
	ThemeOcean: {
		Primary:   fg(colorBlue),
		Secondary: fg(colorCyan),
		Accent:    fg(colorBrightBlue),
		Warning:   fg(colorYellow),
		Error:     fg(colorRed),
		Success:   fg(colorBrightGreen),
		Info:      fg(colorBrightCyan),
		Muted:     fg(colorBrightBlack),
		Highlight: fg(colorBrightBlue),
		Title:     boldFg(colorBlue),
		Prompt:    boldFg(colorCyan),
		Border:    fg(colorBlue),
		Icon:      fg(colorCyan),
	},
	ThemeForest: {
		Primary:   fg(colorGreen),
		Secondary: fg(colorBrightGreen),
		Accent:    fg(colorYellow),
		Warning:   fg(colorYellow),
		Error:     fg(colorRed),
		Success:   fg(colorBrightGreen),
		Info:      fg(colorCyan),
		Muted:     fg(colorBrightBlack),
		Highlight: fg(colorBrightGreen),
		Title:     boldFg(colorGreen),
		Prompt:    boldFg(colorBrightGreen),
		Border:    fg(colorGreen),
		Icon:      fg(colorBrightGreen),
	},
	ThemeSunset: {
		Primary:   fg(colorYellow),
		Secondary: fg(colorRed),
		Accent:    fg(colorMagenta),
		Warning:   fg(colorYellow),
		Error:     fg(colorBrightRed),
		Success:   fg(colorBrightGreen),
		Info:      fg(colorBrightBlue),
		Muted:     fg(colorBrightBlack),
		Highlight: fg(colorBrightYellow),
		Title:     boldFg(colorYellow),
		Prompt:    boldFg(colorRed),
		Border:    fg(colorYellow),
		Icon:      fg(colorMagenta),
	},
	ThemeMonochrome: {
		Primary:   fg(colorWhite),
		Secondary: fg(colorBrightWhite),
		Accent:    lipgloss.NewStyle().Bold(true),
		Warning:   fg(colorYellow),
		Error:     fg(colorRed),
		Success:   fg(colorGreen),
		Info:      fg(colorBlue),
		Muted:     fg(colorBrightBlack),
		Highlight: boldFg(colorWhite),
		Title:     boldFg(colorWhite),
		Prompt:    boldFg(colorBrightWhite),
		Border:    fg(colorBrightBlack),
		Icon:      fg(colorWhite),
	},
	ThemeNeon: {
		Primary:   fg(colorBrightMagenta),
		Secondary: fg(colorBrightCyan),
		Accent:    fg(colorBrightYellow),
		Warning:   fg(colorBrightYellow),
		Error:     fg(colorBrightRed),
		Success:   fg(colorBrightGreen),
		Info:      fg(colorBrightBlue),
		Muted:     fg(colorBrightBlack),
		Highlight: fg(colorBrightMagenta),
		Title:     boldFg(colorBrightMagenta),
		Prompt:    boldFg(colorBrightCyan),
		Border:    fg(colorBrightMagenta),
		Icon:      fg(colorBrightCyan),
	},
	ThemeMatrix: {
		Primary:   fg(colorGreen),
		Secondary: fg(colorBrightGreen),
		Accent:    fg(colorGreen),
		Warning:   fg(colorYellow),
		Error:     fg(colorRed),
		Success:   fg(colorBrightGreen),
		Info:      fg(colorCyan),
		Muted:     fg(colorBrightBlack),
		Highlight: fg(colorBrightGreen),
		Title:     boldFg(colorGreen),
		Prompt:    boldFg(colorBrightGreen),
		Border:    fg(colorGreen),
		Icon:      fg(colorBrightGreen),
	},
}

// ThemeNames returns all theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themeTables))
	for name := range themeTables {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// ResolveTheme parses a theme name string.
func ResolveTheme(name string) (ThemeName, error) {
	t := ThemeName(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := themeTables[t]; !ok {
		return "", serrors.NewValidationError("theme",
			fmt.Sprintf("unknown theme %q; valid themes: %s", name, strings.Join(ThemeNames(), ", ")))
	}
	return t, nil
}

// Theme renders user-facing text in one of the built-in color schemes.
// Styling is disabled when NO_COLOR is set or stdout is not a terminal.
type Theme struct {
	Name  ThemeName
	table styleTable
	plain bool
}

// NewTheme creates a theme, auto-detecting whether color output is usable.
func NewTheme(name ThemeName) *Theme {
	return &Theme{
		Name:  name,
		table: themeTables[name],
		plain: os.Getenv("NO_COLOR") != "" || !IsTTY(),
	}
}

// NewPlainTheme creates a theme with styling forced off.
func NewPlainTheme(name ThemeName) *Theme {
	return &Theme{Name: name, table: themeTables[name], plain: true}
}

func (t *Theme) render(s lipgloss.Style, text string) string {
	if t.plain {
		return text
	}
	return s.Render(text)
}

// Success formats a success message.
func (t *Theme) Success(text string) string { return t.render(t.table.Success, "✅ "+text) }

// Error formats an error message.
func (t *Theme) Error(text string) string { return t.render(t.table.Error, "❌ "+text) }

// Warning formats a warning message.
func (t *Theme) Warning(text string) string { return t.render(t.table.Warning, "⚠️  "+text) }

// Info formats an informational message.
func (t *Theme) Info(text string) string { return t.render(t.table.Info, "ℹ️  "+text) }

// Title formats title text.
func (t *Theme) Title(text string) string { return t.render(t.table.Title, text) }

// Prompt formats prompt text.
func (t *Theme) Prompt(text string) string { return t.render(t.table.Prompt, text) }

// Muted formats de-emphasized text.
func (t *Theme) Muted(text string) string { return t.render(t.table.Muted, text) }

// Highlight formats emphasized values.
func (t *Theme) Highlight(text string) string { return t.render(t.table.Highlight, text) }

// headerWidth is the width of headers, footers, boxes and separators.
const headerWidth = 60

// Header renders a three-line double-ruled header. Content is measured by
// display width, so styled or wide text keeps the edges aligned.
func (t *Theme) Header(text string) string {
	rule := t.render(t.table.Border, strings.Repeat("═", headerWidth))
	width := lipgloss.Width(text)
	pad := (headerWidth - width - 2) / 2
	if pad < 0 {
		pad = 0
	}
	right := headerWidth - width - pad - 2
	if right < 0 {
		right = 0
	}
	content := t.render(t.table.Border, "║") +
		strings.Repeat(" ", pad) +
		t.Title(text) +
		strings.Repeat(" ", right) +
		t.render(t.table.Border, "║")
	return rule + "\n" + content + "\n" + rule
}

// Footer renders a three-line footer with muted content.
func (t *Theme) Footer(text string) string {
	rule := t.render(t.table.Border, strings.Repeat("═", headerWidth))
	pad := headerWidth - lipgloss.Width(text) - 3
	if pad < 0 {
		pad = 0
	}
	content := t.render(t.table.Border, "║") + " " + t.Muted(text) +
		strings.Repeat(" ", pad) + t.render(t.table.Border, "║")
	return rule + "\n" + content + "\n" + rule
}

// Box draws a single-ruled box around text, wrapping long lines. Wrapping
// and padding work on display width: escape sequences and wide characters
// never skew the edges or get split mid-sequence.
func (t *Theme) Box(text string) string {
	inner := headerWidth - 4
	var lines []string
	lines = append(lines, t.render(t.table.Border, "┌"+strings.Repeat("─", headerWidth-2)+"┐"))
	for _, line := range strings.Split(text, "\n") {
		for _, seg := range strings.Split(ansi.Hardwrap(line, inner, true), "\n") {
			if pad := inner - lipgloss.Width(seg); pad > 0 {
				seg += strings.Repeat(" ", pad)
			}
			lines = append(lines, t.boxLine(seg))
		}
	}
	lines = append(lines, t.render(t.table.Border, "└"+strings.Repeat("─", headerWidth-2)+"┘"))
	return strings.Join(lines, "\n")
}

func (t *Theme) boxLine(content string) string {
	edge := t.render(t.table.Border, "│")
	return edge + " " + content + " " + edge
}

// Separator renders a horizontal rule.
func (t *Theme) Separator() string {
	return t.render(t.table.Border, strings.Repeat("─", headerWidth))
}

// ListItem renders a bulleted line with an optional icon.
func (t *Theme) ListItem(text, icon string) string {
	if icon == "" {
		icon = "•"
	}
	return t.render(t.table.Icon, icon) + " " + text
}

// progressBarWidth is the character width of the bar portion.
const progressBarWidth = 40

// ProgressBar renders a filled/empty bar with a percentage suffix.
func (t *Theme) ProgressBar(current, total int) string {
	if total == 0 {
		return t.Muted("[N/A]")
	}
	ratio := float64(current) / float64(total)
	filled := int(progressBarWidth * ratio)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := t.render(t.table.Icon, strings.Repeat("█", filled)) +
		t.Muted(strings.Repeat("░", progressBarWidth-filled))
	pct := fmt.Sprintf("%.0f%%", ratio*100)
	return "[" + bar + "] " + t.Highlight(pct)
}

// Preview returns a multi-line sample of the theme's styles.
func (t *Theme) Preview() string {
	var b strings.Builder
	b.WriteString(t.Header("Theme Preview"))
	b.WriteString("\n\n")
	b.WriteString(t.ListItem("Primary color: "+t.render(t.table.Primary, "Sample text"), "🎨") + "\n")
	b.WriteString(t.ListItem("Success message: "+t.Success("Operation completed"), "") + "\n")
	b.WriteString(t.ListItem("Error message: "+t.Error("Something went wrong"), "") + "\n")
	b.WriteString(t.ListItem("Warning message: "+t.Warning("Be careful"), "") + "\n")
	b.WriteString("\n")
	b.WriteString(t.Separator())
	b.WriteString("\n")
	b.WriteString(t.Footer("Theme: " + strings.ToUpper(string(t.Name))))
	return b.String()
}
