package printer

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/unxutils/lsr/pkg/lsr"
)

// Theme holds the lipgloss styles applied per entry kind.
type Theme struct {
	File       lipgloss.Style
	Directory  lipgloss.Style
	Symlink    lipgloss.Style
	SymlinkDir lipgloss.Style
}

// DefaultTheme mirrors the familiar dircolors palette: directories in
// bold blue, symlinks in cyan.
func DefaultTheme() Theme {
	return Theme{
		File:       lipgloss.NewStyle(),
		Directory:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Symlink:    lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		SymlinkDir: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
	}
}

// ThemeColors overrides the default palette with user-supplied color
// values; empty strings keep the default.
type ThemeColors struct {
	File       string
	Directory  string
	Symlink    string
	SymlinkDir string
}

// BuildTheme applies overrides on top of the default theme.
func BuildTheme(colors ThemeColors) Theme {
	theme := DefaultTheme()
	if colors.File != "" {
		theme.File = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.File))
	}
	if colors.Directory != "" {
		theme.Directory = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Directory))
	}
	if colors.Symlink != "" {
		theme.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Symlink))
	}
	if colors.SymlinkDir != "" {
		theme.SymlinkDir = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.SymlinkDir))
	}
	return theme
}

func (t Theme) styleFor(kind lsr.EntryKind) lipgloss.Style {
	switch kind {
	case lsr.KindDirectory:
		return t.Directory
	case lsr.KindSymlinkFile:
		return t.Symlink
	case lsr.KindSymlinkDir:
		return t.SymlinkDir
	default:
		return t.File
	}
}

// ColorEnabled resolves a ColorMode against the environment: "always"
// and "never" are unconditional, "auto" requires stdout to be a
// terminal with NO_COLOR unset.
func ColorEnabled(mode lsr.ColorMode) bool {
	switch mode {
	case lsr.ColorAlways:
		return true
	case lsr.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
