package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette used by help and error output.
var (
	colorBlue   = lipgloss.Color("#7FB4CA")
	colorOrange = lipgloss.Color("#FFA066")
	colorRed    = lipgloss.Color("#FF5D62")
	colorViolet = lipgloss.Color("#957FB8")
	colorMuted  = lipgloss.Color("#727169")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	sectionStyle = lipgloss.NewStyle().Italic(true).Foreground(colorOrange)
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	flagStyle    = lipgloss.NewStyle().Foreground(colorViolet)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// InitColor forces a color profile when CLICOLOR_FORCE or COLORTERM ask
// for one, and disables color when NO_COLOR is set.
func InitColor() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case os.Getenv("CLICOLOR_FORCE") == "1":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case os.Getenv("COLORTERM") == "truecolor" || os.Getenv("COLORTERM") == "24bit":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
