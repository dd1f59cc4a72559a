package styles

import "github.com/charmbracelet/lipgloss"

var (
	ink    = lipgloss.AdaptiveColor{Light: "236", Dark: "252"}
	faded  = lipgloss.AdaptiveColor{Light: "248", Dark: "241"}
	accent = lipgloss.Color("141")
	warm   = lipgloss.Color("214")
	alarm  = lipgloss.Color("203")
)

func HeaderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 2).
		Width(width).
		MaxHeight(1)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)
}

func StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(faded)
}

func ThinkingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(warm)
}

func TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ink)
}

func CaretStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Reverse(true)
}

func FooterStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(faded).
		Padding(0, 2).
		Width(width).
		MaxHeight(1)
}

func FlashStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(accent)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(alarm).
		Bold(true)
}

func ConfirmStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(warm).
		Bold(true)
}
