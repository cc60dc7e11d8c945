package styles

import "github.com/charmbracelet/lipgloss"

var (
	Indigo  = lipgloss.Color("#4568DC")
	Violet  = lipgloss.Color("#B06AB3")
	Gray    = lipgloss.Color("#8A8F98")
	DimGray = lipgloss.Color("#3D4250")
	Green   = lipgloss.Color("#4CAF50")
	Red     = lipgloss.Color("#FF3131")
	White   = lipgloss.Color("#FFFFFF")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo)

	Subtitle = lipgloss.NewStyle().
			Foreground(Violet)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(White).
		Background(Indigo).
		Padding(0, 1)

	PromptSection = Section.
			Background(Green)

	Selected = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(DimGray)

	Err = lipgloss.NewStyle().
		Foreground(Red)

	Help = lipgloss.NewStyle().
		Foreground(DimGray).
		Italic(true)

	Avatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(White).
		Background(Violet).
		Padding(0, 1)

	ActiveAvatar = Avatar.
			Background(Indigo)

	Profession = lipgloss.NewStyle().
			Foreground(Gray)

	Tag = lipgloss.NewStyle().
		Foreground(Green)

	Link = lipgloss.NewStyle().
		Foreground(Gray).
		Underline(true)

	Status = lipgloss.NewStyle().
		Foreground(Green).
		Italic(true)

	Footer = lipgloss.NewStyle().
		Foreground(Gray)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Indigo).
		Padding(1, 2)

	PromptCard = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Green).
			PaddingLeft(1)
)
