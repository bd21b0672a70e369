package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E1306C")).
			Padding(1, 2, 0, 1)

	// MediaIDStyle styles media ids in headers.
	MediaIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C2185B")).
			Bold(true)

	// TaglineStyle styles secondary header text.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles comment authors.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// AvatarStyle styles the initials badge next to an author.
	AvatarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#F5A97F")).
			Bold(true).
			Padding(0, 1)

	// TimestampStyle styles timestamps and counters.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles comment and caption text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// DraftStyle styles a draft preview on an unselected comment.
	DraftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F")).
			Italic(true)

	// SelectedStyle highlights the current item.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#E1306C")).
			Padding(0, 1)

	// UnselectedStyle gives other items a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// StatusBarStyle styles the bottom hint bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ButtonStyle styles an enabled action.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5B6EE1")).
			Bold(true).
			Padding(0, 2)

	// ButtonDisabledStyle styles an action that cannot run right now.
	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9CA0B0")).
				Background(lipgloss.Color("#45475A")).
				Padding(0, 2)

	// ActionActiveStyle styles the currently selected menu entry.
	ActionActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E1306C")).
				Bold(true).
				Padding(0, 1)

	// ActionInactiveStyle styles other menu entries.
	ActionInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)

	// ChipActiveStyle styles the chosen keyword chip.
	ChipActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#222222")).
			Padding(0, 1)

	// ChipStyle styles the other keyword chips.
	ChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5")).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// ToastOKStyle styles a success toast.
	ToastOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#16A34A")).
			Padding(0, 1)

	// ToastWarnStyle styles a warning toast.
	ToastWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#D97706")).
			Padding(0, 1)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
