package common

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
)

// Route names a top-level screen.
type Route int

const (
	RouteMedia Route = iota
	RouteActions
	RouteUnreplied
	RouteAllComments
	RouteAutoReply
)

// NavigateMsg asks the root model to switch screens. Media carries the post
// the target screen works on; it is ignored for RouteMedia.
type NavigateMsg struct {
	To    Route
	Media domain.Media
}

// NotifyMsg asks the root model to show a transient toast.
type NotifyMsg struct {
	Text string
	Tone reply.Tone
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(to Route, m domain.Media) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to, Media: m} }
}

// Notify returns a command that emits a NotifyMsg.
func Notify(text string, tone reply.Tone) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: text, Tone: tone} }
}
