package comments

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/replydesk/app"
	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/infra/editor"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

const (
	defaultPageSize = 50

	// maxReplyLength is the longest reply the service accepts, in characters.
	maxReplyLength = 2200
)

// Model is the unreplied-comments screen. It owns the draft store for the
// active media and reconciles against the service after every send.
//
// gen is bumped whenever the active media changes. Results of work started
// under an older gen still produce their toast but never touch drafts or
// trigger a refresh. reqSeq guards list loads: only the latest request may
// apply.
type Model struct {
	service    app.CommentService
	dispatcher *reply.Dispatcher
	editor     *editor.EnvEditor
	pageSize   int

	media  domain.Media
	gen    int
	reqSeq int

	items   []domain.Comment
	cursor  int
	drafts  reply.Drafts
	input   textinput.Model
	loading bool
	err     error

	sendingOne map[string]bool // Per-comment send control disabled while in flight
	sendingAll bool

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates the comments screen. A non-positive pageSize uses the default.
func New(service app.CommentService, dispatcher *reply.Dispatcher, ed *editor.EnvEditor, pageSize int) Model {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	ti := textinput.New()
	ti.Placeholder = "Write a reply..."
	ti.Prompt = "↳ "
	ti.CharLimit = maxReplyLength

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1306C"))

	return Model{
		service:    service,
		dispatcher: dispatcher,
		editor:     ed,
		pageSize:   pageSize,
		drafts:     reply.NewDrafts(),
		input:      ti,
		sendingOne: map[string]bool{},
		keys:       common.DefaultKeyMap(),
		spinner:    s,
	}
}

// SetMedia makes media the active context and reloads its unreplied comments.
// Moving to a different media discards every draft and invalidates all work
// still in flight for the previous one.
func (m Model) SetMedia(media domain.Media) (Model, tea.Cmd) {
	if media.ID != m.media.ID {
		m.gen++
		m.drafts.ClearAll()
		m.items = nil
		m.cursor = 0
		m.err = nil
		m.sendingOne = map[string]bool{}
		m.sendingAll = false
	}
	m.media = media
	m.syncInput()
	focus := m.input.Focus()

	m.reqSeq++
	m.loading = true
	return m, tea.Batch(m.fetchUnreplied(m.reqSeq), m.spinner.Tick, focus)
}

// Media returns the active media.
func (m Model) Media() domain.Media {
	return m.media
}

// Comments returns the comments currently on screen.
func (m Model) Comments() []domain.Comment {
	return m.items
}

// Draft returns the typed reply for commentID.
func (m Model) Draft(commentID string) string {
	return m.drafts.Get(commentID)
}

// HasPendingDrafts reports whether Send All has anything to send.
func (m Model) HasPendingDrafts() bool {
	return m.drafts.HasPending()
}

// Err returns the last list-load error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) selected() (domain.Comment, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.Comment{}, false
	}
	return m.items[m.cursor], true
}

// syncInput shows the selected comment's draft in the input.
func (m *Model) syncInput() {
	c, ok := m.selected()
	if !ok {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.drafts.Get(c.CommentID))
	m.input.CursorEnd()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// usernames maps reply targets to authors from the list currently on screen.
func (m Model) usernames() map[string]string {
	out := make(map[string]string, len(m.items))
	for _, c := range m.items {
		out[c.CommentID] = c.Username
	}
	return out
}
