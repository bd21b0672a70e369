package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/replydesk/app"
	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/infra/replyapi"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

const (
	DefaultSyncLimit = 50
	MaxSyncLimit     = 500
	limitStep        = 10
)

type action int

const (
	actionSync action = iota
	actionUnreplied
	actionAllComments
	actionAutoReply
	actionCount
)

func (a action) label() string {
	switch a {
	case actionSync:
		return "Fetch & store all comments"
	case actionUnreplied:
		return "Reply to unreplied comments"
	case actionAllComments:
		return "Browse all comments"
	case actionAutoReply:
		return "Send auto reply by keyword"
	}
	return ""
}

// SyncDoneMsg reports a fetch & store run.
type SyncDoneMsg struct {
	MediaID string
	Result  domain.SyncResult
	Err     error
}

// Model is the per-media actions menu.
type Model struct {
	service      app.MediaService
	defaultLimit int

	media   domain.Media
	limit   int
	cursor  action
	syncing bool

	keys    common.KeyMap
	spinner spinner.Model
	width   int
}

// New creates the actions menu. A non-positive limit uses DefaultSyncLimit.
func New(service app.MediaService, limit int) Model {
	if limit <= 0 {
		limit = DefaultSyncLimit
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1306C"))
	return Model{
		service:      service,
		defaultLimit: limit,
		limit:        limit,
		keys:         common.DefaultKeyMap(),
		spinner:      s,
	}
}

// SetMedia points the menu at media. The limit resets when the media changes.
func (m Model) SetMedia(media domain.Media) Model {
	if media.ID != m.media.ID {
		m.limit = m.defaultLimit
		m.cursor = actionSync
		m.syncing = false
	}
	m.media = media
	return m
}

// Limit returns the fetch & store limit.
func (m Model) Limit() int {
	return m.limit
}

// Syncing reports whether a fetch & store run is in flight.
func (m Model) Syncing() bool {
	return m.syncing
}

func (m Model) sync() tea.Cmd {
	service := m.service
	mediaID := m.media.ID
	limit := m.limit
	return func() tea.Msg {
		res, err := service.FetchAndStoreComments(context.Background(), mediaID, limit)
		return SyncDoneMsg{MediaID: mediaID, Result: res, Err: err}
	}
}

// Update handles messages for the actions menu.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SyncDoneMsg:
		if msg.MediaID == m.media.ID {
			m.syncing = false
		}
		if msg.Err != nil {
			return m, common.Notify("Failed: "+replyapi.Message(msg.Err), reply.ToneWarn)
		}
		return m, common.Notify(fmt.Sprintf("Saved/updated %d comments", msg.Result.SavedOrUpdated), reply.ToneOK)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, common.Navigate(common.RouteMedia, domain.Media{})

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < actionCount-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.More), key.Matches(msg, m.keys.Right):
		m.limit = min(MaxSyncLimit, m.limit+limitStep)
	case key.Matches(msg, m.keys.Less), key.Matches(msg, m.keys.Left):
		m.limit = max(1, m.limit-limitStep)

	case key.Matches(msg, m.keys.Enter):
		switch m.cursor {
		case actionSync:
			if m.syncing {
				return m, nil
			}
			m.syncing = true
			return m, tea.Batch(m.sync(), m.spinner.Tick)
		case actionUnreplied:
			return m, common.Navigate(common.RouteUnreplied, m.media)
		case actionAllComments:
			return m, common.Navigate(common.RouteAllComments, m.media)
		case actionAutoReply:
			return m, common.Navigate(common.RouteAutoReply, m.media)
		}
	}
	return m, nil
}

// View renders the actions menu.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("🛠  Media actions"))
	b.WriteString(" ")
	b.WriteString(common.MediaIDStyle.Render(m.media.ID))
	b.WriteString("\n")
	if c := strings.TrimSpace(m.media.Caption); c != "" {
		width := 76
		if m.width > 0 {
			width = max(20, m.width-4)
		}
		b.WriteString(common.TaglineStyle.Render(common.Truncate(c, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for a := action(0); a < actionCount; a++ {
		label := a.label()
		if a == actionSync {
			if m.syncing {
				label = m.spinner.View() + " Fetching…"
			} else {
				label += fmt.Sprintf("  (limit %d)", m.limit)
			}
		}
		if a == m.cursor {
			b.WriteString(common.ActionActiveStyle.Render("› " + label))
		} else {
			b.WriteString(common.ActionInactiveStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render("↑/↓ choose • enter run • +/- limit • esc back"))
	return b.String()
}
