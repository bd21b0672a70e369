package media

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/replydesk/app"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

// MediaLoadedMsg carries the account's media list.
type MediaLoadedMsg struct {
	ReqSeq int
	Page   domain.MediaPage
}

// MediaErrorMsg reports a failed media load.
type MediaErrorMsg struct {
	ReqSeq int
	Err    error
}

// Model is the media list screen with caption search.
type Model struct {
	service   app.MediaService
	accountID string

	items   []domain.Media
	next    string
	loading bool
	err     error
	reqSeq  int

	search    textinput.Model
	open      bool // Suggestions shown
	activeIdx int  // Highlighted suggestion, -1 for none
	cursor    int  // Selection within the filtered list

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates the media list for accountID.
func New(service app.MediaService, accountID string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by caption…"
	ti.Prompt = "🔎 "
	ti.CharLimit = 200
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1306C"))

	return Model{
		service:   service,
		accountID: accountID,
		loading:   true,
		reqSeq:    1,
		search:    ti,
		activeIdx: -1,
		keys:      common.DefaultKeyMap(),
		spinner:   s,
	}
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.reqSeq), m.spinner.Tick, textinput.Blink)
}

func (m Model) fetch(reqSeq int) tea.Cmd {
	service := m.service
	accountID := m.accountID
	return func() tea.Msg {
		page, err := service.ListMedia(context.Background(), accountID)
		if err != nil {
			return MediaErrorMsg{ReqSeq: reqSeq, Err: err}
		}
		return MediaLoadedMsg{ReqSeq: reqSeq, Page: page}
	}
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.search.Value()
}

// Visible returns the media shown in the list for the current query.
func (m Model) Visible() []domain.Media {
	return Filter(m.items, m.search.Value())
}

// Suggestions returns the typeahead entries for the current query.
func (m Model) Suggestions() []domain.Media {
	return Suggest(m.items, m.search.Value())
}

// Update handles messages for the media list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MediaLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.items = msg.Page.Items
		m.next = msg.Page.Next
		m.cursor = 0
		return m, nil

	case MediaErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	suggestions := m.Suggestions()

	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.reqSeq++
		m.loading = true
		return m, m.fetch(m.reqSeq)

	case key.Matches(msg, m.keys.Clear):
		m.clearSearch()
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		delta := 1
		if key.Matches(msg, m.keys.Up) {
			delta = -1
		}
		if m.search.Value() != "" && !m.open {
			m.open = true
			return m, nil
		}
		if m.open && len(suggestions) > 0 {
			m.activeIdx = step(m.activeIdx, delta, len(suggestions))
			return m, nil
		}
		visible := m.Visible()
		m.cursor = max(0, min(len(visible)-1, m.cursor+delta))
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.open && len(suggestions) > 0 {
			target := suggestions[0]
			if m.activeIdx >= 0 && m.activeIdx < len(suggestions) {
				target = suggestions[m.activeIdx]
			}
			return m, common.Navigate(common.RouteActions, target)
		}
		visible := m.Visible()
		if m.cursor < len(visible) {
			return m, common.Navigate(common.RouteActions, visible[m.cursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.open {
			m.open = false
			return m, nil
		}
		m.clearSearch()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.open = strings.TrimSpace(m.search.Value()) != ""
		m.activeIdx = -1
		m.cursor = 0
	}
	return m, cmd
}

func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.open = false
	m.activeIdx = -1
	m.cursor = 0
}
