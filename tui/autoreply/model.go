package autoreply

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/replydesk/app"
	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/infra/replyapi"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
	limitStep    = 10
)

// Chips are the quick keyword presets.
var Chips = []string{"link", "location", "price", "details"}

// --- Focus ---

type field int

const (
	keywordField field = iota
	messageField
	limitField
	fieldCount
)

// --- Messages ---

// DoneMsg reports an auto-reply run.
type DoneMsg struct {
	MediaID string
	Result  domain.AutoReplyResult
	Err     error
}

// --- Model ---

// Notice is the inline result line under the form.
type Notice struct {
	Tone reply.Tone
	Text string
}

// Model is the keyword auto-reply form for one media.
type Model struct {
	service app.CommentService
	media   domain.Media

	keyword textinput.Model
	message textarea.Model
	limit   int
	focus   field
	running bool
	notice  *Notice

	keys    common.KeyMap
	spinner spinner.Model
}

// New creates the form for media.
func New(service app.CommentService, media domain.Media) Model {
	kw := textinput.New()
	kw.Placeholder = "keyword, e.g. price"
	kw.Prompt = "🔑 "
	kw.CharLimit = 100
	kw.Focus()

	ta := textarea.New()
	ta.Placeholder = "Reply message sent to every matching comment"
	ta.CharLimit = 2200
	ta.SetWidth(72)
	ta.SetHeight(5)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1306C"))

	return Model{
		service: service,
		media:   media,
		keyword: kw,
		message: ta,
		limit:   DefaultLimit,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Keyword returns the keyword as typed.
func (m Model) Keyword() string { return m.keyword.Value() }

// Limit returns the number of comments to process.
func (m Model) Limit() int { return m.limit }

// Notice returns the last result line, or nil.
func (m Model) Notice() *Notice { return m.notice }

// Valid reports whether both keyword and message are present.
func (m Model) Valid() bool {
	return strings.TrimSpace(m.keyword.Value()) != "" && strings.TrimSpace(m.message.Value()) != ""
}

func (m Model) run() tea.Cmd {
	service := m.service
	mediaID := m.media.ID
	req := domain.AutoReplyRequest{
		Limit:   m.limit,
		Keyword: strings.TrimSpace(m.keyword.Value()),
		Message: strings.TrimSpace(m.message.Value()),
	}
	return func() tea.Msg {
		res, err := service.AutoReply(context.Background(), mediaID, req)
		return DoneMsg{MediaID: mediaID, Result: res, Err: err}
	}
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.message.SetWidth(max(20, min(100, msg.Width-6)))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DoneMsg:
		if msg.MediaID != m.media.ID {
			return m, nil
		}
		m.running = false
		if msg.Err != nil {
			m.notice = &Notice{Tone: reply.ToneWarn, Text: "Failed: " + errorText(msg.Err)}
		} else {
			m.notice = &Notice{Tone: reply.ToneOK, Text: fmt.Sprintf("Reply sent to %d comments", msg.Result.Processed)}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, common.Navigate(common.RouteActions, m.media)

	case key.Matches(msg, m.keys.SendAll):
		if m.running {
			return m, nil
		}
		if !m.Valid() {
			m.notice = &Notice{Tone: reply.ToneWarn, Text: "Keyword and reply message are required."}
			return m, nil
		}
		m.running = true
		m.notice = nil
		return m, m.run()

	case key.Matches(msg, m.keys.Chip):
		if m.running {
			return m, nil
		}
		m.keyword.SetValue(nextChip(m.keyword.Value()))
		m.keyword.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	if m.running {
		return m, nil
	}

	if m.focus == limitField {
		switch {
		case key.Matches(msg, m.keys.More), key.Matches(msg, m.keys.Up):
			m.limit = min(MaxLimit, m.limit+limitStep)
		case key.Matches(msg, m.keys.Less), key.Matches(msg, m.keys.Down):
			m.limit = max(1, m.limit-limitStep)
		}
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) setFocus(f field) (Model, tea.Cmd) {
	m.focus = f
	m.keyword.Blur()
	m.message.Blur()
	switch f {
	case keywordField:
		return m, m.keyword.Focus()
	case messageField:
		return m, m.message.Focus()
	}
	return m, nil
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case keywordField:
		m.keyword, cmd = m.keyword.Update(msg)
	case messageField:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

// nextChip returns the chip after current, or the first chip.
func nextChip(current string) string {
	for i, c := range Chips {
		if c == current {
			return Chips[(i+1)%len(Chips)]
		}
	}
	return Chips[0]
}

func errorText(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return "Unknown error"
	}
	if errors.Is(err, domain.ErrKeywordRequired) || errors.Is(err, domain.ErrMessageRequired) {
		return "Keyword and reply message are required."
	}
	return replyapi.Message(err)
}
