package history

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/replydesk/app"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/infra/replyapi"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

const DefaultPageSize = 25

// PageSizes are the sizes the page-size key cycles through.
var PageSizes = []int{10, 25, 50, 100}

// Filter selects stored comments by replied state.
type Filter int

const (
	FilterAll Filter = iota
	FilterReplied
	FilterUnreplied
)

// Next cycles all → replied → unreplied → all.
func (f Filter) Next() Filter {
	return (f + 1) % 3
}

// Replied returns the query parameter for f; nil means no filter.
func (f Filter) Replied() *bool {
	switch f {
	case FilterReplied:
		v := true
		return &v
	case FilterUnreplied:
		v := false
		return &v
	}
	return nil
}

func (f Filter) String() string {
	switch f {
	case FilterReplied:
		return "Replied"
	case FilterUnreplied:
		return "Unreplied"
	}
	return "All"
}

// PageLoadedMsg carries one page of stored comments.
type PageLoadedMsg struct {
	ReqSeq int
	Page   domain.CommentPage
}

// PageErrorMsg reports a failed page load.
type PageErrorMsg struct {
	ReqSeq int
	Err    error
}

// Model is the paged "all comments" browser for one media.
type Model struct {
	service app.CommentService

	media      domain.Media
	page       int
	size       int
	totalPages int
	filter     Filter
	rows       []domain.Comment
	cursor     int
	loading    bool
	err        error
	reqSeq     int

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates the browser. A non-positive size uses DefaultPageSize.
func New(service app.CommentService, size int) Model {
	if size <= 0 {
		size = DefaultPageSize
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1306C"))
	return Model{
		service: service,
		size:    size,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// SetMedia shows media from its first page, keeping filter and page size.
func (m Model) SetMedia(media domain.Media) (Model, tea.Cmd) {
	m.media = media
	m.page = 0
	m.rows = nil
	m.totalPages = 0
	return m.reload(m.spinner.Tick)
}

// Page returns the zero-based page on screen.
func (m Model) Page() int { return m.page }

// Size returns the page size.
func (m Model) Size() int { return m.size }

// Filter returns the active replied filter.
func (m Model) Filter() Filter { return m.filter }

// Rows returns the comments on screen.
func (m Model) Rows() []domain.Comment { return m.rows }

func (m Model) reload(extra ...tea.Cmd) (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	m.err = nil
	return m, tea.Batch(append([]tea.Cmd{m.fetch(m.reqSeq)}, extra...)...)
}

func (m Model) fetch(reqSeq int) tea.Cmd {
	service := m.service
	q := domain.CommentQuery{
		MediaID: m.media.ID,
		Page:    m.page,
		Size:    m.size,
		Replied: m.filter.Replied(),
	}
	return func() tea.Msg {
		page, err := service.ListComments(context.Background(), q)
		if err != nil {
			return PageErrorMsg{ReqSeq: reqSeq, Err: err}
		}
		return PageLoadedMsg{ReqSeq: reqSeq, Page: page}
	}
}

// Update handles messages for the browser.
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

	case PageLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.rows = msg.Page.Comments
		m.totalPages = msg.Page.TotalPages
		m.cursor = 0
		return m, nil

	case PageErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, common.Navigate(common.RouteActions, m.media)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if m.loading || m.page == 0 {
			return m, nil
		}
		m.page--
		return m.reload()

	case key.Matches(msg, m.keys.Right):
		if m.loading || m.page+1 >= m.totalPages {
			return m, nil
		}
		m.page++
		return m.reload()

	case key.Matches(msg, m.keys.Filter):
		if m.loading {
			return m, nil
		}
		m.filter = m.filter.Next()
		m.page = 0
		return m.reload()

	case key.Matches(msg, m.keys.PageSize):
		if m.loading {
			return m, nil
		}
		i := slices.Index(PageSizes, m.size)
		m.size = PageSizes[(i+1)%len(PageSizes)]
		m.page = 0
		return m.reload()

	case key.Matches(msg, m.keys.Refresh):
		return m.reload()
	}
	return m, nil
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("🗂  All comments"))
	b.WriteString(" ")
	b.WriteString(common.MediaIDStyle.Render(m.media.ID))
	b.WriteString("\n\n")

	b.WriteString(common.TimestampStyle.Render(fmt.Sprintf(
		"Filter: %s • Page size: %d • %s: %d", m.filter, m.size, m.countLabel(), len(m.rows))))
	if m.loading {
		b.WriteString("  " + m.spinner.View() + " Loading…")
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("Error: " + replyapi.Message(m.err)))
		b.WriteString("\n")
	case !m.loading && len(m.rows) == 0:
		b.WriteString(common.TimestampStyle.Render("No comments found."))
		b.WriteString("\n")
	case !m.loading:
		start, end := m.window()
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(m.rows[i], i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nPage %d / %d\n", m.page+1, max(1, m.totalPages)))
	b.WriteString(common.StatusBarStyle.Render(
		"←/h prev • →/l next • f filter • s page size • ctrl+r refresh • esc back"))
	return b.String()
}

func (m Model) countLabel() string {
	switch m.filter {
	case FilterReplied:
		return "Replied"
	case FilterUnreplied:
		return "Unreplied"
	}
	return "Total"
}

func (m Model) renderRow(c domain.Comment, selected bool) string {
	width := 76
	if m.width > 0 {
		width = max(20, m.width-6)
	}
	lines := []string{
		common.AvatarStyle.Render(common.Initials(c.Username)) + " " +
			common.AuthorStyle.Render(c.Username) + " " +
			common.ContentStyle.Render(common.Truncate(c.Text, width-len(c.Username)-8)),
	}
	if c.Replied {
		lines = append(lines, common.SuccessStyle.Render("Replied"))
	} else {
		lines = append(lines, common.TimestampStyle.Render("Not replied"))
	}
	for _, r := range c.Replies {
		line := common.DraftStyle.Render("You ") + common.ContentStyle.Render(common.Truncate(r.Text, width-8))
		if !r.Timestamp.IsZero() {
			line += " " + common.TimestampStyle.Render(r.Timestamp.Local().Format("Jan 2 15:04"))
		}
		lines = append(lines, "  "+line)
	}
	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) window() (int, int) {
	room := len(m.rows)
	if m.height > 0 {
		room = max(1, (m.height-10)/5)
	}
	start := 0
	if m.cursor >= room {
		start = m.cursor - room + 1
	}
	return start, min(len(m.rows), start+room)
}
