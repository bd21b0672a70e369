package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/replydesk/app"
	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/infra/editor"
	"github.com/CrestNiraj12/replydesk/tui/actions"
	"github.com/CrestNiraj12/replydesk/tui/autoreply"
	"github.com/CrestNiraj12/replydesk/tui/comments"
	"github.com/CrestNiraj12/replydesk/tui/common"
	"github.com/CrestNiraj12/replydesk/tui/history"
	"github.com/CrestNiraj12/replydesk/tui/media"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Media      app.MediaService
	Comments   app.CommentService
	Dispatcher *reply.Dispatcher
	Editor     *editor.EnvEditor
	Logger     *zap.Logger

	AccountID        string
	CommentsPageSize int
	HistoryPageSize  int
	SyncLimit        int
	ToastTTL         time.Duration
}

type activeView int

const (
	mediaView activeView = iota
	actionsView
	commentsView
	historyView
	autoReplyView
)

// toastExpiredMsg fires once per toast when its display time is up.
type toastExpiredMsg struct {
	ID int
	At time.Time
}

// scheduleFunc delivers a toastExpiredMsg for id after d.
type scheduleFunc func(d time.Duration, id int) tea.Cmd

func tickExpiry(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return toastExpiredMsg{ID: id, At: t}
	})
}

// App is the root Bubble Tea model. It routes between sub-views and owns
// the toast stack.
type App struct {
	deps      Deps
	active    activeView
	media     media.Model
	actions   actions.Model
	comments  comments.Model
	history   history.Model
	autoreply autoreply.Model
	keys      common.KeyMap

	toasts   reply.Notifier
	now      func() time.Time
	schedule scheduleFunc
	width    int
	height   int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Dispatcher == nil {
		deps.Dispatcher = reply.NewDispatcher(deps.Comments, deps.Logger)
	}
	return App{
		deps:     deps,
		active:   mediaView,
		media:    media.New(deps.Media, deps.AccountID),
		actions:  actions.New(deps.Media, deps.SyncLimit),
		comments: comments.New(deps.Comments, deps.Dispatcher, deps.Editor, deps.CommentsPageSize),
		history:  history.New(deps.Comments, deps.HistoryPageSize),
		keys:     common.DefaultKeyMap(),
		toasts:   reply.NewNotifier(deps.ToastTTL),
		now:      time.Now,
		schedule: tickExpiry,
	}
}

// Init delegates to the media list.
func (a App) Init() tea.Cmd {
	return a.media.Init()
}

// Update handles messages and routes to the sub-models.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global key bindings, handled regardless of active view.
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Dismiss) {
			if active := a.toasts.Active(); len(active) > 0 {
				a.toasts.Dismiss(active[len(active)-1].ID)
			}
			return a, nil
		}
		return a.updateActive(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case common.NotifyMsg:
		t := a.toasts.Push(msg.Text, msg.Tone, a.now())
		a.deps.Logger.Debug("Toast", zap.Int("id", t.ID), zap.String("tone", t.Tone.String()), zap.String("text", t.Text))
		return a, a.schedule(a.toasts.TTL(), t.ID)

	case toastExpiredMsg:
		a.toasts.Dismiss(msg.ID)
		a.toasts.Expire(msg.At)
		return a, nil

	case common.NavigateMsg:
		return a.navigate(msg)
	}

	// Everything else may belong to a view that is not on screen (a send
	// finishing after the operator navigated away), so every view sees it.
	return a.broadcast(msg)
}

func (a App) navigate(msg common.NavigateMsg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.To {
	case common.RouteMedia:
		a.active = mediaView
	case common.RouteActions:
		a.active = actionsView
		a.actions = a.actions.SetMedia(msg.Media)
	case common.RouteUnreplied:
		a.active = commentsView
		a.comments, cmd = a.comments.SetMedia(msg.Media)
	case common.RouteAllComments:
		a.active = historyView
		a.history, cmd = a.history.SetMedia(msg.Media)
	case common.RouteAutoReply:
		a.active = autoReplyView
		a.autoreply = autoreply.New(a.deps.Comments, msg.Media)
		cmd = a.autoreply.Init()
	}
	a.deps.Logger.Debug("Navigate", zap.Int("route", int(msg.To)), zap.String("mediaID", msg.Media.ID))

	if a.width > 0 {
		var sizeCmd tea.Cmd
		a, sizeCmd = a.updateActive(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		cmd = tea.Batch(cmd, sizeCmd)
	}
	return a, cmd
}

func (a App) updateActive(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case mediaView:
		a.media, cmd = a.media.Update(msg)
	case actionsView:
		a.actions, cmd = a.actions.Update(msg)
	case commentsView:
		a.comments, cmd = a.comments.Update(msg)
	case historyView:
		a.history, cmd = a.history.Update(msg)
	case autoReplyView:
		a.autoreply, cmd = a.autoreply.Update(msg)
	}
	return a, cmd
}

func (a App) broadcast(msg tea.Msg) (App, tea.Cmd) {
	cmds := make([]tea.Cmd, 5)
	a.media, cmds[0] = a.media.Update(msg)
	a.actions, cmds[1] = a.actions.Update(msg)
	a.comments, cmds[2] = a.comments.Update(msg)
	a.history, cmds[3] = a.history.Update(msg)
	if a.active == autoReplyView {
		a.autoreply, cmds[4] = a.autoreply.Update(msg)
	}
	return a, tea.Batch(cmds...)
}

// Toasts returns the toasts currently on screen, oldest first.
func (a App) Toasts() []reply.Toast {
	return a.toasts.Active()
}

// View renders the active sub-model with the toast stack above it.
func (a App) View() string {
	var s string
	switch a.active {
	case mediaView:
		s = a.media.View()
	case actionsView:
		s = a.actions.View()
	case commentsView:
		s = a.comments.View()
	case historyView:
		s = a.history.View()
	case autoReplyView:
		s = a.autoreply.View()
	}

	if toasts := a.renderToasts(); toasts != "" {
		s = toasts + "\n" + s
	}
	return s
}

func (a App) renderToasts() string {
	active := a.toasts.Active()
	if len(active) == 0 {
		return ""
	}
	lines := make([]string, 0, len(active))
	for _, t := range active {
		style := common.ToastOKStyle
		if t.Tone == reply.ToneWarn {
			style = common.ToastWarnStyle
		}
		lines = append(lines, style.Render(strings.TrimSpace(t.Text)))
	}
	block := lipgloss.JoinVertical(lipgloss.Right, lines...)
	if a.width > 0 {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Right, block)
	}
	return block
}
