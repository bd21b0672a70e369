package comments

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

type sentReply struct {
	CommentID string
	Message   string
}

type fakeComments struct {
	mu        sync.Mutex
	list      []domain.Comment
	listErr   error
	listCalls int
	sent      []sentReply
	fail      map[string]bool
	failErr   error
}

func (f *fakeComments) ListComments(context.Context, domain.CommentQuery) (domain.CommentPage, error) {
	return domain.CommentPage{}, nil
}

func (f *fakeComments) ListUnreplied(_ context.Context, _ string, _, _ int) (domain.CommentPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return domain.CommentPage{}, f.listErr
	}
	return domain.CommentPage{Comments: append([]domain.Comment(nil), f.list...)}, nil
}

func (f *fakeComments) Reply(_ context.Context, commentID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentReply{CommentID: commentID, Message: message})
	if f.fail[commentID] {
		if f.failErr != nil {
			return f.failErr
		}
		return errors.New("rate limited")
	}
	return nil
}

func (f *fakeComments) AutoReply(context.Context, string, domain.AutoReplyRequest) (domain.AutoReplyResult, error) {
	return domain.AutoReplyResult{}, nil
}

func (f *fakeComments) calls() (lists, replies int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, len(f.sent)
}

func makeComment(id, username string) domain.Comment {
	return domain.Comment{
		ID:        "rec-" + id,
		CommentID: id,
		Username:  username,
		Text:      "comment " + id,
	}
}

// newLoaded returns a model showing svc.list for media m1. The initial load
// is applied directly so counters start from a known state.
func newLoaded(svc *fakeComments) Model {
	m := New(svc, reply.NewDispatcher(svc, nil), nil, 10)
	m, _ = m.SetMedia(domain.Media{ID: "m1"})
	m, _ = m.Update(CommentsLoadedMsg{
		Gen:    m.gen,
		ReqSeq: m.reqSeq,
		Page:   domain.CommentPage{Comments: append([]domain.Comment(nil), svc.list...)},
	})
	return m
}

// collect runs cmd and every command nested in a tea.BatchMsg, returning
// the resulting messages in order.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func notifications(msgs []tea.Msg) []common.NotifyMsg {
	var out []common.NotifyMsg
	for _, msg := range msgs {
		if n, ok := msg.(common.NotifyMsg); ok {
			out = append(out, n)
		}
	}
	return out
}

func only[T any](msgs []tea.Msg) (T, bool) {
	var zero T
	found := false
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			if found {
				return zero, false
			}
			zero, found = v, true
		}
	}
	return zero, found
}

func keyEnter() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEnter} }
func keySendAll() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyCtrlS} }
func keyDown() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyDown} }
