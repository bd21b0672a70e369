package autoreply

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
)

type stubComments struct {
	calls   int
	mediaID string
	req     domain.AutoReplyRequest
	res     domain.AutoReplyResult
	err     error
}

func (s *stubComments) ListComments(context.Context, domain.CommentQuery) (domain.CommentPage, error) {
	return domain.CommentPage{}, nil
}

func (s *stubComments) ListUnreplied(context.Context, string, int, int) (domain.CommentPage, error) {
	return domain.CommentPage{}, nil
}

func (s *stubComments) Reply(context.Context, string, string) error { return nil }

func (s *stubComments) AutoReply(_ context.Context, mediaID string, req domain.AutoReplyRequest) (domain.AutoReplyResult, error) {
	s.calls++
	s.mediaID = mediaID
	s.req = req
	return s.res, s.err
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, t tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: t})
}

func TestRun_RequiresKeywordAndMessage(t *testing.T) {
	svc := &stubComments{}
	m := New(svc, domain.Media{ID: "m1"})
	m = typeText(m, "price")

	m, cmd := press(m, tea.KeyCtrlS)
	if cmd != nil || svc.calls != 0 {
		t.Fatalf("missing message should not issue a request")
	}
	if m.Notice() == nil || m.Notice().Tone != reply.ToneWarn {
		t.Fatalf("expected a warn notice, got %+v", m.Notice())
	}
}

func TestRun_SendsTrimmedRequestAndReportsProcessed(t *testing.T) {
	svc := &stubComments{res: domain.AutoReplyResult{Processed: 4}}
	m := New(svc, domain.Media{ID: "m1"})
	m = typeText(m, " price ")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "  DM sent!  ")

	m, cmd := press(m, tea.KeyCtrlS)
	if cmd == nil {
		t.Fatalf("expected a run command")
	}
	if _, again := press(m, tea.KeyCtrlS); again != nil {
		t.Fatalf("run should not start twice")
	}
	m, _ = m.Update(cmd())

	if svc.mediaID != "m1" || svc.req.Keyword != "price" || svc.req.Message != "DM sent!" || svc.req.Limit != DefaultLimit {
		t.Fatalf("unexpected request: %q %+v", svc.mediaID, svc.req)
	}
	if n := m.Notice(); n == nil || n.Tone != reply.ToneOK || n.Text != "Reply sent to 4 comments" {
		t.Fatalf("unexpected notice: %+v", n)
	}
}

func TestRun_FailureShowsMessage(t *testing.T) {
	svc := &stubComments{err: errors.New("forbidden")}
	m := New(svc, domain.Media{ID: "m1"})
	m = typeText(m, "link")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "check bio")
	m, cmd := press(m, tea.KeyCtrlS)
	m, _ = m.Update(cmd())

	if n := m.Notice(); n == nil || n.Tone != reply.ToneWarn || n.Text != "Failed: forbidden" {
		t.Fatalf("unexpected notice: %+v", n)
	}
}

func TestChip_CyclesKeyword(t *testing.T) {
	m := New(&stubComments{}, domain.Media{ID: "m1"})
	for _, want := range []string{"link", "location", "price", "details", "link"} {
		m, _ = press(m, tea.KeyCtrlN)
		if m.Keyword() != want {
			t.Fatalf("expected chip %q, got %q", want, m.Keyword())
		}
	}
}

func TestLimit_AdjustsOnlyWhenFocused(t *testing.T) {
	m := New(&stubComments{}, domain.Media{ID: "m1"})
	m = typeText(m, "+")
	if m.Limit() != DefaultLimit || m.Keyword() != "+" {
		t.Fatalf("+ in the keyword field should be typed, not change the limit")
	}

	m, _ = press(m, tea.KeyShiftTab)
	m = typeText(m, "+")
	if m.Limit() != DefaultLimit+10 {
		t.Fatalf("expected %d, got %d", DefaultLimit+10, m.Limit())
	}
	for range 10 {
		m = typeText(m, "-")
	}
	if m.Limit() != 1 {
		t.Fatalf("limit should not go below 1, got %d", m.Limit())
	}
}

func TestDone_ForOtherMediaIsIgnored(t *testing.T) {
	m := New(&stubComments{}, domain.Media{ID: "m1"})
	m, _ = m.Update(DoneMsg{MediaID: "m0", Result: domain.AutoReplyResult{Processed: 9}})
	if m.Notice() != nil {
		t.Fatalf("result for another media should be ignored")
	}
}
