package history

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/replydesk/domain"
)

type recordingComments struct {
	queries []domain.CommentQuery
	page    domain.CommentPage
	err     error
}

func (r *recordingComments) ListComments(_ context.Context, q domain.CommentQuery) (domain.CommentPage, error) {
	r.queries = append(r.queries, q)
	return r.page, r.err
}

func (r *recordingComments) ListUnreplied(context.Context, string, int, int) (domain.CommentPage, error) {
	return domain.CommentPage{}, nil
}

func (r *recordingComments) Reply(context.Context, string, string) error { return nil }

func (r *recordingComments) AutoReply(context.Context, string, domain.AutoReplyRequest) (domain.AutoReplyResult, error) {
	return domain.AutoReplyResult{}, nil
}

// settle runs the fetch command that cmd carries and applies its result.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a load command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		msg = batch[0]()
	}
	m, _ = m.Update(msg)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFilter_CyclesAndMapsToQuery(t *testing.T) {
	f := FilterAll
	if f.Replied() != nil {
		t.Fatalf("all should not filter")
	}
	f = f.Next()
	if f != FilterReplied || *f.Replied() != true {
		t.Fatalf("expected replied filter")
	}
	f = f.Next()
	if f != FilterUnreplied || *f.Replied() != false {
		t.Fatalf("expected unreplied filter")
	}
	if f.Next() != FilterAll {
		t.Fatalf("filter should wrap back to all")
	}
}

func TestSetMedia_LoadsFirstPage(t *testing.T) {
	svc := &recordingComments{page: domain.CommentPage{
		Comments:   []domain.Comment{{CommentID: "c1", Username: "alice", Replied: true}},
		TotalPages: 3,
	}}
	m := New(svc, 0)
	m, cmd := m.SetMedia(domain.Media{ID: "m1"})
	m = settle(t, m, cmd)

	if len(svc.queries) != 1 {
		t.Fatalf("expected one query, got %d", len(svc.queries))
	}
	q := svc.queries[0]
	if q.MediaID != "m1" || q.Page != 0 || q.Size != DefaultPageSize || q.Replied != nil {
		t.Fatalf("unexpected query: %+v", q)
	}
	if len(m.Rows()) != 1 || m.totalPages != 3 {
		t.Fatalf("unexpected state: rows=%d pages=%d", len(m.Rows()), m.totalPages)
	}
}

func TestPaging_BoundedByTotalPages(t *testing.T) {
	svc := &recordingComments{page: domain.CommentPage{TotalPages: 2}}
	m := New(svc, 10)
	m, cmd := m.SetMedia(domain.Media{ID: "m1"})
	m = settle(t, m, cmd)

	m, cmd = m.Update(runes("h"))
	if cmd != nil || m.Page() != 0 {
		t.Fatalf("prev on the first page should do nothing")
	}
	m, cmd = m.Update(runes("l"))
	m = settle(t, m, cmd)
	if m.Page() != 1 || svc.queries[1].Page != 1 {
		t.Fatalf("expected page 1, got %d", m.Page())
	}
	m, cmd = m.Update(runes("l"))
	if cmd != nil || m.Page() != 1 {
		t.Fatalf("next on the last page should do nothing")
	}
}

func TestFilterKey_ResetsToFirstPage(t *testing.T) {
	svc := &recordingComments{page: domain.CommentPage{TotalPages: 5}}
	m := New(svc, 10)
	m, cmd := m.SetMedia(domain.Media{ID: "m1"})
	m = settle(t, m, cmd)
	m, cmd = m.Update(runes("l"))
	m = settle(t, m, cmd)

	m, cmd = m.Update(runes("f"))
	m = settle(t, m, cmd)
	last := svc.queries[len(svc.queries)-1]
	if m.Page() != 0 || last.Page != 0 || last.Replied == nil || !*last.Replied {
		t.Fatalf("filter change should reload page 0 with replied=true, got %+v", last)
	}
}

func TestPageSizeKey_Cycles(t *testing.T) {
	svc := &recordingComments{}
	m := New(svc, 25)
	m, cmd := m.SetMedia(domain.Media{ID: "m1"})
	m = settle(t, m, cmd)

	m, cmd = m.Update(runes("s"))
	m = settle(t, m, cmd)
	if m.Size() != 50 {
		t.Fatalf("expected 50, got %d", m.Size())
	}
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	m := New(&recordingComments{}, 10)
	m, _ = m.SetMedia(domain.Media{ID: "m1"})
	if _, cmd := m.Update(runes("f")); cmd != nil {
		t.Fatalf("filter should be disabled while loading")
	}
}

func TestLoadError_IsShown(t *testing.T) {
	svc := &recordingComments{err: errors.New("503")}
	m := New(svc, 10)
	m, cmd := m.SetMedia(domain.Media{ID: "m1"})
	m = settle(t, m, cmd)
	if m.err == nil || m.loading {
		t.Fatalf("expected error state")
	}
}

func TestStalePage_IsIgnored(t *testing.T) {
	m := New(&recordingComments{}, 10)
	m, _ = m.SetMedia(domain.Media{ID: "m1"})
	m, _ = m.Update(PageLoadedMsg{ReqSeq: m.reqSeq - 1, Page: domain.CommentPage{Comments: []domain.Comment{{}}}})
	if len(m.Rows()) != 0 || !m.loading {
		t.Fatalf("stale page should be ignored")
	}
}
