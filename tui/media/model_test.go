package media

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

type stubMedia struct {
	page domain.MediaPage
	err  error
}

func (s stubMedia) ListMedia(context.Context, string) (domain.MediaPage, error) {
	return s.page, s.err
}

func (stubMedia) FetchAndStoreComments(context.Context, string, int) (domain.SyncResult, error) {
	return domain.SyncResult{}, nil
}

func loadedModel() Model {
	m := New(stubMedia{}, "acct")
	m, _ = m.Update(MediaLoadedMsg{ReqSeq: m.reqSeq, Page: domain.MediaPage{Items: sampleMedia()}})
	return m
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func navigateTarget(t *testing.T, cmd tea.Cmd) common.NavigateMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a navigate command")
	}
	nav, ok := cmd().(common.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg")
	}
	return nav
}

func TestInit_LoadsMedia(t *testing.T) {
	m := New(stubMedia{page: domain.MediaPage{Items: sampleMedia(), Next: "cur"}}, "acct")
	msg := m.fetch(m.reqSeq)()
	m, _ = m.Update(msg)
	if len(m.Visible()) != 4 || m.loading {
		t.Fatalf("expected loaded media, got %d", len(m.Visible()))
	}
}

func TestLoadError_IsShown(t *testing.T) {
	m := New(stubMedia{err: errors.New("boom")}, "acct")
	m, _ = m.Update(m.fetch(m.reqSeq)())
	if m.err == nil {
		t.Fatalf("expected an error state")
	}
}

func TestStaleLoad_IsIgnored(t *testing.T) {
	m := loadedModel()
	m, _ = m.Update(MediaLoadedMsg{ReqSeq: m.reqSeq - 1})
	if len(m.Visible()) != 4 {
		t.Fatalf("stale load should not replace media")
	}
}

func TestTyping_OpensSuggestionsAndEnterOpensFirst(t *testing.T) {
	m := loadedModel()
	m = typeText(m, "s")
	if !m.open || len(m.Suggestions()) == 0 {
		t.Fatalf("typing should open suggestions")
	}
	m = typeText(m, "cenes")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	nav := navigateTarget(t, cmd)
	if nav.To != common.RouteActions || nav.Media.ID != "17842" {
		t.Fatalf("unexpected navigation: %+v", nav)
	}
}

func TestArrows_CycleSuggestions(t *testing.T) {
	m := loadedModel()
	m = typeText(m, "t") // "Summer SALE starts now", "Behind the scenes", "Été photo walk"
	n := len(m.Suggestions())
	if n != 3 {
		t.Fatalf("expected 3 suggestions, got %d", n)
	}
	for range n + 1 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.activeIdx != 0 {
		t.Fatalf("highlight should wrap to the first entry, got %d", m.activeIdx)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.activeIdx != n-1 {
		t.Fatalf("highlight should wrap to the last entry, got %d", m.activeIdx)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if nav := navigateTarget(t, cmd); nav.Media.ID != m.Suggestions()[n-1].ID {
		t.Fatalf("enter should open the highlighted suggestion")
	}
}

func TestEsc_ClosesThenClears(t *testing.T) {
	m := loadedModel()
	m = typeText(m, "sale")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.open || m.Query() != "sale" {
		t.Fatalf("first esc should only close suggestions")
	}
	if len(m.Visible()) != 2 {
		t.Fatalf("list should stay filtered, got %d", len(m.Visible()))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Query() != "" || len(m.Visible()) != 4 {
		t.Fatalf("second esc should clear the search")
	}
}

func TestEnter_WithoutSearchOpensSelectedItem(t *testing.T) {
	m := loadedModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if nav := navigateTarget(t, cmd); nav.Media.ID != "17842" {
		t.Fatalf("expected second item, got %+v", nav.Media)
	}
}
