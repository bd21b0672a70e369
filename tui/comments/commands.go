package comments

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

// CommentsLoadedMsg carries a fresh unreplied list.
type CommentsLoadedMsg struct {
	Gen    int
	ReqSeq int
	Page   domain.CommentPage
}

// CommentsErrorMsg reports a failed list load.
type CommentsErrorMsg struct {
	Gen    int
	ReqSeq int
	Err    error
}

// ReplySentMsg carries the outcome of a single send.
type ReplySentMsg struct {
	Gen     int
	Outcome reply.Outcome
}

// BatchSentMsg carries every outcome of a Send All, in batch order.
type BatchSentMsg struct {
	Gen      int
	Batch    reply.Batch
	Outcomes []reply.Outcome
}

type draftEditedMsg struct {
	Gen       int
	CommentID string
	Path      string
	Err       error
}

func (m Model) fetchUnreplied(reqSeq int) tea.Cmd {
	service := m.service
	mediaID := m.media.ID
	size := m.pageSize
	gen := m.gen
	return func() tea.Msg {
		page, err := service.ListUnreplied(context.Background(), mediaID, 0, size)
		if err != nil {
			return CommentsErrorMsg{Gen: gen, ReqSeq: reqSeq, Err: err}
		}
		return CommentsLoadedMsg{Gen: gen, ReqSeq: reqSeq, Page: page}
	}
}

func (m Model) sendOne(commentID, username, text string) tea.Cmd {
	dispatcher := m.dispatcher
	gen := m.gen
	return func() tea.Msg {
		out, _ := dispatcher.SendOne(context.Background(), commentID, username, text)
		return ReplySentMsg{Gen: gen, Outcome: out}
	}
}

func (m Model) sendAll(batch reply.Batch, usernames map[string]string) tea.Cmd {
	dispatcher := m.dispatcher
	gen := m.gen
	return func() tea.Msg {
		outcomes := dispatcher.SendAll(context.Background(), batch, usernames)
		return BatchSentMsg{Gen: gen, Batch: batch, Outcomes: outcomes}
	}
}

func (m Model) openEditor(c domain.Comment) tea.Cmd {
	if m.editor == nil {
		return nil
	}
	gen := m.gen
	cmd, path, err := m.editor.Cmd(m.drafts.Get(c.CommentID), common.DisplayName(c.Username))
	if err != nil {
		return func() tea.Msg {
			return draftEditedMsg{Gen: gen, CommentID: c.CommentID, Err: err}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return draftEditedMsg{Gen: gen, CommentID: c.CommentID, Path: path, Err: err}
	})
}
