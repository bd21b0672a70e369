package comments

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/infra/replyapi"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

// Update handles messages for the comments screen.
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

	case CommentsLoadedMsg:
		if msg.Gen != m.gen || msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.items = msg.Page.Comments
		m.clampCursor()
		m.syncInput()
		return m, nil

	case CommentsErrorMsg:
		if msg.Gen != m.gen || msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ReplySentMsg:
		return m.handleReplySent(msg)

	case BatchSentMsg:
		return m.handleBatchSent(msg)

	case draftEditedMsg:
		return m.handleDraftEdited(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, common.Navigate(common.RouteActions, m.media)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.syncInput()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.syncInput()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.reqSeq++
		m.loading = true
		return m, m.fetchUnreplied(m.reqSeq)

	case key.Matches(msg, m.keys.Enter):
		return m.submitSelected()

	case key.Matches(msg, m.keys.SendAll):
		return m.submitAll()

	case key.Matches(msg, m.keys.Editor):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.openEditor(c)
	}

	c, ok := m.selected()
	if !ok {
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Only the operator's own edits reach the draft. The input shows editor
	// drafts on one line, so comparing it against the store would flatten them.
	if v := m.input.Value(); v != before {
		m.drafts.Set(c.CommentID, v)
	}
	return m, cmd
}

// submitSelected sends the selected comment's draft. A blank draft or a send
// already in flight for the same comment is ignored.
func (m Model) submitSelected() (Model, tea.Cmd) {
	c, ok := m.selected()
	if !ok || m.sendingOne[c.CommentID] {
		return m, nil
	}
	text := m.drafts.Get(c.CommentID)
	if isBlank(text) {
		return m, nil
	}
	m.sendingOne[c.CommentID] = true
	return m, m.sendOne(c.CommentID, c.Username, text)
}

// submitAll snapshots every non-empty draft and sends them concurrently.
func (m Model) submitAll() (Model, tea.Cmd) {
	if m.sendingAll {
		return m, nil
	}
	batch := m.drafts.Snapshot()
	if len(batch) == 0 {
		return m, nil
	}
	m.sendingAll = true
	return m, m.sendAll(batch, m.usernames())
}

func (m Model) handleReplySent(msg ReplySentMsg) (Model, tea.Cmd) {
	out := msg.Outcome
	name := common.DisplayName(out.Username)
	var notify tea.Cmd
	if out.OK() {
		notify = common.Notify("Reply sent to "+name, reply.ToneOK)
	} else {
		notify = common.Notify("Failed to send to "+name+": "+replyapi.Message(out.Err), reply.ToneWarn)
	}
	if msg.Gen != m.gen {
		return m, notify
	}

	delete(m.sendingOne, out.CommentID)
	if !out.OK() {
		return m, notify
	}
	m.drafts.Clear(out.CommentID)
	m.syncInput()
	m.reqSeq++
	m.loading = true
	return m, tea.Batch(m.fetchUnreplied(m.reqSeq), notify)
}

func (m Model) handleBatchSent(msg BatchSentMsg) (Model, tea.Cmd) {
	summary := reply.Summarize(msg.Outcomes)
	notify := common.Notify(summary.Message(), summary.Tone())
	if msg.Gen != m.gen {
		return m, notify
	}

	m.sendingAll = false
	// Failed entries are cleared too; the refreshed list shows them again
	// without a draft.
	m.drafts.ClearBatch(msg.Batch)
	m.syncInput()
	m.reqSeq++
	m.loading = true
	return m, tea.Batch(m.fetchUnreplied(m.reqSeq), notify)
}

func (m Model) handleDraftEdited(msg draftEditedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		if msg.Path != "" {
			os.Remove(msg.Path)
		}
		return m, common.Notify("Editor failed: "+msg.Err.Error(), reply.ToneWarn)
	}
	content, err := m.editor.ReadContent(msg.Path)
	if err != nil {
		return m, common.Notify("Editor failed: "+err.Error(), reply.ToneWarn)
	}
	if msg.Gen != m.gen {
		return m, nil
	}
	if n := utf8.RuneCountInString(content); n > maxReplyLength {
		return m, common.Notify(fmt.Sprintf("Draft not saved: %d / %d characters", n, maxReplyLength), reply.ToneWarn)
	}
	m.drafts.Set(msg.CommentID, content)
	m.syncInput()
	return m, m.input.Focus()
}
