package comments

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/replydesk/infra/replyapi"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

// View renders the comments screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("💬 Unreplied comments"))
	b.WriteString(" ")
	b.WriteString(common.MediaIDStyle.Render(m.media.ID))
	b.WriteString("\n")
	if caption := strings.TrimSpace(m.media.Caption); caption != "" {
		b.WriteString(common.TaglineStyle.Render(common.Truncate(caption, m.contentWidth())))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderSendAll())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(common.ErrorStyle.Render("Error: " + replyapi.Message(m.err)))
		b.WriteString("\n")
		b.WriteString(common.TimestampStyle.Render("Press ctrl+r to retry."))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View() + " Loading comments...\n")
	case len(m.items) == 0 && m.err == nil:
		b.WriteString(common.SuccessStyle.Render("✅ No unreplied comments found."))
		b.WriteString("\n")
	default:
		start, end := m.window()
		for i := start; i < end; i++ {
			b.WriteString(m.renderComment(i))
			b.WriteString("\n")
		}
		if m.loading {
			b.WriteString(m.spinner.View() + " Refreshing...\n")
		}
	}

	b.WriteString(common.StatusBarStyle.Render(
		"↑/↓ select • type to draft • enter send • ctrl+s send all • ctrl+e $EDITOR • ctrl+r refresh • esc back"))
	return b.String()
}

func (m Model) renderSendAll() string {
	label := fmt.Sprintf("ctrl+s  Send All (%d)", countPending(m))
	switch {
	case m.sendingAll:
		return common.ButtonDisabledStyle.Render("Sending…")
	case !m.drafts.HasPending():
		return common.ButtonDisabledStyle.Render(label)
	default:
		return common.ButtonStyle.Render(label)
	}
}

func (m Model) renderComment(i int) string {
	c := m.items[i]
	width := m.contentWidth()

	header := common.AvatarStyle.Render(common.Initials(c.Username)) + " " +
		common.AuthorStyle.Render(common.DisplayName(c.Username))
	if !c.CommentedAt.IsZero() {
		header += " " + common.TimestampStyle.Render(c.CommentedAt.Local().Format("Jan 2 15:04"))
	}

	lines := []string{header, common.ContentStyle.Render(common.Truncate(c.Text, width))}
	if i == m.cursor {
		if m.sendingOne[c.CommentID] {
			lines = append(lines, m.spinner.View()+" Sending...")
		} else {
			lines = append(lines, m.input.View())
		}
		return common.SelectedStyle.Width(width).Render(strings.Join(lines, "\n"))
	}
	if d := m.drafts.Get(c.CommentID); !isBlank(d) {
		lines = append(lines, common.DraftStyle.Render("✎ "+common.Truncate(d, width-2)))
	}
	return common.UnselectedStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// window returns the slice of items that fits the terminal, keeping the
// cursor visible.
func (m Model) window() (int, int) {
	perItem := 5
	room := len(m.items)
	if m.height > 0 {
		room = max(1, (m.height-10)/perItem)
	}
	start := 0
	if m.cursor >= room {
		start = m.cursor - room + 1
	}
	return start, min(len(m.items), start+room)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return max(20, m.width-6)
}

func countPending(m Model) int {
	n := 0
	for range m.drafts.NonEmpty() {
		n++
	}
	return n
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
