package media

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/replydesk/domain"
	"github.com/CrestNiraj12/replydesk/infra/replyapi"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

// View renders the media list.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("📸 ReplyDesk"))
	b.WriteString(common.TaglineStyle.Render("your posts"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	suggestions := m.Suggestions()
	if m.open && len(suggestions) > 0 {
		for i, s := range suggestions {
			line := common.Truncate(captionOr(s), m.contentWidth()-2)
			if i == m.activeIdx {
				b.WriteString(common.ActionActiveStyle.Render("› " + line))
			} else {
				b.WriteString(common.ActionInactiveStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View() + " Loading media...\n")
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("Error: " + replyapi.Message(m.err)))
		b.WriteString("\n")
	default:
		visible := m.Visible()
		if len(visible) == 0 {
			if q := strings.TrimSpace(m.Query()); q != "" {
				b.WriteString(common.TimestampStyle.Render(fmt.Sprintf("No posts match %q.", q)))
			} else {
				b.WriteString(common.TimestampStyle.Render("No media yet."))
			}
			b.WriteString("\n")
			break
		}
		start, end := m.window(len(visible))
		for i := start; i < end; i++ {
			b.WriteString(m.renderItem(visible[i], i == m.cursor))
			b.WriteString("\n")
		}
		if m.next != "" {
			b.WriteString(common.TimestampStyle.Render("More posts are available on the service."))
			b.WriteString("\n")
		}
	}

	b.WriteString(common.StatusBarStyle.Render(
		"type to search • ↑/↓ move • enter open • esc close/clear • ctrl+u clear • ctrl+r refresh • ctrl+c quit"))
	return b.String()
}

func (m Model) renderItem(item domain.Media, selected bool) string {
	width := m.contentWidth()
	head := common.MediaIDStyle.Render(item.ID)
	if item.MediaType != "" {
		head += " " + common.TimestampStyle.Render(strings.ToLower(item.MediaType))
	}
	body := common.ContentStyle.Render(common.Truncate(captionOr(item), width-4))
	if url := item.PreviewURL(); url != "" {
		body += "\n" + common.TimestampStyle.Render(common.Truncate(url, width-4))
	}
	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(width).Render(head + "\n" + body)
}

func (m Model) window(n int) (int, int) {
	room := n
	if m.height > 0 {
		room = max(1, (m.height-12)/5)
	}
	start := 0
	if m.cursor >= room {
		start = m.cursor - room + 1
	}
	return start, min(n, start+room)
}

func captionOr(m domain.Media) string {
	if c := strings.TrimSpace(m.Caption); c != "" {
		return c
	}
	return "(no caption)"
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return max(20, m.width-6)
}
