package autoreply

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/replydesk/app/reply"
	"github.com/CrestNiraj12/replydesk/tui/common"
)

// View renders the form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("🤖 Auto reply"))
	b.WriteString(" ")
	b.WriteString(common.MediaIDStyle.Render(m.media.ID))
	b.WriteString("\n")
	if c := strings.TrimSpace(m.media.Caption); c != "" {
		b.WriteString(common.TaglineStyle.Render(common.Truncate(c, 76)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	chips := make([]string, 0, len(Chips))
	for _, c := range Chips {
		if c == m.keyword.Value() {
			chips = append(chips, common.ChipActiveStyle.Render(c))
		} else {
			chips = append(chips, common.ChipStyle.Render(c))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("  " + common.TimestampStyle.Render("Tip: use narrow keywords"))
	b.WriteString("\n\n")

	b.WriteString(m.keyword.View())
	b.WriteString("\n\n")
	b.WriteString(m.message.View())
	b.WriteString("\n")
	b.WriteString(common.TimestampStyle.Render(fmt.Sprintf("%d characters", len([]rune(strings.TrimSpace(m.message.Value()))))))
	b.WriteString("\n\n")

	limit := fmt.Sprintf("Limit: − %d +", m.limit)
	if m.focus == limitField {
		b.WriteString(common.ActionActiveStyle.Render("› " + limit))
	} else {
		b.WriteString(common.ActionInactiveStyle.Render("  " + limit))
	}
	b.WriteString("\n\n")

	switch {
	case m.running:
		b.WriteString(common.ButtonDisabledStyle.Render(m.spinner.View() + " Running…"))
	case !m.Valid():
		b.WriteString(common.ButtonDisabledStyle.Render("ctrl+s  Run auto reply"))
	default:
		b.WriteString(common.ButtonStyle.Render("ctrl+s  Run auto reply"))
	}
	b.WriteString("\n")

	if m.notice != nil {
		b.WriteString("\n")
		if m.notice.Tone == reply.ToneWarn {
			b.WriteString(common.ErrorStyle.Render(m.notice.Text))
		} else {
			b.WriteString(common.SuccessStyle.Render(m.notice.Text))
		}
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render(
		"tab next field • ctrl+n keyword chip • +/- limit • ctrl+s run • esc back"))
	return b.String()
}
