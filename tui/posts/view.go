package posts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/postboard/domain"
	"github.com/CrestNiraj12/postboard/tui/common"
)

const (
	defaultWidth = 80
	maxCardWidth = 100
	// Heading (3) + help (2) + status line (2).
	reservedLines = 7
)

// View renders the list. Loading wins over error, error wins over posts.
func (m Model) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("\n  %s Loading posts...\n", m.spinner.View()))
		return b.String()

	case m.errMsg != "":
		b.WriteString("\n")
		b.WriteString(common.ErrorStyle.Render("  " + m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(common.HelpLine(m.keys.Refresh, m.keys.Quit))
		return b.String()
	}

	b.WriteString(common.AppTitleStyle.Render("Blog Posts"))
	b.WriteString("\n")

	if len(m.posts) == 0 {
		b.WriteString(common.MutedStyle.Render("  No posts available."))
		b.WriteString("\n\n")
		b.WriteString(common.HelpLine(m.keys.Refresh, m.keys.Quit))
		return b.String()
	}

	end := m.startIndex + m.visibleCount()
	if end > len(m.posts) {
		end = len(m.posts)
	}
	cards := make([]string, 0, end-m.startIndex)
	for i := m.startIndex; i < end; i++ {
		cards = append(cards, m.renderCard(i))
	}
	b.WriteString(strings.Join(cards, "\n"))
	b.WriteString("\n")

	b.WriteString(common.StatusBarStyle.Render(fmt.Sprintf("  Post %d of %d", m.cursor+1, len(m.posts))))
	b.WriteString("\n")
	b.WriteString(common.HelpLine(m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Refresh, m.keys.Quit))
	return b.String()
}

func (m Model) cardWidth() int {
	w := m.width - 2
	if m.width <= 0 {
		w = defaultWidth
	}
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) renderCard(i int) string {
	p := m.posts[i]
	width := m.cardWidth()
	// Border and horizontal padding take two columns each.
	inner := width - 4

	lines := make([]string, 0, 4)
	if p.HasImage {
		lines = append(lines, common.ImageStyle.Render(imageLabel(p)))
	}
	lines = append(lines,
		common.TitleStyle.Width(inner).Render(p.Title),
		common.ContentStyle.Width(inner).Render(common.Excerpt(p.Content, common.ExcerptLength)),
		"Posted by: "+common.AuthorStyle.Render(p.AuthorUsername)+
			"  "+common.TimestampStyle.Render("Date: "+common.FormatDate(p.CreatedAt, m.locale)),
	)
	body := clampLinesToWidth(strings.Join(lines, "\n"), inner)

	style := common.UnselectedStyle
	if i == m.cursor {
		style = common.SelectedStyle
	}
	return style.Width(width - 2).Render(body)
}

func imageLabel(p domain.Post) string {
	if p.ImageURL == "" {
		return "[image] " + p.Title
	}
	return "[image] " + p.ImageURL
}

func clampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Truncate(ln, width, "…")
	}
	return strings.Join(lines, "\n")
}

// listHeight is the number of terminal lines available for cards.
// Zero means the size is unknown and every card is shown.
func (m Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-reservedLines, 1)
}

// visibleCount is how many cards starting at startIndex fit on screen.
// At least one card is always shown.
func (m Model) visibleCount() int {
	avail := m.listHeight()
	if avail == 0 {
		return len(m.posts)
	}
	used, n := 0, 0
	for i := m.startIndex; i < len(m.posts); i++ {
		h := lipgloss.Height(m.renderCard(i))
		if n > 0 && used+h > avail {
			break
		}
		used += h
		n++
	}
	return max(n, 1)
}

// ensureCursorVisible scrolls so the selected card is on screen.
func (m *Model) ensureCursorVisible() {
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
		return
	}
	avail := m.listHeight()
	if avail == 0 {
		return
	}
	for m.startIndex < m.cursor && m.spanHeight(m.startIndex, m.cursor) > avail {
		m.startIndex++
	}
}

func (m Model) spanHeight(from, to int) int {
	total := 0
	for i := from; i <= to && i < len(m.posts); i++ {
		total += lipgloss.Height(m.renderCard(i))
	}
	return total
}
