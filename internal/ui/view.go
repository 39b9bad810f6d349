package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"jot/internal/config"
	"jot/internal/notes"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pillStyle     = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	idlePillStyle = pillStyle.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	alertStyle    = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("196")).Padding(0, 2).Bold(true)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33"))
	disabledStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244")).Background(lipgloss.Color("237"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("jot"))
	b.WriteString("\n\n")

	if m.route == routeAdd {
		b.WriteString(m.renderAddRoute())
	} else {
		b.WriteString(m.renderFilterBar())
		b.WriteString("\n\n")
		b.WriteString(m.renderNoteList())
	}

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert + "\n\n" + mutedStyle.Render("press enter to dismiss")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.renderHelp()))
	return b.String()
}

func (m Model) renderHelp() string {
	k := m.cfg.Keys
	switch {
	case m.route == routeAdd:
		return fmt.Sprintf("tab next field • ←/→ category • %s add • %s back", k.Save, k.Cancel)
	case m.editing:
		return fmt.Sprintf("tab switch field • %s save • %s cancel", k.Save, k.Cancel)
	default:
		return renderListHelp(k)
	}
}

func renderListHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s/%s or 1-4 filter • %s add • %s edit • %s delete • %s quit",
		k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Add, k.Edit, k.Delete, k.Quit)
}

func (m Model) renderFilterBar() string {
	var pills []string
	for _, f := range notes.Filters() {
		style := idlePillStyle
		if f == m.filter {
			bg := "236"
			if f != notes.All {
				bg = notes.Category(f).Color()
			}
			style = pillStyle.Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color(bg))
		}
		pills = append(pills, style.Render(f.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}

func (m Model) renderNoteList() string {
	if len(m.visible) == 0 {
		if m.filter == notes.All {
			return mutedStyle.Render(fmt.Sprintf("Your notes will appear here... press '%s' to add one.", m.cfg.Keys.Add))
		}
		return mutedStyle.Render(fmt.Sprintf("No %s notes.", strings.ToLower(m.filter.Label())))
	}
	cards := make([]string, 0, len(m.visible))
	for i, n := range m.visible {
		cards = append(cards, m.renderCard(n, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderCard(n notes.Note, selected bool) string {
	inner := m.cardWidth()
	style := cardStyle.Width(inner)
	if selected {
		style = style.BorderForeground(lipgloss.Color(n.Category.Color()))
	}

	var b strings.Builder
	b.WriteString(categoryTag(n.Category))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(humanize.RelTime(n.CreatedAt(), m.now(), "ago", "from now")))
	b.WriteString("\n")

	if m.editing && n.ID == m.editID {
		b.WriteString(m.edit.title.View())
		b.WriteString("\n")
		b.WriteString(m.edit.content.View())
		return style.Render(b.String())
	}

	b.WriteString(titleStyle.Render(runewidth.Truncate(n.Title, inner, "…")))
	b.WriteString("\n")
	b.WriteString(n.Content)
	return style.Render(b.String())
}

func (m Model) renderAddRoute() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New Note"))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Category", m.add.focus == fieldCategory))
	b.WriteString("\n")
	var opts []string
	for _, c := range notes.Categories() {
		label := c.Label()
		if c == m.add.category {
			opts = append(opts, pillStyle.Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color(c.Color())).Render(label))
		} else {
			opts = append(opts, idlePillStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, opts...))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Title", m.add.focus == fieldTitle))
	b.WriteString("\n")
	b.WriteString(m.add.title.View())
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Content", m.add.focus == fieldContent))
	b.WriteString("\n")
	b.WriteString(m.add.content.View())
	b.WriteString("\n\n")

	if m.add.ready() {
		b.WriteString(buttonStyle.Render("Add Note"))
	} else {
		b.WriteString(disabledStyle.Render("Add Note"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) cardWidth() int {
	return clampWidth(m.width - 6)
}

func categoryTag(c notes.Category) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color())).Render("■")
	return swatch + " " + string(c)
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return titleStyle.Render("> " + name)
	}
	return mutedStyle.Render("  " + name)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
