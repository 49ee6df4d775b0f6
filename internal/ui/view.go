package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"bibtui/internal/catalog"
)

const (
	formLabelWidth = 11
	listMinWidth   = 24
	listFraction   = 0.4
)

var menuEntries = []struct {
	key   string
	label string
}{
	{"h", "Home"},
	{"s", "Show Books"},
	{"b", "Book Add"},
	{"l", "List Articles"},
	{"a", "Article Add"},
	{"q", "Quit"},
}

// menuIndex maps the active screen onto its menu entry; Quit has none.
func menuIndex(s Screen) int {
	switch s {
	case ScreenHome:
		return 0
	case ScreenBooks:
		return 1
	case ScreenBookForm:
		return 2
	case ScreenArticles:
		return 3
	case ScreenArticleForm:
		return 4
	default:
		return -1
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case ScreenBooks:
		body = m.viewList("Books", m.bookRows(), m.bookDetail())
	case ScreenArticles:
		body = m.viewList("Articles", m.articleRows(), m.articleDetail())
	case ScreenBookForm:
		body = m.viewForm("Book", catalog.BookForm, m.bookForm.View())
	case ScreenArticleForm:
		body = m.viewForm("Article", catalog.ArticleForm, m.articleForm.View())
	default:
		body = m.viewHome()
	}
	footer := m.styles.Footer.Render("↑/↓ move  ctrl+u edit selected  ctrl+d delete selected  q quit")
	sections := []string{m.viewMenu(), "", body, "", m.viewStatus(), footer}
	return strings.Join(sections, "\n")
}

func (m *Model) viewMenu() string {
	active := menuIndex(m.screen)
	parts := make([]string, 0, len(menuEntries))
	for i, entry := range menuEntries {
		key := m.styles.MenuKey.Render(entry.key)
		rest := entry.label[1:]
		if i == active {
			parts = append(parts, m.styles.MenuActive.Render(entry.key+rest))
			continue
		}
		parts = append(parts, key+m.styles.MenuLabel.Render(rest))
	}
	return " " + strings.Join(parts, "   ")
}

func (m *Model) viewHome() string {
	welcome := strings.Join([]string{
		m.styles.PaneTitle.Render("Bibliographic catalog"),
		"",
		m.styles.Detail.Render("Pick a view from the menu above."),
		m.styles.Detail.Render("Lists refresh on their own while the session runs."),
	}, "\n")
	hotkeys := strings.Join([]string{
		m.styles.PaneTitle.Render("Editing hotkeys"),
		"",
		m.styles.Hint.Render(fmt.Sprintf("%-8s start editing the open form", m.keys.EnterEdit)),
		m.styles.Hint.Render(fmt.Sprintf("%-8s save the form", m.keys.Save)),
		m.styles.Hint.Render(fmt.Sprintf("%-8s discard and leave input mode", m.keys.ExitEdit)),
		m.styles.Hint.Render("ctrl+u   edit the selected entry"),
		m.styles.Hint.Render("ctrl+d   delete the selected entry"),
	}, "\n")
	left := m.styles.PaneBorder.Render(welcome)
	right := m.styles.PaneBorder.Render(hotkeys)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m *Model) viewList(title string, rows []string, detail string) string {
	listW := m.listColumnWidth()
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, m.styles.PaneTitle.Render(title))
	if len(rows) == 0 {
		lines = append(lines, m.styles.Detail.Render("(no entries)"))
	}
	lines = append(lines, rows...)
	left := strings.Join(padRows(lines, listW), "\n")
	if detail == "" {
		return left
	}
	right := m.styles.PaneBorder.Render(detail)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m *Model) bookRows() []string {
	selected, active := m.bookCursor.Selected()
	rows := make([]string, 0, len(m.books))
	for i, book := range m.books {
		rows = append(rows, m.listRow(book.Title, active && i == selected))
	}
	return rows
}

func (m *Model) articleRows() []string {
	selected, active := m.articleCursor.Selected()
	rows := make([]string, 0, len(m.articles))
	for i, article := range m.articles {
		rows = append(rows, m.listRow(article.Title, active && i == selected))
	}
	return rows
}

func (m *Model) listRow(title string, selected bool) string {
	text := truncateText(title, m.listColumnWidth()-2)
	if selected {
		return m.styles.SelectedItem.Render("▌ " + text)
	}
	return m.styles.ListItem.Render("  " + text)
}

func (m *Model) bookDetail() string {
	book, ok := m.selectedBook()
	if !ok {
		return ""
	}
	return m.detailPane(catalog.BookForm, book.Fields().Slice())
}

func (m *Model) articleDetail() string {
	article, ok := m.selectedArticle()
	if !ok {
		return ""
	}
	return m.detailPane(catalog.ArticleForm, article.Fields().Slice())
}

func (m *Model) detailPane(form []catalog.FormField, values []string) string {
	lines := make([]string, 0, len(form))
	for i, field := range form {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		label := fmt.Sprintf("%*s", formLabelWidth, field.Label)
		lines = append(lines, m.styles.Hint.Render(label)+"  "+m.styles.Detail.Render(value))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewForm(noun string, form []catalog.FormField, area string) string {
	title := "New " + noun
	if m.updating {
		title = "Update " + noun
	}
	labels := make([]string, 0, len(form))
	for _, field := range form {
		style := m.styles.Optional
		if field.Required {
			style = m.styles.Required
		}
		labels = append(labels, style.Render(fmt.Sprintf("%*s", formLabelWidth, field.Label)))
	}
	hint := m.styles.Hint.Render(fmt.Sprintf("%s edit  %s save  %s discard  one field per line",
		m.keys.EnterEdit, m.keys.Save, m.keys.ExitEdit))
	body := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(labels, "\n"), "  ", area)
	return strings.Join([]string{m.styles.PaneTitle.Render(title), "", body, "", hint}, "\n")
}

func (m *Model) viewStatus() string {
	mode := m.styles.Hint.Render("[" + m.mode.String() + "]")
	if m.errMsg != "" {
		return mode + " " + m.styles.Error.Render("Error: "+m.errMsg)
	}
	if m.infoMsg != "" {
		return mode + " " + m.styles.Info.Render(m.infoMsg)
	}
	return mode
}

func (m *Model) listColumnWidth() int {
	if m.width <= 0 {
		return listMinWidth
	}
	w := int(float64(m.width) * listFraction)
	if w < listMinWidth {
		w = listMinWidth
	}
	return w
}

// padRows pads or truncates every row to exactly width visible columns so
// JoinHorizontal keeps the detail pane flush regardless of row length.
func padRows(rows []string, width int) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		w := lipgloss.Width(row)
		if w > width {
			out[i] = truncate.StringWithTail(row, uint(width-1), "…")
		} else {
			out[i] = row + strings.Repeat(" ", width-w)
		}
	}
	return out
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
