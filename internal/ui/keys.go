package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"bibtui/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode == ModeInput {
		return m.handleEditingKey(key)
	}
	return m.handleCommandKey(key)
}

func (m *Model) handleCommandKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "h":
		m.setScreen(ScreenHome)
	case "s":
		m.setScreen(ScreenBooks)
	case "b":
		m.setScreen(ScreenBookForm)
	case "l":
		m.setScreen(ScreenArticles)
	case "a":
		m.setScreen(ScreenArticleForm)
	case "up":
		m.moveSelection(-1)
	case "down":
		m.moveSelection(1)
	case "ctrl+u":
		return m.beginUpdate()
	case "ctrl+d":
		return m.deleteSelected()
	case m.keys.EnterEdit:
		return m.enterInputMode()
	case m.keys.Save:
		return m.saveForm()
	}
	return nil
}

// handleEditingKey intercepts only the exit and save bindings; every other
// key is the textarea's business, including the navigation mnemonics.
func (m *Model) handleEditingKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case m.keys.ExitEdit:
		m.updating = false
		m.updateCiteKey = ""
		m.exitInputMode()
		return nil
	case m.keys.Save:
		return m.saveForm()
	}
	var cmd tea.Cmd
	switch m.screen {
	case ScreenBookForm:
		m.bookForm, cmd = m.bookForm.Update(key)
	case ScreenArticleForm:
		m.articleForm, cmd = m.articleForm.Update(key)
	}
	return cmd
}

func (m *Model) enterInputMode() tea.Cmd {
	switch m.screen {
	case ScreenBookForm:
		m.mode = ModeInput
		events.UI.Mode(m.mode.String())
		return m.bookForm.Focus()
	case ScreenArticleForm:
		m.mode = ModeInput
		events.UI.Mode(m.mode.String())
		return m.articleForm.Focus()
	}
	return nil
}

func (m *Model) exitInputMode() {
	m.mode = ModeCommand
	m.bookForm.Blur()
	m.articleForm.Blur()
	events.UI.Mode(m.mode.String())
}

func (m *Model) moveSelection(delta int) {
	switch m.screen {
	case ScreenBooks:
		m.bookCursor.Seed(len(m.books))
		if delta < 0 {
			m.bookCursor.Up(len(m.books))
		} else {
			m.bookCursor.Down(len(m.books))
		}
		if idx, ok := m.bookCursor.Selected(); ok {
			events.UI.Cursor("books", idx)
		}
	case ScreenArticles:
		m.articleCursor.Seed(len(m.articles))
		if delta < 0 {
			m.articleCursor.Up(len(m.articles))
		} else {
			m.articleCursor.Down(len(m.articles))
		}
		if idx, ok := m.articleCursor.Selected(); ok {
			events.UI.Cursor("articles", idx)
		}
	}
}
