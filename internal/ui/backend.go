package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"bibtui/internal/backend"
	"bibtui/internal/catalog"
	"bibtui/internal/logging"
)

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// waitForBackendEvent blocks on the watcher channel and re-arms itself
// after every delivery. A closed channel retires the subscription.
func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: event}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(event backend.Event) {
	if event.Err != nil {
		m.errMsg = event.Err.Error()
		logging.Error(event.Err)
		return
	}
	switch event.Kind {
	case backend.KindBooks:
		if books, ok := event.Data.([]catalog.Book); ok {
			m.books = books
			m.bookCursor.Clamp(len(m.books))
			if m.screen == ScreenBooks {
				m.bookCursor.Seed(len(m.books))
			}
		}
	case backend.KindArticles:
		if articles, ok := event.Data.([]catalog.Article); ok {
			m.articles = articles
			m.articleCursor.Clamp(len(m.articles))
			if m.screen == ScreenArticles {
				m.articleCursor.Seed(len(m.articles))
			}
		}
	}
}
