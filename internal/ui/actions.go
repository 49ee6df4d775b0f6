package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bibtui/internal/catalog"
	"bibtui/internal/logging/events"
)

// formValues splits the textarea contents into one value per form line,
// padding short input with empty strings and dropping anything past the
// expected count. The store still rejects malformed forms; this only keeps
// honest editing from tripping the length check.
func formValues(raw string, count int) []string {
	lines := strings.Split(raw, "\n")
	values := make([]string, count)
	copy(values, lines)
	return values
}

func (m *Model) saveForm() tea.Cmd {
	switch m.screen {
	case ScreenBookForm:
		form := formValues(m.bookForm.Value(), len(catalog.BookForm))
		if err := m.persist(catalog.KindBook, form); err != nil {
			m.errMsg = err.Error()
			events.UI.Error(err)
			return nil
		}
		m.bookForm.Reset()
	case ScreenArticleForm:
		form := formValues(m.articleForm.Value(), len(catalog.ArticleForm))
		if err := m.persist(catalog.KindArticle, form); err != nil {
			m.errMsg = err.Error()
			events.UI.Error(err)
			return nil
		}
		m.articleForm.Reset()
	default:
		return nil
	}
	m.updating = false
	m.updateCiteKey = ""
	m.exitInputMode()
	m.errMsg = ""
	m.infoMsg = "saved"
	m.refreshLists()
	return nil
}

func (m *Model) persist(kind string, form []string) error {
	events.UI.Save(kind, m.updating)
	if m.updating {
		return m.store.UpdateEntry(kind, m.updateCiteKey, form)
	}
	_, err := m.store.CreateEntry(kind, form)
	return err
}

// beginUpdate loads the selected row's fields into the matching form and
// drops straight into input mode. Saving then rewrites the row under its
// original cite key.
func (m *Model) beginUpdate() tea.Cmd {
	switch m.screen {
	case ScreenBooks:
		book, ok := m.selectedBook()
		if !ok {
			return nil
		}
		fields, err := m.store.EntryFields(catalog.KindBook, book.CiteKey)
		if err != nil {
			m.errMsg = err.Error()
			events.UI.Error(err)
			return nil
		}
		m.updating = true
		m.updateCiteKey = book.CiteKey
		m.bookForm.SetValue(strings.Join(fields, "\n"))
		m.screen = ScreenBookForm
		m.mode = ModeInput
		events.UI.Screen(m.screen.String())
		events.UI.Mode(m.mode.String())
		return m.bookForm.Focus()
	case ScreenArticles:
		article, ok := m.selectedArticle()
		if !ok {
			return nil
		}
		fields, err := m.store.EntryFields(catalog.KindArticle, article.CiteKey)
		if err != nil {
			m.errMsg = err.Error()
			events.UI.Error(err)
			return nil
		}
		m.updating = true
		m.updateCiteKey = article.CiteKey
		m.articleForm.SetValue(strings.Join(fields, "\n"))
		m.screen = ScreenArticleForm
		m.mode = ModeInput
		events.UI.Screen(m.screen.String())
		events.UI.Mode(m.mode.String())
		return m.articleForm.Focus()
	}
	return nil
}

func (m *Model) deleteSelected() tea.Cmd {
	switch m.screen {
	case ScreenBooks:
		book, ok := m.selectedBook()
		if !ok {
			return nil
		}
		events.UI.Delete(catalog.KindBook, book.CiteKey)
		if err := m.store.DeleteEntry(catalog.KindBook, book.CiteKey); err != nil {
			m.errMsg = err.Error()
			events.UI.Error(err)
			return nil
		}
		if books, err := m.store.Books(); err == nil {
			m.books = books
		}
		m.bookCursor.AdvanceAfterRemoval(len(m.books))
		m.infoMsg = "deleted"
	case ScreenArticles:
		article, ok := m.selectedArticle()
		if !ok {
			return nil
		}
		events.UI.Delete(catalog.KindArticle, article.CiteKey)
		if err := m.store.DeleteEntry(catalog.KindArticle, article.CiteKey); err != nil {
			m.errMsg = err.Error()
			events.UI.Error(err)
			return nil
		}
		if articles, err := m.store.Articles(); err == nil {
			m.articles = articles
		}
		m.articleCursor.AdvanceAfterRemoval(len(m.articles))
		m.infoMsg = "deleted"
	}
	return nil
}

// refreshLists re-reads both lists right after a write so the next frame
// does not wait for the watcher tick.
func (m *Model) refreshLists() {
	if books, err := m.store.Books(); err == nil {
		m.books = books
	} else {
		events.UI.Error(err)
	}
	if articles, err := m.store.Articles(); err == nil {
		m.articles = articles
	} else {
		events.UI.Error(err)
	}
	m.bookCursor.Clamp(len(m.books))
	m.articleCursor.Clamp(len(m.articles))
}

func (m *Model) selectedBook() (catalog.Book, bool) {
	idx, ok := m.bookCursor.Selected()
	if !ok || idx >= len(m.books) {
		return catalog.Book{}, false
	}
	return m.books[idx], true
}

func (m *Model) selectedArticle() (catalog.Article, bool) {
	idx, ok := m.articleCursor.Selected()
	if !ok || idx >= len(m.articles) {
		return catalog.Article{}, false
	}
	return m.articles[idx], true
}
