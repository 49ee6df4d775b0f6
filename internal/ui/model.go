package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"bibtui/internal/backend"
	"bibtui/internal/catalog"
	"bibtui/internal/logging/events"
	"bibtui/internal/theme"
	"bibtui/internal/ui/state"
)

// Screen enumerates the catalog views the session can sit on.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenBooks
	ScreenBookForm
	ScreenArticles
	ScreenArticleForm
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenBooks:
		return "books"
	case ScreenBookForm:
		return "book-form"
	case ScreenArticles:
		return "articles"
	case ScreenArticleForm:
		return "article-form"
	default:
		return "unknown"
	}
}

// InputMode distinguishes command dispatch from form editing. While in
// ModeInput every key except the configured exit/save bindings belongs to
// the focused textarea.
type InputMode int

const (
	ModeCommand InputMode = iota
	ModeInput
)

func (m InputMode) String() string {
	if m == ModeInput {
		return "input"
	}
	return "command"
}

// Store is the slice of the persistence layer the UI needs.
type Store interface {
	CreateEntry(kind string, form []string) (string, error)
	UpdateEntry(kind, citeKey string, form []string) error
	DeleteEntry(kind, citeKey string) error
	EntryFields(kind, citeKey string) ([]string, error)
	Books() ([]catalog.Book, error)
	Articles() ([]catalog.Article, error)
}

type msgHandler func(tea.Msg) tea.Cmd

// Model is the bubbletea model for the catalog session. It owns both
// cursors and both forms outright; nothing else mutates them, so no
// locking is involved.
type Model struct {
	store   Store
	backend *backend.Watcher
	keys    Keymap
	styles  theme.Styles

	screen Screen
	mode   InputMode

	books    []catalog.Book
	articles []catalog.Article

	bookCursor    state.Cursor
	articleCursor state.Cursor

	bookForm    textarea.Model
	articleForm textarea.Model

	updating      bool
	updateCiteKey string

	errMsg  string
	infoMsg string

	width  int
	height int

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the UI to a store and an optional backend watcher. A nil
// watcher simply means the lists never refresh on their own, which the
// tests rely on.
func NewModel(st Store, watcher *backend.Watcher, keys Keymap) *Model {
	m := &Model{
		store:       st,
		backend:     watcher,
		keys:        keys,
		styles:      theme.Default(),
		screen:      ScreenHome,
		mode:        ModeCommand,
		bookForm:    newForm(len(catalog.BookForm)),
		articleForm: newForm(len(catalog.ArticleForm)),
	}
	m.registerHandlers()
	return m
}

func newForm(lines int) textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(lines)
	return ta
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	msgType := reflect.TypeOf(msg)
	if handler, ok := m.handlers[msgType]; ok {
		return handler
	}
	if msgType != nil && msgType.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[msgType.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	if formWidth := size.Width - formLabelWidth - 6; formWidth > 0 {
		m.bookForm.SetWidth(formWidth)
		m.articleForm.SetWidth(formWidth)
	}
	return nil
}

func (m *Model) setScreen(s Screen) {
	m.screen = s
	m.mode = ModeCommand
	m.errMsg = ""
	m.infoMsg = ""
	switch s {
	case ScreenBooks:
		m.bookCursor.Seed(len(m.books))
	case ScreenArticles:
		m.articleCursor.Seed(len(m.articles))
	}
	events.UI.Screen(s.String())
}
