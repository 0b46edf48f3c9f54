package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// Store is the part of *items.Store the TUI drives.
type Store interface {
	Items() []string
	Get(index int) (string, error)
	Append(text string)
	UpdateAt(index int, text string) error
	RemoveAt(index int) error
	LastPersistError() error
}

// Logger receives diagnostics for the session log.
type Logger interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Settings are the user-facing knobs from the ui config section.
type Settings struct {
	// AllowEmptyItems lets blank input be added or saved as an item
	AllowEmptyItems bool
	// ShowConfirmations shows a toast after each successful change
	ShowConfirmations bool
	// ToastDuration is how long a toast stays on screen
	ToastDuration time.Duration
}

// DefaultSettings returns the settings used when no config is loaded.
func DefaultSettings() Settings {
	return Settings{
		AllowEmptyItems:   false,
		ShowConfirmations: true,
		ToastDuration:     3 * time.Second,
	}
}

// focusArea says which component receives key presses in the list view.
type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// model represents the state of the TUI application.
type model struct {
	store    Store
	logger   Logger
	settings Settings
	keys     keyMap

	// Bubble Tea components
	list  list.Model
	input textinput.Model

	// UI state
	focus focusArea
	edit  *editOverlay
	toast *toastNotification

	// Window dimensions
	width  int
	height int
	ready  bool
}

// itemEntry adapts one stored item to the list component. index is the
// item's position in the store at the time the list was last refreshed.
type itemEntry struct {
	index int
	text  string
}

var lineBreaks = strings.NewReplacer("\r\n", " ⏎ ", "\n", " ⏎ ", "\r", " ⏎ ")

func (i itemEntry) Title() string {
	if i.text == "" {
		return fmt.Sprintf("%d. (empty)", i.index)
	}
	return fmt.Sprintf("%d. %s", i.index, lineBreaks.Replace(i.text))
}

func (i itemEntry) Description() string { return "" }

func (i itemEntry) FilterValue() string { return i.text }

// toastExpiredMsg clears the toast with the matching sequence number
type toastExpiredMsg struct {
	seq int
}

// toastNotification represents a temporary notification message
type toastNotification struct {
	active    bool
	message   string
	details   string
	icon      string
	isError   bool
	seq       int
	showUntil time.Time
}

func newItemDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	d.Styles.NormalTitle = d.Styles.NormalTitle.
		Foreground(brightWhite)
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(coralPink).
		BorderForeground(salmonPink)

	return d
}

func newModel(store Store, settings Settings, logger Logger) *model {
	if logger == nil {
		logger = nopLogger{}
	}

	l := list.New([]list.Item{}, newItemDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// The model owns quitting and help so list keys like esc stay inert.
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.Unbind()
	l.KeyMap.CloseFullHelp.Unbind()

	ti := textinput.New()
	ti.Placeholder = "Add an item..."
	ti.Prompt = "+ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(salmonPink)
	ti.Focus()

	m := &model{
		store:    store,
		logger:   logger,
		settings: settings,
		keys:     defaultKeyMap(),
		list:     l,
		input:    ti,
		focus:    focusInput,
		toast:    &toastNotification{},
	}
	m.refreshList()
	return m
}

// refreshList rebuilds the list rows from the store and keeps the cursor
// inside the new bounds.
func (m *model) refreshList() {
	current := m.store.Items()
	rows := make([]list.Item, len(current))
	for i, text := range current {
		rows[i] = itemEntry{index: i, text: text}
	}
	m.list.SetItems(rows)

	if n := len(rows); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// selected returns the item under the list cursor.
func (m *model) selected() (itemEntry, bool) {
	entry, ok := m.list.SelectedItem().(itemEntry)
	return entry, ok
}

func (m *model) setFocus(area focusArea) {
	m.focus = area
	if area == focusInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

// rejectsText reports whether text may not become an item under the
// current settings.
func (m *model) rejectsText(text string) bool {
	return !m.settings.AllowEmptyItems && strings.TrimSpace(text) == ""
}
