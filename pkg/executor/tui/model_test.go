package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/simpletodo/pkg/items"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestStore(t *testing.T, initial ...string) *items.Store {
	t.Helper()
	store := items.NewStore(filepath.Join(t.TempDir(), "todo.txt"))
	store.Load()
	for _, text := range initial {
		store.Append(text)
	}
	return store
}

func newTestModel(t *testing.T, store Store, settings Settings) *model {
	t.Helper()
	m := newModel(store, settings, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func send(m *model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_AddFromInput(t *testing.T) {
	store := newTestStore(t)
	m := newTestModel(t, store, DefaultSettings())

	m.input.SetValue("buy milk")
	cmd := send(m, keyEnter)

	assert.Equal(t, []string{"buy milk"}, store.Items())
	assert.Empty(t, m.input.Value(), "input should be cleared after adding")
	assert.Len(t, m.list.Items(), 1)
	assert.NotNil(t, cmd, "toast expiry should be scheduled")
	assert.True(t, m.toast.active)
	assert.Equal(t, "Item added to list", m.toast.message)
	assert.False(t, m.toast.isError)
}

func TestModel_TypingReachesInput(t *testing.T) {
	store := newTestStore(t)
	m := newTestModel(t, store, DefaultSettings())

	// q only quits from the list; in the input it is just a letter.
	cmd := send(m, runes("q"))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q", m.input.Value())
}

func TestModel_BlankInputRejected(t *testing.T) {
	store := newTestStore(t)
	m := newTestModel(t, store, DefaultSettings())

	m.input.SetValue("   ")
	send(m, keyEnter)

	assert.Empty(t, store.Items())
	assert.True(t, m.toast.isError)
	assert.Equal(t, "Nothing to add", m.toast.message)
}

func TestModel_BlankInputAllowed(t *testing.T) {
	store := newTestStore(t)
	settings := DefaultSettings()
	settings.AllowEmptyItems = true
	m := newTestModel(t, store, settings)

	send(m, keyEnter)

	assert.Equal(t, []string{""}, store.Items())
}

func TestModel_ConfirmationsDisabled(t *testing.T) {
	store := newTestStore(t)
	settings := DefaultSettings()
	settings.ShowConfirmations = false
	m := newTestModel(t, store, settings)

	m.input.SetValue("quiet")
	cmd := send(m, keyEnter)

	assert.Equal(t, []string{"quiet"}, store.Items())
	assert.Nil(t, cmd)
	assert.False(t, m.toast.active)
}

func TestModel_FocusToggle(t *testing.T) {
	m := newTestModel(t, newTestStore(t, "a"), DefaultSettings())
	require.Equal(t, focusInput, m.focus)
	require.True(t, m.input.Focused())

	send(m, keyTab)
	assert.Equal(t, focusList, m.focus)
	assert.False(t, m.input.Focused())

	send(m, keyTab)
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.input.Focused())
}

func TestModel_EditSelectedItem(t *testing.T) {
	store := newTestStore(t, "buy milk", "walk dog")
	m := newTestModel(t, store, DefaultSettings())

	send(m, keyTab, runes("e"))
	require.NotNil(t, m.edit)
	assert.Equal(t, 0, m.edit.index)
	assert.Equal(t, "buy milk", m.edit.input.Value())

	m.edit.input.SetValue("buy oat milk")
	send(m, keyEnter)

	assert.Nil(t, m.edit)
	assert.Equal(t, []string{"buy oat milk", "walk dog"}, store.Items())
	assert.Equal(t, "Item updated", m.toast.message)
}

func TestModel_EditCancel(t *testing.T) {
	store := newTestStore(t, "buy milk")
	m := newTestModel(t, store, DefaultSettings())

	send(m, keyTab, keyEnter)
	require.NotNil(t, m.edit)

	m.edit.input.SetValue("changed")
	send(m, keyEsc)

	assert.Nil(t, m.edit)
	assert.Equal(t, []string{"buy milk"}, store.Items())
	assert.Equal(t, focusList, m.focus)
}

func TestModel_EditToEmptyRejected(t *testing.T) {
	store := newTestStore(t, "keep me")
	m := newTestModel(t, store, DefaultSettings())

	send(m, keyTab, runes("e"))
	m.edit.input.SetValue("")
	send(m, keyEnter)

	assert.NotNil(t, m.edit, "edit view stays open")
	assert.Equal(t, []string{"keep me"}, store.Items())
	assert.True(t, m.toast.isError)
}

func TestModel_RemoveSelectedItem(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("d"), runes("x"), {Type: tea.KeyDelete}} {
		t.Run(k.String(), func(t *testing.T) {
			store := newTestStore(t, "buy milk", "walk dog", "read")
			m := newTestModel(t, store, DefaultSettings())

			send(m, keyTab, keyDown, k)

			assert.Equal(t, []string{"buy milk", "read"}, store.Items())
			assert.Len(t, m.list.Items(), 2)
			assert.Equal(t, "Item removed", m.toast.message)
		})
	}
}

func TestModel_RemoveLastKeepsCursorInBounds(t *testing.T) {
	store := newTestStore(t, "a", "b")
	m := newTestModel(t, store, DefaultSettings())

	send(m, keyTab, keyDown, runes("d"))
	require.Equal(t, []string{"a"}, store.Items())

	entry, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, 0, entry.index)
}

func TestModel_StaleRowShowsIndexError(t *testing.T) {
	store := newTestStore(t, "a", "b")
	m := newTestModel(t, store, DefaultSettings())
	send(m, keyTab, keyDown)

	// Something else shrinks the list behind the model's back.
	require.NoError(t, store.RemoveAt(1))

	send(m, runes("d"))

	assert.Equal(t, []string{"a"}, store.Items())
	assert.True(t, m.toast.isError)
	assert.Equal(t, "Item no longer exists", m.toast.message)
	assert.Contains(t, m.toast.details, "No item at index 1")
	assert.Len(t, m.list.Items(), 1, "list is re-synced with the store")
}

func TestModel_EditReadsCurrentText(t *testing.T) {
	store := newTestStore(t, "a", "b")
	m := newTestModel(t, store, DefaultSettings())
	send(m, keyTab, keyDown)

	require.NoError(t, store.UpdateAt(1, "b changed elsewhere"))
	send(m, runes("e"))
	require.NotNil(t, m.edit)
	assert.Equal(t, "b changed elsewhere", m.edit.input.Value())

	send(m, keyEsc)
	require.NoError(t, store.RemoveAt(1))
	send(m, runes("e"))

	assert.Nil(t, m.edit, "no edit view for a row that is gone")
	assert.Equal(t, "Item no longer exists", m.toast.message)
	assert.Len(t, m.list.Items(), 1)
}

func TestModel_PersistFailureWarns(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
	store := items.NewStore(filepath.Join(blocker, "todo.txt"))
	store.Load()

	m := newTestModel(t, store, DefaultSettings())
	m.input.SetValue("not saved")
	send(m, keyEnter)

	assert.Equal(t, []string{"not saved"}, store.Items(), "memory still holds the item")
	assert.True(t, m.toast.isError)
	assert.Equal(t, "Changes not saved", m.toast.message)
}

func TestModel_CopyToClipboard(t *testing.T) {
	var copied string
	oldClipboard := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}
	defer func() { clipboardWriteAll = oldClipboard }()

	m := newTestModel(t, newTestStore(t, "first", "second"), DefaultSettings())
	send(m, keyTab, keyDown, runes("y"))

	assert.Equal(t, "second", copied)
	assert.Equal(t, "Copied to clipboard", m.toast.message)
}

func TestModel_CopyFailure(t *testing.T) {
	oldClipboard := clipboardWriteAll
	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	defer func() { clipboardWriteAll = oldClipboard }()

	m := newTestModel(t, newTestStore(t, "first"), DefaultSettings())
	send(m, keyTab, runes("y"))

	assert.True(t, m.toast.isError)
	assert.Equal(t, "no clipboard", m.toast.details)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, newTestStore(t), DefaultSettings())
	assert.True(t, isQuit(send(m, keyCtrlC)), "ctrl+c quits from the input")

	send(m, keyTab)
	assert.True(t, isQuit(send(m, runes("q"))), "q quits from the list")

	assert.False(t, isQuit(send(m, keyEsc)), "esc does not quit the list")
}

func TestModel_ListKeysStayInertAfterRefresh(t *testing.T) {
	m := newTestModel(t, newTestStore(t, "a", "b"), DefaultSettings())
	send(m, keyTab)

	// Removing rebuilds the list rows.
	send(m, runes("d"))
	require.Equal(t, []string{"b"}, m.store.Items())

	assert.False(t, isQuit(send(m, keyEsc)), "esc does not quit after a refresh")
	send(m, runes("?"))
	assert.False(t, m.list.Help.ShowAll, "list help stays closed")
}

func TestModel_ToastExpiry(t *testing.T) {
	m := newTestModel(t, newTestStore(t), DefaultSettings())

	m.input.SetValue("one")
	send(m, keyEnter)
	first := m.toast.seq

	m.input.SetValue("two")
	send(m, keyEnter)

	// An expiry for an older toast leaves the newer one alone.
	send(m, toastExpiredMsg{seq: first})
	assert.True(t, m.toast.active)

	send(m, toastExpiredMsg{seq: m.toast.seq})
	assert.False(t, m.toast.active)
}

func TestModel_View(t *testing.T) {
	m := newModel(newTestStore(t), DefaultSettings(), nil)
	assert.Equal(t, "Initializing...", m.View())

	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "Nothing here yet")

	m.input.SetValue("line one\nline two")
	send(m, keyEnter)
	view := m.View()
	assert.Contains(t, view, "1 item")
	assert.Contains(t, view, "Item added to list")

	send(m, keyTab, runes("e"))
	assert.Contains(t, m.View(), "Edit item 0")
}
