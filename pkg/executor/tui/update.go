package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/simpletodo/pkg/items"
)

// Init starts the cursor blinking in the add input.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all state updates for the TUI model.
// This is the main event loop handler for Bubble Tea.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast.active = false
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.edit != nil {
			return m.handleEditKey(msg)
		}
		if key.Matches(msg, m.keys.SwitchFocus) {
			if m.focus == focusInput {
				m.setFocus(focusList)
			} else {
				m.setFocus(focusInput)
			}
			return m, nil
		}
		if m.focus == focusInput {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}

	// Everything else (cursor blink, list status ticks) goes to whichever
	// component is live.
	var cmd tea.Cmd
	switch {
	case m.edit != nil:
		m.edit.input, cmd = m.edit.input.Update(msg)
	case m.focus == focusInput:
		m.input, cmd = m.input.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.input.Width = m.width - 10
	m.list.SetSize(m.width-6, m.listHeight())
	if m.edit != nil {
		m.edit.setWidth(m.width)
	}
	return m, nil
}

// listHeight is the number of rows left for items once the header, the
// input box and the status bar are laid out.
func (m *model) listHeight() int {
	const (
		headerHeight    = 2 // title + blank line
		inputHeight     = 3 // input + border
		listChrome      = 2 // list border
		statusBarHeight = 1
	)
	h := m.height - headerHeight - inputHeight - listChrome - statusBarHeight
	if h < 3 {
		h = 3
	}
	return h
}

// handleInputKey processes keys while the add input has focus.
func (m *model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Add) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	text := m.input.Value()
	if m.rejectsText(text) {
		return m, m.showToast("Nothing to add", "Type some text first", "✗", true)
	}

	m.store.Append(text)
	m.logger.Infof("Added item %q", text)
	m.input.Reset()
	m.refreshList()
	m.list.Select(len(m.list.Items()) - 1)

	return m, m.afterMutation("Item added to list")
}

// handleListKey processes keys while the list has focus.
func (m *model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		// The row may be stale; edit what the store holds now.
		text, err := m.store.Get(entry.index)
		if err != nil {
			return m, m.handleStoreError("edit", err)
		}
		m.edit = newEditOverlay(entry.index, text, m.width)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Remove):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.store.RemoveAt(entry.index); err != nil {
			return m, m.handleStoreError("remove", err)
		}
		m.logger.Infof("Removed item %d", entry.index)
		m.refreshList()
		return m, m.afterMutation("Item removed")

	case key.Matches(msg, m.keys.Copy):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := clipboardWriteAll(entry.text); err != nil {
			m.logger.Warnf("Clipboard copy failed: %v", err)
			return m, m.showToast("Copy failed", err.Error(), "✗", true)
		}
		return m, m.confirm("Copied to clipboard")
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleEditKey processes keys while the edit view is open.
func (m *model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.edit = nil
		return m, nil

	case key.Matches(msg, m.keys.Save):
		text := m.edit.input.Value()
		if m.rejectsText(text) {
			return m, m.showToast("Item text is empty", "Press esc to keep the old text", "✗", true)
		}

		index := m.edit.index
		m.edit = nil
		if err := m.store.UpdateAt(index, text); err != nil {
			return m, m.handleStoreError("update", err)
		}
		m.logger.Infof("Updated item %d to %q", index, text)
		m.refreshList()
		return m, m.afterMutation("Item updated")
	}

	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	return m, cmd
}

// handleStoreError reports a rejected mutation and re-syncs the list with
// the store, since a stale row is the usual cause.
func (m *model) handleStoreError(op string, err error) tea.Cmd {
	m.logger.Warnf("Item %s rejected: %v", op, err)
	m.refreshList()

	var indexErr *items.IndexError
	if errors.As(err, &indexErr) {
		details := fmt.Sprintf("No item at index %d (list has %d items)", indexErr.Index, indexErr.Len)
		return m.showToast("Item no longer exists", details, "✗", true)
	}
	return m.showToast("Could not "+op+" item", err.Error(), "✗", true)
}

// afterMutation shows either the confirmation or, when the store could not
// write the data file, a warning that the change only lives in memory.
func (m *model) afterMutation(confirmation string) tea.Cmd {
	if err := m.store.LastPersistError(); err != nil {
		m.logger.Errorf("Changes not saved: %v", err)
		return m.showToast("Changes not saved", err.Error(), "⚠", true)
	}
	return m.confirm(confirmation)
}

// confirm shows a success toast unless confirmations are turned off.
func (m *model) confirm(message string) tea.Cmd {
	if !m.settings.ShowConfirmations {
		return nil
	}
	return m.showToast(message, "", "✓", false)
}

// showToast displays a toast notification and schedules its removal.
func (m *model) showToast(message, details, icon string, isError bool) tea.Cmd {
	duration := m.settings.ToastDuration
	if duration <= 0 {
		duration = DefaultSettings().ToastDuration
	}

	m.toast.seq++
	m.toast.active = true
	m.toast.message = message
	m.toast.details = details
	m.toast.icon = icon
	m.toast.isError = isError
	m.toast.showUntil = time.Now().Add(duration)

	seq := m.toast.seq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
