package tui

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jormungand/CoconutKit/shell"
)

// Mode is the current interaction mode of the browser.
type Mode int

const (
	// ModeNormal browses the file list.
	ModeNormal Mode = iota
	// ModeCommand types a shell command.
	ModeCommand
	// ModeInput types a value for a pending action.
	ModeInput
	// ModeHelp shows the full help screen.
	ModeHelp
)

// InputType identifies which action a ModeInput prompt belongs to.
type InputType int

const (
	InputNewFile InputType = iota
	InputNewDir
	InputRename
	InputDelete
)

// Messages produced by asynchronous commands.
type (
	directoryLoadedMsg struct {
		entries []*Entry
	}

	previewLoadedMsg struct {
		content    string
		err        error
		generation int
	}

	commandExecutedMsg struct {
		output string
		err    string
	}

	errorMsg string
)

// Model is the bubbletea model for the store browser.
type Model struct {
	adapter *StoreAdapter
	shell   *shell.Shell

	theme Theme
	keys  KeyMap
	help  help.Model

	currentPath string
	previousDir string
	entries     []*Entry
	cursor      int
	offset      int

	width  int
	height int

	showPreview    bool
	previewContent string
	previewErr     string
	previewGen     int

	mode      Mode
	inputType InputType
	textInput textinput.Model

	statusMessage string
	errorMessage  string
	commandOutput string
	clipboard     string
}

// NewModel creates the browser model rooted at "/".
func NewModel(adapter *StoreAdapter, sh *shell.Shell) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command..."
	ti.CharLimit = 256

	return Model{
		adapter:     adapter,
		shell:       sh,
		theme:       DefaultTheme(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentPath: "/",
		showPreview: true,
		mode:        ModeNormal,
		textInput:   ti,
	}
}

// Init loads the root directory and starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadDirectory(m.currentPath), textinput.Blink)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showPreview {
			cmds = append(cmds, m.updatePreview())
		}

	case directoryLoadedMsg:
		m.entries = msg.entries
		if m.previousDir != "" {
			for i, entry := range m.entries {
				if entry.Name == m.previousDir {
					m.cursor = i
					break
				}
			}
			m.previousDir = ""
		}
		if m.cursor >= len(m.entries) {
			m.cursor = len(m.entries) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampOffset()
		if m.showPreview {
			cmds = append(cmds, m.updatePreview())
		}

	case previewLoadedMsg:
		// Stale previews from before the cursor moved on are dropped.
		if msg.generation == m.previewGen {
			if msg.err != nil {
				m.previewContent = ""
				m.previewErr = msg.err.Error()
			} else {
				m.previewContent = msg.content
				m.previewErr = ""
			}
		}

	case commandExecutedMsg:
		m.commandOutput = msg.output
		m.errorMessage = msg.err
		cmds = append(cmds, m.loadDirectory(m.currentPath))

	case errorMsg:
		m.errorMessage = string(msg)

	case tea.KeyMsg:
		switch m.mode {
		case ModeNormal:
			return m.handleNormalMode(msg)

		case ModeHelp:
			m.mode = ModeNormal

		case ModeCommand, ModeInput:
			switch msg.String() {
			case "esc":
				m.cancelInput()
			case "enter":
				cmds = append(cmds, m.submitInput())
			default:
				var cmd tea.Cmd
				m.textInput, cmd = m.textInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// handleNormalMode reacts to a key press while browsing.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Up):
		return m.moveCursor(-1)

	case key.Matches(msg, keys.Down):
		return m.moveCursor(1)

	case key.Matches(msg, keys.PageUp):
		return m.moveCursor(-m.getVisibleLines())

	case key.Matches(msg, keys.PageDown):
		return m.moveCursor(m.getVisibleLines())

	case key.Matches(msg, keys.Top):
		return m.moveCursor(-len(m.entries))

	case key.Matches(msg, keys.Bottom):
		return m.moveCursor(len(m.entries))

	case key.Matches(msg, keys.Enter):
		return m.enterEntry()

	case key.Matches(msg, keys.Back):
		return m.goBack()

	case key.Matches(msg, keys.TogglePreview):
		m.showPreview = !m.showPreview
		if m.showPreview {
			return m, m.updatePreview()
		}
		m.previewContent = ""
		m.previewErr = ""

	case key.Matches(msg, keys.Refresh):
		m.statusMessage = ""
		m.errorMessage = ""
		m.commandOutput = ""
		return m, m.loadDirectory(m.currentPath)

	case key.Matches(msg, keys.NewFile):
		m.startInput(InputNewFile, "New file name...", "")

	case key.Matches(msg, keys.NewDir):
		m.startInput(InputNewDir, "New directory name...", "")

	case key.Matches(msg, keys.Delete):
		if entry := m.currentEntry(); entry != nil {
			m.startInput(InputDelete, fmt.Sprintf("Delete %s? (y/N)", entry.DisplayName()), "")
		}

	case key.Matches(msg, keys.Rename):
		if entry := m.currentEntry(); entry != nil {
			m.startInput(InputRename, "New name...", entry.Name)
		}

	case key.Matches(msg, keys.Copy):
		if entry := m.currentEntry(); entry != nil {
			m.clipboard = entry.Path
			m.statusMessage = fmt.Sprintf("Copied path: %s", entry.Path)
		}

	case key.Matches(msg, keys.Command):
		m.mode = ModeCommand
		m.textInput.Placeholder = "Enter command..."
		m.textInput.SetValue("")
		m.textInput.Focus()
	}

	return m, nil
}

// startInput switches into ModeInput with the given prompt and prefill.
func (m *Model) startInput(inputType InputType, placeholder, prefill string) {
	m.mode = ModeInput
	m.inputType = inputType
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue(prefill)
	m.textInput.CursorEnd()
	m.textInput.Focus()
}

// cancelInput leaves ModeInput or ModeCommand without acting.
func (m *Model) cancelInput() {
	m.mode = ModeNormal
	m.textInput.Blur()
	m.textInput.SetValue("")
}

// submitInput performs the action the current prompt was collecting.
func (m *Model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.textInput.Value())
	mode := m.mode
	inputType := m.inputType
	m.cancelInput()

	if mode == ModeCommand {
		if value == "" {
			return nil
		}
		return m.executeCommand(value)
	}

	switch inputType {
	case InputNewFile:
		if value == "" {
			return nil
		}
		return m.createFile(value)

	case InputNewDir:
		if value == "" {
			return nil
		}
		return m.createDirectory(value)

	case InputRename:
		if value == "" {
			return nil
		}
		return m.renameEntry(value)

	case InputDelete:
		if value == "y" || value == "Y" {
			return m.deleteEntry()
		}
	}

	return nil
}

// moveCursor shifts the selection and keeps it inside the visible window.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, nil
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	m.clampOffset()

	if m.showPreview {
		return m, m.updatePreview()
	}

	return m, nil
}

// clampOffset scrolls the list window so the cursor stays visible.
func (m *Model) clampOffset() {
	visible := m.getVisibleLines()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// getVisibleLines returns how many list rows fit in the current window.
func (m Model) getVisibleLines() int {
	lines := m.height - 8
	if lines < 5 {
		lines = 5
	}
	return lines
}

// currentEntry returns the entry under the cursor, if any.
func (m Model) currentEntry() *Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor]
}

// enterEntry opens the selected directory or previews the selected file.
func (m Model) enterEntry() (tea.Model, tea.Cmd) {
	entry := m.currentEntry()
	if entry == nil {
		return m, nil
	}

	if entry.IsDir {
		m.currentPath = entry.Path
		m.cursor = 0
		m.offset = 0
		m.previewContent = ""
		m.previewErr = ""
		return m, m.loadDirectory(m.currentPath)
	}

	m.showPreview = true
	return m, m.updatePreview()
}

// goBack moves to the parent directory, restoring the cursor onto the
// directory just left.
func (m Model) goBack() (tea.Model, tea.Cmd) {
	if m.currentPath == "/" {
		return m, nil
	}

	m.previousDir = path.Base(m.currentPath)
	m.currentPath = path.Dir(m.currentPath)
	m.cursor = 0
	m.offset = 0
	return m, m.loadDirectory(m.currentPath)
}

// loadDirectory lists a directory asynchronously.
func (m Model) loadDirectory(dir string) tea.Cmd {
	adapter := m.adapter
	return func() tea.Msg {
		entries, err := adapter.ListDirectory(dir)
		if err != nil {
			return errorMsg(err.Error())
		}
		return directoryLoadedMsg{entries: entries}
	}
}

// updatePreview loads the preview for the entry under the cursor. The
// generation counter ties the answer back to the request so a slow load
// cannot overwrite a newer one.
func (m *Model) updatePreview() tea.Cmd {
	entry := m.currentEntry()
	if entry == nil || entry.IsDir {
		m.previewContent = ""
		m.previewErr = ""
		return nil
	}

	m.previewGen++
	generation := m.previewGen
	filePath := entry.Path
	width := m.width/2 - 6
	height := m.height - 10
	adapter := m.adapter

	return func() tea.Msg {
		content, err := adapter.LoadPreview(filePath, width, height)
		return previewLoadedMsg{content: content, err: err, generation: generation}
	}
}

// createFile creates an empty file in the current directory.
func (m Model) createFile(name string) tea.Cmd {
	adapter := m.adapter
	target := path.Join(m.currentPath, name)
	reload := m.loadDirectory(m.currentPath)

	return func() tea.Msg {
		if err := adapter.CreateFile(target); err != nil {
			return errorMsg(err.Error())
		}
		return reload()
	}
}

// createDirectory creates a directory in the current directory.
func (m Model) createDirectory(name string) tea.Cmd {
	adapter := m.adapter
	target := path.Join(m.currentPath, name)
	reload := m.loadDirectory(m.currentPath)

	return func() tea.Msg {
		if err := adapter.CreateDirectory(target); err != nil {
			return errorMsg(err.Error())
		}
		return reload()
	}
}

// deleteEntry removes the selected entry.
func (m Model) deleteEntry() tea.Cmd {
	entry := m.currentEntry()
	if entry == nil {
		return nil
	}

	adapter := m.adapter
	target := entry.Path
	reload := m.loadDirectory(m.currentPath)

	return func() tea.Msg {
		if err := adapter.Delete(target); err != nil {
			return errorMsg(err.Error())
		}
		return reload()
	}
}

// renameEntry renames the selected entry within the current directory.
func (m Model) renameEntry(newName string) tea.Cmd {
	entry := m.currentEntry()
	if entry == nil {
		return nil
	}

	adapter := m.adapter
	oldPath := entry.Path
	newPath := path.Join(m.currentPath, newName)
	reload := m.loadDirectory(m.currentPath)

	return func() tea.Msg {
		if err := adapter.Rename(oldPath, newPath); err != nil {
			return errorMsg(err.Error())
		}
		return reload()
	}
}

// executeCommand runs a shell command line against the store and captures
// its output for the command pane.
func (m Model) executeCommand(line string) tea.Cmd {
	sh := m.shell
	ctx := m.adapter.ctx
	dir := m.currentPath

	return func() tea.Msg {
		tokens := shell.Tokenize(line)
		if len(tokens) == 0 {
			return commandExecutedMsg{}
		}

		var out bytes.Buffer
		code, err := sh.Execute(ctx, dir, &out, tokens...)

		msg := commandExecutedMsg{output: strings.TrimRight(out.String(), "\n")}
		if err != nil {
			msg.err = err.Error()
		} else if code != 0 {
			msg.err = fmt.Sprintf("exit code %d", code)
		}
		return msg
	}
}
