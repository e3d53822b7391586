package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// renderMain assembles the browser screen from its sections.
func (m Model) renderMain() string {
	sections := []string{
		m.renderTitle(),
		m.renderContent(),
		m.renderStatus(),
	}

	if m.mode == ModeInput || m.mode == ModeCommand {
		sections = append(sections, m.renderInput())
	}

	if m.commandOutput != "" {
		sections = append(sections, m.renderCommandOutput())
	}

	sections = append(sections, m.renderHelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitle renders the title bar with the current path.
func (m Model) renderTitle() string {
	return m.theme.TitleStyle.Render(fmt.Sprintf("CoconutKit - %s", m.currentPath))
}

// renderContent renders the file list, optionally next to the preview pane.
func (m Model) renderContent() string {
	contentHeight := m.getVisibleLines() + 2

	if !m.showPreview {
		list := m.renderFileList(m.width - 4)
		return m.theme.BorderStyle.
			Width(m.width - 2).
			Height(contentHeight).
			Render(list)
	}

	listWidth := m.width/2 - 2
	previewWidth := m.width - listWidth - 4

	list := m.theme.BorderStyle.
		Width(listWidth).
		Height(contentHeight).
		Render(m.renderFileList(listWidth - 2))

	preview := m.theme.PreviewBorderStyle.
		Width(previewWidth).
		Height(contentHeight).
		Render(m.renderPreview(previewWidth - 2))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
}

// renderFileList renders the visible window of directory entries.
func (m Model) renderFileList(width int) string {
	if len(m.entries) == 0 {
		return m.theme.FileStyle.Render("(empty directory)")
	}

	nameWidth := width - 12
	if nameWidth < 10 {
		nameWidth = 10
	}

	visible := m.getVisibleLines()
	end := m.offset + visible
	if end > len(m.entries) {
		end = len(m.entries)
	}

	var lines []string
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderFileEntry(m.entries[i], i == m.cursor, nameWidth))
	}

	return strings.Join(lines, "\n")
}

// renderFileEntry renders a single list row.
func (m Model) renderFileEntry(entry *Entry, selected bool, nameWidth int) string {
	name := entry.DisplayName()
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	line := fmt.Sprintf("%s %-*s %6s", entry.Icon(), nameWidth, name, entry.Kind())

	switch {
	case selected:
		return m.theme.SelectedItemStyle.Render(line)
	case entry.IsDir:
		return m.theme.DirectoryStyle.Render(line)
	default:
		return m.theme.FileStyle.Render(line)
	}
}

// renderPreview renders the preview pane for the selected entry.
func (m Model) renderPreview(width int) string {
	entry := m.currentEntry()
	if entry == nil {
		return m.theme.PreviewStyle.Render("(nothing selected)")
	}

	if entry.IsDir {
		return m.theme.PreviewStyle.Render(fmt.Sprintf("Directory: %s\n\nPress enter to open.", entry.Path))
	}

	if m.previewErr != "" {
		return m.theme.ErrorStyle.Render(fmt.Sprintf("Preview failed:\n%s", m.previewErr))
	}

	if m.previewContent == "" {
		return m.theme.PreviewStyle.Render("Loading preview...")
	}

	lines := strings.Split(m.previewContent, "\n")
	maxLines := m.getVisibleLines()
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], "...")
	}

	return m.theme.PreviewStyle.Render(strings.Join(lines, "\n"))
}

// renderStatus renders the status bar with item counts, cache usage and the
// most recent error or status message.
func (m Model) renderStatus() string {
	position := 0
	if len(m.entries) > 0 {
		position = m.cursor + 1
	}

	count, resident, limit := m.adapter.Usage()
	usage := fmt.Sprintf("%d payloads · %s resident", count, formatBytes(resident))
	if limit > 0 {
		usage += fmt.Sprintf(" · limit %s", formatBytes(limit))
	}

	left := m.theme.StatusBarStyle.Render(fmt.Sprintf("%d/%d items · %s", position, len(m.entries), usage))

	var right string
	switch {
	case m.errorMessage != "":
		right = m.theme.ErrorStyle.Render(m.errorMessage)
	case m.statusMessage != "":
		right = m.theme.StatusBarStyle.Render(m.statusMessage)
	}

	if right == "" {
		return left
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// renderInput renders the text input line with a mode-specific prompt.
func (m Model) renderInput() string {
	prompt := "> "
	if m.mode == ModeCommand {
		prompt = ": "
	}

	return m.theme.CommandStyle.Render(prompt) + m.textInput.View()
}

// renderCommandOutput renders the captured output of the last command,
// capped to a few lines.
func (m Model) renderCommandOutput() string {
	lines := strings.Split(m.commandOutput, "\n")
	if len(lines) > 5 {
		lines = append(lines[:5], "...")
	}

	return m.theme.PreviewBorderStyle.
		Width(m.width - 2).
		Render(m.theme.CommandStyle.Render(strings.Join(lines, "\n")))
}

// renderHelpBar renders the one-line key hint bar.
func (m Model) renderHelpBar() string {
	return m.theme.HelpStyle.Render(m.help.View(m.keys))
}

// renderHelp renders the full-screen help view.
func (m Model) renderHelp() string {
	m.help.ShowAll = true

	title := m.theme.TitleStyle.Render("CoconutKit - Help")
	body := m.theme.HelpStyle.Render(m.help.View(m.keys))
	footer := m.theme.StatusBarStyle.Render("Press any key to return.")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", footer)
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
