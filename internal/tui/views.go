package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appforge/appforge/internal/catalog"
	"github.com/appforge/appforge/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	userMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	assistantMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch m.screen {
	case screenLanding:
		body = m.renderLanding()
	case screenConfiguring:
		body = m.renderConfiguring()
	case screenGenerating:
		body = m.renderGenerating()
	case screenCompleted:
		body = m.renderWorkspace()
	case screenFailed:
		body = m.renderFailed()
	case screenProjects:
		body = m.renderProjects()
	}

	return fmt.Sprintf("%s\n%s\n%s", header, body, footer)
}

func (m Model) renderHeader() string {
	title := "appforge"
	switch m.screen {
	case screenConfiguring:
		title = "appforge - New Project"
	case screenGenerating:
		title = "appforge - Generating"
	case screenCompleted:
		if m.project != nil {
			title = fmt.Sprintf("appforge - %s", m.project.Name)
		}
	case screenProjects:
		title = "appforge - My Projects"
	case screenFailed:
		title = "appforge - Error"
	}
	return titleStyle.Render(title)
}

func (m Model) renderFooter() string {
	var info string
	switch m.screen {
	case screenLanding:
		info = "n: new project • p: my projects • q: quit"
	case screenConfiguring:
		info = "tab: next section • space/enter: select • ctrl+g: generate • esc: back"
	case screenGenerating:
		info = "generating..."
	case screenCompleted:
		switch m.tab {
		case tabCode:
			info = "↑/↓: files • y: copy • tab/1-3: tabs • h: projects • n: new • esc: back"
			if m.copied {
				info = selectedStyle.Render("Copied to clipboard!") + hintStyle.Render(" • tab/1-3: tabs")
				return info
			}
		case tabPreview:
			info = "tab/1-3: tabs • h: projects • esc: back"
		case tabChat:
			info = "enter: send • tab: leave chat • esc: back"
		}
	case screenProjects:
		info = "↑/↓: navigate • enter: open • d: delete • esc: back"
	case screenFailed:
		info = "r: try again • esc: back"
	}
	return hintStyle.Render(info)
}

func (m Model) renderLanding() string {
	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(headerStyle.Render("  Build web applications from a description.") + "\n\n")
	s.WriteString("  Describe what you want, pick a framework, and a team of\n")
	s.WriteString("  AI agents assembles a complete project you can refine in chat.\n\n")
	s.WriteString(selectedStyle.Render("  [n]") + " Start a new project\n")
	s.WriteString(selectedStyle.Render("  [p]") + fmt.Sprintf(" My projects (%d)\n", len(m.history)))
	return s.String()
}

func (m Model) renderConfiguring() string {
	var s strings.Builder

	section := func(name string, focused bool) string {
		if focused {
			return selectedStyle.Render("▸ " + name)
		}
		return headerStyle.Render("  " + name)
	}

	s.WriteString(section("Describe your application", m.focus == focusPrompt) + "\n")
	s.WriteString(m.promptInput.View() + "\n\n")

	s.WriteString(section("Framework", m.focus == focusFrameworks) + "\n")
	for i, f := range catalog.Frameworks() {
		cursor := "  "
		if m.focus == focusFrameworks && i == m.frameworkCursor {
			cursor = "> "
		}
		marker := "( )"
		if i == m.frameworkIndex {
			marker = "(•)"
		}
		line := fmt.Sprintf("%s%s %s - %s", cursor, marker, f.Label, f.Description)
		if i == m.frameworkIndex {
			line = selectedStyle.Render(line)
		} else if m.focus == focusFrameworks && i == m.frameworkCursor {
			line = headerStyle.Render(line)
		} else {
			line = dimStyle.Render(line)
		}
		s.WriteString(line + "\n")
	}
	s.WriteString("\n")

	s.WriteString(section("Features", m.focus == focusFeatures) + "\n")
	// Grouped rendering walks the same order as catalog.Features(), so
	// the flat feature cursor stays valid.
	grouped := catalog.FeaturesByCategory()
	i := 0
	for _, category := range catalog.FeatureCategories() {
		s.WriteString(hintStyle.Render("  "+string(category)) + "\n")
		for _, f := range grouped[category] {
			cursor := "  "
			if m.focus == focusFeatures && i == m.featureCursor {
				cursor = "> "
			}
			marker := "[ ]"
			if m.selectedFeatures[f.ID] {
				marker = "[x]"
			}
			line := fmt.Sprintf("%s%s %s", cursor, marker, f.Label)
			if m.selectedFeatures[f.ID] {
				line = selectedStyle.Render(line)
			} else if m.focus == focusFeatures && i == m.featureCursor {
				line = headerStyle.Render(line)
			} else {
				line = dimStyle.Render(line)
			}
			s.WriteString(line + "\n")
			i++
		}
	}

	return s.String()
}

func (m Model) renderGenerating() string {
	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("  %s %s\n\n",
		m.spinner.View(),
		headerStyle.Render("The team is building your application...")))

	for _, a := range catalog.Agents() {
		marker := dimStyle.Render("○")
		name := dimStyle.Render(fmt.Sprintf("%s (%s)", a.Name, a.Role))
		if m.activeAgents[a.ID] {
			marker = agentStyle(a).Render("●")
			name = agentStyle(a).Render(fmt.Sprintf("%s (%s)", a.Name, a.Role))
		}
		s.WriteString(fmt.Sprintf("  %s %s\n", marker, name))
	}
	s.WriteString("\n")

	for _, entry := range m.agentLog {
		s.WriteString("  " + m.renderLogEntry(entry) + "\n")
	}
	return s.String()
}

func (m Model) renderLogEntry(entry models.AgentLogEntry) string {
	name := entry.AgentID
	style := dimStyle
	if a, ok := catalog.AgentByID(entry.AgentID); ok {
		name = a.Name
		style = agentStyle(a)
	}
	return fmt.Sprintf("%s %s %s",
		dimStyle.Render(entry.Time.Format("15:04:05")),
		style.Render(name+":"),
		entry.Message)
}

// agentStyle colors an agent with the darker end of its gradient.
func agentStyle(a models.Agent) lipgloss.Style {
	colors := strings.Fields(a.Gradient)
	if len(colors) == 0 {
		return dimStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors[0]))
}

func (m Model) renderWorkspace() string {
	tabs := m.renderTabs()

	switch m.tab {
	case tabChat:
		return fmt.Sprintf("%s\n%s\n\n%s", tabs, m.chatViewport.View(), m.chatInput.View())
	case tabPreview:
		return fmt.Sprintf("%s\n%s", tabs, m.contentViewport.View())
	default:
		return fmt.Sprintf("%s\n%s", tabs, m.renderCodeSplit())
	}
}

func (m Model) renderTabs() string {
	names := []string{"1 Code", "2 Preview", "3 Chat"}
	var parts []string
	for i, name := range names {
		if workspaceTab(i) == m.tab {
			parts = append(parts, selectedStyle.Render("["+name+"]"))
		} else {
			parts = append(parts, dimStyle.Render(" "+name+" "))
		}
	}
	suffix := ""
	if m.modifying {
		suffix = "  " + m.spinner.View() + hintStyle.Render(" applying changes...")
	}
	return strings.Join(parts, " ") + suffix
}

func (m Model) renderCodeSplit() string {
	listWidth := m.width / 3
	height := m.contentViewport.Height

	var files strings.Builder
	files.WriteString(headerStyle.Render("Files") + "\n")
	if m.project != nil {
		for i, path := range sortedPaths(m.project.Files) {
			cursor := "  "
			if i == m.fileCursor {
				cursor = "> "
			}
			line := cursor + path
			if isPreviewable(path) {
				line += " ◆"
			}
			if i == m.fileCursor {
				files.WriteString(selectedStyle.Render(line) + "\n")
			} else {
				files.WriteString(dimStyle.Render(line) + "\n")
			}
		}
	}

	left := lipgloss.NewStyle().
		Width(listWidth).
		Height(height).
		Render(files.String())

	divider := strings.Builder{}
	for i := 0; i < height; i++ {
		divider.WriteString("│")
		if i < height-1 {
			divider.WriteString("\n")
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		dimStyle.Render(divider.String()),
		m.contentViewport.View(),
	)
}

func (m Model) renderChat() string {
	var s strings.Builder
	for i, msg := range m.chat {
		switch msg.Role {
		case models.RoleUser:
			s.WriteString(userMsgStyle.Render("You: ") + msg.Content)
		default:
			s.WriteString(assistantMsgStyle.Render("Assistant: ") + msg.Content)
		}
		if i < len(m.chat)-1 {
			s.WriteString("\n\n")
		}
	}
	return s.String()
}

func (m Model) renderProjects() string {
	if len(m.history) == 0 {
		return "\n" + dimStyle.Render("  No projects yet. Press n on the start screen to create one.")
	}

	var s strings.Builder
	s.WriteString("\n")
	for i, p := range m.history {
		cursor := "  "
		if i == m.historyCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%s, %d files) - %s",
			cursor,
			p.Name,
			p.Framework.Label,
			len(p.Files),
			p.CreatedAt.Format("2006-01-02 15:04"))
		if i == m.historyCursor {
			s.WriteString(selectedStyle.Render(line) + "\n")
		} else {
			s.WriteString(dimStyle.Render(line) + "\n")
		}
	}
	return s.String()
}

func (m Model) renderFailed() string {
	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(errorStyle.Render("  Generation failed") + "\n\n")
	s.WriteString("  " + m.errMsg + "\n")
	return s.String()
}

// refreshViewports recomputes the derived viewport contents for the
// current screen and tab.
func (m *Model) refreshViewports() {
	if !m.ready {
		return
	}

	switch m.tab {
	case tabPreview:
		m.contentViewport.SetContent(m.safePreviewContent())
	default:
		content := m.selectedFileContent()
		if content == "" {
			content = dimStyle.Render(noFilePlaceholder)
		}
		m.contentViewport.SetContent(content)
	}

	m.chatViewport.SetContent(m.renderChat())
	m.chatViewport.GotoBottom()
}
