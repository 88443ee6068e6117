package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/appforge/appforge/internal/agents"
	"github.com/appforge/appforge/internal/catalog"
	"github.com/appforge/appforge/internal/genai"
	"github.com/appforge/appforge/internal/store"
	"github.com/appforge/appforge/pkg/models"
)

type screen int

const (
	screenLanding screen = iota
	screenConfiguring
	screenGenerating
	screenCompleted
	screenFailed
	screenProjects
)

type workspaceTab int

const (
	tabCode workspaceTab = iota
	tabPreview
	tabChat
)

type configFocus int

const (
	focusPrompt configFocus = iota
	focusFrameworks
	focusFeatures
)

const noFilePlaceholder = "No file selected"

// previewExtensions marks file paths whose content can be shown in
// the live preview.
var previewExtensions = []string{".html", ".htm"}

// Model is the workspace controller: it owns the screen state
// machine, the active project, the chat transcript and the
// file-selection state, and orchestrates the generation client and
// the history store.
type Model struct {
	client genai.Client
	store  *store.Store
	logger *zap.Logger

	screen screen
	width  int
	height int
	ready  bool

	// configuration
	promptInput      textarea.Model
	focus            configFocus
	frameworkCursor  int
	frameworkIndex   int // -1 while nothing is selected
	featureCursor    int
	selectedFeatures map[string]bool

	// generation
	generationRun int
	agentLog      []models.AgentLogEntry
	activeAgents  map[string]bool
	spinner       *Spinner
	errMsg        string

	// workspace
	project       *models.GeneratedProject
	history       []models.GeneratedProject
	historyCursor int
	tab           workspaceTab
	fileCursor    int
	selectedFile  string
	previewFile   string
	chat          []models.ChatMessage
	chatInput     textarea.Model
	modifying     bool
	copied        bool

	contentViewport viewport.Model
	chatViewport    viewport.Model
}

// NewModel creates the initial workspace model on the landing screen.
func NewModel(client genai.Client, st *store.Store, logger *zap.Logger) Model {
	prompt := textarea.New()
	prompt.Placeholder = "Describe the web application you want to build..."
	prompt.CharLimit = 2000
	prompt.SetHeight(5)
	prompt.Focus()

	chat := textarea.New()
	chat.Placeholder = "Ask for a change..."
	chat.SetHeight(3)

	return Model{
		client:           client,
		store:            st,
		logger:           logger.Named("tui"),
		screen:           screenLanding,
		promptInput:      prompt,
		chatInput:        chat,
		frameworkIndex:   -1,
		selectedFeatures: make(map[string]bool),
		activeAgents:     make(map[string]bool),
		spinner:          NewSpinner(),
		history:          st.List(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.promptInput.SetWidth(msg.Width - 6)
		m.chatInput.SetWidth(msg.Width - 6)

		contentWidth := msg.Width - msg.Width/3 - 1
		viewHeight := msg.Height - 6
		if !m.ready {
			m.contentViewport = viewport.New(contentWidth, viewHeight)
			m.chatViewport = viewport.New(msg.Width-4, viewHeight-4)
			m.ready = true
		} else {
			m.contentViewport.Width = contentWidth
			m.contentViewport.Height = viewHeight
			m.chatViewport.Width = msg.Width - 4
			m.chatViewport.Height = viewHeight - 4
		}
		m.refreshViewports()

	case TickMsg:
		if m.screen == screenGenerating || m.modifying {
			m.spinner.Next()
			return m, tickCmd()
		}
		return m, nil

	case agentStepMsg:
		if msg.index >= len(msg.script) {
			return m, nil
		}
		step := msg.script[msg.index]
		// A superseded run keeps appending log lines; that drift is
		// cosmetic. Only the current, still-running attempt may mark
		// agents active.
		m.agentLog = append(m.agentLog, models.AgentLogEntry{
			AgentID: step.AgentID,
			Message: step.Message,
			Time:    time.Now(),
		})
		if msg.run == m.generationRun && m.screen == screenGenerating {
			for _, id := range step.Activate {
				m.activeAgents[id] = true
			}
		}
		if msg.index+1 < len(msg.script) {
			cmds = append(cmds, agentStepCmd(msg.run, msg.script, msg.index+1))
		}
		return m, tea.Batch(cmds...)

	case generationResultMsg:
		if msg.run != m.generationRun {
			return m, nil
		}
		m.activeAgents = make(map[string]bool)
		if msg.err != nil {
			m.errMsg = userMessage(msg.err, "Something went wrong while generating the application.")
			m.screen = screenFailed
			return m, nil
		}
		m.project = msg.project
		m.store.Save(*msg.project)
		m.history = m.store.List()
		m.agentLog = append(m.agentLog, models.AgentLogEntry{
			AgentID: catalog.AgentTeamLeader,
			Message: "Project generated successfully.",
			Time:    time.Now(),
		})
		m.screen = screenCompleted
		m.initWorkspace(false)
		return m, nil

	case modificationResultMsg:
		m.modifying = false
		// A result that outlived the project it was issued for is
		// dropped entirely; only the in-flight guard clears.
		if m.project == nil || m.project.ID != msg.projectID {
			return m, nil
		}
		if msg.err != nil {
			text := userMessage(msg.err, "Something went wrong while applying the changes.")
			m.errMsg = text
			m.chat = append(m.chat, models.ChatMessage{Role: models.RoleAssistant, Content: text})
			m.refreshViewports()
			return m, nil
		}
		m.project = msg.project
		m.store.Save(*msg.project)
		m.history = m.store.List()
		reply := msg.project.Explanation
		if reply == "" {
			reply = "Done. The requested changes have been applied."
		}
		m.chat = append(m.chat, models.ChatMessage{Role: models.RoleAssistant, Content: reply})
		m.revalidateSelection()
		m.refreshViewports()
		return m, nil

	case copyResetMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenLanding:
			return m.updateLanding(msg)
		case screenConfiguring:
			return m.updateConfiguring(msg)
		case screenGenerating:
			// No timeout or cancellation: a hung request leaves this
			// screen in place until the process exits.
			return m, nil
		case screenCompleted:
			return m.updateCompleted(msg)
		case screenProjects:
			return m.updateProjects(msg)
		case screenFailed:
			return m.updateFailed(msg)
		}
	}

	// Forward remaining messages (cursor blink etc.) to the text inputs.
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	cmds = append(cmds, cmd)
	m.chatInput, cmd = m.chatInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n", "enter":
		m.screen = screenConfiguring
		m.focus = focusPrompt
		m.promptInput.Focus()
		return m, textarea.Blink
	case "p":
		m.history = m.store.List()
		m.historyCursor = 0
		m.screen = screenProjects
	}
	return m, nil
}

func (m Model) updateConfiguring(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+g":
		return m.startGeneration()
	case "esc":
		m.promptInput.Blur()
		m.screen = screenLanding
		return m, nil
	case "tab":
		m.focus = (m.focus + 1) % 3
		return m.applyConfigFocus()
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return m.applyConfigFocus()
	}

	if m.focus == focusPrompt {
		var cmd tea.Cmd
		m.promptInput, cmd = m.promptInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.focus == focusFrameworks && m.frameworkCursor > 0 {
			m.frameworkCursor--
		}
		if m.focus == focusFeatures && m.featureCursor > 0 {
			m.featureCursor--
		}
	case "down", "j":
		if m.focus == focusFrameworks && m.frameworkCursor < len(catalog.Frameworks())-1 {
			m.frameworkCursor++
		}
		if m.focus == focusFeatures && m.featureCursor < len(catalog.Features())-1 {
			m.featureCursor++
		}
	case " ", "enter":
		if m.focus == focusFrameworks {
			m.frameworkIndex = m.frameworkCursor
		} else {
			id := catalog.Features()[m.featureCursor].ID
			m.selectedFeatures[id] = !m.selectedFeatures[id]
		}
	}
	return m, nil
}

func (m Model) applyConfigFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusPrompt {
		m.promptInput.Focus()
		return m, textarea.Blink
	}
	m.promptInput.Blur()
	return m, nil
}

// startGeneration begins a generation attempt. The guard is silent: a
// short prompt or a missing framework selection is a no-op, not an
// error.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.promptInput.Value())
	if len([]rune(prompt)) < 10 || m.frameworkIndex < 0 {
		return m, nil
	}
	framework := catalog.Frameworks()[m.frameworkIndex]

	m.generationRun++
	m.screen = screenGenerating
	m.errMsg = ""
	m.agentLog = nil
	m.activeAgents = make(map[string]bool)
	m.promptInput.Blur()

	m.logger.Info("generation started",
		zap.String("framework", framework.Value),
		zap.Int("prompt_len", len(prompt)))

	script := agents.Script(framework.Label)
	return m, tea.Batch(
		generateCmd(m.client, m.generationRun, prompt, framework, m.featureIDs()),
		agentStepCmd(m.generationRun, script, 0),
		tickCmd(),
	)
}

// featureIDs returns the selected feature ids in catalog order.
func (m Model) featureIDs() []string {
	var ids []string
	for _, f := range catalog.Features() {
		if m.selectedFeatures[f.ID] {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

func (m Model) updateCompleted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.tab == tabChat {
		switch key {
		case "enter":
			return m.submitModification()
		case "tab":
			m.chatInput.Blur()
			return m.switchTab(tabCode)
		case "esc":
			m.chatInput.Blur()
			m.screen = screenLanding
			return m, nil
		default:
			var cmd tea.Cmd
			m.chatInput, cmd = m.chatInput.Update(msg)
			return m, cmd
		}
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenLanding
	case "tab":
		return m.switchTab(workspaceTab((int(m.tab) + 1) % 3))
	case "1":
		return m.switchTab(tabCode)
	case "2":
		return m.switchTab(tabPreview)
	case "3":
		return m.switchTab(tabChat)
	case "up", "k":
		if m.tab == tabCode && m.fileCursor > 0 {
			m.fileCursor--
			m.selectFileAtCursor()
		}
	case "down", "j":
		if m.tab == tabCode {
			if paths := sortedPaths(m.project.Files); m.fileCursor < len(paths)-1 {
				m.fileCursor++
				m.selectFileAtCursor()
			}
		}
	case "y":
		if m.tab == tabCode {
			return m.copySelectedFile()
		}
	case "h":
		m.history = m.store.List()
		m.historyCursor = 0
		m.screen = screenProjects
	case "n":
		m.screen = screenConfiguring
		m.focus = focusPrompt
		m.promptInput.Focus()
		return m, textarea.Blink
	}
	return m, nil
}

func (m Model) switchTab(tab workspaceTab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.refreshViewports()
	if tab == tabChat {
		m.chatInput.Focus()
		return m, textarea.Blink
	}
	m.chatInput.Blur()
	return m, nil
}

func (m *Model) selectFileAtCursor() {
	paths := sortedPaths(m.project.Files)
	if m.fileCursor >= 0 && m.fileCursor < len(paths) {
		m.selectedFile = paths[m.fileCursor]
	}
	m.refreshViewports()
}

func (m Model) copySelectedFile() (tea.Model, tea.Cmd) {
	content := m.selectedFileContent()
	if content == "" {
		return m, nil
	}
	if err := clipboard.WriteAll(content); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		return m, nil
	}
	m.copied = true
	return m, copyResetCmd()
}

// submitModification sends the chat input as a modification request.
// Empty input, no active project, or an in-flight modification make
// it a no-op.
func (m Model) submitModification() (tea.Model, tea.Cmd) {
	instruction := strings.TrimSpace(m.chatInput.Value())
	if instruction == "" || m.project == nil || m.modifying {
		return m, nil
	}

	m.chat = append(m.chat, models.ChatMessage{Role: models.RoleUser, Content: instruction})
	m.chatInput.Reset()
	m.modifying = true
	m.refreshViewports()

	return m, tea.Batch(
		modifyCmd(m.client, instruction, m.project),
		tickCmd(),
	)
}

func (m Model) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenLanding
	case "up", "k":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case "down", "j":
		if m.historyCursor < len(m.history)-1 {
			m.historyCursor++
		}
	case "enter":
		if m.historyCursor < len(m.history) {
			if p, ok := m.store.Get(m.history[m.historyCursor].ID); ok {
				project := p
				m.project = &project
				m.screen = screenCompleted
				m.initWorkspace(true)
			}
		}
	case "d":
		if m.historyCursor < len(m.history) {
			m.deleteProject(m.history[m.historyCursor].ID)
		}
	}
	return m, nil
}

func (m *Model) deleteProject(id string) {
	m.store.Delete(id)
	m.history = m.store.List()
	if m.historyCursor >= len(m.history) && m.historyCursor > 0 {
		m.historyCursor--
	}
	if m.project != nil && m.project.ID == id {
		m.project = nil
		m.chat = nil
		m.selectedFile = ""
		m.previewFile = ""
		m.screen = screenLanding
	}
}

func (m Model) updateFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		m.screen = screenConfiguring
		m.focus = focusPrompt
		m.promptInput.Focus()
		return m, textarea.Blink
	case "esc":
		m.screen = screenLanding
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// initWorkspace resets selection, preview, chat and the active tab
// for a newly active project. loaded switches the greeting for
// projects opened from history.
func (m *Model) initWorkspace(loaded bool) {
	// A pending modification keeps the guard armed across project
	// switches; its result is dropped by project id when it arrives.
	m.tab = tabCode
	m.fileCursor = 0
	m.copied = false

	paths := sortedPaths(m.project.Files)
	if len(paths) > 0 {
		m.selectedFile = paths[0]
	} else {
		m.selectedFile = ""
	}

	previews := previewableFiles(m.project.Files)
	if len(previews) > 0 {
		m.previewFile = previews[0]
	} else {
		m.previewFile = ""
	}

	greeting := "Your application is ready. Tell me what you would like to change."
	if loaded {
		greeting = fmt.Sprintf("Loaded %q. Tell me what you would like to change.", m.project.Name)
	}
	m.chat = []models.ChatMessage{{Role: models.RoleAssistant, Content: greeting}}
	m.chatInput.Reset()
	m.chatInput.Blur()
	m.refreshViewports()
}

// revalidateSelection re-checks the selected and previewed files
// after a modification replaced the file set.
func (m *Model) revalidateSelection() {
	paths := sortedPaths(m.project.Files)
	if idx := indexOf(paths, m.selectedFile); idx >= 0 {
		m.fileCursor = idx
	} else {
		m.fileCursor = 0
		if len(paths) > 0 {
			m.selectedFile = paths[0]
		} else {
			m.selectedFile = ""
		}
	}

	previews := previewableFiles(m.project.Files)
	if indexOf(previews, m.previewFile) < 0 {
		if len(previews) > 0 {
			m.previewFile = previews[0]
		} else {
			m.previewFile = ""
		}
	}
}

// selectedFileContent returns the active file's content, or empty
// when nothing is selected.
func (m Model) selectedFileContent() string {
	if m.project == nil || m.selectedFile == "" {
		return ""
	}
	return m.project.Files[m.selectedFile]
}

// safePreviewContent is the preview-ready view of the previewed file:
// root-relative asset references are rewritten to relative form so
// they resolve against the project files.
func (m Model) safePreviewContent() string {
	if m.project == nil || m.previewFile == "" {
		return noFilePlaceholder
	}
	content, ok := m.project.Files[m.previewFile]
	if !ok || content == "" {
		return noFilePlaceholder
	}
	content = strings.ReplaceAll(content, `src="/`, `src="`)
	content = strings.ReplaceAll(content, `href="/`, `href="`)
	return content
}

func isPreviewable(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range previewExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func sortedPaths(files map[string]string) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func previewableFiles(files map[string]string) []string {
	var paths []string
	for _, path := range sortedPaths(files) {
		if isPreviewable(path) {
			paths = append(paths, path)
		}
	}
	return paths
}

func indexOf(paths []string, want string) int {
	for i, p := range paths {
		if p == want {
			return i
		}
	}
	return -1
}

// userMessage normalizes an error for display.
func userMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

// Run starts the workspace TUI and blocks until the user quits.
func Run(client genai.Client, st *store.Store, logger *zap.Logger) error {
	p := tea.NewProgram(
		NewModel(client, st, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
