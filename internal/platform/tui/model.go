package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pet/internal/audio"
	"github.com/vovakirdan/tui-pet/internal/command"
	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/park"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/registry"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

// statusTTL is how long a command-line message stays on screen.
const statusTTL = 3 * time.Second

// Options configures one pet program.
type Options struct {
	Runtime       core.RuntimeConfig
	Pet           config.PetConfig
	Logger        *log.Logger
	Sound         audio.Player   // nil plays nothing
	Store         *storage.Store // nil disables run history
	ScreenshotDir string         // defaults to ~/.vpet/screenshots
	Visitor       *park.Visitor  // nil when playing alone
}

// Model is the Bubble Tea model running the scene flow.
type Model struct {
	director   *registry.Director
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       *KeyMapper
	parser     *command.Parser
	inputFrame core.InputFrame
	cmdline    textinput.Model
	cmdMode    bool
	status     string
	statusLeft time.Duration
	board      *HistoryModel
	visitor    *park.Visitor
	seenRun    *storage.Run
	shotDir    string
	quitting   bool
}

// NewModel builds the scene context and enters the boot scene.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	catalog, err := opts.Pet.Catalog()
	if err != nil {
		return Model{}, err
	}

	ctx := &registry.Context{
		Config: cfg,
		Pet:    opts.Pet,
		Logger: opts.Logger,
		Sound:  opts.Sound,
	}
	if ctx.Sound == nil {
		ctx.Sound = audio.Silent{}
	}
	if opts.Store != nil {
		ctx.Store = opts.Store
	}

	director := registry.NewDirector(ctx)
	if err := director.Start(); err != nil {
		return Model{}, err
	}

	parser := command.New(catalog.Names())
	for _, it := range catalog.Items() {
		if it.Hotkey != "" {
			parser.Alias(it.Hotkey, string(it.ID))
		}
	}

	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "feed apple, spin, help"
	ti.CharLimit = 64

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".vpet", "screenshots")
	}

	return Model{
		director:   director,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		config:     cfg,
		logger:     opts.Logger,
		keys:       NewKeyMapper(catalog),
		parser:     parser,
		inputFrame: core.NewInputFrame(),
		cmdline:    ti,
		shotDir:    shotDir,
		visitor:    opts.Visitor,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.waitForEvent())
}

// waitForEvent returns a command that waits for park announcements.
func (m Model) waitForEvent() tea.Cmd {
	if m.visitor == nil {
		return nil
	}
	v := m.visitor
	return func() tea.Msg {
		select {
		case evt := <-v.Events():
			return evt
		case <-v.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.board == nil && !m.cmdMode {
			m.keys.MapMouseToFrame(msg, &m.inputFrame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case park.Event:
		m.setStatus(msg.Message())
		return m, m.waitForEvent()
	}

	// Cursor blink and friends.
	if m.cmdMode {
		var cmd tea.Cmd
		m.cmdline, cmd = m.cmdline.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}
	if m.cmdMode {
		return m.handleCommandKey(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		m.openBoard()
		return m, nil
	case ":", "/":
		if m.Scene() == pet.SceneGame {
			m.cmdMode = true
			m.cmdline.Reset()
			cmd := m.cmdline.Focus()
			return m, cmd
		}
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}
	return m, nil
}

// handleCommandKey edits the command line.
func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.cmdMode = false
		m.cmdline.Blur()
		return m, nil
	case tea.KeyEnter:
		line := m.cmdline.Value()
		m.cmdMode = false
		m.cmdline.Blur()
		m.cmdline.Reset()
		return m.runCommand(line)
	case tea.KeyCtrlC:
		return m.quit()
	}

	var cmd tea.Cmd
	m.cmdline, cmd = m.cmdline.Update(msg)
	return m, cmd
}

// runCommand turns a typed command into input for the next tick.
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	in, err := m.parser.Parse(line)
	if err != nil {
		if !errors.Is(err, command.ErrEmpty) {
			m.setStatus(err.Error())
		}
		return m, nil
	}

	switch in.Verb {
	case command.VerbSelect:
		m.inputFrame.SelectItem(in.Item)
	case command.VerbPlace:
		m.inputFrame.Set(core.ActionPlace)
	case command.VerbUse:
		m.inputFrame.SelectItem(in.Item)
		m.inputFrame.Set(core.ActionPlace)
	case command.VerbRotate:
		m.inputFrame.Set(core.ActionRotate)
	case command.VerbHelp:
		m.setStatus(command.Help())
	case command.VerbQuit:
		return m.quit()
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTTL
}

// openBoard shows the run history over the scene.
func (m *Model) openBoard() {
	var src RunHistory
	if m.store != nil {
		src = m.store
	}
	board := NewHistoryModel(src, m.config.ScreenW, m.config.ScreenH)
	board.embedded = true
	m.board = &board
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(HistoryModel)
	if !ok {
		m.board = nil
		return m, nil
	}
	switch {
	case board.IsQuitting():
		return m.quit()
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.director.Resize(msg.Width, msg.Height)
	m.cmdline.Width = max(msg.Width-4, 10)

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.board == nil {
		m.director.Step(m.inputFrame)
		if err := m.director.Err(); err != nil && m.logger != nil {
			m.logger.Error("scene change failed", "err", err)
		}
	}

	m.announceRun()

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.statusLeft > 0 {
		m.statusLeft -= m.config.TickDuration()
		if m.statusLeft <= 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// announceRun tells the park about a run the game scene just recorded.
func (m *Model) announceRun() {
	run := m.director.Context().LastRun
	if run == nil || run == m.seenRun {
		return
	}
	m.seenRun = run
	if m.visitor != nil {
		m.visitor.Announce(park.RunEndedEvent{
			User:     m.visitor.User(),
			Pet:      run.PetName,
			Survived: run.Survived,
			Cause:    run.Cause,
		})
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.director.Close()
	return m, tea.Quit
}

// Scene returns the name of the running scene.
func (m Model) Scene() pet.SceneName {
	if cur := m.director.Current(); cur != nil {
		return cur.Name()
	}
	return ""
}

// Director exposes the scene director.
func (m Model) Director() *registry.Director {
	return m.director
}

// Close exits the running scene. Safe to call after quitting.
func (m Model) Close() {
	m.director.Close()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.director.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.Scene(), timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}
	m.setStatus("saved " + path)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.screen.Clear()
	m.director.Render(m.screen)

	if !m.cmdMode && m.status == "" {
		return RenderScreen(m.screen)
	}

	// The bottom row gives way to the command line or status message.
	var sb strings.Builder
	for y := range m.screen.Height() - 1 {
		sb.WriteString(renderRow(m.screen, y, m.screen.Width()))
		sb.WriteRune('\n')
	}
	if m.cmdMode {
		sb.WriteString(m.cmdline.View())
	} else {
		sb.WriteString(statusStyle.Render(m.status))
	}
	return sb.String()
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select items and place them
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	}
	return err
}
