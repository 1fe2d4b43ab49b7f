// Package tui provides a Bubble Tea terminal user interface for browsing
// and installing .keyclsound packages.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/optionallybluestudios/keycl/internal/config"
	"github.com/optionallybluestudios/keycl/internal/http"
	"github.com/optionallybluestudios/keycl/internal/install"
	"github.com/optionallybluestudios/keycl/internal/library"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateBrowsing
	StateInstalling
	StateDone
	StateError
)

// eventLog collects installer progress events from another goroutine;
// the update loop drains it on a timer tick.
type eventLog struct {
	mu     sync.Mutex
	events []install.ProgressEvent
}

func (l *eventLog) add(e install.ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) drain() []install.ProgressEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	events := l.events
	l.events = nil
	return events
}

// Model is the Bubble Tea model for the package browser.
type Model struct {
	state     State
	search    textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	browser   *library.Browser
	installer *install.Installer

	packages []library.Package // everything fetched from the library
	visible  []library.Package // after applying the search query
	cursor   int

	logs   []install.ProgressEvent
	events *eventLog
	result install.Result
	err    error

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new browser model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by title, author, or tag..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	httpClient := http.NewClient()
	listClient := library.NewClient(settings.LibraryAPI, httpClient)
	browser := library.NewBrowser(listClient, httpClient, settings.MaxConcurrentFetches)

	events := &eventLog{}
	installer := install.NewInstaller(settings, httpClient, events.add)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateLoading,
		search:    ti,
		spinner:   sp,
		settings:  settings,
		browser:   browser,
		installer: installer,
		events:    events,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetchPackages())
}

// Message types
type (
	// PackagesMsg is sent when the library listing completes.
	PackagesMsg struct {
		Packages []library.Package
		Err      error
	}

	// InstallDoneMsg is sent when an install completes.
	InstallDoneMsg struct {
		Result install.Result
		Err    error
	}

	// TickMsg drains installer progress events into the view.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateBrowsing:
				return m, tea.Quit
			case StateLoading, StateInstalling:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "up":
			if m.state == StateBrowsing && m.cursor > 0 {
				m.cursor--
			}

		case "down":
			if m.state == StateBrowsing && m.cursor < len(m.visible)-1 {
				m.cursor++
			}

		case "enter":
			if m.state == StateBrowsing && m.cursor < len(m.visible) {
				pkg := m.visible[m.cursor]
				if pkg.Err != nil {
					m.logs = append(m.logs, install.ProgressEvent{
						Message: fmt.Sprintf("%s cannot be installed: %v", pkg.Entry.Name, pkg.Err),
						Level:   install.LevelWarning,
					})
					return m, nil
				}
				m.state = StateInstalling
				m.logs = nil
				return m, tea.Batch(m.installPackage(pkg), m.spinner.Tick, m.tick())
			}

		case "q":
			if m.state == StateDone || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateDone || m.state == StateError {
				m.state = StateBrowsing
				m.logs = nil
				m.err = nil
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.search.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case PackagesMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.packages = msg.Packages
			m.visible = msg.Packages
			m.state = StateBrowsing
		}

	case InstallDoneMsg:
		m.logs = append(m.logs, m.events.drain()...)
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.result = msg.Result
			m.state = StateDone
		}

	case TickMsg:
		if m.state == StateInstalling {
			m.logs = append(m.logs, m.events.drain()...)
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
			cmds = append(cmds, m.tick())
		}
	}

	// The search box filters while browsing.
	if m.state == StateBrowsing {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)

		m.visible = library.Search(m.packages, m.search.Value())
		if m.cursor >= len(m.visible) {
			m.cursor = 0
		}
	}

	return m, tea.Batch(cmds...)
}

// tick returns a command that drains progress events periodically.
func (m Model) tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("KeyCL Sound Library"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Browse and install .keyclsound packages"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Fetching package listing..."))
		b.WriteString("\n")
	case StateBrowsing:
		b.WriteString(m.viewBrowsing())
	case StateInstalling:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Installing..."))
		b.WriteString("\n\n")
		b.WriteString(m.renderLogs())
	case StateDone:
		b.WriteString(m.viewDone())
	case StateError:
		b.WriteString(errorStyle.Render("Error:"))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString("  " + m.err.Error())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewBrowsing() string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("No packages match."))
		b.WriteString("\n")
		return b.String()
	}

	for i, pkg := range m.visible {
		line := pkg.Descriptor.Title
		if pkg.Descriptor.Author != "" {
			line += dimStyle.Render(" by " + pkg.Descriptor.Author)
		}
		if tags := pkg.Descriptor.TagList(); len(tags) > 0 {
			limit := len(tags)
			if limit > 6 {
				limit = 6
			}
			line += dimStyle.Render("  [" + strings.Join(tags[:limit], ", ") + "]")
		}
		if pkg.Err != nil {
			line += warningStyle.Render("  (metadata unavailable)")
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	// Leftover warnings from a refused install attempt.
	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) viewDone() string {
	return boxStyle.Render(fmt.Sprintf(
		"Installed!\n\nAudio: %s\nPackage: %s",
		m.result.AudioPath,
		m.result.DescriptorPath,
	)) + "\n"
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "*"
		switch log.Level {
		case install.LevelError:
			style = errorStyle
			prefix = "x"
		case install.LevelWarning:
			style = warningStyle
			prefix = "!"
		case install.LevelSuccess:
			style = successStyle
			prefix = "+"
		case install.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateBrowsing:
		return "type: search / up/down: select / enter: install / esc: quit"
	case StateLoading, StateInstalling:
		return "esc: cancel"
	case StateDone, StateError:
		return "r: back to browsing / q: quit"
	}
	return ""
}

// fetchPackages lists the library in the background; the UI never blocks
// on the network.
func (m Model) fetchPackages() tea.Cmd {
	return func() tea.Msg {
		pkgs, err := m.browser.Packages(m.ctx, "")
		return PackagesMsg{Packages: pkgs, Err: err}
	}
}

// installPackage installs in the background, progress lands in the event
// log.
func (m Model) installPackage(pkg library.Package) tea.Cmd {
	return func() tea.Msg {
		result, err := m.installer.Install(m.ctx, pkg.Descriptor)
		return InstallDoneMsg{Result: result, Err: err}
	}
}

// Run starts the browser TUI.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
