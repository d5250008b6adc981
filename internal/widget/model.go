package widget

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zgpcy/worktime/internal/clock"
	"github.com/zgpcy/worktime/internal/config"
	"github.com/zgpcy/worktime/internal/convert"
	"github.com/zgpcy/worktime/internal/logger"
	"github.com/zgpcy/worktime/internal/refresher"
)

// frameWidth is the widget width in columns
const frameWidth = 32

// closeButton is the clickable close control in the top-right corner
const closeButton = "[x]"

// inputWidth is the visible width of the text input
const inputWidth = 12

// Observer receives widget activity, typically *metrics.Metrics
type Observer interface {
	ObserveConversion(outcome convert.Outcome)
	ObserveRefresh(t time.Time)
	ObserveReset(mode string)
}

type nopObserver struct{}

func (nopObserver) ObserveConversion(convert.Outcome) {}
func (nopObserver) ObserveRefresh(time.Time)          {}
func (nopObserver) ObserveReset(string)               {}

// Options configures a Model
type Options struct {
	Converter       *convert.Converter
	Clock           clock.Clock
	RefreshInterval time.Duration
	ResetDelay      time.Duration
	ResetMode       config.ResetMode
	Observer        Observer
	Logger          *logger.Logger
	Theme           *Theme
	Keys            *KeyMap
}

// clockTickMsg asks the model to republish both clocks
type clockTickMsg struct{}

// resetMsg clears input and output. Generation identifies the conversion
// attempt that armed it.
type resetMsg struct {
	generation uint64
}

// Model is the bubbletea model of the widget
type Model struct {
	conv     *convert.Converter
	clock    clock.Clock
	observer Observer
	logger   *logger.Logger
	keys     KeyMap
	styles   styles
	help     help.Model

	input   textinput.Model
	output  string
	outcome convert.Outcome

	clocks          refresher.Snapshot
	refreshState    refresher.State
	refreshInterval time.Duration

	resetDelay      time.Duration
	resetMode       config.ResetMode
	resetGeneration uint64
	pendingResets   int
}

// New creates the widget model. The clock lines are computed immediately so
// the first frame already shows the time.
func New(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.ResetMode == "" {
		opts.ResetMode = config.DefaultResetMode
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Duration(config.DefaultRefreshInterval) * time.Second
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = time.Duration(config.DefaultResetDelay) * time.Second
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	keys := DefaultKeyMap
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	st := theme.styles()

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = opts.Converter.Placeholder()
	input.CharLimit = 16
	input.Width = inputWidth
	input.TextStyle = st.input
	input.PlaceholderStyle = st.placeholder
	input.Focus()

	m := Model{
		conv:            opts.Converter,
		clock:           opts.Clock,
		observer:        opts.Observer,
		logger:          opts.Logger,
		keys:            keys,
		styles:          st,
		help:            help.New(),
		input:           input,
		refreshInterval: opts.RefreshInterval,
		resetDelay:      opts.ResetDelay,
		resetMode:       opts.ResetMode,
	}
	m.publishClocks()
	// Init always arms the first clock tick.
	m.refreshState = refresher.StateScheduled
	return m
}

// Title is the window title, e.g. "EST/PST WorkTime"
func (m Model) Title() string {
	return strings.Join(m.conv.Table().Labels(), "/") + " WorkTime"
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.Title()),
		textinput.Blink,
		m.scheduleClockTick(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if m.refreshState == refresher.StateIdle {
			return m, nil
		}
		m.publishClocks()
		m.refreshState = refresher.StateScheduled
		return m, m.scheduleClockTick()

	case resetMsg:
		return m.handleReset(msg), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Swap):
			return m.swap()
		}
		return m.updateInput(msg)

	case tea.MouseMsg:
		if m.closeClicked(msg) {
			return m.quit()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// quit stops the clock refresh and ends the program
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.refreshState = refresher.StateIdle
	m.logger.Debug("Closing widget", "pending_resets", m.pendingResets)
	return m, tea.Quit
}

// updateInput forwards msg to the text input and converts when the text
// changed
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	reset := m.convertInput()
	return m, tea.Batch(cmd, reset)
}

// convertInput runs a conversion of the current text and arms the reset
// timer when the result calls for it
func (m *Model) convertInput() tea.Cmd {
	res := m.conv.Convert(m.input.Value())
	m.output = res.Text
	m.outcome = res.Outcome
	m.observer.ObserveConversion(res.Outcome)

	m.logger.Debug("Converted input",
		"input", strings.TrimSpace(m.input.Value()),
		"outcome", res.Outcome.String(),
		"output", res.Text)

	if !res.SchedulesReset() {
		return nil
	}
	return m.scheduleReset()
}

// swap reverses the conversion direction and re-runs the current input
func (m Model) swap() (tea.Model, tea.Cmd) {
	m.conv = m.conv.Reverse()
	m.input.Placeholder = m.conv.Placeholder()
	m.publishClocks()
	m.logger.Info("Swapped conversion direction", "direction", m.conv.Placeholder())

	if m.input.Value() == "" {
		m.output = ""
		m.outcome = convert.OutcomeNone
		return m, nil
	}
	reset := m.convertInput()
	return m, reset
}

func (m *Model) scheduleReset() tea.Cmd {
	m.resetGeneration++
	m.pendingResets++
	generation := m.resetGeneration
	return tea.Tick(m.resetDelay, func(time.Time) tea.Msg {
		return resetMsg{generation: generation}
	})
}

func (m Model) handleReset(msg resetMsg) Model {
	if m.pendingResets > 0 {
		m.pendingResets--
	}
	if m.resetMode == config.ResetRestart && msg.generation != m.resetGeneration {
		m.logger.Debug("Dropping superseded reset", "generation", msg.generation)
		return m
	}

	m.input.Reset()
	m.output = ""
	m.outcome = convert.OutcomeNone
	m.observer.ObserveReset(string(m.resetMode))
	return m
}

func (m *Model) publishClocks() {
	m.clocks = refresher.Take(m.conv.Table(), m.clock)
	m.observer.ObserveRefresh(m.clocks.Source)
}

func (m Model) scheduleClockTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

// closeClicked reports whether msg is a left click on the close control
func (m Model) closeClicked(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	left := frameWidth - lipgloss.Width(closeButton)
	return msg.Y == 0 && msg.X >= left && msg.X < frameWidth
}

// View implements tea.Model
func (m Model) View() string {
	title := m.styles.title.Render(m.Title())
	gap := frameWidth - lipgloss.Width(m.Title()) - lipgloss.Width(closeButton)
	if gap < 1 {
		gap = 1
	}
	header := title + m.styles.title.Render(strings.Repeat(" ", gap)) + m.styles.close.Render(closeButton)

	outputStyle := m.styles.output
	if m.outcome == convert.OutcomeInvalid {
		outputStyle = m.styles.invalid
	}
	inputLine := lipgloss.JoinHorizontal(lipgloss.Top,
		m.input.View(),
		outputStyle.Render(m.output),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.styles.clock.Render(m.clocks.SourceLine()),
		m.styles.clock.Render(m.clocks.TargetLine()),
		"",
		inputLine,
		"",
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
	return m.styles.frame.Render(body)
}

// Input returns the current input text
func (m Model) Input() string {
	return m.input.Value()
}

// Output returns the text shown next to the input
func (m Model) Output() string {
	return m.output
}

// Clocks returns the most recently published clock snapshot
func (m Model) Clocks() refresher.Snapshot {
	return m.clocks
}

// RefreshState reports whether a clock tick is pending. It drops to idle
// once the widget is closed.
func (m Model) RefreshState() refresher.State {
	return m.refreshState
}

// PendingResets returns the number of armed reset ticks that have not
// fired yet
func (m Model) PendingResets() int {
	return m.pendingResets
}
