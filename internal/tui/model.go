// Package tui provides the BubbleTea-based terminal user interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/animo/internal/config"
	"github.com/jmylchreest/animo/internal/phrase"
	"github.com/jmylchreest/animo/internal/widget"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeWidget Mode = iota
	ModeBrowse
	ModeHelp
)

// focus is the focused control in widget mode.
type focus int

const (
	focusButton focus = iota
	focusInput
)

const (
	maxCardWidth = 64
	minCardWidth = 20
)

// Model is the main TUI model.
type Model struct {
	// Configuration
	cfg    *config.Config
	logger *slog.Logger

	// Widget state lives in the controller; the surface holds what is drawn.
	ctrl *widget.Controller
	surf *termSurface

	mode  Mode
	focus focus

	// Components
	list list.Model
	help help.Model

	width  int
	height int
	ready  bool

	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool
}

// phraseItem wraps a phrase for the list component.
type phraseItem struct {
	phrase phrase.Phrase
	index  int
}

func (i phraseItem) Title() string {
	return i.phrase.Text
}

func (i phraseItem) Description() string {
	origin := "added " + humanize.Time(i.phrase.AddedAt)
	if i.phrase.Default {
		origin = "built-in"
	}
	return fmt.Sprintf("#%d · %s", i.index+1, origin)
}

func (i phraseItem) FilterValue() string {
	return i.phrase.Text
}

// New creates a new TUI model bound to ctrl.
func New(cfg *config.Config, ctrl *widget.Controller, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Frases"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	surf := newTermSurface()
	ctrl.Bind(surf)

	return Model{
		cfg:    cfg,
		logger: logger,
		ctrl:   ctrl,
		surf:   surf,
		mode:   ModeWidget,
		focus:  focusButton,
		list:   l,
		help:   help.New(),
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	err error
}

// configReloadedMsg carries a config reloaded from disk by the watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, msg.Height-2)
		m.surf.input.Width = m.cardWidth() - 4
		return m, nil

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(m.cfg.TUI.StatusTimeout.Duration(), func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Copy failed: " + msg.err.Error(), isErr: true}
			}
		}
		return m, func() tea.Msg {
			return statusMsg{text: "Copied to clipboard", isErr: false}
		}

	case configReloadedMsg:
		return m.applyConfig(msg.cfg)
	}

	// Update child components
	var cmd tea.Cmd
	switch m.mode {
	case ModeBrowse:
		m.list, cmd = m.list.Update(msg)
	case ModeWidget:
		if m.focus == focusInput {
			m.surf.input, cmd = m.surf.input.Update(msg)
		}
	}
	return m, cmd
}

// applyConfig swaps in a reloaded config.
func (m Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	if err := m.ctrl.SetCounterTemplate(cfg.Widget.CounterTemplate); err != nil {
		m.logger.Warn("keeping previous counter template", "error", err)
		return m, func() tea.Msg {
			return statusMsg{text: "Config reload failed: " + err.Error(), isErr: true}
		}
	}
	m.cfg = cfg
	return m, func() tea.Msg {
		return statusMsg{text: "Config reloaded", isErr: false}
	}
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.mode = ModeWidget
		} else if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case ModeBrowse:
		return m.handleBrowseKey(msg)
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleButtonKey(msg)
}

// handleButtonKey handles keys while the show button has focus.
func (m Model) handleButtonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Show):
		m.surf.activate(widget.ShowButton)
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		m.focus = focusInput
		return m, m.surf.input.Focus()

	case key.Matches(msg, m.keys.Copy):
		text, ok := m.ctrl.LastPhrase()
		if !ok {
			return m, func() tea.Msg {
				return statusMsg{text: "Nothing to copy yet", isErr: true}
			}
		}
		return m, m.copyToClipboard(text)

	case key.Matches(msg, m.keys.Browse):
		m.list.ResetFilter()
		cmd := m.list.SetItems(m.buildListItems())
		m.mode = ModeBrowse
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleInputKey handles keys while the add-phrase input has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		ev := m.surf.submit(widget.AddForm)
		if !ev.DefaultPrevented() {
			m.blurInput()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.FocusNext):
		m.blurInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.surf.input, cmd = m.surf.input.Update(msg)
	return m, cmd
}

// handleBrowseKey handles keys in the phrase browser.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a filter, every key belongs to the list
	if m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Browse):
			m.mode = ModeWidget
			return m, nil
		case key.Matches(msg, m.keys.Back) && m.list.FilterState() == list.Unfiltered:
			m.mode = ModeWidget
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) blurInput() {
	m.surf.input.Blur()
	m.focus = focusButton
}

// buildListItems creates list items from the current phrase list.
func (m Model) buildListItems() []list.Item {
	phrases := m.ctrl.Store().All()
	items := make([]list.Item, len(phrases))
	for i, p := range phrases {
		items[i] = phraseItem{phrase: p, index: i}
	}
	return items
}

// copyToClipboard copies text to the system clipboard.
func (m Model) copyToClipboard(text string) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
		defer cancel()
		return copyResultMsg{err: copyText(ctx, text, cfg)}
	}
}

// cardWidth is the width of the phrase card and the input box.
func (m Model) cardWidth() int {
	w := m.width - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeBrowse:
		return m.viewBrowse()
	case ModeHelp:
		return m.viewHelp()
	default:
		return m.viewWidget()
	}
}

func (m Model) viewWidget() string {
	palette := m.surf.root.Palette()
	st := newStyles(palette, m.cardWidth())

	var body strings.Builder

	body.WriteString(st.title.Render("¡Ánimo!"))
	body.WriteString("\n")

	text := m.surf.text(widget.PhraseDisplay)
	if text == "" {
		body.WriteString(st.card.Render(st.hint.Render("Pulsa enter para ver una frase")))
	} else {
		body.WriteString(st.card.Render(st.phrase.Render(text)))
	}
	body.WriteString("\n\n")

	button := st.button
	if m.focus == focusButton {
		button = st.buttonFocused
	}
	body.WriteString(button.Render("Mostrar frase"))
	body.WriteString("\n")

	body.WriteString(st.counter.Render(m.surf.text(widget.Counter)))
	body.WriteString("\n")

	body.WriteString(st.label.Render("Agregar una frase"))
	body.WriteString("\n")
	input := st.input
	if m.focus == focusInput {
		input = st.inputFocused
	}
	body.WriteString(input.Render(m.surf.input.View()))

	if fb := m.surf.text(widget.Feedback); fb != "" {
		body.WriteString("\n")
		body.WriteString(feedbackStyle(m.surf.attr(widget.Feedback, widget.AttrState)).Render(fb))
	}

	content := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, strings.Split(body.String(), "\n")...))

	var s strings.Builder
	if m.cfg.TUI.ShowGradient {
		s.WriteString(renderBand(palette, m.width))
		s.WriteString("\n\n")
	}
	s.WriteString(content)
	s.WriteString("\n\n")
	s.WriteString(m.footer(st))
	if m.cfg.TUI.ShowGradient {
		s.WriteString("\n")
		s.WriteString(renderBand(palette, m.width))
	}

	return s.String()
}

// footer renders the status line, or the key help when there is none.
func (m Model) footer(st styles) string {
	if m.statusMsg != "" {
		if m.statusErr {
			return st.statusErr.Render(m.statusMsg)
		}
		return st.status.Render(m.statusMsg)
	}
	if !m.cfg.TUI.ShowHelp {
		return ""
	}
	if m.focus == focusInput {
		return m.help.ShortHelpView(m.keys.inputHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) viewBrowse() string {
	palette := m.surf.root.Palette()
	m.list.Styles.Title = m.list.Styles.Title.
		Background(palette.Primary).
		Foreground(palette.OnPrimary)

	hint := lipgloss.NewStyle().Foreground(colorMuted).
		Render(fmt.Sprintf("%d phrases · / filter · esc back", len(m.list.Items())))

	return m.list.View() + "\n" + hint
}

func (m Model) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.surf.root.Palette().Primary).
		MarginBottom(1)

	h := m.help
	h.ShowAll = true

	s := titleStyle.Render("Keyboard Shortcuts") + "\n\n"
	s += h.FullHelpView(m.keys.FullHelp())
	s += "\n\n" + lipgloss.NewStyle().Foreground(colorMuted).Render(
		"Press ? or esc to return")

	return s
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config     *config.Config
	ConfigPath string // Config file to watch for changes (empty = no watching)
	Controller *widget.Controller
	Logger     *slog.Logger
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ctrl := opts.Controller
	if ctrl == nil {
		var err error
		ctrl, err = widget.New(widget.Options{
			Logger:          logger,
			CounterTemplate: cfg.Widget.CounterTemplate,
		})
		if err != nil {
			return err
		}
	}

	m := New(cfg, ctrl, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.TUI.WatchConfig && opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, func(c *config.Config) {
			p.Send(configReloadedMsg{cfg: c})
		}, logger)
		if err != nil {
			logger.Warn("failed to create config watcher", "error", err)
		} else {
			if err := watcher.Start(); errors.Is(err, config.ErrNoConfigDir) {
				logger.Debug("not watching config, no config directory", "path", opts.ConfigPath)
			} else if err != nil {
				logger.Warn("failed to start config watcher", "path", opts.ConfigPath, "error", err)
			}
			defer watcher.Stop()
		}
	}

	_, err := p.Run()
	return err
}
