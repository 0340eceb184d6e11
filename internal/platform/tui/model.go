package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tileswap/internal/board"
	"github.com/vovakirdan/tileswap/internal/config"
	"github.com/vovakirdan/tileswap/internal/game"
	"github.com/vovakirdan/tileswap/internal/scores"
	"github.com/vovakirdan/tileswap/internal/settings"
)

// Model is the Bubble Tea model wrapping one puzzle session.
type Model struct {
	session *game.Session
	cfg     config.Config
	store   settings.Store // may be nil; gameplay continues without persistence
	prefs   settings.Settings
	logger  *log.Logger
	theme   Theme

	// beep plays a sound cue; injected so SSH sessions and tests can
	// substitute their own sink.
	beep func(game.Sound)

	nameInput textinput.Model
	cursor    board.Cell
	flash     string
	width     int
	height    int
	quitting  bool
}

// NewModel creates the model for a session. username, when non-empty,
// pre-fills the player name if no name was persisted.
func NewModel(session *game.Session, store settings.Store, cfg config.Config, logger *log.Logger, username string) Model {
	if logger == nil {
		logger = log.Default()
	}
	prefs := settings.Load(store, logger)
	if prefs.PlayerName == "" {
		prefs.PlayerName = username
	}

	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 24
	input.Width = 24
	input.SetValue(prefs.PlayerName)
	input.Focus()

	return Model{
		session:   session,
		cfg:       cfg,
		store:     store,
		prefs:     prefs,
		logger:    logger,
		theme:     NewTheme(prefs.DarkMode),
		beep:      func(game.Sound) { fmt.Fprint(os.Stdout, "\a") },
		nameInput: input,
	}
}

// SetBeep replaces the sound sink.
func (m *Model) SetBeep(beep func(game.Sound)) {
	m.beep = beep
}

// Init starts the one-second clock and the name input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(clockCmd(), textinput.Blink)
}

// Update handles messages and forwards commands to the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ClockMsg:
		m.session.Tick()
		m.drainEvents()
		return m, clockCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleKey dispatches keys by phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.session.Phase() {
	case game.PhaseSplash:
		// Splash advances on its own; keys do nothing here.
		return m, nil
	case game.PhaseMenu:
		return m.handleMenuKey(msg)
	case game.PhasePlaying:
		return m.handlePlayingKey(msg)
	default: // Won, GameOver
		switch msg.String() {
		case "enter", " ", "esc":
			m.session.Acknowledge()
			m.drainEvents()
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
}

// handleMenuKey processes menu input. Printable keys go to the name
// field, so the menu controls live on ctrl/tab combinations.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := m.session.StartGame(m.nameInput.Value()); err == nil {
			m.prefs.PlayerName = m.session.PlayerName()
			settings.Save(m.store, m.logger, m.prefs)
		}
		m.drainEvents()
		return m, nil

	case "tab":
		m.cycleSize(1)
		return m, nil
	case "shift+tab":
		m.cycleSize(-1)
		return m, nil

	case "ctrl+d":
		m.prefs.DarkMode = !m.prefs.DarkMode
		m.theme = NewTheme(m.prefs.DarkMode)
		settings.Save(m.store, m.logger, m.prefs)
		return m, nil

	case "ctrl+s":
		m.prefs.SoundOn = !m.prefs.SoundOn
		settings.Save(m.store, m.logger, m.prefs)
		return m, nil

	case "ctrl+r":
		m.session.Ledger().Reset()
		m.flash = "high scores cleared"
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handlePlayingKey moves the cursor and taps tiles.
func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.session.GridSize()

	switch msg.String() {
	case "up", "w", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "s", "j":
		if m.cursor.Row < size-1 {
			m.cursor.Row++
		}
	case "left", "a", "h":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "d", "l":
		if m.cursor.Col < size-1 {
			m.cursor.Col++
		}
	case "enter", " ":
		m.session.SelectTile(m.cursor.Row, m.cursor.Col)
		m.drainEvents()
	case "esc":
		m.session.GiveUp()
		m.drainEvents()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// drainEvents consumes the engine's change notifications and reacts to
// the ones the presentation cares about.
func (m *Model) drainEvents() {
	for _, ev := range m.session.Events() {
		switch ev.Kind {
		case game.EventPlaySound:
			if m.prefs.SoundOn && m.beep != nil {
				m.beep(ev.Sound)
			}
		case game.EventValidationFailed:
			m.flash = ev.Reason
		case game.EventPhaseChanged:
			if ev.Phase == game.PhasePlaying {
				m.cursor = board.Cell{}
				m.flash = ""
			}
		}
	}
}

// cycleSize steps the menu's board size up or down within the supported
// range.
func (m *Model) cycleSize(delta int) {
	size := m.session.GridSize() + delta
	if size > board.MaxSize {
		size = board.MinSize
	}
	if size < board.MinSize {
		size = board.MaxSize
	}
	m.session.SetGridSize(size)
}

// View renders the active phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.session.Phase() {
	case game.PhaseSplash:
		content = m.viewSplash()
	case game.PhaseMenu:
		content = m.viewMenu()
	case game.PhasePlaying:
		content = m.viewPlaying()
	case game.PhaseWon:
		content = m.viewWon()
	case game.PhaseGameOver:
		content = m.viewGameOver()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewSplash() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render("T I L E S W A P"),
		"",
		m.theme.Subtitle.Render("swap tiles into order before the clock runs out"),
	)
}

func (m Model) viewMenu() string {
	size := m.session.GridSize()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("TILESWAP"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.HUD.Render("name  "))
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.theme.HUD.Render("board "))
	b.WriteString(m.theme.HUDValue.Render(fmt.Sprintf("%d×%d", size, size)))
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("  (%ds limit)", m.cfg.TimeLimit(size))))
	b.WriteString("\n\n")

	b.WriteString(m.viewScores(scores.SizeKey(size)))

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Flash.Render(m.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter play · tab size · ctrl+d dark · ctrl+s sound · ctrl+r clear scores · ctrl+c quit"))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(fmt.Sprintf("dark %s · sound %s", onOff(m.prefs.DarkMode), onOff(m.prefs.SoundOn))))

	return b.String()
}

func (m Model) viewPlaying() string {
	snap := m.session.Snapshot()

	hud := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.HUD.Render(snap.PlayerName),
		m.theme.HUD.Render("  moves "),
		m.theme.HUDValue.Render(fmt.Sprintf("%d", snap.Moves)),
		m.theme.HUD.Render("  time "),
		m.theme.HUDValue.Render(fmt.Sprintf("%ds", snap.TimeLeft)),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		hud,
		"",
		m.viewGrid(snap),
		"",
		m.theme.Help.Render("arrows move · enter select/swap · esc give up · q quit"),
	)
}

// viewGrid draws the board. The selected tile renders reversed, the
// cursor tile underlined.
func (m Model) viewGrid(snap game.Snapshot) string {
	rows := make([]string, 0, len(snap.Grid))
	for i, row := range snap.Grid {
		cells := make([]string, 0, len(row))
		for j, tile := range row {
			cell := board.Cell{Row: i, Col: j}
			selected := snap.Selection != nil && *snap.Selection == cell
			style := tileStyle(tile.Color, selected, m.cursor == cell)
			cells = append(cells, style.Render(fmt.Sprintf("%2d", tile.Number)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewWon() string {
	snap := m.session.Snapshot()
	key := scores.SizeKey(snap.GridSize)

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render("SOLVED!"),
		"",
		m.theme.HUD.Render(fmt.Sprintf("%d moves with %ds to spare", snap.Moves, snap.TimeLeft)),
		"",
		m.viewScores(key),
		m.theme.Help.Render("enter to continue"),
	)
	return m.theme.Overlay.Render(body)
}

func (m Model) viewGameOver() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render("TIME'S UP"),
		"",
		m.theme.Subtitle.Render("the board got the better of you"),
		"",
		m.theme.Help.Render("enter to continue"),
	)
	return m.theme.Overlay.Render(body)
}

// viewScores renders the ranked table for one size key.
func (m Model) viewScores(key string) string {
	top := m.session.Ledger().Top(key)

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("best %s runs", key)))
	b.WriteString("\n")
	if len(top) == 0 {
		b.WriteString(m.theme.ScoreRow.Render("no scores yet"))
		b.WriteString("\n")
		return b.String()
	}
	for i, r := range top {
		row := fmt.Sprintf("%d. %-12s %3d moves  %3ds left  %s",
			i+1, r.Name, r.Moves, r.TimeRemaining, r.Date.Format("2006-01-02"))
		b.WriteString(m.theme.ScoreRow.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
