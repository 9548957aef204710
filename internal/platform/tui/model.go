package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catchverse/internal/config"
	"github.com/vovakirdan/catchverse/internal/core"
	"github.com/vovakirdan/catchverse/internal/game"
	"github.com/vovakirdan/catchverse/internal/leaderboard"
)

const maxNameLength = 24

// Options configures a Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Keeper  *leaderboard.Keeper
	Logger  *log.Logger
	Share   ShareFunc // Nil disables sharing
	Name    string    // Pre-fills the name form
}

// banner is a notification shown over the playfield until it expires.
type banner struct {
	id    int
	text  string
	color core.Color
}

// bannerExpiredMsg removes the banner with the given id.
type bannerExpiredMsg struct {
	id int
}

// Model is the Bubble Tea model for one Catchverse session.
type Model struct {
	session   *game.Session
	cfg       config.Config
	runtime   core.RuntimeConfig
	keeper    *leaderboard.Keeper
	logger    *log.Logger
	share     ShareFunc
	screen    *core.Screen
	nameInput textinput.Model
	board     table.Model
	help      help.Model
	keys      KeyMap
	banners   []banner
	nextBanID int
	formErr   string
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model in the name-entry phase.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	sessionOpts := []game.Option{game.WithLogger(logger)}
	if opts.Keeper != nil {
		sessionOpts = append(sessionOpts, game.WithRecorder(opts.Keeper))
	}

	ti := textinput.New()
	ti.Placeholder = "Your Name..."
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.SetValue(opts.Name)
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	return Model{
		session:   game.NewSession(opts.Config, rt, sessionOpts...),
		cfg:       opts.Config,
		runtime:   rt,
		keeper:    opts.Keeper,
		logger:    logger,
		share:     opts.Share,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		nameInput: ti,
		help:      h,
		keys:      DefaultKeyMap(),
		width:     rt.ScreenW,
		height:    rt.ScreenH,
	}
}

// Session returns the game session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case bannerExpiredMsg:
		m.banners = removeBanner(m.banners, msg.id)
		return m, nil

	case shareDoneMsg:
		if msg.err != nil {
			m.logger.Warn("share failed", "err", msg.err)
			return m.addBanner("Could not copy score", core.ColorRed)
		}
		return m.addBanner("Score copied!", core.ColorBrightGreen)
	}

	if m.session.Phase() == game.PhaseIdle {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleResize processes window resize events. The running game keeps its
// state; balls outside the new playfield are dropped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	if m.session.Phase() == game.PhaseOver {
		m.refreshBoard()
	}
	return m, nil
}

// handleTick runs one simulation step and re-arms the tick while the loop
// that armed it is still current.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.session.Live(msg.Gen) {
		return m, nil
	}

	m.session.Tick()
	m, cmd := m.drainEvents()

	if !m.session.Live(msg.Gen) {
		return m, cmd
	}
	return m, tea.Batch(cmd, tickCmd(m.runtime.TickInterval(), msg.Gen))
}

// handleMouse resolves a left click on the playfield.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.Phase() != game.PhaseActive {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	e, ok := m.session.Snapshot().EntityAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	outcome := m.session.ResolveHit(e.ID, e.Kind)
	if outcome != game.HitApplied {
		return m, nil
	}
	return m.drainEvents()
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Phase() {
	case game.PhaseIdle:
		return m.handleNameKey(msg)

	case game.PhaseInstructions:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Start):
			return m.startGame()
		}

	case game.PhaseActive:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}

	case game.PhaseOver:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.PlayAgain):
			if err := m.session.ResetGame(); err != nil {
				m.logger.Error("play again", "err", err)
			}
			m.banners = nil
		case key.Matches(msg, m.keys.Exit):
			if err := m.session.ExitGame(); err != nil {
				m.logger.Error("exit game", "err", err)
			}
			m.banners = nil
			m.nameInput.SetValue("")
			m.nameInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Share):
			if m.share == nil {
				return m, nil
			}
			return m, shareCmd(m.share, game.ShareText(m.session.Score()))
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.board, cmd = m.board.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// handleNameKey feeds the name form and submits it on enter.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Submit):
		err := m.session.SubmitName(m.nameInput.Value())
		if errors.Is(err, game.ErrNameRequired) {
			m.formErr = "Please enter a name."
			return m, nil
		}
		if err != nil {
			m.logger.Error("submit name", "err", err)
			return m, nil
		}
		m.formErr = ""
		m.nameInput.Blur()
		m.logger.Info("player joined", "player", m.session.PlayerName())
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// startGame starts a play-through and arms the first tick of its loop.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	gen, err := m.session.StartGame()
	if err != nil {
		m.logger.Error("start game", "err", err)
		return m, nil
	}
	m.banners = nil
	m.session.Events() // Discard anything left from the previous game
	return m, tickCmd(m.runtime.TickInterval(), gen)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Close()
	m.quitting = true
	return m, tea.Quit
}

// drainEvents turns session notifications into banners.
func (m Model) drainEvents() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, ev := range m.session.Events() {
		var cmd tea.Cmd
		switch ev.Kind {
		case game.EventHeartLost:
			m, cmd = m.addBanner("You lost a heart!", core.ColorBrightRed)
		case game.EventLevelUp:
			color := core.ColorBrightYellow
			if ev.Extreme {
				color = core.ColorOrange
			}
			m, cmd = m.addBanner(levelUpText(ev), color)
		case game.EventGameOver:
			m.banners = nil
			m.refreshBoard()
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// addBanner shows text until the notification timeout expires.
func (m Model) addBanner(text string, color core.Color) (Model, tea.Cmd) {
	m.nextBanID++
	id := m.nextBanID
	m.banners = append(m.banners, banner{id: id, text: text, color: color})

	return m, tea.Tick(m.cfg.Display.Notification, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

func removeBanner(banners []banner, id int) []banner {
	kept := banners[:0]
	for _, b := range banners {
		if b.id != id {
			kept = append(kept, b)
		}
	}
	return kept
}

// levelUpText formats the level-up announcement.
func levelUpText(ev game.Event) string {
	text := fmt.Sprintf("LEVEL %d! Speed %d%% FASTER!", ev.Level, ev.SpeedBonus)
	if ev.Extreme {
		return "EXTREME " + text + " INSANE MODE!"
	}
	return text
}

// refreshBoard rebuilds the leaderboard table, selecting the last result.
func (m *Model) refreshBoard() {
	var entries []leaderboard.Entry
	if m.keeper != nil {
		entries = m.keeper.Entries()
	}
	last := leaderboard.Entry{Name: m.session.PlayerName(), Score: m.session.Score()}
	m.board = newScoreboard(entries, m.width, m.height, last)
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.Phase() {
	case game.PhaseIdle:
		return m.viewNameForm()
	case game.PhaseInstructions:
		return m.viewInstructions()
	case game.PhaseOver:
		return m.viewGameOver()
	default:
		return m.viewPlayfield()
	}
}

func (m Model) viewNameForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Enter Your Name"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	if m.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.formErr))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys.ForPhase(game.PhaseIdle))))

	return centered(m.width, m.height, boxStyle.Render(b.String()))
}

func (m Model) viewInstructions() string {
	ball := func(c core.Color) string {
		return colorStyles[c].Render(string(game.BallChar))
	}
	heart := colorStyles[core.ColorRed].Render(string(game.HeartChar))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Welcome, %s!", m.session.PlayerName())))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  Click white balls to score\n", ball(game.KindBenign.Color()))
	fmt.Fprintf(&b, "%s  Catch green balls to gain a %s\n", ball(game.KindBonus.Color()), heart)
	fmt.Fprintf(&b, "%s  Avoid red balls, they remove a %s\n", ball(game.KindHazard.Color()), heart)
	b.WriteString("\nEvery white ball that reaches the floor costs a heart.\n\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys.ForPhase(game.PhaseInstructions))))

	return centered(m.width, m.height, boxStyle.Render(b.String()))
}

func (m Model) viewPlayfield() string {
	m.session.Snapshot().Render(m.screen)

	// Banners are drawn over the middle of the playfield
	y := m.screen.Height()/2 - len(m.banners)/2
	for i, b := range m.banners {
		m.screen.DrawTextCentered(y+i, b.text, b.color)
	}
	return RenderScreen(m.screen)
}

func (m Model) viewGameOver() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Game Over, %s!", m.session.PlayerName())))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Your Score: %s   Level: %d\n\n",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", m.session.Score())),
		m.session.Level())
	b.WriteString(titleStyle.Render("Leaderboard"))
	b.WriteString("\n")
	b.WriteString(scoreboardView(m.board))
	b.WriteString("\n\n")
	for _, ban := range m.banners {
		b.WriteString(colorStyles[ban.color].Render(ban.text))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render(m.help.View(m.keys.ForPhase(game.PhaseOver))))

	return centered(m.width, m.height, boxStyle.Render(b.String()))
}

// Run starts a local Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
