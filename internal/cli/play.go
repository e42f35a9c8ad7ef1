package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube"
	"github.com/SeamusWaldron/cube/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	inputStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	turnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// recentTurns is how many applied turns the status line shows.
const recentTurns = 20

func newPlayCmd(a *app) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "play [size]",
		Short: "Turn a cube interactively",
		Long: `Start an interactive session. Type turns in standard notation and press
Enter to apply them; the net is redrawn after every sequence.

Keyboard shortcuts:
  Enter   - Apply the typed turns
  Ctrl+S  - Scramble the cube
  Ctrl+R  - Reset to solved
  Esc     - Quit

Sessions, their turns and orientation changes are saved to the database
unless --no-save is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, rest, err := a.splitSize(args)
			if err != nil {
				return err
			}
			if len(rest) > 0 {
				return fmt.Errorf("%w: got %q", cube.ErrInvalidSize, rest[0])
			}

			tracker, err := cube.NewTracker(size, a.cubeOptions()...)
			if err != nil {
				return err
			}

			var rec *sessionRecorder
			if !noSave {
				db, err := a.openDB()
				if err != nil {
					a.logger.Warn("playing without saving", "err", err)
				} else {
					rec = newSessionRecorder(db, size, a.logger)
				}
			}

			m := newPlayModel(tracker, render.New(a.cfg.Colors), rec, a.cfg.Scramble.Length, a.seedValue())
			if err := m.begin(); err != nil {
				return err
			}

			_, runErr := tea.NewProgram(m, tea.WithAltScreen()).Run()
			if rec != nil {
				if err := rec.Close(tracker.IsSolved()); err != nil && runErr == nil {
					runErr = err
				}
			}
			if runErr != nil {
				return fmt.Errorf("play error: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the session")
	return cmd
}

// Messages
type tickMsg time.Time

// Model
type playModel struct {
	tracker        *cube.Tracker
	renderer       *render.Renderer
	recorder       *sessionRecorder
	scrambleLength int
	seed           *int64

	input     string
	recent    []string
	scramble  string
	solvedAt  int
	startTime time.Time
	elapsed   time.Duration
	timing    bool
	err       error
	quitting  bool
}

func newPlayModel(tracker *cube.Tracker, renderer *render.Renderer, rec *sessionRecorder, scrambleLength int, seed *int64) *playModel {
	m := &playModel{
		tracker:        tracker,
		renderer:       renderer,
		recorder:       rec,
		scrambleLength: scrambleLength,
		seed:           seed,
		solvedAt:       -1,
	}

	tracker.OnTurn(func(t cube.Turn, count int) {
		m.recent = append(m.recent, t.String())
		if len(m.recent) > recentTurns {
			m.recent = m.recent[len(m.recent)-recentTurns:]
		}
		if m.recorder != nil {
			if err := m.recorder.record(t, tracker.Cube().Orientation()); err != nil {
				m.err = err
			}
		}
	})
	tracker.OnSolved(func(count int) {
		m.solvedAt = count
		m.timing = false
		if m.recorder != nil {
			if err := m.recorder.end(true); err != nil {
				m.err = err
			}
		}
	})

	return m
}

// begin opens the first session.
func (m *playModel) begin() error {
	if m.recorder == nil {
		return nil
	}
	return m.recorder.start(nil, nil, m.tracker.Cube().Orientation())
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	return tick()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			m.applyInput()

		case tea.KeyCtrlS:
			m.scrambleCube()

		case tea.KeyCtrlR:
			m.reset()

		case tea.KeyBackspace:
			if r := []rune(m.input); len(r) > 0 {
				m.input = string(r[:len(r)-1])
			}

		case tea.KeySpace:
			m.input += " "

		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}

	case tickMsg:
		if m.timing {
			m.elapsed = time.Since(m.startTime)
		}
		return m, tick()
	}

	return m, nil
}

func (m *playModel) applyInput() {
	notation := strings.TrimSpace(m.input)
	if notation == "" {
		return
	}

	turns, err := cube.ParseTurns(notation)
	if err != nil {
		m.err = err
		return
	}

	if !m.timing && m.scramble != "" && m.solvedAt < 0 {
		m.timing = true
		m.startTime = time.Now()
	}

	m.err = nil
	if err := m.tracker.Apply(turns...); err != nil {
		m.err = err
		return
	}
	m.input = ""
}

func (m *playModel) scrambleCube() {
	turns, err := m.tracker.Scramble(m.scrambleLength)
	if err != nil {
		m.err = err
		return
	}

	m.scramble = cube.FormatTurns(turns)
	m.recent = nil
	m.solvedAt = -1
	m.timing = false
	m.elapsed = 0
	m.err = nil

	if m.recorder != nil {
		if err := m.recorder.start(turns, m.seed, m.tracker.Cube().Orientation()); err != nil {
			m.err = err
		}
	}
}

func (m *playModel) reset() {
	m.tracker.Reset()
	m.scramble = ""
	m.recent = nil
	m.solvedAt = -1
	m.timing = false
	m.elapsed = 0
	m.err = nil

	if m.recorder != nil {
		if err := m.recorder.start(nil, nil, m.tracker.Cube().Orientation()); err != nil {
			m.err = err
		}
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Session ended.\n"
	}

	var b strings.Builder
	c := m.tracker.Cube()

	b.WriteString(titleStyle.Render(fmt.Sprintf("%d×%d×%d Cube", c.Size(), c.Size(), c.Size())))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Cube(c))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Status(m.tracker.IsSolved()))
	if m.solvedAt >= 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  solved in %d turns", m.solvedAt)))
	}
	b.WriteString("\n")

	o := c.Orientation()
	b.WriteString(statusStyle.Render(fmt.Sprintf("Up: %s  Front: %s  Turns: %d  Time: %s",
		o.Up, o.Front, m.tracker.TurnCount(), formatElapsed(m.elapsed))))
	b.WriteString("\n")

	if m.scramble != "" {
		b.WriteString(statusStyle.Render("Scramble: " + m.scramble))
		b.WriteString("\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("Turns: ")
		b.WriteString(turnStyle.Render(strings.Join(m.recent, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(inputStyle.Render(m.input))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter=apply  Ctrl+S=scramble  Ctrl+R=reset  Esc=quit"))
	b.WriteString("\n")

	return b.String()
}

func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}
