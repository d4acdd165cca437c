package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoi/pkg/config"
	"github.com/matzehuels/hanoi/pkg/core/hanoi"
	"github.com/matzehuels/hanoi/pkg/core/render/ascii"
	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/observability"
)

// playTUI runs the interactive full-screen game.
func (c *CLI) playTUI(ctx context.Context, cfg config.Config) error {
	m, err := newGameModel(ctx, cfg.Disks, cfg.Color)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(c.In), tea.WithOutput(c.Out))
	final, err := prog.Run()
	if err != nil {
		if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if fm, ok := final.(gameModel); ok && fm.phase != phaseDone {
		loggerFromContext(ctx).Debug("game abandoned", "game", fm.id)
	}
	return nil
}

// =============================================================================
// GameModel - Interactive game
// =============================================================================

type phase int

const (
	phaseSetup phase = iota // asking for the disk count
	phasePlay
	phaseDone
)

// maxDiskDigits caps the disk count typed during setup.
const maxDiskDigits = 2

// gameModel is the bubbletea model for an interactive game.
type gameModel struct {
	ctx   context.Context
	id    string
	phase phase
	game  *hanoi.Game
	start time.Time

	input   string // disk count typed during setup
	cursor  int
	source  int // selected source tower, -1 for none
	history []hanoi.Move

	status string
	failed bool
	p      printer
}

// newGameModel creates a model. With disks == 0 the model starts by asking
// for the disk count.
func newGameModel(ctx context.Context, disks int, color bool) (gameModel, error) {
	m := gameModel{
		ctx:    ctx,
		id:     newGameID(),
		source: -1,
		p:      printer{color: color},
	}
	if disks == 0 {
		return m, nil
	}
	g, err := hanoi.New(disks)
	if err != nil {
		return m, err
	}
	m.begin(g)
	return m, nil
}

func (m *gameModel) begin(g *hanoi.Game) {
	m.game = g
	m.phase = phasePlay
	m.start = time.Now()
	observability.Game().OnGameStart(m.ctx, m.id, g.Disks())
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSetup:
		return m.updateSetup(key)
	case phasePlay:
		return m.updatePlay(key)
	}
	return m, nil
}

func (m gameModel) updateSetup(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := key.String(); s {
	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case "enter":
		n, err := strconv.Atoi(m.input)
		if err != nil {
			m.setError("Enter a number of disks")
			return m, nil
		}
		g, err := hanoi.New(n)
		if err != nil {
			m.setError(errors.UserMessage(err))
			return m, nil
		}
		m.clearStatus()
		m.begin(g)
	default:
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(m.input) < maxDiskDigits {
			m.input += s
		}
	}
	return m, nil
}

func (m gameModel) updatePlay(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := key.String(); s {
	case "0", "1", "2":
		return m.pick(int(s[0] - '0'))
	case "left":
		m.cursor = (m.cursor + hanoi.NumTowers - 1) % hanoi.NumTowers
	case "right":
		m.cursor = (m.cursor + 1) % hanoi.NumTowers
	case " ", "enter":
		return m.pick(m.cursor)
	case "esc":
		m.source = -1
		m.clearStatus()
	case "h":
		if mv, ok := hanoi.Hint(m.game); ok {
			m.cursor = mv.From
			m.setInfo(fmt.Sprintf("Hint: move %s", mv))
		}
	case "u":
		m.undo()
	}
	return m, nil
}

// pick selects tower i as source, or as destination once a source is chosen.
// Picking the selected source again cancels the selection.
func (m gameModel) pick(i int) (tea.Model, tea.Cmd) {
	m.cursor = i
	switch m.source {
	case -1:
		m.source = i
		m.setInfo(fmt.Sprintf("Source: tower %d", i))
		return m, nil
	case i:
		m.source = -1
		m.clearStatus()
		return m, nil
	}

	from := m.source
	m.source = -1
	return m.move(from, i)
}

func (m gameModel) move(from, to int) (tea.Model, tea.Cmd) {
	hooks := observability.Game()
	if err := m.game.ApplyMove(from, to); err != nil {
		hooks.OnMoveRejected(m.ctx, m.id, from, to, err)
		m.setError(moveMessage(err))
		return m, nil
	}

	hooks.OnMove(m.ctx, m.id, from, to, m.game.Moves())
	m.history = append(m.history, hanoi.Move{From: from, To: to})
	m.clearStatus()

	if m.game.IsWon() {
		m.phase = phaseDone
		m.status = fmt.Sprintf(msgWon, m.game.Moves())
		hooks.OnGameWon(m.ctx, m.id, m.game.Moves(), time.Since(m.start))
		return m, tea.Quit
	}
	return m, nil
}

// undo reverses the last accepted move. Reversing is itself a legal move
// and counts toward the total.
func (m *gameModel) undo() {
	if len(m.history) == 0 {
		m.setInfo("Nothing to undo")
		return
	}
	last := m.history[len(m.history)-1]
	if err := m.game.ApplyMove(last.To, last.From); err != nil {
		m.setError(errors.UserMessage(err))
		return
	}
	m.history = m.history[:len(m.history)-1]
	m.source = -1
	observability.Game().OnMove(m.ctx, m.id, last.To, last.From, m.game.Moves())
	m.setInfo(fmt.Sprintf("Undid %s", last))
}

func (m *gameModel) setError(s string) { m.status, m.failed = s, true }
func (m *gameModel) setInfo(s string)  { m.status, m.failed = s, false }
func (m *gameModel) clearStatus()      { m.status, m.failed = "", false }

func (m gameModel) View() string {
	var b strings.Builder

	b.WriteString(m.p.style(StyleTitle, "Tower of Hanoi"))
	b.WriteString("\n\n")

	if m.phase == phaseSetup {
		b.WriteString(promptDisks + m.input + "_\n")
		m.writeStatus(&b)
		b.WriteString(m.p.style(StyleDim, "digits: type  enter: start  q: quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Move: %s\n\n", m.p.style(StyleNumber, strconv.Itoa(m.game.Moves()))))
	b.WriteString(m.board())
	b.WriteString("\n\n")
	m.writeStatus(&b)

	if m.phase == phasePlay {
		b.WriteString(m.p.style(StyleDim, "0-2/←→ space: pick  h: hint  u: undo  esc: cancel  q: quit"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m gameModel) writeStatus(b *strings.Builder) {
	switch {
	case m.status == "":
		b.WriteString("\n")
	case m.phase == phaseDone:
		b.WriteString(m.p.style(StyleSuccess, m.status) + "\n")
	case m.failed:
		b.WriteString(m.p.style(StyleError, m.status) + "\n")
	default:
		b.WriteString(m.p.style(StyleDim, m.status) + "\n")
	}
	b.WriteString("\n")
}

// board lays the towers out side by side.
func (m gameModel) board() string {
	n := m.game.Disks()
	opts := m.p.renderOptions()

	cols := make([]string, 0, hanoi.NumTowers)
	for i, tower := range m.game.Towers() {
		label := fmt.Sprintf("Tower %d", i)
		switch {
		case i == m.source:
			label = m.p.style(styleSelected, "▼ "+label)
		case i == m.cursor && m.phase == phasePlay:
			label = m.p.style(StyleValue, "› "+label)
		default:
			label = m.p.style(StyleDim, label)
		}

		rows := append([]string{label}, ascii.TowerRows(tower, n, opts...)...)
		col := lipgloss.JoinVertical(lipgloss.Center, rows...)
		cols = append(cols, lipgloss.NewStyle().PaddingRight(3).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}
