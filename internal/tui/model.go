package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/benjaminbelloeil/CursiveWorld/internal/engine"
	"github.com/benjaminbelloeil/CursiveWorld/internal/geom"
	"github.com/benjaminbelloeil/CursiveWorld/internal/model"
	"github.com/benjaminbelloeil/CursiveWorld/internal/sequence"
	statsPkg "github.com/benjaminbelloeil/CursiveWorld/internal/stats"
	"github.com/benjaminbelloeil/CursiveWorld/internal/store"
)

const toastDuration = 2 * time.Second

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	toastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type toastExpiredMsg int

// Model implements the Bubble Tea tracing UI.
type Model struct {
	config            model.Config
	store             *store.Store
	seq               *sequence.Sequencer
	pool              []rune
	weakSet           map[rune]struct{}
	weakNoticePrinted bool

	width  int
	height int
	canvas *Canvas

	queue    []rune
	queueIdx int

	session *engine.Session
	drawing engine.Drawing

	penDown  bool
	lastCell [2]int

	started     bool
	startedAt   time.Time
	violations  int
	resets      int
	completed   bool
	violationAt *geom.Point
	showGuides  bool

	toast    string
	toastSeq int

	hasLast      bool
	lastSeconds  float64
	allAttempts  int
	allCompleted int
	mastered     map[string]struct{}
}

// NewModel constructs a tracing TUI model. The pool is the set of
// letters to practice; the queue order is drawn from it each pass.
func NewModel(cfg model.Config, store *store.Store, seq *sequence.Sequencer, pool []rune, weakSet map[rune]struct{}, weakNoticePrinted bool) *Model {
	m := &Model{
		config:            cfg,
		store:             store,
		seq:               seq,
		pool:              pool,
		weakSet:           weakSet,
		weakNoticePrinted: weakNoticePrinted,
		showGuides:        cfg.ShowGuides,
		lastCell:          [2]int{-1, -1},
		mastered:          map[string]struct{}{},
	}
	m.queue = m.generateQueue()
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeCanvas()
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case toastExpiredMsg:
		if int(msg) == m.toastSeq {
			m.toast = ""
			m.violationAt = nil
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.started && !m.completed {
			m.finishPractice(false)
		}
		return m, tea.Quit
	case "n":
		if m.started && !m.completed {
			m.finishPractice(false)
		}
		m.advanceLetter()
		return m, nil
	case "r":
		if m.started && !m.completed {
			m.resets++
		}
		m.drawing.Clear()
		if m.session != nil {
			m.session.Reset()
		}
		m.penDown = false
		m.violationAt = nil
		m.completed = false
		return m, nil
	case "g":
		m.showGuides = !m.showGuides
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.canvas == nil || m.session == nil {
		return nil
	}
	cellX, cellY := msg.X, msg.Y-headerRows
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.canvas.Contains(cellX, cellY) {
			return nil
		}
		if m.completed {
			return nil
		}
		if !m.started {
			m.started = true
			m.startedAt = time.Now()
		}
		m.penDown = true
		m.lastCell = [2]int{cellX, cellY}
		m.drawing.Append(m.canvas.CellToPoint(cellX, cellY), time.Now(), true)
		return m.observe()
	case tea.MouseActionMotion:
		if !m.penDown || !m.canvas.Contains(cellX, cellY) {
			return nil
		}
		if m.lastCell == [2]int{cellX, cellY} {
			return nil
		}
		m.lastCell = [2]int{cellX, cellY}
		m.drawing.Append(m.canvas.CellToPoint(cellX, cellY), time.Now(), false)
		return m.observe()
	case tea.MouseActionRelease:
		if !m.penDown {
			return nil
		}
		m.penDown = false
		m.lastCell = [2]int{-1, -1}
		return m.observe()
	default:
		return nil
	}
}

// observe feeds the current drawing to the session and translates
// the outcome into UI effects.
func (m *Model) observe() tea.Cmd {
	if m.completed {
		return nil
	}
	upd := m.session.Observe(m.drawing)
	if upd.OutOfBounds {
		m.violations++
		at := upd.ViolationAt
		m.violationAt = &at
		m.penDown = false
		m.drawing.Clear()
		return m.showToast("Out of bounds. Ink cleared, progress kept.")
	}
	if upd.LetterCompleted {
		m.completed = true
		m.finishPractice(true)
		return m.showToast(fmt.Sprintf("Letter %c complete! Press n for the next letter.", m.currentLetter()))
	}
	if upd.StrokeAdvanced {
		return m.showToast(fmt.Sprintf("Stroke %d of %d", upd.StrokeIndex+1, m.session.StrokeCount()))
	}
	return nil
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg(seq)
	})
}

// View layout: one header row, the canvas block, one footer row.
const headerRows = 1

func (m *Model) resizeCanvas() {
	if m.width < 1 || m.height < headerRows+2 {
		m.canvas = nil
		return
	}
	m.canvas = NewCanvas(m.width, m.height-headerRows-1)
	m.resetPractice()
}

func (m *Model) currentLetter() rune {
	return m.queue[m.queueIdx]
}

func (m *Model) generateQueue() []rune {
	if m.config.FocusWeak && len(m.weakSet) > 0 {
		return m.seq.OrderWeighted(m.pool, len(m.pool), m.weakSet, m.config.WeakFactor)
	}
	return m.seq.Order(m.pool, m.config.Shuffle)
}

func (m *Model) advanceLetter() {
	m.queueIdx++
	if m.queueIdx >= len(m.queue) {
		m.queue = m.generateQueue()
		m.queueIdx = 0
	}
	m.resetPractice()
}

// resetPractice rebinds the session to the current letter and canvas
// and clears all attempt state.
func (m *Model) resetPractice() {
	m.drawing.Clear()
	m.penDown = false
	m.lastCell = [2]int{-1, -1}
	m.started = false
	m.startedAt = time.Time{}
	m.violations = 0
	m.resets = 0
	m.completed = false
	m.violationAt = nil
	if m.canvas == nil {
		m.session = nil
		return
	}
	unitW, unitH := m.canvas.UnitSize()
	if m.session == nil {
		m.session = engine.NewSession(m.currentLetter(), unitW, unitH)
		return
	}
	m.session.Setup(m.currentLetter(), unitW, unitH)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.canvas == nil || m.session == nil {
		return "Terminal too small."
	}
	body := m.canvas.Render(m.session, m.drawing, m.showGuides, m.violationAt)
	header := lipgloss.Place(m.width, headerRows, lipgloss.Center, lipgloss.Center, m.renderHeader())
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return header + "\n" + body + "\n" + footer
}

func (m *Model) renderHeader() string {
	title := fmt.Sprintf("Trace letter %c", m.currentLetter())
	if m.toast != "" {
		return headerStyle.Render(title) + "  " + toastStyle.Render(m.toast)
	}
	return headerStyle.Render(title)
}

func (m *Model) renderFooter() string {
	if m.session == nil {
		return ""
	}
	segments := []string{
		fmt.Sprintf("Stroke %d/%d", m.session.StrokeIndex()+1, m.session.StrokeCount()),
		fmt.Sprintf("Progress %d%%", int(m.session.Progress()*100)),
		fmt.Sprintf("Violations %d", m.violations),
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1fs", m.lastSeconds))
	}
	segments = append(segments, fmt.Sprintf("Mastered %d/%d", len(m.mastered), len(m.pool)))
	segments = append(segments, "n next · r retry · g guides · q quit")
	footer := strings.Join(segments, "  ")
	if m.width > 0 && runewidth.StringWidth(footer) > m.width {
		footer = runewidth.Truncate(footer, m.width, "…")
	}
	return footerStyle.Render(footer)
}

func (m *Model) loadFooterStats() {
	ctx := context.Background()
	practices, err := m.store.ListPractices(ctx, model.StatsConfig{})
	if err != nil {
		logErrf("failed to load practice stats: %v\n", err)
		return
	}
	for _, p := range practices {
		m.allAttempts++
		if p.Completed {
			m.allCompleted++
			m.mastered[p.Letter] = struct{}{}
		}
	}
	if len(practices) > 0 {
		last := practices[len(practices)-1]
		m.lastSeconds = float64(last.DurationMs) / 1000.0
		m.hasLast = true
	}
}

func (m *Model) finishPractice(completed bool) {
	if !m.started {
		return
	}
	endedAt := time.Now()
	unitW, unitH := m.canvas.UnitSize()
	stats := model.PracticeStats{
		StartedAt:    m.startedAt,
		EndedAt:      endedAt,
		Letter:       string(m.currentLetter()),
		Completed:    completed,
		Violations:   m.violations,
		Resets:       m.resets,
		StrokeCount:  m.session.StrokeCount(),
		CanvasWidth:  int(unitW),
		CanvasHeight: int(unitH),
		DurationMs:   endedAt.Sub(m.startedAt).Milliseconds(),
	}

	ctx := context.Background()
	if _, err := m.store.InsertPractice(ctx, stats); err != nil {
		logErrf("failed to save practice: %v\n", err)
	}
	m.allAttempts++
	if completed {
		m.allCompleted++
		m.mastered[stats.Letter] = struct{}{}
	}
	m.lastSeconds = float64(stats.DurationMs) / 1000.0
	m.hasLast = true

	if m.config.FocusWeak {
		m.refreshWeakSet()
	}
}

func (m *Model) refreshWeakSet() {
	ctx := context.Background()
	aggs, err := m.store.GetWeakLetters(ctx, m.config.WeakWindow)
	if err != nil {
		logErrf("failed to load weak letters: %v\n", err)
		return
	}
	if len(aggs) == 0 {
		if !m.weakNoticePrinted {
			logErrln("no stats available for weak-letter focus yet; using configured order")
			m.weakNoticePrinted = true
		}
		m.weakSet = map[rune]struct{}{}
		return
	}
	m.weakSet = statsPkg.SelectWeakLetters(aggs, m.config.WeakTop)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
