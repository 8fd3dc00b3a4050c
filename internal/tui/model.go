// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/tuihanzi/internal/audio"
	"github.com/verte-zerg/tuihanzi/internal/game"
	"github.com/verte-zerg/tuihanzi/internal/model"
	"github.com/verte-zerg/tuihanzi/internal/recap"
)

const (
	barColor     = "#56AB2F"
	barWarnColor = "#E74C3C"
	warnSeconds  = 5
)

// timerMsg delivers a TimerSet wake-up back to Update.
type timerMsg struct {
	id uint64
}

// Model implements the Bubble Tea quiz UI. It is also the game's Presenter,
// so every controller callback runs inside Update.
type Model struct {
	ctrl   *game.Controller
	timers *game.TimerSet
	queued []tea.Cmd
	player audio.Player
	log    *zap.Logger

	input textinput.Model
	bar   progress.Model

	width  int
	height int

	glyph       string
	hint        string
	score       int
	round       int
	totalRounds int
	remaining   int
	maxSeconds  int

	feedback string
	outcome  model.Outcome

	summary        *model.Summary
	showCompletion bool
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	glyphStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#56AB2F")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#E74C3C")).Padding(1, 2)
	flowerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Bold(true)
)

// NewModel constructs a quiz TUI model. A nil player is silent.
func NewModel(settings game.Settings, picker game.Picker, player audio.Player, log *zap.Logger) *Model {
	if player == nil {
		player = audio.Silent{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	input := textinput.New()
	input.Placeholder = "pinyin"
	input.Prompt = "> "
	input.CharLimit = 32
	input.Width = 20

	m := &Model{
		player:      player,
		log:         log,
		input:       input,
		bar:         progress.New(progress.WithSolidFill(barColor), progress.WithoutPercentage(), progress.WithWidth(30)),
		totalRounds: settings.TotalRounds,
		maxSeconds:  settings.RoundSeconds,
	}
	m.timers = game.NewTimerSet(m.arm)
	m.ctrl = game.New(settings, picker, m, m.timers, log)
	return m
}

func (m *Model) arm(id uint64, d time.Duration) {
	m.queued = append(m.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.queued, cmd)
	m.queued = nil
	return tea.Batch(cmds...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case timerMsg:
		m.timers.Fire(msg.id)
		return m, m.flush(nil)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, m.flush(cmd)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.ctrl.Phase() {
	case game.PhaseIdle:
		switch msg.String() {
		case "enter":
			m.ctrl.Start()
		case "q", "esc":
			return m, tea.Quit
		}
		return m, m.flush(nil)
	case game.PhaseFinished:
		switch msg.String() {
		case "enter", "r":
			m.ctrl.Start()
		case "esc":
			if m.showCompletion {
				m.HideCompletion()
				return m, nil
			}
			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}
		return m, m.flush(nil)
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.ctrl.Submit(m.input.Value())
		return m, m.flush(nil)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, m.flush(cmd)
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch {
	case m.showCompletion && m.summary != nil:
		content = m.renderCompletion()
	case m.ctrl.Phase() == game.PhaseIdle:
		content = m.renderIdle()
	case m.ctrl.Phase() == game.PhaseFinished:
		content = m.renderIdle()
	default:
		content = m.renderRound()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := footerStyle.Render(m.renderHelp())
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderIdle() string {
	lines := []string{titleStyle.Render("汉字拼音 · Hanzi Pinyin Quiz")}
	if m.summary != nil {
		lines = append(lines, fmt.Sprintf("Last score: %d", m.summary.Score))
	}
	lines = append(lines, "", "Press Enter to start")
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderRound() string {
	lines := []string{
		m.renderStatus(),
		"",
		glyphStyle.Render(m.glyph),
		hintStyle.Render(m.hint),
		"",
		m.renderCountdown(),
		"",
		m.input.View(),
	}
	if m.feedback != "" {
		style := incorrectStyle
		if m.outcome == model.OutcomeCorrect {
			style = correctStyle
		}
		lines = append(lines, "", style.Render(m.feedback))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderStatus() string {
	return fmt.Sprintf("Round %d/%d  Score %d", m.round, m.totalRounds, m.score)
}

func (m *Model) renderCountdown() string {
	pct := 0.0
	if m.maxSeconds > 0 {
		pct = float64(m.remaining) / float64(m.maxSeconds)
	}
	m.bar.FullColor = barColor
	if m.remaining <= warnSeconds {
		m.bar.FullColor = barWarnColor
	}
	return fmt.Sprintf("%s %2ds", m.bar.ViewAs(pct), m.remaining)
}

func (m *Model) renderCompletion() string {
	s := m.summary
	title := fmt.Sprintf("游戏结束 · Score %d", s.Score)
	if s.Perfect {
		title = "太棒了！你全部答对了！"
	}
	lines := []string{
		flowerStyle.Render("✿ 大红花 ✿"),
		titleStyle.Render(title),
		fmt.Sprintf("Final score: %d", s.Score),
		"",
	}
	lines = append(lines, recap.RoundLines(s.Results)...)
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderHelp() string {
	switch m.ctrl.Phase() {
	case game.PhaseIdle:
		return "enter start · q quit"
	case game.PhaseFinished:
		if m.showCompletion {
			return "enter play again · esc close · q quit"
		}
		return "enter play again · q quit"
	default:
		return "enter submit · esc quit"
	}
}

// ShowCharacter implements game.Presenter.
func (m *Model) ShowCharacter(entry model.CharacterEntry) {
	m.glyph = entry.Glyph
	m.feedback = ""
	m.outcome = model.OutcomeNone
	m.input.Reset()
	m.queued = append(m.queued, m.input.Focus())
}

// ShowHint implements game.Presenter.
func (m *Model) ShowHint(meaning string) {
	m.hint = meaning
}

// UpdateScore implements game.Presenter.
func (m *Model) UpdateScore(total int) {
	m.score = total
}

// UpdateRound implements game.Presenter.
func (m *Model) UpdateRound(number, total int) {
	m.round = number
	m.totalRounds = total
}

// UpdateCountdown implements game.Presenter.
func (m *Model) UpdateCountdown(remaining, maxSeconds int) {
	m.remaining = remaining
	m.maxSeconds = maxSeconds
}

// ShowFeedback implements game.Presenter.
func (m *Model) ShowFeedback(outcome model.Outcome, correctReading string) {
	m.outcome = outcome
	switch outcome {
	case model.OutcomeCorrect:
		m.feedback = "✓ 正确！"
	case model.OutcomeTimeout:
		m.feedback = fmt.Sprintf("⏱ 时间到了 · 正确答案是: %s", correctReading)
	default:
		m.feedback = fmt.Sprintf("✗ 正确答案是: %s", correctReading)
	}
}

// PlayAudio implements game.Presenter.
func (m *Model) PlayAudio(text string) {
	m.player.Say(text)
}

// ShowCompletion implements game.Presenter.
func (m *Model) ShowCompletion(summary model.Summary) {
	m.summary = &summary
	m.showCompletion = true
	m.input.Blur()
	m.log.Debug("completion shown", zap.Int("score", summary.Score), zap.Bool("perfect", summary.Perfect))
}

// HideCompletion implements game.Presenter.
func (m *Model) HideCompletion() {
	m.showCompletion = false
}
