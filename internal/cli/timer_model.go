package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"study-planner/internal/domain"
)

// timerOutcome describes how a focus timer session ended.
type timerOutcome int

const (
	timerAborted timerOutcome = iota
	timerStopped
	timerFinished
)

// timerModel is the bubbletea model behind 'sp timer'. The session is saved
// when the countdown finishes or the user stops it early; quitting discards
// it.
type timerModel struct {
	timer   timer.Model
	task    domain.TaskItem
	styles  *Styles
	outcome timerOutcome
}

func newTimerModel(task domain.TaskItem, duration time.Duration, styles *Styles) timerModel {
	return timerModel{
		timer:  timer.NewWithInterval(duration, time.Second),
		task:   task,
		styles: styles,
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.outcome = timerAborted
			return m, tea.Quit
		case "s":
			m.outcome = timerStopped
			return m, tea.Quit
		}
		return m, nil

	case timer.TimeoutMsg:
		m.outcome = timerFinished
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.timer, cmd = m.timer.Update(msg)
	return m, cmd
}

func (m timerModel) View() string {
	remaining := m.styles.Title.Render(m.timer.View())
	help := m.styles.Muted.Render("s save & stop · q discard")
	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Focusing on: %s", m.task.Title),
		remaining,
		help,
	) + "\n"
}
