package cli

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/domain"
)

func testTimerModel() timerModel {
	task := domain.TaskItem{ID: "task-1", Title: "Revise optics", SubjectID: "physics"}
	return newTimerModel(task, 25*time.Minute, NewStyles(false))
}

func TestTimerModel_CountdownConfiguration(t *testing.T) {
	model := testTimerModel()

	assert.Equal(t, 25*time.Minute, model.timer.Timeout)
	assert.Equal(t, time.Second, model.timer.Interval)
}

func TestTimerModel_QuitDiscardsSession(t *testing.T) {
	model := testTimerModel()

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	result := updated.(timerModel)
	assert.Equal(t, timerAborted, result.outcome)
	require.NotNil(t, cmd)
}

func TestTimerModel_StopSavesSession(t *testing.T) {
	model := testTimerModel()

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	result := updated.(timerModel)
	assert.Equal(t, timerStopped, result.outcome)
	require.NotNil(t, cmd)
}

func TestTimerModel_TimeoutFinishesSession(t *testing.T) {
	model := testTimerModel()

	updated, cmd := model.Update(timer.TimeoutMsg{ID: model.timer.ID()})

	result := updated.(timerModel)
	assert.Equal(t, timerFinished, result.outcome)
	require.NotNil(t, cmd)
}

func TestTimerModel_ViewShowsTaskAndHelp(t *testing.T) {
	model := testTimerModel()

	view := model.View()

	assert.Contains(t, view, "Revise optics")
	assert.Contains(t, view, "s save & stop")
}
