package chatui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponder struct{}

func (echoResponder) GetResponse(input string) string {
	return "echo: " + input
}

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func pressEnter(m Model) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestUpdate_EnterAppendsExchange(t *testing.T) {
	m := NewModel(echoResponder{})
	m = typeText(m, "hello")
	m, _ = pressEnter(m)

	require.Len(t, m.history, 2)
	assert.Equal(t, authorUser, m.history[0].author)
	assert.Equal(t, "hello", m.history[0].text)
	assert.Equal(t, authorBot, m.history[1].author)
	assert.Equal(t, "echo: hello", m.history[1].text)

	// Строка ввода очищена для следующего сообщения
	assert.Empty(t, m.input.Value())
}

func TestUpdate_EnterIgnoresBlankInput(t *testing.T) {
	m := NewModel(echoResponder{})
	m = typeText(m, "   ")
	m, _ = pressEnter(m)

	assert.Empty(t, m.history)
}

func TestUpdate_EscQuits(t *testing.T) {
	m := NewModel(echoResponder{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, updated.(Model).View())
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := NewModel(echoResponder{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_WindowSizeResizesInput(t *testing.T) {
	m := NewModel(echoResponder{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 76, m.input.Width)
}

func TestView_ShowsHistoryAndTitle(t *testing.T) {
	m := NewModel(echoResponder{})
	m = typeText(m, "hi")
	m, _ = pressEnter(m)

	view := m.View()
	assert.Contains(t, view, "AI ChatBot")
	assert.Contains(t, view, "hi")
	assert.Contains(t, view, "echo: hi")
	assert.Contains(t, view, "esc: close")
}

func TestHistory_Capped(t *testing.T) {
	m := NewModel(echoResponder{})

	for i := 0; i < maxHistoryLines; i++ {
		m = typeText(m, "ping")
		m, _ = pressEnter(m)
	}

	assert.Len(t, m.history, maxHistoryLines)
}
