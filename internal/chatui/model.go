package chatui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Метки авторов реплик
const (
	authorUser = "You"
	authorBot  = "Bot"
)

// maxHistoryLines сколько последних реплик держать на экране
const maxHistoryLines = 500

// Responder отвечает на сообщения пользователя
type Responder interface {
	GetResponse(input string) string
}

// entry одна реплика в окне чата
type entry struct {
	author string
	text   string
}

// Model bubbletea-модель окна чат-ассистента: строка ввода и лента
// реплик. Ответ приходит синхронно из чистого респондера, поэтому
// никаких фоновых команд модель не порождает.
type Model struct {
	responder Responder
	input     textinput.Model
	history   []entry
	width     int
	quitting  bool
}

// NewModel создает модель окна чата
func NewModel(responder Responder) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		responder: responder,
		input:     ti,
	}
}

// Init запускает мигание курсора строки ввода
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения bubbletea
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.history = append(m.history,
				entry{author: authorUser, text: text},
				entry{author: authorBot, text: m.responder.GetResponse(text)},
			)
			if len(m.history) > maxHistoryLines {
				m.history = m.history[len(m.history)-maxHistoryLines:]
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View отрисовывает окно чата
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("AI ChatBot"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		style := botStyle
		if e.author == authorUser {
			style = userStyle
		}
		b.WriteString(style.Render(e.author + ": "))
		b.WriteString(e.text)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send • esc: close"))
	return b.String()
}

// Run открывает окно чата и блокируется до его закрытия
func Run(responder Responder) error {
	_, err := tea.NewProgram(NewModel(responder), tea.WithAltScreen()).Run()
	return err
}

// Launcher открывает окно чата по запросу консольного меню
type Launcher struct {
	responder Responder
}

// NewLauncher создает новый экземпляр лаунчера окна чата
func NewLauncher(responder Responder) *Launcher {
	return &Launcher{responder: responder}
}

// Run см. Run
func (l *Launcher) Run() error {
	return Run(l.responder)
}
