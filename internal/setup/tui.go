package setup

import (
	"fmt"
	"strings"

	"agrobot/internal/config"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Padding(0, 1)

	windowStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1)
)

type state int

const (
	stateProvider state = iota
	stateAPIKey
	stateModel
	stateWeatherKey
	stateTelegram
	stateDone
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// Model is the wizard state machine: provider → API key → model →
// weather key → telegram token → save.
type Model struct {
	configPath string

	state         state
	provider      string
	model         string
	apiKey        string
	weatherKey    string
	telegramToken string
	baseURL       string

	list     list.Model
	input    textinput.Model
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(configPath string) Model {
	providers := []list.Item{
		item{title: "gemini", desc: "Google Gemini models (requires API Key)"},
		item{title: "openai", desc: "OpenAI GPT models (requires API Key)"},
		item{title: "anthropic", desc: "Claude models (requires API Key)"},
		item{title: "ollama", desc: "Local execution via Ollama"},
	}

	l := list.New(providers, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select AI Provider"
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "Enter API Key"
	ti.Focus()

	if configPath == "" {
		configPath = config.DefaultPath()
	}

	return Model{
		configPath: configPath,
		state:      stateProvider,
		list:       l,
		input:      ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-10, msg.Height-15)

	case error:
		m.err = msg
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd

	switch m.state {
	case stateProvider:
		m.list, cmd = m.list.Update(msg)
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
			if i, ok := m.list.SelectedItem().(item); ok {
				m.provider = i.title
				if m.provider == "ollama" {
					m.baseURL = "http://localhost:11434"
					m.toModelList()
				} else {
					m.state = stateAPIKey
					m.input.Prompt = fmt.Sprintf("%s API Key: ", strings.ToUpper(m.provider[:1])+m.provider[1:])
					m.input.SetValue("")
				}
			}
		}

	case stateAPIKey:
		m.input, cmd = m.input.Update(msg)
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
			m.apiKey = m.input.Value()
			m.toModelList()
		}

	case stateModel:
		m.list, cmd = m.list.Update(msg)
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
			if i, ok := m.list.SelectedItem().(item); ok {
				m.model = i.title
				m.state = stateWeatherKey
				m.input.Prompt = "OpenWeatherMap API Key: "
				m.input.SetValue("")
			}
		}

	case stateWeatherKey:
		m.input, cmd = m.input.Update(msg)
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
			m.weatherKey = m.input.Value()
			m.state = stateTelegram
			m.input.Prompt = "Telegram Bot Token (optional): "
			m.input.SetValue("")
		}

	case stateTelegram:
		m.input, cmd = m.input.Update(msg)
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
			m.telegramToken = m.input.Value()
			m.state = stateDone
			return m, m.saveConfig()
		}

	case stateDone:
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *Model) toModelList() {
	m.state = stateModel
	var models []list.Item
	switch m.provider {
	case "openai":
		models = []list.Item{
			item{title: "gpt-4o", desc: "Best OpenAI model"},
			item{title: "gpt-4o-mini", desc: "Fast OpenAI model"},
		}
	case "anthropic":
		models = []list.Item{
			item{title: "claude-3-5-sonnet-latest", desc: "Best Anthropic model"},
		}
	case "ollama":
		models = []list.Item{
			item{title: "llama3.2", desc: "Local Ollama model"},
		}
	default:
		models = []list.Item{
			item{title: "gemini-1.5-flash", desc: "Fast Google model"},
			item{title: "gemini-1.5-pro", desc: "Powerful Google model"},
		}
	}
	m.list.SetItems(models)
	m.list.Title = "Select Model"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(" AgroBot Setup Wizard "))
	s.WriteString("\n\n")

	tabs := []string{"Provider", "Model", "Weather", "Telegram", "Finish"}
	currentTab := int(m.state)
	if m.state == stateAPIKey {
		currentTab = 0 // API key is a sub-step of provider selection
	}
	if m.state > stateAPIKey {
		currentTab--
	}

	var renderedTabs []string
	for i, t := range tabs {
		if i == currentTab {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(t))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(t))
		}
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...))
	s.WriteString("\n\n")

	var content string
	switch m.state {
	case stateProvider, stateModel:
		content = m.list.View()
	case stateAPIKey, stateWeatherKey, stateTelegram:
		content = "\n" + m.input.View() + "\n\n" + helpStyle.Render("Press enter to continue")
	case stateDone:
		content = fmt.Sprintf("\nSaving configuration to %s...\nDone! Press any key to exit.", m.configPath)
	}

	s.WriteString(windowStyle.Width(m.width - 10).Height(m.height - 15).Render(content))

	if m.state != stateDone {
		s.WriteString("\n\n" + helpStyle.Render("q/ctrl+c: quit • ↑/↓: navigate • enter: select"))
	}

	return docStyle.Render(s.String())
}

func (m Model) saveConfig() tea.Cmd {
	return func() tea.Msg {
		cfg := config.Default()
		cfg.Provider = m.provider
		cfg.Model = m.model
		cfg.APIKey = m.apiKey
		cfg.BaseURL = m.baseURL
		cfg.WeatherAPIKey = m.weatherKey
		cfg.TelegramToken = m.telegramToken

		if err := cfg.Save(m.configPath); err != nil {
			return err
		}
		return nil
	}
}

// Run launches the wizard.
func Run(configPath string) error {
	p := tea.NewProgram(NewModel(configPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
