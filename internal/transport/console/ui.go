package console

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	Title           = "ZARYA"
	PlaceHolderText = "Type a command..."
	inputPrefix     = "> "
)

// outputMsg appends text to the line being typed; done finishes the line.
type outputMsg struct {
	text string
	done bool
}

// model is the BubbleTea model for the console.
// https://github.com/charmbracelet/bubbletea
type model struct {
	viewport viewport.Model
	textarea textarea.Model
	input    chan<- string
	ready    bool
	width    int
	height   int

	lines   []entry // finished lines
	partial string  // line currently being typed
	status  string

	showQuitModal bool
}

type entry struct {
	text string
	user bool
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(3).
			PaddingRight(3)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func newModel(input chan<- string) model {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return model{
		viewport: vp,
		textarea: ta,
		input:    input,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 6
		m.viewport.Height = msg.Height - 5
		m.textarea.SetWidth(msg.Width - 8)
		m.ready = true
		m.writeContent()

	case outputMsg:
		m.partial += msg.text
		if msg.done {
			m.lines = append(m.lines, entry{text: m.partial})
			m.partial = ""
		}
		m.writeContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(m.Transcript()); err != nil {
				m.status = "Could not copy transcript: " + err.Error()
			} else {
				m.status = "Transcript copied to clipboard."
			}
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			select {
			case m.input <- input:
				m.lines = append(m.lines, entry{text: input, user: true})
				m.status = ""
			default:
				m.status = "Still thinking, try again in a moment."
			}
			m.writeContent()
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m model) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case outputMsg:
		// Keep collecting output behind the modal.
		m.showQuitModal = false
		next, _ := m.Update(msg)
		nm := next.(model)
		nm.showQuitModal = true
		return nm, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyEsc:
			m.showQuitModal = false
			return m, nil
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}
	return m, nil
}

// writeContent re-renders the transcript for the current width.
func (m *model) writeContent() {
	width := m.viewport.Width
	if width <= 0 {
		width = 50
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(Title) + "\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")
	for _, e := range m.lines {
		if e.user {
			content.WriteString(userStyle.Render(inputPrefix+wordwrap.String(e.text, width-len(inputPrefix))) + "\n")
			continue
		}
		content.WriteString(narratorStyle.Render(wordwrap.String(e.text, width)) + "\n")
	}
	if m.partial != "" {
		content.WriteString(narratorStyle.Render(wordwrap.String(m.partial, width)))
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// Transcript is the plain text of everything shown so far, input lines included.
func (m model) Transcript() string {
	var b strings.Builder
	for _, e := range m.lines {
		if e.user {
			b.WriteString(inputPrefix)
		}
		b.WriteString(e.text)
		b.WriteString("\n")
	}
	b.WriteString(m.partial)
	return b.String()
}

func (m model) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Your progress will not be saved.\n\n")
	content.WriteString("y/enter: quit   n/esc: keep playing")

	modal := modalStyle.Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m model) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	status := ""
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}
	return chatPanelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			separatorStyle.Render(strings.Repeat("─", max(m.viewport.Width, 1))),
			m.textarea.View(),
			status,
		),
	)
}
