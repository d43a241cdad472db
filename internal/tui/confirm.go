package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Styles
var (
	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const answerHint = "(y)es/(N)o"

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// NewConfirmer returns a TUI prompt when in is a terminal and a line prompt
// otherwise.
func NewConfirmer(in io.Reader, out io.Writer) Confirmer {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &PromptConfirmer{In: f, Out: out}
	}
	return &LineConfirmer{In: in, Out: out}
}

// AssumeYes confirms every question without asking.
type AssumeYes struct{}

func (AssumeYes) Confirm(string) (bool, error) { return true, nil }

// LineConfirmer prints the question and reads one line of input.
type LineConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer. End of input counts as a refusal.
func (c *LineConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.Out, "%s %s ", question, answerHint)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return IsYes(line), nil
}

// PromptConfirmer runs a bubbletea prompt on a terminal.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (c *PromptConfirmer) Confirm(question string) (bool, error) {
	m := NewConfirmModel(question)
	p := tea.NewProgram(m, tea.WithInput(c.In), tea.WithOutput(c.Out))

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	return finalModel.(ConfirmModel).Confirmed(), nil
}

// ConfirmModel is the bubbletea model for a yes/no question.
type ConfirmModel struct {
	question  string
	input     textinput.Model
	confirmed bool
	done      bool
}

// NewConfirmModel creates a confirmation prompt for question.
func NewConfirmModel(question string) ConfirmModel {
	ti := textinput.New()
	ti.Placeholder = "N"
	ti.CharLimit = 3
	ti.Width = 5
	ti.Focus()

	return ConfirmModel{
		question: question,
		input:    ti,
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.confirmed = IsYes(m.input.Value())
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	return questionStyle.Render(m.question) + " " + helpStyle.Render(answerHint) + "\n" +
		m.input.View() + "\n"
}

// Confirmed reports whether the user answered yes.
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}
