package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/newsite/internal/ui/styles"
)

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "ctrl+d", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s\n%s", styles.PromptStyle.Render(m.prompt), m.textInput.View()))
}

func newTextInputModel(prompt, placeholder string) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)
	return textInputModel{textInput: ti, prompt: prompt}
}

// TeaPrompter asks questions with an interactive text input.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTea creates a TeaPrompter reading keys from in and rendering to out.
func NewTea(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Text shows the prompt, waits for enter and echoes the answer so it stays
// visible after the input is cleared.
func (p *TeaPrompter) Text(ctx context.Context, prompt, placeholder string) (string, error) {
	profile := colorprofile.Detect(p.out, os.Environ())
	program := tea.NewProgram(newTextInputModel(prompt, placeholder),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithColorProfile(profile),
	)
	finalModel, err := program.Run()
	if ctx.Err() != nil {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	m := finalModel.(textInputModel)
	if m.cancelled {
		return "", ErrAborted
	}
	value := strings.TrimSpace(m.textInput.Value())
	fmt.Fprintf(p.out, "%s: %s\n", prompt, value)
	return value, nil
}
