package components

import (
	"github.com/allbin/provision"
	"github.com/allbin/provision/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input is a labelled text input bound to one request field
type Input struct {
	field         provision.Field
	textInput     textinput.Model
	terminalWidth int
}

func NewInput(field provision.Field) *Input {
	ti := textinput.New()
	ti.Placeholder = field.Label()
	ti.CharLimit = 0 // values are sent as entered, whatever their length
	ti.Prompt = "" // We handle prompt styling separately
	if field.Sensitive() {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return &Input{
		field:     field,
		textInput: ti,
	}
}

func (i *Input) Field() provision.Field {
	return i.field
}

func (i *Input) SetWidth(width int) {
	i.terminalWidth = width
	// Account for: border(2) + padding(2)
	usableWidth := width - 4
	if usableWidth < 20 {
		usableWidth = 20 // Minimum usable width
	}
	i.textInput.Width = usableWidth
}

func (i *Input) Focus() tea.Cmd {
	return i.textInput.Focus()
}

func (i *Input) Blur() {
	i.textInput.Blur()
}

func (i *Input) Focused() bool {
	return i.textInput.Focused()
}

func (i *Input) Value() string {
	return i.textInput.Value()
}

func (i *Input) SetValue(value string) {
	i.textInput.SetValue(value)
}

func (i *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	var cmd tea.Cmd
	i.textInput, cmd = i.textInput.Update(msg)
	return i, cmd
}

func (i *Input) View() string {
	labelStyle := styles.LabelStyle
	inputStyle := styles.InputStyle
	if i.Focused() {
		labelStyle = styles.FocusedLabelStyle
		inputStyle = styles.FocusedInputStyle
	}

	if i.terminalWidth > 0 {
		inputStyle = inputStyle.Width(i.terminalWidth - 2)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(i.field.Label()),
		inputStyle.Render(i.textInput.View()),
	)
}
