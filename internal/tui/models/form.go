package models

import (
	"context"
	"strings"

	"github.com/allbin/provision"
	"github.com/allbin/provision/internal/tui/components"
	"github.com/allbin/provision/internal/tui/keys"
	"github.com/allbin/provision/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Submitter runs one provisioning submission
type Submitter interface {
	Submit(ctx context.Context, req provision.Request) (provision.Receipt, error)
}

// DeviceStatusMsg carries the result of a detection pass
type DeviceStatusMsg struct {
	Detected   bool
	Configured bool // port pinned by configuration, nothing was detected
	Port       string
}

// SubmitResultMsg carries the result of a submission
type SubmitResultMsg struct {
	Receipt provision.Receipt
	Err     error
}

// FormModel is the provisioning form: five inputs, a device banner, a busy
// indicator and modal dialogs
type FormModel struct {
	ctx       context.Context
	submitter Submitter
	resolver  provision.PortResolver

	inputs    []*components.Input
	focus     int
	statusBar *components.StatusBar
	spinner   spinner.Model
	help      help.Model
	keys      keys.FormKeys
	dialog    *components.Dialog
	width     int

	busy    bool
	receipt *provision.Receipt
	newID   func() string
}

func NewFormModel(ctx context.Context, submitter Submitter, resolver provision.PortResolver) *FormModel {
	inputs := make([]*components.Input, len(provision.Fields))
	for i, f := range provision.Fields {
		inputs[i] = components.NewInput(f)
	}
	inputs[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.BusyStyle

	return &FormModel{
		ctx:       ctx,
		submitter: submitter,
		resolver:  resolver,
		inputs:    inputs,
		statusBar: components.NewStatusBar(),
		spinner:   s,
		help:      help.New(),
		keys:      keys.NewFormKeys(),
		newID:     uuid.NewString,
	}
}

func (m *FormModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.detect())
}

// Request builds a request from the current input values, untrimmed
func (m *FormModel) Request() provision.Request {
	var req provision.Request
	for _, in := range m.inputs {
		req = req.With(in.Field(), in.Value())
	}
	return req
}

// Busy reports whether a submission is in flight
func (m *FormModel) Busy() bool {
	return m.busy
}

// Receipt returns the receipt of the successful submission, if any
func (m *FormModel) Receipt() (provision.Receipt, bool) {
	if m.receipt == nil {
		return provision.Receipt{}, false
	}
	return *m.receipt, true
}

// Dialog returns the open dialog, or nil
func (m *FormModel) Dialog() *components.Dialog {
	return m.dialog
}

func (m *FormModel) detect() tea.Cmd {
	ctx, resolver := m.ctx, m.resolver
	return func() tea.Msg {
		port, ok, err := resolver.Detect(ctx)
		if provision.IsFixedPort(resolver) {
			return DeviceStatusMsg{Configured: true, Port: port.Path}
		}
		if err != nil || !ok {
			return DeviceStatusMsg{}
		}
		return DeviceStatusMsg{Detected: true, Port: port.Path}
	}
}

func (m *FormModel) submit(req provision.Request) tea.Cmd {
	ctx, submitter := m.ctx, m.submitter
	return func() tea.Msg {
		receipt, err := submitter.Submit(ctx, req)
		return SubmitResultMsg{Receipt: receipt, Err: err}
	}
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	i = ((i % n) + n) % n

	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width
		for _, in := range m.inputs {
			in.SetWidth(msg.Width)
		}
		return m, nil

	case DeviceStatusMsg:
		if msg.Configured {
			m.statusBar.SetConfigured(msg.Port)
		} else {
			m.statusBar.SetDetected(msg.Detected, msg.Port)
		}
		return m, nil

	case SubmitResultMsg:
		m.busy = false
		if msg.Err != nil {
			m.dialog = components.NewErrorDialog(msg.Err)
		} else {
			receipt := msg.Receipt
			m.receipt = &receipt
			m.dialog = components.NewSuccessDialog(receipt)
		}
		m.statusBar.SetChecking()
		return m, m.detect()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.dialog != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dialog = nil
			if m.receipt != nil {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	// Submission disabled while busy
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.startSubmit()
	case key.Matches(msg, m.keys.Enter):
		if m.focus == len(m.inputs)-1 {
			return m.startSubmit()
		}
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.GenerateID):
		m.inputs[0].SetValue(m.newID())
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) startSubmit() (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, m.submit(m.Request()))
}

func (m *FormModel) View() string {
	if m.dialog != nil {
		return m.dialog.View(m.width)
	}

	parts := []string{
		m.statusBar.View(),
		styles.TitleStyle.Render("ESP32 Provisioning"),
	}
	for _, in := range m.inputs {
		parts = append(parts, in.View())
	}

	if m.busy {
		parts = append(parts, m.spinner.View()+styles.BusyStyle.Render(" Sending data..."))
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, m.help.View(m.keys))

	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}
