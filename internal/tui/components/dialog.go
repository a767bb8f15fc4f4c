package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/allbin/provision"
	"github.com/allbin/provision/internal/tui/colors"
	"github.com/allbin/provision/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

type DialogKind int

const (
	DialogError DialogKind = iota
	DialogSuccess
)

// Dialog is a modal message box. Success dialogs carry the submitted values
// as detail text.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
	Detail  string
}

// NewErrorDialog describes a failed submission in operator terms
func NewErrorDialog(err error) *Dialog {
	return &Dialog{
		Kind:    DialogError,
		Title:   "Error",
		Message: ErrorMessage(err),
	}
}

// NewSuccessDialog confirms a completed transmission
func NewSuccessDialog(receipt provision.Receipt) *Dialog {
	return &Dialog{
		Kind:    DialogSuccess,
		Title:   "Data updated",
		Message: fmt.Sprintf("The data was sent to %s successfully.", receipt.Port.Path),
		Detail:  receipt.Request.Detail(),
	}
}

// ErrorMessage maps a submission error to the text shown to the operator
func ErrorMessage(err error) string {
	var perr *provision.Error
	if !errors.As(err, &perr) {
		return err.Error()
	}

	switch perr.Kind {
	case provision.KindValidation:
		labels := make([]string, len(perr.Missing))
		for i, f := range perr.Missing {
			labels[i] = f.Label()
		}
		return fmt.Sprintf("Please fill in all fields.\nMissing: %s", strings.Join(labels, ", "))
	case provision.KindNoDevice:
		return "No ESP32 device detected. Connect the device and try again."
	case provision.KindTransmission:
		return fmt.Sprintf("Failed to send data: %v", perr.Cause)
	default:
		return perr.Error()
	}
}

func (d *Dialog) View(width int) string {
	accent := colors.Red
	titleStyle := styles.ErrorStyle
	if d.Kind == DialogSuccess {
		accent = colors.Green
		titleStyle = styles.SuccessStyle
	}

	parts := []string{
		titleStyle.Render(d.Title),
		"",
		d.Message,
	}
	if d.Detail != "" {
		parts = append(parts, "", styles.DetailStyle.Render(strings.TrimRight(d.Detail, "\n")))
	}
	parts = append(parts, "", styles.HintStyle.Render("enter/esc to close"))

	box := styles.DialogStyle.
		BorderForeground(accent).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
