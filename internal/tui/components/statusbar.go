package components

import (
	"fmt"

	"github.com/allbin/provision/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Reconnect guidance shown while no device is detected
const reconnectInstructions = `If the device is not detected:
1. Close this application.
2. Connect the device and open the application again.`

// StatusBar is the device detection banner at the top of the form
type StatusBar struct {
	status styles.StatusType
	port   string
	width  int
}

func NewStatusBar() *StatusBar {
	return &StatusBar{status: styles.StatusChecking}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetChecking() {
	sb.status = styles.StatusChecking
}

// SetDetected records the outcome of a detection pass. port may be empty
// when only the yes/no answer is known.
func (sb *StatusBar) SetDetected(detected bool, port string) {
	if detected {
		sb.status = styles.StatusDetected
		sb.port = port
		return
	}
	sb.status = styles.StatusMissing
	sb.port = ""
}

// SetConfigured shows a port pinned by configuration. No detection runs, so
// the banner does not claim a device is present.
func (sb *StatusBar) SetConfigured(port string) {
	sb.status = styles.StatusConfigured
	sb.port = port
}

func (sb *StatusBar) Status() styles.StatusType {
	return sb.status
}

func (sb *StatusBar) View() string {
	var answer string
	switch sb.status {
	case styles.StatusDetected:
		answer = "yes"
		if sb.port != "" {
			answer = fmt.Sprintf("yes (%s)", sb.port)
		}
	case styles.StatusChecking:
		answer = "checking..."
	case styles.StatusConfigured:
		answer = fmt.Sprintf("not checked (configured port %s)", sb.port)
	default:
		answer = "no"
	}

	status := fmt.Sprintf("Device detected: %s", styles.GetStatusStyle(sb.status).Render(answer))
	content := lipgloss.JoinVertical(lipgloss.Center,
		status,
		styles.InstructionStyle.Render(reconnectInstructions),
	)

	bannerStyle := styles.BannerStyle
	if sb.width > 0 {
		bannerStyle = bannerStyle.Width(sb.width - 2)
	}
	return bannerStyle.Render(content)
}
