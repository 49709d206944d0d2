package tui

import (
	"strings"

	"github.com/MKhiriev/go-flatnav/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// syncModel renders the one-line sync status under the bookmark list.
type syncModel struct {
	spinner  spinner.Model
	status   models.SyncStatus
	autoSync bool
	hasToken bool
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s, status: models.SyncStatus{State: models.SyncIdle}}
}

func (m syncModel) loading() bool {
	return m.status.State == models.SyncLoading
}

func (m syncModel) View() string {
	var b strings.Builder

	switch m.status.State {
	case models.SyncLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.status.Message)
	case models.SyncError:
		b.WriteString(errorStyle.Render("✗ " + m.status.Message))
	case models.SyncSuccess:
		b.WriteString(successStyle.Render("✓ " + m.status.Message))
	default:
		b.WriteString(valueOrDash(m.status.Message))
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.indicators()))
	return b.String()
}

func (m syncModel) indicators() string {
	autoSync := "off"
	if m.autoSync {
		autoSync = "on"
	}
	token := "not set"
	if m.hasToken {
		token = "set"
	}

	line := "auto-sync: " + autoSync + "   token: " + token
	if m.status.LastSynced != "" {
		line += "   last sync: " + m.status.LastSynced
	}
	return line
}
