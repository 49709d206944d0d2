package tui

import (
	"context"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/MKhiriev/go-flatnav/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the dashboard until the user quits or ctx is done. Changes made
// outside the UI, such as the start-up restore, are forwarded to the
// program as messages.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(
		newDashboardModel(ctx, t.services, t.buildInfo),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	unsubscribe := []func(){
		t.services.SyncService.OnStatusChange(func(status models.SyncStatus) {
			program.Send(statusChangedMsg{status: status})
		}),
		t.services.SyncService.OnSettingsChange(func() {
			program.Send(settingsChangedMsg{})
		}),
		t.services.DashboardService.Subscribe(func(uint64) {
			program.Send(dashboardChangedMsg{})
		}),
	}
	defer func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}()

	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		// the program was killed by a shutdown signal
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped with error")
	}
	return err
}
