package console

import (
	"context"

	"github.com/mhdirfanpn/panadol-platform-client/internal/controller"
)

// RunDashboard loads the aggregate counts once and offers a retry loop on
// failure, mirroring the dashboard page.
func (a *App) RunDashboard(ctx context.Context) error {
	agg := controller.NewDashboard(a.Stats.Stats)
	defer agg.Close()

	for {
		a.printf("Loading dashboard...\n")
		_ = agg.Load(ctx)

		state, msg := agg.State()
		if state == controller.StateReady {
			break
		}
		a.printf("Error: %s\n", msg)
		answer, ok := a.readLine("retry? (y/n): ")
		if !ok || answer != "y" {
			return nil
		}
	}

	stats := agg.Stats()
	a.printf("Dashboard\n")
	a.printf("  Total Users:    %d\n", stats.TotalUsers)
	a.printf("  Total Doctors:  %d\n", stats.TotalDoctors)
	a.printf("  Total Patients: %d\n", stats.TotalPatients)
	a.printf("  Active Users:   %d\n", stats.ActiveUsers)
	a.printf("  Active Doctors: %d\n", stats.ActiveDoctors)
	a.printf("  Pending Users:  %d\n", stats.PendingUsers)
	return nil
}
