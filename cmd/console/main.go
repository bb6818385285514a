package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mhdirfanpn/panadol-platform-client/internal/console"
	"github.com/mhdirfanpn/panadol-platform-client/internal/mockapi"
	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
)

func main() {
	root := &cobra.Command{
		Use:           "panadol-console",
		Short:         "Super-admin console for the Panadol platform API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(dashboardCmd(), usersCmd(), doctorsCmd(), themeCmd(), mockCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregate platform counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := console.NewApp()
			if err != nil {
				return err
			}
			return app.RunDashboard(cmd.Context())
		},
	}
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Manage platform users interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := console.NewApp()
			if err != nil {
				return err
			}
			return app.RunUsers(cmd.Context())
		},
	}
}

func doctorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "Manage onboarded doctors interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := console.NewApp()
			if err != nil {
				return err
			}
			return app.RunDoctors(cmd.Context())
		},
	}
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the persisted theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := console.NewApp()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Println(app.Sess.Theme())
				return nil
			}
			return app.Sess.SetTheme(args[0])
		},
	}
}

func mockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mock",
		Short: "Run an in-memory backend implementing the super-admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := console.NewApp()
			if err != nil {
				return err
			}
			srv := newSeededMock()
			addr := fmt.Sprintf(":%d", app.Cfg.Mock.Port)
			app.Log.Info("mock backend listening on " + addr)
			return srv.Run(addr)
		},
	}
}

func newSeededMock() *mockapi.Server {
	srv := mockapi.NewServer()
	srv.SeedUsers(
		model.User{FirstName: "Ava", LastName: "Admin", Email: "ava@example.com", Username: "ava", Role: model.RoleSuperAdmin, Status: model.StatusActive},
		model.User{FirstName: "Pat", LastName: "Patel", Email: "pat@example.com", Username: "pat", Role: model.RolePatient, Status: model.StatusActive},
		model.User{FirstName: "Penny", LastName: "Pending", Email: "penny@example.com", Username: "penny", Role: model.RolePatient, Status: model.StatusPending},
	)
	srv.SeedDoctors(
		model.Doctor{UserID: 99, FirstName: "Dana", LastName: "Doc", Email: "dana@example.com", PhoneNumber: "+15550100",
			Specialization: model.SpecCardiologist, LicenseNumber: "LIC123", ExperienceYears: 8,
			Qualifications: "MBBS, MD", ConsultationFee: 120, Status: model.StatusActive},
	)
	return srv
}
