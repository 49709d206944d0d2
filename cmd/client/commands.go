package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-flatnav/internal/client"
	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/spf13/cobra"
)

// clientApp is the part of [client.App] the commands use.
type clientApp interface {
	Run(ctx context.Context) error
	Push(ctx context.Context) error
	PullAndRestore(ctx context.Context) error
	Services() *service.ClientServices
	Close() error
}

type appOpener func(ctx context.Context, flags *config.StructuredConfig, buildInfo models.AppBuildInfo) (clientApp, error)

// openClientApp loads the configuration and wires a [client.App]. Logs go to
// a rotated file because the terminal belongs to the UI.
func openClientApp(ctx context.Context, flags *config.StructuredConfig, buildInfo models.AppBuildInfo) (clientApp, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("flatnav-client", cfg.App.LogFile)
	log.Info().Str("version", buildInfo.BuildVersion()).Msg("client starting")

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return nil, err
	}
	return app, nil
}

type cli struct {
	open      appOpener
	flags     *config.StructuredConfig
	buildInfo models.AppBuildInfo
}

// withApp opens the app for one command and closes it afterwards.
func (c *cli) withApp(run func(cmd *cobra.Command, args []string, app clientApp) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := c.open(cmd.Context(), c.flags, c.buildInfo)
		if err != nil {
			return err
		}
		defer app.Close()

		return run(cmd, args, app)
	}
}

func newRootCommand(buildInfo models.AppBuildInfo, open appOpener) *cobra.Command {
	c := &cli{open: open, buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "flatnav",
		Short: "Bookmark dashboard with cloud backup",
		Long: `FlatNav keeps categorised bookmarks and backs them up to a private
gist. Without a subcommand the interactive dashboard starts.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app clientApp) error {
			return app.Run(cmd.Context())
		}),
	}
	c.flags = config.BindClientFlags(root.PersistentFlags())

	root.AddCommand(
		c.pushCommand(),
		c.pullCommand(),
		c.statusCommand(),
		c.tokenCommand(),
		c.autoSyncCommand(),
		c.documentCommand(),
		c.exportCommand(),
		c.importCommand(),
		c.versionCommand(),
	)

	return root
}

func (c *cli) pushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the dashboard to the cloud backup",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app clientApp) error {
			if err := app.Push(cmd.Context()); err != nil {
				return syncError(app, err)
			}
			return printStatus(cmd.OutOrStdout(), app)
		}),
	}
}

func (c *cli) pullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace the dashboard with the cloud backup",
		Long: `Download the cloud backup and apply every well-formed field to the
local dashboard. Fields missing from the backup keep their local values.`,
		Args: cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app clientApp) error {
			if err := app.PullAndRestore(cmd.Context()); err != nil {
				return syncError(app, err)
			}
			return printStatus(cmd.OutOrStdout(), app)
		}),
	}
}

func (c *cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync settings and the last sync result",
		Args:  cobra.NoArgs,
		RunE: c.withApp(func(cmd *cobra.Command, _ []string, app clientApp) error {
			sync := app.Services().SyncService
			out := cmd.OutOrStdout()

			token := "not set"
			if sync.HasToken() {
				token = "set"
			}
			autoSync := "off"
			if sync.AutoSync() {
				autoSync = "on"
			}

			fmt.Fprintf(out, "Token:       %s\n", token)
			fmt.Fprintf(out, "Document:    %s\n", orDash(sync.DocumentID()))
			fmt.Fprintf(out, "Auto-sync:   %s\n", autoSync)
			fmt.Fprintf(out, "Last sync:   %s\n", orDash(sync.Status().LastSynced))
			return nil
		}),
	}
}

func (c *cli) tokenCommand() *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Manage the access token",
	}

	token.AddCommand(
		&cobra.Command{
			Use:   "set <token>",
			Short: "Store the access token (gist scope)",
			Args:  cobra.ExactArgs(1),
			RunE: c.withApp(func(cmd *cobra.Command, args []string, app clientApp) error {
				if err := app.Services().SyncService.SetToken(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "token saved")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored access token",
			Args:  cobra.NoArgs,
			RunE: c.withApp(func(cmd *cobra.Command, _ []string, app clientApp) error {
				if err := app.Services().SyncService.SetToken(cmd.Context(), ""); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "token removed")
				return nil
			}),
		},
	)

	return token
}

func (c *cli) autoSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "autosync on|off",
		Short:     "Turn automatic upload after changes on or off",
		ValidArgs: []string{"on", "off"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app clientApp) error {
			enabled := args[0] == "on"
			if err := app.Services().SyncService.SetAutoSync(cmd.Context(), enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "auto-sync %s\n", args[0])
			return nil
		}),
	}
}

func (c *cli) documentCommand() *cobra.Command {
	document := &cobra.Command{
		Use:   "document",
		Short: "Manage the backup document reference",
	}

	document.AddCommand(&cobra.Command{
		Use:   "set <id>",
		Short: "Use an existing backup document",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app clientApp) error {
			if err := app.Services().SyncService.SetDocumentID(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "backup document updated")
			return nil
		}),
	})

	return document
}

func (c *cli) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the dashboard as a backup file (stdout by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app clientApp) error {
			if len(args) == 0 || args[0] == "-" {
				return app.Services().SnapshotService.Export(cmd.OutOrStdout())
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err = app.Services().SnapshotService.Export(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}),
	}
}

func (c *cli) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Apply a backup file to the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: c.withApp(func(cmd *cobra.Command, args []string, app clientApp) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			if err = app.Services().SnapshotService.Import(cmd.Context(), f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "backup imported")
			return nil
		}),
	}
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), c.buildInfo.String())
			return err
		},
	}
}

// syncError prefixes err with the status line the user would see in the
// dashboard.
func syncError(app clientApp, err error) error {
	msg := app.Services().SyncService.Status().Message
	if msg == "" {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func printStatus(w io.Writer, app clientApp) error {
	_, err := fmt.Fprintln(w, app.Services().SyncService.Status().Message)
	return err
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
