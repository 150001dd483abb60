// Command yuzu-shot starts the desktop shell.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"yuzu-shot/internal/app"
	"yuzu-shot/internal/config"
	"yuzu-shot/internal/logger"
)

var v = config.New()

var rootCmd = &cobra.Command{
	Use:          "yuzu-shot",
	Short:        "yuzu.shot screenshot composer",
	SilenceUsage: true,
	RunE:         runApp,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the desktop application",
	RunE:  runApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", app.AppName, app.AppVersion)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.Bool("json-logs", false, "write logs as JSON")
	flags.String("platform", "", "assemble the menu for this platform instead of the host")

	for key, name := range map[string]string{
		"log_level": "log-level",
		"json_logs": "json-logs",
		"platform":  "platform",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(runCmd, menuCmd, versionCmd)
}

func loadConfig() (config.Config, *logger.Zerolog, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.JSONLogs)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	application, err := app.NewApplication(fyneApp, cfg, log)
	if err != nil {
		log.Error("Application", err, nil)
		return fmt.Errorf("startup failed: %w", err)
	}

	shutdown := application.Lifecycle().Manager()
	shutdown.Listen(shutdown.Context(), application.Quit)
	return application.Run()
}
