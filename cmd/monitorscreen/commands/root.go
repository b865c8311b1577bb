package commands

import (
	"monitorscreen/internal/config"
	"monitorscreen/internal/logger"

	"github.com/spf13/cobra"
)

var opts config.MonitorOptions

func Execute() error {
	opts = config.LoadMonitorOptions()

	root := &cobra.Command{
		Use:   "monitorscreen",
		Short: "Full-screen display of telemetry values from a WebSocket server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application := NewApplication(opts, newLogger())
			return application.Run()
		},
	}

	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "debug, info, warn or error (env LOG_LEVEL)")
	root.PersistentFlags().BoolVar(&opts.LogJSON, "log-json", opts.LogJSON, "log as JSON lines (env LOG_JSON)")
	root.Flags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "settings file holding the last uri (env MONITOR_CONFIG)")
	root.Flags().StringVar(&opts.URI, "uri", opts.URI, "connect to this uri instead of the saved one (env MONITOR_URI)")
	root.Flags().BoolVar(&opts.Fullscreen, "fullscreen", opts.Fullscreen, "start full screen (env MONITOR_FULLSCREEN)")

	root.AddCommand(listenCmd())
	return root.Execute()
}

func newLogger() logger.Logger {
	return logger.New(logger.ParseLevel(opts.LogLevel), opts.LogJSON)
}
