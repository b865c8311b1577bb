package commands

import (
	"fmt"

	"monitorscreen/internal/config"
	"monitorscreen/internal/logger"

	"github.com/spf13/cobra"
)

var opts config.TesterOptions

func Execute() error {
	opts = config.LoadTesterOptions()

	root := &cobra.Command{
		Use:   "websockettest",
		Short: "WebSocket broadcast server for exercising MonitorScreen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Port <= 0 || opts.Port > 65535 {
				return fmt.Errorf("invalid --port %d", opts.Port)
			}
			log := logger.New(logger.ParseLevel(opts.LogLevel), opts.LogJSON)
			return NewApplication(opts, log).Run()
		},
	}

	root.Flags().IntVar(&opts.Port, "port", opts.Port, "port to accept WebSocket clients on (env WSTEST_PORT)")
	root.Flags().StringVar(&opts.NATSURL, "nats-url", opts.NATSURL, "relay broadcasts through this NATS server (env WSTEST_NATS_URL)")
	root.Flags().StringVar(&opts.NATSSubject, "nats-subject", opts.NATSSubject, "NATS subject for relayed messages (env WSTEST_NATS_SUBJECT)")
	root.Flags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "debug, info, warn or error (env LOG_LEVEL)")
	root.Flags().BoolVar(&opts.LogJSON, "log-json", opts.LogJSON, "log as JSON lines (env LOG_JSON)")

	return root.Execute()
}
