package commands

import (
	"os"
	"os/signal"
	"syscall"

	"monitorscreen/internal/listener"
	"monitorscreen/internal/wsclient"

	"github.com/spf13/cobra"
)

// listen: headless client that logs everything the server sends.
func listenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen <uri>",
		Short: "Connect without a window and log every received message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("Listener", "starting", map[string]interface{}{"uri": args[0]})
			return listener.New(args[0], wsclient.New(log), log).Run(ctx)
		},
	}
}
