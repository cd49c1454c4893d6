package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/karust/supporters-check/core"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCMD = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"listen"},
	Short:   "Serve a directory over HTTP, eg. the page under verification",
	Args:    cobra.MatchAll(cobra.NoArgs),
	RunE:    serve,
}

func serve(cmd *cobra.Command, args []string) error {
	serv := core.NewServer(config.Serve.Host, config.Serve.Port, config.Serve.Root)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logrus.Info("Shutting down server")
		if err := serv.Shutdown(); err != nil {
			logrus.Errorf("Server shutdown: %s", err)
		}
	}()

	return serv.Listen()
}

func init() {
	serveCMD.Flags().StringVarP(&config.Serve.Host, "host", "a", "127.0.0.1", "Host address to run server")
	serveCMD.Flags().IntVarP(&config.Serve.Port, "port", "p", 8000, "Port number to run server")
	serveCMD.Flags().StringVarP(&config.Serve.Root, "root", "", ".", "Directory to serve")

	RootCmd.AddCommand(serveCMD)
}
