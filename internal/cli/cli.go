package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/starnotary/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:          "starnotary",
		Short:        "Register stars to wallet addresses on an append-only chain",
		SilenceUsage: true,
	}
)

func Execute() error {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase verbosity")
	viper.BindPFlag(config.Cfg_verbose, rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.PersistentFlags().String("daemon-addr", "", "daemon base url")
	viper.BindPFlag(config.Cfg_daemon_addr, rootCmd.PersistentFlags().Lookup("daemon-addr"))

	rootCmd.PersistentFlags().StringP("output", "o", outputJSON, "output format (json|yaml)")

	regCommands()

	return rootCmd.Execute()
}

func waitExit(ctx context.Context) <-chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs
}
