package cli

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/starnotary/internal/api"
	"github.com/tcfw/starnotary/internal/config"
	"github.com/tcfw/starnotary/internal/node"
	"github.com/tcfw/starnotary/internal/utils/logging"
)

var (
	daemonCmd = &cobra.Command{
		Use:   "daemon",
		RunE:  runDaemon,
		Short: "run the daemon",
	}
)

func init() {
	daemonCmd.Flags().StringP("api-addr", "a", ":8000", "api listen address")
	viper.BindPFlag(config.Cfg_api_addr, daemonCmd.Flags().Lookup("api-addr"))

	daemonCmd.Flags().Duration("window", 0, "challenge validation window (defaults to config)")
	viper.BindPFlag(config.Cfg_notary_window, daemonCmd.Flags().Lookup("window"))
}

func runDaemon(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	node, err := node.NewNode(ctx,
		node.WithDefaultOptions(ctx),
	)
	if err != nil {
		return errors.Wrap(err, "initing node")
	}

	errCh := make(chan error, 1)

	api, err := api.NewAPI(node)
	if err != nil {
		return err
	}

	addr := node.Config().API().ListenAddr

	go func() {
		logging.Entry().WithField("addr", addr).Info("starting API")
		if err := api.ListenAndServe(addr); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-waitExit(ctx):
		sctx, scancel := context.WithTimeout(ctx, 10*time.Second)
		defer scancel()

		if err := api.Shutdown(sctx); err != nil {
			logging.WithError(err).Error("shutting down api")
		}

		return node.Stop()
	}
}
