package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tcfw/starnotary/internal/api"
)

var (
	blockCmd = &cobra.Command{
		Use:   "block",
		Short: "Block commands",
	}

	block_heightCmd = &cobra.Command{
		Use:   "height <height>",
		Short: "Get a block by height",
		Args:  cobra.ExactArgs(1),
		RunE:  runBlockHeight,
	}

	block_hashCmd = &cobra.Command{
		Use:   "hash <hash>",
		Short: "Get a block by hash",
		Args:  cobra.ExactArgs(1),
		RunE:  runBlockHash,
	}

	starsCmd = &cobra.Command{
		Use:   "stars <address>",
		Short: "List stars registered to an address",
		Args:  cobra.ExactArgs(1),
		RunE:  runStars,
	}

	chainCmd = &cobra.Command{
		Use:   "chain",
		Short: "Dump every block in the chain",
		RunE:  runChain,
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check chain integrity",
		RunE:  runValidate,
	}
)

func newClient() (*api.Client, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	client, err := api.NewClient()
	if err != nil {
		cancel()
		return nil, nil, nil, errors.Wrap(err, "constructing client")
	}

	return client, ctx, cancel, nil
}

func runBlockHeight(cmd *cobra.Command, args []string) error {
	h, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return errors.Wrap(err, "parsing height")
	}

	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	b, err := client.BlockByHeight(ctx, h)
	if err != nil {
		return err
	}

	return printOut(cmd, b)
}

func runBlockHash(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	b, err := client.BlockByHash(ctx, args[0])
	if err != nil {
		return err
	}

	return printOut(cmd, b)
}

func runStars(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	stars, err := client.StarsByOwner(ctx, args[0])
	if err != nil {
		return err
	}

	return printOut(cmd, stars)
}

func runChain(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	blocks, err := client.Chain(ctx)
	if err != nil {
		return err
	}

	return printOut(cmd, blocks)
}

func runValidate(cmd *cobra.Command, args []string) error {
	client, ctx, cancel, err := newClient()
	if err != nil {
		return err
	}
	defer cancel()

	res, err := client.Validate(ctx)
	if err != nil {
		return err
	}

	if err := printOut(cmd, res); err != nil {
		return err
	}

	if !res.Valid {
		return errors.Errorf("chain has %d integrity findings", len(res.Findings))
	}

	return nil
}
