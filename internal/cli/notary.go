package cli

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/starnotary/internal/api"
	"github.com/tcfw/starnotary/internal/utils/logging"
	"github.com/tcfw/starnotary/pkg/storage"
)

var (
	challengeCmd = &cobra.Command{
		Use:   "challenge <address>",
		Short: "Request a challenge message for a wallet address",
		Args:  cobra.ExactArgs(1),
		RunE:  runChallenge,
	}

	submitCmd = &cobra.Command{
		Use:   "submit",
		Short: "Register a star",
		Long: "Register a star. With --key the challenge is requested and signed automatically, " +
			"otherwise --address, --message and --signature must be given.",
		RunE: runSubmit,
	}
)

func init() {
	submitCmd.Flags().StringP("key", "k", "", "hex private key to request and sign the challenge with. defaults to $"+keyEnv)
	submitCmd.Flags().String("address", "", "wallet address")
	submitCmd.Flags().StringP("message", "m", "", "signed challenge message")
	submitCmd.Flags().StringP("signature", "s", "", "challenge signature")
	submitCmd.Flags().String("ra", "", "right ascension")
	submitCmd.Flags().String("dec", "", "declination")
	submitCmd.Flags().String("mag", "", "magnitude")
	submitCmd.Flags().String("cen", "", "constellation")
	submitCmd.Flags().String("story", "", "star story")
}

func runChallenge(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := api.NewClient()
	if err != nil {
		return errors.Wrap(err, "constructing client")
	}

	res, err := client.RequestValidation(ctx, args[0])
	if err != nil {
		return errors.Wrap(err, "requesting challenge")
	}

	return printOut(cmd, res)
}

func starFromFlags(cmd *cobra.Command) *storage.Star {
	s := &storage.Star{}
	s.RA, _ = cmd.Flags().GetString("ra")
	s.Dec, _ = cmd.Flags().GetString("dec")
	s.Magnitude, _ = cmd.Flags().GetString("mag")
	s.Constellation, _ = cmd.Flags().GetString("cen")
	s.Story, _ = cmd.Flags().GetString("story")

	return s
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := api.NewClient()
	if err != nil {
		return errors.Wrap(err, "constructing client")
	}

	req := &api.SubmitStarRequest{Star: starFromFlags(cmd)}
	req.Address, _ = cmd.Flags().GetString("address")
	req.Message, _ = cmd.Flags().GetString("message")
	req.Signature, _ = cmd.Flags().GetString("signature")

	if req.Message == "" {
		sk, err := loadKey(cmd)
		if err != nil {
			return errors.Wrap(err, "no message given and no key to sign a new challenge")
		}

		req.Address = sk.Address()

		v, err := client.RequestValidation(ctx, req.Address)
		if err != nil {
			return errors.Wrap(err, "requesting challenge")
		}
		req.Message = v.Message

		req.Signature, err = signChallenge(sk, req.Message, "hex")
		if err != nil {
			return err
		}
	}

	if viper.GetBool("verbose") {
		logging.Entry().WithFields(logging.Fields{
			"address": req.Address,
			"message": req.Message,
			"star":    req.Star,
		}).Info("submitting star")
	}

	b, err := client.SubmitStar(ctx, req)
	if err != nil {
		return errors.Wrap(err, "submitting star")
	}

	return printOut(cmd, b)
}
