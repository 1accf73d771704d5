package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tcfw/starnotary/pkg/cryptography"
)

const (
	keyEnv = "STARNOTARY_KEY"
)

var (
	keygenCmd = &cobra.Command{
		Use:   "keygen",
		Short: "Generate a wallet key",
		RunE:  runKeygen,
	}

	signCmd = &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a challenge message with a wallet key",
		Args:  cobra.ExactArgs(1),
		RunE:  runSign,
	}
)

func init() {
	signCmd.Flags().StringP("key", "k", "", "hex private key. defaults to $"+keyEnv)
	signCmd.Flags().StringP("encoding", "e", "hex", "signature encoding (hex or a multibase name eg base58btc, base64)")
}

type keyOutput struct {
	Address    string `json:"address" yaml:"address"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
}

type signOutput struct {
	Address   string `json:"address" yaml:"address"`
	Message   string `json:"message" yaml:"message"`
	Signature string `json:"signature" yaml:"signature"`
}

func runKeygen(cmd *cobra.Command, args []string) error {
	sk, err := cryptography.NewEcdsaSecp256k1PrivateKey()
	if err != nil {
		return err
	}

	return printOut(cmd, &keyOutput{Address: sk.Address(), PrivateKey: sk.Hex()})
}

func runSign(cmd *cobra.Command, args []string) error {
	sk, err := loadKey(cmd)
	if err != nil {
		return err
	}

	enc, _ := cmd.Flags().GetString("encoding")

	sig, err := signChallenge(sk, args[0], enc)
	if err != nil {
		return err
	}

	return printOut(cmd, &signOutput{Address: sk.Address(), Message: args[0], Signature: sig})
}

func loadKey(cmd *cobra.Command) (*cryptography.Secp256k1PrivateKey, error) {
	k, _ := cmd.Flags().GetString("key")
	if k == "" {
		k = os.Getenv(keyEnv)
	}

	if k == "" {
		return nil, errors.New("no key provided")
	}

	return cryptography.NewSecp256k1PrivateKeyFromHex(k)
}

func signChallenge(sk *cryptography.Secp256k1PrivateKey, msg string, enc string) (string, error) {
	sig, err := sk.SignMessage(msg)
	if err != nil {
		return "", err
	}

	return cryptography.EncodeSignature(sig, enc)
}
