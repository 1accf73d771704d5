package node

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/starnotary/internal/utils/logging"
	"github.com/tcfw/starnotary/pkg/cryptography"
	"github.com/tcfw/starnotary/pkg/notary"
	"github.com/tcfw/starnotary/pkg/storage"
)

type NodeOption func(*Node) error

func WithChain(c *storage.Chain) NodeOption {
	return func(n *Node) error {
		n.chain = c
		return nil
	}
}

func WithVerifier(v notary.Verifier) NodeOption {
	return func(n *Node) error {
		n.verifier = v
		return nil
	}
}

func WithLogger(l *logrus.Logger) NodeOption {
	return func(n *Node) error {
		n.logger = l
		return nil
	}
}

func WithDefaultOptions(ctx context.Context) NodeOption {
	return func(n *Node) error {
		n.logger = logging.Entry().Logger
		n.verifier = cryptography.NewMessageVerifier()

		c, err := storage.NewChain(storage.WithLogger(n.Logger()))
		if err != nil {
			return errors.Wrap(err, "initing chain")
		}
		n.chain = c

		return nil
	}
}
