package node

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/starnotary/internal/config"
	"github.com/tcfw/starnotary/internal/utils/logging"
	"github.com/tcfw/starnotary/pkg/cryptography"
	"github.com/tcfw/starnotary/pkg/notary"
	"github.com/tcfw/starnotary/pkg/storage"
)

// Node owns the single chain instance and the notary registering into it
type Node struct {
	cfg *config.Config

	chain    *storage.Chain
	verifier notary.Verifier
	notary   *notary.Notary

	logger *logrus.Logger
}

func (n *Node) Chain() *storage.Chain {
	return n.chain
}

func (n *Node) Notary() *notary.Notary {
	return n.notary
}

func (n *Node) Config() *config.Config {
	return n.cfg
}

func (n *Node) Logger() *logrus.Entry {
	if n.logger == nil {
		return logging.Entry()
	}

	return logrus.NewEntry(n.logger)
}

func NewNode(ctx context.Context, opts ...NodeOption) (*Node, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	return newNode(ctx, cfg, opts...)
}

func newNode(_ context.Context, cfg *config.Config, opts ...NodeOption) (*Node, error) {
	n := &Node{cfg: cfg}

	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	if n.verifier == nil {
		n.verifier = cryptography.NewMessageVerifier()
	}

	if n.chain == nil {
		c, err := storage.NewChain(storage.WithLogger(n.Logger()))
		if err != nil {
			return nil, errors.Wrap(err, "initing chain")
		}
		n.chain = c
	}

	n.notary = notary.New(n.chain, n.verifier,
		notary.WithWindow(cfg.Notary().Window),
		notary.WithStarValidation(cfg.Notary().ValidateStars),
		notary.WithLogger(n.Logger()),
	)

	n.Logger().WithFields(logging.Fields{
		"window": cfg.Notary().Window,
		"height": n.chain.Height(),
	}).Info("node ready")

	return n, nil
}

func (n *Node) Stop() error {
	findings, err := n.chain.Validate()
	if err != nil {
		return errors.Wrap(err, "validating chain on stop")
	}

	ent := n.Logger().WithField("height", n.chain.Height())
	if len(findings) != 0 {
		ent.WithField("findings", findings).Warn("stopping with integrity findings")
	} else {
		ent.Info("stopping")
	}

	return nil
}
