package notary

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/starnotary/internal/utils/logging"
	"github.com/tcfw/starnotary/pkg/storage"
)

const (
	DefaultWindow = 5 * time.Minute
)

// Verifier checks that signature over message was made by the key behind
// address. It must return false, never panic, for malformed input.
type Verifier interface {
	VerifySignature(message, address, signature string) bool
}

type VerifierFunc func(message, address, signature string) bool

func (f VerifierFunc) VerifySignature(message, address, signature string) bool {
	return f(message, address, signature)
}

// Proof is a signed challenge submitted to register a star
type Proof struct {
	Address   string
	Message   string
	Signature string
	Star      *storage.Star
}

// Notary registers stars to wallet addresses that prove key ownership by
// signing a recently issued challenge
type Notary struct {
	chain    *storage.Chain
	verifier Verifier

	window        time.Duration
	validateStars bool
	now           func() time.Time
	log           *logrus.Entry
}

func New(chain *storage.Chain, v Verifier, opts ...Option) *Notary {
	n := &Notary{
		chain:         chain,
		verifier:      v,
		window:        DefaultWindow,
		validateStars: true,
		now:           time.Now,
		log:           logging.Entry(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

func (n *Notary) Window() time.Duration {
	return n.window
}

// IssueChallenge returns the message address must sign
func (n *Notary) IssueChallenge(address string) string {
	c := &Challenge{Address: address, IssuedAt: n.now().Unix()}

	n.log.WithField("address", address).Debug("issued challenge")

	return c.String()
}

// SubmitProof verifies the proof and, if it holds, appends a block
// registering the star to the address.
//
// The age check is one sided: a challenge stamped in the future passes as
// long as now-issued does not exceed the window.
func (n *Notary) SubmitProof(p *Proof) (*storage.Block, error) {
	c, err := ParseChallenge(p.Message)
	if err != nil {
		return nil, err
	}

	if c.Address != p.Address {
		return nil, errors.Wrap(ErrMalformedChallenge, "challenge issued to another address")
	}

	// compared as issued < now-window so a far past timestamp cannot wrap
	// the age into the negative
	now := n.now().Unix()
	if c.IssuedAt < now-int64(n.window/time.Second) {
		n.log.WithFields(logging.Fields{
			"address": p.Address,
			"issued":  c.IssuedAt,
		}).Debug("rejected expired challenge")
		return nil, ErrExpiredChallenge
	}

	if !n.verifier.VerifySignature(p.Message, p.Address, p.Signature) {
		n.log.WithField("address", p.Address).Debug("rejected signature")
		return nil, ErrInvalidSignature
	}

	if n.validateStars {
		if err := validateStar(p.Star); err != nil {
			return nil, err
		}
	}

	b, err := storage.NewBlock(&storage.Payload{Star: p.Star, Owner: p.Address})
	if err != nil {
		return nil, err
	}

	sealed, err := n.chain.Append(b)
	if err != nil {
		return nil, err
	}

	n.log.WithFields(logging.Fields{
		"address": p.Address,
		"height":  sealed.Height,
	}).Info("registered star")

	return sealed, nil
}
