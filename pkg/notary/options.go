package notary

import (
	"time"

	"github.com/sirupsen/logrus"
)

type Option func(*Notary)

// WithClock sets the time source used to issue and check challenges
func WithClock(now func() time.Time) Option {
	return func(n *Notary) {
		n.now = now
	}
}

// WithWindow sets how old a challenge may be when its proof is submitted
func WithWindow(d time.Duration) Option {
	return func(n *Notary) {
		n.window = d
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(n *Notary) {
		n.log = l
	}
}

// WithStarValidation toggles the star field checks made before registering
func WithStarValidation(enabled bool) Option {
	return func(n *Notary) {
		n.validateStars = enabled
	}
}
