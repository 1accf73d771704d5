package storage

import (
	"time"

	"github.com/sirupsen/logrus"
)

type ChainOption func(*Chain) error

// WithClock sets the time source used to stamp appended blocks
func WithClock(now func() time.Time) ChainOption {
	return func(c *Chain) error {
		c.now = now
		return nil
	}
}

func WithValidator(v Validator) ChainOption {
	return func(c *Chain) error {
		c.validator = v
		return nil
	}
}

func WithLogger(l *logrus.Entry) ChainOption {
	return func(c *Chain) error {
		c.log = l
		return nil
	}
}
