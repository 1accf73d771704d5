package notary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	ChallengeTopic = "starRegistry"

	challengeSep = ":"
)

// Challenge is the decoded form of a challenge message. Nothing about an
// issued challenge is kept server side; the message carries everything.
type Challenge struct {
	Address  string
	IssuedAt int64
}

func (c *Challenge) String() string {
	return fmt.Sprintf("%s%s%d%s%s", c.Address, challengeSep, c.IssuedAt, challengeSep, ChallengeTopic)
}

// ParseChallenge splits a message of the form <address>:<unix>:starRegistry
func ParseChallenge(msg string) (*Challenge, error) {
	parts := strings.Split(msg, challengeSep)
	if len(parts) != 3 {
		return nil, errors.Wrapf(ErrMalformedChallenge, "expected 3 fields, got %d", len(parts))
	}

	if parts[2] != ChallengeTopic {
		return nil, errors.Wrapf(ErrMalformedChallenge, "unknown topic %q", parts[2])
	}

	if strings.HasPrefix(parts[1], "+") {
		return nil, errors.Wrap(ErrMalformedChallenge, "parsing timestamp")
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedChallenge, "parsing timestamp")
	}

	return &Challenge{Address: parts[0], IssuedAt: ts}, nil
}
