package storage

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type FindingKind int

const (
	SelfHashMismatch FindingKind = iota + 1
	BrokenLink
)

func (k FindingKind) String() string {
	switch k {
	case SelfHashMismatch:
		return "SelfHashMismatch"
	case BrokenLink:
		return "BrokenLink"
	default:
		return fmt.Sprintf("FindingKind(%d)", int(k))
	}
}

func (k FindingKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FindingKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "SelfHashMismatch":
		*k = SelfHashMismatch
	case "BrokenLink":
		*k = BrokenLink
	default:
		return errors.Errorf("unknown finding kind: %s", b)
	}

	return nil
}

// Finding is a single integrity violation at a block height
type Finding struct {
	Kind   FindingKind `json:"kind" yaml:"kind"`
	Height uint64      `json:"height" yaml:"height"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s@%d", f.Kind, f.Height)
}

// IntegrityError is returned when an append would leave the chain with
// integrity findings
type IntegrityError struct {
	Findings []Finding
}

func (e *IntegrityError) Error() string {
	f := make([]string, 0, len(e.Findings))
	for _, v := range e.Findings {
		f = append(f, v.String())
	}

	return "chain integrity: " + strings.Join(f, ", ")
}

type Validator interface {
	Validate(blocks []*Block) ([]Finding, error)
}

// LinkValidator checks the self-hash of every block and the link from each
// block to its predecessor. It never modifies the blocks it is given.
type LinkValidator struct{}

func NewLinkValidator() *LinkValidator {
	return &LinkValidator{}
}

func (v *LinkValidator) Validate(blocks []*Block) ([]Finding, error) {
	findings := []Finding{}

	for i, b := range blocks {
		ok, err := b.ValidateSelf()
		if err != nil {
			return nil, errors.Wrapf(err, "validating block at height %d", b.Height)
		}
		if !ok {
			findings = append(findings, Finding{Kind: SelfHashMismatch, Height: b.Height})
		}

		if i > 0 && b.PreviousHash != blocks[i-1].Hash {
			findings = append(findings, Finding{Kind: BrokenLink, Height: b.Height})
		}
	}

	return findings, nil
}
