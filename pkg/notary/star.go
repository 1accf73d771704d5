package notary

import (
	"github.com/pkg/errors"
	"github.com/tcfw/starnotary/pkg/storage"
)

const (
	maxStoryWords = 250
	maxStoryBytes = 500
)

func validateStar(s *storage.Star) error {
	if s == nil {
		return errors.Wrap(ErrInvalidStar, "missing star")
	}

	if s.RA == "" || s.Dec == "" {
		return errors.Wrap(ErrInvalidStar, "ra and dec are required")
	}

	if len(s.Story) > maxStoryBytes || s.StoryWords() > maxStoryWords {
		return errors.Wrapf(ErrInvalidStar, "story exceeds %d words or %d bytes", maxStoryWords, maxStoryBytes)
	}

	return nil
}
