package notary

import "github.com/pkg/errors"

var (
	ErrExpiredChallenge   = errors.New("challenge expired")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrMalformedChallenge = errors.New("malformed challenge message")
	ErrInvalidStar        = errors.New("invalid star")
)
