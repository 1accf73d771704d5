package storage

import "github.com/pkg/errors"

var (
	ErrNotFound = errors.New("not found")

	ErrDecode      = errors.New("payload decode error")
	ErrBlockSealed = errors.New("block already sealed")
	ErrNilBlock    = errors.New("nil block")
)
