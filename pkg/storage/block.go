package storage

import (
	"github.com/pkg/errors"
)

type BlockID string

// Block is a single record in the chain. Height, Time, PreviousHash and Hash
// are assigned by the chain when the block is appended.
type Block struct {
	Hash         BlockID `msgpack:"i"`
	Height       uint64  `msgpack:"h"`
	Body         []byte  `msgpack:"b"`
	Time         int64   `msgpack:"t"`
	PreviousHash BlockID `msgpack:"p"`
}

// NewBlock encodes payload into an unsealed block
func NewBlock(payload interface{}) (*Block, error) {
	body, err := EncodePayload(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding block body")
	}

	return &Block{Body: body}, nil
}

// ValidateSelf recomputes the block hash and compares it to the stored hash.
// An error is only returned if the block could not be serialized.
func (b *Block) ValidateSelf() (bool, error) {
	id, err := HashBlock(b)
	if err != nil {
		return false, err
	}

	return id == b.Hash, nil
}

// ReadPayload decodes the block body. The genesis block always yields
// GenesisPayload.
func (b *Block) ReadPayload() (*Payload, error) {
	if b.Height == 0 {
		p := GenesisPayload
		return &p, nil
	}

	if len(b.Body) == 0 {
		return nil, errors.Wrap(ErrDecode, "empty body")
	}

	p := &Payload{}
	if err := DecodePayload(b.Body, p); err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}

	if p.isZero() {
		return nil, errors.Wrap(ErrDecode, "no value")
	}

	return p, nil
}

func (b *Block) Copy() *Block {
	c := *b
	if b.Body != nil {
		c.Body = make([]byte, len(b.Body))
		copy(c.Body, b.Body)
	}

	return &c
}
