package storage

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	CIDEncodingBlock = cid.Raw
)

// EncodePayload encodes an application value into a block body
func EncodePayload(v interface{}) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling payload")
	}

	return b, nil
}

// DecodePayload decodes a block body produced by EncodePayload into v
func DecodePayload(b []byte, v interface{}) error {
	if err := msgpack.Unmarshal(b, v); err != nil {
		return errors.Wrap(err, "unmarshalling payload")
	}

	return nil
}

// HashBlock returns the digest of b with its Hash field cleared.
// The hash is a CIDv1 over the sha3-256 of the msgpack encoded block.
func HashBlock(b *Block) (BlockID, error) {
	unsealed := *b
	unsealed.Hash = ""

	d, err := msgpack.Marshal(&unsealed)
	if err != nil {
		return "", errors.Wrap(err, "marshalling block")
	}

	h, err := multihash.Sum(d, multihash.SHA3_256, multihash.DefaultLengths[multihash.SHA3_256])
	if err != nil {
		return "", errors.Wrap(err, "summing block")
	}

	return BlockID(cid.NewCidV1(CIDEncodingBlock, h).String()), nil
}

// ParseBlockID checks s is a well formed block CID
func ParseBlockID(s string) (BlockID, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return "", errors.Wrap(err, "decoding block id")
	}

	if c.Type() != CIDEncodingBlock {
		return "", errors.Errorf("unexpected cid codec: %d", c.Type())
	}

	return BlockID(c.String()), nil
}
