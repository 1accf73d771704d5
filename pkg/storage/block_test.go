package storage

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewBlockUnsealed(t *testing.T) {
	b, err := NewBlock(&Payload{Owner: "0x1", Star: &Star{RA: "1", Dec: "2"}})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, uint64(0), b.Height)
	assert.Equal(t, int64(0), b.Time)
	assert.Empty(t, b.Hash)
	assert.Empty(t, b.PreviousHash)
	assert.NotEmpty(t, b.Body)
}

func TestValidateSelf(t *testing.T) {
	b, err := NewBlock(&Payload{Owner: "0x1", Star: &Star{RA: "1", Dec: "2"}})
	if err != nil {
		t.Fatal(err)
	}
	b.Height = 1

	ok, err := b.ValidateSelf()
	assert.NoError(t, err)
	assert.False(t, ok, "unsealed block")

	b.Hash, err = HashBlock(b)
	if err != nil {
		t.Fatal(err)
	}

	ok, err = b.ValidateSelf()
	assert.NoError(t, err)
	assert.True(t, ok)

	b.Time = 42

	ok, err = b.ValidateSelf()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestReadPayload(t *testing.T) {
	p := &Payload{Owner: "0x1", Star: &Star{RA: "1", Dec: "2", Story: "hello"}}

	b, err := NewBlock(p)
	if err != nil {
		t.Fatal(err)
	}
	b.Height = 5

	out, err := b.ReadPayload()
	if assert.NoError(t, err) {
		assert.Equal(t, p, out)
	}
}

func TestReadPayloadGenesis(t *testing.T) {
	b := &Block{Body: []byte{0xc1}}

	p, err := b.ReadPayload()
	if assert.NoError(t, err) {
		assert.True(t, p.IsGenesis())
		assert.Equal(t, GenesisPayload, *p)
	}
}

func TestReadPayloadDecodeError(t *testing.T) {
	tests := map[string][]byte{
		"empty":   nil,
		"garbage": {0xc1},
		"nothing": {0x80}, //empty map
	}

	for name, body := range tests {
		b := &Block{Height: 1, Body: body}

		_, err := b.ReadPayload()
		assert.True(t, errors.Is(err, ErrDecode), name)
	}
}

func TestBlockCopy(t *testing.T) {
	b := &Block{Hash: "h", Height: 2, Body: []byte{1, 2, 3}, Time: 10, PreviousHash: "p"}

	c := b.Copy()
	assert.Equal(t, b, c)

	c.Body[0] = 9
	assert.Equal(t, byte(1), b.Body[0])

	empty := &Block{Body: []byte{}}
	assert.NotNil(t, empty.Copy().Body)
}
