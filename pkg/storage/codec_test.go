package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadRoundTrip(t *testing.T) {
	payloads := []*Payload{
		{Data: GenesisData},
		{Owner: "0x1234", Star: &Star{RA: "16h 29m 1.0s", Dec: "-26° 29' 24.9"}},
		{
			Owner: "0xabcd",
			Star: &Star{
				RA:            "13h 03m 33.35sec",
				Dec:           "-49° 31' 38.1''",
				Magnitude:     "4.83",
				Constellation: "Centaurus",
				Story:         "Found star using https://www.google.com/sky/",
			},
		},
	}

	for _, p := range payloads {
		b, err := EncodePayload(p)
		if err != nil {
			t.Fatal(err)
		}

		out := &Payload{}
		if err := DecodePayload(b, out); err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, p, out)
	}
}

func TestHashBlockIgnoresHash(t *testing.T) {
	b, err := NewBlock(&Payload{Owner: "0x1234", Star: &Star{RA: "1", Dec: "2"}})
	if err != nil {
		t.Fatal(err)
	}
	b.Height = 3
	b.Time = 1000
	b.PreviousHash = "prev"

	h1, err := HashBlock(b)
	if err != nil {
		t.Fatal(err)
	}

	b.Hash = "something else"

	h2, err := HashBlock(b)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, h1, h2)
	assert.Equal(t, BlockID("something else"), b.Hash, "hashing must not modify the block")
}

func TestHashBlockCoversFields(t *testing.T) {
	b, err := NewBlock(&Payload{Owner: "0x1234", Star: &Star{RA: "1", Dec: "2"}})
	if err != nil {
		t.Fatal(err)
	}

	base, _ := HashBlock(b)

	mutations := map[string]func(*Block){
		"height":   func(b *Block) { b.Height++ },
		"time":     func(b *Block) { b.Time++ },
		"previous": func(b *Block) { b.PreviousHash = "x" },
		"body":     func(b *Block) { b.Body = append(b.Body, 0) },
	}

	for name, mut := range mutations {
		c := b.Copy()
		mut(c)

		h, err := HashBlock(c)
		if err != nil {
			t.Fatal(err)
		}

		assert.NotEqual(t, base, h, name)
	}
}

func TestParseBlockID(t *testing.T) {
	b, _ := NewBlock(&Payload{Data: GenesisData})
	id, err := HashBlock(b)
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, strings.HasPrefix(string(id), "b"), "cidv1 default base32")

	parsed, err := ParseBlockID(string(id))
	if assert.NoError(t, err) {
		assert.Equal(t, id, parsed)
	}

	_, err = ParseBlockID("not-a-cid")
	assert.Error(t, err)
}
