package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanChain(t *testing.T) {
	c := newTestChain(t)
	for i := 0; i < 5; i++ {
		appendStar(t, c, "0x1", "ra")
	}

	findings, err := NewLinkValidator().Validate(c.blocks)
	assert.NoError(t, err)
	assert.Empty(t, findings)
}

func TestValidateDetectsPayloadTamper(t *testing.T) {
	c := newTestChain(t)
	appendStar(t, c, "0x1", "1")
	appendStar(t, c, "0x1", "2")
	appendStar(t, c, "0x1", "3")

	body, err := EncodePayload(&Payload{Owner: "0xevil", Star: &Star{RA: "2", Dec: "0"}})
	require.NoError(t, err)
	c.blocks[2].Body = body

	findings, err := c.Validate()
	assert.NoError(t, err)
	assert.Equal(t, []Finding{{Kind: SelfHashMismatch, Height: 2}}, findings)
}

func TestValidateDetectsGenesisTamper(t *testing.T) {
	c := newTestChain(t)
	appendStar(t, c, "0x1", "1")

	c.blocks[0].Time++

	findings, err := c.Validate()
	assert.NoError(t, err)
	assert.Equal(t, []Finding{{Kind: SelfHashMismatch, Height: 0}}, findings)
}

func TestValidateDetectsBrokenLink(t *testing.T) {
	c := newTestChain(t)
	appendStar(t, c, "0x1", "1")
	appendStar(t, c, "0x1", "2")

	// relink the tip and reseal it so only the link is wrong
	tip := c.blocks[2]
	tip.PreviousHash = c.blocks[0].Hash
	id, err := HashBlock(tip)
	require.NoError(t, err)
	tip.Hash = id

	findings, err := c.Validate()
	assert.NoError(t, err)
	assert.Equal(t, []Finding{{Kind: BrokenLink, Height: 2}}, findings)
}

func TestValidateUnsealedTamperReportsBoth(t *testing.T) {
	c := newTestChain(t)
	appendStar(t, c, "0x1", "1")
	appendStar(t, c, "0x1", "2")

	c.blocks[2].PreviousHash = "bafkreibogus"

	findings, err := c.Validate()
	assert.NoError(t, err)
	assert.Equal(t, []Finding{
		{Kind: SelfHashMismatch, Height: 2},
		{Kind: BrokenLink, Height: 2},
	}, findings)
}

func TestValidateIsReadOnly(t *testing.T) {
	c := newTestChain(t)
	appendStar(t, c, "0x1", "1")
	c.blocks[1].Time = 7

	before := c.Blocks()

	_, err := c.Validate()
	assert.NoError(t, err)
	_, err = c.Validate()
	assert.NoError(t, err)

	assert.Equal(t, before, c.Blocks())
}

func TestIntegrityErrorMessage(t *testing.T) {
	err := &IntegrityError{Findings: []Finding{
		{Kind: SelfHashMismatch, Height: 1},
		{Kind: BrokenLink, Height: 2},
	}}

	assert.Equal(t, "chain integrity: SelfHashMismatch@1, BrokenLink@2", err.Error())
}

func TestFindingKindText(t *testing.T) {
	for _, k := range []FindingKind{SelfHashMismatch, BrokenLink} {
		b, err := k.MarshalText()
		require.NoError(t, err)

		var out FindingKind
		require.NoError(t, out.UnmarshalText(b))
		assert.Equal(t, k, out)
	}

	var out FindingKind
	assert.Error(t, out.UnmarshalText([]byte("nope")))
}
