package storage_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/starnotary/pkg/storage"
	"github.com/tcfw/starnotary/pkg/storage/mock"
)

func newChain(t *testing.T, opts ...storage.ChainOption) *storage.Chain {
	t.Helper()

	c, err := storage.NewChain(opts...)
	require.NoError(t, err)

	return c
}

func mustAppend(t *testing.T, c *storage.Chain, p *storage.Payload) *storage.Block {
	t.Helper()

	b, err := storage.NewBlock(p)
	require.NoError(t, err)

	sealed, err := c.Append(b)
	require.NoError(t, err)

	return sealed
}

func TestAppendRollback(t *testing.T) {
	v := &mock.MockValidator{
		FailAbove: 2,
		Findings:  []storage.Finding{{Kind: storage.BrokenLink, Height: 2}},
	}
	c := newChain(t, storage.WithValidator(v))

	mustAppend(t, c, &storage.Payload{Owner: "0x1", Star: &storage.Star{RA: "1", Dec: "2"}})

	b, err := storage.NewBlock(&storage.Payload{Owner: "0x1", Star: &storage.Star{RA: "2", Dec: "2"}})
	require.NoError(t, err)

	_, err = c.Append(b)

	var ierr *storage.IntegrityError
	if assert.True(t, errors.As(err, &ierr)) {
		assert.Equal(t, v.Findings, ierr.Findings)
	}

	assert.Equal(t, int64(1), c.Height())
	assert.Len(t, c.Blocks(), 2)

	_, err = c.BlockByHeight(2)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestAppendValidatorError(t *testing.T) {
	v := &mock.MockValidator{
		FailAbove: 1,
		Err:       errors.New("boom"),
	}
	c := newChain(t, storage.WithValidator(v))

	b, err := storage.NewBlock(&storage.Payload{Owner: "0x1", Star: &storage.Star{RA: "1", Dec: "2"}})
	require.NoError(t, err)

	_, err = c.Append(b)
	assert.Error(t, err)
	assert.Equal(t, int64(0), c.Height())
}

