package node

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/starnotary/pkg/notary"
	"github.com/tcfw/starnotary/pkg/storage"
)

func TestNewNodeDefaults(t *testing.T) {
	n, err := NewNode(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, n.Chain())
	assert.NotNil(t, n.Notary())
	assert.Equal(t, int64(0), n.Chain().Height())
	assert.Equal(t, notary.DefaultWindow, n.Notary().Window())

	assert.NoError(t, n.Stop())
}

func TestNewNodeWithOptions(t *testing.T) {
	c, err := storage.NewChain()
	require.NoError(t, err)

	called := false
	v := notary.VerifierFunc(func(_, _, _ string) bool {
		called = true
		return true
	})

	n, err := NewNode(context.Background(), WithChain(c), WithVerifier(v))
	require.NoError(t, err)

	assert.Same(t, c, n.Chain())

	msg := n.Notary().IssueChallenge("0xabc")
	_, err = n.Notary().SubmitProof(&notary.Proof{
		Address: "0xabc",
		Message: msg,
		Star:    &storage.Star{RA: "1", Dec: "2"},
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, int64(1), c.Height())
}

func TestNewNodeDefaultOptions(t *testing.T) {
	ctx := context.Background()

	n, err := NewNode(ctx, WithDefaultOptions(ctx))
	require.NoError(t, err)

	assert.NotNil(t, n.Chain())
	assert.Equal(t, int64(0), n.Chain().Height())

	findings, err := n.Chain().Validate()
	assert.NoError(t, err)
	assert.Empty(t, findings)
}
