package cryptography

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyMessage(t *testing.T) {
	sk, err := NewEcdsaSecp256k1PrivateKey()
	require.NoError(t, err)

	msg := sk.Address() + ":1600000000:starRegistry"

	sig, err := sk.SignMessage(msg)
	require.NoError(t, err)
	assert.Len(t, sig, 65)
	assert.GreaterOrEqual(t, sig[64], byte(27))

	v := NewMessageVerifier()

	for _, enc := range []string{"hex", "base58btc", "base64", "base16"} {
		s, err := EncodeSignature(sig, enc)
		require.NoError(t, err)

		assert.True(t, v.VerifySignature(msg, sk.Address(), s), enc)
	}

	hexSig := hexutil.Encode(sig)

	assert.True(t, v.VerifySignature(msg, strings.ToLower(sk.Address()), hexSig), "address case")
	assert.False(t, v.VerifySignature(msg+"x", sk.Address(), hexSig), "other message")

	other, err := NewEcdsaSecp256k1PrivateKey()
	require.NoError(t, err)
	assert.False(t, v.VerifySignature(msg, other.Address(), hexSig), "other address")
}

func TestVerifyMalformed(t *testing.T) {
	sk, err := NewEcdsaSecp256k1PrivateKey()
	require.NoError(t, err)

	v := NewMessageVerifier()

	tests := map[string]struct {
		addr string
		sig  string
	}{
		"empty sig":      {sk.Address(), ""},
		"short sig":      {sk.Address(), "0x0102"},
		"not encoded":    {sk.Address(), "!!!"},
		"bad address":    {"not-an-address", "0x" + strings.Repeat("00", 65)},
		"zero sig":       {sk.Address(), "0x" + strings.Repeat("00", 65)},
		"bad recovery":   {sk.Address(), "0x" + strings.Repeat("11", 64) + "09"},
		"odd hex length": {sk.Address(), "0x123"},
	}

	for name, tc := range tests {
		assert.NotPanics(t, func() {
			assert.False(t, v.VerifySignature("msg", tc.addr, tc.sig), name)
		})
	}
}

func TestVerifyRawRecoveryID(t *testing.T) {
	sk, err := NewEcdsaSecp256k1PrivateKey()
	require.NoError(t, err)

	sig, err := sk.SignMessage("hello")
	require.NoError(t, err)
	sig[64] -= 27

	assert.True(t, NewMessageVerifier().VerifySignature("hello", sk.Address(), hexutil.Encode(sig)))
}

func TestPrivateKeyHexRoundTrip(t *testing.T) {
	sk, err := NewEcdsaSecp256k1PrivateKey()
	require.NoError(t, err)

	sk2, err := NewSecp256k1PrivateKeyFromHex("0x" + sk.Hex())
	require.NoError(t, err)

	assert.Equal(t, sk.Address(), sk2.Address())

	_, err = NewSecp256k1PrivateKeyFromHex("zz")
	assert.Error(t, err)
}

func TestDecodeSignature(t *testing.T) {
	d, err := DecodeSignature("0XABCD")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, d)

	_, err = DecodeSignature(" ")
	assert.ErrorIs(t, err, ErrEmptySignature)

	_, err = EncodeSignature([]byte{1}, "nope")
	assert.Error(t, err)
}
