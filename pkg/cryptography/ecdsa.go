package cryptography

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	ethCrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const (
	// recovery ids in wallet produced signatures are offset by 27
	sigRecoveryOffset = 27
)

type Secp256k1PrivateKey struct {
	*ecdsa.PrivateKey
}

func NewEcdsaSecp256k1PrivateKey() (*Secp256k1PrivateKey, error) {
	pk, err := ecdsa.GenerateKey(ethCrypto.S256(), rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generating ecdsa key")
	}

	return &Secp256k1PrivateKey{pk}, nil
}

func NewSecp256k1PrivateKeyFromHex(h string) (*Secp256k1PrivateKey, error) {
	pk, err := ethCrypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(h), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "decoding ecdsa key")
	}

	return &Secp256k1PrivateKey{pk}, nil
}

func (p *Secp256k1PrivateKey) Bytes() ([]byte, error) {
	return ethCrypto.FromECDSA(p.PrivateKey), nil
}

func (p *Secp256k1PrivateKey) Hex() string {
	return hex.EncodeToString(ethCrypto.FromECDSA(p.PrivateKey))
}

// Address is the checksummed wallet address of the key
func (p *Secp256k1PrivateKey) Address() string {
	return ethCrypto.PubkeyToAddress(p.PublicKey).Hex()
}

// SignMessage produces a wallet style (EIP-191 personal message) signature
// over msg
func (p *Secp256k1PrivateKey) SignMessage(msg string) ([]byte, error) {
	sig, err := ethCrypto.Sign(accounts.TextHash([]byte(msg)), p.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "signing message")
	}

	sig[ethCrypto.RecoveryIDOffset] += sigRecoveryOffset

	return sig, nil
}

// MessageVerifier checks wallet message signatures against an address
type MessageVerifier struct{}

func NewMessageVerifier() *MessageVerifier {
	return &MessageVerifier{}
}

// VerifySignature reports whether signature over message was produced by the
// key owning address. Malformed input is never an error, only false.
func (v *MessageVerifier) VerifySignature(message, address, signature string) bool {
	if !common.IsHexAddress(address) {
		return false
	}

	sig, err := DecodeSignature(signature)
	if err != nil || len(sig) != ethCrypto.SignatureLength {
		return false
	}

	if sig[ethCrypto.RecoveryIDOffset] >= sigRecoveryOffset {
		sig[ethCrypto.RecoveryIDOffset] -= sigRecoveryOffset
	}

	pub, err := ethCrypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return false
	}

	return ethCrypto.PubkeyToAddress(*pub) == common.HexToAddress(address)
}
