package cryptography

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/multiformats/go-multibase"
	"github.com/pkg/errors"
)

var (
	ErrEmptySignature = errors.New("empty signature")
)

// DecodeSignature accepts either 0x prefixed hex or any multibase encoding
func DecodeSignature(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptySignature
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hexutil.Decode("0x" + s[2:])
	}

	_, d, err := multibase.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding multibase")
	}

	return d, nil
}

// EncodeSignature encodes sig as 0x hex when enc is "hex", otherwise as the
// named multibase encoding (eg base58btc, base64)
func EncodeSignature(sig []byte, enc string) (string, error) {
	if enc == "" || enc == "hex" {
		return hexutil.Encode(sig), nil
	}

	e, err := multibase.EncoderByName(enc)
	if err != nil {
		return "", errors.Wrap(err, "unknown encoding")
	}

	return e.Encode(sig), nil
}
