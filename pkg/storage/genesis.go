package storage

import "github.com/pkg/errors"

const (
	// GenesisData is the marker stored in the body of the block at height 0
	GenesisData = "Genesis Block"
)

// GenesisPayload is returned by ReadPayload for the genesis block in place of
// decoding its body
var GenesisPayload = Payload{Data: GenesisData}

func newGenesisBlock() (*Block, error) {
	b, err := NewBlock(&Payload{Data: GenesisData})
	if err != nil {
		return nil, errors.Wrap(err, "creating genesis block")
	}

	return b, nil
}
