package api

import (
	"github.com/tcfw/starnotary/pkg/storage"
)

type ValidationRequest struct {
	Address string `json:"address"`
}

type ValidationResponse struct {
	Address          string `json:"walletAddress" yaml:"walletAddress"`
	Message          string `json:"message" yaml:"message"`
	RequestTimeStamp int64  `json:"requestTimeStamp" yaml:"requestTimeStamp"`
	ValidationWindow int64  `json:"validationWindow" yaml:"validationWindow"`
}

type SubmitStarRequest struct {
	Address   string        `json:"address"`
	Message   string        `json:"message"`
	Signature string        `json:"signature"`
	Star      *storage.Star `json:"star"`
}

type BlockResponse struct {
	Hash              storage.BlockID  `json:"hash" yaml:"hash"`
	Height            uint64           `json:"height" yaml:"height"`
	Body              *storage.Payload `json:"body,omitempty" yaml:"body,omitempty"`
	Time              int64            `json:"time" yaml:"time"`
	PreviousBlockHash storage.BlockID  `json:"previousBlockHash,omitempty" yaml:"previousBlockHash,omitempty"`

	DecodeError string `json:"decodeError,omitempty" yaml:"decodeError,omitempty"`
}

func newBlockResponse(b *storage.Block) *BlockResponse {
	r := &BlockResponse{
		Hash:              b.Hash,
		Height:            b.Height,
		Time:              b.Time,
		PreviousBlockHash: b.PreviousHash,
	}

	p, err := b.ReadPayload()
	if err != nil {
		r.DecodeError = err.Error()
	} else {
		r.Body = p
	}

	return r
}

type HeightResponse struct {
	Height int64 `json:"height" yaml:"height"`
}

type ValidateResponse struct {
	Valid    bool              `json:"valid" yaml:"valid"`
	Height   int64             `json:"height" yaml:"height"`
	Findings []storage.Finding `json:"findings" yaml:"findings"`
}

type ErrorResponse struct {
	Error    string            `json:"error"`
	Findings []storage.Finding `json:"findings,omitempty"`
}
