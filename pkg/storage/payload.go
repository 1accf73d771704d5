package storage

import (
	"strings"
)

// Star is the registered object a wallet claims authorship of
type Star struct {
	RA            string `msgpack:"ra,omitempty" json:"ra,omitempty" yaml:"ra,omitempty"`
	Dec           string `msgpack:"dec,omitempty" json:"dec,omitempty" yaml:"dec,omitempty"`
	Magnitude     string `msgpack:"mag,omitempty" json:"mag,omitempty" yaml:"mag,omitempty"`
	Constellation string `msgpack:"cen,omitempty" json:"cen,omitempty" yaml:"cen,omitempty"`
	Story         string `msgpack:"story,omitempty" json:"story,omitempty" yaml:"story,omitempty"`
}

// StoryWords counts whitespace separated words in the story
func (s *Star) StoryWords() int {
	return len(strings.Fields(s.Story))
}

// Payload is the application value encoded into a block body
type Payload struct {
	Star  *Star  `msgpack:"star,omitempty" json:"star,omitempty" yaml:"star,omitempty"`
	Owner string `msgpack:"owner,omitempty" json:"owner,omitempty" yaml:"owner,omitempty"`
	Data  string `msgpack:"data,omitempty" json:"data,omitempty" yaml:"data,omitempty"`
}

func (p *Payload) IsGenesis() bool {
	return p.Star == nil && p.Owner == "" && p.Data == GenesisData
}

func (p *Payload) isZero() bool {
	return p.Star == nil && p.Owner == "" && p.Data == ""
}
