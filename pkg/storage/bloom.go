package storage

import (
	"github.com/bits-and-blooms/bloom/v3"
)

const (
	ownerFilterSize = 100000
	falsePositive   = 0.01
)

// ownerFilter tracks owners indexed when their blocks were committed. It
// never decides lookup results; an owner found on chain that the filter has
// definitely not seen was written into a block after commit.
type ownerFilter struct {
	f *bloom.BloomFilter
}

func newOwnerFilter() *ownerFilter {
	return &ownerFilter{f: bloom.NewWithEstimates(ownerFilterSize, falsePositive)}
}

func (o *ownerFilter) add(owner string) {
	o.f.AddString(owner)
}

func (o *ownerFilter) mayContain(owner string) bool {
	return o.f.TestString(owner)
}
