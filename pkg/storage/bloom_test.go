package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerFilter(t *testing.T) {
	f := newOwnerFilter()

	f.add("0xaaaa")
	f.add("0xbbbb")

	assert.True(t, f.mayContain("0xaaaa"))
	assert.True(t, f.mayContain("0xbbbb"))
	assert.False(t, f.mayContain("0xcccc"))
}
