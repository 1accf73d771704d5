package storage

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/starnotary/internal/utils/logging"
)

// Chain is an append-only, in memory sequence of hash linked blocks.
// Appends are serialised by a single write lock held for the whole
// seal-validate-commit sequence; readers never observe a provisional block.
type Chain struct {
	mu sync.RWMutex

	blocks []*Block
	owners *ownerFilter

	validator Validator
	now       func() time.Time
	log       *logrus.Entry
}

// NewChain creates a chain seeded with the genesis block
func NewChain(opts ...ChainOption) (*Chain, error) {
	c := &Chain{
		blocks:    make([]*Block, 0, 1),
		owners:    newOwnerFilter(),
		validator: NewLinkValidator(),
		now:       time.Now,
		log:       logging.Entry(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	genesis, err := newGenesisBlock()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.append(genesis); err != nil {
		return nil, errors.Wrap(err, "appending genesis block")
	}

	return c, nil
}

// Height is the height of the last block, -1 if the chain is empty
func (c *Chain) Height() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.height()
}

func (c *Chain) height() int64 {
	return int64(len(c.blocks)) - 1
}

func (c *Chain) LastBlock() *Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.blocks) == 0 {
		return nil
	}

	return c.blocks[len(c.blocks)-1].Copy()
}

// Append seals a copy of b onto the end of the chain and returns it.
// The whole chain is validated with the new block in place; if any finding
// is reported the block is removed again and an *IntegrityError is returned.
func (c *Chain) Append(b *Block) (*Block, error) {
	if b == nil {
		return nil, ErrNilBlock
	}

	if b.Hash != "" {
		return nil, ErrBlockSealed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.append(b)
}

func (c *Chain) append(b *Block) (*Block, error) {
	sealed := b.Copy()

	height := c.height() + 1
	sealed.Height = uint64(height)
	sealed.PreviousHash = ""
	if height > 0 {
		sealed.PreviousHash = c.blocks[len(c.blocks)-1].Hash
	}
	sealed.Time = c.now().Unix()

	id, err := HashBlock(sealed)
	if err != nil {
		return nil, errors.Wrap(err, "hashing block")
	}
	sealed.Hash = id

	c.blocks = append(c.blocks, sealed)

	findings, err := c.validator.Validate(c.blocks)
	if err != nil {
		c.rollback()
		return nil, errors.Wrap(err, "validating chain")
	}

	if len(findings) != 0 {
		c.rollback()
		c.log.WithFields(logging.Fields{
			"height":   height,
			"findings": findings,
		}).Warn("rejected block")
		return nil, &IntegrityError{Findings: findings}
	}

	c.indexOwner(sealed)

	c.log.WithFields(logging.Fields{
		"height": height,
		"hash":   id,
	}).Debug("appended block")

	return sealed.Copy(), nil
}

func (c *Chain) rollback() {
	n := len(c.blocks) - 1
	c.blocks[n] = nil
	c.blocks = c.blocks[:n]
}

func (c *Chain) indexOwner(b *Block) {
	if b.Height == 0 {
		return
	}

	p, err := b.ReadPayload()
	if err != nil {
		return
	}

	if p.Owner != "" {
		c.owners.add(p.Owner)
	}
}

// BlockByHash returns a copy of the block with the given hash. Each call
// returns a fresh copy; compare blocks by value, not by pointer.
func (c *Chain) BlockByHash(id BlockID) (*Block, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, b := range c.blocks {
		if b.Hash == id {
			return b.Copy(), nil
		}
	}

	return nil, ErrNotFound
}

// BlockByHeight returns a copy of the block at the given height. Each call
// returns a fresh copy; compare blocks by value, not by pointer.
func (c *Chain) BlockByHeight(height uint64) (*Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, b := range c.blocks {
		if b.Height == height {
			return b.Copy(), nil
		}
	}

	return nil, ErrNotFound
}

// StarsByOwner returns, in append order, every star registered to owner.
// Every non-genesis block is decoded; one that fails to decode aborts the
// lookup.
func (c *Chain) StarsByOwner(owner string) ([]*Star, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stars := []*Star{}

	for _, b := range c.blocks {
		if b.Height == 0 {
			continue
		}

		p, err := b.ReadPayload()
		if err != nil {
			return nil, errors.Wrapf(err, "reading block at height %d", b.Height)
		}

		if p.Owner == owner && p.Star != nil {
			stars = append(stars, p.Star)
		}
	}

	if len(stars) > 0 && !c.owners.mayContain(owner) {
		c.log.WithField("owner", owner).Warn("owner not indexed at append; chain modified after commit")
	}

	return stars, nil
}

// Validate runs the chain validator over the committed blocks
func (c *Chain) Validate() ([]Finding, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.validator.Validate(c.blocks)
}

// Blocks returns a copy of every block in height order
func (c *Chain) Blocks() []*Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	blocks := make([]*Block, 0, len(c.blocks))
	for _, b := range c.blocks {
		blocks = append(blocks, b.Copy())
	}

	return blocks
}
