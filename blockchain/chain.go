package blockchain

import (
    "bytes"
    "fmt"
    "sync"
    "time"

    "golang.org/x/xerrors"
)

// Chain is the append-only ledger of star registrations. All writes go
// through AppendBlock, which validates the existing chain before touching
// it, so a failed append never leaves partial state behind.
type Chain struct {
    mutex sync.RWMutex
    blocks []*Block
    verifier Verifier

    // now is the clock used for timestamps and the challenge window.
    now func() time.Time
}

// New creates a chain, self-initialized with its genesis block.
func New(verifier Verifier) (*Chain, error) {
    c := &Chain{
        blocks: make([]*Block, 0),
        verifier: verifier,
        now: time.Now,
    }
    if err := c.Initialize(); err != nil {
        return nil, err
    }
    return c, nil
}

// Initialize appends the genesis block to an empty chain. Calling it
// again once genesis exists is a no-op.
func (c *Chain) Initialize() error {
    c.mutex.Lock()
    defer c.mutex.Unlock()
    if len(c.blocks) > 0 {
        return nil
    }
    genesisBlock, err := NewGenesisBlock()
    if err != nil {
        return err
    }
    _, err = c.appendBlock(genesisBlock)
    return err
}

// Height returns the height of the latest block, -1 for an empty chain.
func (c *Chain) Height() int {
    c.mutex.RLock()
    defer c.mutex.RUnlock()
    return len(c.blocks) - 1
}

// AppendBlock links block to the current chain tail and appends it. The
// existing chain is re-validated first; on any inconsistency the block is
// refused with a ChainCorruptedError carrying every problem found.
func (c *Chain) AppendBlock(block *Block) (*Block, error) {
    c.mutex.Lock()
    defer c.mutex.Unlock()
    return c.appendBlock(block)
}

// appendBlock is the single write path. The caller must hold the write
// lock: the tail read and the append must not interleave with another
// append, or the linkage snapshot is lost.
func (c *Chain) appendBlock(block *Block) (*Block, error) {
    if problems := c.validateChain(); len(problems) > 0 {
        return nil, &ChainCorruptedError{Problems: problems}
    }
    block.Timestamp = uint64(c.now().Unix())
    block.Height = uint64(len(c.blocks))
    // The previous hash is part of the block before hashing, so the
    // stored hash commits to the linkage as well.
    if len(c.blocks) > 0 {
        block.PrevBlock = c.blocks[len(c.blocks)-1].Hash
    }
    hash, err := block.CalculateHash()
    if err != nil {
        return nil, xerrors.Errorf("computing block hash: %v", err)
    }
    block.Hash = hash
    c.blocks = append(c.blocks, block)
    return block, nil
}

// Blocks returns a deep-copied snapshot of the full chain.
func (c *Chain) Blocks() []*Block {
    c.mutex.RLock()
    defer c.mutex.RUnlock()
    blocks := make([]*Block, 0, len(c.blocks))
    for _, block := range c.blocks {
        blocks = append(blocks, block.Copy())
    }
    return blocks
}

// GetBlockByHeight returns a copy of the block at the given height, or
// nil if there is none. Absence is a normal outcome, not an error.
func (c *Chain) GetBlockByHeight(height int) *Block {
    c.mutex.RLock()
    defer c.mutex.RUnlock()
    if height < 0 || height >= len(c.blocks) {
        return nil
    }
    return c.blocks[height].Copy()
}

// GetBlockByHash returns a copy of the block with the given hash, or nil
// if there is none. Hashes are unique by construction, so a single match
// is all there can be.
func (c *Chain) GetBlockByHash(hash BlockID) *Block {
    c.mutex.RLock()
    defer c.mutex.RUnlock()
    for _, block := range c.blocks {
        if bytes.Equal(block.Hash, hash) {
            return block.Copy()
        }
    }
    return nil
}

// GetStarsByWallet returns the decoded payload of every block owned by
// the given wallet address. A single undecodable block aborts the whole
// scan: a corrupt chain must not be silently reported as a smaller one.
func (c *Chain) GetStarsByWallet(address string) ([]*BlockData, error) {
    c.mutex.RLock()
    defer c.mutex.RUnlock()
    stars := make([]*BlockData, 0)
    for i, block := range c.blocks {
        data, err := block.DecodePayload()
        if err != nil {
            return nil, xerrors.Errorf("block %d: %w", i, err)
        }
        if data.Owner == address {
            stars = append(stars, data)
        }
    }
    return stars, nil
}

// ValidateChain walks the whole chain, checking every block's stored
// hash and its linkage to the previous block. It returns nil for a
// consistent chain, or a ValidationError listing every problem found.
func (c *Chain) ValidateChain() error {
    c.mutex.RLock()
    defer c.mutex.RUnlock()
    if problems := c.validateChain(); len(problems) > 0 {
        return &ValidationError{Problems: problems}
    }
    return nil
}

// validateChain accumulates problem descriptions instead of stopping at
// the first, so a tampered chain is reported in full. The caller must
// hold at least the read lock.
func (c *Chain) validateChain() []string {
    var problems []string
    for i, block := range c.blocks {
        if !block.Validate() {
            problems = append(problems, fmt.Sprintf("block %d: stored hash does not match recomputed hash", i))
        }
        if i == 0 {
            continue
        }
        if !bytes.Equal(block.PrevBlock, c.blocks[i-1].Hash) {
            problems = append(problems, fmt.Sprintf("block %d: previous hash does not match hash of block %d", i, i-1))
        }
    }
    return problems
}
