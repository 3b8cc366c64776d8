package ledger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// GenesisPrevHash is the previous hash recorded in the genesis block.
const GenesisPrevHash = "0"

// GenesisPayload returns the payload of the genesis block: the parcel has been
// ordered and sits in the warehouse.
func GenesisPayload() Payload {
	return Payload{"location": "Warehouse", "status": "Order Placed"}
}

// Blockchain is an append-only, hash-linked log of parcel updates.
type Blockchain struct {
	mu     sync.RWMutex // Protects blocks
	blocks []Block

	now    func() time.Time
	logger *slog.Logger
}

// NewBlockchain creates a new blockchain holding only the genesis block.
//
// The genesis block:
//   - Has index 0 and previous hash "0"
//   - Carries GenesisPayload
//   - Is never checked against a predecessor by Verify
func NewBlockchain(opts ...Option) *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0, 1),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(bc)
	}

	genesis := NewBlock(0, bc.now(), GenesisPayload(), GenesisPrevHash)
	bc.blocks = append(bc.blocks, genesis)
	bc.logger.Debug("genesis block created", "hash", genesis.Hash)

	return bc
}

// Append links a new block carrying data to the current tail and returns a copy
// of it. Existing blocks are never modified.
//
// Thread-safety: This method is safe for concurrent access.
func (bc *Blockchain) Append(data Payload) Block {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	newBlock := NewBlock(latest.Index+1, bc.now(), data, latest.Hash)
	bc.blocks = append(bc.blocks, newBlock)

	bc.logger.Debug("block appended", "index", newBlock.Index, "hash", newBlock.Hash)
	return newBlock.clone()
}

// GetLatest returns the most recently added block in the blockchain.
func (bc *Blockchain) GetLatest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1].clone()
}

// GetByIndex retrieves a block by its index in the chain. Returns
// ErrIndexOutOfRange if there is no such block.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(bc.blocks))
	}

	return bc.blocks[index].clone(), nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Blocks returns a snapshot of the chain in order, genesis first. The returned
// blocks are copies.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	for i, b := range bc.blocks {
		out[i] = b.clone()
	}
	return out
}

// Verify validates the integrity of the entire blockchain.
//
// Every block after genesis must:
//   - Have a stored hash equal to the hash recomputed from its fields
//   - Have a previous hash equal to the hash of the block before it
//
// Returns nil if the blockchain is valid, or a *BlockError describing the first
// integrity violation found.
//
// Thread-safety: This method is safe for concurrent access.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	for i := 1; i < len(bc.blocks); i++ {
		current := bc.blocks[i]
		previous := bc.blocks[i-1]

		if err := validateBlock(current, previous); err != nil {
			bc.logger.Warn("chain verification failed", "index", i, "error", err)
			return &BlockError{Index: i, Err: err}
		}
	}

	return nil
}

// IsValid reports whether Verify finds no integrity violation.
func (bc *Blockchain) IsValid() bool {
	return bc.Verify() == nil
}

// validateBlock verifies a block against its own contents and against the
// block preceding it.
func validateBlock(current, previous Block) error {
	expectedHash := current.CalculateHash()
	if current.Hash != expectedHash {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, expectedHash, current.Hash)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: expected %s, got %s", ErrPrevHashMismatch, previous.Hash, current.PrevHash)
	}

	return nil
}
