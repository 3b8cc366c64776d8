package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrHashMismatch     = errors.New("ledger: stored hash does not match block contents")
	ErrPrevHashMismatch = errors.New("ledger: previous hash does not match preceding block")
	ErrIndexOutOfRange  = errors.New("ledger: index out of range")
)

// BlockError reports the first block that failed verification.
type BlockError struct {
	Index int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d invalid: %v", e.Index, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
