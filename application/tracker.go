package application

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/luca-patrignani/parcel-ledger/ledger"
)

// Payload keys of a parcel update.
const (
	KeyLocation = "location"
	KeyStatus   = "status"
)

var (
	ErrMissingLocation = errors.New("location is required")
	ErrMissingStatus   = errors.New("status is required")
)

// Update is a parcel status update as entered by the user.
type Update struct {
	Location string
	Status   string
}

// UpdateFromBlock extracts the parcel update stored in a block.
func UpdateFromBlock(b ledger.Block) Update {
	return Update{Location: b.Data[KeyLocation], Status: b.Data[KeyStatus]}
}

// Report is the outcome of an integrity check.
type Report struct {
	Valid  bool
	Blocks int
	// Err is the first violation found, nil when Valid.
	Err error
}

// FailedBlock returns the index of the block that failed verification.
func (r Report) FailedBlock() (int, bool) {
	var blockErr *ledger.BlockError
	if errors.As(r.Err, &blockErr) {
		return blockErr.Index, true
	}
	return 0, false
}

// Tracker owns the ledger of a tracking session. There is one Tracker per
// session; callers keep it and pass it where it is needed.
type Tracker struct {
	chain  *ledger.Blockchain
	logger *slog.Logger
}

// NewTracker starts a tracking session with a fresh ledger.
func NewTracker(logger *slog.Logger, opts ...ledger.Option) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]ledger.Option{ledger.WithLogger(logger)}, opts...)
	return &Tracker{
		chain:  ledger.NewBlockchain(opts...),
		logger: logger,
	}
}

// Record appends a new update to the ledger. Both fields must be non-blank;
// nothing is appended otherwise.
func (t *Tracker) Record(location, status string) (ledger.Block, error) {
	location = strings.TrimSpace(location)
	status = strings.TrimSpace(status)

	var errs []error
	if location == "" {
		errs = append(errs, ErrMissingLocation)
	}
	if status == "" {
		errs = append(errs, ErrMissingStatus)
	}
	if len(errs) > 0 {
		return ledger.Block{}, errors.Join(errs...)
	}

	b := t.chain.Append(ledger.Payload{KeyLocation: location, KeyStatus: status})
	t.logger.Info("update recorded", "index", b.Index, "location", location, "status", status)
	return b, nil
}

// History returns every block of the ledger, genesis first.
func (t *Tracker) History() []ledger.Block {
	return t.chain.Blocks()
}

// Current returns the latest update of the parcel.
func (t *Tracker) Current() Update {
	return UpdateFromBlock(t.chain.GetLatest())
}

// Check verifies the ledger. An integrity violation is reported, never raised.
func (t *Tracker) Check() Report {
	err := t.chain.Verify()
	r := Report{Valid: err == nil, Blocks: t.chain.Len(), Err: err}
	if err != nil {
		t.logger.Warn("ledger integrity compromised", "error", err)
	}
	return r
}

// Ledger exposes the underlying blockchain.
func (t *Tracker) Ledger() *ledger.Blockchain {
	return t.chain
}
