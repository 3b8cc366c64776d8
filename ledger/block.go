package ledger

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.dedis.ch/kyber/v4/suites"
)

// suite provides the hash function used for block digests. The Ed25519 suite
// hashes with SHA-256.
var suite suites.Suite = suites.MustFind("Ed25519")

// Payload is the opaque key/value content of a block.
type Payload map[string]string

// Clone returns a copy of the payload. A nil payload clones to an empty one.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the payload keys in the order used for hashing and display.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Block is a single entry of the ledger. Hash is fixed when the block is
// built and must not be changed afterwards.
type Block struct {
	Index     int     `json:"index"`
	Timestamp int64   `json:"timestamp"` // unix nanoseconds
	Data      Payload `json:"data"`
	PrevHash  string  `json:"prev_hash"`
	Hash      string  `json:"hash"`
}

// NewBlock builds a block and computes its hash.
func NewBlock(index int, ts time.Time, data Payload, prevHash string) Block {
	b := Block{
		Index:     index,
		Timestamp: ts.UnixNano(),
		Data:      data.Clone(),
		PrevHash:  prevHash,
	}
	b.Hash = b.CalculateHash()
	return b
}

// CalculateHash computes the SHA256 digest of the block's index, timestamp,
// payload and previous hash, ignoring the stored Hash. The payload is JSON
// marshaled (sorted keys) and the fields are joined with "|".
func (b Block) CalculateHash() string {
	h := suite.Hash()
	h.Write([]byte(b.serialize()))
	return hex.EncodeToString(h.Sum(nil))
}

func (b Block) serialize() string {
	data := b.Data
	if data == nil {
		data = Payload{}
	}
	// a map[string]string cannot fail to marshal
	dataBytes, _ := json.Marshal(data)
	return fmt.Sprintf("%d|%d|%s|%s", b.Index, b.Timestamp, string(dataBytes), b.PrevHash)
}

// Time returns the creation time of the block.
func (b Block) Time() time.Time {
	return time.Unix(0, b.Timestamp)
}

func (b Block) clone() Block {
	b.Data = b.Data.Clone()
	return b
}
