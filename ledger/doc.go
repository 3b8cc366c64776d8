// Package ledger implements an in-memory, tamper-evident blockchain ledger for
// recording the successive status updates of a parcel.
//
// # Core Components
//
// Blockchain: An append-only log of updates with cryptographic hash chaining
// for tamper detection. It always starts with a fixed genesis block.
//
// Block: A single update containing its position, creation time, a key/value
// payload and the hash of the previous block.
//
// # Hash Format
//
// A block hash is the hex-encoded SHA256 digest of
//
//	<index>|<timestamp>|<payload>|<previous hash>
//
// where index and timestamp (unix nanoseconds) are decimal and payload is the
// JSON encoding of the payload map (keys sorted, no whitespace, nil encoded as
// {}). Any change to one of these fields changes the hash.
//
// # Security Properties
//
// The blockchain provides:
//   - Verifiability: Anyone can verify the integrity of the entire chain
//   - Tamper detection: Any modification of a block after genesis, or any
//     broken link between blocks, makes Verify fail
//
// Entries are not signed and nothing is persisted: the ledger lives as long as
// the process that created it.
//
// # Usage
//
// Create a blockchain with NewBlockchain, then Append payloads as updates
// arrive. The Verify method can be called at any time to ensure the chain
// remains intact.
package ledger
