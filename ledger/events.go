package ledger

import (
	"math/big"
	"sync"
)

// Event is a record of a completed state transition, emitted for off-chain
// indexers. Events are appended to the configured EventSink only after the
// operation's state mutation (and any outbound reserve transfer) has
// committed; a failed operation emits nothing.
type Event interface {
	// Kind returns the event's type tag.
	Kind() string
}

// TransferEvent records a token-denominated balance movement.
type TransferEvent struct {
	From   Principal
	To     Principal
	Tokens *big.Int
}

// TransferSharesEvent records the underlying share movement of a transfer.
// Both events are emitted for every transfer; integrations may rely on either.
type TransferSharesEvent struct {
	From   Principal
	To     Principal
	Shares *big.Int
}

// MintEvent records a deposit: new shares credited against pulled-in value.
type MintEvent struct {
	To     Principal
	Tokens *big.Int
	Shares *big.Int
}

// BurnEvent records a redeem. PreTokens is the token amount requested;
// PostTokens revalues the burned shares at the post-burn rate, so the
// difference is the rounding dust left to the pool.
type BurnEvent struct {
	Owner        Principal
	PreTokens    *big.Int
	PostTokens   *big.Int
	SharesBurned *big.Int
}

// YieldDistributedEvent records a change in total pooled value with no
// share-count change, which is the rebase itself.
type YieldDistributedEvent struct {
	PrevValue *big.Int
	NewValue  *big.Int
}

// ApprovalEvent records a new allowance value (token-denominated).
type ApprovalEvent struct {
	Owner     Principal
	Spender   Principal
	Allowance *big.Int
}

func (TransferEvent) Kind() string         { return "Transfer" }
func (TransferSharesEvent) Kind() string   { return "TransferShares" }
func (MintEvent) Kind() string             { return "Mint" }
func (BurnEvent) Kind() string             { return "Burn" }
func (YieldDistributedEvent) Kind() string { return "YieldDistributed" }
func (ApprovalEvent) Kind() string         { return "Approval" }

// EventSink receives events emitted by ledger operations.
type EventSink interface {
	Emit(Event)
}

// MemoryJournal is an EventSink that buffers events in memory until drained.
type MemoryJournal struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryJournal creates an empty journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

// Emit appends an event to the journal.
func (j *MemoryJournal) Emit(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
}

// Drain returns all buffered events and empties the journal.
func (j *MemoryJournal) Drain() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := j.events
	j.events = nil
	return out
}

// Len returns the number of buffered events.
func (j *MemoryJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.events)
}

// nopSink discards all events. Used when no sink is configured.
type nopSink struct{}

func (nopSink) Emit(Event) {}
