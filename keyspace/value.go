package keyspace

import (
	"sync"
	"time"

	"github.com/emberdb/emberdb/dlist"
	"github.com/emberdb/emberdb/wire"
)

// Kind tags which of the five composite shapes an entry holds.
type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindSet
	KindMap
	KindOrderedSet
)

// entry is one live keyspace slot. Exactly one of the payload fields is
// meaningful, selected by kind; scalar, set, and hash payloads are guarded
// by mu for read-modify-write atomicity, while list and orderedSet are
// internally thread-safe containers that can be held across the handler
// body without taking mu.
//
// expireAt is the zero time.Time when the entry has no expiration. It is
// read and written under mu like any other field.
type entry struct {
	mu sync.Mutex

	kind Kind

	scalar wire.ValueType
	list   *dlist.List[wire.ValueType]
	set    map[string]struct{}
	hash   map[string]wire.ValueType
	zset   *orderedSet

	expireAt time.Time
}

func newScalarEntry(v wire.ValueType) *entry {
	return &entry{kind: KindScalar, scalar: v}
}

func newListEntry() *entry {
	return &entry{kind: KindList, list: dlist.New[wire.ValueType]()}
}

func newSetEntry() *entry {
	return &entry{kind: KindSet, set: make(map[string]struct{})}
}

func newHashEntry() *entry {
	return &entry{kind: KindMap, hash: make(map[string]wire.ValueType)}
}

func newOrderedSetEntry() *entry {
	return &entry{kind: KindOrderedSet, zset: newOrderedSet()}
}

// expired reports whether the entry's TTL (if any) has elapsed as of now.
// Caller must hold e.mu.
func (e *entry) expired(now time.Time) bool {
	return !e.expireAt.IsZero() && !now.Before(e.expireAt)
}

// ttl returns the remaining time to live, or nil if the entry has none.
// Caller must hold e.mu.
func (e *entry) ttl(now time.Time) *uint32 {
	if e.expireAt.IsZero() {
		return nil
	}
	remaining := e.expireAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	secs := uint32(remaining / time.Second)
	return &secs
}
