package keyspace

import (
	"sort"
	"sync"
)

// orderedSet maps a string member to a signed score, enumerable in score
// order. No skip-list or ordered-map library appears anywhere in the
// reference pack, so membership is a plain map guarded by a mutex and
// score-order enumeration sorts a snapshot on demand; ZPopMin/ZPopMax are
// the only operations that need the sorted view, and they're not hot-path
// enough to justify a more elaborate structure.
type orderedSet struct {
	mu     sync.Mutex
	scores map[string]int32
}

func newOrderedSet() *orderedSet {
	return &orderedSet{scores: make(map[string]int32)}
}

type zmember struct {
	member string
	score  int32
}

func (z *orderedSet) add(member string, score int32, onlyIfAbsent bool) {
	z.mu.Lock()
	defer z.mu.Unlock()
	if onlyIfAbsent {
		if _, ok := z.scores[member]; ok {
			return
		}
	}
	z.scores[member] = score
}

// addBy adjusts member's score by delta, creating it at delta if absent, and
// returns the resulting score.
func (z *orderedSet) addBy(member string, delta int32) int32 {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.scores[member] += delta
	return z.scores[member]
}

func (z *orderedSet) score(member string) (int32, bool) {
	z.mu.Lock()
	defer z.mu.Unlock()
	s, ok := z.scores[member]
	return s, ok
}

func (z *orderedSet) remove(member string) bool {
	z.mu.Lock()
	defer z.mu.Unlock()
	if _, ok := z.scores[member]; !ok {
		return false
	}
	delete(z.scores, member)
	return true
}

// sorted returns every member in ascending score order.
func (z *orderedSet) sorted() []zmember {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.sortedLocked()
}

// sortedLocked is sorted without taking z.mu; the caller must hold it.
func (z *orderedSet) sortedLocked() []zmember {
	out := make([]zmember, 0, len(z.scores))
	for m, s := range z.scores {
		out = append(out, zmember{member: m, score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score < out[j].score
		}
		return out[i].member < out[j].member
	})
	return out
}

// popMin removes and returns up to count members with the lowest scores.
func (z *orderedSet) popMin(count uint32) []zmember {
	return z.pop(count, false)
}

// popMax removes and returns up to count members with the highest scores.
func (z *orderedSet) popMax(count uint32) []zmember {
	return z.pop(count, true)
}

func (z *orderedSet) pop(count uint32, fromMax bool) []zmember {
	z.mu.Lock()
	defer z.mu.Unlock()
	all := z.sortedLocked()
	if fromMax {
		for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
			all[i], all[j] = all[j], all[i]
		}
	}
	if uint32(len(all)) < count {
		count = uint32(len(all))
	}
	picked := all[:count]

	for _, m := range picked {
		delete(z.scores, m.member)
	}
	return picked
}
