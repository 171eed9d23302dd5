package stock

import (
	"sort"
	"sync"
)

// Per-item locks. Transaction isolation alone would let two concurrent
// withdrawals both read the same stock and both pass validation; stock
// writes for an item must be serialized in-process.
var (
	locksMu sync.Mutex
	locks   = make(map[uint]*sync.Mutex)
)

func lockFor(itemID uint) *sync.Mutex {
	locksMu.Lock()
	defer locksMu.Unlock()
	m, ok := locks[itemID]
	if !ok {
		m = &sync.Mutex{}
		locks[itemID] = m
	}
	return m
}

// LockItems acquires the locks for the given items in ascending ID order
// (so a transaction moved between two items cannot deadlock against the
// opposite move) and returns the matching unlock function.
func LockItems(ids ...uint) (unlock func()) {
	sorted := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			sorted = append(sorted, id)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, id := range sorted {
		m := lockFor(id)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
