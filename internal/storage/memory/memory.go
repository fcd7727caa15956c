// Package memory holds the in-process stores backing the service. Each store
// owns one slice of records plus a mutex; nothing is shared between stores
// and no lock is ever held across a call into another store.
package memory

import "time"

// loyaltyThreshold is the purchase count a customer must exceed to be
// considered loyal. Fixed business rule, no config surface.
const loyaltyThreshold = 10

// clock is the time source a store stamps defaults with. Tests inject a
// fixed one; nil falls back to UTC wall time.
type clock = func() time.Time

func orWallClock(now clock) clock {
	if now != nil {
		return now
	}
	return func() time.Time { return time.Now().UTC() }
}

// nextID assigns max existing id + 1, or 1 for an empty collection.
// Callers must hold the store lock.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

// removeByID deletes the first record matching id, preserving order of the
// rest. Reports whether a removal happened. Callers must hold the store lock.
func removeByID[T any](items []T, target int, id func(T) int) ([]T, bool) {
	for i, it := range items {
		if id(it) == target {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// snapshot copies a collection so callers can iterate or mutate the result
// without racing a concurrent writer.
func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
