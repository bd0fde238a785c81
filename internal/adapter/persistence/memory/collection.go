package memory

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

type identifiable interface {
	EntityID() string
}

type cloner[T any] interface {
	Clone() T
}

func indexOf[T identifiable](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.EntityID() == id })
}

// prepend returns a new slice with item in front of items.
func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// update returns a new slice where the record with id is replaced by
// change(record). When id is absent items is returned as is.
func update[T identifiable](items []T, id string, change func(T) T) ([]T, T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		var zero T
		return items, zero, false
	}
	out := slices.Clone(items)
	out[i] = change(items[i])
	return out, out[i], true
}

// remove returns a new slice without the record with id.
func remove[T identifiable](items []T, id string) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

func cloneAll[T cloner[T]](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// truncate keeps the first limit entries; limit <= 0 means no bound.
func truncate[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit:limit]
}

// clock hands out strictly increasing UTC instants so that every update
// moves UpdatedAt forward even within the wall clock's resolution.
// Callers hold the store's writer lock.
type clock struct {
	now  func() time.Time
	last time.Time
}

func newClock(now func() time.Time) *clock {
	return &clock{now: now}
}

func (c *clock) next() time.Time {
	t := c.now().UTC()
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// nextAfter is next, but never at or before floor. Restored records may carry
// timestamps ahead of this host's clock.
func (c *clock) nextAfter(floor time.Time) time.Time {
	t := c.next()
	if !t.After(floor) {
		t = floor.UTC().Add(time.Microsecond)
		c.last = t
	}
	return t
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// idGenerator builds "<prefix>-<n>" ids from one counter seeded at startup.
// Callers hold the store's writer lock.
type idGenerator struct {
	counter int64
}

func newIDGenerator(seed int64) *idGenerator {
	return &idGenerator{counter: seed}
}

func (g *idGenerator) next(prefix string) string {
	g.counter++
	return prefix + "-" + strconv.FormatInt(g.counter, 10)
}

// observe raises the counter above the numeric suffix of id so restored
// records never collide with new ones. Ids without a numeric suffix are
// ignored.
func (g *idGenerator) observe(id string) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return
	}
	n, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return
	}
	if n > g.counter {
		g.counter = n
	}
}
