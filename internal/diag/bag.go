package diag

import (
	"sort"
)

// Bag collects parse errors up to a limit.
type Bag struct {
	items []*Error
	max   int
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 1
	}
	return &Bag{
		items: make([]*Error, 0, min(max, 64)),
		max:   max,
	}
}

// Add appends e unless the limit is reached. It returns false when e was dropped.
func (b *Bag) Add(e *Error) bool {
	if e == nil || len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, e)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether anything was collected.
func (b *Bag) HasErrors() bool {
	return b != nil && len(b.items) > 0
}

// Items returns the collected errors. Do not modify the returned slice.
func (b *Bag) Items() []*Error {
	return b.items
}

// Sort orders errors by line, start, end, then code.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Span.Line != dj.Span.Line {
			return di.Span.Line < dj.Span.Line
		}
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		if di.Span.End != dj.Span.End {
			return di.Span.End < dj.Span.End
		}
		return di.Code < dj.Code
	})
}
