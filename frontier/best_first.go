// File: best_first.go
// Role: priority-ordered frontier backed by container/heap.

package frontier

import (
	"container/heap"

	"github.com/katalvlaran/bnb/core"
)

// entry pairs a node with its cached ordering key and insertion sequence.
// A node's state does not change while it waits in the frontier, so the key
// read at push time stays valid until it is popped.
type entry[S any] struct {
	inst core.Instance[S]
	key  float64
	seq  uint64
}

// entryPQ implements heap.Interface over entries. before is the direction
// comparator from core.Comparator; equal keys fall back to insertion order.
type entryPQ[S any] struct {
	items  []*entry[S]
	before func(ka, kb float64) bool
}

func (pq *entryPQ[S]) Len() int { return len(pq.items) }

func (pq *entryPQ[S]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.key == b.key {
		return a.seq < b.seq
	}

	return pq.before(a.key, b.key)
}

func (pq *entryPQ[S]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push is called by heap.Push; x must be *entry[S].
func (pq *entryPQ[S]) Push(x any) { pq.items = append(pq.items, x.(*entry[S])) }

// Pop is called by heap.Pop and returns the last element.
func (pq *entryPQ[S]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return item
}

// BestFirstFrontier pops the most optimistic node first. The zero value takes
// its ordering direction from the first node pushed.
type BestFirstFrontier[S any] struct {
	pq  entryPQ[S]
	seq uint64
}

// NewBestFirst returns an empty best-first frontier for direction d.
func NewBestFirst[S any](d core.Direction) *BestFirstFrontier[S] {
	return &BestFirstFrontier[S]{pq: entryPQ[S]{before: core.Comparator(d)}}
}

// Push computes inst's ordering key if needed and inserts it. O(log n).
func (f *BestFirstFrontier[S]) Push(inst core.Instance[S]) error {
	if inst == nil {
		return ErrNilInstance
	}
	if f.pq.before == nil {
		d, err := core.CheckDirection(inst)
		if err != nil {
			return err
		}
		f.pq.before = core.Comparator(d)
	}
	if err := core.EnsureKey(inst); err != nil {
		return err
	}
	key, err := core.Key(inst)
	if err != nil {
		return err
	}
	heap.Push(&f.pq, &entry[S]{inst: inst, key: key, seq: f.seq})
	f.seq++

	return nil
}

// PushBatch inserts the batch in order; equal keys keep batch order.
func (f *BestFirstFrontier[S]) PushBatch(batch []core.Instance[S]) error {
	for _, inst := range batch {
		if err := f.Push(inst); err != nil {
			return err
		}
	}

	return nil
}

// Pop removes the node with the best key. O(log n).
func (f *BestFirstFrontier[S]) Pop() (core.Instance[S], error) {
	if f.pq.Len() == 0 {
		return nil, ErrEmptyFrontier
	}

	return heap.Pop(&f.pq).(*entry[S]).inst, nil
}

// Len returns the number of pending nodes.
func (f *BestFirstFrontier[S]) Len() int { return f.pq.Len() }

// IsEmpty reports whether no node is pending.
func (f *BestFirstFrontier[S]) IsEmpty() bool { return f.pq.Len() == 0 }

// Strategy returns BestFirst.
func (f *BestFirstFrontier[S]) Strategy() Strategy { return BestFirst }
