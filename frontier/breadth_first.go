package frontier

import "github.com/katalvlaran/bnb/core"

// minRing is the initial ring capacity.
const minRing = 16

// BreadthFirstFrontier is a FIFO queue over a growable ring buffer, so
// popped slots are reused instead of leaking the slice head. The zero value
// is an empty queue.
type BreadthFirstFrontier[S any] struct {
	buf        []core.Instance[S]
	head, size int
}

// NewBreadthFirst returns an empty breadth-first frontier.
func NewBreadthFirst[S any]() *BreadthFirstFrontier[S] {
	return &BreadthFirstFrontier[S]{buf: make([]core.Instance[S], minRing)}
}

// grow doubles the ring (or allocates minRing slots) and unrolls it so
// head == 0.
func (f *BreadthFirstFrontier[S]) grow() {
	size := 2 * len(f.buf)
	if size < minRing {
		size = minRing
	}
	next := make([]core.Instance[S], size)
	n := copy(next, f.buf[f.head:])
	copy(next[n:], f.buf[:f.head])
	f.buf = next
	f.head = 0
}

// Push appends inst at the tail. O(1) amortised.
func (f *BreadthFirstFrontier[S]) Push(inst core.Instance[S]) error {
	if inst == nil {
		return ErrNilInstance
	}
	if f.size == len(f.buf) {
		f.grow()
	}
	f.buf[(f.head+f.size)%len(f.buf)] = inst
	f.size++

	return nil
}

// PushBatch appends the batch in order.
func (f *BreadthFirstFrontier[S]) PushBatch(batch []core.Instance[S]) error {
	for _, inst := range batch {
		if err := f.Push(inst); err != nil {
			return err
		}
	}

	return nil
}

// Pop removes the head of the queue. O(1).
func (f *BreadthFirstFrontier[S]) Pop() (core.Instance[S], error) {
	if f.size == 0 {
		return nil, ErrEmptyFrontier
	}
	inst := f.buf[f.head]
	f.buf[f.head] = nil
	f.head = (f.head + 1) % len(f.buf)
	f.size--

	return inst, nil
}

// Len returns the number of pending nodes.
func (f *BreadthFirstFrontier[S]) Len() int { return f.size }

// IsEmpty reports whether no node is pending.
func (f *BreadthFirstFrontier[S]) IsEmpty() bool { return f.size == 0 }

// Strategy returns BreadthFirst.
func (f *BreadthFirstFrontier[S]) Strategy() Strategy { return BreadthFirst }
