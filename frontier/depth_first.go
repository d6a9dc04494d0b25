package frontier

import "github.com/katalvlaran/bnb/core"

// DepthFirstFrontier is a LIFO stack.
type DepthFirstFrontier[S any] struct {
	stack []core.Instance[S]
}

// NewDepthFirst returns an empty depth-first frontier.
func NewDepthFirst[S any]() *DepthFirstFrontier[S] {
	return &DepthFirstFrontier[S]{}
}

// Push places inst on top of the stack. O(1) amortised.
func (f *DepthFirstFrontier[S]) Push(inst core.Instance[S]) error {
	if inst == nil {
		return ErrNilInstance
	}
	f.stack = append(f.stack, inst)

	return nil
}

// PushBatch pushes the batch in reverse so batch[0] ends up on top and is
// explored first.
func (f *DepthFirstFrontier[S]) PushBatch(batch []core.Instance[S]) error {
	for i := len(batch) - 1; i >= 0; i-- {
		if err := f.Push(batch[i]); err != nil {
			return err
		}
	}

	return nil
}

// Pop removes the top of the stack. O(1).
func (f *DepthFirstFrontier[S]) Pop() (core.Instance[S], error) {
	n := len(f.stack)
	if n == 0 {
		return nil, ErrEmptyFrontier
	}
	inst := f.stack[n-1]
	f.stack[n-1] = nil
	f.stack = f.stack[:n-1]

	return inst, nil
}

// Len returns the number of pending nodes.
func (f *DepthFirstFrontier[S]) Len() int { return len(f.stack) }

// IsEmpty reports whether no node is pending.
func (f *DepthFirstFrontier[S]) IsEmpty() bool { return len(f.stack) == 0 }

// Strategy returns DepthFirst.
func (f *DepthFirstFrontier[S]) Strategy() Strategy { return DepthFirst }
