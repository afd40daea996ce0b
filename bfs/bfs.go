// Package bfs provides breadth-first search over the water-jug state space,
// returning a shortest operator path from a start state to the objective.
//
// Duplicates are filtered lazily: a state may be enqueued several times and
// is discarded when it is dequeued after its first expansion.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/buckets/core"
)

// node is one entry of the search arena: a state, its depth, and the
// arena index of the node it was generated from (-1 for the start).
type node struct {
	state  core.State
	depth  int
	parent int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	arena   []node
	queue   []int
	visited map[core.State]bool
	res     *BFSResult
}

// BFS runs breadth-first search from start, applying any number of
// functional Options.
// Returns ErrOptionViolation for bad options, ErrInvalidStart for a start
// state outside the capacities, ErrNoSolution when the frontier empties,
// ErrExpansionLimit when MaxExpansions is hit, the context error on
// cancellation, or any user-supplied hook error.
// On failure the returned result still carries Order and the counters.
func BFS(start core.State, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := start.Validate(o.Capacities); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}

	n := o.Capacities.StateCount()
	w := &walker{
		opts:    o,
		arena:   make([]node, 0, n*len(o.Operators)),
		queue:   make([]int, 0, n),
		visited: make(map[core.State]bool, n),
		res:     &BFSResult{Order: make([]core.State, 0, n)},
	}

	w.arena = append(w.arena, node{state: start, depth: 0, parent: -1})
	w.queue = append(w.queue, 0)

	goal, err := w.loop()
	if err != nil {
		return w.res, err
	}
	w.res.Path = w.pathTo(goal)

	return w.res, nil
}

// loop processes the queue until the objective is met, the queue empties,
// an error occurs, or the context is cancelled. It returns the arena index
// of the goal node.
func (w *walker) loop() (int, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return -1, w.opts.Ctx.Err()
		default:
		}

		idx := w.dequeue()
		cur := w.arena[idx]
		if w.visited[cur.state] {
			continue
		}
		if err := w.visit(cur); err != nil {
			return -1, err
		}
		if w.opts.Objective(cur.state) {
			return idx, nil
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return -1, fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, w.res.Expanded)
		}
		w.expand(idx)
		w.visited[cur.state] = true
	}

	return -1, ErrNoSolution
}

// dequeue pops the first arena index, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	idx := w.queue[0]
	w.queue = w.queue[1:]
	n := w.arena[idx]
	w.opts.OnDequeue(n.state, n.depth)

	return idx
}

// visit records the state in Order and calls OnVisit.
func (w *walker) visit(n node) error {
	w.res.Order = append(w.res.Order, n.state)
	if err := w.opts.OnVisit(n.state, n.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", n.state, err)
	}

	return nil
}

// expand applies every operator to the node at idx and enqueues each
// successor with idx as its parent.
func (w *walker) expand(idx int) {
	cur := w.arena[idx]
	w.res.Expanded++
	for _, m := range core.Successors(cur.state, w.opts.Operators) {
		w.arena = append(w.arena, node{state: m.State, depth: cur.depth + 1, parent: idx})
		w.queue = append(w.queue, len(w.arena)-1)
		w.res.Generated++
		w.opts.OnEnqueue(m.State, cur.depth+1)
	}
}

// pathTo walks parent indices from the goal back to the start
// and returns the states in start → goal order.
func (w *walker) pathTo(idx int) core.Path {
	path := make(core.Path, 0, w.arena[idx].depth+1)
	for i := idx; i >= 0; i = w.arena[i].parent {
		path = append(path, w.arena[i].state)
	}

	return path.Reverse()
}
