// SPDX-License-Identifier: MIT

package markov

// walker holds the mutable state of one breadth-first search over the
// transition graph (edge j→k iff P(j→k) > 0).
type walker struct {
	c       *Chain
	reverse bool // follow edges backwards: who reaches the current state
	queue   []int
	visited []bool
	order   []int
}

// Reachable returns the states reachable from state from through transitions
// of positive probability, in breadth-first order (from comes first).
//
// Complexity:
//   - Time O(N²), Space O(N).
func (c *Chain) Reachable(from int) ([]int, error) {
	if from < 0 || from >= c.n {
		return nil, ErrOutOfRange
	}

	return c.walk(from, false), nil
}

// Irreducible reports whether every state reaches every other state.
// For a validated irreducible chain Solve never returns
// ErrDegenerateEquation.
func (c *Chain) Irreducible() bool {
	return len(c.walk(pivot, false)) == c.n && len(c.walk(pivot, true)) == c.n
}

// walk runs the search from start; reverse walks edges against their
// direction.
func (c *Chain) walk(start int, reverse bool) []int {
	w := &walker{
		c:       c,
		reverse: reverse,
		queue:   make([]int, 0, c.n),
		visited: make([]bool, c.n),
		order:   make([]int, 0, c.n),
	}
	w.enqueue(start)
	for len(w.queue) > 0 {
		s := w.dequeue()
		w.order = append(w.order, s)
		w.enqueueNeighbors(s)
	}

	return w.order
}

func (w *walker) enqueue(s int) {
	w.visited[s] = true
	w.queue = append(w.queue, s)
}

func (w *walker) dequeue() int {
	s := w.queue[0]
	w.queue = w.queue[1:]

	return s
}

// enqueueNeighbors adds every unseen state one positive transition away.
func (w *walker) enqueueNeighbors(s int) {
	for k := 0; k < w.c.n; k++ {
		if w.visited[k] {
			continue
		}
		from, to := s, k
		if w.reverse {
			from, to = k, s
		}
		// inflow(to, from) is P(from→to).
		if inflow(w.c.probs, w.c.opts.convention, to, from).Sign() > 0 {
			w.enqueue(k)
		}
	}
}
