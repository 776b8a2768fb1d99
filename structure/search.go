package structure

// hamSearcher is the bounded exhaustive backtracking search over the simple
// projection. Working state is allocated once and reused across start nodes;
// witnesses are copied out to node IDs when found.
type hamSearcher struct {
	ids    []string
	matrix [][]bool

	visited []bool
	path    []int
	start   int

	// pathWitness holds the first complete open route found; circuitWitness
	// the first one whose ends are adjacent, with the start repeated at the
	// end. The two are tracked independently so an early open route cannot
	// mask a later closable one.
	pathWitness    []string
	circuitWitness []string

	// expansions counts extend calls for the reasoning trace.
	expansions int
}

func newHamSearcher(ids []string, matrix [][]bool) *hamSearcher {
	return &hamSearcher{
		ids:     ids,
		matrix:  matrix,
		visited: make([]bool, len(ids)),
		path:    make([]int, 0, len(ids)),
	}
}

// run tries every start node in ID order. Only a circuit stops the search
// early: a path witness alone keeps it going, since a later start may still
// close a tour.
func (hs *hamSearcher) run() {
	var (
		start int
		i     int
	)
	for start = range hs.ids {
		// 1) Reset the arena for this start.
		for i = range hs.visited {
			hs.visited[i] = false
		}
		hs.path = hs.path[:0]
		hs.start = start

		// 2) Descend; true means a circuit witness exists.
		if hs.extend(start) {
			return
		}
	}
}

// extend grows the path by v, recurses over unvisited neighbors in ID order,
// and restores the arena on the way out. It returns true once a circuit
// witness exists, unwinding the whole search.
func (hs *hamSearcher) extend(v int) bool {
	hs.expansions++
	hs.visited[v] = true
	hs.path = append(hs.path, v)

	if len(hs.path) == len(hs.ids) {
		hs.record()
	} else {
		var next int
		for next = range hs.ids {
			if hs.visited[next] || !hs.matrix[v][next] {
				continue
			}
			if hs.extend(next) {
				return true
			}
		}
	}

	hs.visited[v] = false
	hs.path = hs.path[:len(hs.path)-1]

	return hs.circuitWitness != nil
}

// record captures a complete route: the open form on first sight, and the
// closed form when the final node is adjacent to the start.
func (hs *hamSearcher) record() {
	if hs.pathWitness == nil {
		hs.pathWitness = hs.witness(false)
	}
	last := hs.path[len(hs.path)-1]
	if hs.circuitWitness == nil && hs.matrix[last][hs.start] {
		hs.circuitWitness = hs.witness(true)
	}
}

// witness translates the current index path into node IDs, repeating the
// start at the end for the closed form.
func (hs *hamSearcher) witness(closed bool) []string {
	w := make([]string, 0, len(hs.path)+1)
	var i int
	for _, i = range hs.path {
		w = append(w, hs.ids[i])
	}
	if closed {
		w = append(w, hs.ids[hs.start])
	}

	return w
}
