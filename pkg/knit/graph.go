package knit

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidLoopID is returned by [Graph.AddLoop] when the loop id is
	// negative. Loop ids count up from 0 in creation order.
	ErrInvalidLoopID = errors.New("loop ID must not be negative")

	// ErrDuplicateLoopID is returned by [Graph.AddLoop] when a loop with the
	// same id already exists. Loops are never replaced or deleted; the graph
	// is append-only.
	ErrDuplicateLoopID = errors.New("duplicate loop ID")

	// ErrNonSequentialLoopID is returned by [Graph.AddLoop] when the loop id
	// would leave a gap in the id sequence. The set of assigned ids must be
	// exactly {0..LastLoopID} - the course scan depends on it.
	ErrNonSequentialLoopID = errors.New("loop IDs must be assigned consecutively")

	// ErrUnknownLoop is returned by [Graph.ConnectLoops], [Graph.ConnectLoopsAt],
	// and [Graph.Loop] when an id does not denote an existing loop.
	ErrUnknownLoop = errors.New("unknown loop")

	// ErrUnknownYarn is returned by [Graph.AddLoop] when the loop's yarn has
	// not been registered with [Graph.AddYarn]. Loops are strung onto their
	// yarn at creation time, so the yarn must exist first.
	ErrUnknownYarn = errors.New("yarn not registered")

	// ErrLoopAlreadyOnYarn is returned by [Graph.AddLoop] when the loop's
	// yarn already carries a loop with the same id. A loop appears at most
	// once on its yarn.
	ErrLoopAlreadyOnYarn = errors.New("loop already on yarn")

	// ErrDuplicateStitch is returned by [Graph.ConnectLoops] and
	// [Graph.ConnectLoopsAt] when an edge between the same ordered pair of
	// loops already exists. A child may have several parents and a parent
	// several children, but each (parent, child) pair carries one stitch.
	ErrDuplicateStitch = errors.New("loops already connected")

	// ErrInvalidStackPosition is returned by [Graph.ConnectLoopsAt] when the
	// stack position is outside the child's current parent stack.
	ErrInvalidStackPosition = errors.New("stack position out of range")
)

// Stitch describes the attributes of a pull-through edge.
type Stitch struct {
	// Direction is the pull direction of the child through this parent.
	Direction PullDirection
	// Depth is the cable crossing depth: 0 when the stitch crosses nothing,
	// positive when its group passes in front of another group, negative
	// when it passes behind.
	Depth int
	// Offset is the lateral displacement, in loop columns, from directly
	// below the child to this parent. Decreases, increases, and cables use
	// non-zero offsets.
	Offset int
}

// Edge is a stitch together with its endpoints, as exposed by [Graph.Edges].
type Edge struct {
	Parent int
	Child  int
	Stitch Stitch
}

// Graph is the directed graph of loops connected by pull-through edges.
// It owns every [Loop] and [Yarn] it registers; parent references inside
// loops are plain ids resolved through the graph's lookup.
//
// The zero value is not usable - use [New]. Graph is not safe for
// concurrent use without external synchronization.
type Graph struct {
	loops      map[int]*Loop
	yarns      map[string]*Yarn
	stitches   map[int]map[int]Stitch // parent id -> child id -> attributes
	lastLoopID int
}

// New creates an empty knit graph.
func New() *Graph {
	return &Graph{
		loops:      make(map[int]*Loop),
		yarns:      make(map[string]*Yarn),
		stitches:   make(map[int]map[int]Stitch),
		lastLoopID: -1,
	}
}

// AddLoop registers the loop as a graph node and strings it onto the end of
// its yarn. The loop's id must be exactly [Graph.NextLoopID]; ids are dense
// and strictly increasing, which the course scan relies on.
//
// Returns ErrInvalidLoopID for a negative id, ErrDuplicateLoopID if the id
// is already taken, ErrNonSequentialLoopID if the id would leave a gap,
// ErrUnknownYarn if the loop's yarn was never registered, and
// ErrLoopAlreadyOnYarn if the yarn already carries the id.
func (g *Graph) AddLoop(l Loop) error {
	if l.ID < 0 {
		return ErrInvalidLoopID
	}
	if _, exists := g.loops[l.ID]; exists {
		return ErrDuplicateLoopID
	}
	if l.ID != g.lastLoopID+1 {
		return ErrNonSequentialLoopID
	}
	yarn, ok := g.yarns[l.YarnID]
	if !ok {
		return ErrUnknownYarn
	}
	if yarn.Contains(l.ID) {
		return ErrLoopAlreadyOnYarn
	}

	loop := &l
	yarn.addLoopToEnd(loop.ID, loop.Twisted)
	g.loops[loop.ID] = loop
	g.lastLoopID = loop.ID
	return nil
}

// AddYarn registers the yarn under its id, replacing any yarn previously
// registered under the same id. Registration has no structural effect on
// existing loops.
func (g *Graph) AddYarn(y Yarn) {
	yarn := &y
	g.yarns[yarn.ID] = yarn
}

// ConnectLoops creates a stitch edge from the parent loop to the child loop
// and appends the parent to the top of the child's parent stack.
//
// Repeated calls against the same child build multi-parent stitches; each
// call's direction, depth, and offset are independent per parent, so a
// cable may purl one group and knit the other.
//
// Returns ErrUnknownLoop if either id does not denote an existing loop, or
// ErrDuplicateStitch if the pair is already connected.
func (g *Graph) ConnectLoops(parentID, childID int, s Stitch) error {
	child, err := g.Loop(childID)
	if err != nil {
		return err
	}
	return g.connect(parentID, child, len(child.parents), s)
}

// ConnectLoopsAt is [Graph.ConnectLoops] with an explicit stack position:
// the parent is inserted at index stackPos of the child's parent stack,
// shifting later parents up. stackPos must be in [0, len(stack)].
func (g *Graph) ConnectLoopsAt(parentID, childID, stackPos int, s Stitch) error {
	child, err := g.Loop(childID)
	if err != nil {
		return err
	}
	if stackPos < 0 || stackPos > len(child.parents) {
		return ErrInvalidStackPosition
	}
	return g.connect(parentID, child, stackPos, s)
}

func (g *Graph) connect(parentID int, child *Loop, stackPos int, s Stitch) error {
	if _, ok := g.loops[parentID]; !ok {
		return ErrUnknownLoop
	}
	children, ok := g.stitches[parentID]
	if !ok {
		children = make(map[int]Stitch)
		g.stitches[parentID] = children
	}
	if _, exists := children[child.ID]; exists {
		return ErrDuplicateStitch
	}
	children[child.ID] = s
	child.insertParent(stackPos, parentID)
	return nil
}

// Contains reports whether the id denotes an existing loop.
func (g *Graph) Contains(loopID int) bool {
	_, ok := g.loops[loopID]
	return ok
}

// Loop returns the loop with the given id, or ErrUnknownLoop if absent.
// The returned pointer refers to the graph's own loop, so its parent stack
// reflects later ConnectLoops calls.
func (g *Graph) Loop(loopID int) (*Loop, error) {
	l, ok := g.loops[loopID]
	if !ok {
		return nil, ErrUnknownLoop
	}
	return l, nil
}

// Yarn returns the yarn registered under the given id and true, or nil and
// false if no such yarn exists.
func (g *Graph) Yarn(yarnID string) (*Yarn, bool) {
	y, ok := g.yarns[yarnID]
	return y, ok
}

// Stitch returns the attributes of the edge from parent to child and true,
// or the zero Stitch and false if the loops are not connected.
func (g *Graph) Stitch(parentID, childID int) (Stitch, bool) {
	s, ok := g.stitches[parentID][childID]
	return s, ok
}

// ChildIDs returns the ids of loops pulled through the given parent, in
// ascending order. Returns nil if the loop has no children or doesn't exist.
func (g *Graph) ChildIDs(parentID int) []int {
	children := g.stitches[parentID]
	if len(children) == 0 {
		return nil
	}
	ids := make([]int, 0, len(children))
	for id := range children {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Loops returns all loops in ascending id order. The returned slice
// contains pointers to the graph's own loops.
func (g *Graph) Loops() []*Loop {
	loops := make([]*Loop, 0, len(g.loops))
	for id := 0; id <= g.lastLoopID; id++ {
		loops = append(loops, g.loops[id])
	}
	return loops
}

// Yarns returns all registered yarns sorted by id.
func (g *Graph) Yarns() []*Yarn {
	yarns := make([]*Yarn, 0, len(g.yarns))
	for _, y := range g.yarns {
		yarns = append(yarns, y)
	}
	slices.SortFunc(yarns, func(a, b *Yarn) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return yarns
}

// Edges returns a copy of all stitch edges, sorted by parent id then child
// id for deterministic output.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for parentID, children := range g.stitches {
		for childID, s := range children {
			edges = append(edges, Edge{Parent: parentID, Child: childID, Stitch: s})
		}
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if a.Parent != b.Parent {
			return a.Parent - b.Parent
		}
		return a.Child - b.Child
	})
	return edges
}

// LoopCount returns the number of loops in the graph.
func (g *Graph) LoopCount() int { return len(g.loops) }

// EdgeCount returns the number of stitch edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, children := range g.stitches {
		n += len(children)
	}
	return n
}

// LastLoopID returns the highest assigned loop id, or -1 for an empty graph.
func (g *Graph) LastLoopID() int { return g.lastLoopID }

// NextLoopID returns the id [Graph.AddLoop] expects next.
func (g *Graph) NextLoopID() int { return g.lastLoopID + 1 }
