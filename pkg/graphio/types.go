package graphio

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/loomworks/knitgraph/pkg/knit"
)

// Graph is the canonical serialization format for knit graphs.
// Used for tool output, storage, and hand-off to downstream generators.
//
// The format is human-readable and designed for round-trip fidelity:
// build → export → re-import produces an identical structure, including
// parent stacking order and yarn sequences.
type Graph struct {
	Loops []Loop `json:"loops"`
	Yarns []Yarn `json:"yarns"`
	Edges []Edge `json:"edges"`
}

// Loop is one graph node. Parents lists the loop's parent ids in stacking
// order; the edge attributes live in the Edges list keyed by (parent, child).
type Loop struct {
	ID      int    `json:"id"`
	Yarn    string `json:"yarn"`
	Twisted bool   `json:"twisted,omitempty"`
	Parents []int  `json:"parents,omitempty"`
}

// Yarn is a registered strand. Its loop sequence is not serialized: loops
// are re-strung in id order on import, which reproduces the original
// sequence because loops are created in id order.
type Yarn struct {
	ID string `json:"id"`
}

// Edge is a directed pull-through edge with its stitch attributes.
// Direction uses the short form "BtF" or "FtB".
type Edge struct {
	Parent    int    `json:"parent"`
	Child     int    `json:"child"`
	Direction string `json:"direction"`
	Depth     int    `json:"depth,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// Courses is the serialized course assignment: LoopCourses[id] is the
// course of the loop with that id, Courses[n] the loop ids of course n in
// creation order. Both sides are dense, so plain slices suffice.
type Courses struct {
	LoopCourses []int   `json:"loop_courses"`
	Courses     [][]int `json:"courses"`
}

// FromGraph converts a knit graph to its serialization format.
// Loops are emitted in id order and edges sorted by (parent, child) for
// deterministic output.
func FromGraph(g *knit.Graph) Graph {
	out := Graph{
		Loops: make([]Loop, 0, g.LoopCount()),
		Yarns: make([]Yarn, 0),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}

	for _, l := range g.Loops() {
		out.Loops = append(out.Loops, Loop{
			ID:      l.ID,
			Yarn:    l.YarnID,
			Twisted: l.Twisted,
			Parents: append([]int(nil), l.ParentIDs()...),
		})
	}

	for _, y := range g.Yarns() {
		out.Yarns = append(out.Yarns, Yarn{ID: y.ID})
	}

	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Edge{
			Parent:    e.Parent,
			Child:     e.Child,
			Direction: e.Stitch.Direction.String(),
			Depth:     e.Stitch.Depth,
			Offset:    e.Stitch.Offset,
		})
	}

	return out
}

// ToGraph converts a serialized Graph back to a knit graph.
// Loops are added in id order and each loop's parents reconnected in
// stacking order, so the rebuilt graph reports the same courses, stacks,
// and yarn sequences as the original. Returns an error if the structure
// violates graph constraints or references unknown loops or directions.
func ToGraph(gj Graph) (*knit.Graph, error) {
	g := knit.New()

	for _, yj := range gj.Yarns {
		g.AddYarn(knit.NewYarn(yj.ID))
	}

	loops := make([]Loop, len(gj.Loops))
	copy(loops, gj.Loops)
	sortLoopsByID(loops)

	for _, lj := range loops {
		if err := g.AddLoop(knit.Loop{ID: lj.ID, YarnID: lj.Yarn, Twisted: lj.Twisted}); err != nil {
			return nil, fmt.Errorf("add loop %d: %w", lj.ID, err)
		}
	}

	stitches := make(map[[2]int]knit.Stitch, len(gj.Edges))
	for _, ej := range gj.Edges {
		dir, ok := knit.ParsePullDirection(ej.Direction)
		if !ok {
			return nil, fmt.Errorf("edge %d→%d: invalid direction %q", ej.Parent, ej.Child, ej.Direction)
		}
		stitches[[2]int{ej.Parent, ej.Child}] = knit.Stitch{
			Direction: dir,
			Depth:     ej.Depth,
			Offset:    ej.Offset,
		}
	}

	for _, lj := range loops {
		for _, parent := range lj.Parents {
			s, ok := stitches[[2]int{parent, lj.ID}]
			if !ok {
				return nil, fmt.Errorf("loop %d: no edge from parent %d", lj.ID, parent)
			}
			if err := g.ConnectLoops(parent, lj.ID, s); err != nil {
				return nil, fmt.Errorf("connect %d→%d: %w", parent, lj.ID, err)
			}
		}
	}

	return g, nil
}

// CoursesFromGraph runs the course assignment and converts the result to
// its dense serialized form.
func CoursesFromGraph(g *knit.Graph) Courses {
	loopToCourse, courseToLoops := g.Courses()

	out := Courses{
		LoopCourses: make([]int, len(loopToCourse)),
		Courses:     make([][]int, len(courseToLoops)),
	}
	for id, course := range loopToCourse {
		out.LoopCourses[id] = course
	}
	for course, ids := range courseToLoops {
		out.Courses[course] = ids
	}
	return out
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}

func sortLoopsByID(loops []Loop) {
	slices.SortFunc(loops, func(a, b Loop) int { return a.ID - b.ID })
}
