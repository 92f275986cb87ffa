package symbols

import "github.com/loomworks/knitgraph/pkg/knit"

// StitchDefinition is an immutable template describing how one pattern
// symbol is realized as loop-creation and pull-through parameters. The
// interpreter looks a definition up, picks the start loop, and feeds the
// direction, depth, and offsets into [knit.Graph.ConnectLoops] calls.
//
// Definitions are shared between lookups; callers must not modify the
// offsets slice.
type StitchDefinition struct {
	// Direction is the pull direction of every child the stitch produces.
	Direction knit.PullDirection
	// Depth is the cable crossing depth applied to every resulting edge.
	Depth int
	// ParentOffsets lists, in intended stacking order, the signed column
	// offsets from the child to each consumed parent. Empty for stitches
	// with no parents (a yarn-over).
	ParentOffsets []int
	// ChildLoops is the number of loops the stitch produces: 0 for a pure
	// consumption (a slipped stitch), 1 for ordinary stitches and decreases.
	ChildLoops int
}

// Stitch returns the edge attributes for the parent at the given stack
// position.
func (d StitchDefinition) Stitch(parent int) knit.Stitch {
	return knit.Stitch{
		Direction: d.Direction,
		Depth:     d.Depth,
		Offset:    d.ParentOffsets[parent],
	}
}

// ParentCount returns the number of parent loops the stitch consumes.
func (d StitchDefinition) ParentCount() int { return len(d.ParentOffsets) }

func knitStitch() StitchDefinition {
	return StitchDefinition{Direction: knit.BackToFront, ParentOffsets: []int{0}, ChildLoops: 1}
}

func purlStitch() StitchDefinition {
	return StitchDefinition{Direction: knit.FrontToBack, ParentOffsets: []int{0}, ChildLoops: 1}
}

// yarnOver produces a new loop pulled through nothing.
func yarnOver() StitchDefinition {
	return StitchDefinition{Direction: knit.BackToFront, ChildLoops: 1}
}

// slip passes the next loop through unconsumed.
func slip() StitchDefinition {
	return StitchDefinition{Direction: knit.BackToFront, ParentOffsets: []int{0}, ChildLoops: 0}
}

// decreases returns the standard multi-parent reductions keyed by name.
// Offset lists are in stacking order: [0,-1] leans right, [0,1] left,
// and the three-parent centered forms stack the middle parent on top.
func decreases() map[string]StitchDefinition {
	defs := map[string][]int{
		"k2tog": {0, -1},
		"k3tog": {0, -1, -2},
		"skpo":  {0, 1},
		"s2kpo": {0, 1, 2},
		"sk2po": {-1, 0, 1},
	}

	out := make(map[string]StitchDefinition, 2*len(defs))
	for name, offsets := range defs {
		out[name] = StitchDefinition{
			Direction:     knit.BackToFront,
			ParentOffsets: offsets,
			ChildLoops:    1,
		}
		// Purled counterpart: k2tog/p2tog, skpo/sppo, s2kpo/s2ppo, sk2po/sp2po.
		out[purlName(name)] = StitchDefinition{
			Direction:     knit.FrontToBack,
			ParentOffsets: offsets,
			ChildLoops:    1,
		}
	}
	return out
}

func purlName(knitName string) string {
	switch knitName {
	case "k2tog":
		return "p2tog"
	case "k3tog":
		return "p3tog"
	case "skpo":
		return "sppo"
	case "s2kpo":
		return "s2ppo"
	case "sk2po":
		return "sp2po"
	}
	return knitName
}
