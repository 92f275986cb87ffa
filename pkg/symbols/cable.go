package symbols

import (
	"fmt"

	"github.com/loomworks/knitgraph/pkg/knit"
)

// Lean names the cable group that crosses in front of the other.
type Lean int

const (
	// LeanLeft crosses the left group in front.
	LeanLeft Lean = iota
	// LeanRight crosses the right group in front.
	LeanRight
)

// String returns "left" or "right".
func (l Lean) String() string {
	if l == LeanLeft {
		return "left"
	}
	return "right"
}

// MaxCableLoops is the largest loop count of a single cable group.
const MaxCableLoops = 3

// CableDefinition is an immutable template for a cable crossing: two
// adjacent groups of loops (1-3 each) swap columns, one group passing in
// front of the other. Each group may be purled independently of the other.
type CableDefinition struct {
	// LeftLoops and RightLoops are the loop counts of the two crossing
	// groups, counted from the left edge of the cable.
	LeftLoops  int
	RightLoops int
	// LeftDirection and RightDirection are the per-group pull directions:
	// front-to-back when the group is purled, back-to-front otherwise.
	LeftDirection  knit.PullDirection
	RightDirection knit.PullDirection
	// Lean selects which group crosses in front.
	Lean Lean
}

// Name returns the symbol-table name encoding the definition, for example
// "lc2p|1" for a left-leaning cable purling two left loops over one plain
// right loop.
func (c CableDefinition) Name() string {
	side := "l"
	if c.Lean == LeanRight {
		side = "r"
	}
	leftPurl, rightPurl := "", ""
	if c.LeftDirection == knit.FrontToBack {
		leftPurl = "p"
	}
	if c.RightDirection == knit.FrontToBack {
		rightPurl = "p"
	}
	return fmt.Sprintf("%sc%d%s|%d%s", side, c.LeftLoops, leftPurl, c.RightLoops, rightPurl)
}

// Loops returns the total number of loops the cable consumes and produces.
func (c CableDefinition) Loops() int { return c.LeftLoops + c.RightLoops }

// StitchDefinitions expands the cable into per-loop stitch templates, one
// per loop of each group. The left group's children land RightLoops columns
// to the right of their parents, so each left stitch records a parent
// offset of -RightLoops; the right group mirrors with +LeftLoops. The front
// group carries crossing depth +1 and the back group -1, derived from the
// lean.
func (c CableDefinition) StitchDefinitions() (left, right []StitchDefinition) {
	leftDepth, rightDepth := 1, -1
	if c.Lean == LeanRight {
		leftDepth, rightDepth = -1, 1
	}

	left = make([]StitchDefinition, c.LeftLoops)
	for i := range left {
		left[i] = StitchDefinition{
			Direction:     c.LeftDirection,
			Depth:         leftDepth,
			ParentOffsets: []int{-c.RightLoops},
			ChildLoops:    1,
		}
	}

	right = make([]StitchDefinition, c.RightLoops)
	for i := range right {
		right[i] = StitchDefinition{
			Direction:     c.RightDirection,
			Depth:         rightDepth,
			ParentOffsets: []int{c.LeftLoops},
			ChildLoops:    1,
		}
	}
	return left, right
}

// cables enumerates the full combinatorial cable space: 2 leans x 3 left
// sizes x 3 right sizes x 2 left-purl choices x 2 right-purl choices,
// 72 definitions keyed by their encoded names.
func cables() map[string]CableDefinition {
	out := make(map[string]CableDefinition, 72)
	for _, lean := range []Lean{LeanLeft, LeanRight} {
		for leftLoops := 1; leftLoops <= MaxCableLoops; leftLoops++ {
			for rightLoops := 1; rightLoops <= MaxCableLoops; rightLoops++ {
				for _, leftDir := range []knit.PullDirection{knit.FrontToBack, knit.BackToFront} {
					for _, rightDir := range []knit.PullDirection{knit.FrontToBack, knit.BackToFront} {
						def := CableDefinition{
							LeftLoops:      leftLoops,
							RightLoops:     rightLoops,
							LeftDirection:  leftDir,
							RightDirection: rightDir,
							Lean:           lean,
						}
						out[def.Name()] = def
					}
				}
			}
		}
	}
	return out
}
