package swatch

import (
	"fmt"

	"github.com/loomworks/knitgraph/pkg/knit"
	"github.com/loomworks/knitgraph/pkg/symbols"
)

// builder tracks the live loops of the course under construction. prev
// holds the previous course's loop ids by column; row accumulates the
// current course left to right; next points at the first unconsumed prev
// column.
type builder struct {
	graph *knit.Graph
	table *symbols.Table

	yarn string
	prev []int
	row  []int
	next int
}

// newBuilder creates a graph with the yarn registered and width cast-on
// loops forming course 0.
func newBuilder(yarn string, width int) (*builder, error) {
	b := &builder{
		graph: knit.New(),
		table: symbols.NewTable(),
		yarn:  yarn,
	}
	b.graph.AddYarn(knit.NewYarn(yarn))
	for c := 0; c < width; c++ {
		id, err := b.newLoop()
		if err != nil {
			return nil, err
		}
		b.row = append(b.row, id)
	}
	b.turn()
	return b, nil
}

// turn closes the current course: the accumulated row becomes the parent
// row for the stitches that follow.
func (b *builder) turn() {
	b.prev = b.row
	b.row = nil
	b.next = 0
}

// stitch applies a stitch definition at the next unconsumed column.
//
// The definition's offsets are child-relative, so the child column is
// placed where the leftmost consumed parent lines up with the next
// unconsumed one: column = next - min(offsets). Parents connect in the
// definition's stacking order; a slipped stitch carries the parent loop
// forward into the current course unchanged.
func (b *builder) stitch(def symbols.StitchDefinition) error {
	if def.ChildLoops == 0 {
		// Slip: the old loop stays live on the new course.
		parent, err := b.consumedParent(def, 0)
		if err != nil {
			return err
		}
		b.row = append(b.row, parent)
		b.next += def.ParentCount()
		return nil
	}

	child, err := b.newLoop()
	if err != nil {
		return err
	}
	for i := range def.ParentOffsets {
		parent, err := b.consumedParent(def, i)
		if err != nil {
			return err
		}
		if err := b.graph.ConnectLoops(parent, child, def.Stitch(i)); err != nil {
			return err
		}
	}
	b.row = append(b.row, child)
	b.next += def.ParentCount()
	return nil
}

// cable applies a cable definition across the next LeftLoops+RightLoops
// columns. The crossed arrangement is worked right group first: its
// children occupy the leftmost columns and reach over to the right-side
// parents, then the held left group's children follow.
func (b *builder) cable(def symbols.CableDefinition) error {
	left, right := def.StitchDefinitions()
	base := b.next

	for i, d := range right {
		parent := b.prev[base+def.LeftLoops+i]
		if err := b.connectCabled(parent, d); err != nil {
			return err
		}
	}
	for i, d := range left {
		parent := b.prev[base+i]
		if err := b.connectCabled(parent, d); err != nil {
			return err
		}
	}
	b.next = base + def.Loops()
	return nil
}

func (b *builder) connectCabled(parent int, d symbols.StitchDefinition) error {
	child, err := b.newLoop()
	if err != nil {
		return err
	}
	if err := b.graph.ConnectLoops(parent, child, d.Stitch(0)); err != nil {
		return err
	}
	b.row = append(b.row, child)
	return nil
}

// consumedParent resolves the parent loop id for stack position i of the
// definition, anchored at the builder's next unconsumed column.
func (b *builder) consumedParent(def symbols.StitchDefinition, i int) (int, error) {
	child := b.next - minOffset(def.ParentOffsets)
	col := child + def.ParentOffsets[i]
	if col < 0 || col >= len(b.prev) {
		return 0, fmt.Errorf("%w: stitch consumes column %d of a %d-wide course",
			ErrInvalidDimensions, col, len(b.prev))
	}
	return b.prev[col], nil
}

func (b *builder) newLoop() (int, error) {
	id := b.graph.NextLoopID()
	if err := b.graph.AddLoop(knit.Loop{ID: id, YarnID: b.yarn}); err != nil {
		return 0, err
	}
	return id, nil
}

func minOffset(offsets []int) int {
	min := 0
	for _, o := range offsets {
		if o < min {
			min = o
		}
	}
	return min
}
