package knit

// Loop is a single interlocked unit of yarn, the minimal structural node of
// a knitted fabric. Loops are identified by a non-negative integer assigned
// in strictly increasing creation order starting at 0.
//
// The zero value is a valid loop with id 0 and an empty yarn id; YarnID must
// name a registered yarn before the loop is added to a [Graph].
type Loop struct {
	ID      int    // Unique identifier; creation order, dense from 0
	YarnID  string // Owning yarn
	Twisted bool   // Whether the loop is twisted on its yarn

	// parents holds the ids of the loops this loop was pulled through, in
	// stacking order. The order determines the left-to-right interpretation
	// of multi-parent stitches. Maintained by [Graph.ConnectLoops] and
	// [Graph.ConnectLoopsAt].
	parents []int
}

// ParentIDs returns the ids of the loops this loop was pulled through, in
// stacking order. The returned slice should not be modified - use it as a
// read-only view.
func (l *Loop) ParentIDs() []int { return l.parents }

// ParentCount returns the number of parents on this loop's stack.
func (l *Loop) ParentCount() int { return len(l.parents) }

// HasParents reports whether the loop was pulled through at least one
// parent. Parentless loops (cast-on loops, yarn-overs) are valid fabric.
func (l *Loop) HasParents() bool { return len(l.parents) > 0 }

// insertParent places id at stack position pos, shifting later parents up.
// Callers validate the position bounds.
func (l *Loop) insertParent(pos, id int) {
	l.parents = append(l.parents, 0)
	copy(l.parents[pos+1:], l.parents[pos:])
	l.parents[pos] = id
}
