// Package knit models the structural graph of a knitted fabric.
//
// # Overview
//
// A knitted object is a set of [Loop] nodes connected by directed
// pull-through edges: an edge from loop A to loop B records that B was
// pulled through A. Loops are strung, in creation order, onto [Yarn]
// strands. The [Graph] owns all loops and yarns, exposes the construction
// operations used by a pattern interpreter, and derives course (row)
// information for downstream machine-instruction generation.
//
// # Construction
//
// Graphs are built strictly sequentially. Register a yarn, then add loops
// with consecutive ids starting at 0, then connect children to parents:
//
//	g := knit.New()
//	g.AddYarn(knit.NewYarn("main"))
//	_ = g.AddLoop(knit.Loop{ID: 0, YarnID: "main"})
//	_ = g.AddLoop(knit.Loop{ID: 1, YarnID: "main"})
//	_ = g.ConnectLoops(0, 1, knit.Stitch{Direction: knit.BackToFront})
//
// Multi-parent stitches (decreases, cables) are built by connecting the
// same child to several parents; each call carries its own pull direction,
// crossing depth, and lateral offset, and [Graph.ConnectLoopsAt] controls
// where the parent lands in the child's stacking order.
//
// # Courses
//
// [Graph.Courses] groups loops into rows with a single forward scan over
// loop ids. A new course starts exactly when a loop's parent already sits
// in the running course - a loop can never share a row with its own parent.
//
// Graph is not safe for concurrent use; concurrent compilations must each
// build their own Graph.
package knit
