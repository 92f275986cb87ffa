// Package nodelink renders knit graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz:
// loops appear as circles connected by pull-through arrows, with every
// course laid out on its own rank so the drawing reads like the fabric's
// row grid. It is a debugging view of the structural graph, not a chart of
// the finished fabric.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Conventions
//
//   - Purled edges (front-to-back pull) are dashed.
//   - Cable edges crossing in front are drawn bold; edges crossing behind
//     are grey.
//   - Twisted loops are double-circled.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; DOT output needs no external tooling.
package nodelink
