// Package pkg provides the core libraries for knitgraph fabric modeling.
//
// # Overview
//
// Knitgraph models knitted fabric as a directed graph: nodes are yarn loops
// and edges are the stitches pulled through them. The pkg directory is
// organized into five main areas:
//
//  1. [knit] - Domain model (loops, yarns, stitches, course assignment)
//  2. [symbols] - Pattern symbol table (stitches, decreases, cables)
//  3. [graphio] - JSON serialization of graphs and course assignments
//  4. [manifest] - TOML swatch manifests and reference swatch construction
//  5. [render] - Node-link diagram rendering via Graphviz
//
// # Architecture
//
// The typical data flow through knitgraph:
//
//	Swatch Manifest (TOML)
//	         ↓
//	    [manifest] package (parse + validate)
//	         ↓
//	    [knit/swatch] package (loop-by-loop graph construction)
//	         ↓
//	    [knit] package (graph structure + course assignment)
//	         ↓
//	    [graphio] / [render/nodelink] output (JSON, DOT, SVG)
//
// # Quick Start
//
// Build a swatch and render it as a node-link diagram:
//
//	import (
//	    "github.com/loomworks/knitgraph/pkg/knit/swatch"
//	    "github.com/loomworks/knitgraph/pkg/render/nodelink"
//	)
//
//	g, err := swatch.Stockinette("main", 8, 8)
//	if err != nil {
//	    return err
//	}
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [knit]: github.com/loomworks/knitgraph/pkg/knit
// [knit/swatch]: github.com/loomworks/knitgraph/pkg/knit/swatch
// [symbols]: github.com/loomworks/knitgraph/pkg/symbols
// [graphio]: github.com/loomworks/knitgraph/pkg/graphio
// [manifest]: github.com/loomworks/knitgraph/pkg/manifest
// [render]: github.com/loomworks/knitgraph/pkg/render/nodelink
// [render/nodelink]: github.com/loomworks/knitgraph/pkg/render/nodelink
package pkg
