package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/loomworks/knitgraph/pkg/knit"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes yarn id and parent stack in loop labels.
	// When false, only the loop id is shown.
	Detailed bool
}

// ToDOT converts a knit graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG]. Loops on the
// same course share a rank, purled edges are dashed, and cable edges are
// bold or grey depending on whether their group crosses in front or behind.
func ToDOT(g *knit.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph knit {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, l := range g.Loops() {
		label := fmtLabel(l, opts.Detailed)
		attrs := fmtAttrs(l, label)
		fmt.Fprintf(&buf, "  %d [%s];\n", l.ID, strings.Join(attrs, ", "))
	}

	// One rank per course keeps the drawing aligned with the fabric rows.
	_, courses := g.Courses()
	buf.WriteString("\n")
	for course := 0; course < len(courses); course++ {
		ids := make([]string, len(courses[course]))
		for i, id := range courses[course] {
			ids[i] = strconv.Itoa(id)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d%s;\n", e.Parent, e.Child, edgeAttrs(e.Stitch))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(l *knit.Loop, detailed bool) string {
	if !detailed {
		return strconv.Itoa(l.ID)
	}
	parts := []string{fmt.Sprintf("yarn: %s", l.YarnID)}
	if l.HasParents() {
		stack := make([]string, l.ParentCount())
		for i, p := range l.ParentIDs() {
			stack[i] = strconv.Itoa(p)
		}
		parts = append(parts, "stack: "+strings.Join(stack, ","))
	}
	return strconv.Itoa(l.ID) + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(l *knit.Loop, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if l.Twisted {
		attrs = append(attrs, "shape=doublecircle")
	}
	return attrs
}

func edgeAttrs(s knit.Stitch) string {
	var attrs []string
	if s.Direction == knit.FrontToBack {
		attrs = append(attrs, "style=dashed")
	}
	switch {
	case s.Depth > 0:
		attrs = append(attrs, "penwidth=2")
	case s.Depth < 0:
		attrs = append(attrs, "color=grey")
	}
	if s.Offset != 0 {
		attrs = append(attrs, fmt.Sprintf("label=\"%+d\"", s.Offset))
	}
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
