// Package graphio serializes knit graphs and course assignments as JSON.
//
// Persistence is deliberately kept out of [knit.Graph] itself: the graph
// exposes its loop, yarn, edge, and course data, and this package is the
// external layer that writes and reads it. The JSON format round-trips:
// a re-imported graph reports identical stacks, edges, and courses.
package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/loomworks/knitgraph/pkg/knit"
)

// MarshalGraph converts a knit graph to JSON bytes.
// Loops and edges are sorted for deterministic output.
func MarshalGraph(g *knit.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a knit graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *knit.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// WriteGraph writes a knit graph as JSON to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(g *knit.Graph, w io.Writer) error {
	return writeGraphTo(g, w)
}

// ReadGraphFile reads a JSON file and returns the decoded knit graph.
// Returns validation errors for malformed graphs or constraint violations.
func ReadGraphFile(path string) (*knit.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

// ReadGraph decodes a JSON graph from an io.Reader into a knit graph.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (*knit.Graph, error) {
	return readGraphFrom(r)
}

// MarshalCourses computes the graph's course assignment and returns it as
// JSON bytes, the hand-off format for machine-instruction generators.
func MarshalCourses(g *knit.Graph) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(CoursesFromGraph(g)); err != nil {
		return nil, fmt.Errorf("encode courses: %w", err)
	}
	return buf.Bytes(), nil
}

func writeGraphTo(g *knit.Graph, w io.Writer) error {
	out := FromGraph(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*knit.Graph, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(data)
}
