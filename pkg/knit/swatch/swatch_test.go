package swatch

import (
	"errors"
	"slices"
	"testing"

	"github.com/loomworks/knitgraph/pkg/knit"
)

func TestStockinette(t *testing.T) {
	const width, height = 4, 4
	g, err := Stockinette("main", width, height)
	if err != nil {
		t.Fatalf("Stockinette: %v", err)
	}

	if got := g.LoopCount(); got != width*height {
		t.Fatalf("loops = %d, want %d", got, width*height)
	}

	// Loop w*r+c hangs from w*(r-1)+c, pulled back to front.
	for r := 1; r < height; r++ {
		for c := 0; c < width; c++ {
			child := r*width + c
			parent := (r-1)*width + c
			s, ok := g.Stitch(parent, child)
			if !ok {
				t.Fatalf("missing stitch %d -> %d", parent, child)
			}
			if s.Direction != knit.BackToFront || s.Depth != 0 || s.Offset != 0 {
				t.Errorf("stitch %d -> %d = %+v, want plain knit", parent, child, s)
			}
		}
	}

	_, courses := g.Courses()
	if len(courses) != height {
		t.Fatalf("courses = %d, want %d", len(courses), height)
	}
	for r := 0; r < height; r++ {
		want := []int{4 * r, 4*r + 1, 4*r + 2, 4*r + 3}
		if !slices.Equal(courses[r], want) {
			t.Errorf("course %d = %v, want %v", r, courses[r], want)
		}
	}

	// Every loop is strung onto the single yarn once, in creation order.
	y, ok := g.Yarn("main")
	if !ok {
		t.Fatal("yarn not registered")
	}
	if y.LoopCount() != width*height {
		t.Errorf("yarn loops = %d, want %d", y.LoopCount(), width*height)
	}
}

func TestRib(t *testing.T) {
	const width, height, rib = 4, 3, 2
	g, err := Rib("main", width, height, rib)
	if err != nil {
		t.Fatalf("Rib: %v", err)
	}

	for r := 1; r < height; r++ {
		for c := 0; c < width; c++ {
			s, ok := g.Stitch((r-1)*width+c, r*width+c)
			if !ok {
				t.Fatalf("missing stitch at row %d col %d", r, c)
			}
			want := knit.BackToFront
			if (c/rib)%2 == 1 {
				want = knit.FrontToBack
			}
			if s.Direction != want {
				t.Errorf("col %d direction = %v, want %v", c, s.Direction, want)
			}
		}
	}
}

func TestSeed(t *testing.T) {
	const width, height = 3, 3
	g, err := Seed("main", width, height)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	for r := 1; r < height; r++ {
		for c := 0; c < width; c++ {
			s, ok := g.Stitch((r-1)*width+c, r*width+c)
			if !ok {
				t.Fatalf("missing stitch at row %d col %d", r, c)
			}
			want := knit.BackToFront
			if (r+c)%2 == 1 {
				want = knit.FrontToBack
			}
			if s.Direction != want {
				t.Errorf("row %d col %d direction = %v, want %v", r, c, s.Direction, want)
			}
		}
	}
}

func TestLace(t *testing.T) {
	const width, height = 4, 3
	g, err := Lace("main", width, height)
	if err != nil {
		t.Fatalf("Lace: %v", err)
	}

	// Constant loop count: each repeat consumes two loops into a decrease
	// and adds a parentless yarn-over.
	if got := g.LoopCount(); got != width*height {
		t.Fatalf("loops = %d, want %d", got, width*height)
	}

	_, courses := g.Courses()
	if len(courses) != height {
		t.Fatalf("courses = %d, want %d", len(courses), height)
	}
	for r := 0; r < height; r++ {
		if len(courses[r]) != width {
			t.Errorf("course %d has %d loops, want %d", r, len(courses[r]), width)
		}
	}

	// Row 1 leads with the decrease: loop 4 consumes cast-on loops 1 and 0,
	// stacked [1, 0] per k2tog's offset order.
	dec, err := g.Loop(width)
	if err != nil {
		t.Fatalf("Loop(%d): %v", width, err)
	}
	if got := dec.ParentIDs(); !slices.Equal(got, []int{1, 0}) {
		t.Errorf("decrease parents = %v, want [1 0]", got)
	}
	if s, _ := g.Stitch(0, width); s.Offset != -1 {
		t.Errorf("offset to left parent = %d, want -1", s.Offset)
	}

	// The yarn-over that follows has no parents.
	yo, err := g.Loop(width + 1)
	if err != nil {
		t.Fatalf("Loop(%d): %v", width+1, err)
	}
	if yo.HasParents() {
		t.Errorf("yarn-over parents = %v, want none", yo.ParentIDs())
	}
}

func TestTwists(t *testing.T) {
	const height = 4
	g, err := Twists("main", height)
	if err != nil {
		t.Fatalf("Twists: %v", err)
	}

	if got := g.LoopCount(); got != 4*height {
		t.Fatalf("loops = %d, want %d", got, 4*height)
	}
	if got := g.CourseCount(); got != height {
		t.Fatalf("courses = %d, want %d", got, height)
	}

	// Row 1 crosses lc1|1 over columns 0-1: the right parent (loop 1)
	// reaches behind to the first child, the held left parent (loop 0)
	// crosses in front to the second.
	if s, ok := g.Stitch(1, 4); !ok || s.Depth != -1 || s.Offset != 1 {
		t.Errorf("Stitch(1, 4) = %+v ok=%v, want depth -1 offset 1", s, ok)
	}
	if s, ok := g.Stitch(0, 5); !ok || s.Depth != 1 || s.Offset != -1 {
		t.Errorf("Stitch(0, 5) = %+v ok=%v, want depth 1 offset -1", s, ok)
	}

	// Columns 2-3 lean right: the front group flips.
	if s, ok := g.Stitch(3, 6); !ok || s.Depth != 1 || s.Offset != 1 {
		t.Errorf("Stitch(3, 6) = %+v ok=%v, want depth 1 offset 1", s, ok)
	}
	if s, ok := g.Stitch(2, 7); !ok || s.Depth != -1 || s.Offset != -1 {
		t.Errorf("Stitch(2, 7) = %+v ok=%v, want depth -1 offset -1", s, ok)
	}

	// Row 2 is plain: loop 8 hangs straight from loop 4.
	if s, ok := g.Stitch(4, 8); !ok || s.Depth != 0 || s.Offset != 0 {
		t.Errorf("Stitch(4, 8) = %+v ok=%v, want plain knit", s, ok)
	}
}

func TestInvalidDimensions(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*knit.Graph, error)
	}{
		{"StockinetteZeroWidth", func() (*knit.Graph, error) { return Stockinette("m", 0, 3) }},
		{"StockinetteZeroHeight", func() (*knit.Graph, error) { return Stockinette("m", 3, 0) }},
		{"RibTooWide", func() (*knit.Graph, error) { return Rib("m", 2, 2, 3) }},
		{"LaceOddWidth", func() (*knit.Graph, error) { return Lace("m", 3, 2) }},
		{"TwistsZeroHeight", func() (*knit.Graph, error) { return Twists("m", 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build(); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("err = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}
