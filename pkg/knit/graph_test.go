package knit

import (
	"errors"
	"testing"
)

// newTestGraph returns a graph with yarn "main" registered and n loops on it.
func newTestGraph(t *testing.T, n int) *Graph {
	t.Helper()
	g := New()
	g.AddYarn(NewYarn("main"))
	for i := 0; i < n; i++ {
		if err := g.AddLoop(Loop{ID: i, YarnID: "main"}); err != nil {
			t.Fatalf("AddLoop(%d): %v", i, err)
		}
	}
	return g
}

func TestPullDirectionOpposite(t *testing.T) {
	for _, d := range []PullDirection{BackToFront, FrontToBack} {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
	}
	if BackToFront.Opposite() != FrontToBack {
		t.Error("BackToFront.Opposite() != FrontToBack")
	}
	if FrontToBack.Opposite() != BackToFront {
		t.Error("FrontToBack.Opposite() != BackToFront")
	}
}

func TestAddLoop(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *Graph)
		loop    Loop
		wantErr error
	}{
		{
			name:  "First",
			setup: func(g *Graph) { g.AddYarn(NewYarn("main")) },
			loop:  Loop{ID: 0, YarnID: "main"},
		},
		{
			name:    "Negative",
			loop:    Loop{ID: -1, YarnID: "main"},
			wantErr: ErrInvalidLoopID,
		},
		{
			name:  "Duplicate",
			setup: func(g *Graph) {
				g.AddYarn(NewYarn("main"))
				_ = g.AddLoop(Loop{ID: 0, YarnID: "main"})
			},
			loop:    Loop{ID: 0, YarnID: "main"},
			wantErr: ErrDuplicateLoopID,
		},
		{
			name:    "Gap",
			setup:   func(g *Graph) { g.AddYarn(NewYarn("main")) },
			loop:    Loop{ID: 5, YarnID: "main"},
			wantErr: ErrNonSequentialLoopID,
		},
		{
			name:    "UnregisteredYarn",
			loop:    Loop{ID: 0, YarnID: "ghost"},
			wantErr: ErrUnknownYarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			if tt.setup != nil {
				tt.setup(g)
			}
			err := g.AddLoop(tt.loop)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddLoop = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && g.LastLoopID() != tt.loop.ID {
				t.Errorf("LastLoopID = %d, want %d", g.LastLoopID(), tt.loop.ID)
			}
		})
	}
}

func TestAddLoopStringsOntoYarn(t *testing.T) {
	g := New()
	g.AddYarn(NewYarn("main"))
	if err := g.AddLoop(Loop{ID: 0, YarnID: "main", Twisted: true}); err != nil {
		t.Fatalf("AddLoop: %v", err)
	}
	if err := g.AddLoop(Loop{ID: 1, YarnID: "main"}); err != nil {
		t.Fatalf("AddLoop: %v", err)
	}

	y, ok := g.Yarn("main")
	if !ok {
		t.Fatal("yarn not found")
	}
	loops := y.Loops()
	if len(loops) != 2 {
		t.Fatalf("yarn loops = %d, want 2", len(loops))
	}
	if loops[0] != (YarnLoop{LoopID: 0, Twisted: true}) {
		t.Errorf("loops[0] = %+v, want {0 true}", loops[0])
	}
	if loops[1] != (YarnLoop{LoopID: 1, Twisted: false}) {
		t.Errorf("loops[1] = %+v, want {1 false}", loops[1])
	}
}

func TestLoopLookup(t *testing.T) {
	g := newTestGraph(t, 2)

	l, err := g.Loop(1)
	if err != nil {
		t.Fatalf("Loop(1): %v", err)
	}
	if l.ID != 1 {
		t.Errorf("Loop(1).ID = %d, want 1", l.ID)
	}

	if _, err := g.Loop(7); !errors.Is(err, ErrUnknownLoop) {
		t.Errorf("Loop(7) = %v, want ErrUnknownLoop", err)
	}
	if g.Contains(7) {
		t.Error("Contains(7) = true, want false")
	}
	if !g.Contains(0) {
		t.Error("Contains(0) = false, want true")
	}
}

// Every registered loop must be retrievable under exactly its own id.
func TestLoopMappingIdentity(t *testing.T) {
	g := newTestGraph(t, 5)
	for _, l := range g.Loops() {
		got, err := g.Loop(l.ID)
		if err != nil {
			t.Fatalf("Loop(%d): %v", l.ID, err)
		}
		if got != l {
			t.Errorf("Loop(%d) = %p, want %p", l.ID, got, l)
		}
	}
}

func TestConnectLoops(t *testing.T) {
	g := newTestGraph(t, 3)

	s := Stitch{Direction: FrontToBack, Depth: 1, Offset: -1}
	if err := g.ConnectLoops(0, 2, s); err != nil {
		t.Fatalf("ConnectLoops: %v", err)
	}

	got, ok := g.Stitch(0, 2)
	if !ok {
		t.Fatal("Stitch(0, 2) not found")
	}
	if got != s {
		t.Errorf("Stitch(0, 2) = %+v, want %+v", got, s)
	}

	child, _ := g.Loop(2)
	if ids := child.ParentIDs(); len(ids) != 1 || ids[0] != 0 {
		t.Errorf("ParentIDs = %v, want [0]", ids)
	}

	if err := g.ConnectLoops(0, 2, s); !errors.Is(err, ErrDuplicateStitch) {
		t.Errorf("repeated ConnectLoops = %v, want ErrDuplicateStitch", err)
	}
	if err := g.ConnectLoops(9, 2, s); !errors.Is(err, ErrUnknownLoop) {
		t.Errorf("unknown parent = %v, want ErrUnknownLoop", err)
	}
	if err := g.ConnectLoops(0, 9, s); !errors.Is(err, ErrUnknownLoop) {
		t.Errorf("unknown child = %v, want ErrUnknownLoop", err)
	}
}

func TestConnectLoopsAt(t *testing.T) {
	// Build a three-parent child and control the stacking order: parents
	// appended as 0, 1, then 2 inserted at position 1.
	g := newTestGraph(t, 4)

	knitSt := Stitch{Direction: BackToFront}
	if err := g.ConnectLoops(0, 3, knitSt); err != nil {
		t.Fatalf("ConnectLoops: %v", err)
	}
	if err := g.ConnectLoops(1, 3, knitSt); err != nil {
		t.Fatalf("ConnectLoops: %v", err)
	}
	if err := g.ConnectLoopsAt(2, 3, 1, Stitch{Direction: FrontToBack, Offset: 1}); err != nil {
		t.Fatalf("ConnectLoopsAt: %v", err)
	}

	child, _ := g.Loop(3)
	want := []int{0, 2, 1}
	got := child.ParentIDs()
	if len(got) != len(want) {
		t.Fatalf("ParentIDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParentIDs = %v, want %v", got, want)
		}
	}

	// Each parent edge keeps its own attributes.
	if s, _ := g.Stitch(2, 3); s.Direction != FrontToBack || s.Offset != 1 {
		t.Errorf("Stitch(2, 3) = %+v, want FtB offset 1", s)
	}
	if s, _ := g.Stitch(0, 3); s.Direction != BackToFront {
		t.Errorf("Stitch(0, 3) = %+v, want BtF", s)
	}

	if err := g.ConnectLoopsAt(0, 2, 5, knitSt); !errors.Is(err, ErrInvalidStackPosition) {
		t.Errorf("out-of-range position = %v, want ErrInvalidStackPosition", err)
	}
	if err := g.ConnectLoopsAt(0, 2, -1, knitSt); !errors.Is(err, ErrInvalidStackPosition) {
		t.Errorf("negative position = %v, want ErrInvalidStackPosition", err)
	}
}

func TestEdges(t *testing.T) {
	g := newTestGraph(t, 4)
	_ = g.ConnectLoops(1, 3, Stitch{Direction: BackToFront})
	_ = g.ConnectLoops(0, 2, Stitch{Direction: FrontToBack})
	_ = g.ConnectLoops(0, 3, Stitch{Direction: BackToFront, Offset: 1})

	edges := g.Edges()
	if len(edges) != 3 {
		t.Fatalf("edges = %d, want 3", len(edges))
	}
	// Sorted by parent, then child.
	wantOrder := []Edge{
		{Parent: 0, Child: 2, Stitch: Stitch{Direction: FrontToBack}},
		{Parent: 0, Child: 3, Stitch: Stitch{Direction: BackToFront, Offset: 1}},
		{Parent: 1, Child: 3, Stitch: Stitch{Direction: BackToFront}},
	}
	for i, want := range wantOrder {
		if edges[i] != want {
			t.Errorf("edges[%d] = %+v, want %+v", i, edges[i], want)
		}
	}

	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3", got)
	}
	if got := g.ChildIDs(0); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("ChildIDs(0) = %v, want [2 3]", got)
	}
}

func TestAddYarnOverwrites(t *testing.T) {
	g := New()
	g.AddYarn(NewYarn("main"))
	_ = g.AddLoop(Loop{ID: 0, YarnID: "main"})

	g.AddYarn(NewYarn("main"))
	y, _ := g.Yarn("main")
	if y.LoopCount() != 0 {
		t.Errorf("replacement yarn loop count = %d, want 0", y.LoopCount())
	}
	// Existing loops are untouched by re-registration.
	if !g.Contains(0) {
		t.Error("loop 0 lost after yarn re-registration")
	}
}
