package knit

// YarnLoop records one loop strung onto a yarn, in the order the strand
// passes through it.
type YarnLoop struct {
	LoopID  int
	Twisted bool
}

// Yarn is a continuous strand threading through an ordered sequence of
// loops. Each loop belongs to exactly one yarn and appears at most once in
// that yarn's sequence.
//
// The zero value is not usable - ID must be set before registering the yarn
// with [Graph.AddYarn].
type Yarn struct {
	ID string // Unique identifier

	loops []YarnLoop
}

// NewYarn returns a yarn with the given id and an empty loop sequence.
func NewYarn(id string) Yarn { return Yarn{ID: id} }

// Loops returns the yarn's loop sequence in strand order. The returned
// slice should not be modified - use it as a read-only view.
func (y *Yarn) Loops() []YarnLoop { return y.loops }

// LoopCount returns the number of loops strung onto the yarn.
func (y *Yarn) LoopCount() int { return len(y.loops) }

// Contains reports whether the loop with the given id is on the yarn.
func (y *Yarn) Contains(loopID int) bool {
	for _, yl := range y.loops {
		if yl.LoopID == loopID {
			return true
		}
	}
	return false
}

// addLoopToEnd appends the loop to the yarn's sequence. Stringing the same
// loop onto a yarn twice is a caller error, checked by [Graph.AddLoop]
// before it delegates here.
func (y *Yarn) addLoopToEnd(loopID int, twisted bool) {
	y.loops = append(y.loops, YarnLoop{LoopID: loopID, Twisted: twisted})
}
