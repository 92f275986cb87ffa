// Package swatch constructs reference knit graphs for common fabric
// structures. The constructors drive [knit.Graph] construction from
// definitions looked up in a [symbols.Table], following the same call
// pattern a full pattern interpreter would: resolve the symbol, then feed
// its pull direction, depth, and offsets into loop-creation and
// connect calls.
package swatch

import (
	"errors"
	"fmt"

	"github.com/loomworks/knitgraph/pkg/knit"
)

var (
	// ErrInvalidDimensions is returned when a swatch size is not positive
	// or does not fit the pattern repeat.
	ErrInvalidDimensions = errors.New("invalid swatch dimensions")
)

// Stockinette builds a width x height swatch of plain knit stitches on the
// given yarn. Loop w*r+c is pulled through loop w*(r-1)+c for every row
// r > 0.
func Stockinette(yarn string, width, height int) (*knit.Graph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b, err := newBuilder(yarn, width)
	if err != nil {
		return nil, err
	}
	k, err := b.table.Stitch("k")
	if err != nil {
		return nil, err
	}
	for r := 1; r < height; r++ {
		for c := 0; c < width; c++ {
			if err := b.stitch(k); err != nil {
				return nil, err
			}
		}
		b.turn()
	}
	return b.graph, nil
}

// Rib builds a width x height swatch alternating ribWidth columns of knit
// with ribWidth columns of purl.
func Rib(yarn string, width, height, ribWidth int) (*knit.Graph, error) {
	if width < 1 || height < 1 || ribWidth < 1 || ribWidth > width {
		return nil, fmt.Errorf("%w: %dx%d rib %d", ErrInvalidDimensions, width, height, ribWidth)
	}
	b, err := newBuilder(yarn, width)
	if err != nil {
		return nil, err
	}
	k, err := b.table.Stitch("k")
	if err != nil {
		return nil, err
	}
	p, err := b.table.Stitch("p")
	if err != nil {
		return nil, err
	}
	for r := 1; r < height; r++ {
		for c := 0; c < width; c++ {
			def := k
			if (c/ribWidth)%2 == 1 {
				def = p
			}
			if err := b.stitch(def); err != nil {
				return nil, err
			}
		}
		b.turn()
	}
	return b.graph, nil
}

// Seed builds a width x height swatch of seed stitch: knits and purls
// checkerboarded by row and column.
func Seed(yarn string, width, height int) (*knit.Graph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b, err := newBuilder(yarn, width)
	if err != nil {
		return nil, err
	}
	k, err := b.table.Stitch("k")
	if err != nil {
		return nil, err
	}
	p, err := b.table.Stitch("p")
	if err != nil {
		return nil, err
	}
	for r := 1; r < height; r++ {
		for c := 0; c < width; c++ {
			def := k
			if (r+c)%2 == 1 {
				def = p
			}
			if err := b.stitch(def); err != nil {
				return nil, err
			}
		}
		b.turn()
	}
	return b.graph, nil
}

// Lace builds a width x height eyelet swatch: every row above the cast-on
// repeats a two-into-one decrease followed by a yarn-over, keeping the
// loop count constant. Width must be even.
func Lace(yarn string, width, height int) (*knit.Graph, error) {
	if width < 2 || height < 1 || width%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d (lace needs an even width)", ErrInvalidDimensions, width, height)
	}
	b, err := newBuilder(yarn, width)
	if err != nil {
		return nil, err
	}
	yo, err := b.table.Stitch("yo")
	if err != nil {
		return nil, err
	}
	k2tog, err := b.table.Stitch("k2tog")
	if err != nil {
		return nil, err
	}
	for r := 1; r < height; r++ {
		// The decrease leads each repeat so the row's first loop has a
		// same-course parent and opens the next course; a leading yarn-over
		// would inherit the prior course.
		for c := 0; c < width; c += 2 {
			if err := b.stitch(k2tog); err != nil {
				return nil, err
			}
			if err := b.stitch(yo); err != nil {
				return nil, err
			}
		}
		b.turn()
	}
	return b.graph, nil
}

// Twists builds a 4-wide, height-tall swatch crossing a left-leaning 1x1
// cable over columns 0-1 and a right-leaning one over columns 2-3 on every
// other row, with plain knit rows between.
func Twists(yarn string, height int) (*knit.Graph, error) {
	if height < 1 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimensions, height)
	}
	const width = 4
	b, err := newBuilder(yarn, width)
	if err != nil {
		return nil, err
	}
	k, err := b.table.Stitch("k")
	if err != nil {
		return nil, err
	}
	leftTwist, err := b.table.Cable("lc1|1")
	if err != nil {
		return nil, err
	}
	rightTwist, err := b.table.Cable("rc1|1")
	if err != nil {
		return nil, err
	}
	for r := 1; r < height; r++ {
		if r%2 == 1 {
			if err := b.cable(leftTwist); err != nil {
				return nil, err
			}
			if err := b.cable(rightTwist); err != nil {
				return nil, err
			}
		} else {
			for c := 0; c < width; c++ {
				if err := b.stitch(k); err != nil {
					return nil, err
				}
			}
		}
		b.turn()
	}
	return b.graph, nil
}
