package knit

// PullDirection is the direction a child loop is drawn through its parent.
// Back-to-front produces a knit stitch, front-to-back a purl.
type PullDirection int

const (
	// BackToFront pulls the child loop from the back of the fabric to the
	// front (a knit stitch).
	BackToFront PullDirection = iota
	// FrontToBack pulls the child loop from the front of the fabric to the
	// back (a purl stitch).
	FrontToBack
)

// Opposite returns the complementary pull direction.
// The operation is involutive: d.Opposite().Opposite() == d.
func (d PullDirection) Opposite() PullDirection {
	if d == BackToFront {
		return FrontToBack
	}
	return BackToFront
}

// String returns the conventional short form: "BtF" or "FtB".
func (d PullDirection) String() string {
	if d == BackToFront {
		return "BtF"
	}
	return "FtB"
}

// ParsePullDirection converts the short form produced by
// [PullDirection.String] back into a direction. It reports false for any
// other input.
func ParsePullDirection(s string) (PullDirection, bool) {
	switch s {
	case "BtF":
		return BackToFront, true
	case "FtB":
		return FrontToBack, true
	}
	return BackToFront, false
}
