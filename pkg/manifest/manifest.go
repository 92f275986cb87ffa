// Package manifest loads swatch build manifests.
//
// A manifest is a small TOML file describing one reference swatch: the
// pattern, its dimensions, and optionally the yarn id. It is build
// plumbing for the swatch constructors, not a pattern language - the file
// names a pattern, it does not spell out stitches.
//
//	pattern = "rib"
//	width = 8
//	height = 12
//	rib = 2
//	yarn = "worsted-grey"
//
// When yarn is omitted a random UUID is generated so separately built
// graphs never collide on yarn ids.
package manifest

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/loomworks/knitgraph/pkg/errors"
	"github.com/loomworks/knitgraph/pkg/knit"
	"github.com/loomworks/knitgraph/pkg/knit/swatch"
)

// Pattern names accepted in the pattern field.
const (
	PatternStockinette = "stockinette"
	PatternRib         = "rib"
	PatternSeed        = "seed"
	PatternLace        = "lace"
	PatternTwists      = "twists"
)

// Swatch is a parsed manifest, ready to build.
type Swatch struct {
	Pattern string `toml:"pattern"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Rib     int    `toml:"rib"`  // rib column width, rib pattern only
	Yarn    string `toml:"yarn"` // optional; a UUID is generated when empty
}

// Load reads and validates a swatch manifest from path.
func Load(path string) (Swatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Swatch{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return Swatch{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (Swatch, error) {
	var s Swatch
	if err := toml.Unmarshal(data, &s); err != nil {
		return Swatch{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	s.Pattern = strings.ToLower(strings.TrimSpace(s.Pattern))
	switch s.Pattern {
	case PatternStockinette, PatternRib, PatternSeed, PatternLace, PatternTwists:
	case "":
		return Swatch{}, errors.New(errors.ErrCodeInvalidManifest, "manifest has no pattern")
	default:
		return Swatch{}, errors.New(errors.ErrCodeInvalidPattern, "unknown pattern: %q", s.Pattern)
	}

	if s.Yarn == "" {
		s.Yarn = uuid.NewString()
	}
	if err := errors.ValidateYarnID(s.Yarn); err != nil {
		return Swatch{}, err
	}

	return s, nil
}

// Build constructs the knit graph the manifest describes.
// Dimension errors from the swatch constructors are reported as
// INVALID_MANIFEST.
func (s Swatch) Build() (*knit.Graph, error) {
	var (
		g   *knit.Graph
		err error
	)
	switch s.Pattern {
	case PatternStockinette:
		g, err = swatch.Stockinette(s.Yarn, s.Width, s.Height)
	case PatternRib:
		g, err = swatch.Rib(s.Yarn, s.Width, s.Height, s.Rib)
	case PatternSeed:
		g, err = swatch.Seed(s.Yarn, s.Width, s.Height)
	case PatternLace:
		g, err = swatch.Lace(s.Yarn, s.Width, s.Height)
	case PatternTwists:
		g, err = swatch.Twists(s.Yarn, s.Height)
	default:
		return nil, errors.New(errors.ErrCodeInvalidPattern, "unknown pattern: %q", s.Pattern)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "build %s", s.Pattern)
	}
	return g, nil
}
