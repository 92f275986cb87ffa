// Package symbols maps pattern-language symbol names to the stitch and
// cable templates that parameterize knit-graph construction.
//
// A [Table] resolves case-insensitive names to one of three kinds of value:
// a [StitchDefinition], a [CableDefinition], or an integer variable. The
// built-in vocabulary - plain knit and purl, yarn-over, slip, the standard
// decreases, and the full 72-name cable space - is constructed once and
// shared read-only between tables; per-compilation assignments land in a
// private session overlay consulted before the built-ins, so user
// redefinitions and row counters never leak across compilations.
package symbols
