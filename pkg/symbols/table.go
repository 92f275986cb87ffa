package symbols

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrUnknownSymbol is returned by [Table.Lookup] when the name is not
	// registered. The error message carries the offending name so the
	// interpreter can attribute a pattern-level compile error.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrSymbolKind is returned by the typed accessors ([Table.Stitch],
	// [Table.Cable], [Table.Int]) when the name resolves to a value of a
	// different kind.
	ErrSymbolKind = errors.New("unexpected symbol kind")
)

// CurrentRow is the built-in session variable the interpreter uses to track
// row progress. It starts at 0 in every fresh [Table].
const CurrentRow = "current_row"

// Symbol is a value bound to a name: a [StitchDefinition], a
// [CableDefinition], or an int variable.
type Symbol any

// builtins is constructed once and shared read-only by every Table.
var builtins = sync.OnceValue(func() map[string]Symbol {
	table := map[string]Symbol{
		"k":    knitStitch(),
		"p":    purlStitch(),
		"yo":   yarnOver(),
		"slip": slip(),
	}
	for name, def := range decreases() {
		table[name] = def
	}
	for name, def := range cables() {
		table[name] = def
	}
	table[CurrentRow] = 0
	return table
})

// Table resolves symbol names case-insensitively to their definitions.
// Built-ins are shared between tables; [Table.Assign] writes into a
// per-table session overlay consulted first on lookup, so redefinitions
// shadow built-ins without mutating them.
//
// The zero value is not usable - use [NewTable]. A Table is not safe for
// concurrent use; concurrent compilations must each create their own.
type Table struct {
	builtins map[string]Symbol
	session  map[string]Symbol
}

// NewTable creates a symbol table holding the built-in vocabulary and an
// empty session overlay.
func NewTable() *Table {
	return &Table{
		builtins: builtins(),
		session:  make(map[string]Symbol),
	}
}

// Lookup returns the symbol bound to the name, ignoring case. Session
// assignments shadow built-ins. Returns an error wrapping ErrUnknownSymbol
// if the name is not registered.
func (t *Table) Lookup(name string) (Symbol, error) {
	key := normalize(name)
	if v, ok := t.session[key]; ok {
		return v, nil
	}
	if v, ok := t.builtins[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
}

// Contains reports whether the name is registered, ignoring case.
func (t *Table) Contains(name string) bool {
	key := normalize(name)
	if _, ok := t.session[key]; ok {
		return true
	}
	_, ok := t.builtins[key]
	return ok
}

// Assign binds the name to the value in the session overlay, overwriting
// any previous session binding and shadowing a built-in of the same name.
func (t *Table) Assign(name string, value Symbol) {
	t.session[normalize(name)] = value
}

// Stitch resolves the name to a StitchDefinition.
func (t *Table) Stitch(name string) (StitchDefinition, error) {
	v, err := t.Lookup(name)
	if err != nil {
		return StitchDefinition{}, err
	}
	def, ok := v.(StitchDefinition)
	if !ok {
		return StitchDefinition{}, fmt.Errorf("%w: %q is not a stitch", ErrSymbolKind, name)
	}
	return def, nil
}

// Cable resolves the name to a CableDefinition.
func (t *Table) Cable(name string) (CableDefinition, error) {
	v, err := t.Lookup(name)
	if err != nil {
		return CableDefinition{}, err
	}
	def, ok := v.(CableDefinition)
	if !ok {
		return CableDefinition{}, fmt.Errorf("%w: %q is not a cable", ErrSymbolKind, name)
	}
	return def, nil
}

// Int resolves the name to an integer variable.
func (t *Table) Int(name string) (int, error) {
	v, err := t.Lookup(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a variable", ErrSymbolKind, name)
	}
	return n, nil
}

// Names returns every registered name (built-in and session) sorted
// lexicographically. Shadowed built-ins appear once.
func (t *Table) Names() []string {
	seen := make(map[string]struct{}, len(t.builtins)+len(t.session))
	names := make([]string, 0, len(t.builtins)+len(t.session))
	for key := range t.builtins {
		seen[key] = struct{}{}
		names = append(names, key)
	}
	for key := range t.session {
		if _, ok := seen[key]; !ok {
			names = append(names, key)
		}
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string { return strings.ToLower(name) }
