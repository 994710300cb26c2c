// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/taktgrid.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid construction and key parsing.
var (
	// ErrEmptyGrid indicates the input has no locations or no wagons.
	ErrEmptyGrid = errors.New("grid: input must have at least one location and one wagon")
	// ErrKeyFormat indicates a cell-key string is not of the form "i,j".
	ErrKeyFormat = errors.New("grid: cell key must be \"locationIndex,wagonIndex\"")
)

// Location is one zone of the takt plan; Sequence defines grid row order.
type Location struct {
	ID       string
	Sequence int
}

// Wagon is one trade of the takt plan; Sequence defines grid column order.
type Wagon struct {
	ID       string
	Sequence int
}

// Key identifies a single cell: the intersection of location row Loc and
// wagon column Wag. Keys compare by value and may be used as map keys.
type Key struct {
	Loc, Wag int
}

// String renders the canonical "i,j" cell-key form (i = location index,
// j = wagon index), matching the wire format of durations/dependencies maps.
func (k Key) String() string {
	return strconv.Itoa(k.Loc) + "," + strconv.Itoa(k.Wag)
}

// ParseKey parses the canonical "i,j" form back into a Key.
// Returns ErrKeyFormat (wrapped with the offending string) on malformed input.
func ParseKey(s string) (Key, error) {
	left, right, ok := strings.Cut(s, ",")
	if !ok {
		return Key{}, wrapKeyErr(s)
	}
	loc, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return Key{}, wrapKeyErr(s)
	}
	wag, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return Key{}, wrapKeyErr(s)
	}

	return Key{Loc: loc, Wag: wag}, nil
}

// wrapKeyErr attaches the offending string to ErrKeyFormat so callers can
// still match via errors.Is.
func wrapKeyErr(s string) error {
	return fmt.Errorf("%w: got %q", ErrKeyFormat, s)
}

// Input is the caller-supplied description of one takt plan.
// Durations must cover every cell of the grid; Dependencies may cover any
// subset of cells — BuildDependencies fills the gaps with default adjacency.
type Input struct {
	Locations    []Location
	Wagons       []Wagon
	Durations    map[Key]float64
	Dependencies map[Key][]Key
}
