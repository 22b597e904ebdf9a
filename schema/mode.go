package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode determines how many matches a selector expects and the shape of the
// resolved result.
type Mode uint8

const (
	// ModeSingle expects exactly one match. Absence is reported as a
	// not-found result, never as an error.
	ModeSingle Mode = iota + 1

	// ModeMulti expects zero or more matches. Absence is an empty sequence.
	ModeMulti
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "Single"
	case ModeMulti:
		return "Multi"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == ModeSingle || m == ModeMulti
}

// ParseMode parses a mode name. Besides the canonical names it accepts the
// query-style aliases "Query" and "QueryAll". Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "query":
		return ModeSingle, nil
	case "multi", "queryall":
		return ModeMulti, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Selector pairs a mode with an opaque pattern in the host's selector
// syntax. The pattern is passed through to the host query unchanged.
type Selector struct {
	Mode    Mode
	Pattern string
}

// String renders the selector as Mode("pattern").
func (s Selector) String() string {
	return s.Mode.String() + "(" + strconv.Quote(s.Pattern) + ")"
}
