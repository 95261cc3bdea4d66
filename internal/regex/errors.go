package regex

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern is matched by every error the parser returns.
var ErrMalformedPattern = errors.New("malformed pattern")

// MalformedPatternError describes why a pattern could not be parsed.
// Pos is the rune offset of the offending symbol.
type MalformedPatternError struct {
	Pattern string
	Pos     int
	Reason  string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q at offset %d: %s", e.Pattern, e.Pos, e.Reason)
}

func (e *MalformedPatternError) Is(target error) bool { return target == ErrMalformedPattern }
