package engine

import (
	"errors"
	"fmt"
)

// Card token decode failures. Format errors mean the token didn't parse at
// all; range errors mean it parsed but named an index outside the rank or
// suit tables. The split lets a load path discard corrupt entries without
// treating every failure the same way.
var (
	ErrCardTokenFormat = errors.New("card token: malformed")
	ErrCardTokenRange  = errors.New("card token: index out of range")
)

// InvariantError reports a structural inconsistency: wrong deck size,
// impossible trick totals, claim analysis over mismatched hands. These are
// caller or engine bugs, not user errors, and should abort the current hand
// rather than be shown as a status message.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "invariant violation: " + e.Msg }

func invariantf(format string, args ...any) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}
