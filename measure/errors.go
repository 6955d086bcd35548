package measure

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for empty specifications, wrong token
	// counts, unknown identifiers and units the parser cannot accept.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedNumber is returned when a token expected to be numeric does
	// not parse. Errors wrapping it also match ErrInvalidArgument.
	ErrMalformedNumber = errors.New("malformed number")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func malformedNumber(what, token string, err error) error {
	return fmt.Errorf("%w: %w: %s %q: %w", ErrInvalidArgument, ErrMalformedNumber, what, token, err)
}
