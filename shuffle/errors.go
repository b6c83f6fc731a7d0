package shuffle

import "errors"

// ErrInvalidArgument is returned when a shuffle move is asked for with
// parameters it cannot honour. Nothing is moved when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")
