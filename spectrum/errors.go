package spectrum

import "errors"

// ErrUnknownParty is returned when a party code has no spectrum entry.
var ErrUnknownParty = errors.New("party not in spectrum")
