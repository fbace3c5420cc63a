package flatveb

import "errors"

// ErrCapacityTooLarge is wrapped by the panic raised when New or
// NewWithBits is asked for a capacity no size class can hold. The request
// is unsatisfiable by construction, so there is no instance to return and
// no error value either; callers that must distinguish the condition can
// recover and test with errors.Is.
var ErrCapacityTooLarge = errors.New("capacity too large")
