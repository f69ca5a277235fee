package tarea

import "errors"

// ErrTareaNotOwned is returned when an authenticated user operates on a
// tarea owned by somebody else. It is distinct from store.ErrTareaNotFound:
// "doesn't exist" (404) and "not yours" (403) must never be conflated.
var ErrTareaNotOwned = errors.New("tarea is not owned by the requesting user")
