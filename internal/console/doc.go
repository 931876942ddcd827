// Package console implements the command interpreter behind the termfolio
// prompt.
//
// A Console owns all interaction state for one session: the history buffer
// and its cursor, the help overlay's visibility and the flash notification.
// It never renders anything itself. Every UI effect goes through one of the
// capability interfaces declared in surfaces.go, so the interpreter can be
// driven by the Bubble Tea model in internal/ui or by plain fakes in tests.
//
// All methods must be called from a single goroutine (the UI update loop).
// Delayed work is expressed through a Scheduler; callbacks check that the
// state they were created for is still current before touching anything.
package console
