// Package input routes key events for the write-forward editing mode.
//
// The handler owns the decision for every key press: toggle the gate,
// run the strike resolver, suppress a blocked key, or pass the event
// through to normal insertion. All collaborators are injected; the
// handler holds no ambient global state.
package input
