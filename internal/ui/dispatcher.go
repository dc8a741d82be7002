package ui

import "fyne.io/fyne/v2"

// FyneDispatcher runs callbacks on the Fyne event loop.
type FyneDispatcher struct{}

// Do queues fn with fyne.Do. Fyne runs queued calls in order.
func (FyneDispatcher) Do(fn func()) {
	fyne.Do(fn)
}
