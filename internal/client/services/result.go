// Package services holds the form services behind the client's screens:
// auth, profile completion, and skill offers. Each service owns a mutable
// draft, validates it locally before any remote call, and exposes the
// submission outcome through a Result plus a Submitting flag so the
// surface stays responsive while a remote write is outstanding.
package services

import "sync"

// State is the lifecycle of a form submission.
type State int

const (
	StateIdle State = iota
	StateSuccess
	StateError
)

// Result is the outcome of the most recent submit. Warning is set on
// partial success, e.g. the profile was saved but the picture upload
// failed; it is never set together with StateError.
type Result struct {
	State   State
	Message string
	Warning string
}

// form carries the submit state shared by every service. A submit in
// flight blocks further submits, so a double invocation produces exactly
// one remote write.
type form struct {
	mu         sync.Mutex
	submitting bool
	result     Result
}

// begin claims the submission slot. It returns false if a submit is
// already in flight, in which case the caller must do nothing.
func (f *form) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return false
	}
	f.submitting = true
	f.result = Result{}
	return true
}

// finish releases the submission slot and publishes the outcome.
func (f *form) finish(r Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.result = r
}

// reject publishes a validation failure without claiming the slot;
// validation never reaches the network.
func (f *form) reject(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = Result{State: StateError, Message: msg}
}

// Submitting reports whether a submit is currently in flight.
func (f *form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Result returns the outcome of the most recent submit.
func (f *form) Result() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}
