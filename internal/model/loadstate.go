package model

// LoadState represents the lifecycle of a collection view's data.
type LoadState string

const (
	// LoadStateIdle means no fetch has been issued yet.
	LoadStateIdle LoadState = "Idle"

	// LoadStateLoading means a fetch is in flight.
	LoadStateLoading LoadState = "Loading"

	// LoadStateLoaded means the last fetch succeeded and the local copy is usable.
	LoadStateLoaded LoadState = "Loaded"

	// LoadStateFailed means the last fetch failed; the view offers a retry.
	LoadStateFailed LoadState = "Failed"
)

// String returns the string representation of LoadState.
func (ls LoadState) String() string {
	return string(ls)
}

// InFlight returns true while a fetch is running.
func (ls LoadState) InFlight() bool {
	return ls == LoadStateLoading
}

// Settled returns true once a fetch has finished, successfully or not.
func (ls LoadState) Settled() bool {
	return ls == LoadStateLoaded || ls == LoadStateFailed
}
