// Package feed holds the in-memory timeline state shared by the UI views.
// It loads posts from the backend, tracks the load lifecycle, and splices
// per-post updates back into the cached slice so views refresh one card
// instead of refetching the whole list.
package feed
