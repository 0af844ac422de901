// Package model defines the client-side data types exchanged with the
// social-network backend: users, posts, the locally persisted session, and
// the load-state enum for collection views. Field names follow Go
// conventions while JSON tags match the backend's Spanish wire names.
package model
