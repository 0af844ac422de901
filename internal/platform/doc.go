// Package platform holds small host-side helpers for files the user
// picks from disk, mainly image validation before uploading.
package platform
