// Package api implements the HTTP+JSON client for the social-network
// backend, the application's only external boundary. Every operation takes
// a context, runs against one configured origin, and maps non-2xx replies
// to an Error carrying the status and response body.
package api
