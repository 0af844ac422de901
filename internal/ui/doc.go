// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the backend client, the session store, and the
// feed service, and renders the feed, profiles, authentication forms, and
// account settings. All UI strings are localized via Localization.
package ui
