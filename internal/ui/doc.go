package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the search service and renders the results
// grid, pagination controls, status line, and settings. All UI strings are
// localized via Localization.
