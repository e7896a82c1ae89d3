package model

// Package model defines domain data structures used across the app: image
// records returned by the search API, decoded thumbnails, pagination state,
// and the search status enum. Structures are designed for direct use in the
// UI and explicit state transitions.
