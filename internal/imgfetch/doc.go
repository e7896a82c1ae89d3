package imgfetch

// Package imgfetch retrieves thumbnail images over HTTP, decodes them, and
// downscales them into the grid cell bounding box. Failures are per-item and
// non-fatal to the surrounding page render.
