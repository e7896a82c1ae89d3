package pixabay

// Package pixabay implements the client for the Pixabay image-search API:
// request construction, the single HTTP GET, and envelope decoding. It
// performs no retries; a failed attempt is terminal for that request.
