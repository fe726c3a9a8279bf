package api

// Package api is the HTTP client for the transcript backend. All calls go
// through FetchJSON, the single place where transport failures, non-2xx
// statuses and malformed bodies are normalized into *Error.
