package viewer

// Package viewer implements the transcript viewer controller: fetching a
// transcript, asking questions about it, keeping the bounded chat history,
// and saving the transcript to disk. It renders through the View and
// Notifier interfaces so the logic does not depend on any widget toolkit.
