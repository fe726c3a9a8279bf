package platform

// Package platform contains OS/platform integration and YouTube glue:
// video ID extraction, oEmbed title lookup, saving transcripts to disk, and
// revealing saved files in the system file manager.
