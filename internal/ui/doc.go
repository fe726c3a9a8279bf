package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI renders the transcript, video preview, Q&A and chat history driven by
// viewer.Service, shows stacked toast notifications, and edits settings.
// All UI strings are localized via Localization.
