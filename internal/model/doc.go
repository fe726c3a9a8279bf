package model

// Package model defines the session data used across the app: the held
// transcript, the bounded Q&A history, transcript statistics, and the small
// enums (view phase, notification type) the UI renders from. Mutation goes
// through named Session operations so the history cap and the
// transcript-before-question rule live in one place.
