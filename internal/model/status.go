package model

// Phase represents the implicit state of the viewer screen
type Phase string

const (
	// PhaseEmpty means no transcript has been loaded yet
	PhaseEmpty Phase = "Empty"

	// PhaseTranscriptLoaded means a transcript is held and questions may be asked
	PhaseTranscriptLoaded Phase = "TranscriptLoaded"

	// PhaseAnswered means at least one answer is in the history
	PhaseAnswered Phase = "Answered"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// CanAsk returns true if questions may be submitted in this phase
func (p Phase) CanAsk() bool {
	return p == PhaseTranscriptLoaded || p == PhaseAnswered
}

// rank orders phases so transitions can only move forward
func (p Phase) rank() int {
	switch p {
	case PhaseTranscriptLoaded:
		return 1
	case PhaseAnswered:
		return 2
	default:
		return 0
	}
}

// NotificationType selects the style and icon of a toast
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	// NotificationInfo is the default for unknown values
	NotificationInfo NotificationType = "info"
)

// String returns the string representation of NotificationType
func (nt NotificationType) String() string {
	return string(nt)
}

// Normalize maps unknown values to NotificationInfo
func (nt NotificationType) Normalize() NotificationType {
	switch nt {
	case NotificationSuccess, NotificationError, NotificationWarning:
		return nt
	default:
		return NotificationInfo
	}
}
