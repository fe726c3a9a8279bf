package model

import "testing"

func TestPhase_CanAsk(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseEmpty, false},
		{PhaseTranscriptLoaded, true},
		{PhaseAnswered, true},
	}

	for _, test := range tests {
		result := test.phase.CanAsk()
		if result != test.expected {
			t.Errorf("Phase(%s).CanAsk() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_String(t *testing.T) {
	phase := PhaseTranscriptLoaded
	expected := "TranscriptLoaded"
	result := phase.String()

	if result != expected {
		t.Errorf("Phase.String() = %s, expected %s", result, expected)
	}
}

func TestNotificationType_Normalize(t *testing.T) {
	tests := []struct {
		kind     NotificationType
		expected NotificationType
	}{
		{NotificationSuccess, NotificationSuccess},
		{NotificationError, NotificationError},
		{NotificationWarning, NotificationWarning},
		{NotificationInfo, NotificationInfo},
		{"", NotificationInfo},
		{"debug", NotificationInfo},
	}

	for _, test := range tests {
		result := test.kind.Normalize()
		if result != test.expected {
			t.Errorf("NotificationType(%q).Normalize() = %s, expected %s", test.kind, result, test.expected)
		}
	}
}
