package model

import "testing"

func TestComputeStats(t *testing.T) {
	tests := []struct {
		transcript string
		words      int
		chars      int
		minutes    int
	}{
		{"a b c", 3, 5, 1},
		{"hello world", 2, 11, 1},
		{"  spaced   out\ttext\n", 3, 20, 1},
		{"", 0, 0, 0},
		{"héllo wörld", 2, 11, 1},
	}

	for _, test := range tests {
		stats := ComputeStats(test.transcript)
		if stats.Words != test.words {
			t.Errorf("ComputeStats(%q).Words = %d, expected %d", test.transcript, stats.Words, test.words)
		}
		if stats.Characters != test.chars {
			t.Errorf("ComputeStats(%q).Characters = %d, expected %d", test.transcript, stats.Characters, test.chars)
		}
		if stats.ReadingMinutes != test.minutes {
			t.Errorf("ComputeStats(%q).ReadingMinutes = %d, expected %d", test.transcript, stats.ReadingMinutes, test.minutes)
		}
	}
}

func TestReadingMinutes(t *testing.T) {
	tests := []struct {
		words    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
	}

	for _, test := range tests {
		result := ReadingMinutes(test.words)
		if result != test.expected {
			t.Errorf("ReadingMinutes(%d) = %d, expected %d", test.words, result, test.expected)
		}
	}
}

func TestTranscriptStats_String(t *testing.T) {
	stats := ComputeStats("hello world")
	expected := "2 words • 11 characters • ~1 min read"

	if stats.String() != expected {
		t.Errorf("String() = %s, expected %s", stats.String(), expected)
	}
}
