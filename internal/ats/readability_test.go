package ats

import (
	"strings"
	"testing"
)

// sentenceOf builds a single sentence of n words with no terminator, so the
// average words per sentence equals n exactly.
func sentenceOf(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestReadabilityBands(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty text", text: "", want: 0},
		{name: "fifteen words per sentence is ideal", text: sentenceOf(15), want: 100},
		{name: "twenty words per sentence is still ideal", text: sentenceOf(20), want: 100},
		{name: "just above twenty drops a band", text: sentenceOf(21), want: 80},
		{name: "twenty five is the upper edge of the middle band", text: sentenceOf(25), want: 80},
		{name: "above twenty five scores lowest", text: sentenceOf(26), want: 60},
		{name: "ten words per sentence", text: sentenceOf(10), want: 80},
		{name: "below ten scores lowest", text: sentenceOf(9), want: 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Readability(tc.text); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestReadabilityTrailingTerminatorCountsAsSegment(t *testing.T) {
	// 30 words with a trailing period split into two segments, so the
	// average lands in the ideal band.
	text := sentenceOf(30) + "."
	if got := Readability(text); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestReadabilityTerminatorRunsAreOneBoundary(t *testing.T) {
	// Two sentences of 15 words each, the first ending in "?!".
	text := sentenceOf(15) + "?! " + sentenceOf(15)
	if got := Readability(text); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}
