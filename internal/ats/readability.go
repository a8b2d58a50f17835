package ats

import (
	"regexp"
	"strings"
)

// sentenceRe splits on runs of sentence terminators. A trailing terminator
// yields an empty final segment that still counts toward the sentence total.
var sentenceRe = regexp.MustCompile(`[.!?]+`)

// Readability maps the text's average words per sentence onto a banded
// score. 15-20 words per sentence is ideal for resumes.
func Readability(text string) int {
	if text == "" {
		return 0
	}

	sentences := sentenceRe.Split(text, -1)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	avg := float64(len(words)) / float64(len(sentences))
	switch {
	case avg >= 15 && avg <= 20:
		return 100
	case (avg >= 10 && avg < 15) || (avg > 20 && avg <= 25):
		return 80
	default:
		return 60
	}
}
