package ats

import (
	"math"
	"sort"
	"strings"
)

// ExtractKeywords tokenizes text into lowercase alphabetic words of at least
// the configured minimum length, drops stop words, and returns the top
// MaxKeywords by frequency. Ties keep first-encountered order. Tokens
// containing digits or punctuation are never extracted, so terms like "c++"
// and "3d" do not appear as keywords.
func (a *Analyzer) ExtractKeywords(text string) []KeywordCount {
	words := a.wordRe.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := a.cfg.StopWords[w]; stop {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	out := make([]KeywordCount, 0, len(order))
	for _, w := range order {
		out = append(out, KeywordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > a.cfg.MaxKeywords {
		out = out[:a.cfg.MaxKeywords]
	}
	return out
}

// KeywordMatch scores how many of the job description's top keywords appear
// among the resume text's top keywords. Any resume occurrence counts as a
// full match regardless of the job description's frequency. An empty
// keyword set scores 0, never an error.
func (a *Analyzer) KeywordMatch(resumeText, jobDescription string) KeywordMatchResult {
	jdKeywords := a.ExtractKeywords(jobDescription)
	if len(jdKeywords) == 0 {
		return KeywordMatchResult{
			Matched: []string{},
			Missing: []string{},
			Density: map[string]KeywordDensity{},
		}
	}

	resumeCounts := make(map[string]int)
	for _, kw := range a.ExtractKeywords(resumeText) {
		resumeCounts[kw.Word] = kw.Count
	}

	matched := make([]string, 0, len(jdKeywords))
	missing := make([]string, 0, len(jdKeywords))
	density := make(map[string]KeywordDensity, len(jdKeywords))
	for _, kw := range jdKeywords {
		resumeCount := resumeCounts[kw.Word]
		if resumeCount == 0 {
			missing = append(missing, kw.Word)
			continue
		}
		matched = append(matched, kw.Word)
		ratio := float64(resumeCount) / float64(kw.Count)
		if ratio > 1 {
			ratio = 1
		}
		density[kw.Word] = KeywordDensity{
			JDCount:     kw.Count,
			ResumeCount: resumeCount,
			MatchRatio:  ratio,
		}
	}

	score := int(math.Round(float64(len(matched)) / float64(len(jdKeywords)) * 100))
	return KeywordMatchResult{
		Score:   score,
		Matched: matched,
		Missing: missing,
		Density: density,
	}
}
