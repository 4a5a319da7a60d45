package ingestion

import (
	"strings"
	"unicode/utf8"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
)

// SummaryLength is how many characters of a transcript go into its summary.
const SummaryLength = 500

// CandidateFromFilename returns the first dash-separated part of the filename
// stem that is a known candidate code.
//
//	TSE-01-PJSC-Walter_Hernandez.txt -> PJSC
//	NPN-PLN-Alvaro_Ramos.txt         -> PLN
func CandidateFromFilename(filename string, known func(code string) bool) (string, bool) {
	stem := strings.TrimSuffix(filename, corpus.TextSuffix)
	for _, part := range strings.Split(stem, "-") {
		if known(part) {
			return part, true
		}
	}
	return "", false
}

// CountTopics counts the non-overlapping, case-insensitive occurrences of every
// tracked topic. Topics that never occur are left out.
func CountTopics(text string) map[string]int {
	lower := strings.ToLower(text)
	counts := make(map[string]int)
	for _, topic := range core.Topics {
		if n := strings.Count(lower, strings.ToLower(topic)); n > 0 {
			counts[topic] = n
		}
	}
	return counts
}

// Summarize returns the first SummaryLength characters of text followed by "...".
func Summarize(text string) string {
	if utf8.RuneCountInString(text) <= SummaryLength {
		return text + "..."
	}
	n := 0
	for i := range text {
		if n == SummaryLength {
			return text[:i] + "..."
		}
		n++
	}
	return text + "..."
}

// Analyze turns one transcript into a document. owner is nil when the
// filename names no known candidate.
func Analyze(filename, text string, owner *core.Candidate) *core.Document {
	doc := &core.Document{
		ID:       strings.TrimSuffix(filename, corpus.TextSuffix),
		Filename: filename,
		Source:   core.SourceTypeFromFilename(filename),
		Length:   len(text),
		Words:    len(corpus.SplitWords(text)),
		Topics:   CountTopics(text),
		Summary:  Summarize(text),
	}
	if owner != nil {
		code, name := owner.Code, owner.Name
		doc.CandidateCode = &code
		doc.CandidateName = &name
	}
	return doc
}
