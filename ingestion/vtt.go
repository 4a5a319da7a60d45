package ingestion

import (
	"regexp"
	"strings"
)

var (
	cueID     = regexp.MustCompile(`^\d+$`)
	markupTag = regexp.MustCompile(`<[^>]*>`)
	spaceRun  = regexp.MustCompile(`\s+`)
)

// CleanVTT extracts the spoken text of a WebVTT subtitle file as one line.
//
// The header block, cue timings, numeric cue identifiers and blank lines are
// dropped, inline tags are stripped and &nbsp; and &amp; are decoded. A line
// equal to or contained in the previous kept line is skipped, since
// auto-generated captions repeat each phrase as it scrolls.
func CleanVTT(content string) string {
	var kept []string
	last := ""
	inHeader := false

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if i == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		trimmed := strings.TrimSpace(line)

		if i == 0 && strings.HasPrefix(line, "WEBVTT") {
			inHeader = true
			continue
		}
		if inHeader {
			if trimmed == "" {
				inHeader = false
			}
			continue
		}
		if trimmed == "" || strings.Contains(line, "-->") || cueID.MatchString(line) {
			continue
		}

		text := markupTag.ReplaceAllString(line, "")
		text = strings.ReplaceAll(text, "&nbsp;", " ")
		text = strings.ReplaceAll(text, "&amp;", "&")
		text = strings.TrimSpace(text)

		if text == "" || text == last || strings.Contains(last, text) {
			continue
		}
		kept = append(kept, text)
		last = text
	}

	return strings.TrimSpace(spaceRun.ReplaceAllString(strings.Join(kept, " "), " "))
}
