package corpus

import "regexp"

var whitespace = regexp.MustCompile(`\s+`)

// SplitWords splits text on whitespace runs. Leading or trailing whitespace
// yields an empty first or last element, and empty text yields one empty
// element, so word counts match those recorded in the knowledge base.
func SplitWords(text string) []string {
	return whitespace.Split(text, -1)
}
