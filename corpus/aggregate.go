package corpus

import (
	"slices"

	"github.com/poiesic/voto/core"
)

// Aggregate sums the topic counts of the given documents.
// Document IDs the corpus does not know are skipped.
func Aggregate(c *core.Corpus, ids []string) map[string]int {
	totals := make(map[string]int)
	for _, id := range ids {
		doc, ok := c.Document(id)
		if !ok {
			continue
		}
		for topic, count := range doc.Topics {
			totals[topic] += count
		}
	}
	return totals
}

// CandidateTopics sums topic counts over every document indexed for the candidate.
func CandidateTopics(c *core.Corpus, code string) map[string]int {
	return Aggregate(c, c.DocumentIDs(code))
}

// SortedTopics flattens totals into counts sorted descending, ties by topic.
func SortedTopics(totals map[string]int) []core.TopicCount {
	counts := make([]core.TopicCount, 0, len(totals))
	for topic, count := range totals {
		counts = append(counts, core.TopicCount{Topic: topic, Count: count})
	}
	core.SortTopicCounts(counts)
	return counts
}

// TopicDiff is one row of a two-candidate topic comparison.
type TopicDiff struct {
	Topic string
	Left  int
	Right int
	Diff  int // Left - Right
}

// Comparison is the topic diff between two candidates.
type Comparison struct {
	Left  core.Candidate
	Right core.Candidate
	Rows  []TopicDiff
}

// Compare diffs the topic profiles of two candidates over the union of topics
// either one mentions, sorted by topic.
// Codes are resolved case-insensitively; an unknown code aborts the comparison.
func Compare(c *core.Corpus, left, right string) (*Comparison, error) {
	l, err := c.LookupCandidate(left)
	if err != nil {
		return nil, err
	}
	r, err := c.LookupCandidate(right)
	if err != nil {
		return nil, err
	}

	lt := CandidateTopics(c, l.Code)
	rt := CandidateTopics(c, r.Code)

	topics := make([]string, 0, len(lt)+len(rt))
	for topic := range lt {
		topics = append(topics, topic)
	}
	for topic := range rt {
		if _, seen := lt[topic]; !seen {
			topics = append(topics, topic)
		}
	}
	slices.Sort(topics)

	rows := make([]TopicDiff, len(topics))
	for i, topic := range topics {
		rows[i] = TopicDiff{
			Topic: topic,
			Left:  lt[topic],
			Right: rt[topic],
			Diff:  lt[topic] - rt[topic],
		}
	}
	return &Comparison{Left: l, Right: r, Rows: rows}, nil
}
