package retrieval

import "github.com/poiesic/voto/core"

// RetrievalMonitor provides hooks to observe the retrieval process.
// Implement this interface to trace which candidates matched and why.
type RetrievalMonitor interface {
	Start(query string)
	CandidateMatched(candidate core.Candidate, matchedOn string)
	DocumentSkipped(docID string, err error)
	FallbackStarted(codes []string)
	ChunkEmitted(chunk Chunk)
	Finish(chunks []Chunk)
}

// noopMonitor is a no-op implementation of RetrievalMonitor
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) CandidateMatched(_ core.Candidate, _ string) {}
func (n *noopMonitor) DocumentSkipped(_ string, _ error)           {}
func (n *noopMonitor) FallbackStarted(_ []string)                  {}
func (n *noopMonitor) ChunkEmitted(_ Chunk)                        {}
func (n *noopMonitor) Finish(_ []Chunk)                            {}
