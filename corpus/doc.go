// Package corpus loads the knowledge base and answers read-only questions about it.
//
// A knowledge base is a single JSON file (knowledge-base.json) produced by the
// ingestion builder. Load decodes it into a *core.Corpus, preserving the
// declaration order of candidates and the descending order of global topic
// totals, and checks its integrity invariants before returning it.
//
// Transcript bodies are not part of the knowledge base. They are fetched by
// filename through a TextLoader: DirTextLoader reads the processed directory and
// CachingTextLoader keeps what it read in a storage.TextRepository.
//
// Aggregate, CandidateTopics and Compare sum per-document topic counts. Finder
// runs case-insensitive term searches over every transcript on a worker pool.
package corpus
