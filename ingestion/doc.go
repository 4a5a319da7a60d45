// Package ingestion builds the knowledge base from processed transcripts.
//
// The Builder reads every transcript from a corpus.TextSource, analyzes each
// one concurrently on a worker pool and assembles the documents, indices and
// global topic totals into a core.Corpus, in filename order:
//   - the owning candidate is the first dash-separated filename part that is
//     a known candidate code
//   - the source label comes from the filename prefix
//   - topic counts are non-overlapping, case-insensitive occurrences of each
//     tracked topic
//
// CleanVTT and Processor turn raw WebVTT subtitles into the plain text files
// the Builder consumes.
package ingestion
