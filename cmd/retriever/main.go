// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/voto"
	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/retrieval"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "retriever",
		Usage:     "Show which transcripts the assistant would read for a question",
		ArgsUsage: "<question...>",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "Data directory holding knowledge-base.json and processed/",
				Value:   voto.DefaultDataDir,
				EnvVars: []string{"VOTO_DATA"},
			},
			&cli.IntFlag{
				Name:  "fallback",
				Usage: "Candidates used when the question names nobody",
				Value: 3,
			},
			&cli.IntFlag{
				Name:  "preview",
				Usage: "Characters of each excerpt to print",
				Value: 120,
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected a question")
	}
	ws, err := voto.OpenWorkspace(c.String("data"))
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			slog.Error("error closing workspace", "err", err)
		}
	}()

	monitor := &traceMonitor{out: c.App.Writer, preview: c.Int("preview")}
	r, err := ws.NewRetriever(
		retrieval.WithMonitor(monitor),
		retrieval.WithMaxFallbackDocs(c.Int("fallback")),
	)
	if err != nil {
		return err
	}

	chunks, err := r.Retrieve(c.Context, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Found %d excerpts\n", len(chunks))
	return nil
}

// traceMonitor prints every retrieval step as it happens.
type traceMonitor struct {
	out     io.Writer
	preview int
}

var _ retrieval.RetrievalMonitor = (*traceMonitor)(nil)

func (m *traceMonitor) Start(query string) {
	fmt.Fprintf(m.out, "query: %q\n", query)
}

func (m *traceMonitor) CandidateMatched(candidate core.Candidate, matchedOn string) {
	fmt.Fprintf(m.out, "  match %s (%s) on %q\n", candidate.Code, candidate.Name, matchedOn)
}

func (m *traceMonitor) DocumentSkipped(docID string, err error) {
	fmt.Fprintf(m.out, "  skip  %s: %v\n", docID, err)
}

func (m *traceMonitor) FallbackStarted(codes []string) {
	fmt.Fprintf(m.out, "  no candidate named, falling back to %s\n", strings.Join(codes, ", "))
}

func (m *traceMonitor) ChunkEmitted(chunk retrieval.Chunk) {
	text := chunk.Text
	if m.preview > 0 && utf8.RuneCountInString(text) > m.preview {
		text = string([]rune(text)[:m.preview]) + "..."
	}
	fmt.Fprintf(m.out, "  chunk %s [%s] %d chars\n        %s\n",
		chunk.DocumentID, chunk.SourceLabel, utf8.RuneCountInString(chunk.Text), text)
}

func (m *traceMonitor) Finish(chunks []retrieval.Chunk) {
	fmt.Fprintf(m.out, "done: %d chunks\n", len(chunks))
}
