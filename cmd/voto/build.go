package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/voto/ingestion"
)

func (d *deps) buildCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := []ingestion.Option{ingestion.WithProgress(c.App.ErrWriter)}
	if c.IsSet("workers") {
		opts = append(opts, ingestion.WithPoolSize(c.Int("workers")))
	}
	builder, err := e.ws.NewBuilder(opts...)
	if err != nil {
		return err
	}
	defer builder.Release()

	kb, err := builder.Build(c.Context)
	if err != nil {
		return fmt.Errorf("building knowledge base: %w", err)
	}
	if err := e.ws.SaveCorpus(kb); err != nil {
		return fmt.Errorf("saving knowledge base: %w", err)
	}
	e.printer.BuildSummary(kb, e.ws.CorpusPath())
	return nil
}

func (d *deps) processCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	processor, err := e.ws.NewProcessor()
	if err != nil {
		return err
	}
	processed, err := processor.Run(c.Context)
	if err != nil {
		return fmt.Errorf("processing subtitles: %w", err)
	}
	written := make([]string, len(processed))
	for i, p := range processed {
		written[i] = p.Output
	}
	if err := e.ws.ForgetTexts(c.Context, written...); err != nil {
		return err
	}
	e.printer.ProcessSummary(e.ws.ProcessedDir(), processed)
	return nil
}
