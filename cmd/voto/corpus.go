package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
)

// requireArgs fails with the command's usage when fewer than n arguments are given.
func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return fmt.Errorf("%s: expected %s", c.Command.Name, c.Command.ArgsUsage)
	}
	return nil
}

func (d *deps) candidatesCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}
	e.printer.Candidates(kb, c.Bool("detalle"))
	return nil
}

func (d *deps) topicsCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}
	e.printer.Topics(kb, c.Int("top"))
	return nil
}

func (d *deps) profileCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}
	cand, err := kb.LookupCandidate(c.Args().First())
	if err != nil {
		if errors.Is(err, core.ErrUnknownCandidate) {
			e.printer.CandidateNotFound(c.Args().First())
			return nil
		}
		return err
	}
	e.printer.Profile(kb, cand)
	return nil
}

func (d *deps) compareCommand(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}
	cmp, err := corpus.Compare(kb, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		var unknown *core.UnknownCodeError
		if errors.As(err, &unknown) {
			e.printer.CandidateNotFound(unknown.Code)
			return nil
		}
		return err
	}
	e.printer.Comparison(cmp)
	return nil
}

func (d *deps) searchCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	q, err := searchQuery(c)
	if err != nil {
		return err
	}

	finder, err := e.ws.NewFinder()
	if err != nil {
		return err
	}
	defer finder.Release()

	hits, err := finder.Find(c.Context, q)
	if err != nil {
		return fmt.Errorf("searching transcripts: %w", err)
	}
	e.printer.SearchResults(q.Term, hits)
	return nil
}

// searchQuery builds the query from the first argument and the command flags.
// Flags may also follow the term, where the cli parser no longer sees them.
func searchQuery(c *cli.Context) (corpus.Query, error) {
	q := corpus.Query{
		Term:          c.Args().First(),
		CandidateCode: c.String("candidato"),
		FoldAccents:   c.Bool("sin-acentos"),
	}
	rest := c.Args().Tail()
	for i := 0; i < len(rest); i++ {
		switch arg := rest[i]; arg {
		case "-c", "--candidato":
			if i+1 == len(rest) {
				return corpus.Query{}, fmt.Errorf("%s: flag %s needs a candidate code", c.Command.Name, arg)
			}
			i++
			q.CandidateCode = rest[i]
		case "--sin-acentos":
			q.FoldAccents = true
		default:
			if code, ok := strings.CutPrefix(arg, "--candidato="); ok {
				q.CandidateCode = code
				continue
			}
			return corpus.Query{}, fmt.Errorf("%s: unexpected argument %q (quote terms with spaces)", c.Command.Name, arg)
		}
	}
	return q, nil
}

func (d *deps) readCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	id := strings.TrimSuffix(c.Args().First(), corpus.TextSuffix)
	text, err := e.ws.Texts().LoadText(c.Context, id+corpus.TextSuffix)
	if err != nil {
		if errors.Is(err, corpus.ErrDocumentNotFound) {
			e.printer.DocumentNotFound(id)
			return nil
		}
		return err
	}
	e.printer.Preview(id, text, c.Int("lineas"))
	return nil
}

var exploreActions = []string{
	"Comparar con otro candidato",
	"Buscar un tema específico",
	"Ver todos los temas",
	"Salir",
}

// exploreCommand walks the user from a candidate profile to one follow-up view.
func (d *deps) exploreCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}
	e.printer.Notice("\n🗳️  VOTO INFORMADO - Modo Interactivo\n")

	names := make([]string, len(kb.Candidates))
	for i, cand := range kb.Candidates {
		names[i] = fmt.Sprintf("%s (%s)", cand.Name, cand.Code)
	}
	i, err := e.choose("¿Qué candidato querés conocer?", names)
	if err != nil {
		return err
	}
	cand := kb.Candidates[i]
	e.printer.Profile(kb, cand)

	action, err := e.choose("¿Qué querés hacer?", exploreActions)
	if err != nil {
		return err
	}
	switch action {
	case 0:
		others := make([]core.Candidate, 0, len(kb.Candidates)-1)
		labels := make([]string, 0, len(kb.Candidates)-1)
		for _, o := range kb.Candidates {
			if o.Code != cand.Code {
				others = append(others, o)
				labels = append(labels, fmt.Sprintf("%s (%s)", o.Name, o.Code))
			}
		}
		j, err := e.choose("¿Con quién querés comparar?", labels)
		if err != nil {
			return err
		}
		cmp, err := corpus.Compare(kb, cand.Code, others[j].Code)
		if err != nil {
			return err
		}
		e.printer.Comparison(cmp)
	case 1:
		term, err := e.ask("¿Qué tema te interesa? ")
		if err != nil {
			return err
		}
		finder, err := e.ws.NewFinder()
		if err != nil {
			return err
		}
		defer finder.Release()
		hits, err := finder.Find(c.Context, corpus.Query{Term: term, CandidateCode: cand.Code})
		if err != nil {
			return fmt.Errorf("searching transcripts: %w", err)
		}
		e.printer.SearchResults(term, hits)
	case 2:
		e.printer.Topics(kb, 15)
	}

	e.printer.Notice("\n¡Gracias por informarte! Tu voto cuenta. 🗳️\n")
	return nil
}
