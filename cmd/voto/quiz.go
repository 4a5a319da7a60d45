package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/quiz"
	"github.com/poiesic/voto/spectrum"
)

func (d *deps) quizCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}
	engine, err := e.ws.NewQuizEngine()
	if err != nil {
		return err
	}

	var answers quiz.Answers
	if c.IsSet("answers") {
		answers, err = quiz.ParseAnswers(c.String("answers"))
		if err != nil {
			return err
		}
	} else {
		e.printer.QuizIntro()
		answers, err = e.questionnaire()
		if err != nil {
			return err
		}
	}

	ranking, err := engine.Rank(answers, kb)
	if err != nil {
		return fmt.Errorf("scoring answers: %w", err)
	}
	e.printer.QuizResults(ranking, answers)
	return nil
}

// questionnaire asks every quiz question in order.
func (e *env) questionnaire() (quiz.Answers, error) {
	var a quiz.Answers
	for i, q := range quiz.Questions {
		e.printer.Question(i+1, q)

		var value string
		if q.Multi {
			picked, err := e.chooseMany(len(q.Choices))
			if err != nil {
				return quiz.Answers{}, err
			}
			values := make([]string, len(picked))
			for j, idx := range picked {
				values[j] = q.Choices[idx].Value
			}
			value = strings.Join(values, "+")
		} else {
			idx, err := e.pick(len(q.Choices))
			if err != nil {
				return quiz.Answers{}, err
			}
			value = q.Choices[idx].Value
		}
		if err := a.Set(q.Key, value); err != nil {
			return quiz.Answers{}, err
		}
	}
	return a, nil
}

func (d *deps) spectrumCommand(c *cli.Context) error {
	e, err := d.open(c)
	if err != nil {
		return err
	}
	defer e.Close()

	kb, err := e.ws.Corpus()
	if err != nil {
		return err
	}

	if c.NArg() >= 2 {
		cmp, err := spectrum.Compare(c.Args().Get(0), c.Args().Get(1))
		if err != nil {
			var unknown *core.UnknownCodeError
			if errors.As(err, &unknown) {
				e.printer.PartyNotFound()
				return nil
			}
			return err
		}
		e.printer.SpectrumComparison(kb, cmp)
		return nil
	}
	e.printer.Spectrum(kb, c.Bool("detalle"))
	return nil
}
