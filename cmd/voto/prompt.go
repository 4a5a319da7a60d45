package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errNoInput is returned when the input ends before a prompt is answered.
var errNoInput = errors.New("no input")

// ask prints label and reads one trimmed line. A final line without a newline
// still counts; an exhausted input yields errNoInput.
func (e *env) ask(label string) (string, error) {
	fmt.Fprint(e.printer.Writer(), label)
	line, err := e.input.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", errNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// choose shows a numbered menu and returns the zero-based index picked.
func (e *env) choose(question string, choices []string) (int, error) {
	e.printer.Menu(question, choices)
	return e.pick(len(choices))
}

// pick reads one choice number for a menu already printed. Invalid answers
// ask again.
func (e *env) pick(choices int) (int, error) {
	for {
		answer, err := e.ask("> ")
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= choices {
			return n - 1, nil
		}
		e.printer.Notice(fmt.Sprintf("Elegí un número entre 1 y %d.", choices))
	}
}

// chooseMany reads comma separated choice numbers and returns their indices
// without repeats. An empty answer selects nothing.
func (e *env) chooseMany(choices int) ([]int, error) {
	for {
		answer, err := e.ask("> ")
		if err != nil {
			return nil, err
		}
		picked, ok := parseChoices(answer, choices)
		if ok {
			return picked, nil
		}
		e.printer.Notice(fmt.Sprintf("Usá números entre 1 y %d separados por coma.", choices))
	}
}

func parseChoices(answer string, choices int) ([]int, bool) {
	var picked []int
	seen := make(map[int]bool)
	for _, field := range strings.FieldsFunc(answer, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > choices {
			return nil, false
		}
		if !seen[n] {
			seen[n] = true
			picked = append(picked, n-1)
		}
	}
	return picked, true
}
