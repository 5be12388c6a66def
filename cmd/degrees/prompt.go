package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/degrees/movies"
)

// errNoInput is returned when stdin closes before an answer is read.
var errNoInput = errors.New("no input")

// prompter reads line answers from in and writes questions to out.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the trimmed next line.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// choose lists the people sharing a name and asks for an id.
func (p *prompter) choose(name string, candidates []movies.Person) (string, error) {
	fmt.Fprintf(p.out, "Which '%s'?\n", name)
	for _, c := range candidates {
		fmt.Fprintf(p.out, "ID: %s, Name: %s, Birth: %s\n", c.ID, c.Name, c.Birth)
	}
	return p.ask("Intended Person ID: ")
}
