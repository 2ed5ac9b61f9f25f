// Package prompts asks line-based questions on a terminal. Questions go to
// the prompter's output (stderr for the CLI) so stdout stays clean for
// command results.
package prompts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt prints message and returns the next line without its line ending.
// io.EOF is returned once input is exhausted and nothing was typed.
func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprint(p.out, message)
	input, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}

// Confirm asks a yes/no question, defaulting to no. It keeps asking until it
// gets an answer it understands; end of input counts as no.
func (p *Prompter) Confirm(question string) bool {
	for {
		answer, err := p.Prompt(question + " (y/N) ")
		if err != nil {
			fmt.Fprintln(p.out)
			return false
		}
		if yes, ok := parseAnswer(strings.ToLower(strings.TrimSpace(answer)), false); ok {
			return yes
		}
	}
}

// Choose lists options numbered from 1 and returns the index of the chosen
// one. ok is false when the operator enters nothing or input ends.
func (p *Prompter) Choose(message string, options []string) (idx int, ok bool) {
	for i, o := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, o)
	}
	for {
		answer, err := p.Prompt(message)
		if err != nil {
			return 0, false
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n - 1, true
		}
	}
}
