// Package prompt implements the small amount of interactive plumbing the CLI
// needs: ask a question, validate the answer, re-ask until it passes. It is
// decoupled from the terminal; any reader/writer pair works.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads operator answers line by line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter over the given input and output streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prints the question and returns the trimmed answer. Returns io.EOF
// when the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskUntil re-asks the question until validate accepts the answer. Each
// rejection is printed before the question is asked again. There is no
// attempt limit; the operator ends the run by closing the input.
func (p *Prompter) AskUntil(question string, validate func(string) error) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if err := validate(answer); err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		return answer, nil
	}
}

// Select prints numbered options and returns the index of the chosen one.
func (p *Prompter) Select(question string, options []string) (int, error) {
	fmt.Fprintf(p.out, "%s\n", question)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	var choice int
	_, err := p.AskUntil(fmt.Sprintf("Choice [1-%d]", len(options)), func(answer string) error {
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			return fmt.Errorf("enter a number between 1 and %d", len(options))
		}
		choice = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return choice - 1, nil
}

// Confirm asks a yes/no question. Only "y" and "yes" count as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.AskUntil(question+" [y/n]", func(answer string) error {
		switch strings.ToLower(answer) {
		case "y", "yes", "n", "no":
			return nil
		default:
			return fmt.Errorf("answer y or n")
		}
	})
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
