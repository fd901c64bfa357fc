package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is the line-based interactive surface: prompts on out, answers from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wraps the given reader and writer.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next input line with surrounding
// whitespace removed. Lines have no length limit, and a final line without a
// newline is still returned. It returns io.EOF once input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("console: read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Ask keeps prompting until a non-empty answer is given.
func (c *Console) Ask(prompt string) (string, error) {
	for {
		answer, err := c.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		c.Println("Input cannot be empty. Please try again.")
	}
}

// Println writes a line of user-facing text.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted user-facing text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
