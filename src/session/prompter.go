package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"gca/src/ui"
)

// Prompter reads one line of input per question. Everything it prints goes
// to the same writer as the rest of the session.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints label and returns the trimmed reply. io.EOF is returned only
// when input ended before anything was typed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose asks until the reply is a number from 1 to n or one of letters. It
// returns the zero-based index, or -1 and the lower-cased letter.
func (p *Prompter) Choose(label string, n int, letters ...string) (int, string, error) {
	for {
		reply, err := p.Line(label)
		if err != nil {
			return -1, "", err
		}
		reply = strings.ToLower(reply)
		for _, letter := range letters {
			if reply == letter {
				return -1, letter, nil
			}
		}
		if idx, err := strconv.Atoi(reply); err == nil && idx >= 1 && idx <= n {
			return idx - 1, "", nil
		}
		ui.Warning(p.w, "Invalid option, please try again")
	}
}

// Confirm asks a y/n question until it gets an answer.
func (p *Prompter) Confirm(question string) (bool, error) {
	label := fmt.Sprintf("%s %s (y/n): ", color.YellowString("?"), question)
	for {
		reply, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(reply) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		ui.Warning(p.w, "Invalid option, please answer y or n")
	}
}

// Menu prints numbered options under title.
func (p *Prompter) Menu(title string, options []string) {
	fmt.Fprintln(p.w)
	if title != "" {
		ui.Heading(p.w, "%s", title)
	}
	for i, option := range options {
		fmt.Fprintf(p.w, "%s: %s\n", color.CyanString("%d", i+1), option)
	}
}
