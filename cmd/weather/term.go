package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	termenv "github.com/muesli/termenv"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Term reads user input and renders markdown responses, falling back to
// plain output when stdout is not a terminal
type Term struct {
	r        *bufio.Reader
	w        io.Writer
	isTerm   bool
	renderer *glamour.TermRenderer
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewTerm(w io.Writer) (*Term, error) {
	t := &Term{
		r: bufio.NewReader(os.Stdin),
		w: w,
	}

	// Markdown rendering is only used on a real terminal
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.isTerm = true

		stylePath := "dark"
		if !termenv.HasDarkBackground() {
			stylePath = "light"
		}
		width, _, err := term.GetSize(int(f.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(stylePath),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return nil, err
		}
		t.renderer = renderer
	}

	return t, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ReadLine prompts for a line of input. Returns io.EOF at end of input.
func (t *Term) ReadLine(prompt string) (string, error) {
	if t.isTerm {
		fmt.Fprint(t.w, prompt)
	}
	line, err := t.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Println writes a line of plain output
func (t *Term) Println(v ...any) {
	fmt.Fprintln(t.w, v...)
}

// Printf writes formatted plain output
func (t *Term) Printf(format string, v ...any) {
	fmt.Fprintf(t.w, format, v...)
}

// RenderMarkdown writes markdown, rendered for the terminal when
// possible
func (t *Term) RenderMarkdown(text string) {
	if t.renderer != nil {
		if rendered, err := t.renderer.Render(text); err == nil {
			fmt.Fprint(t.w, rendered)
			return
		}
	}
	fmt.Fprintln(t.w, text)
}
