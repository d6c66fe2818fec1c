// Package agent implements the swa assistant: a facilitator chatting with the user and
// delegating questions to experts, through Gemini.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent answers questions about withdrawal rates, typed on in or queued by the caller.
type Agent struct {
	out    io.Writer
	in     *bufio.Reader
	queued []string

	Facilitator *Expert
	Experts     []*Expert
}

// New returns an agent over experts. The facilitator routes each question to them.
func New(out io.Writer, in io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		out:         out,
		in:          bufio.NewReader(in),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start opens one chat per expert, then the facilitator's.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("cannot start %s: %w", e.Name, err)
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const (
	prompt = "assist> "
	quit   = "bye"
)

// Run answers questions until the user types bye or closes the input.
// questions are answered first, echoed after the prompt.
func (a *Agent) Run(ctx context.Context, client *genai.Client, questions ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	a.queued = questions

	fmt.Fprintf(a.out, "swa assist: ask about withdrawal rates, %q to leave.\n", quit)
	for {
		question, err := a.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		answer, err := a.Facilitator.Ask(ctx, &genai.Part{Text: question})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, text(answer))
	}
}

// next prompts for the following question, skipping blank ones.
// It returns io.EOF on quit or at the end of the input.
func (a *Agent) next() (string, error) {
	for {
		fmt.Fprint(a.out, prompt)
		var line string
		if len(a.queued) > 0 {
			line, a.queued = a.queued[0], a.queued[1:]
			fmt.Fprintln(a.out, line)
		} else {
			var err error
			if line, err = a.in.ReadString('\n'); err != nil && (line == "" || !errors.Is(err, io.EOF)) {
				return "", err
			}
		}
		switch line = strings.TrimSpace(line); line {
		case "":
		case quit:
			return "", io.EOF
		default:
			return line, nil
		}
	}
}

func text(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
