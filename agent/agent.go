// Package agent implements the interactive AI assistant behind the
// assist command. A facilitator model drives the conversation and
// consults a small team of experts, each a dedicated chat with its own
// tools over the wealth ledger.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
}

// New creates a new Agent writing to w (e.g. os.Stdout) and reading user
// input from r (e.g. os.Stdin). The experts are the team the facilitator
// can consult.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start creates the chat sessions for the facilitator and every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. The prompts are
// played first as if the user had typed them, then input comes from the
// reader until "bye" or EOF.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to wts financial assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)

		var input string
		var err error
		input, prompts, err = a.next(prompts)
		if err == io.EOF {
			return nil // clean exit on Ctrl+D
		}
		if err != nil {
			return err
		}
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, render(content.Parts[0].Text))
	}
}

// next pops the next scripted prompt, echoing it as if typed, or reads one
// line from the user. The returned input is trimmed of whitespace.
func (a *Agent) next(prompts []string) (input string, rest []string, err error) {
	if len(prompts) > 0 {
		input = strings.TrimSpace(prompts[0])
		if input != "" {
			fmt.Fprintln(a.w, input)
		}
		return input, prompts[1:], nil
	}
	line, err := a.r.ReadString('\n')
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(line), nil, nil
}

// render pretty-prints the model's markdown reply for the terminal,
// falling back to the raw text when rendering fails.
func render(markdown string) string {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		return markdown
	}
	return out
}
