package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nboran/wealth/agent"
	"google.golang.org/genai"
)

// assistCmd starts the interactive AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI assistant" }
func (*assistCmd) Usage() string {
	return `wts assist [<question>...]

  Starts an interactive session with the AI assistant. A question given on
  the command line is asked first, then the session turns interactive.
  Requires a Gemini API key in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst()
	planner := agent.NewPlanner()
	economist := agent.NewEconomist()
	a := agent.New(os.Stdout, os.Stdin, analyst, planner, economist)

	question := strings.Join(f.Args(), " ")
	if err := a.Run(ctx, client, question); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
