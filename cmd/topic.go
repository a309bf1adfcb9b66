package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nboran/wealth/docs"
)

// topicCmd prints the embedded user manual, one topic at a time.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a page of the user manual" }
func (*topicCmd) Usage() string {
	return `wts topic [<name>...]

  Prints the requested manual topics, or the table of contents when called
  without arguments. Use '*' to print the whole manual.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	doc, err := docs.GetTopics(names...)
	if err != nil {
		all, _ := docs.GetAllTopics()
		fmt.Fprintf(os.Stderr, "Error: %v\nAvailable topics: %s\n", err, strings.Join(all, ", "))
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
