package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/swr-analysis/swr"
	"github.com/swr-analysis/swr/agent"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `swa assist [question]

  Starts a chat with an assistant able to run simulations. The Gemini API key is
  read from GEMINI_API_KEY (or GOOGLE_API_KEY), which can be set in .env.

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var initialPrompt []string
	if f.NArg() > 0 {
		initialPrompt = append(initialPrompt, strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(newClient(), swr.DefaultQuery(), *currency)
	a := agent.New(stdout, os.Stdin, agent.NewResearcher(), analyst)
	if err := a.Run(ctx, client, initialPrompt...); err != nil {
		fmt.Fprintln(stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
