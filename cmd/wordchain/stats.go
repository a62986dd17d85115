package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/CTAG07/wordchain/pkg/markov"
	"github.com/urfave/cli/v3"
)

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Train on a corpus and print transition table statistics",
		Flags: corpusSourceFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd)
			if err != nil {
				return exitErr(err)
			}
			text, err := e.readCorpus(ctx)
			if err != nil {
				return exitErr(err)
			}

			model := markov.New(text)
			model.SetLogger(e.logger)
			model.Train()
			stats := model.Stats()

			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(tw, "tokens\t%d\n", stats.Tokens)
			_, _ = fmt.Fprintf(tw, "vocabulary\t%d\n", stats.Vocabulary)
			_, _ = fmt.Fprintf(tw, "keys\t%d\n", stats.Keys)
			_, _ = fmt.Fprintf(tw, "transitions\t%d\n", stats.Transitions)
			_, _ = fmt.Fprintf(tw, "terminal tokens\t%d\n", stats.TerminalTokens)
			return tw.Flush()
		},
	}
}
