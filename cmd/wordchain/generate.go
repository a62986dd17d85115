package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CTAG07/wordchain/pkg/markov"
	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v3"
)

func generateCmd() *cli.Command {
	var (
		seed     string
		count    int64
		randSeed int64
		outPath  string
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Train on a corpus and print generated text",
		Flags: append(corpusSourceFlags(),
			&cli.StringFlag{
				Name:        "seed",
				Aliases:     []string{"s"},
				Usage:       "first token of the output; must have a follower in the corpus",
				Destination: &seed,
			},
			&cli.Int64Flag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "maximum number of tokens to generate",
				Value:       markov.DefaultCount,
				Destination: &count,
			},
			&cli.Int64Flag{
				Name:        "rand-seed",
				Usage:       "seed the random source for reproducible output",
				Destination: &randSeed,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "write the output to a file instead of stdout",
				Destination: &outPath,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd)
			if err != nil {
				return exitErr(err)
			}
			if !cmd.IsSet("count") {
				count = int64(e.config.DefaultCount)
			}

			text, err := e.readCorpus(ctx)
			if err != nil {
				return exitErr(err)
			}

			var opts []markov.Option
			if cmd.IsSet("rand-seed") {
				opts = append(opts, markov.WithSource(markov.NewSeededSource(uint64(randSeed))))
			}
			model := markov.New(text, opts...)
			model.SetLogger(e.logger)
			model.Train()

			output, err := model.Generate(markov.WithSeed(seed), markov.WithCount(int(count)))
			if err != nil {
				return exitErr(err)
			}

			if outPath != "" {
				if err = atomic.WriteFile(outPath, strings.NewReader(output+"\n")); err != nil {
					return exitErr(fmt.Errorf("failed to write output file: %w", err))
				}
				e.logger.Info("Output written", slog.String("path", outPath))
				return nil
			}
			_, err = fmt.Fprintln(e.out, output)
			return err
		},
	}
}
