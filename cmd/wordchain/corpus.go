package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"
)

func corpusCmd() *cli.Command {
	return &cli.Command{
		Name:  "corpus",
		Usage: "Manage corpora stored in the database",
		Commands: []*cli.Command{
			corpusAddCmd(),
			corpusListCmd(),
			corpusShowCmd(),
			corpusRemoveCmd(),
		},
	}
}

func corpusAddCmd() *cli.Command {
	var appendText bool

	return &cli.Command{
		Name:      "add",
		Usage:     "Store a corpus under NAME, read from FILE or stdin",
		ArgsUsage: "NAME [FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "append",
				Aliases:     []string{"a"},
				Usage:       "add to the end of an existing corpus instead of replacing it",
				Destination: &appendText,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 || cmd.NArg() > 2 {
				return cli.Exit("error: expected NAME and an optional FILE", 1)
			}
			e, err := setup(cmd)
			if err != nil {
				return exitErr(err)
			}

			var data []byte
			if file := cmd.Args().Get(1); file != "" && file != "-" {
				data, err = os.ReadFile(file)
			} else {
				data, err = io.ReadAll(e.in)
			}
			if err != nil {
				return exitErr(fmt.Errorf("failed to read corpus: %w", err))
			}

			store, closeStore, err := e.openStore()
			if err != nil {
				return exitErr(err)
			}
			defer closeStore()

			name := cmd.Args().Get(0)
			if appendText {
				err = store.Append(ctx, name, string(data))
			} else {
				err = store.Put(ctx, name, string(data))
			}
			if err != nil {
				return exitErr(err)
			}
			return nil
		},
	}
}

func corpusListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List stored corpora",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd)
			if err != nil {
				return exitErr(err)
			}
			store, closeStore, err := e.openStore()
			if err != nil {
				return exitErr(err)
			}
			defer closeStore()

			infos, err := store.List(ctx)
			if err != nil {
				return exitErr(err)
			}
			if len(infos) == 0 {
				e.logger.Info("no corpora stored", "database_path", e.config.DatabasePath)
				return nil
			}

			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tTOKENS\tUPDATED")
			for _, info := range infos {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", info.Name, info.Tokens, info.UpdatedAt.UTC().Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}

func corpusShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a stored corpus",
		ArgsUsage: "NAME",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("error: expected NAME", 1)
			}
			e, err := setup(cmd)
			if err != nil {
				return exitErr(err)
			}
			store, closeStore, err := e.openStore()
			if err != nil {
				return exitErr(err)
			}
			defer closeStore()

			c, err := store.Get(ctx, cmd.Args().First())
			if err != nil {
				return exitErr(err)
			}
			_, err = io.WriteString(e.out, c.Body)
			return err
		},
	}
}

func corpusRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Delete a stored corpus",
		ArgsUsage: "NAME",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("error: expected NAME", 1)
			}
			e, err := setup(cmd)
			if err != nil {
				return exitErr(err)
			}
			store, closeStore, err := e.openStore()
			if err != nil {
				return exitErr(err)
			}
			defer closeStore()

			if err = store.Remove(ctx, cmd.Args().First()); err != nil {
				return exitErr(err)
			}
			return nil
		},
	}
}
