package main

import "github.com/urfave/cli/v3"

var (
	configPath string
	logLevel   string
	dbPath     string

	corpusFile string
	corpusName string
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to the JSON config file, created with defaults if missing",
			Value:       "./wordchain.json",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error), overrides the config file",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "db",
			Usage:       "path to the corpus database, overrides the config file",
			Destination: &dbPath,
		},
	}
}

func corpusSourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "read the corpus from a file (\"-\" for stdin)",
			Destination: &corpusFile,
		},
		&cli.StringFlag{
			Name:        "corpus",
			Aliases:     []string{"c"},
			Usage:       "use a corpus stored in the database",
			Destination: &corpusName,
		},
	}
}
