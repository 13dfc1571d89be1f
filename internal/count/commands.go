package count

import (
	"github.com/dtnitsch/letter-frequency/models"
	"github.com/urfave/cli/v2"
)

// Command returns the "count" subcommand.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "Count letter frequencies across files, URLs or stdin",
		ArgsUsage: "[SOURCE...]  (file path, http(s) URL, or - for stdin; default -)",
		Action:    CountAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file; flags override its values",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "number of concurrent workers (default: number of CPUs)",
			},
			&cli.IntFlag{
				Name:  "top",
				Value: models.DefaultTop,
				Usage: "number of letters in the ranked lists (0 = all)",
			},
			&cli.StringFlag{
				Name:  "input-format",
				Value: string(models.InputFormatText),
				Usage: "how sources are read: text, html or article",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: models.DefaultOutputFormat,
				Usage: "report format: yaml or json",
			},
			&cli.BoolFlag{
				Name:  "detect-language",
				Usage: "guess the language of the combined input",
			},
			&cli.StringSliceFlag{
				Name:  "languages",
				Usage: "ISO 639-1 codes considered by --detect-language",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log per-worker progress",
			},
		},
	}
}

// PartitionCommand returns the "partition" subcommand.
func PartitionCommand() *cli.Command {
	return &cli.Command{
		Name:   "partition",
		Usage:  "Print the line ranges each worker would scan",
		Action: PartitionAction,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "total",
				Usage:    "number of input lines",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "workers",
				Aliases:  []string{"w"},
				Usage:    "number of workers",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Value: models.DefaultOutputFormat,
				Usage: "output format: yaml or json",
			},
		},
	}
}

// NewApp assembles the letterfreq application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "letterfreq",
		Usage: "Concurrent letter frequency counter",
		Commands: []*cli.Command{
			Command(),
			PartitionCommand(),
		},
	}
}
