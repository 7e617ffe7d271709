package main

import (
	"context"
	"fmt"
	"os"

	"github.com/healang/healex/internal/cli"
	"github.com/healang/healex/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "healex",
		Usage:   "Lexical analyzer and source scanner for the Hea language",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "scan",
				Usage:     "Scan a source tree and record token statistics",
				ArgsUsage: "[PATH]",
				Action:    scanCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "scan-file",
						Usage: "Scan data output path",
					},
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum concurrent file scans (1 = sequential)",
					},
					&urfavecli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable debug output",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Generate a report from saved scan data",
				Action: reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text, json, or html)",
						Value: "text",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.StringFlag{
						Name:  "scan-file",
						Usage: "Scan data input path",
						Value: ".healex/scan.json",
					},
				},
			},
			{
				Name:      "dump",
				Usage:     "Tokenize a single file and print the token stream",
				ArgsUsage: "FILE",
				Action:    dumpCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.BoolFlag{
						Name:  "json",
						Usage: "Emit tokens as JSON",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
				},
			},
			{
				Name:   "repl",
				Usage:  "Tokenize entered lines interactively",
				Action: replCommand,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scanCommand handles the 'healex scan' command
func scanCommand(ctx context.Context, cmd *urfavecli.Command) error {
	// Load configuration
	config := &cli.DefaultConfig

	// Apply flags
	scanFile := cmd.String("scan-file")
	parallel := cmd.Int("parallel")
	verbose := cmd.Bool("verbose")
	cli.ApplyFlagsToConfig(config, scanFile, "", "", parallel, verbose)

	// Validate configuration
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger.SetVerbose(config.Verbose)

	// Search path (first non-flag argument, default to current directory)
	config.SearchPath = cmd.Args().First()
	if config.SearchPath == "" {
		config.SearchPath = "."
	}

	// Scan sources
	exitCode, err := cli.Scan(ctx, config)
	if err != nil {
		return err
	}

	// Exit with appropriate code
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	return nil
}

// reportCommand handles the 'healex report' command
func reportCommand(ctx context.Context, cmd *urfavecli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")
	scanFile := cmd.String("scan-file")

	return cli.Report(scanFile, format, output)
}

// dumpCommand handles the 'healex dump' command
func dumpCommand(ctx context.Context, cmd *urfavecli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		path = "-"
	}

	return cli.Dump(path, cmd.Bool("json"), cmd.String("output"))
}

// replCommand handles the 'healex repl' command
func replCommand(ctx context.Context, cmd *urfavecli.Command) error {
	return cli.Repl()
}
