package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"TechSentinel/internal/analysis"
	"TechSentinel/internal/collector"
	"TechSentinel/internal/logger"
	"TechSentinel/internal/notifier"
)

// exitInputError is returned when the price series itself was rejected.
const exitInputError = 2

var stripTags = strings.NewReplacer("<b>", "", "</b>", "")

func analyzeAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		log, err := logger.New(cmd.String("log-level"), true)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		format := cmd.String("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("unsupported format %q", format)
		}

		var fetcher collector.Fetcher
		switch {
		case cmd.String("csv-dir") != "":
			fetcher = &collector.CSVFetcher{Dir: cmd.String("csv-dir")}
		case cmd.String("base-url") != "":
			fetcher = collector.NewRESTFetcher(cmd.String("base-url"), cmd.String("api-key"), cmd.String("proxy"))
		default:
			fetcher = collector.NewYahooFetcher(cmd.String("proxy"), 60)
		}

		snap, err := collector.NewCollector(fetcher, log).Collect(ctx, cmd.String("ticker"), cmd.String("period"))
		if err != nil {
			if analysis.IsInputError(err) {
				return cli.Exit(err.Error(), exitInputError)
			}
			return err
		}
		log.Debug("snapshot ready", zap.String("symbol", snap.Symbol))

		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(snap.Flatten())
		default:
			_, err := fmt.Fprintln(out, stripTags.Replace(notifier.FormatSummary(snap)))
			return err
		}
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Compute technical indicators, trend and signal for one ticker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "Stock ticker symbol",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "period",
				Aliases: []string{"p"},
				Usage:   "Lookback: 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd or max",
				Value:   collector.DefaultPeriod,
			},
			&cli.StringFlag{
				Name:  "csv-dir",
				Usage: "Read bars from `DIR`/<TICKER>.csv instead of the network",
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Bars API base URL",
				Sources: cli.EnvVars("BARS_API_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Bars API key",
				Sources: cli.EnvVars("BARS_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "proxy",
				Usage:   "HTTP proxy URL",
				Sources: cli.EnvVars("HTTPS_PROXY"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text or json",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level",
				Value: "warn",
			},
		},
		Action: analyzeAction(out),
		// main decides the exit code.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
