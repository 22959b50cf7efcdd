package main

import (
	"context"
	"log"
	"os"

	"github.com/gitbrief/gitbrief/internal/config"
	"github.com/gitbrief/gitbrief/internal/i18n"
	"github.com/gitbrief/gitbrief/internal/infrastructure/ai/gemini"
	"github.com/gitbrief/gitbrief/internal/infrastructure/notify/discord"
	"github.com/gitbrief/gitbrief/internal/infrastructure/vcs/github"
	"github.com/gitbrief/gitbrief/internal/logger"
	"github.com/gitbrief/gitbrief/internal/services"
	"github.com/gitbrief/gitbrief/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	trans, err := i18n.NewTranslations(config.DefaultLanguage(), "")
	if err != nil {
		return nil, err
	}

	return &cli.Command{
		Name:        "gitbrief",
		Usage:       trans.GetMessage("app_usage", 0, nil),
		Description: trans.GetMessage("app_description", 0, nil),
		Version:     version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show progress logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "show debug logging with source locations",
			},
		},
		Action: run,
	}, nil
}

// run executes the single report cycle. Once bootstrap succeeded the exit
// code is always zero: run failures are logged and reported to the webhook
// best effort, matching a scheduled job that should not retry on its own.
func run(ctx context.Context, cmd *cli.Command) error {
	logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	trans, err := i18n.NewTranslations(cfg.Language, "")
	if err != nil {
		return err
	}

	fetcher := github.NewClient(cfg.GitHubUser, cfg.GitHubToken)

	generator, err := gemini.NewDigestService(ctx, cfg)
	if err != nil {
		return err
	}

	notifier := discord.NewClient(cfg.DiscordWebhookURL, trans)

	report := services.NewReportService(fetcher, generator, notifier, trans, cfg.Lookback())
	return report.RunAndReport(ctx)
}
