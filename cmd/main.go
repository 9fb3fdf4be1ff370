package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	commitcmd "github.com/Tomas-vilte/cz-jira-keys/internal/cli/command/commit"
	"github.com/Tomas-vilte/cz-jira-keys/internal/cli/command/completion"
	configcmd "github.com/Tomas-vilte/cz-jira-keys/internal/cli/command/config"
	"github.com/Tomas-vilte/cz-jira-keys/internal/cli/command/types"
	"github.com/Tomas-vilte/cz-jira-keys/internal/cli/registry"
	cfg "github.com/Tomas-vilte/cz-jira-keys/internal/config"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/Tomas-vilte/cz-jira-keys/internal/formatter"
	"github.com/Tomas-vilte/cz-jira-keys/internal/git"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/Tomas-vilte/cz-jira-keys/internal/logger"
	"github.com/Tomas-vilte/cz-jira-keys/internal/services"
	"github.com/Tomas-vilte/cz-jira-keys/internal/ui"
	"github.com/Tomas-vilte/cz-jira-keys/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.Initialize(false, false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, translations, err := initializeApp()
	if err != nil {
		if translations == nil {
			log.Fatalf("Error starting cz-jira: %v", err)
		}
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		if errors.Is(err, domainErrors.ErrPromptInterrupted) {
			ui.PrintWarning(os.Stderr, translations.GetMessage("commit_aborted", 0, nil))
			os.Exit(130)
		}
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	opts, err := cfg.LoadOptions("")
	if err != nil {
		translations, _ := i18n.NewTranslations(cfg.DefaultLanguage, "")
		return nil, translations, err
	}

	translations, err := i18n.NewTranslations(opts.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("loading translations: %w", err)
	}

	resolver := cfg.NewResolver()
	gitService := git.NewGitService("")
	prompter := ui.NewTerminalPrompter(translations)
	commitService := services.NewCommitService(formatter.NewFormatter(resolver, translations), prompter, gitService)

	registerCommand := registry.NewRegistry(opts, translations)

	if err := registerCommand.Register("commit", commitcmd.NewCommitCommandFactory(commitService, cfg.LoadOptions)); err != nil {
		return nil, translations, err
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory(resolver, gitService)); err != nil {
		return nil, translations, err
	}

	if err := registerCommand.Register("types", types.NewTypesCommandFactory()); err != nil {
		return nil, translations, err
	}

	if err := registerCommand.Register("completion", completion.NewCompletionCommandFactory()); err != nil {
		return nil, translations, err
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "cz-jira",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
