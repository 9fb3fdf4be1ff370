package commit

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Tomas-vilte/cz-jira-keys/internal/cli/completion_helper"
	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/ports"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/Tomas-vilte/cz-jira-keys/internal/logger"
	"github.com/Tomas-vilte/cz-jira-keys/internal/ui"
	"github.com/urfave/cli/v3"
)

// OptionsLoader reads the options file at path, layered over defaults and
// environment variables.
type OptionsLoader func(path string) (models.CommitOptions, error)

type CommitCommandFactory struct {
	commitService ports.CommitService
	loadOptions   OptionsLoader
	out           io.Writer
	errOut        io.Writer
}

func NewCommitCommandFactory(commitService ports.CommitService, loadOptions OptionsLoader) *CommitCommandFactory {
	return &CommitCommandFactory{
		commitService: commitService,
		loadOptions:   loadOptions,
		out:           os.Stdout,
		errOut:        os.Stderr,
	}
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations, opts models.CommitOptions) *cli.Command {
	return &cli.Command{
		Name:          "commit",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("commit_command_usage", 0, nil),
		Flags:         f.createFlags(t, opts),
		Action:        f.createAction(t, opts),
		ShellComplete: completion_helper.FlagComplete(f.out),
	}
}

func (f *CommitCommandFactory) createFlags(t *i18n.Translations, opts models.CommitOptions) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   t.GetMessage("commit_dry_run_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "options",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("commit_options_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "config-name",
			Usage: t.GetMessage("commit_config_name_flag_usage", 0, nil),
			Value: opts.ConfigName,
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("lang_flag_usage", 0, nil),
			Value:   opts.Language,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("debug_flag_usage", 0, nil),
		},
	}
}

func (f *CommitCommandFactory) createAction(t *i18n.Translations, base models.CommitOptions) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		if command.Bool("debug") {
			ctx = logger.WithLogger(ctx, logger.New(f.errOut, true, false))
		}

		opts := base
		if path := command.String("options"); path != "" {
			loaded, err := f.loadOptions(path)
			if err != nil {
				return err
			}
			opts = loaded
		}
		if command.IsSet("config-name") {
			opts.ConfigName = command.String("config-name")
		}
		if command.IsSet("lang") {
			opts.Language = command.String("lang")
		}
		if err := t.SetLanguage(opts.Language); err != nil {
			return err
		}

		if command.Bool("dry-run") {
			header, err := f.commitService.Preview(ctx, opts)
			if err != nil {
				return err
			}
			ui.PrintInfo(f.out, t.GetMessage("commit_preview", 0, nil))
			_, _ = fmt.Fprintln(f.out, header)
			return nil
		}

		header, err := f.commitService.Commit(ctx, opts)
		if err != nil {
			return err
		}

		ui.PrintSuccess(f.out, t.GetMessage("commit_successful", 0, map[string]interface{}{
			"Header": header,
		}))
		return nil
	}
}
