package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/Tomas-vilte/cz-jira-keys/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, opts models.CommitOptions) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if root, err := c.repo.RepoRoot(ctx); err == nil {
				_, _ = fmt.Fprintln(c.out, t.GetMessage("config_repo_root", 0, map[string]interface{}{"Path": root}))
			}

			prefix := opts.JiraKey
			if prefix == "" {
				cfg, err := c.resolver.Resolve(ctx, opts.ConfigName, "")
				if err != nil {
					return err
				}

				if cfg != nil {
					_, _ = fmt.Fprintln(c.out, t.GetMessage("config_source_file", 0, map[string]interface{}{"Path": cfg.Source}))
					prefix = cfg.JiraKey
				} else {
					ui.PrintInfo(c.out, t.GetMessage("config_not_found", 0, nil))
				}
			}
			if prefix == "" {
				prefix = opts.DefaultJiraKey
			}

			_, _ = fmt.Fprintln(c.out, t.GetMessage("config_prefix", 0, map[string]interface{}{"Prefix": prefix}))
			_, _ = fmt.Fprintln(c.out, t.GetMessage("config_language", 0, map[string]interface{}{"Lang": opts.Language}))
			return nil
		},
	}
}
