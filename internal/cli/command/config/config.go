package config

import (
	"context"
	"io"
	"os"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/ports"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/urfave/cli/v3"
)

// repoLocator finds the repository the command runs in.
type repoLocator interface {
	RepoRoot(ctx context.Context) (string, error)
}

type ConfigCommandFactory struct {
	resolver ports.ProjectConfigResolver
	repo     repoLocator
	out      io.Writer
}

func NewConfigCommandFactory(resolver ports.ProjectConfigResolver, repo repoLocator) *ConfigCommandFactory {
	return &ConfigCommandFactory{
		resolver: resolver,
		repo:     repo,
		out:      os.Stdout,
	}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, opts models.CommitOptions) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, opts),
		},
	}
}
