package types

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/formatter"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/urfave/cli/v3"
)

type TypesCommandFactory struct {
	out io.Writer
}

func NewTypesCommandFactory() *TypesCommandFactory {
	return &TypesCommandFactory{out: os.Stdout}
}

func (f *TypesCommandFactory) CreateCommand(t *i18n.Translations, opts models.CommitOptions) *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: t.GetMessage("types_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			for _, choice := range formatter.TypeChoices(opts.Types) {
				marker := "  "
				if choice.Value == opts.DefaultType {
					marker = "* "
				}
				_, _ = fmt.Fprintln(f.out, marker+choice.Name)
			}
			return nil
		},
	}
}
