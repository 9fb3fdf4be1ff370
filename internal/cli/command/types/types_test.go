package types

import (
	"bytes"
	"context"
	"testing"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestTypesCommand(t *testing.T) {
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	factory := NewTypesCommandFactory()
	out := &bytes.Buffer{}
	factory.out = out
	opts := models.CommitOptions{
		Types: models.TypeCatalog{
			{Key: "feat", Description: "A new feature"},
			{Key: "fix", Description: "A bug fix"},
		},
		DefaultType: "fix",
	}

	app := &cli.Command{Commands: []*cli.Command{factory.CreateCommand(translations, opts)}}
	err = app.Run(context.Background(), []string{"cz-jira", "types"})

	require.NoError(t, err)
	assert.Equal(t, "  feat: A new feature\n* fix:  A bug fix\n", out.String())
}
