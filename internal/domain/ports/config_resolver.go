package ports

import (
	"context"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
)

type ProjectConfigResolver interface {
	// Resolve returns nil, nil when no project config exists.
	Resolve(ctx context.Context, configName, startDir string) (*models.ProjectConfig, error)
}
