package ports

import (
	"context"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
)

type CommitService interface {
	// Commit asks for the header and hands it to the commit sink, returning the header.
	Commit(ctx context.Context, opts models.CommitOptions) (string, error)
	// Preview asks for the header without committing.
	Preview(ctx context.Context, opts models.CommitOptions) (string, error)
}
