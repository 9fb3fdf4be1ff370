package ports

import (
	"context"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
)

// Prompter asks the questions in order and returns the accepted answers.
// It returns an error instead of partial answers when the user aborts.
type Prompter interface {
	Prompt(ctx context.Context, questions []models.Question) (models.Answers, error)
}
