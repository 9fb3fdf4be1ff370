package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/Tomas-vilte/cz-jira-keys/internal/formatter"
	"github.com/Tomas-vilte/cz-jira-keys/internal/logger"
)

var _ ports.CommitService = (*CommitService)(nil)

type CommitService struct {
	formatter *formatter.Formatter
	prompter  ports.Prompter
	sink      ports.CommitSink
}

func NewCommitService(f *formatter.Formatter, prompter ports.Prompter, sink ports.CommitSink) *CommitService {
	return &CommitService{
		formatter: f,
		prompter:  prompter,
		sink:      sink,
	}
}

// Commit asks for the header and hands it to the sink. Nothing reaches the
// sink when the prompt is interrupted.
func (s *CommitService) Commit(ctx context.Context, opts models.CommitOptions) (string, error) {
	header, err := s.Preview(ctx, opts)
	if err != nil {
		return "", err
	}

	if err := s.sink.Commit(ctx, header); err != nil {
		return "", err
	}
	return header, nil
}

func (s *CommitService) Preview(ctx context.Context, opts models.CommitOptions) (string, error) {
	p, err := s.formatter.Build(ctx, opts)
	if err != nil {
		return "", err
	}

	answers, err := s.prompter.Prompt(ctx, p.Questions())
	if err != nil {
		if errors.Is(err, domainErrors.ErrPromptInterrupted) || errors.Is(err, context.Canceled) {
			logger.Debug(ctx, "prompt interrupted")
			return "", domainErrors.ErrPromptInterrupted
		}
		return "", fmt.Errorf("asking commit questions: %w", err)
	}

	header := p.Render(answers)
	logger.Debug(ctx, "commit header rendered", "header", header)
	return header, nil
}
