package services

import (
	"context"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockPrompter struct {
		mock.Mock
	}

	MockCommitSink struct {
		mock.Mock
	}

	MockResolver struct {
		mock.Mock
	}
)

func (m *MockPrompter) Prompt(ctx context.Context, questions []models.Question) (models.Answers, error) {
	args := m.Called(ctx, questions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Answers), args.Error(1)
}

func (m *MockCommitSink) Commit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockResolver) Resolve(ctx context.Context, configName, startDir string) (*models.ProjectConfig, error) {
	args := m.Called(ctx, configName, startDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectConfig), args.Error(1)
}
