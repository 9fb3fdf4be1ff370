package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/Tomas-vilte/cz-jira-keys/internal/logger"
)

var _ ports.CommitSink = (*GitService)(nil)

// GitService runs git in dir, or in the working directory when dir is empty.
type GitService struct {
	dir string
}

func NewGitService(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	return cmd
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := s.command(ctx, "diff", "--cached", "--quiet")
	err := cmd.Run()

	// exit status 1 means the index differs from HEAD
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

// Commit records the staged changes with message.
func (s *GitService) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return domainErrors.ErrEmptyMessage
	}

	if !s.HasStagedChanges(ctx) {
		return domainErrors.ErrNoStagedChanges
	}

	cmd := s.command(ctx, "commit", "-m", message)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return domainErrors.ErrCreateCommit.
			WithError(err).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}

	logger.Info(ctx, "commit created", "header", message)
	return nil
}

// RepoRoot returns the top level directory of the repository.
func (s *GitService) RepoRoot(ctx context.Context) (string, error) {
	output, err := s.command(ctx, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", domainErrors.NewAppError(domainErrors.TypeGit, "Not in a git repository", err).
			WithSuggestion("Initialize a git repository: git init")
	}
	return strings.TrimSpace(string(output)), nil
}
