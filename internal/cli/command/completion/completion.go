package completion

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/urfave/cli/v3"
)

// Both scripts ask the binary itself for candidates through
// --generate-shell-completion, passing the words typed before the cursor.
const bashCompletionScript = `#! /bin/bash

_cz_jira_complete() {
  local cur words
  COMPREPLY=()
  cur="${COMP_WORDS[COMP_CWORD]}"
  words=("${COMP_WORDS[@]:0:$COMP_CWORD}")
  COMPREPLY=( $(compgen -W "$("${words[@]}" --generate-shell-completion)" -- "${cur}") )
}

complete -o bashdefault -o default -F _cz_jira_complete cz-jira
`

const zshCompletionScript = `#compdef cz-jira

_cz_jira() {
  local -a candidates
  candidates=("${(@f)$("${(@)words[1,$CURRENT-1]}" --generate-shell-completion)}")
  _describe 'cz-jira' candidates
}

compdef _cz_jira cz-jira
`

type CompletionCommandFactory struct {
	out io.Writer
}

func NewCompletionCommandFactory() *CompletionCommandFactory {
	return &CompletionCommandFactory{out: os.Stdout}
}

func (f *CompletionCommandFactory) CreateCommand(t *i18n.Translations, _ models.CommitOptions) *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: t.GetMessage("completion_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.scriptCommand("bash", t.GetMessage("completion_bash_usage", 0, nil), bashCompletionScript),
			f.scriptCommand("zsh", t.GetMessage("completion_zsh_usage", 0, nil), zshCompletionScript),
		},
	}
}

func (f *CompletionCommandFactory) scriptCommand(shell, usage, script string) *cli.Command {
	return &cli.Command{
		Name:  shell,
		Usage: usage,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprint(f.out, script)
			return err
		},
	}
}
