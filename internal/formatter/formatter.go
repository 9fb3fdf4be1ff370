// Package formatter builds the commit header questions and renders the
// answers as a single Jira-keyed header line:
//
//	[<prefix>-<story>][<prefix>-<subtask>] <type> [<scope>]: <subject>
package formatter

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/Tomas-vilte/cz-jira-keys/internal/logger"
)

type Formatter struct {
	resolver ports.ProjectConfigResolver
	t        *i18n.Translations
}

func NewFormatter(resolver ports.ProjectConfigResolver, t *i18n.Translations) *Formatter {
	return &Formatter{
		resolver: resolver,
		t:        t,
	}
}

// Prompter holds the questions for one commit attempt and renders their answers.
type Prompter struct {
	prefix    string
	opts      models.CommitOptions
	questions []models.Question
}

// Build resolves the Jira prefix and prepares the questions. Project config
// errors are returned as is.
func (f *Formatter) Build(ctx context.Context, opts models.CommitOptions) (*Prompter, error) {
	prefix, err := f.ResolvePrefix(ctx, opts)
	if err != nil {
		return nil, err
	}
	ctx = logger.With(ctx, "prefix", prefix)
	logger.Debug(ctx, "building commit prompts", "types", len(opts.Types))

	p := &Prompter{prefix: prefix, opts: opts}
	p.questions = []models.Question{
		f.keyQuestion(models.FieldStoryKey, "prompt_story_key", "validation_story_key_required", "validation_story_key_digits", prefix),
		f.keyQuestion(models.FieldSubtaskKey, "prompt_subtask_key", "validation_subtask_key_required", "validation_subtask_key_digits", prefix),
		f.typeQuestion(opts),
		f.scopeQuestion(opts),
		f.subjectQuestion(p),
	}
	return p, nil
}

// ResolvePrefix picks the fixed JiraKey option, then the project config, then
// DefaultJiraKey.
func (f *Formatter) ResolvePrefix(ctx context.Context, opts models.CommitOptions) (string, error) {
	if opts.JiraKey != "" {
		return opts.JiraKey, nil
	}

	cfg, err := f.resolver.Resolve(ctx, opts.ConfigName, "")
	if err != nil {
		return "", fmt.Errorf("resolving project config: %w", err)
	}
	if cfg != nil && cfg.JiraKey != "" {
		logger.Debug(ctx, "using project jira key", "jira_key", cfg.JiraKey, "path", cfg.Source)
		return cfg.JiraKey, nil
	}
	return opts.DefaultJiraKey, nil
}

func (p *Prompter) Prefix() string {
	return p.prefix
}

func (p *Prompter) Questions() []models.Question {
	return p.questions
}

// Render builds the commit message from the answers. Only the header line
// exists today; empty lines are dropped and the rest joined by a blank line.
func (p *Prompter) Render(answers models.Answers) string {
	return joinLines(p.header(answers))
}

func (p *Prompter) header(answers models.Answers) string {
	return fmt.Sprintf("[%s-%s][%s-%s] %s [%s]: %s",
		p.prefix, answers[models.FieldStoryKey],
		p.prefix, answers[models.FieldSubtaskKey],
		answers[models.FieldType],
		answers[models.FieldScope],
		FilterSubject(answers[models.FieldSubject], p.opts.DisableSubjectLowerCase),
	)
}

func joinLines(lines ...string) string {
	kept := lines[:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n\n")
}

// FilterSubject trims the subject, lower-cases its first letter unless
// disableLowerCase is set, and strips trailing dots. Whitespace uncovered by
// the dot stripping ("done .") goes too, keeping the filter idempotent.
func FilterSubject(subject string, disableLowerCase bool) string {
	subject = strings.TrimSpace(subject)
	if !disableLowerCase {
		first, size := utf8.DecodeRuneInString(subject)
		if lower := unicode.ToLower(first); size > 0 && lower != first {
			subject = string(lower) + subject[size:]
		}
	}
	return strings.TrimRightFunc(subject, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (f *Formatter) keyQuestion(name, messageID, requiredID, digitsID, prefix string) models.Question {
	return models.Question{
		Kind:    models.QuestionInput,
		Name:    name,
		Message: f.t.GetMessage(messageID, 0, map[string]interface{}{"Prefix": prefix}),
		Transform: func(input string) string {
			return prefix + "-" + input
		},
		Validate: func(input string, _ models.Answers) error {
			if input == "" {
				return domainErrors.NewValidationError(name, f.t.GetMessage(requiredID, 0, nil))
			}
			if !IsDigits(input) {
				return domainErrors.NewValidationError(name, f.t.GetMessage(digitsID, 0, nil))
			}
			return nil
		},
	}
}

func (f *Formatter) typeQuestion(opts models.CommitOptions) models.Question {
	q := models.Question{
		Kind:    models.QuestionList,
		Name:    models.FieldType,
		Message: f.t.GetMessage("prompt_type", 0, nil),
		Choices: TypeChoices(opts.Types),
	}
	if opts.DefaultType != "" && opts.Types.Has(opts.DefaultType) {
		q.Default = opts.DefaultType
	}
	return q
}

// TypeChoices labels each type as "<key>:" padded to the longest key plus
// one, a space, then the description, so descriptions share a column.
func TypeChoices(types models.TypeCatalog) []models.Choice {
	width := 0
	for _, t := range types {
		if n := utf8.RuneCountInString(t.Key); n > width {
			width = n
		}
	}
	width++

	choices := make([]models.Choice, 0, len(types))
	for _, t := range types {
		label := t.Key + ":"
		if pad := width - utf8.RuneCountInString(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		choices = append(choices, models.Choice{
			Name:  label + " " + t.Description,
			Value: t.Key,
		})
	}
	return choices
}

func (f *Formatter) scopeQuestion(opts models.CommitOptions) models.Question {
	return models.Question{
		Kind:    models.QuestionInput,
		Name:    models.FieldScope,
		Message: f.t.GetMessage("prompt_scope", 0, nil),
		Filter: func(input string) string {
			scope := strings.TrimSpace(input)
			if opts.DisableScopeLowerCase {
				return scope
			}
			return strings.ToLower(scope)
		},
		Validate: func(input string, _ models.Answers) error {
			if strings.TrimSpace(input) == "" {
				return domainErrors.NewValidationError(models.FieldScope, f.t.GetMessage("validation_scope_required", 0, nil))
			}
			return nil
		},
	}
}

func (f *Formatter) subjectQuestion(p *Prompter) models.Question {
	return models.Question{
		Kind:    models.QuestionInput,
		Name:    models.FieldSubject,
		Message: f.t.GetMessage("prompt_subject", 0, nil),
		Default: p.opts.DefaultSubject,
		Validate: func(input string, answers models.Answers) error {
			if FilterSubject(input, p.opts.DisableSubjectLowerCase) == "" {
				return domainErrors.NewValidationError(models.FieldSubject, f.t.GetMessage("validation_subject_required", 0, nil))
			}
			if limit := p.opts.MaxHeaderWidth; limit > 0 {
				candidate := models.Answers{models.FieldSubject: input}
				for k, v := range answers {
					if k != models.FieldSubject {
						candidate[k] = v
					}
				}
				if n := utf8.RuneCountInString(p.header(candidate)); n > limit {
					return domainErrors.NewValidationError(models.FieldSubject, f.t.GetMessage("validation_header_too_long", 0, map[string]interface{}{
						"Length": n,
						"Max":    limit,
					}))
				}
			}
			return nil
		},
	}
}
