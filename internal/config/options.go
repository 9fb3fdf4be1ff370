package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultOptionsFile = ".czjira.yaml"
	DefaultJiraKey     = "OS"
	DefaultLanguage    = "en"
	envPrefix          = "CZJIRA_"
)

var validate = validator.New()

// DefaultTypes is the conventional commit type list offered when the
// options do not name their own.
func DefaultTypes() models.TypeCatalog {
	return models.TypeCatalog{
		{Key: "feat", Description: "A new feature"},
		{Key: "fix", Description: "A bug fix"},
		{Key: "docs", Description: "Documentation only changes"},
		{Key: "style", Description: "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)"},
		{Key: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
		{Key: "perf", Description: "A code change that improves performance"},
		{Key: "test", Description: "Adding missing tests or correcting existing tests"},
		{Key: "build", Description: "Changes that affect the build system or external dependencies"},
		{Key: "ci", Description: "Changes to our CI configuration files and scripts"},
		{Key: "chore", Description: "Other changes that don't modify src or test files"},
		{Key: "revert", Description: "Reverts a previous commit"},
	}
}

// Defaults returns the options used when nothing is configured.
func Defaults() models.CommitOptions {
	return models.CommitOptions{
		Types:          DefaultTypes(),
		DefaultJiraKey: DefaultJiraKey,
		ConfigName:     DefaultConfigName,
		Language:       DefaultLanguage,
	}
}

// LoadOptions reads the adapter options.
// Loading order: defaults → YAML file → CZJIRA_* env vars (later overrides earlier).
// An explicit path must exist; the default .czjira.yaml is optional.
func LoadOptions(path string) (models.CommitOptions, error) {
	k := koanf.New(".")

	optionsPath := path
	if optionsPath == "" {
		if _, err := os.Stat(DefaultOptionsFile); err == nil {
			optionsPath = DefaultOptionsFile
		}
	}

	if optionsPath != "" {
		if err := k.Load(file.Provider(optionsPath), yaml.Parser()); err != nil {
			return models.CommitOptions{}, domainErrors.ErrInvalidOptions.
				WithError(fmt.Errorf("loading options file: %w", err)).
				WithContext("path", optionsPath)
		}
	}

	// CZJIRA_DEFAULT_TYPE → default_type
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return models.CommitOptions{}, domainErrors.ErrInvalidOptions.WithError(fmt.Errorf("loading env vars: %w", err))
	}

	opts := Defaults()
	// Types are decoded into an empty slice so a configured list replaces
	// the defaults instead of being merged into them element by element.
	opts.Types = nil
	if err := k.Unmarshal("", &opts); err != nil {
		return models.CommitOptions{}, domainErrors.ErrInvalidOptions.WithError(fmt.Errorf("unmarshaling options: %w", err))
	}
	if len(opts.Types) == 0 {
		opts.Types = DefaultTypes()
	}

	if err := ValidateOptions(opts); err != nil {
		return models.CommitOptions{}, err
	}

	return opts, nil
}

func ValidateOptions(opts models.CommitOptions) error {
	if err := validate.Struct(opts); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return domainErrors.ErrInvalidOptions.WithError(errors.New(strings.Join(fields, "; ")))
		}
		return domainErrors.ErrInvalidOptions.WithError(err)
	}
	return nil
}
