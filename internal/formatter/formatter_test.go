package formatter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, configName, startDir string) (*models.ProjectConfig, error) {
	args := m.Called(ctx, configName, startDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectConfig), args.Error(1)
}

func testOptions() models.CommitOptions {
	return models.CommitOptions{
		Types: models.TypeCatalog{
			{Key: "feat", Description: "A new feature"},
			{Key: "fix", Description: "A bug fix"},
		},
		DefaultJiraKey: "OS",
		ConfigName:     "czconfig.json",
	}
}

func setupFormatter(t *testing.T, cfg *models.ProjectConfig) (*Formatter, *MockResolver) {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "czconfig.json", "").Return(cfg, nil).Maybe()
	return NewFormatter(resolver, trans), resolver
}

func buildPrompter(t *testing.T, opts models.CommitOptions) *Prompter {
	t.Helper()
	f, _ := setupFormatter(t, nil)
	p, err := f.Build(context.Background(), opts)
	require.NoError(t, err)
	return p
}

func question(t *testing.T, p *Prompter, name string) models.Question {
	t.Helper()
	for _, q := range p.Questions() {
		if q.Name == name {
			return q
		}
	}
	t.Fatalf("question %q not found", name)
	return models.Question{}
}

func TestFormatter_Build(t *testing.T) {
	t.Run("questions come in a fixed order", func(t *testing.T) {
		p := buildPrompter(t, testOptions())

		names := make([]string, 0)
		kinds := make([]models.QuestionKind, 0)
		for _, q := range p.Questions() {
			names = append(names, q.Name)
			kinds = append(kinds, q.Kind)
		}

		assert.Equal(t, []string{"storyKey", "subtaskKey", "type", "scope", "subject"}, names)
		assert.Equal(t, []models.QuestionKind{
			models.QuestionInput, models.QuestionInput, models.QuestionList, models.QuestionInput, models.QuestionInput,
		}, kinds)
	})

	t.Run("uses the default prefix when no project config exists", func(t *testing.T) {
		f, resolver := setupFormatter(t, nil)

		p, err := f.Build(context.Background(), testOptions())

		require.NoError(t, err)
		assert.Equal(t, "OS", p.Prefix())
		assert.Equal(t, "What is the story key? (e.g. OS-12345):", question(t, p, "storyKey").Message)
		assert.Equal(t, "What is the sub-task key? (e.g. OS-12345):", question(t, p, "subtaskKey").Message)
		resolver.AssertNumberOfCalls(t, "Resolve", 1)
	})

	t.Run("uses the project jira key", func(t *testing.T) {
		f, _ := setupFormatter(t, &models.ProjectConfig{JiraKey: "CORE", Source: "/repo/czconfig.json"})

		p, err := f.Build(context.Background(), testOptions())

		require.NoError(t, err)
		assert.Equal(t, "CORE", p.Prefix())
		assert.Equal(t, "CORE-42", question(t, p, "storyKey").Transform("42"))
	})

	t.Run("project config without jira key keeps the default", func(t *testing.T) {
		f, _ := setupFormatter(t, &models.ProjectConfig{})

		p, err := f.Build(context.Background(), testOptions())

		require.NoError(t, err)
		assert.Equal(t, "OS", p.Prefix())
	})

	t.Run("fixed jira key skips resolution", func(t *testing.T) {
		f, resolver := setupFormatter(t, &models.ProjectConfig{JiraKey: "CORE"})
		opts := testOptions()
		opts.JiraKey = "FIXED"

		p, err := f.Build(context.Background(), opts)

		require.NoError(t, err)
		assert.Equal(t, "FIXED", p.Prefix())
		resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("resolver errors are fatal", func(t *testing.T) {
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)
		resolver := new(MockResolver)
		parseErr := domainErrors.ErrConfigParse.WithContext("path", "/repo/czconfig.json")
		resolver.On("Resolve", mock.Anything, "czconfig.json", "").Return(nil, parseErr)

		p, err := NewFormatter(resolver, trans).Build(context.Background(), testOptions())

		assert.Nil(t, p)
		assert.True(t, errors.Is(err, domainErrors.ErrConfigParse))
	})

	t.Run("default type is applied only when it exists", func(t *testing.T) {
		opts := testOptions()
		opts.DefaultType = "fix"
		assert.Equal(t, "fix", question(t, buildPrompter(t, opts), "type").Default)

		opts.DefaultType = "wip"
		assert.Equal(t, "", question(t, buildPrompter(t, opts), "type").Default)
	})

	t.Run("subject default comes from the options", func(t *testing.T) {
		opts := testOptions()
		opts.DefaultSubject = "bump version"

		assert.Equal(t, "bump version", question(t, buildPrompter(t, opts), "subject").Default)
	})
}

func TestKeyValidation(t *testing.T) {
	p := buildPrompter(t, testOptions())

	tests := []struct {
		input   string
		wantErr string
	}{
		{input: "0"},
		{input: "123"},
		{input: "0012345678901234567890"},
		{input: "", wantErr: "key is required"},
		{input: "12a", wantErr: "only supports numbers"},
		{input: "OS-123", wantErr: "only supports numbers"},
		{input: " 123", wantErr: "only supports numbers"},
		{input: "12.5", wantErr: "only supports numbers"},
		{input: "١٢٣", wantErr: "only supports numbers"},
	}

	for _, name := range []string{models.FieldStoryKey, models.FieldSubtaskKey} {
		q := question(t, p, name)
		for _, tt := range tests {
			t.Run(name+"/"+tt.input, func(t *testing.T) {
				err := q.Validate(tt.input, models.Answers{})

				if tt.wantErr == "" {
					assert.NoError(t, err)
					return
				}
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var vErr *domainErrors.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, name, vErr.Field)
			})
		}
	}

	t.Run("messages name the field", func(t *testing.T) {
		assert.EqualError(t, question(t, p, "storyKey").Validate("", nil), "Story key is required")
		assert.EqualError(t, question(t, p, "subtaskKey").Validate("x", nil), "Sub-task key only supports numbers")
	})

	t.Run("transform is display only", func(t *testing.T) {
		q := question(t, p, "storyKey")
		assert.Equal(t, "OS-123", q.Transform("123"))
		assert.Nil(t, q.Filter)
	})
}

func TestIsDigits(t *testing.T) {
	for _, s := range []string{"1", "42", "9876543210"} {
		assert.True(t, IsDigits(s), s)
	}
	for _, s := range []string{"", "a", "1a", "a1", "1 2", "-1", "+1", "1e3", "²"} {
		assert.False(t, IsDigits(s), s)
	}
}

func TestTypeChoices(t *testing.T) {
	t.Run("descriptions start on the same column", func(t *testing.T) {
		choices := TypeChoices(models.TypeCatalog{
			{Key: "feat", Description: "A new feature"},
			{Key: "fix", Description: "A bug fix"},
		})

		require.Len(t, choices, 2)
		assert.Equal(t, "feat: A new feature", choices[0].Name)
		assert.Equal(t, "fix:  A bug fix", choices[1].Name)
		assert.Equal(t, "feat", choices[0].Value)
		assert.Equal(t, "fix", choices[1].Value)
		assert.Equal(t, strings.Index(choices[0].Name, "A "), strings.Index(choices[1].Name, "A "))
	})

	t.Run("keeps catalog order", func(t *testing.T) {
		choices := TypeChoices(models.TypeCatalog{
			{Key: "refactor", Description: "r"},
			{Key: "ci", Description: "c"},
			{Key: "feat", Description: "f"},
		})

		assert.Equal(t, []models.Choice{
			{Name: "refactor: r", Value: "refactor"},
			{Name: "ci:       c", Value: "ci"},
			{Name: "feat:     f", Value: "feat"},
		}, choices)
	})

	t.Run("empty catalog", func(t *testing.T) {
		assert.Empty(t, TypeChoices(nil))
	})
}

func TestScopeQuestion(t *testing.T) {
	t.Run("filter trims and lower-cases", func(t *testing.T) {
		q := question(t, buildPrompter(t, testOptions()), "scope")

		assert.Equal(t, "auth", q.Filter("  Auth "))
	})

	t.Run("lower-casing can be disabled", func(t *testing.T) {
		opts := testOptions()
		opts.DisableScopeLowerCase = true
		q := question(t, buildPrompter(t, opts), "scope")

		assert.Equal(t, "AuthService", q.Filter(" AuthService  "))
	})

	for _, disable := range []bool{false, true} {
		opts := testOptions()
		opts.DisableScopeLowerCase = disable
		q := question(t, buildPrompter(t, opts), "scope")

		for _, blank := range []string{"", "   ", "\t\n"} {
			err := q.Validate(q.Filter(blank), models.Answers{})
			require.Error(t, err)
			assert.Equal(t, "Scope is required", err.Error())

			err = q.Validate(blank, models.Answers{})
			require.Error(t, err)
		}
		assert.NoError(t, q.Validate("api", models.Answers{}))
	}
}

func TestFilterSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		disable bool
		want    string
	}{
		{name: "trims, lower-cases and strips dots", subject: " Fix bug...   ", want: "fix bug"},
		{name: "already clean", subject: "add login", want: "add login"},
		{name: "only first letter changes", subject: "Add HTTP Client", want: "add HTTP Client"},
		{name: "lower-casing disabled", subject: "Add login.", disable: true, want: "Add login"},
		{name: "non letter first char", subject: "2FA support.", want: "2FA support"},
		{name: "unicode first letter", subject: "Ánimo.", want: "ánimo"},
		{name: "dots in the middle stay", subject: "bump to v1.2.3.", want: "bump to v1.2.3"},
		{name: "only dots", subject: "...", want: ""},
		{name: "blank", subject: "   ", want: ""},
		{name: "space before dots", subject: "done .", want: "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSubject(tt.subject, tt.disable)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FilterSubject(got, tt.disable), "filter must be idempotent")
		})
	}
}

func TestFilterSubject_Idempotent(t *testing.T) {
	inputs := []string{
		"", " ", ".", " . . ", "A", "a.", "Fix. ", "  Hello World..  ", "É.", "x . y .",
		"\tTabs\t.", "Ünïcode...", "..leading dots", "1. first", "a .",
	}
	for _, s := range inputs {
		for _, disable := range []bool{false, true} {
			once := FilterSubject(s, disable)
			assert.Equal(t, once, FilterSubject(once, disable), "%q disable=%v", s, disable)
		}
	}
}

func TestSubjectQuestion(t *testing.T) {
	t.Run("rejects subjects that filter to nothing", func(t *testing.T) {
		q := question(t, buildPrompter(t, testOptions()), "subject")

		assert.EqualError(t, q.Validate(" ... ", models.Answers{}), "description is required")
		assert.NoError(t, q.Validate("Add login.", models.Answers{}))
	})

	t.Run("enforces the max header width", func(t *testing.T) {
		opts := testOptions()
		opts.MaxHeaderWidth = 40
		q := question(t, buildPrompter(t, opts), "subject")
		answers := models.Answers{"storyKey": "123", "subtaskKey": "456", "type": "feat", "scope": "auth"}

		// "[OS-123][OS-456] feat [auth]: " is 30 characters.
		assert.NoError(t, q.Validate("Add login.", answers))
		err := q.Validate("add a much longer login flow", answers)
		require.Error(t, err)
		assert.Equal(t, "Header is 58 characters long, the limit is 40", err.Error())
	})
}

func TestPrompter_Render(t *testing.T) {
	answers := models.Answers{
		"storyKey":   "123",
		"subtaskKey": "456",
		"type":       "feat",
		"scope":      "auth",
		"subject":    "Add login.",
	}

	t.Run("renders the header", func(t *testing.T) {
		p := buildPrompter(t, testOptions())

		assert.Equal(t, "[OS-123][OS-456] feat [auth]: add login", p.Render(answers))
	})

	t.Run("end to end through the question filters", func(t *testing.T) {
		p := buildPrompter(t, testOptions())
		raw := models.Answers{
			"storyKey":   "123",
			"subtaskKey": "456",
			"type":       "feat",
			"scope":      "Auth",
			"subject":    "Add login.",
		}

		accepted := models.Answers{}
		for _, q := range p.Questions() {
			v := raw[q.Name]
			if q.Filter != nil {
				v = q.Filter(v)
			}
			if q.Validate != nil {
				require.NoError(t, q.Validate(v, accepted), q.Name)
			}
			accepted[q.Name] = v
		}

		header := p.Render(accepted)
		assert.Equal(t, "[OS-123][OS-456] feat [auth]: add login", header)
		assert.NotContains(t, header, "\n")
	})

	t.Run("keeps subject case when disabled", func(t *testing.T) {
		opts := testOptions()
		opts.DisableSubjectLowerCase = true
		p := buildPrompter(t, opts)

		assert.Equal(t, "[OS-123][OS-456] feat [auth]: Add login", p.Render(answers))
	})

	t.Run("uses the fixed prefix", func(t *testing.T) {
		opts := testOptions()
		opts.JiraKey = "WEB"
		p := buildPrompter(t, opts)

		assert.Equal(t, "[WEB-123][WEB-456] feat [auth]: add login", p.Render(answers))
	})
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "head", joinLines("head"))
	assert.Equal(t, "head", joinLines("head", "", ""))
	assert.Equal(t, "head\n\nbody", joinLines("head", "", "body"))
	assert.Equal(t, "", joinLines(""))
}
