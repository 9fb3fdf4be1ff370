package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeValidation    ErrorType = "VALIDATION"
	TypePrompt        ErrorType = "PROMPT"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" [%s]", path)
		}
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches sentinels by type and message so that values derived with the
// With* builders still satisfy errors.Is against the catalog entry.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// ValidationError is the per-field message handed back to the prompt so the
// question is asked again. It never aborts the commit flow.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Configuration errors
var (
	ErrConfigParse = NewAppError(TypeConfiguration, "Malformed configuration file", nil).
			WithSuggestion("Check the file contains a valid JSON object, e.g. {\"jiraKey\": \"OS\"}")

	ErrConfigRead = NewAppError(TypeConfiguration, "Failed to read configuration file", nil).
			WithSuggestion("Check the file exists and is readable")

	ErrManifestConfigPath = NewAppError(TypeConfiguration, "package.json points to a missing configuration file", nil).
				WithSuggestion("Fix config[\"cz-jira-keys\"].config in package.json, it is resolved relative to package.json")

	ErrInvalidOptions = NewAppError(TypeConfiguration, "Invalid adapter options", nil).
				WithSuggestion("Review your .czjira.yaml and CZJIRA_* environment variables")

	ErrWorkingDir = NewAppError(TypeConfiguration, "Failed to get working directory", nil)
)

// Prompt errors
var (
	ErrPromptInterrupted = NewAppError(TypePrompt, "Prompt interrupted, no commit was made", nil)

	ErrPromptFailed = NewAppError(TypePrompt, "Failed to run the interactive prompt", nil).
			WithSuggestion("Run the command from an interactive terminal")
)

// Git errors
var (
	ErrNoStagedChanges = NewAppError(TypeGit, "No staged changes detected", nil).
				WithSuggestion("Stage your changes first with: git add <files>")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")

	ErrEmptyMessage = NewAppError(TypeInternal, "Commit message is empty", nil)
)
