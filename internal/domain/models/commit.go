package models

type QuestionKind string

const (
	QuestionInput QuestionKind = "input"
	QuestionList  QuestionKind = "list"
)

// Question names, also the keys of Answers.
const (
	FieldStoryKey   = "storyKey"
	FieldSubtaskKey = "subtaskKey"
	FieldType       = "type"
	FieldScope      = "scope"
	FieldSubject    = "subject"
)

type (
	Choice struct {
		Name  string
		Value string
	}

	// Question is one prompt step. Filter rewrites the accepted value before
	// it is validated and stored, Transform only changes how the typed text
	// is displayed, and a non-nil error from Validate re-asks the question
	// showing the error message.
	Question struct {
		Kind      QuestionKind
		Name      string
		Message   string
		Default   string
		Choices   []Choice
		Validate  func(input string, answers Answers) error
		Filter    func(input string) string
		Transform func(input string) string
	}

	Answers map[string]string

	CommitType struct {
		Key         string `koanf:"key" validate:"required"`
		Description string `koanf:"description" validate:"required"`
	}

	// TypeCatalog keeps the order in which types are offered.
	TypeCatalog []CommitType

	CommitOptions struct {
		Types                   TypeCatalog `koanf:"types" validate:"required,min=1,unique=Key,dive"`
		DefaultType             string      `koanf:"default_type"`
		DefaultSubject          string      `koanf:"default_subject"`
		DisableScopeLowerCase   bool        `koanf:"disable_scope_lower_case"`
		DisableSubjectLowerCase bool        `koanf:"disable_subject_lower_case"`
		MaxHeaderWidth          int         `koanf:"max_header_width" validate:"gte=0"`
		MaxLineWidth            int         `koanf:"max_line_width" validate:"gte=0"`
		// JiraKey fixes the prefix and skips project config resolution.
		JiraKey        string `koanf:"jira_key"`
		DefaultJiraKey string `koanf:"default_jira_key" validate:"required"`
		ConfigName     string `koanf:"config_name" validate:"required"`
		Language       string `koanf:"language" validate:"required,oneof=en es"`
	}
)

func (c TypeCatalog) Has(key string) bool {
	for _, t := range c {
		if t.Key == key {
			return true
		}
	}
	return false
}

func (c TypeCatalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, t := range c {
		keys = append(keys, t.Key)
	}
	return keys
}
