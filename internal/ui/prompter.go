package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/Tomas-vilte/cz-jira-keys/internal/logger"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ ports.Prompter = (*TerminalPrompter)(nil)

var (
	questionMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Render("?")
	messageStyle  = lipgloss.NewStyle().Bold(true)
	defaultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	listHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// TerminalPrompter asks each question with its own bubbletea program, so the
// answer of one question stays printed above the next one.
type TerminalPrompter struct {
	t   *i18n.Translations
	in  io.Reader
	out io.Writer
}

type Option func(*TerminalPrompter)

func WithInput(r io.Reader) Option {
	return func(p *TerminalPrompter) { p.in = r }
}

func WithOutput(w io.Writer) Option {
	return func(p *TerminalPrompter) { p.out = w }
}

func NewTerminalPrompter(t *i18n.Translations, opts ...Option) *TerminalPrompter {
	p := &TerminalPrompter{t: t}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *TerminalPrompter) Prompt(ctx context.Context, questions []models.Question) (models.Answers, error) {
	answers := make(models.Answers, len(questions))

	for _, q := range questions {
		programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
		if p.in != nil {
			programOpts = append(programOpts, tea.WithInput(p.in))
		}
		if p.out != nil {
			programOpts = append(programOpts, tea.WithOutput(p.out))
		}

		final, err := tea.NewProgram(newQuestionModel(q, answers, p.listHint()), programOpts...).Run()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
				return nil, domainErrors.ErrPromptInterrupted
			}
			return nil, domainErrors.ErrPromptFailed.WithError(err)
		}

		m, ok := final.(questionModel)
		if !ok || !m.done {
			return nil, domainErrors.ErrPromptInterrupted
		}
		answers[q.Name] = m.value
		logger.Debug(ctx, "question answered", "question", q.Name)
	}

	return answers, nil
}

func (p *TerminalPrompter) listHint() string {
	if p.t == nil {
		return ""
	}
	return p.t.GetMessage("prompt_list_hint", 0, nil)
}

// questionModel is the bubbletea model for a single question. Answers holds
// what was accepted so far and is passed to Validate.
type questionModel struct {
	question models.Question
	answers  models.Answers
	hint     string

	input  textinput.Model
	cursor int

	err     string
	value   string
	done    bool
	aborted bool
}

func newQuestionModel(q models.Question, answers models.Answers, hint string) questionModel {
	m := questionModel{
		question: q,
		answers:  answers,
		hint:     hint,
	}

	if q.Kind == models.QuestionList {
		for i, c := range q.Choices {
			if c.Value == q.Default {
				m.cursor = i
				break
			}
		}
		return m
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	m.input = ti
	return m
}

func (m questionModel) Init() tea.Cmd {
	if m.question.Kind == models.QuestionList {
		return nil
	}
	return textinput.Blink
}

func (m questionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

		if m.question.Kind == models.QuestionList {
			switch key.String() {
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.question.Choices)-1 {
					m.cursor++
				}
			}
			return m, nil
		}
	}

	if m.question.Kind == models.QuestionList {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the default to empty input, then Filter, then Validate. A
// validation error keeps the question open.
func (m questionModel) submit() (tea.Model, tea.Cmd) {
	var raw string
	if m.question.Kind == models.QuestionList {
		if len(m.question.Choices) == 0 {
			return m, nil
		}
		raw = m.question.Choices[m.cursor].Value
	} else {
		raw = m.input.Value()
		if strings.TrimSpace(raw) == "" && m.question.Default != "" {
			raw = m.question.Default
		}
	}

	value := raw
	if m.question.Filter != nil {
		value = m.question.Filter(value)
	}

	if m.question.Validate != nil {
		if err := m.question.Validate(value, m.answers); err != nil {
			m.err = err.Error()
			return m, nil
		}
	}

	m.err = ""
	m.value = value
	m.done = true
	return m, tea.Quit
}

func (m questionModel) View() string {
	var b strings.Builder

	b.WriteString(questionMark + " " + messageStyle.Render(m.question.Message) + " ")

	if m.done {
		b.WriteString(answerStyle.Render(m.display(m.value)) + "\n")
		return b.String()
	}
	if m.aborted {
		b.WriteString("\n")
		return b.String()
	}

	if m.question.Kind == models.QuestionList {
		if m.hint != "" {
			b.WriteString(listHintStyle.Render(m.hint))
		}
		b.WriteString("\n")
		for i, c := range m.question.Choices {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> "+c.Name) + "\n")
			} else {
				b.WriteString("  " + c.Name + "\n")
			}
		}
	} else {
		if m.question.Default != "" {
			b.WriteString(defaultStyle.Render(fmt.Sprintf("(%s) ", m.question.Default)))
		}
		b.WriteString(m.inputView() + "\n")
	}

	if m.err != "" {
		b.WriteString(errorStyle.Render(">> "+m.err) + "\n")
	}
	return b.String()
}

// inputView shows the text being typed through Transform. When Transform only
// adds a prefix, the prefix goes in front of the live input so the cursor
// keeps working.
func (m questionModel) inputView() string {
	if m.question.Transform == nil {
		return m.input.View()
	}
	typed := m.input.Value()
	shown := m.question.Transform(typed)
	if strings.HasSuffix(shown, typed) {
		return strings.TrimSuffix(shown, typed) + m.input.View()
	}
	return shown
}

func (m questionModel) display(value string) string {
	if m.question.Transform != nil {
		return m.question.Transform(value)
	}
	return value
}
